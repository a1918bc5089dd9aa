package rounding_test

import (
	"math"
	"testing"

	"github.com/opencivic/tallyengine/rounding"

	"github.com/stretchr/testify/require"
)

func TestCmpRatioBasic(t *testing.T) {
	cases := []struct {
		a, b, c, d int64
		want       int
	}{
		{1, 2, 1, 2, 0},
		{1, 3, 1, 2, -1},
		{2, 3, 1, 2, 1},
		{-1, 2, 1, 2, -1},
		{-1, 2, -1, 3, -1}, // -0.5 < -0.333
		{0, 5, 0, 7, 0},
	}
	for _, c := range cases {
		got, err := rounding.CmpRatio(c.a, c.b, c.c, c.d)
		require.NoError(t, err)
		require.Equalf(t, c.want, got, "CmpRatio(%d,%d,%d,%d)", c.a, c.b, c.c, c.d)
	}
}

func TestCmpRatioAntisymmetric(t *testing.T) {
	pairs := [][4]int64{
		{10, 7, 3, 11},
		{1, 1, 1, 1},
		{-5, 9, 2, 3},
	}
	for _, p := range pairs {
		fwd, err := rounding.CmpRatio(p[0], p[1], p[2], p[3])
		require.NoError(t, err)
		rev, err := rounding.CmpRatio(p[2], p[3], p[0], p[1])
		require.NoError(t, err)
		require.Equal(t, fwd, -rev)
	}
}

func TestCmpRatioZeroDenominator(t *testing.T) {
	_, err := rounding.CmpRatio(1, 0, 1, 2)
	require.ErrorIs(t, err, rounding.ErrZeroDenominator)
}

func TestCmpRatioLargeOperandsUsesFallback(t *testing.T) {
	// Operands large enough that a naive cross-multiplication a*d vs c*b
	// would overflow 64 bits (though not 128), forcing the
	// continued-fraction path inside cmpUnsignedFractions.
	a := int64(math.MaxInt64 - 1) // ~9.22e18
	b := int64(7)
	c := int64(math.MaxInt64 - 3)
	d := int64(11)

	got, err := rounding.CmpRatio(a, b, c, d)
	require.NoError(t, err)
	// a/b ~= 1.317e18, c/d ~= 8.39e17: a/b > c/d.
	require.Equal(t, 1, got)

	got2, err := rounding.CmpRatio(a, b, a, b)
	require.NoError(t, err)
	require.Equal(t, 0, got2)
}

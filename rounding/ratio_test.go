package rounding_test

import (
	"testing"

	"github.com/opencivic/tallyengine/rounding"

	"github.com/stretchr/testify/require"
)

func TestSimplify(t *testing.T) {
	cases := []struct {
		name     string
		num, den int64
		wantNum  int64
		wantDen  int64
	}{
		{"already reduced", 1, 2, 1, 2},
		{"reduces", 6, 8, 3, 4},
		{"negative denominator folds sign", 3, -4, -3, 4},
		{"double negative", -3, -4, 3, 4},
		{"zero numerator", 0, 5, 0, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := rounding.Simplify(c.num, c.den)
			require.NoError(t, err)
			require.Equal(t, c.wantNum, r.Num)
			require.Equal(t, c.wantDen, r.Den)
		})
	}
}

func TestSimplifyZeroDenominator(t *testing.T) {
	_, err := rounding.Simplify(1, 0)
	require.ErrorIs(t, err, rounding.ErrZeroDenominator)
}

func TestSimplifyIdempotent(t *testing.T) {
	r, err := rounding.Simplify(42, 56)
	require.NoError(t, err)
	r2, err := rounding.Simplify(r.Num, r.Den)
	require.NoError(t, err)
	require.Equal(t, r, r2)
}

func TestSimplifyMinInt64Magnitude(t *testing.T) {
	// Regression for the i128::MIN-style special case: numerator at the
	// signed minimum must not panic or silently produce garbage.
	r, err := rounding.Simplify(minInt64ForTest, 2)
	require.NoError(t, err)
	require.Equal(t, int64(1), r.Den)
	require.Equal(t, minInt64ForTest/2, r.Num)
}

const minInt64ForTest = -1 << 63

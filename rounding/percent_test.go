package rounding_test

import (
	"testing"

	"github.com/opencivic/tallyengine/rounding"

	"github.com/stretchr/testify/require"
)

func TestRoundNearestEvenInt(t *testing.T) {
	cases := []struct {
		n, d int64
		want int64
	}{
		{1, 2, 0},  // 0.5 -> 0 (even)
		{3, 2, 2},  // 1.5 -> 2 (even)
		{5, 2, 2},  // 2.5 -> 2 (even)
		{7, 2, 4},  // 3.5 -> 4 (even)
		{4, 3, 1},  // 1.333 -> 1
		{5, 3, 2},  // 1.667 -> 2
		{0, 5, 0},
	}
	for _, c := range cases {
		got, err := rounding.RoundNearestEvenInt(c.n, c.d)
		require.NoError(t, err)
		require.Equalf(t, c.want, got, "RoundNearestEvenInt(%d,%d)", c.n, c.d)
	}
}

func TestRoundNearestEvenIntZeroDenominator(t *testing.T) {
	_, err := rounding.RoundNearestEvenInt(1, 0)
	require.ErrorIs(t, err, rounding.ErrZeroDenominator)
}

func TestGePercent(t *testing.T) {
	ok, err := rounding.GePercent(50, 100, 50)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = rounding.GePercent(49, 100, 50)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPercentOneDecimalTenths(t *testing.T) {
	got, err := rounding.PercentOneDecimalTenths(1, 3) // 33.333...%
	require.NoError(t, err)
	require.Equal(t, int64(333), got)

	got, err = rounding.PercentOneDecimalTenths(2, 3) // 66.666...%
	require.NoError(t, err)
	require.Equal(t, int64(667), got) // .6666... rounds up, not a tie
}

func TestGePercentHalfEven(t *testing.T) {
	ok, err := rounding.GePercentHalfEven(1, 3, 33)
	require.NoError(t, err)
	require.True(t, ok) // 33.3% >= 33%

	ok, err = rounding.GePercentHalfEven(1, 3, 34)
	require.NoError(t, err)
	require.False(t, ok)
}

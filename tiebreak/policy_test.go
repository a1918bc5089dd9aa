package tiebreak_test

import (
	"testing"

	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rng"
	"github.com/opencivic/tallyengine/tiebreak"

	"github.com/stretchr/testify/require"
)

var opts = []ids.OptionItem{
	{OptionId: "A", OrderIndex: 0},
	{OptionId: "B", OrderIndex: 1},
	{OptionId: "C", OrderIndex: 2},
}

func TestDeterministicOrder(t *testing.T) {
	res := tiebreak.Resolve([]ids.OptionId{"C", "B"}, opts, tiebreak.DeterministicOrder, nil)
	require.Equal(t, ids.OptionId("B"), res.Winner)
	require.False(t, res.WasRandom)
}

func TestStatusQuoFallsBackWithoutFlag(t *testing.T) {
	res := tiebreak.Resolve([]ids.OptionId{"C", "B"}, opts, tiebreak.StatusQuo, nil)
	require.Equal(t, ids.OptionId("B"), res.Winner) // deterministic fallback
}

func TestStatusQuoPicksFlagged(t *testing.T) {
	flagged := []ids.OptionItem{
		{OptionId: "A", OrderIndex: 0},
		{OptionId: "B", OrderIndex: 1, IsStatusQuo: true},
		{OptionId: "C", OrderIndex: 2},
	}
	res := tiebreak.Resolve([]ids.OptionId{"C", "B"}, flagged, tiebreak.StatusQuo, nil)
	require.Equal(t, ids.OptionId("B"), res.Winner)
}

func TestStatusQuoFallsBackOnMultipleFlags(t *testing.T) {
	flagged := []ids.OptionItem{
		{OptionId: "A", OrderIndex: 0, IsStatusQuo: true},
		{OptionId: "B", OrderIndex: 1, IsStatusQuo: true},
		{OptionId: "C", OrderIndex: 2},
	}
	res := tiebreak.Resolve([]ids.OptionId{"C", "B", "A"}, flagged, tiebreak.StatusQuo, nil)
	require.Equal(t, ids.OptionId("A"), res.Winner) // deterministic fallback
}

func TestRandomWithoutStreamFallsBack(t *testing.T) {
	res := tiebreak.Resolve([]ids.OptionId{"C", "B"}, opts, tiebreak.Random, nil)
	require.Equal(t, ids.OptionId("B"), res.Winner)
	require.False(t, res.WasRandom)
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	tied := []ids.OptionId{"A", "B", "C"}
	r1 := tiebreak.Resolve(tied, opts, tiebreak.Random, rng.New(7))
	r2 := tiebreak.Resolve(tied, opts, tiebreak.Random, rng.New(7))
	require.Equal(t, r1, r2)
	require.True(t, r1.WasRandom)
}

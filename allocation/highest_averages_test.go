package allocation_test

import (
	"testing"

	"github.com/opencivic/tallyengine/allocation"
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/tiebreak"

	"github.com/stretchr/testify/require"
)

func TestHighestAveragesDHondt(t *testing.T) {
	// Classic D'Hondt worked example: 100k/80k/30k/20k votes, 8 seats ->
	// 4/3/1/0.
	options := []ids.OptionItem{
		{OptionId: "A", OrderIndex: 0},
		{OptionId: "B", OrderIndex: 1},
		{OptionId: "C", OrderIndex: 2},
		{OptionId: "D", OrderIndex: 3},
	}
	votes := map[ids.OptionId]uint64{"A": 100_000, "B": 80_000, "C": 30_000, "D": 20_000}

	alloc, crumbs, err := allocation.HighestAverages("u1", votes, options, 8, allocation.DivisorDHondt, tiebreak.DeterministicOrder, nil)
	require.NoError(t, err)
	require.Empty(t, crumbs)
	require.Equal(t, uint32(4), alloc.SeatsOrPower["A"])
	require.Equal(t, uint32(3), alloc.SeatsOrPower["B"])
	require.Equal(t, uint32(1), alloc.SeatsOrPower["C"])
	require.Equal(t, uint32(0), alloc.SeatsOrPower["D"])
}

func TestHighestAveragesSainteLague(t *testing.T) {
	votes := map[ids.OptionId]uint64{"A": 41, "B": 29, "C": 30}
	alloc, _, err := allocation.HighestAverages("u1", votes, wtaOptions, 5, allocation.DivisorSainteLague, tiebreak.DeterministicOrder, nil)
	require.NoError(t, err)

	var total uint32
	for _, v := range alloc.SeatsOrPower {
		total += v
	}
	require.EqualValues(t, 5, total)
}

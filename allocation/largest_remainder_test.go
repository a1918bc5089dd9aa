package allocation_test

import (
	"testing"

	"github.com/opencivic/tallyengine/allocation"
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/tiebreak"

	"github.com/stretchr/testify/require"
)

func TestLargestRemainderHare(t *testing.T) {
	votes := map[ids.OptionId]uint64{"A": 100, "B": 80, "C": 20}
	alloc, crumbs, err := allocation.LargestRemainder("u1", votes, wtaOptions, 10, allocation.QuotaHare, tiebreak.DeterministicOrder, nil)
	require.NoError(t, err)
	require.Empty(t, crumbs)

	var total uint32
	for _, v := range alloc.SeatsOrPower {
		total += v
	}
	require.EqualValues(t, 10, total)
	require.Equal(t, uint32(5), alloc.SeatsOrPower["A"])
	require.Equal(t, uint32(4), alloc.SeatsOrPower["B"])
	require.Equal(t, uint32(1), alloc.SeatsOrPower["C"])
}

func TestLargestRemainderZeroSeats(t *testing.T) {
	votes := map[ids.OptionId]uint64{"A": 100, "B": 80}
	alloc, _, err := allocation.LargestRemainder("u1", votes, wtaOptions, 0, allocation.QuotaHare, tiebreak.DeterministicOrder, nil)
	require.NoError(t, err)
	require.Empty(t, alloc.SeatsOrPower)
}

package allocation_test

import (
	"testing"

	"github.com/opencivic/tallyengine/allocation"
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/tiebreak"

	"github.com/stretchr/testify/require"
)

// TestMMPNationalCorrection mirrors spec section 8 scenario 6: locals
// {A:2,B:2,C:2}, proportional targets {A:7,B:3,C:2}, T=12.
func TestMMPNationalCorrection(t *testing.T) {
	options := []ids.OptionItem{
		{OptionId: "A", OrderIndex: 0},
		{OptionId: "B", OrderIndex: 1},
		{OptionId: "C", OrderIndex: 2},
	}
	locals := map[ids.OptionId]uint32{"A": 2, "B": 2, "C": 2}
	// Sainte-Laguë-friendly vote shares chosen to land on targets 7/3/2.
	votes := map[ids.OptionId]uint64{"A": 700, "B": 300, "C": 200}

	result, crumbs, err := allocation.MMP(
		"national", locals, votes, options, 12,
		allocation.TargetMethod{UseHighestAverages: true, Divisor: allocation.DivisorSainteLague},
		allocation.LeaveOverhangs, tiebreak.DeterministicOrder, nil,
	)
	require.NoError(t, err)
	require.Empty(t, crumbs)
	require.Equal(t, uint32(7), result.Allocation.SeatsOrPower["A"])
	require.Equal(t, uint32(3), result.Allocation.SeatsOrPower["B"])
	require.Equal(t, uint32(2), result.Allocation.SeatsOrPower["C"])
	require.EqualValues(t, 12, result.EffectiveTotalSeats)
}

func TestMMPOverhangAbsorb(t *testing.T) {
	options := []ids.OptionItem{
		{OptionId: "A", OrderIndex: 0},
		{OptionId: "B", OrderIndex: 1},
	}
	// A wins far more local seats than its vote share entitles it to.
	locals := map[ids.OptionId]uint32{"A": 9, "B": 1}
	votes := map[ids.OptionId]uint64{"A": 50, "B": 50}

	result, _, err := allocation.MMP(
		"region", locals, votes, options, 10,
		allocation.TargetMethod{UseHighestAverages: false, Quota: allocation.QuotaHare},
		allocation.Absorb, tiebreak.DeterministicOrder, nil,
	)
	require.NoError(t, err)
	require.Equal(t, uint32(9), result.Allocation.SeatsOrPower["A"])
	require.LessOrEqual(t, result.EffectiveTotalSeats, uint32(10))
}

func TestMMPUnsupportedOverhangRefused(t *testing.T) {
	options := []ids.OptionItem{
		{OptionId: "A", OrderIndex: 0},
		{OptionId: "B", OrderIndex: 1},
	}
	// A's local seats (10) already exceed the entire 8-seat target body,
	// so absorbing the overhang would require reducing B's top-up below
	// zero.
	locals := map[ids.OptionId]uint32{"A": 10, "B": 0}
	votes := map[ids.OptionId]uint64{"A": 10, "B": 90}

	_, _, err := allocation.MMP(
		"region", locals, votes, options, 8,
		allocation.TargetMethod{UseHighestAverages: false, Quota: allocation.QuotaHare},
		allocation.Absorb, tiebreak.DeterministicOrder, nil,
	)
	require.Error(t, err)
}

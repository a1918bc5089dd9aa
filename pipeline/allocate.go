package pipeline

import (
	"github.com/opencivic/tallyengine/allocation"
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rng"
	"github.com/opencivic/tallyengine/tiebreak"
)

// allocateUnit converts a unit's tabulation into an Allocation. IRV and
// Condorcet already determined a single winner during tabulation (their
// elimination/Schulze tie-breaks already consulted policy), so their
// natural allocation is that winner holding all power, independent of
// Params.AllocationFamily — these two methods are inherently
// single-winner and have no seat-divisible analog (spec section 4.3's
// ranked methods feed spec section 4.4's WTA family only in spirit, not
// mechanically, since the tie was already resolved upstream).
func allocateUnit(
	unit UnitDef,
	t unitTabulation,
	p Params,
	policy tiebreak.Policy,
	stream *rng.Stream,
) (allocation.Allocation, []rng.TieCrumb, error) {
	if t.isSingleWinner {
		return allocation.Allocation{
			UnitId:       unit.UnitId,
			SeatsOrPower: map[ids.OptionId]uint32{t.singleWinner: 100},
		}, nil, nil
	}

	switch p.AllocationFamily {
	case allocation.FamilyWTA:
		alloc, crumb, err := allocation.WTA(unit.UnitId, t.scores, unit.Options, p.Magnitude, policy, stream)
		if err != nil {
			return allocation.Allocation{}, nil, err
		}
		if crumb != nil {
			return alloc, []rng.TieCrumb{*crumb}, nil
		}
		return alloc, nil, nil

	case allocation.FamilyLargestRemainder:
		return allocation.LargestRemainder(unit.UnitId, t.scores, unit.Options, p.Magnitude, p.QuotaFormula, policy, stream)

	case allocation.FamilyHighestAverages:
		return allocation.HighestAverages(unit.UnitId, t.scores, unit.Options, p.Magnitude, p.DivisorFamily, policy, stream)

	case allocation.FamilyMMP:
		local, crumbs, err := allocation.WTA(unit.UnitId, t.scores, unit.Options, 1, policy, stream)
		if err != nil {
			return allocation.Allocation{}, nil, err
		}
		var localCrumbs []rng.TieCrumb
		if crumbs != nil {
			localCrumbs = append(localCrumbs, *crumbs)
		}
		localSeats := make(map[ids.OptionId]uint32, len(local.SeatsOrPower))
		for k, v := range local.SeatsOrPower {
			if v > 0 {
				localSeats[k] = 1
			}
		}
		result, mmpCrumbs, err := allocation.MMP(unit.UnitId, localSeats, t.scores, unit.Options,
			p.MMPTotalSeatsTarget, p.MMPMethod, p.MMPOverhangPolicy, policy, stream)
		if err != nil {
			return allocation.Allocation{}, nil, err
		}
		return result.Allocation, append(localCrumbs, mmpCrumbs...), nil

	default:
		alloc, crumb, err := allocation.WTA(unit.UnitId, t.scores, unit.Options, 1, policy, stream)
		if err != nil {
			return allocation.Allocation{}, nil, err
		}
		if crumb != nil {
			return alloc, []rng.TieCrumb{*crumb}, nil
		}
		return alloc, nil, nil
	}
}

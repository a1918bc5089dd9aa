package aggregation

import (
	"math/bits"
	"sort"

	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rounding"
	"github.com/opencivic/tallyengine/tabulation"
	"github.com/opencivic/tallyengine/tallyerr"
)

// WeightingMethod selects how per-unit values are scaled before pooling
// into AggregateResults (spec section 4.6).
type WeightingMethod int

const (
	// WeightNatural sums each unit's raw values unscaled: the literal
	// national vote/seat pool.
	WeightNatural WeightingMethod = iota
	// WeightEqualUnit rescales every unit's option split onto the same
	// fixed total (equalUnitScale points) before pooling, so a unit's raw
	// size never changes its influence relative to other units.
	WeightEqualUnit
	// WeightPopulationWeighted scales each unit by a caller-supplied
	// per-unit weight (typically eligible electorate or population)
	// before pooling.
	WeightPopulationWeighted
)

// UnitContribution is one unit's input to aggregation: its per-option
// values (vote counts or seats/power), turnout, and population weight
// (consulted only under WeightPopulationWeighted).
type UnitContribution struct {
	UnitId           ids.UnitId
	Values           map[ids.OptionId]uint64
	Turnout          tabulation.TallyTotals
	PopulationWeight uint64
}

// AggregateResults is the pooled outcome across all units: totals per
// option, exact shares per option, pooled turnout, and the weighting
// method used.
type AggregateResults struct {
	Totals          map[ids.OptionId]uint64
	Shares          map[ids.OptionId]rounding.Ratio
	PooledTurnout   tabulation.TallyTotals
	WeightingMethod WeightingMethod
}

// Aggregate pools per-unit contributions into totals and shares,
// iterating units in UnitId order (spec section 5's ordering guarantee)
// and options in the supplied canonical order.
func Aggregate(
	units []UnitContribution,
	options []ids.OptionItem,
	weighting WeightingMethod,
) (AggregateResults, error) {
	sorted := make([]UnitContribution, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UnitId.Less(sorted[j].UnitId)
	})

	canonical := ids.CanonicalOrder(options)
	totals := make(map[ids.OptionId]uint64, len(canonical))
	for _, o := range canonical {
		totals[o.OptionId] = 0
	}

	var pooled tabulation.TallyTotals
	for _, u := range sorted {
		contributions, err := unitContributions(u, canonical, weighting)
		if err != nil {
			return AggregateResults{}, err
		}
		for _, o := range canonical {
			sum, sOverflow := addChecked(totals[o.OptionId], contributions[o.OptionId])
			if sOverflow {
				return AggregateResults{}, tallyerr.ErrArithmeticOverflow
			}
			totals[o.OptionId] = sum
		}

		validSum, ovf1 := addChecked(pooled.ValidBallots, u.Turnout.ValidBallots)
		invalidSum, ovf2 := addChecked(pooled.InvalidBallots, u.Turnout.InvalidBallots)
		if ovf1 || ovf2 {
			return AggregateResults{}, tallyerr.ErrArithmeticOverflow
		}
		pooled.ValidBallots = validSum
		pooled.InvalidBallots = invalidSum
	}

	var grandTotal uint64
	for _, o := range canonical {
		sum, overflow := addChecked(grandTotal, totals[o.OptionId])
		if overflow {
			return AggregateResults{}, tallyerr.ErrArithmeticOverflow
		}
		grandTotal = sum
	}

	shares := make(map[ids.OptionId]rounding.Ratio, len(canonical))
	for _, o := range canonical {
		if grandTotal == 0 {
			shares[o.OptionId] = rounding.MustSimplify(0, 1)
			continue
		}
		r, err := rounding.Simplify(int64(totals[o.OptionId]), int64(grandTotal))
		if err != nil {
			return AggregateResults{}, err
		}
		shares[o.OptionId] = r
	}

	return AggregateResults{
		Totals:          totals,
		Shares:          shares,
		PooledTurnout:   pooled,
		WeightingMethod: weighting,
	}, nil
}

// equalUnitScale is the constant number of normalized points each unit
// contributes in total under WeightEqualUnit, regardless of its raw vote
// count, so a small unit and a large unit influence the pool identically.
const equalUnitScale = 1_000_000

// unitContributions computes one unit's pooled contribution per option
// under the given weighting method.
//   - WeightNatural: raw values, unscaled.
//   - WeightPopulationWeighted: raw values scaled by the unit's
//     population weight.
//   - WeightEqualUnit: each option's share of the unit's own total,
//     rescaled (banker's rounding) onto a fixed equalUnitScale so every
//     unit contributes the same total regardless of its raw size.
func unitContributions(u UnitContribution, canonical []ids.OptionItem, weighting WeightingMethod) (map[ids.OptionId]uint64, error) {
	out := make(map[ids.OptionId]uint64, len(canonical))

	switch weighting {
	case WeightPopulationWeighted:
		for _, o := range canonical {
			v, overflow := mulChecked(u.Values[o.OptionId], u.PopulationWeight)
			if overflow {
				return nil, tallyerr.ErrArithmeticOverflow
			}
			out[o.OptionId] = v
		}
	case WeightEqualUnit:
		var unitTotal uint64
		for _, o := range canonical {
			sum, overflow := addChecked(unitTotal, u.Values[o.OptionId])
			if overflow {
				return nil, tallyerr.ErrArithmeticOverflow
			}
			unitTotal = sum
		}
		if unitTotal == 0 {
			for _, o := range canonical {
				out[o.OptionId] = 0
			}
			return out, nil
		}
		for _, o := range canonical {
			scaled, overflow := mulChecked(u.Values[o.OptionId], equalUnitScale)
			if overflow {
				return nil, tallyerr.ErrArithmeticOverflow
			}
			rounded, err := rounding.RoundNearestEvenInt(int64(scaled), int64(unitTotal))
			if err != nil {
				return nil, err
			}
			out[o.OptionId] = uint64(rounded)
		}
	default: // WeightNatural
		for _, o := range canonical {
			out[o.OptionId] = u.Values[o.OptionId]
		}
	}
	return out, nil
}

func mulChecked(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi != 0
}

func addChecked(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry != 0
}

package allocation

import (
	"sort"

	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rng"
	"github.com/opencivic/tallyengine/tallyerr"
	"github.com/opencivic/tallyengine/tiebreak"
)

// OverhangPolicy selects MMP's behavior when an option's local seats
// already exceed its proportional entitlement (spec section 4.4, §9 Open
// Question 3).
type OverhangPolicy int

const (
	// LeaveOverhangs expands the effective total seat count so every
	// option keeps at least its local seats.
	LeaveOverhangs OverhangPolicy = iota
	// Absorb keeps the total seat count fixed at the configured target by
	// removing seats from other options' top-ups, one seat at a time from
	// whichever option currently has the largest top-up (canonical order
	// on equal top-ups). The reduction is not proportional to each
	// option's top-up.
	Absorb
)

// TargetMethod tags which proportional family computes MMP's target
// distribution (spec section 4.4: "the parametrized proportional method").
type TargetMethod struct {
	UseHighestAverages bool
	Divisor            DivisorFamily // consulted iff UseHighestAverages
	Quota              QuotaFormula  // consulted otherwise
}

// MMPResult is MMP's output: the final allocation plus the intermediate
// target distribution and effective total seat count, for audit.
type MMPResult struct {
	Allocation          Allocation
	Targets             map[ids.OptionId]uint32
	EffectiveTotalSeats uint32
}

// MMP composes local seats (already allocated, typically via WTA per
// district and summed by the caller) with a nationally- or
// regionally-computed proportional target, topping up each option from
// local_i toward target_i (spec section 4.4).
func MMP(
	unitID ids.UnitId,
	localSeats map[ids.OptionId]uint32,
	partyVotes map[ids.OptionId]uint64,
	options []ids.OptionItem,
	totalSeatsTarget uint32,
	method TargetMethod,
	overhang OverhangPolicy,
	policy tiebreak.Policy,
	stream *rng.Stream,
) (MMPResult, []rng.TieCrumb, error) {
	known, err := optionSet(options)
	if err != nil {
		return MMPResult{}, nil, err
	}
	if bad, ok := checkUnknownScores(partyVotes, known); ok {
		return MMPResult{}, nil, &tallyerr.UnknownOption{OptionId: bad}
	}
	if bad, ok := checkUnknownScores(u64Map(localSeats), known); ok {
		return MMPResult{}, nil, &tallyerr.UnknownOption{OptionId: bad}
	}

	canonical := ids.CanonicalOrder(options)

	var targetAlloc Allocation
	var crumbs []rng.TieCrumb
	if method.UseHighestAverages {
		targetAlloc, crumbs, err = HighestAverages(unitID, partyVotes, options, totalSeatsTarget, method.Divisor, policy, stream)
	} else {
		targetAlloc, crumbs, err = LargestRemainder(unitID, partyVotes, options, totalSeatsTarget, method.Quota, policy, stream)
	}
	if err != nil {
		return MMPResult{}, nil, err
	}
	targets := targetAlloc.SeatsOrPower

	topups := make(map[ids.OptionId]uint32, len(canonical))
	overhangs := make(map[ids.OptionId]uint32, len(canonical))
	for _, o := range canonical {
		local := localSeats[o.OptionId]
		target := targets[o.OptionId]
		switch {
		case target > local:
			topups[o.OptionId] = target - local
		case local > target:
			overhangs[o.OptionId] = local - target
		}
	}

	var totalOverhang uint32
	for _, v := range overhangs {
		totalOverhang += v
	}

	final := make(map[ids.OptionId]uint32, len(canonical))
	effectiveTotal := uint32(0)

	if totalOverhang == 0 {
		for _, o := range canonical {
			final[o.OptionId] = localSeats[o.OptionId] + topups[o.OptionId]
			effectiveTotal += final[o.OptionId]
		}
		return MMPResult{Allocation: Allocation{UnitId: unitID, SeatsOrPower: final, LastSeatTie: targetAlloc.LastSeatTie},
			Targets: targets, EffectiveTotalSeats: effectiveTotal}, crumbs, nil
	}

	switch overhang {
	case LeaveOverhangs:
		for _, o := range canonical {
			local := localSeats[o.OptionId]
			v := local + topups[o.OptionId]
			if ov := overhangs[o.OptionId]; ov > 0 {
				v = local
			}
			final[o.OptionId] = v
			effectiveTotal += v
		}
		return MMPResult{Allocation: Allocation{UnitId: unitID, SeatsOrPower: final, LastSeatTie: targetAlloc.LastSeatTie},
			Targets: targets, EffectiveTotalSeats: effectiveTotal}, crumbs, nil

	case Absorb:
		var totalTopups uint32
		for _, v := range topups {
			totalTopups += v
		}
		if totalTopups < totalOverhang {
			return MMPResult{}, nil, &tallyerr.UnsupportedOverhang{
				Detail: "absorb policy requires reducing top-ups below zero",
			}
		}
		reduced := absorbProportionally(canonical, topups, totalOverhang)
		for _, o := range canonical {
			v := localSeats[o.OptionId] + reduced[o.OptionId]
			final[o.OptionId] = v
			effectiveTotal += v
		}
		return MMPResult{Allocation: Allocation{UnitId: unitID, SeatsOrPower: final, LastSeatTie: targetAlloc.LastSeatTie},
			Targets: targets, EffectiveTotalSeats: effectiveTotal}, crumbs, nil

	default:
		return MMPResult{}, nil, &tallyerr.UnsupportedOverhang{Detail: "unknown overhang policy"}
	}
}

// absorbProportionally removes exactly reduceBy seats from topups,
// descending by each option's current top-up (largest-remainder-style,
// deterministic via canonical order on exact ties), never reducing any
// option below zero.
func absorbProportionally(canonical []ids.OptionItem, topups map[ids.OptionId]uint32, reduceBy uint32) map[ids.OptionId]uint32 {
	out := make(map[ids.OptionId]uint32, len(topups))
	for k, v := range topups {
		out[k] = v
	}

	type entry struct {
		id  ids.OptionId
		idx int
	}
	order := make(map[ids.OptionId]int, len(canonical))
	for i, o := range canonical {
		order[o.OptionId] = i
	}

	for reduceBy > 0 {
		var candidates []entry
		var max uint32
		for id, v := range out {
			if v == 0 {
				continue
			}
			switch {
			case len(candidates) == 0 || v > max:
				max = v
				candidates = []entry{{id: id, idx: order[id]}}
			case v == max:
				candidates = append(candidates, entry{id: id, idx: order[id]})
			}
		}
		if len(candidates) == 0 {
			break
		}
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].idx < candidates[j].idx })
		out[candidates[0].id]--
		reduceBy--
	}
	return out
}

func u64Map(m map[ids.OptionId]uint32) map[ids.OptionId]uint64 {
	out := make(map[ids.OptionId]uint64, len(m))
	for k, v := range m {
		out[k] = uint64(v)
	}
	return out
}

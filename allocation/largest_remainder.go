package allocation

import (
	"sort"

	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rng"
	"github.com/opencivic/tallyengine/tallyerr"
	"github.com/opencivic/tallyengine/tiebreak"
)

// QuotaFormula selects the quota used by LargestRemainder.
type QuotaFormula int

const (
	// QuotaHare: floor(total / seats).
	QuotaHare QuotaFormula = iota
	// QuotaDroop: floor(total / (seats+1)) + 1.
	QuotaDroop
)

type remainderEntry struct {
	id        ids.OptionId
	remainder uint64
}

// LargestRemainder allocates seats by quota, then distributes the
// remaining seats to the largest remainders in descending order, breaking
// a tie at the last seat per policy (spec section 4.4).
func LargestRemainder(
	unitID ids.UnitId,
	votes map[ids.OptionId]uint64,
	options []ids.OptionItem,
	seats uint32,
	formula QuotaFormula,
	policy tiebreak.Policy,
	stream *rng.Stream,
) (Allocation, []rng.TieCrumb, error) {
	known, err := optionSet(options)
	if err != nil {
		return Allocation{}, nil, err
	}
	if bad, ok := checkUnknownScores(votes, known); ok {
		return Allocation{}, nil, &tallyerr.UnknownOption{OptionId: bad}
	}

	canonical := ids.CanonicalOrder(options)
	out := make(map[ids.OptionId]uint32, len(canonical))
	if seats == 0 || len(canonical) == 0 {
		return Allocation{UnitId: unitID, SeatsOrPower: out}, nil, nil
	}

	var total uint64
	for _, o := range canonical {
		total += votes[o.OptionId]
	}

	quota := computeQuota(total, seats, formula)

	remainders := make([]remainderEntry, len(canonical))
	assignedSeats := uint32(0)

	for i, o := range canonical {
		v := votes[o.OptionId]
		var base uint64
		var rem uint64
		if quota > 0 {
			base = v / quota
			rem = v % quota
		} else {
			rem = v
		}
		out[o.OptionId] = uint32(base)
		assignedSeats += uint32(base)
		remainders[i] = remainderEntry{id: o.OptionId, remainder: rem}
	}

	// Cap overallocation from the quota step (can occur only in
	// degenerate configurations); never exceed the seat count.
	if assignedSeats > seats {
		assignedSeats = seats
	}

	remaining := int(seats) - int(assignedSeats)
	var crumbs []rng.TieCrumb

	for remaining > 0 && len(remainders) > 0 {
		sort.SliceStable(remainders, func(i, j int) bool {
			return remainders[i].remainder > remainders[j].remainder
		})

		top := remainders[0].remainder
		var tiedIdx []int
		for i, r := range remainders {
			if r.remainder == top {
				tiedIdx = append(tiedIdx, i)
			} else {
				break
			}
		}

		if len(tiedIdx) <= remaining {
			for _, idx := range tiedIdx {
				out[remainders[idx].id]++
			}
			remaining -= len(tiedIdx)
			remainders = removeIndices(remainders, tiedIdx)
			continue
		}

		// More ties than remaining seats: resolve one at a time via
		// policy, each draw logged.
		tiedIds := make([]ids.OptionId, len(tiedIdx))
		for i, idx := range tiedIdx {
			tiedIds[i] = remainders[idx].id
		}
		orderedTied := canonicalSubset(canonical, tiedIds)

		for remaining > 0 && len(orderedTied) > 0 {
			res := tiebreak.Resolve(orderedTied, canonical, policy, stream)
			if res.WasRandom && stream != nil {
				crumbs = append(crumbs, stream.LogPick("largest_remainder_tie", string(res.Winner)))
			}
			out[res.Winner]++
			remaining--
			orderedTied = removeOption(orderedTied, res.Winner)
		}
		break
	}

	lastSeatTie := len(crumbs) > 0
	return Allocation{UnitId: unitID, SeatsOrPower: out, LastSeatTie: lastSeatTie}, crumbs, nil
}

func computeQuota(total uint64, seats uint32, formula QuotaFormula) uint64 {
	switch formula {
	case QuotaDroop:
		return total/uint64(seats+1) + 1
	default: // QuotaHare
		if seats == 0 {
			return 0
		}
		return total / uint64(seats)
	}
}

func removeIndices(entries []remainderEntry, idx []int) []remainderEntry {
	skip := make(map[int]bool, len(idx))
	for _, i := range idx {
		skip[i] = true
	}
	out := entries[:0:0]
	for i, e := range entries {
		if !skip[i] {
			out = append(out, e)
		}
	}
	return out
}

func canonicalSubset(canonical []ids.OptionItem, subset []ids.OptionId) []ids.OptionId {
	set := make(map[ids.OptionId]bool, len(subset))
	for _, s := range subset {
		set[s] = true
	}
	out := make([]ids.OptionId, 0, len(subset))
	for _, o := range canonical {
		if set[o.OptionId] {
			out = append(out, o.OptionId)
		}
	}
	return out
}

func removeOption(xs []ids.OptionId, target ids.OptionId) []ids.OptionId {
	out := make([]ids.OptionId, 0, len(xs))
	for _, x := range xs {
		if x != target {
			out = append(out, x)
		}
	}
	return out
}

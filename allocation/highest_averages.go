package allocation

import (
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rng"
	"github.com/opencivic/tallyengine/rounding"
	"github.com/opencivic/tallyengine/tallyerr"
	"github.com/opencivic/tallyengine/tiebreak"
)

// DivisorFamily selects the highest-averages divisor sequence.
type DivisorFamily int

const (
	// DivisorDHondt: divisor(s) = s + 1.
	DivisorDHondt DivisorFamily = iota
	// DivisorSainteLague: divisor(s) = 2s + 1.
	DivisorSainteLague
)

func divisor(family DivisorFamily, seatsSoFar uint32) int64 {
	s := int64(seatsSoFar)
	if family == DivisorSainteLague {
		return 2*s + 1
	}
	return s + 1
}

// HighestAverages allocates seats one at a time, each going to the option
// maximizing votes_i / divisor(seats_so_far_i), compared exactly via
// rounding.CmpRatio (spec section 4.4: "never floating point").
func HighestAverages(
	unitID ids.UnitId,
	votes map[ids.OptionId]uint64,
	options []ids.OptionItem,
	seats uint32,
	family DivisorFamily,
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
	seatsSoFar := make(map[ids.OptionId]uint32, len(canonical))
	for _, o := range canonical {
		out[o.OptionId] = 0
		seatsSoFar[o.OptionId] = 0
	}

	var crumbs []rng.TieCrumb
	lastSeatTie := false

	for round := uint32(0); round < seats; round++ {
		var best []ids.OptionId
		var bestNum, bestDen int64

		for _, o := range canonical {
			v := int64(votes[o.OptionId])
			d := divisor(family, seatsSoFar[o.OptionId])

			if len(best) == 0 {
				best = []ids.OptionId{o.OptionId}
				bestNum, bestDen = v, d
				continue
			}
			cmp, err := rounding.CmpRatio(v, d, bestNum, bestDen)
			if err != nil {
				return Allocation{}, nil, tallyerr.ErrArithmeticOverflow
			}
			switch {
			case cmp > 0:
				best = []ids.OptionId{o.OptionId}
				bestNum, bestDen = v, d
			case cmp == 0:
				best = append(best, o.OptionId)
			}
		}

		var winner ids.OptionId
		tie := len(best) > 1
		if !tie {
			winner = best[0]
		} else {
			res := tiebreak.Resolve(best, canonical, policy, stream)
			winner = res.Winner
			if res.WasRandom && stream != nil {
				crumbs = append(crumbs, stream.LogPick("highest_averages_tie", string(res.Winner)))
			}
		}

		out[winner]++
		seatsSoFar[winner]++
		if round == seats-1 {
			lastSeatTie = tie
		}
	}

	return Allocation{UnitId: unitID, SeatsOrPower: out, LastSeatTie: lastSeatTie}, crumbs, nil
}

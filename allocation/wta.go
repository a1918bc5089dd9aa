package allocation

import (
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rng"
	"github.com/opencivic/tallyengine/tallyerr"
	"github.com/opencivic/tallyengine/tiebreak"
)

// WTA allocates all power (encoded as 100) to the single highest-scoring
// option. Requires magnitude 1 (spec section 4.4); scans options in
// canonical order, tracking the running maximum and the tied-at-max set.
func WTA(
	unitID ids.UnitId,
	scores map[ids.OptionId]uint64,
	options []ids.OptionItem,
	magnitude uint32,
	policy tiebreak.Policy,
	stream *rng.Stream,
) (Allocation, *rng.TieCrumb, error) {
	if magnitude != 1 {
		return Allocation{}, nil, &tallyerr.InvalidMagnitude{Got: magnitude, Want: 1}
	}

	known, err := optionSet(options)
	if err != nil {
		return Allocation{}, nil, err
	}
	if bad, ok := checkUnknownScores(scores, known); ok {
		return Allocation{}, nil, &tallyerr.UnknownOption{OptionId: bad}
	}

	canonical := ids.CanonicalOrder(options)
	var max uint64
	var tied []ids.OptionId
	for _, o := range canonical {
		v := scores[o.OptionId]
		switch {
		case len(tied) == 0 || v > max:
			max = v
			tied = []ids.OptionId{o.OptionId}
		case v == max:
			tied = append(tied, o.OptionId)
		}
	}

	if len(tied) == 1 {
		return Allocation{
			UnitId:       unitID,
			SeatsOrPower: map[ids.OptionId]uint32{tied[0]: 100},
		}, nil, nil
	}

	res := tiebreak.Resolve(tied, canonical, policy, stream)
	var crumb *rng.TieCrumb
	if res.WasRandom && stream != nil {
		c := stream.LogPick("wta_tie", string(res.Winner))
		crumb = &c
	}
	return Allocation{
		UnitId:       unitID,
		SeatsOrPower: map[ids.OptionId]uint32{res.Winner: 100},
		LastSeatTie:  true,
	}, crumb, nil
}

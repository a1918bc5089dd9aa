package pipeline

import (
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rng"
	"github.com/opencivic/tallyengine/tabulation"
	"github.com/opencivic/tallyengine/tiebreak"
)

// unitTabulation is one unit's tabulation outcome normalized to a scores
// map, regardless of which of the five methods produced it: plurality,
// approval, and score already are per-option score maps; IRV and
// Condorcet are single-winner methods whose "scores" are their final
// round tallies (IRV) or simply the elected winner at 1 (Condorcet has no
// natural vote-count analog once Schulze completion is used).
type unitTabulation struct {
	scores      map[ids.OptionId]uint64
	irvRounds   []tabulation.IRVRound
	condorcet   *tabulation.PairwiseMatrix
	singleWinner ids.OptionId // set iff IRV or Condorcet
	isSingleWinner bool
}

func tabulateUnit(
	unit UnitDef,
	ballots UnitBallots,
	p Params,
	policy tiebreak.Policy,
	stream *rng.Stream,
) (unitTabulation, []rng.TieCrumb, error) {
	switch p.TabulationMethod {
	case tabulation.MethodPlurality:
		us, err := tabulation.Plurality(unit.UnitId, ballots.Plurality, ballots.Turnout, unit.Options)
		if err != nil {
			return unitTabulation{}, nil, err
		}
		return unitTabulation{scores: us.Scores}, nil, nil

	case tabulation.MethodApproval:
		us, err := tabulation.Approval(unit.UnitId, ballots.Approval, ballots.Turnout, unit.Options)
		if err != nil {
			return unitTabulation{}, nil, err
		}
		return unitTabulation{scores: us.Scores}, nil, nil

	case tabulation.MethodScore:
		us, err := tabulation.Score(unit.UnitId, ballots.Score, ballots.Turnout, unit.Options)
		if err != nil {
			return unitTabulation{}, nil, err
		}
		return unitTabulation{scores: us.Scores}, nil, nil

	case tabulation.MethodIRV:
		res, err := tabulation.IRV(unit.UnitId, ballots.Ranked, ballots.Turnout, unit.Options,
			tabulation.IRVOptions{ReduceContinuingDenominator: p.ReduceContinuingDenominator}, policy, stream)
		if err != nil {
			return unitTabulation{}, nil, err
		}
		var crumbs []rng.TieCrumb
		for _, r := range res.Rounds {
			if r.TieCrumb != nil {
				crumbs = append(crumbs, *r.TieCrumb)
			}
		}
		return unitTabulation{
			scores: res.FinalTallies, singleWinner: res.Winner, isSingleWinner: true,
			irvRounds: res.Rounds,
		}, crumbs, nil

	case tabulation.MethodCondorcet:
		res, err := tabulation.Condorcet(unit.UnitId, ballots.Ranked, ballots.Turnout, unit.Options, policy, stream)
		if err != nil {
			return unitTabulation{}, nil, err
		}
		var crumbs []rng.TieCrumb
		if res.TieCrumb != nil {
			crumbs = append(crumbs, *res.TieCrumb)
		}
		return unitTabulation{
			scores:       map[ids.OptionId]uint64{res.Winner: 1},
			singleWinner: res.Winner, isSingleWinner: true,
			condorcet: &res.StrongestPaths,
		}, crumbs, nil

	default:
		us, err := tabulation.Plurality(unit.UnitId, ballots.Plurality, ballots.Turnout, unit.Options)
		if err != nil {
			return unitTabulation{}, nil, err
		}
		return unitTabulation{scores: us.Scores}, nil, nil
	}
}

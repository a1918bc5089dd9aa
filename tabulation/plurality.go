package tabulation

import (
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/tallyerr"
)

// PluralityVotes is the plurality ballot payload: a per-option vote count.
// RequireExplicitPresence selects the stricter variant of spec section
// 4.3's plurality rule: when true, every canonical option must have a key
// in Counts (even if zero), failing with tallyerr.MissingOption otherwise;
// when false, a missing option is treated as zero.
type PluralityVotes struct {
	Counts                   map[ids.OptionId]uint64
	RequireExplicitPresence bool
}

// Plurality tabulates raw per-option vote counts. Scores equal the input
// counts exactly; no option's count may exceed valid_ballots, and the sum
// of all counts may not exceed valid_ballots either.
func Plurality(unitID ids.UnitId, votes PluralityVotes, turnout TallyTotals, options []ids.OptionItem) (UnitScores, error) {
	known, err := optionSet(options)
	if err != nil {
		return UnitScores{}, err
	}
	if err := checkUnknown(votes.Counts, known, options); err != nil {
		return UnitScores{}, err
	}

	if votes.RequireExplicitPresence {
		for _, o := range options {
			if _, present := votes.Counts[o.OptionId]; !present {
				return UnitScores{}, &tallyerr.MissingOption{OptionId: o.OptionId}
			}
		}
	}

	scores := make(map[ids.OptionId]uint64, len(options))
	values := make([]uint64, 0, len(options))
	for _, o := range options {
		v := votes.Counts[o.OptionId]
		if v > turnout.ValidBallots {
			return UnitScores{}, &tallyerr.OptionVotesExceedValid{
				OptionId: o.OptionId, Votes: v, Valid: turnout.ValidBallots,
			}
		}
		scores[o.OptionId] = v
		values = append(values, v)
	}

	sum, overflow := sumChecked(values)
	if overflow {
		return UnitScores{}, tallyerr.ErrArithmeticOverflow
	}
	if sum > turnout.ValidBallots {
		return UnitScores{}, &tallyerr.TallyExceedsValid{Sum: sum, Valid: turnout.ValidBallots}
	}

	return UnitScores{UnitId: unitID, Turnout: turnout, Scores: scores}, nil
}

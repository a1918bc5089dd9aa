package tabulation

import (
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/tallyerr"
)

// ApprovalVotes is the approval ballot payload: per-option approval
// counts. Each option's approvals must individually be <= valid_ballots,
// but the sum across options is NOT bounded by valid_ballots — voters may
// approve more than one option (spec section 4.3, stated explicitly).
type ApprovalVotes struct {
	Approvals map[ids.OptionId]uint64
}

// Approval tabulates per-option approval counts.
func Approval(unitID ids.UnitId, votes ApprovalVotes, turnout TallyTotals, options []ids.OptionItem) (UnitScores, error) {
	known, err := optionSet(options)
	if err != nil {
		return UnitScores{}, err
	}
	if err := checkUnknown(votes.Approvals, known, options); err != nil {
		return UnitScores{}, err
	}

	scores := make(map[ids.OptionId]uint64, len(options))
	for _, o := range options {
		v := votes.Approvals[o.OptionId]
		if v > turnout.ValidBallots {
			return UnitScores{}, &tallyerr.OptionVotesExceedValid{
				OptionId: o.OptionId, Votes: v, Valid: turnout.ValidBallots,
			}
		}
		scores[o.OptionId] = v
	}

	return UnitScores{UnitId: unitID, Turnout: turnout, Scores: scores}, nil
}

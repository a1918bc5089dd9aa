package pipeline

import (
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/tabulation"
)

// UnitBallots is one unit's turnout plus its method-specific payload
// (spec section 6: "Ballots: per-unit TallyTotals plus method-specific
// payload"). Only the field matching Params.TabulationMethod is
// consulted by Run; the others are left zero-valued.
type UnitBallots struct {
	UnitId  ids.UnitId
	Turnout tabulation.TallyTotals

	Plurality tabulation.PluralityVotes
	Approval  tabulation.ApprovalVotes
	Score     tabulation.ScoreVotes
	Ranked    []tabulation.RankedBallot
}

// Ballots is the full dynamic input: every unit's turnout and ballot
// payload.
type Ballots struct {
	Units []UnitBallots
}

// UnitByID returns the UnitBallots for id, or false if absent.
func (b Ballots) UnitByID(id ids.UnitId) (UnitBallots, bool) {
	for _, u := range b.Units {
		if u.UnitId == id {
			return u, true
		}
	}
	return UnitBallots{}, false
}

package tabulation

import (
	"math/bits"

	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/tallyerr"
)

// ScoreVotes is the score-voting ballot payload: a per-option summed
// score, plus the per-ballot maximum score allowed, which bounds the sum:
// Sigma <= valid_ballots * MaxScore.
type ScoreVotes struct {
	Sums     map[ids.OptionId]uint64
	MaxScore uint64
}

// Score tabulates summed per-option scores.
func Score(unitID ids.UnitId, votes ScoreVotes, turnout TallyTotals, options []ids.OptionItem) (UnitScores, error) {
	known, err := optionSet(options)
	if err != nil {
		return UnitScores{}, err
	}
	if err := checkUnknown(votes.Sums, known, options); err != nil {
		return UnitScores{}, err
	}

	bound, overflow := mulChecked(turnout.ValidBallots, votes.MaxScore)
	if overflow {
		return UnitScores{}, tallyerr.ErrArithmeticOverflow
	}

	scores := make(map[ids.OptionId]uint64, len(options))
	values := make([]uint64, 0, len(options))
	for _, o := range options {
		v := votes.Sums[o.OptionId]
		scores[o.OptionId] = v
		values = append(values, v)
	}

	sum, sumOverflow := sumChecked(values)
	if sumOverflow {
		return UnitScores{}, tallyerr.ErrArithmeticOverflow
	}
	if sum > bound {
		return UnitScores{}, &tallyerr.TallyExceedsValid{Sum: sum, Valid: bound}
	}

	return UnitScores{UnitId: unitID, Turnout: turnout, Scores: scores}, nil
}

// mulChecked multiplies two uint64s, reporting overflow via the high word
// of the exact 128-bit product.
func mulChecked(a, b uint64) (product uint64, overflow bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi != 0
}

package tabulation_test

import (
	"testing"

	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/tabulation"
	"github.com/opencivic/tallyengine/tallyerr"

	"github.com/stretchr/testify/require"
)

func TestScoreHappyPath(t *testing.T) {
	votes := tabulation.ScoreVotes{
		Sums:     map[ids.OptionId]uint64{"A": 150, "B": 300, "C": 50},
		MaxScore: 5,
	}
	turnout := tabulation.TallyTotals{ValidBallots: 100}

	got, err := tabulation.Score("u1", votes, turnout, abc)
	require.NoError(t, err)
	require.Equal(t, uint64(150), got.Scores["A"])
	require.Equal(t, uint64(300), got.Scores["B"])
}

func TestScoreSumExceedsBound(t *testing.T) {
	ab := abc[:2]
	votes := tabulation.ScoreVotes{
		Sums:     map[ids.OptionId]uint64{"A": 300, "B": 300},
		MaxScore: 5,
	}
	turnout := tabulation.TallyTotals{ValidBallots: 100} // bound = 500

	_, err := tabulation.Score("u1", votes, turnout, ab)
	var e *tallyerr.TallyExceedsValid
	require.ErrorAs(t, err, &e)
	require.Equal(t, uint64(600), e.Sum)
	require.Equal(t, uint64(500), e.Valid)
}

func TestScoreUnknownKey(t *testing.T) {
	ab := abc[:2]
	votes := tabulation.ScoreVotes{Sums: map[ids.OptionId]uint64{"X": 1}, MaxScore: 5}
	turnout := tabulation.TallyTotals{ValidBallots: 10}

	_, err := tabulation.Score("u1", votes, turnout, ab)
	require.ErrorIs(t, err, tallyerr.ErrUnknownOption)
}

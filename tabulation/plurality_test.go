package tabulation_test

import (
	"testing"

	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/tabulation"
	"github.com/opencivic/tallyengine/tallyerr"

	"github.com/stretchr/testify/require"
)

var abc = []ids.OptionItem{
	{OptionId: "A", OrderIndex: 0},
	{OptionId: "B", OrderIndex: 1},
	{OptionId: "C", OrderIndex: 2},
}

func TestPluralityHappyPath(t *testing.T) {
	votes := tabulation.PluralityVotes{Counts: map[ids.OptionId]uint64{"A": 10, "B": 20, "C": 30}}
	turnout := tabulation.TallyTotals{ValidBallots: 60}

	got, err := tabulation.Plurality("u1", votes, turnout, abc)
	require.NoError(t, err)
	require.Equal(t, uint64(10), got.Scores["A"])
	require.Equal(t, uint64(20), got.Scores["B"])
	require.Equal(t, uint64(30), got.Scores["C"])
}

func TestPluralityUnknownKey(t *testing.T) {
	ab := abc[:2]
	votes := tabulation.PluralityVotes{Counts: map[ids.OptionId]uint64{"A": 5, "X": 1}}
	turnout := tabulation.TallyTotals{ValidBallots: 10}

	_, err := tabulation.Plurality("u1", votes, turnout, ab)
	require.ErrorIs(t, err, tallyerr.ErrUnknownOption)
	var uo *tallyerr.UnknownOption
	require.ErrorAs(t, err, &uo)
	require.Equal(t, ids.OptionId("X"), uo.OptionId)
}

func TestPluralitySumExceedsValid(t *testing.T) {
	ab := abc[:2]
	votes := tabulation.PluralityVotes{Counts: map[ids.OptionId]uint64{"A": 50, "B": 51}}
	turnout := tabulation.TallyTotals{ValidBallots: 100}

	_, err := tabulation.Plurality("u1", votes, turnout, ab)
	var e *tallyerr.TallyExceedsValid
	require.ErrorAs(t, err, &e)
	require.Equal(t, uint64(101), e.Sum)
	require.Equal(t, uint64(100), e.Valid)
}

func TestPluralityMissingOptionStrict(t *testing.T) {
	votes := tabulation.PluralityVotes{
		Counts:                  map[ids.OptionId]uint64{"A": 1, "B": 2},
		RequireExplicitPresence: true,
	}
	turnout := tabulation.TallyTotals{ValidBallots: 10}
	_, err := tabulation.Plurality("u1", votes, turnout, abc)
	var mo *tallyerr.MissingOption
	require.ErrorAs(t, err, &mo)
	require.Equal(t, ids.OptionId("C"), mo.OptionId)
}

func TestPluralityDuplicateOptionInRegistry(t *testing.T) {
	dup := []ids.OptionItem{
		{OptionId: "A", OrderIndex: 0},
		{OptionId: "B", OrderIndex: 1},
		{OptionId: "A", OrderIndex: 2},
	}
	votes := tabulation.PluralityVotes{Counts: map[ids.OptionId]uint64{"A": 5, "B": 5}}
	turnout := tabulation.TallyTotals{ValidBallots: 10}

	_, err := tabulation.Plurality("u1", votes, turnout, dup)
	require.ErrorIs(t, err, tallyerr.ErrDuplicateOptionInRegistry)
	var e *tallyerr.DuplicateOptionInRegistry
	require.ErrorAs(t, err, &e)
	require.Equal(t, ids.OptionId("A"), e.OptionId)
}

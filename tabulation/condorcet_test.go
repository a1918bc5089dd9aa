package tabulation_test

import (
	"testing"

	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/tabulation"
	"github.com/opencivic/tallyengine/tallyerr"
	"github.com/opencivic/tallyengine/tiebreak"

	"github.com/stretchr/testify/require"
)

func TestCondorcetDirectWinner(t *testing.T) {
	ballots := []tabulation.RankedBallot{
		{"A", "B", "C"}, {"A", "B", "C"}, {"A", "B", "C"}, {"A", "B", "C"},
		{"B", "C", "A"},
		{"C", "A", "B"},
	}
	turnout := tabulation.TallyTotals{ValidBallots: 6}

	got, err := tabulation.Condorcet("u1", ballots, turnout, abc, tiebreak.DeterministicOrder, nil)
	require.NoError(t, err)
	require.Equal(t, ids.OptionId("A"), got.Winner)
	require.Nil(t, got.TieCrumb)
	require.Equal(t, got.Pairwise, got.StrongestPaths)
}

func TestCondorcetSchulzeResolvesCycle(t *testing.T) {
	// No option beats both others pairwise (A loses to C, B loses to A,
	// C loses to B), so there is no direct Condorcet winner; the
	// Schulze strongest-path closure nonetheless singles out A.
	ballots := make([]tabulation.RankedBallot, 0, 10)
	for i := 0; i < 4; i++ {
		ballots = append(ballots, tabulation.RankedBallot{"A", "B", "C"})
	}
	for i := 0; i < 3; i++ {
		ballots = append(ballots, tabulation.RankedBallot{"B", "C", "A"})
	}
	for i := 0; i < 3; i++ {
		ballots = append(ballots, tabulation.RankedBallot{"C", "A", "B"})
	}
	turnout := tabulation.TallyTotals{ValidBallots: 10}

	got, err := tabulation.Condorcet("u1", ballots, turnout, abc, tiebreak.DeterministicOrder, nil)
	require.NoError(t, err)
	require.Equal(t, ids.OptionId("A"), got.Winner)
	require.Nil(t, got.TieCrumb)

	// A's raw pairwise margin over C (index 0 -> index 2) is weaker than
	// its closed strongest-path margin, proving the Schulze closure
	// actually ran rather than short-circuiting on a direct winner.
	require.Equal(t, int64(4), got.Pairwise.At(0, 2))
	require.Equal(t, int64(7), got.StrongestPaths.At(0, 2))
}

func TestCondorcetUnknownOption(t *testing.T) {
	ballots := []tabulation.RankedBallot{{"X", "A"}}
	turnout := tabulation.TallyTotals{ValidBallots: 1}

	_, err := tabulation.Condorcet("u1", ballots, turnout, abc, tiebreak.DeterministicOrder, nil)
	var e *tallyerr.UnknownOption
	require.ErrorAs(t, err, &e)
	require.Equal(t, ids.OptionId("X"), e.OptionId)
}

package tabulation_test

import (
	"testing"

	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rng"
	"github.com/opencivic/tallyengine/tabulation"
	"github.com/opencivic/tallyengine/tallyerr"
	"github.com/opencivic/tallyengine/tiebreak"

	"github.com/stretchr/testify/require"
)

func TestIRVMajorityOnFirstRound(t *testing.T) {
	ballots := []tabulation.RankedBallot{
		{"A", "B"}, {"A", "C"}, {"A", "B"},
		{"B", "A"},
		{"C", "A"},
	}
	turnout := tabulation.TallyTotals{ValidBallots: 5}

	got, err := tabulation.IRV("u1", ballots, turnout, abc, tabulation.IRVOptions{}, tiebreak.DeterministicOrder, nil)
	require.NoError(t, err)
	require.Equal(t, ids.OptionId("A"), got.Winner)
	require.Len(t, got.Rounds, 1)
	require.Equal(t, ids.OptionId("A"), got.Rounds[0].Elected)
}

func TestIRVEliminationTransferAndExhaustion(t *testing.T) {
	// A and B are tied at two first preferences each; C trails with one
	// and is eliminated first but has no second preference, so its
	// ballot exhausts. The tie between A and B for the weakest spot is
	// then broken deterministically (canonical order favors A), B
	// absorbs A's transfer, and wins on the following round's majority.
	ballots := []tabulation.RankedBallot{
		{"A", "B"}, {"A", "B"},
		{"B"}, {"B"},
		{"C"},
	}
	turnout := tabulation.TallyTotals{ValidBallots: 5}

	got, err := tabulation.IRV("u1", ballots, turnout, abc, tabulation.IRVOptions{}, tiebreak.DeterministicOrder, nil)
	require.NoError(t, err)
	require.Len(t, got.Rounds, 3)
	require.Equal(t, ids.OptionId("C"), got.Rounds[0].Eliminated)
	require.Equal(t, ids.OptionId("A"), got.Rounds[1].Eliminated)
	require.Equal(t, ids.OptionId("B"), got.Winner)
	require.Equal(t, uint64(4), got.FinalTallies["B"])
}

func TestIRVTiedEliminationResolvesRandomly(t *testing.T) {
	// B and C tie for last place and both fall back to A; whichever is
	// eliminated, its ballots transfer to A, which then clears a
	// majority on the second round.
	ballots := []tabulation.RankedBallot{
		{"A"}, {"A"}, {"A"},
		{"B", "A"}, {"B", "A"},
		{"C", "A"}, {"C", "A"},
	}
	turnout := tabulation.TallyTotals{ValidBallots: 7}
	stream := rng.New(42)

	got, err := tabulation.IRV("u1", ballots, turnout, abc, tabulation.IRVOptions{}, tiebreak.Random, stream)
	require.NoError(t, err)
	require.Equal(t, ids.OptionId("A"), got.Winner)
	require.NotNil(t, got.Rounds[0].TieCrumb)
	require.Equal(t, "irv_elimination", got.Rounds[0].TieCrumb.Ctx)
	require.Contains(t, []ids.OptionId{"B", "C"}, got.Rounds[0].Eliminated)
}

func TestIRVUnknownOption(t *testing.T) {
	ballots := []tabulation.RankedBallot{{"X"}}
	turnout := tabulation.TallyTotals{ValidBallots: 1}

	_, err := tabulation.IRV("u1", ballots, turnout, abc, tabulation.IRVOptions{}, tiebreak.DeterministicOrder, nil)
	var e *tallyerr.UnknownOption
	require.ErrorAs(t, err, &e)
	require.Equal(t, ids.OptionId("X"), e.OptionId)
}

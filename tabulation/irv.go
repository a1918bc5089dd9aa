package tabulation

import (
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rng"
	"github.com/opencivic/tallyengine/tallyerr"
	"github.com/opencivic/tallyengine/tiebreak"
)

// RankedBallot is one voter's ranking, most-preferred first. A ballot may
// be partial (omit some options entirely); once every ranked option on a
// ballot has been eliminated, the ballot is exhausted.
type RankedBallot []ids.OptionId

// IRVOptions configures instant-runoff voting.
type IRVOptions struct {
	// ReduceContinuingDenominator selects the continuing denominator used
	// for the majority test: when true, it is valid_ballots minus ballots
	// exhausted so far; when false, it remains valid_ballots throughout
	// (spec section 4.3, step 5).
	ReduceContinuingDenominator bool
}

// IRVRound records one round's tallies, any elimination, transfers, and
// the running exhausted count, for audit.
type IRVRound struct {
	ContinuingOptions []ids.OptionId
	Tallies           map[ids.OptionId]uint64
	Denominator       uint64
	Elected           ids.OptionId // set iff this round elected a winner
	Eliminated        ids.OptionId // set iff this round eliminated an option
	ExhaustedTotal    uint64       // cumulative exhausted ballots after this round
	TieCrumb          *rng.TieCrumb
}

// IRVResult is the outcome of a full IRV count.
type IRVResult struct {
	UnitId           ids.UnitId
	Turnout          TallyTotals
	Winner           ids.OptionId
	FinalTallies     map[ids.OptionId]uint64
	FinalDenominator uint64
	Rounds           []IRVRound
}

// IRV runs instant-runoff voting to completion (spec section 4.3).
func IRV(
	unitID ids.UnitId,
	ballots []RankedBallot,
	turnout TallyTotals,
	options []ids.OptionItem,
	opts IRVOptions,
	policy tiebreak.Policy,
	stream *rng.Stream,
) (IRVResult, error) {
	known, err := optionSet(options)
	if err != nil {
		return IRVResult{}, err
	}
	for _, b := range ballots {
		for _, opt := range b {
			if !known[opt] {
				return IRVResult{}, &tallyerr.UnknownOption{OptionId: opt}
			}
		}
	}

	canonical := ids.CanonicalOrder(options)
	continuing := make(map[ids.OptionId]bool, len(canonical))
	for _, o := range canonical {
		continuing[o.OptionId] = true
	}

	var rounds []IRVRound
	var exhaustedTotal uint64

	for {
		tallies := make(map[ids.OptionId]uint64, len(continuing))
		for id := range continuing {
			tallies[id] = 0
		}
		roundExhausted := uint64(0)
		for _, b := range ballots {
			choice, exhausted := firstContinuingChoice(b, continuing)
			if exhausted {
				roundExhausted++
				continue
			}
			tallies[choice]++
		}
		// An exhausted ballot stays exhausted in every later round, so this
		// round's count is already the cumulative total.
		exhaustedTotal = roundExhausted

		denominator := turnout.ValidBallots
		if opts.ReduceContinuingDenominator {
			denominator = turnout.ValidBallots - exhaustedTotal
		}

		remaining := continuingInOrder(canonical, continuing)

		if winner, ok := findMajority(remaining, tallies, denominator); ok {
			rounds = append(rounds, IRVRound{
				ContinuingOptions: remaining,
				Tallies:           cloneTallies(tallies),
				Denominator:       denominator,
				Elected:           winner,
				ExhaustedTotal:    exhaustedTotal,
			})
			return IRVResult{
				UnitId: unitID, Turnout: turnout, Winner: winner,
				FinalTallies: cloneTallies(tallies), FinalDenominator: denominator,
				Rounds: rounds,
			}, nil
		}

		if len(remaining) == 1 {
			winner := remaining[0]
			rounds = append(rounds, IRVRound{
				ContinuingOptions: remaining,
				Tallies:           cloneTallies(tallies),
				Denominator:       denominator,
				Elected:           winner,
				ExhaustedTotal:    exhaustedTotal,
			})
			return IRVResult{
				UnitId: unitID, Turnout: turnout, Winner: winner,
				FinalTallies: cloneTallies(tallies), FinalDenominator: denominator,
				Rounds: rounds,
			}, nil
		}

		eliminated, crumb := eliminateLowest(remaining, tallies, canonical, policy, stream)
		continuing[eliminated] = false
		delete(continuing, eliminated)

		rounds = append(rounds, IRVRound{
			ContinuingOptions: remaining,
			Tallies:           cloneTallies(tallies),
			Denominator:       denominator,
			Eliminated:        eliminated,
			ExhaustedTotal:    exhaustedTotal,
			TieCrumb:          crumb,
		})
	}
}

// firstContinuingChoice returns the first option on b that is still
// continuing, or ("", true) if b has no continuing option left.
func firstContinuingChoice(b RankedBallot, continuing map[ids.OptionId]bool) (ids.OptionId, bool) {
	for _, o := range b {
		if continuing[o] {
			return o, false
		}
	}
	return "", true
}

// continuingInOrder filters canonical down to the options still
// continuing, preserving canonical order.
func continuingInOrder(canonical []ids.OptionItem, continuing map[ids.OptionId]bool) []ids.OptionId {
	out := make([]ids.OptionId, 0, len(canonical))
	for _, o := range canonical {
		if continuing[o.OptionId] {
			out = append(out, o.OptionId)
		}
	}
	return out
}

// findMajority reports the option with a strict majority of denominator,
// if any. denominator == 0 can never yield a majority.
func findMajority(remaining []ids.OptionId, tallies map[ids.OptionId]uint64, denominator uint64) (ids.OptionId, bool) {
	for _, id := range remaining {
		if denominator > 0 && tallies[id]*2 > denominator {
			return id, true
		}
	}
	return "", false
}

// eliminateLowest finds the continuing option(s) with the minimum tally
// and resolves a tie among them via policy.
func eliminateLowest(
	remaining []ids.OptionId,
	tallies map[ids.OptionId]uint64,
	canonical []ids.OptionItem,
	policy tiebreak.Policy,
	stream *rng.Stream,
) (ids.OptionId, *rng.TieCrumb) {
	min := tallies[remaining[0]]
	for _, id := range remaining[1:] {
		if tallies[id] < min {
			min = tallies[id]
		}
	}
	var tied []ids.OptionId
	for _, id := range remaining {
		if tallies[id] == min {
			tied = append(tied, id)
		}
	}
	if len(tied) == 1 {
		return tied[0], nil
	}

	res := tiebreak.Resolve(tied, canonical, policy, stream)
	var crumb *rng.TieCrumb
	if res.WasRandom && stream != nil {
		c := stream.LogPick("irv_elimination", string(res.Winner))
		crumb = &c
	}
	return res.Winner, crumb
}

func cloneTallies(m map[ids.OptionId]uint64) map[ids.OptionId]uint64 {
	out := make(map[ids.OptionId]uint64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

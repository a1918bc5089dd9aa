package tiebreak

import (
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rng"
)

// Policy selects how a tie among options is resolved.
type Policy int

const (
	// StatusQuo picks the status-quo-flagged tied option, falling back to
	// DeterministicOrder when none or more than one qualifies.
	StatusQuo Policy = iota
	// DeterministicOrder picks the first tied option in canonical order.
	DeterministicOrder
	// Random draws uniformly among the tied options.
	Random
)

// Result is the outcome of Resolve: the chosen option, and, only when the
// draw was actually random, the index that was drawn (for crumb-building).
type Result struct {
	Winner     ids.OptionId
	WasRandom  bool
	DrawnIndex int
}

// Resolve picks one option out of tied (already sorted in canonical order)
// according to policy. options supplies IsStatusQuo lookups for the
// StatusQuo policy; stream is nil when randomness is disabled at
// configuration, in which case Random silently falls back to
// DeterministicOrder.
func Resolve(tied []ids.OptionId, options []ids.OptionItem, policy Policy, stream *rng.Stream) Result {
	switch policy {
	case StatusQuo:
		if winner, ok := statusQuoWinner(tied, options); ok {
			return Result{Winner: winner}
		}
		return Result{Winner: deterministicWinner(tied, options)}
	case Random:
		if stream != nil {
			idx, ok := stream.ChooseIndex(len(tied))
			if ok {
				return Result{Winner: tied[idx], WasRandom: true, DrawnIndex: idx}
			}
		}
		return Result{Winner: deterministicWinner(tied, options)}
	default: // DeterministicOrder
		return Result{Winner: deterministicWinner(tied, options)}
	}
}

func statusQuoWinner(tied []ids.OptionId, options []ids.OptionItem) (ids.OptionId, bool) {
	flagged := make(map[ids.OptionId]bool, len(options))
	for _, o := range options {
		if o.IsStatusQuo {
			flagged[o.OptionId] = true
		}
	}
	var winner ids.OptionId
	count := 0
	for _, t := range tied {
		if flagged[t] {
			winner = t
			count++
		}
	}
	if count == 1 {
		return winner, true
	}
	return "", false
}

// deterministicWinner walks options in their already-canonical order and
// returns the first one present in tied.
func deterministicWinner(tied []ids.OptionId, options []ids.OptionItem) ids.OptionId {
	tiedSet := make(map[ids.OptionId]bool, len(tied))
	for _, t := range tied {
		tiedSet[t] = true
	}
	for _, o := range options {
		if tiedSet[o.OptionId] {
			return o.OptionId
		}
	}
	// Unreachable when tied is a nonempty subset of options, which every
	// caller guarantees.
	if len(tied) > 0 {
		return tied[0]
	}
	return ""
}

package tabulation

import (
	"math/bits"

	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/tallyerr"
)

// TallyTotals is a unit's turnout: valid and invalid ballots.
type TallyTotals struct {
	ValidBallots   uint64
	InvalidBallots uint64
}

// UnitScores is the output of every tabulation method: a unit's per-option
// scores, alongside its turnout. Scores is keyed by OptionId but MUST be
// read back out through a canonical option slice (ids.CanonicalOrder) by
// every downstream consumer — never ranged over directly.
type UnitScores struct {
	UnitId  ids.UnitId
	Turnout TallyTotals
	Scores  map[ids.OptionId]uint64
}

// ScoreInOrder projects s.Scores through the given canonical option slice,
// treating a missing key as zero.
func (s UnitScores) ScoreInOrder(options []ids.OptionItem) []uint64 {
	out := make([]uint64, len(options))
	for i, o := range options {
		out[i] = s.Scores[o.OptionId]
	}
	return out
}

// optionSet builds a membership set from a canonical option slice, for
// O(1) unknown-option checks. Fails with tallyerr.DuplicateOptionInRegistry
// on the first OptionId seen twice, rather than silently collapsing it.
func optionSet(options []ids.OptionItem) (map[ids.OptionId]bool, error) {
	set := make(map[ids.OptionId]bool, len(options))
	for _, o := range options {
		if set[o.OptionId] {
			return nil, &tallyerr.DuplicateOptionInRegistry{OptionId: o.OptionId}
		}
		set[o.OptionId] = true
	}
	return set, nil
}

// checkUnknown fails with tallyerr.UnknownOption for the lexicographically
// smallest key present in votes but absent from known.
func checkUnknown(votes map[ids.OptionId]uint64, known map[ids.OptionId]bool, options []ids.OptionItem) error {
	// votes is a map, so it is scanned in full and the smallest unknown
	// key is kept: the reported key is the same on every run even when
	// several keys are unknown. options is not consulted.
	var first ids.OptionId
	found := false
	for k := range votes {
		if !known[k] && (!found || k < first) {
			first, found = k, true
		}
	}
	if found {
		return &tallyerr.UnknownOption{OptionId: first}
	}
	_ = options
	return nil
}

// sumChecked sums values with carry detection equivalent to spec's
// 128-bit accumulation: any carry out of the 64th bit is a genuine
// overflow of the realistic domain (sums of u64 vote counts), reported as
// ErrArithmeticOverflow rather than silently wrapping.
func sumChecked(values []uint64) (sum uint64, overflow bool) {
	var carry uint64
	for _, v := range values {
		var c uint64
		sum, c = bits.Add64(sum, v, 0)
		carry += c
	}
	return sum, carry != 0
}

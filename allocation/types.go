package allocation

import (
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/tallyerr"
)

// Allocation is the output of every allocation family: a unit's per-option
// seats (or, for WTA, "power" on a 0-100 scale), keyed by OptionId but
// MUST be read back out through a canonical option slice by every
// downstream consumer, exactly like tabulation.UnitScores.
type Allocation struct {
	UnitId       ids.UnitId
	SeatsOrPower map[ids.OptionId]uint32
	LastSeatTie  bool
}

// SeatsInOrder projects a.SeatsOrPower through the given canonical option
// slice, treating a missing key as zero.
func (a Allocation) SeatsInOrder(options []ids.OptionItem) []uint32 {
	out := make([]uint32, len(options))
	for i, o := range options {
		out[i] = a.SeatsOrPower[o.OptionId]
	}
	return out
}

// optionSet builds a membership set from a registry's option slice. Fails
// with tallyerr.DuplicateOptionInRegistry on the first OptionId seen
// twice, rather than silently collapsing it.
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

func checkUnknownScores(scores map[ids.OptionId]uint64, known map[ids.OptionId]bool) (ids.OptionId, bool) {
	for k := range scores {
		if !known[k] {
			return k, true
		}
	}
	return "", false
}

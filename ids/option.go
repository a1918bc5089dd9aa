package ids

import "sort"

// OptionItem represents a choice on a ballot.
//
// IsStatusQuo is optional (zero value false) and resolves Open Question #2
// in DESIGN.md: the tie-break policy StatusQuo consults this flag and falls
// back to DeterministicOrder whenever zero or more than one tied option
// carries it.
type OptionItem struct {
	OptionId    OptionId
	Name        string
	OrderIndex  uint16
	IsStatusQuo bool
}

// CanonicalOrder returns a new slice containing items sorted by
// (OrderIndex ascending, OptionId ascending). The input slice is never
// mutated. This is the one function in the module that may reorder
// options; every other package calls it rather than sorting options
// itself.
func CanonicalOrder(items []OptionItem) []OptionItem {
	out := make([]OptionItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].OptionId.Less(out[j].OptionId)
	})
	return out
}

// OptionIds projects the canonical option ids from an already-canonical
// slice, preserving order.
func OptionIds(items []OptionItem) []OptionId {
	out := make([]OptionId, len(items))
	for i, it := range items {
		out[i] = it.OptionId
	}
	return out
}

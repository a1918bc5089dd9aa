package ids

// UnitId identifies a tabulation unit (precinct, district, constituency).
// Immutable once constructed; zero value is the empty id and is never valid
// input to any stage.
type UnitId string

// OptionId identifies a choice on a ballot (a party, a candidate, a
// referendum side). Immutable once constructed.
type OptionId string

// Less reports whether u sorts strictly before other in canonical unit
// order, which is plain lexicographic order.
func (u UnitId) Less(other UnitId) bool { return u < other }

// Less reports whether o sorts strictly before other in OptionId order
// alone (ignoring order_index); used only as the tie-breaker inside
// CanonicalOrder, never as a substitute for it.
func (o OptionId) Less(other OptionId) bool { return o < other }

// Package aggregation sums per-unit allocations (or raw vote totals) into
// pooled option totals, exact rational shares, and pooled turnout, per
// spec section 4.6.
//
// A WeightingMethod scales each unit's contribution before pooling:
// Natural sums raw per-unit values unscaled (the literal national pool);
// PopulationWeighted scales raw values by a caller-supplied per-unit
// weight (e.g. eligible electorate); EqualUnit rescales every unit's
// internal option split onto the same fixed total (banker's rounding via
// rounding.RoundNearestEvenInt) so a large unit and a small unit
// contribute identically to the pool regardless of their raw vote counts
// (DESIGN.md records this interpretation of the spec's weighting_method
// identifiers, which spec.md names but does not fully specify).
package aggregation

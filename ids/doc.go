// Package ids defines the opaque, totally ordered identifiers shared by
// every other package in this module: UnitId, OptionId, and the OptionItem
// that carries an option's display metadata and canonical position.
//
// Canonical option order:
//
//	(order_index ascending, option_id ascending)
//
// Every component that iterates options MUST iterate in this order. A map
// keyed by OptionId has no defined iteration order in Go; this package's
// CanonicalOrder gives the one true order —
// callers that need canonical order call CanonicalOrder once and pass the
// resulting slice down, they never range over a map directly.
//
// Both UnitId and OptionId are defined types over string so that a caller
// cannot accidentally pass one where the other is expected; comparison is
// plain lexicographic byte comparison, matching Go's native string ordering
// and requiring no locale awareness (spec Non-goal: locale-sensitive
// behavior).
package ids

// Package tiebreak implements the tie-resolution contract shared by the
// tabulation and allocation packages (spec section 4.5): given an ordered
// set of tied options, a policy, and an optional RNG handle, pick exactly
// one.
//
//   - StatusQuo picks the tied option flagged IsStatusQuo, falling back to
//     DeterministicOrder whenever zero or more than one tied option carries
//     the flag (DESIGN.md, Open Question 2).
//   - DeterministicOrder walks the canonical option order and returns the
//     first option that is a member of the tied set.
//   - Random draws an index from the supplied rng.Stream and falls back to
//     DeterministicOrder when no stream is supplied (tie_policy disabled at
//     configuration).
//
// Every draw against the RNG is logged via rng.Stream.LogPick by the
// caller that owns the stream; this package returns the chosen option and,
// when it drew randomly, the index drawn, so the caller can build the
// crumb without this package needing to know the run's context string.
package tiebreak

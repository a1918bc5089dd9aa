// Package tabulation implements per-unit scoring for the five ballot
// methods in spec section 4.3: plurality, approval, score, ranked IRV with
// exhaustion, and ranked Condorcet with Schulze completion.
//
// Every method shares the same calling convention: given a unit id, a
// method-specific ballot payload, turnout, and the canonical option slice,
// produce a UnitScores (or a richer per-method result embedding one) or a
// structured error from the tallyerr taxonomy. Shared rules, enforced by
// every method:
//
//   - An unknown option key anywhere in the ballot payload fails with
//     tallyerr.UnknownOption.
//   - Where the method's contract bounds the sum of tabulated votes by
//     valid_ballots, exceeding it fails with tallyerr.TallyExceedsValid.
//   - Accumulation is overflow-checked (via math/bits.Add64 carry
//     detection, the practical equivalent of spec's "128-bit
//     accumulation" at Go's native int width) and reports
//     tallyerr.ErrArithmeticOverflow rather than wrapping silently.
//   - Output iteration order is the canonical options slice the caller
//     supplies, never map key order (spec section 3, "Canonical option
//     order discipline").
//
// The Condorcet/Schulze strongest-path closure is adapted from the
// teacher's matrix.impl_floydwarshall's fixed k→i→j loop order and flat
// row-major buffer (see condorcet.go and DESIGN.md).
package tabulation

// Package rounding implements exact rational arithmetic for every decision
// path in this module that must compare percentages or shares: gate
// thresholds, highest-averages divisor comparisons, and aggregate shares.
//
// No floating point is used in any comparison. Ratio is an exact fraction
// in canonical reduced form (den > 0, gcd(|num|, den) == 1). Comparison
// first computes the exact 128-bit cross products and, when either one
// does not fit in 64 bits, falls back to a continued-fraction comparator
// that never multiplies at all — see CmpRatio for the full algorithm,
// mirrored from spec section 4.1.
//
// PercentDecimal9 converts a Ratio to the wire's decimal form as an
// integer scaled by 10^9; no floating-point value is produced, and the
// scaled value is never fed back into a Ratio or a comparison.
package rounding

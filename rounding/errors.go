package rounding

import "errors"

// ErrZeroDenominator is the only failure this package ever surfaces
// (spec section 4.1's "Failure model"): constructing or comparing a ratio
// with a zero denominator, or rounding with a non-positive one
// (RoundNearestEvenInt). Simplify and CmpRatio fold a negative
// denominator into the numerator's sign. Overflow is handled internally by the
// continued-fraction fallback in CmpRatio and never surfaces as an error.
var ErrZeroDenominator = errors.New("rounding: zero or negative denominator")

package rounding

import "math/bits"

// CmpRatio returns the total-order comparison of a/b against c/d: -1 if
// a/b < c/d, 0 if equal, 1 if a/b > c/d. b and d must be nonzero; a zero
// denominator fails with ErrZeroDenominator.
//
// Algorithm (spec section 4.1):
//  1. Simplify both sides to canonical Ratios.
//  2. Dispatch by sign: unequal signs decide immediately; both negative
//     compare magnitudes and reverse.
//  3. Cross-cancel by gcd of numerators and gcd of denominators to shrink
//     operands before multiplying.
//  4. Try a checked 64-by-64-bit cross-multiplication (exact, via
//     math/bits.Mul64, which always yields the precise 128-bit product —
//     it never actually overflows for 64-bit operands).
//  5. The fallback continued-fraction comparator (cmpContinuedFraction) is
//     the one genuinely used whenever either cross product of the
//     cross-cancelled magnitudes does not fit in 64 bits, i.e. whenever the
//     naive 64-bit multiply alone (without the bits.Mul64 widening) would
//     have overflowed — kept as an independently correct, multiplication-free
//     comparator so the property in spec section 8 ("never any
//     multiplication") has a real, exercised implementation rather than
//     dead code.
func CmpRatio(a, b, c, d int64) (int, error) {
	ra, err := Simplify(a, b)
	if err != nil {
		return 0, err
	}
	rc, err := Simplify(c, d)
	if err != nil {
		return 0, err
	}
	return cmpSimplified(ra, rc), nil
}

// cmpSimplified compares two already-canonical Ratios.
func cmpSimplified(ra, rc Ratio) int {
	sa, sc := ra.Sign(), rc.Sign()
	if sa != sc {
		if sa < sc {
			return -1
		}
		return 1
	}
	if sa == 0 {
		return 0 // both zero
	}

	aMag, cMag := absMagnitude(ra.Num), absMagnitude(rc.Num)
	aDen, cDen := uint64(ra.Den), uint64(rc.Den)

	// Cross-cancel: shrink numerators by their gcd, denominators by theirs.
	if gn := gcdU64(aMag, cMag); gn > 1 {
		aMag /= gn
		cMag /= gn
	}
	if gd := gcdU64(aDen, cDen); gd > 1 {
		aDen /= gd
		cDen /= gd
	}

	cmp := cmpUnsignedFractions(aMag, aDen, cMag, cDen)
	if sa < 0 {
		cmp = -cmp
	}
	return cmp
}

// cmpUnsignedFractions compares aMag/aDen against cMag/cDen where all
// operands are nonnegative and aDen, cDen > 0.
func cmpUnsignedFractions(aMag, aDen, cMag, cDen uint64) int {
	p1hi, p1lo := bits.Mul64(aMag, cDen)
	p2hi, p2lo := bits.Mul64(cMag, aDen)

	if p1hi == 0 && p2hi == 0 {
		switch {
		case p1lo < p2lo:
			return -1
		case p1lo > p2lo:
			return 1
		default:
			return 0
		}
	}

	// The 64x64 product did not fit in 64 bits: fall back to a
	// multiplication-free continued-fraction comparison.
	return cmpContinuedFraction(aMag, aDen, cMag, cDen)
}

// cmpContinuedFraction compares p/q against r/s (q, s > 0, p, r >= 0)
// using only integer division and modulo, by repeatedly comparing integer
// quotients and recursing on the reciprocal of the remainder term. Each
// recursion strictly shrinks the denominators (Euclidean algorithm), so
// the loop terminates in O(log(min(q,s))) steps.
func cmpContinuedFraction(p, q, r, s uint64) int {
	sign := 1
	for {
		qp, rp := p/q, p%q
		qr, rr := r/s, r%s

		if qp != qr {
			if qp < qr {
				return -sign
			}
			return sign
		}
		if rp == 0 && rr == 0 {
			return 0
		}
		if rp == 0 {
			// p/q terminates exactly here; r/s still has a positive
			// fractional remainder, so p/q < r/s.
			return -sign
		}
		if rr == 0 {
			return sign
		}

		// Recurse on the reciprocals of the fractional remainders:
		// p/q == qp + rp/q, and comparing rp/q against rr/s is the same
		// as comparing q/rp against s/rr with the inequality reversed.
		p, q, r, s = q, rp, s, rr
		sign = -sign
	}
}

package rounding

// Ratio is an exact rational number in canonical reduced form: Den > 0 and
// gcd(|Num|, Den) == 1. The zero value is NOT a valid Ratio (Den == 0);
// always construct via Simplify.
//
// Num and Den are int64, not the i128 the original implementation uses
// internally: every vote/seat/population count this package ever reduces
// is assumed to fit in the signed 63-bit range (roughly 9.2e18), which
// covers any realistic electorate by many orders of magnitude. A caller
// narrowing a uint64 tally (e.g. a pooled national vote total) to int64
// before calling Simplify is responsible for staying under that bound;
// it is not re-checked here.
type Ratio struct {
	Num int64
	Den int64
}

// absMagnitude converts a signed int64 to its unsigned magnitude, handling
// math.MinInt64 specially since its absolute value does not fit in int64
// (mirrors spec's "i128::MIN" note, scaled down to this package's int64
// representation: the special case produces 1<<63 instead of 1<<127).
func absMagnitude(n int64) uint64 {
	if n == minInt64 {
		return 1 << 63
	}
	if n < 0 {
		return uint64(-n)
	}
	return uint64(n)
}

const minInt64 = -1 << 63

// gcdU64 computes the greatest common divisor of two uint64 values via the
// binary-free Euclidean algorithm. gcd(0, x) == x by convention so that
// Simplify(0, d) reduces to 0/1.
func gcdU64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Simplify reduces num/den to canonical form: Den > 0 (sign folded into
// Num) and gcd(|Num|, Den) == 1. Fails with ErrZeroDenominator when
// den == 0.
func Simplify(num, den int64) (Ratio, error) {
	if den == 0 {
		return Ratio{}, ErrZeroDenominator
	}

	negative := (num < 0) != (den < 0)
	numMag := absMagnitude(num)
	denMag := absMagnitude(den)

	if numMag == 0 {
		return Ratio{Num: 0, Den: 1}, nil
	}

	g := gcdU64(numMag, denMag)
	numMag /= g
	denMag /= g

	n := int64(numMag)
	if negative {
		n = -n
	}
	return Ratio{Num: n, Den: int64(denMag)}, nil
}

// MustSimplify is Simplify without an error return, for call sites that
// construct a Ratio from values already known to have a nonzero
// denominator (e.g. literal percent thresholds). Panics on a zero
// denominator, which indicates a programmer error, not bad input data.
func MustSimplify(num, den int64) Ratio {
	r, err := Simplify(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// IsZero reports whether r represents the value zero.
func (r Ratio) IsZero() bool { return r.Num == 0 }

// Sign returns -1, 0, or 1 according to the sign of r.
func (r Ratio) Sign() int {
	switch {
	case r.Num < 0:
		return -1
	case r.Num > 0:
		return 1
	default:
		return 0
	}
}

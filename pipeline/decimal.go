package pipeline

import "github.com/opencivic/tallyengine/rounding"

func toRatio(r rounding.Ratio) Ratio { return Ratio{Num: r.Num, Den: r.Den} }

// toDecimal9 converts a rounding.Ratio to the wire's scaled-integer
// decimal form: round_half_even(ratio * 10^9) (spec section 6).
func toDecimal9(r rounding.Ratio) (int64, error) {
	return rounding.PercentDecimal9(r)
}

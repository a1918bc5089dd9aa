package pipeline

import (
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rounding"
)

// topTwoShares returns the winning option and the top two shares (by
// value, ties broken by canonical option order) among an aggregate's per
// option shares, for national-margin computation (spec section 4.8).
func topTwoShares(canonical []ids.OptionItem, shares map[ids.OptionId]rounding.Ratio) (winner ids.OptionId, top, second rounding.Ratio) {
	top = rounding.MustSimplify(0, 1)
	second = rounding.MustSimplify(0, 1)
	haveTop := false

	for _, o := range canonical {
		s, ok := shares[o.OptionId]
		if !ok {
			continue
		}
		if !haveTop {
			top = s
			winner = o.OptionId
			haveTop = true
			continue
		}
		cmp, err := rounding.CmpRatio(s.Num, s.Den, top.Num, top.Den)
		if err != nil {
			continue
		}
		if cmp > 0 {
			second = top
			top = s
			winner = o.OptionId
		} else {
			cmp2, err := rounding.CmpRatio(s.Num, s.Den, second.Num, second.Den)
			if err == nil && cmp2 > 0 {
				second = s
			}
		}
	}
	return winner, top, second
}

// nationalMarginPP computes the margin between the top two shares in
// whole percentage points, via half-to-even-rounded tenths (spec section
// 4.1's percent_one_decimal_tenths), truncated to whole points for
// comparison against Params.DecisiveMarginPP.
func nationalMarginPP(top, second rounding.Ratio) (int32, error) {
	topTenths, err := rounding.PercentOneDecimalTenths(top.Num, top.Den)
	if err != nil {
		return 0, err
	}
	secondTenths, err := rounding.PercentOneDecimalTenths(second.Num, second.Den)
	if err != nil {
		return 0, err
	}
	return int32((topTenths - secondTenths) / 10), nil
}

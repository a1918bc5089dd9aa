package gates

import "github.com/opencivic/tallyengine/rounding"

// GateResult is one legitimacy check: the observed ratio, the integer
// percent threshold it was compared against, and whether it passed.
type GateResult struct {
	Observed     rounding.Ratio
	ThresholdPct uint8
	Pass         bool
}

// evalGate builds a GateResult by comparing n/d against p percent,
// half-to-even rounded (spec section 4.1, 4.7).
func evalGate(n, d int64, p uint8) (GateResult, error) {
	observed, err := rounding.Simplify(n, d)
	if err != nil {
		return GateResult{}, err
	}
	pass, err := rounding.GePercentHalfEven(n, d, p)
	if err != nil {
		return GateResult{}, err
	}
	return GateResult{Observed: observed, ThresholdPct: p, Pass: pass}, nil
}

// Quorum evaluates spec section 4.7's national quorum test:
// valid_ballots_total / eligible_electorate >= quorum_pct.
func Quorum(validBallotsTotal, eligibleElectorate uint64, quorumPct uint8) (GateResult, error) {
	return evalGate(int64(validBallotsTotal), int64(eligibleElectorate), quorumPct)
}

// Majority evaluates spec section 4.7's majority test:
// winner_votes / valid_denominator >= majority_pct. valid_denominator is
// method-dependent (e.g. an IRV final round's reduced continuing
// denominator) and is supplied by the caller, not recomputed here.
func Majority(winnerVotes, validDenominator uint64, majorityPct uint8) (GateResult, error) {
	return evalGate(int64(winnerVotes), int64(validDenominator), majorityPct)
}

// DoubleMajorityResult composes a national panel and a family (regional)
// panel; Pass requires both (spec section 4.7: "aggregate pass = national
// AND family").
type DoubleMajorityResult struct {
	National GateResult
	Family   GateResult
	Pass     bool
}

// DoubleMajority ANDs a national and a family (regional) gate result.
func DoubleMajority(national, family GateResult) DoubleMajorityResult {
	return DoubleMajorityResult{National: national, Family: family, Pass: national.Pass && family.Pass}
}

// SymmetryResult is domain-specific: a boolean "respected" outcome with
// no underlying ratio.
type SymmetryResult struct {
	Respected bool
}

// Symmetry wraps the caller-supplied symmetry verdict.
func Symmetry(respected bool) SymmetryResult {
	return SymmetryResult{Respected: respected}
}

package label

// Label is the engine's final decisiveness outcome.
type Label int

const (
	Decisive Label = iota
	Marginal
	Invalid
)

func (l Label) String() string {
	switch l {
	case Decisive:
		return "decisive"
	case Marginal:
		return "marginal"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Reason codes (spec section 4.8).
const (
	ReasonGatesFailed           = "gates_failed"
	ReasonMarginBelowThreshold  = "margin_below_threshold"
	ReasonFrontierRiskPresent   = "frontier_risk_flags_present"
	ReasonMarginMeetsThreshold  = "margin_meets_threshold"
)

// FrontierRiskFlags are the three risk signals that can demote an
// otherwise-decisive result to Marginal (spec section 4.8, GLOSSARY).
type FrontierRiskFlags struct {
	MediationFlagged     bool
	Enclave              bool
	ProtectedOverrideUsed bool
}

// Any reports whether any frontier-risk flag is set.
func (f FrontierRiskFlags) Any() bool {
	return f.MediationFlagged || f.Enclave || f.ProtectedOverrideUsed
}

// Decide applies spec section 4.8's precedence chain:
//  1. gatesPassed == false -> Invalid, reason = firstFailureReason, or
//     ReasonGatesFailed if firstFailureReason is empty.
//  2. nationalMarginPP < decisiveMarginPP -> Marginal, margin_below_threshold.
//  3. any frontier-risk flag set -> Marginal, frontier_risk_flags_present.
//  4. otherwise -> Decisive, margin_meets_threshold.
func Decide(
	gatesPassed bool,
	firstFailureReason string,
	nationalMarginPP int32,
	decisiveMarginPP int32,
	flags FrontierRiskFlags,
) (Label, string) {
	if !gatesPassed {
		reason := firstFailureReason
		if reason == "" {
			reason = ReasonGatesFailed
		}
		return Invalid, reason
	}
	if nationalMarginPP < decisiveMarginPP {
		return Marginal, ReasonMarginBelowThreshold
	}
	if flags.Any() {
		return Marginal, ReasonFrontierRiskPresent
	}
	return Decisive, ReasonMarginMeetsThreshold
}

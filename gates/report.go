package gates

// Reason codes, in the fixed emission order spec section 4.7 requires:
// quorum, majority, double-majority, symmetry.
const (
	ReasonQuorumNotMet         = "quorum_not_met"
	ReasonMajorityNotMet       = "majority_not_met"
	ReasonDoubleMajorityNotMet = "double_majority_not_met"
	ReasonSymmetryNotRespected = "symmetry_not_respected"
)

// LegitimacyReport is the overall panel verdict: Pass is the AND of every
// enabled gate, and Reasons lists a code for every failing gate in fixed
// order.
type LegitimacyReport struct {
	Quorum         GateResult
	QuorumEnabled  bool
	Majority       GateResult
	MajorityEnabled bool
	DoubleMajority DoubleMajorityResult
	DoubleMajorityEnabled bool
	Symmetry       SymmetryResult
	SymmetryEnabled bool

	Pass    bool
	Reasons []string
}

// BuildReport composes a LegitimacyReport from whichever gates are
// enabled (a gate that is not configured for this run contributes neither
// a pass nor a failure reason).
func BuildReport(
	quorum *GateResult,
	majority *GateResult,
	doubleMajority *DoubleMajorityResult,
	symmetry *SymmetryResult,
) LegitimacyReport {
	r := LegitimacyReport{Pass: true}

	if quorum != nil {
		r.Quorum = *quorum
		r.QuorumEnabled = true
		if !quorum.Pass {
			r.Pass = false
			r.Reasons = append(r.Reasons, ReasonQuorumNotMet)
		}
	}
	if majority != nil {
		r.Majority = *majority
		r.MajorityEnabled = true
		if !majority.Pass {
			r.Pass = false
			r.Reasons = append(r.Reasons, ReasonMajorityNotMet)
		}
	}
	if doubleMajority != nil {
		r.DoubleMajority = *doubleMajority
		r.DoubleMajorityEnabled = true
		if !doubleMajority.Pass {
			r.Pass = false
			r.Reasons = append(r.Reasons, ReasonDoubleMajorityNotMet)
		}
	}
	if symmetry != nil {
		r.Symmetry = *symmetry
		r.SymmetryEnabled = true
		if !symmetry.Respected {
			r.Pass = false
			r.Reasons = append(r.Reasons, ReasonSymmetryNotRespected)
		}
	}

	return r
}

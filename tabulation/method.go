package tabulation

// Method tags the ballot method a unit's tabulation uses, for dispatch
// from pipeline.Params (spec section 9: "Polymorphism over ballot
// methods... tagged variant... dispatched from the pipeline by an enum
// tag in Params").
type Method int

const (
	MethodPlurality Method = iota
	MethodApproval
	MethodScore
	MethodIRV
	MethodCondorcet
)

func (m Method) String() string {
	switch m {
	case MethodPlurality:
		return "plurality"
	case MethodApproval:
		return "approval"
	case MethodScore:
		return "score"
	case MethodIRV:
		return "irv"
	case MethodCondorcet:
		return "condorcet"
	default:
		return "unknown"
	}
}

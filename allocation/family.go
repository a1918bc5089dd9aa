package allocation

// Family tags which allocation method a unit uses, for dispatch from
// pipeline.Params (spec section 9: "Polymorphism over ballot methods"
// applies equally to allocation families).
type Family int

const (
	FamilyWTA Family = iota
	FamilyLargestRemainder
	FamilyHighestAverages
	FamilyMMP
)

func (f Family) String() string {
	switch f {
	case FamilyWTA:
		return "wta"
	case FamilyLargestRemainder:
		return "largest_remainder"
	case FamilyHighestAverages:
		return "highest_averages"
	case FamilyMMP:
		return "mmp"
	default:
		return "unknown"
	}
}

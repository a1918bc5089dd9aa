package pipeline

import (
	"github.com/opencivic/tallyengine/allocation"
	"github.com/opencivic/tallyengine/aggregation"
	"github.com/opencivic/tallyengine/tabulation"
	"github.com/opencivic/tallyengine/tiebreak"
)

// CorrectionLevel selects MMP's proportional-correction scope (spec
// section 3: "MMP correction level (national | regional)").
type CorrectionLevel int

const (
	CorrectionNational CorrectionLevel = iota
	CorrectionRegional
)

// GateToggles enables or disables each legitimacy gate for a run; a
// disabled gate contributes neither a pass nor a failure reason (spec
// section 4.7 gates are each independently configured).
type GateToggles struct {
	Quorum         bool
	Majority       bool
	DoubleMajority bool
	Symmetry       bool
}

// Params is the full recognized configuration surface (spec section 3),
// dispatched by tag rather than a runtime method registry (spec section
// 9, "Polymorphism over ballot methods").
type Params struct {
	FormulaId     string
	EngineVersion string

	TiePolicy tiebreak.Policy
	TieSeed   uint64 // VM-VAR-052

	TabulationMethod            tabulation.Method
	ScoreMaxScore                uint64 // consulted iff TabulationMethod == MethodScore
	ReduceContinuingDenominator  bool   // consulted iff TabulationMethod == MethodIRV
	PluralityRequireExplicitPresence bool

	AllocationFamily allocation.Family
	Magnitude        uint32 // seats per unit; WTA requires exactly 1
	QuotaFormula     allocation.QuotaFormula
	DivisorFamily    allocation.DivisorFamily

	MMPCorrectionLevel   CorrectionLevel
	MMPMethod            allocation.TargetMethod
	MMPTotalSeatsTarget  uint32
	MMPOverhangPolicy    allocation.OverhangPolicy

	WeightingMethod aggregation.WeightingMethod

	Gates                     GateToggles
	QuorumPct                 uint8
	MajorityPct               uint8
	DoubleMajorityNationalPct uint8
	DoubleMajorityRegionalPct uint8

	DecisiveMarginPP int32 // VM-VAR-062

	// SymmetryRespected is the domain-specific symmetry verdict (spec
	// section 4.7: "domain-specific; the outcome is a boolean
	// respected"); the core does not compute it, since the predicate
	// depends on domain rules outside this package's scope.
	SymmetryRespected bool

	// FrontierMediationFlagged, FrontierEnclave, and
	// FrontierProtectedOverrideUsed are the three frontier-risk signals
	// (spec section 4.8, GLOSSARY) computed by the external frontier
	// analysis collaborator and threaded through unchanged.
	FrontierMediationFlagged      bool
	FrontierEnclave               bool
	FrontierProtectedOverrideUsed bool
	FrontierMapId                 string
}

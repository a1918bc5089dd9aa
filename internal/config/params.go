package config

import (
	"github.com/opencivic/tallyengine/aggregation"
	"github.com/opencivic/tallyengine/allocation"
	"github.com/opencivic/tallyengine/pipeline"
	"github.com/opencivic/tallyengine/tabulation"
	"github.com/opencivic/tallyengine/tiebreak"
)

// GatesFile mirrors pipeline.GateToggles on the wire.
type GatesFile struct {
	Quorum         bool `yaml:"quorum"`
	Majority       bool `yaml:"majority"`
	DoubleMajority bool `yaml:"double_majority"`
	Symmetry       bool `yaml:"symmetry"`
}

// MMPMethodFile mirrors pipeline.Params.MMPMethod (allocation.TargetMethod)
// on the wire: exactly one of divisor_family / quota_formula is consulted,
// selected by family.
type MMPMethodFile struct {
	Family       string `yaml:"family"`        // "highest_averages" | "largest_remainder"
	DivisorFamily string `yaml:"divisor_family"` // consulted iff family == "highest_averages"
	QuotaFormula  string `yaml:"quota_formula"`  // consulted iff family == "largest_remainder"
}

// ParameterFile is the on-disk YAML shape of a ParameterSet (spec section
// 6): every tag is a lowercase snake_case string matched against the
// closed set of enum tags the pipeline/tabulation/allocation/aggregation
// packages define. Fields left empty take their Go zero value once
// translated (e.g. an empty tie_policy becomes tiebreak.StatusQuo),
// except an empty mmp_method.family, which selects highest averages.
type ParameterFile struct {
	FormulaId     string `yaml:"formula_id"`
	EngineVersion string `yaml:"engine_version"`

	TiePolicy string `yaml:"tie_policy"`
	TieSeed   uint64 `yaml:"tie_seed"`

	TabulationMethod                  string `yaml:"tabulation_method"`
	ScoreMaxScore                     uint64 `yaml:"score_max_score"`
	ReduceContinuingDenominator       bool   `yaml:"reduce_continuing_denominator"`
	PluralityRequireExplicitPresence bool   `yaml:"plurality_require_explicit_presence"`

	AllocationFamily string `yaml:"allocation_family"`
	Magnitude        uint32 `yaml:"magnitude"`
	QuotaFormula     string `yaml:"quota_formula"`
	DivisorFamily    string `yaml:"divisor_family"`

	MMPCorrectionLevel  string        `yaml:"mmp_correction_level"`
	MMPMethod           MMPMethodFile `yaml:"mmp_method"`
	MMPTotalSeatsTarget uint32        `yaml:"mmp_total_seats_target"`
	MMPOverhangPolicy   string        `yaml:"mmp_overhang_policy"`

	WeightingMethod string `yaml:"weighting_method"`

	Gates                     GatesFile `yaml:"gates"`
	QuorumPct                 uint8     `yaml:"quorum_pct"`
	MajorityPct               uint8     `yaml:"majority_pct"`
	DoubleMajorityNationalPct uint8     `yaml:"double_majority_national_pct"`
	DoubleMajorityRegionalPct uint8     `yaml:"double_majority_regional_pct"`

	DecisiveMarginPP int32 `yaml:"decisive_margin_pp"`

	SymmetryRespected bool `yaml:"symmetry_respected"`

	FrontierMediationFlagged      bool   `yaml:"frontier_mediation_flagged"`
	FrontierEnclave               bool   `yaml:"frontier_enclave"`
	FrontierProtectedOverrideUsed bool   `yaml:"frontier_protected_override_used"`
	FrontierMapId                 string `yaml:"frontier_map_id"`
}

// Params translates the wire form into pipeline.Params, matching each
// string tag against its package's closed enum.
func (f ParameterFile) Params() (pipeline.Params, error) {
	tiePolicy, err := parseTiePolicy(f.TiePolicy)
	if err != nil {
		return pipeline.Params{}, err
	}
	method, err := parseTabulationMethod(f.TabulationMethod)
	if err != nil {
		return pipeline.Params{}, err
	}
	family, err := parseAllocationFamily(f.AllocationFamily)
	if err != nil {
		return pipeline.Params{}, err
	}
	quota, err := parseQuotaFormula(f.QuotaFormula)
	if err != nil {
		return pipeline.Params{}, err
	}
	divisor, err := parseDivisorFamily(f.DivisorFamily)
	if err != nil {
		return pipeline.Params{}, err
	}
	correction, err := parseCorrectionLevel(f.MMPCorrectionLevel)
	if err != nil {
		return pipeline.Params{}, err
	}
	overhang, err := parseOverhangPolicy(f.MMPOverhangPolicy)
	if err != nil {
		return pipeline.Params{}, err
	}
	weighting, err := parseWeightingMethod(f.WeightingMethod)
	if err != nil {
		return pipeline.Params{}, err
	}
	mmpMethod, err := f.MMPMethod.targetMethod()
	if err != nil {
		return pipeline.Params{}, err
	}

	return pipeline.Params{
		FormulaId:     f.FormulaId,
		EngineVersion: f.EngineVersion,

		TiePolicy: tiePolicy,
		TieSeed:   f.TieSeed,

		TabulationMethod:                  method,
		ScoreMaxScore:                     f.ScoreMaxScore,
		ReduceContinuingDenominator:       f.ReduceContinuingDenominator,
		PluralityRequireExplicitPresence: f.PluralityRequireExplicitPresence,

		AllocationFamily: family,
		Magnitude:        f.Magnitude,
		QuotaFormula:     quota,
		DivisorFamily:    divisor,

		MMPCorrectionLevel:  correction,
		MMPMethod:           mmpMethod,
		MMPTotalSeatsTarget: f.MMPTotalSeatsTarget,
		MMPOverhangPolicy:   overhang,

		WeightingMethod: weighting,

		Gates: pipeline.GateToggles{
			Quorum:         f.Gates.Quorum,
			Majority:       f.Gates.Majority,
			DoubleMajority: f.Gates.DoubleMajority,
			Symmetry:       f.Gates.Symmetry,
		},
		QuorumPct:                 f.QuorumPct,
		MajorityPct:               f.MajorityPct,
		DoubleMajorityNationalPct: f.DoubleMajorityNationalPct,
		DoubleMajorityRegionalPct: f.DoubleMajorityRegionalPct,

		DecisiveMarginPP: f.DecisiveMarginPP,

		SymmetryRespected: f.SymmetryRespected,

		FrontierMediationFlagged:      f.FrontierMediationFlagged,
		FrontierEnclave:               f.FrontierEnclave,
		FrontierProtectedOverrideUsed: f.FrontierProtectedOverrideUsed,
		FrontierMapId:                 f.FrontierMapId,
	}, nil
}

func (m MMPMethodFile) targetMethod() (allocation.TargetMethod, error) {
	switch m.Family {
	case "", "highest_averages":
		divisor, err := parseDivisorFamily(m.DivisorFamily)
		if err != nil {
			return allocation.TargetMethod{}, err
		}
		return allocation.TargetMethod{UseHighestAverages: true, Divisor: divisor}, nil
	case "largest_remainder":
		quota, err := parseQuotaFormula(m.QuotaFormula)
		if err != nil {
			return allocation.TargetMethod{}, err
		}
		return allocation.TargetMethod{UseHighestAverages: false, Quota: quota}, nil
	default:
		return allocation.TargetMethod{}, &UnknownTag{Field: "mmp_method.family", Got: m.Family}
	}
}

func parseTiePolicy(s string) (tiebreak.Policy, error) {
	switch s {
	case "", "status_quo":
		return tiebreak.StatusQuo, nil
	case "deterministic_order":
		return tiebreak.DeterministicOrder, nil
	case "random":
		return tiebreak.Random, nil
	default:
		return 0, &UnknownTag{Field: "tie_policy", Got: s}
	}
}

func parseTabulationMethod(s string) (tabulation.Method, error) {
	switch s {
	case "", "plurality":
		return tabulation.MethodPlurality, nil
	case "approval":
		return tabulation.MethodApproval, nil
	case "score":
		return tabulation.MethodScore, nil
	case "irv":
		return tabulation.MethodIRV, nil
	case "condorcet":
		return tabulation.MethodCondorcet, nil
	default:
		return 0, &UnknownTag{Field: "tabulation_method", Got: s}
	}
}

func parseAllocationFamily(s string) (allocation.Family, error) {
	switch s {
	case "", "wta":
		return allocation.FamilyWTA, nil
	case "largest_remainder":
		return allocation.FamilyLargestRemainder, nil
	case "highest_averages":
		return allocation.FamilyHighestAverages, nil
	case "mmp":
		return allocation.FamilyMMP, nil
	default:
		return 0, &UnknownTag{Field: "allocation_family", Got: s}
	}
}

func parseQuotaFormula(s string) (allocation.QuotaFormula, error) {
	switch s {
	case "", "hare":
		return allocation.QuotaHare, nil
	case "droop":
		return allocation.QuotaDroop, nil
	default:
		return 0, &UnknownTag{Field: "quota_formula", Got: s}
	}
}

func parseDivisorFamily(s string) (allocation.DivisorFamily, error) {
	switch s {
	case "", "dhondt":
		return allocation.DivisorDHondt, nil
	case "sainte_lague":
		return allocation.DivisorSainteLague, nil
	default:
		return 0, &UnknownTag{Field: "divisor_family", Got: s}
	}
}

func parseCorrectionLevel(s string) (pipeline.CorrectionLevel, error) {
	switch s {
	case "", "national":
		return pipeline.CorrectionNational, nil
	case "regional":
		return pipeline.CorrectionRegional, nil
	default:
		return 0, &UnknownTag{Field: "mmp_correction_level", Got: s}
	}
}

func parseOverhangPolicy(s string) (allocation.OverhangPolicy, error) {
	switch s {
	case "", "leave_overhangs":
		return allocation.LeaveOverhangs, nil
	case "absorb":
		return allocation.Absorb, nil
	default:
		return 0, &UnknownTag{Field: "mmp_overhang_policy", Got: s}
	}
}

func parseWeightingMethod(s string) (aggregation.WeightingMethod, error) {
	switch s {
	case "", "natural":
		return aggregation.WeightNatural, nil
	case "equal_unit":
		return aggregation.WeightEqualUnit, nil
	case "population_weighted":
		return aggregation.WeightPopulationWeighted, nil
	default:
		return 0, &UnknownTag{Field: "weighting_method", Got: s}
	}
}

package pipeline

import (
	"github.com/opencivic/tallyengine/aggregation"
	"github.com/opencivic/tallyengine/allocation"
	"github.com/opencivic/tallyengine/gates"
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rng"
	"github.com/opencivic/tallyengine/tabulation"
)

// UnitResultBlock is one unit's tabulation and allocation outcome,
// emitted in canonical UnitId order by BuildResult.
type UnitResultBlock struct {
	UnitId           ids.UnitId
	TabulationMethod tabulation.Method
	Scores           map[ids.OptionId]uint64
	Allocation       allocation.Allocation
	IRVRounds        []tabulation.IRVRound   // set iff TabulationMethod == MethodIRV
	CondorcetPairwise *tabulation.PairwiseMatrix // set iff TabulationMethod == MethodCondorcet
}

// AggregatePanel mirrors aggregation.AggregateResults, with shares
// converted to the wire's decimal form (spec section 4.9, 6: engine
// precision 1e-9, round_half_even(ratio*10^9)) alongside the exact
// Ratio, since no decision logic may consume the decimal form.
type AggregatePanel struct {
	Totals          map[ids.OptionId]uint64
	SharesExact     map[ids.OptionId]Ratio
	SharesDecimal9  map[ids.OptionId]int64
	PooledTurnout   tabulation.TallyTotals
	WeightingMethod aggregation.WeightingMethod
}

// Ratio is a thin re-export of rounding.Ratio's shape so pipeline's
// public API does not force every caller to import rounding directly;
// see decimal.go for the conversion helpers.
type Ratio struct {
	Num int64
	Den int64
}

// GatePanel is one gate's wire-ready outcome.
type GatePanel struct {
	ObservedExact    Ratio
	ObservedDecimal9 int64
	ThresholdPct     uint8
	Pass             bool
}

// DoubleMajorityPanel composes a national and a family gate panel.
type DoubleMajorityPanel struct {
	National GatePanel
	Family   GatePanel
	Pass     bool
}

// LegitimacyPanel is the wire form of gates.LegitimacyReport.
type LegitimacyPanel struct {
	Quorum         *GatePanel
	Majority       *GatePanel
	DoubleMajority *DoubleMajorityPanel
	Symmetry       *gates.SymmetryResult
	Pass           bool
	Reasons        []string
}

// ResultDoc is the deterministic, fully-composed output artifact (spec
// section 4.9, 6). Its id and content hash are assigned by the external
// serializer/hasher collaborator, never by the core.
type ResultDoc struct {
	FormulaId    string
	Label        string
	LabelReason  string
	Units        []UnitResultBlock
	Aggregates   AggregatePanel
	Gates        LegitimacyPanel
	FrontierMapId string
}

// FrontierMap is the optional auxiliary geographic/outcome analysis
// output (spec section 6, GLOSSARY). The core treats it as an opaque,
// caller-supplied pass-through: frontier analysis itself is out of the
// core's scope (spec section 1), but its risk flags feed label.Decide.
type FrontierMap struct {
	Id                    string
	MediationFlagged      bool
	Enclave               bool
	ProtectedOverrideUsed bool
}

// RunRecord is the audit companion to ResultDoc: the RNG seed echo, every
// tie crumb drawn during the run, and an engine version identifier (spec
// section 6). StageTimings is intentionally left empty by pipeline.Run —
// the core never reads a clock (spec section 5 Non-goals) — and is
// populated afterward by the ambient telemetry layer wrapping the call.
type RunRecord struct {
	EngineVersion  string
	FormulaVersion string
	TieSeed        uint64
	TieCrumbs      []rng.TieCrumb
	StageTimings   map[string]int64
}

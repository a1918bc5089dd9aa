package serialize

import (
	"github.com/opencivic/tallyengine/pipeline"
)

// ratioWire mirrors pipeline.Ratio on the wire.
type ratioWire struct {
	Num int64 `json:"num"`
	Den int64 `json:"den"`
}

func toRatioWire(r pipeline.Ratio) ratioWire { return ratioWire{Num: r.Num, Den: r.Den} }

// gatePanelWire mirrors pipeline.GatePanel on the wire.
type gatePanelWire struct {
	ObservedExact    ratioWire `json:"observed_exact"`
	ObservedDecimal9 int64     `json:"observed_decimal9"`
	ThresholdPct     uint8     `json:"threshold_pct"`
	Pass             bool      `json:"pass"`
}

func toGatePanelWire(g pipeline.GatePanel) gatePanelWire {
	return gatePanelWire{
		ObservedExact:    toRatioWire(g.ObservedExact),
		ObservedDecimal9: g.ObservedDecimal9,
		ThresholdPct:     g.ThresholdPct,
		Pass:             g.Pass,
	}
}

func toGatePanelWirePtr(g *pipeline.GatePanel) *gatePanelWire {
	if g == nil {
		return nil
	}
	w := toGatePanelWire(*g)
	return &w
}

// doubleMajorityPanelWire mirrors pipeline.DoubleMajorityPanel.
type doubleMajorityPanelWire struct {
	National gatePanelWire `json:"national"`
	Family   gatePanelWire `json:"family"`
	Pass     bool          `json:"pass"`
}

func toDoubleMajorityPanelWirePtr(d *pipeline.DoubleMajorityPanel) *doubleMajorityPanelWire {
	if d == nil {
		return nil
	}
	return &doubleMajorityPanelWire{
		National: toGatePanelWire(d.National),
		Family:   toGatePanelWire(d.Family),
		Pass:     d.Pass,
	}
}

// symmetryResultWire mirrors gates.SymmetryResult.
type symmetryResultWire struct {
	Respected bool `json:"respected"`
}

// legitimacyPanelWire mirrors pipeline.LegitimacyPanel.
type legitimacyPanelWire struct {
	Quorum         *gatePanelWire           `json:"quorum,omitempty"`
	Majority       *gatePanelWire           `json:"majority,omitempty"`
	DoubleMajority *doubleMajorityPanelWire `json:"double_majority,omitempty"`
	Symmetry       *symmetryResultWire      `json:"symmetry,omitempty"`
	Pass           bool                     `json:"pass"`
	Reasons        []string                 `json:"reasons"`
}

func toLegitimacyPanelWire(p pipeline.LegitimacyPanel) legitimacyPanelWire {
	var sym *symmetryResultWire
	if p.Symmetry != nil {
		sym = &symmetryResultWire{Respected: p.Symmetry.Respected}
	}
	reasons := p.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return legitimacyPanelWire{
		Quorum:         toGatePanelWirePtr(p.Quorum),
		Majority:       toGatePanelWirePtr(p.Majority),
		DoubleMajority: toDoubleMajorityPanelWirePtr(p.DoubleMajority),
		Symmetry:       sym,
		Pass:           p.Pass,
		Reasons:        reasons,
	}
}

// tallyTotalsWire mirrors tabulation.TallyTotals.
type tallyTotalsWire struct {
	ValidBallots   uint64 `json:"valid_ballots"`
	InvalidBallots uint64 `json:"invalid_ballots"`
}

// aggregatePanelWire mirrors pipeline.AggregatePanel.
type aggregatePanelWire struct {
	Totals          map[string]uint64 `json:"totals"`
	SharesExact     map[string]ratioWire `json:"shares_exact"`
	SharesDecimal9  map[string]int64  `json:"shares_decimal9"`
	PooledTurnout   tallyTotalsWire   `json:"pooled_turnout"`
	WeightingMethod int               `json:"weighting_method"`
}

func toAggregatePanelWire(a pipeline.AggregatePanel) aggregatePanelWire {
	totals := make(map[string]uint64, len(a.Totals))
	for k, v := range a.Totals {
		totals[string(k)] = v
	}
	sharesExact := make(map[string]ratioWire, len(a.SharesExact))
	for k, v := range a.SharesExact {
		sharesExact[string(k)] = toRatioWire(v)
	}
	sharesDecimal := make(map[string]int64, len(a.SharesDecimal9))
	for k, v := range a.SharesDecimal9 {
		sharesDecimal[string(k)] = v
	}
	return aggregatePanelWire{
		Totals:          totals,
		SharesExact:     sharesExact,
		SharesDecimal9:  sharesDecimal,
		PooledTurnout:   tallyTotalsWire{ValidBallots: a.PooledTurnout.ValidBallots, InvalidBallots: a.PooledTurnout.InvalidBallots},
		WeightingMethod: int(a.WeightingMethod),
	}
}

// allocationWire mirrors allocation.Allocation.
type allocationWire struct {
	SeatsOrPower map[string]uint32 `json:"seats_or_power"`
	LastSeatTie  bool              `json:"last_seat_tie"`
}

// unitResultBlockWire mirrors pipeline.UnitResultBlock.
type unitResultBlockWire struct {
	UnitId           string            `json:"unit_id"`
	TabulationMethod string            `json:"tabulation_method"`
	Scores           map[string]uint64 `json:"scores"`
	Allocation       allocationWire    `json:"allocation"`
}

func toUnitResultBlockWire(u pipeline.UnitResultBlock) unitResultBlockWire {
	scores := make(map[string]uint64, len(u.Scores))
	for k, v := range u.Scores {
		scores[string(k)] = v
	}
	seats := make(map[string]uint32, len(u.Allocation.SeatsOrPower))
	for k, v := range u.Allocation.SeatsOrPower {
		seats[string(k)] = v
	}
	return unitResultBlockWire{
		UnitId:           string(u.UnitId),
		TabulationMethod: u.TabulationMethod.String(),
		Scores:           scores,
		Allocation:       allocationWire{SeatsOrPower: seats, LastSeatTie: u.Allocation.LastSeatTie},
	}
}

// resultDocWire mirrors pipeline.ResultDoc (spec section 4.9, 6).
type resultDocWire struct {
	FormulaId     string                `json:"formula_id"`
	Label         string                `json:"label"`
	LabelReason   string                `json:"label_reason"`
	Units         []unitResultBlockWire `json:"units"`
	Aggregates    aggregatePanelWire    `json:"aggregates"`
	Gates         legitimacyPanelWire   `json:"gates"`
	FrontierMapId string                `json:"frontier_map_id,omitempty"`
}

func toResultDocWire(doc pipeline.ResultDoc) resultDocWire {
	units := make([]unitResultBlockWire, len(doc.Units))
	for i, u := range doc.Units {
		units[i] = toUnitResultBlockWire(u)
	}
	return resultDocWire{
		FormulaId:     doc.FormulaId,
		Label:         doc.Label,
		LabelReason:   doc.LabelReason,
		Units:         units,
		Aggregates:    toAggregatePanelWire(doc.Aggregates),
		Gates:         toLegitimacyPanelWire(doc.Gates),
		FrontierMapId: doc.FrontierMapId,
	}
}

// tieCrumbWire mirrors rng.TieCrumb.
type tieCrumbWire struct {
	Ctx       string `json:"ctx"`
	Pick      string `json:"pick"`
	WordIndex uint64 `json:"word_index"`
}

// runRecordWire mirrors pipeline.RunRecord (spec section 6).
type runRecordWire struct {
	EngineVersion  string           `json:"engine_version"`
	FormulaVersion string           `json:"formula_version"`
	TieSeed        uint64           `json:"tie_seed"`
	TieCrumbs      []tieCrumbWire   `json:"tie_crumbs"`
	StageTimings   map[string]int64 `json:"stage_timings"`
	TraceId        string           `json:"trace_id"`
}

func toRunRecordWire(r pipeline.RunRecord, traceID string) runRecordWire {
	crumbs := make([]tieCrumbWire, len(r.TieCrumbs))
	for i, c := range r.TieCrumbs {
		crumbs[i] = tieCrumbWire{Ctx: c.Ctx, Pick: c.Pick, WordIndex: c.WordIndex}
	}
	timings := r.StageTimings
	if timings == nil {
		timings = map[string]int64{}
	}
	return runRecordWire{
		EngineVersion:  r.EngineVersion,
		FormulaVersion: r.FormulaVersion,
		TieSeed:        r.TieSeed,
		TieCrumbs:      crumbs,
		StageTimings:   timings,
		TraceId:        traceID,
	}
}

// frontierMapWire mirrors pipeline.FrontierMap.
type frontierMapWire struct {
	Id                    string `json:"id"`
	MediationFlagged      bool   `json:"mediation_flagged"`
	Enclave               bool   `json:"enclave"`
	ProtectedOverrideUsed bool   `json:"protected_override_used"`
}

func toFrontierMapWire(f pipeline.FrontierMap) frontierMapWire {
	return frontierMapWire{
		Id:                    f.Id,
		MediationFlagged:      f.MediationFlagged,
		Enclave:               f.Enclave,
		ProtectedOverrideUsed: f.ProtectedOverrideUsed,
	}
}

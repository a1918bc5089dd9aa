package pipeline

import (
	"sort"

	"github.com/opencivic/tallyengine/aggregation"
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/label"
	"github.com/opencivic/tallyengine/rng"
	"github.com/opencivic/tallyengine/tallyerr"
	"github.com/opencivic/tallyengine/tiebreak"
)

// Run executes the fixed, linear stage order (spec section 2):
// Tabulate(per unit) -> Allocate(per unit) -> Aggregate -> Gates -> Label
// -> BuildResult, over units sorted in UnitId order (spec section 5).
// All registry units are assumed to share one canonical option set (the
// first unit's, in canonical order); the per-unit option slice is still
// what tabulation and allocation consult.
func Run(registry DivisionRegistry, ballots Ballots, p Params) (ResultDoc, RunRecord, error) {
	if p.FormulaId == "" {
		return ResultDoc{}, RunRecord{}, tallyerr.ErrMissingFormulaId
	}
	if len(registry.Units) == 0 {
		return ResultDoc{}, RunRecord{}, ErrEmptyRegistry
	}

	units := make([]UnitDef, len(registry.Units))
	copy(units, registry.Units)
	sort.SliceStable(units, func(i, j int) bool { return units[i].UnitId.Less(units[j].UnitId) })

	canonicalOptions := ids.CanonicalOrder(units[0].Options)

	var stream *rng.Stream
	if p.TiePolicy == tiebreak.Random {
		stream = rng.New(p.TieSeed)
	}

	var allCrumbs []rng.TieCrumb
	var blocks []UnitResultBlock
	var contributions []aggregation.UnitContribution
	perRegion := make(map[string]map[ids.OptionId]uint64)

	for _, unit := range units {
		unitBallots, _ := ballots.UnitByID(unit.UnitId)

		tab, tabCrumbs, err := tabulateUnit(unit, unitBallots, p, p.TiePolicy, stream)
		if err != nil {
			return ResultDoc{}, RunRecord{}, stageError("tabulate", string(unit.UnitId), err)
		}
		allCrumbs = append(allCrumbs, tabCrumbs...)

		alloc, allocCrumbs, err := allocateUnit(unit, tab, p, p.TiePolicy, stream)
		if err != nil {
			return ResultDoc{}, RunRecord{}, stageError("allocate", string(unit.UnitId), err)
		}
		allCrumbs = append(allCrumbs, allocCrumbs...)

		blocks = append(blocks, UnitResultBlock{
			UnitId:            unit.UnitId,
			TabulationMethod:  p.TabulationMethod,
			Scores:            tab.scores,
			Allocation:        alloc,
			IRVRounds:         tab.irvRounds,
			CondorcetPairwise: tab.condorcet,
		})

		values := make(map[ids.OptionId]uint64, len(alloc.SeatsOrPower))
		for k, v := range alloc.SeatsOrPower {
			values[k] = uint64(v)
		}
		contributions = append(contributions, aggregation.UnitContribution{
			UnitId:           unit.UnitId,
			Values:           values,
			Turnout:          unitBallots.Turnout,
			PopulationWeight: unit.PopulationWeight,
		})

		region := perRegion[unit.RegionTag]
		if region == nil {
			region = make(map[ids.OptionId]uint64)
			perRegion[unit.RegionTag] = region
		}
		for k, v := range alloc.SeatsOrPower {
			region[k] += uint64(v)
		}
	}

	agg, err := aggregation.Aggregate(contributions, canonicalOptions, p.WeightingMethod)
	if err != nil {
		return ResultDoc{}, RunRecord{}, stageError("aggregate", "", err)
	}

	winner, top, second := topTwoShares(canonicalOptions, agg.Shares)
	marginPP, err := nationalMarginPP(top, second)
	if err != nil {
		return ResultDoc{}, RunRecord{}, stageError("label", "", err)
	}

	gatesPanel, report, err := evaluateGates(agg, DivisionRegistry{Units: units}, winner, perRegion, p)
	if err != nil {
		return ResultDoc{}, RunRecord{}, stageError("gates", "", err)
	}

	firstFailureReason := ""
	if len(report.Reasons) > 0 {
		firstFailureReason = report.Reasons[0]
	}
	lbl, reason := label.Decide(report.Pass, firstFailureReason, marginPP, p.DecisiveMarginPP, label.FrontierRiskFlags{
		MediationFlagged:      p.FrontierMediationFlagged,
		Enclave:               p.FrontierEnclave,
		ProtectedOverrideUsed: p.FrontierProtectedOverrideUsed,
	})

	aggregatePanel, err := buildAggregatePanel(agg, canonicalOptions)
	if err != nil {
		return ResultDoc{}, RunRecord{}, stageError("aggregate", "", err)
	}

	doc := ResultDoc{
		FormulaId:     p.FormulaId,
		Label:         lbl.String(),
		LabelReason:   reason,
		Units:         blocks,
		Aggregates:    aggregatePanel,
		Gates:         gatesPanel,
		FrontierMapId: p.FrontierMapId,
	}

	record := RunRecord{
		EngineVersion:  p.EngineVersion,
		FormulaVersion: p.FormulaId,
		TieSeed:        p.TieSeed,
		TieCrumbs:      allCrumbs,
	}

	return doc, record, nil
}

func buildAggregatePanel(agg aggregation.AggregateResults, canonical []ids.OptionItem) (AggregatePanel, error) {
	sharesExact := make(map[ids.OptionId]Ratio, len(canonical))
	sharesDecimal := make(map[ids.OptionId]int64, len(canonical))
	for _, o := range canonical {
		r, ok := agg.Shares[o.OptionId]
		if !ok {
			continue
		}
		sharesExact[o.OptionId] = toRatio(r)
		dec, err := toDecimal9(r)
		if err != nil {
			return AggregatePanel{}, err
		}
		sharesDecimal[o.OptionId] = dec
	}
	return AggregatePanel{
		Totals:          agg.Totals,
		SharesExact:     sharesExact,
		SharesDecimal9:  sharesDecimal,
		PooledTurnout:   agg.PooledTurnout,
		WeightingMethod: agg.WeightingMethod,
	}, nil
}

package pipeline

import (
	"sort"

	"github.com/opencivic/tallyengine/aggregation"
	"github.com/opencivic/tallyengine/gates"
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/rounding"
)

// evaluateGates builds the legitimacy panel (spec section 4.7) from the
// pooled aggregate, the registry's eligible electorate, the national
// winner, and per-region pooled totals used by the double-majority
// family panel.
//
// Double-majority's family panel follows the common constitutional
// pattern of "a majority of regions, each judged by its own simple
// majority": a region "qualifies" when the national winner's pooled
// value within that region is itself a simple majority (>=50%) of that
// region's pooled total, and the family panel passes when the fraction
// of qualifying regions meets DoubleMajorityRegionalPct (spec.md does not
// fully specify this; DESIGN.md records the decision).
func evaluateGates(
	agg aggregation.AggregateResults,
	registry DivisionRegistry,
	winner ids.OptionId,
	perRegion map[string]map[ids.OptionId]uint64,
	p Params,
) (LegitimacyPanel, gates.LegitimacyReport, error) {
	var quorumPanel, majorityPanel *GatePanel
	var quorumResult, majorityResult *gates.GateResult
	var dmPanel *DoubleMajorityPanel
	var dmResult *gates.DoubleMajorityResult
	var symResult *gates.SymmetryResult

	if p.Gates.Quorum {
		var eligible uint64
		for _, u := range registry.Units {
			eligible += u.EligibleElectorate
		}
		r, err := gates.Quorum(agg.PooledTurnout.ValidBallots, eligible, p.QuorumPct)
		if err != nil {
			return LegitimacyPanel{}, gates.LegitimacyReport{}, err
		}
		quorumResult = &r
		panel, err := toGatePanel(r)
		if err != nil {
			return LegitimacyPanel{}, gates.LegitimacyReport{}, err
		}
		quorumPanel = &panel
	}

	var winnerVotes, grandTotal uint64
	for _, v := range agg.Totals {
		grandTotal += v
	}
	winnerVotes = agg.Totals[winner]

	if p.Gates.Majority {
		r, err := gates.Majority(winnerVotes, grandTotal, p.MajorityPct)
		if err != nil {
			return LegitimacyPanel{}, gates.LegitimacyReport{}, err
		}
		majorityResult = &r
		panel, err := toGatePanel(r)
		if err != nil {
			return LegitimacyPanel{}, gates.LegitimacyReport{}, err
		}
		majorityPanel = &panel
	}

	if p.Gates.DoubleMajority {
		national, err := gates.Majority(winnerVotes, grandTotal, p.DoubleMajorityNationalPct)
		if err != nil {
			return LegitimacyPanel{}, gates.LegitimacyReport{}, err
		}
		qualifying, totalRegions := regionQualification(perRegion, winner)
		if totalRegions == 0 {
			// No region tags configured: the family panel has nothing
			// to partition, so it trivially passes rather than dividing
			// by zero.
			qualifying, totalRegions = 1, 1
		}
		family, err := gates.Majority(uint64(qualifying), uint64(totalRegions), p.DoubleMajorityRegionalPct)
		if err != nil {
			return LegitimacyPanel{}, gates.LegitimacyReport{}, err
		}
		dm := gates.DoubleMajority(national, family)
		dmResult = &dm

		nationalPanel, err := toGatePanel(national)
		if err != nil {
			return LegitimacyPanel{}, gates.LegitimacyReport{}, err
		}
		familyPanel, err := toGatePanel(family)
		if err != nil {
			return LegitimacyPanel{}, gates.LegitimacyReport{}, err
		}
		dmPanel = &DoubleMajorityPanel{National: nationalPanel, Family: familyPanel, Pass: dm.Pass}
	}

	if p.Gates.Symmetry {
		s := gates.Symmetry(p.SymmetryRespected)
		symResult = &s
	}

	report := gates.BuildReport(quorumResult, majorityResult, dmResult, symResult)

	panel := LegitimacyPanel{
		Quorum:         quorumPanel,
		Majority:       majorityPanel,
		DoubleMajority: dmPanel,
		Symmetry:       symResult,
		Pass:           report.Pass,
		Reasons:        report.Reasons,
	}
	return panel, report, nil
}

// regionQualification reports how many regions give winner a simple
// majority (>=50%) of that region's pooled total, and the total number
// of distinct regions observed. Units without a region tag (pooled under
// the empty name) belong to no region and are not counted.
func regionQualification(perRegion map[string]map[ids.OptionId]uint64, winner ids.OptionId) (qualifying, total int) {
	names := make([]string, 0, len(perRegion))
	for name := range perRegion {
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		totals := perRegion[name]
		var regionTotal uint64
		for _, v := range totals {
			regionTotal += v
		}
		total++
		if regionTotal == 0 {
			continue
		}
		ok, err := rounding.GePercentHalfEven(int64(totals[winner]), int64(regionTotal), 50)
		if err == nil && ok {
			qualifying++
		}
	}
	return qualifying, total
}

func toGatePanel(r gates.GateResult) (GatePanel, error) {
	dec, err := toDecimal9(r.Observed)
	if err != nil {
		return GatePanel{}, err
	}
	return GatePanel{
		ObservedExact:    toRatio(r.Observed),
		ObservedDecimal9: dec,
		ThresholdPct:     r.ThresholdPct,
		Pass:             r.Pass,
	}, nil
}

package config

import (
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/pipeline"
	"github.com/opencivic/tallyengine/tabulation"
)

// TallyTotalsFile mirrors tabulation.TallyTotals on the wire.
type TallyTotalsFile struct {
	ValidBallots   uint64 `yaml:"valid_ballots"`
	InvalidBallots uint64 `yaml:"invalid_ballots"`
}

func (t TallyTotalsFile) totals() tabulation.TallyTotals {
	return tabulation.TallyTotals{ValidBallots: t.ValidBallots, InvalidBallots: t.InvalidBallots}
}

// UnitBallotsFile mirrors pipeline.UnitBallots on the wire: only the map
// or slice matching the run's tabulation_method is expected to be
// populated, the rest are left absent.
type UnitBallotsFile struct {
	UnitId  string          `yaml:"unit_id"`
	Turnout TallyTotalsFile `yaml:"turnout"`

	PluralityCounts                   map[string]uint64 `yaml:"plurality_counts"`
	PluralityRequireExplicitPresence bool               `yaml:"plurality_require_explicit_presence"`

	ApprovalCounts map[string]uint64 `yaml:"approval_counts"`

	ScoreSums     map[string]uint64 `yaml:"score_sums"`
	ScoreMaxScore uint64            `yaml:"score_max_score"`

	Ranked [][]string `yaml:"ranked"`
}

func (u UnitBallotsFile) ballots() pipeline.UnitBallots {
	ranked := make([]tabulation.RankedBallot, len(u.Ranked))
	for i, b := range u.Ranked {
		ballot := make(tabulation.RankedBallot, len(b))
		for j, opt := range b {
			ballot[j] = ids.OptionId(opt)
		}
		ranked[i] = ballot
	}

	return pipeline.UnitBallots{
		UnitId:  ids.UnitId(u.UnitId),
		Turnout: u.Turnout.totals(),
		Plurality: tabulation.PluralityVotes{
			Counts:                   optionMap(u.PluralityCounts),
			RequireExplicitPresence: u.PluralityRequireExplicitPresence,
		},
		Approval: tabulation.ApprovalVotes{Approvals: optionMap(u.ApprovalCounts)},
		Score:    tabulation.ScoreVotes{Sums: optionMap(u.ScoreSums), MaxScore: u.ScoreMaxScore},
		Ranked:   ranked,
	}
}

func optionMap(m map[string]uint64) map[ids.OptionId]uint64 {
	out := make(map[ids.OptionId]uint64, len(m))
	for k, v := range m {
		out[ids.OptionId(k)] = v
	}
	return out
}

// BallotsFile is the on-disk YAML shape of the dynamic ballot input (spec
// section 6).
type BallotsFile struct {
	Units []UnitBallotsFile `yaml:"units"`
}

// Ballots translates the wire form into pipeline.Ballots.
func (f BallotsFile) Ballots() pipeline.Ballots {
	units := make([]pipeline.UnitBallots, len(f.Units))
	for i, u := range f.Units {
		units[i] = u.ballots()
	}
	return pipeline.Ballots{Units: units}
}

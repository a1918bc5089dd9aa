package telemetry_test

import (
	"testing"

	"github.com/opencivic/tallyengine/aggregation"
	"github.com/opencivic/tallyengine/allocation"
	"github.com/opencivic/tallyengine/ids"
	"github.com/opencivic/tallyengine/internal/telemetry"
	"github.com/opencivic/tallyengine/pipeline"
	"github.com/opencivic/tallyengine/tabulation"
	"github.com/opencivic/tallyengine/tiebreak"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestRecorderRunPopulatesStageTimings(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := telemetry.NewRecorder(telemetry.WithRegisterer(reg))
	require.NoError(t, err)

	registry := pipeline.DivisionRegistry{
		Units: []pipeline.UnitDef{{
			UnitId:             "u1",
			EligibleElectorate: 100,
			Options: []ids.OptionItem{
				{OptionId: "A", OrderIndex: 0},
				{OptionId: "B", OrderIndex: 1},
			},
		}},
	}
	ballots := pipeline.Ballots{
		Units: []pipeline.UnitBallots{{
			UnitId:  "u1",
			Turnout: tabulation.TallyTotals{ValidBallots: 10},
			Plurality: tabulation.PluralityVotes{
				Counts: map[ids.OptionId]uint64{"A": 4, "B": 6},
			},
		}},
	}
	params := pipeline.Params{
		FormulaId:        "f1",
		TiePolicy:        tiebreak.DeterministicOrder,
		TabulationMethod: tabulation.MethodPlurality,
		AllocationFamily: allocation.FamilyWTA,
		Magnitude:        1,
		WeightingMethod:  aggregation.WeightNatural,
		DecisiveMarginPP: 1,
	}

	_, record, err := recorder.Run(registry, ballots, params)
	require.NoError(t, err)
	require.Contains(t, record.StageTimings, "run")
	require.GreaterOrEqual(t, record.StageTimings["run"], int64(0))
}

func TestRecorderRunPropagatesError(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := telemetry.NewRecorder(telemetry.WithRegisterer(reg))
	require.NoError(t, err)

	_, _, err = recorder.Run(pipeline.DivisionRegistry{}, pipeline.Ballots{}, pipeline.Params{FormulaId: "f"})
	require.ErrorIs(t, err, pipeline.ErrEmptyRegistry)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opencivic/tallyengine/allocation"
	"github.com/opencivic/tallyengine/internal/config"
	"github.com/opencivic/tallyengine/tabulation"
	"github.com/opencivic/tallyengine/tiebreak"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParamsTranslatesTags(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "params.yaml", `
formula_id: formula-1
tie_policy: deterministic_order
tabulation_method: irv
reduce_continuing_denominator: true
allocation_family: highest_averages
divisor_family: sainte_lague
weighting_method: population_weighted
gates:
  quorum: true
  majority: true
quorum_pct: 25
majority_pct: 50
decisive_margin_pp: 2
`)

	loader := config.NewLoader()
	params, err := loader.LoadParams(path)
	require.NoError(t, err)

	require.Equal(t, "formula-1", params.FormulaId)
	require.Equal(t, tiebreak.DeterministicOrder, params.TiePolicy)
	require.Equal(t, tabulation.MethodIRV, params.TabulationMethod)
	require.True(t, params.ReduceContinuingDenominator)
	require.Equal(t, allocation.FamilyHighestAverages, params.AllocationFamily)
	require.Equal(t, allocation.DivisorSainteLague, params.DivisorFamily)
	require.True(t, params.Gates.Quorum)
	require.True(t, params.Gates.Majority)
	require.EqualValues(t, 25, params.QuorumPct)
}

func TestLoadParamsRejectsUnknownTag(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "params.yaml", "formula_id: f\ntie_policy: coin_flip\n")

	_, err := config.NewLoader().LoadParams(path)
	require.Error(t, err)
}

func TestLoadParamsTieSeedEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "params.yaml", "formula_id: f\ntie_seed: 7\n")

	t.Setenv("TALLYENGINE_TIE_SEED", "99")
	loader := config.NewLoader(config.WithTieSeedEnvOverride("TALLYENGINE_TIE_SEED"))
	params, err := loader.LoadParams(path)
	require.NoError(t, err)
	require.EqualValues(t, 99, params.TieSeed)
}

func TestLoadRegistryAndBallots(t *testing.T) {
	dir := t.TempDir()
	registryPath := writeFile(t, dir, "registry.yaml", `
units:
  - unit_id: u1
    eligible_electorate: 100
    options:
      - option_id: A
        order_index: 0
      - option_id: B
        order_index: 1
`)
	ballotsPath := writeFile(t, dir, "ballots.yaml", `
units:
  - unit_id: u1
    turnout:
      valid_ballots: 60
    plurality_counts:
      A: 20
      B: 40
`)

	loader := config.NewLoader()
	registry, err := loader.LoadRegistry(registryPath)
	require.NoError(t, err)
	require.Len(t, registry.Units, 1)
	require.Len(t, registry.Units[0].Options, 2)

	ballots, err := loader.LoadBallots(ballotsPath)
	require.NoError(t, err)
	require.Len(t, ballots.Units, 1)
	require.EqualValues(t, 60, ballots.Units[0].Turnout.ValidBallots)
	require.EqualValues(t, 40, ballots.Units[0].Plurality.Counts["B"])
}

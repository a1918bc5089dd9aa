package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opencivic/tallyengine/internal/config"
	"github.com/opencivic/tallyengine/internal/serialize"
	"github.com/opencivic/tallyengine/internal/telemetry"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Execute a tabulation run",
	Long:  `Loads a division registry, a parameter set, and a ballot file, runs the pipeline, and writes Result.json and RunRecord.json.`,
	RunE:  runTally,
}

func init() {
	runCmd.Flags().String("registry", "", "path to the division registry YAML file")
	runCmd.Flags().String("params", "", "path to the parameter set YAML file")
	runCmd.Flags().String("ballots", "", "path to the ballots YAML file")
	runCmd.Flags().String("out", ".", "directory to write Result.json and RunRecord.json into")
	runCmd.Flags().String("tie-seed-env", "", "environment variable that, if set, overrides tie_seed")
}

func runTally(cmd *cobra.Command, args []string) error {
	registryPath, _ := cmd.Flags().GetString("registry")
	paramsPath, _ := cmd.Flags().GetString("params")
	ballotsPath, _ := cmd.Flags().GetString("ballots")
	outDir, _ := cmd.Flags().GetString("out")
	tieSeedEnv, _ := cmd.Flags().GetString("tie-seed-env")

	if registryPath == "" || paramsPath == "" || ballotsPath == "" {
		return validationError(fmt.Errorf("--registry, --params, and --ballots are all required"))
	}

	var loaderOpts []config.Option
	if tieSeedEnv != "" {
		loaderOpts = append(loaderOpts, config.WithTieSeedEnvOverride(tieSeedEnv))
	}
	loader := config.NewLoader(loaderOpts...)

	registry, err := loader.LoadRegistry(registryPath)
	if err != nil {
		return validationError(err)
	}
	params, err := loader.LoadParams(paramsPath)
	if err != nil {
		return validationError(err)
	}
	ballots, err := loader.LoadBallots(ballotsPath)
	if err != nil {
		return validationError(err)
	}

	logLevel := telemetry.LogLevelInfo
	if verbose {
		logLevel = telemetry.LogLevelDebug
	}
	recorder, err := telemetry.NewRecorder(telemetry.WithLogger(telemetry.LoggerConfig{Level: logLevel}))
	if err != nil {
		return internalError(err)
	}

	doc, record, err := recorder.Run(registry, ballots, params)
	if err != nil {
		return internalError(err)
	}

	resultJSON, err := serialize.MarshalResult(doc)
	if err != nil {
		return internalError(err)
	}
	recordJSON, err := serialize.MarshalRunRecord(record)
	if err != nil {
		return internalError(err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return internalError(fmt.Errorf("creating output directory: %w", err))
	}
	if err := os.WriteFile(filepath.Join(outDir, "Result.json"), resultJSON, 0o644); err != nil {
		return internalError(fmt.Errorf("writing Result.json: %w", err))
	}
	if err := os.WriteFile(filepath.Join(outDir, "RunRecord.json"), recordJSON, 0o644); err != nil {
		return internalError(fmt.Errorf("writing RunRecord.json: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "label=%s reasons=%v -> %s\n", doc.Label, doc.Gates.Reasons, outDir)
	return nil
}

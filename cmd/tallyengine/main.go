package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	version = "dev" // set by build flags
)

var rootCmd = &cobra.Command{
	Use:     "tallyengine",
	Short:   "Deterministic election and referendum tabulation engine",
	Long:    `tallyengine tabulates ballots, allocates seats or power, aggregates results across units, and evaluates legitimacy gates, from a registry, a parameter set, and a ballot file.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose log output")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

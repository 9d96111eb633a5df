package cli

import (
	"fmt"
	"os"

	"github.com/mcpscan/mcpscan/internal/aggregator"
	"github.com/mcpscan/mcpscan/internal/reporter"
	"github.com/spf13/cobra"
)

var aggregateSummaryFile string

// aggregateCmd represents the aggregate command
var aggregateCmd = &cobra.Command{
	Use:   "aggregate <org> <repo> <results-dir>",
	Short: "Merge per-scanner temp files into a repository's violations file",
	Long: `Merge every registered scanner's temp output ({scanner}-violations.json)
found in the results directory into the repository's persistent
{org}-{repo}-violations.json, then regenerate the Markdown summary.

A scanner's temp file replaces that scanner's previous entry wholesale, so
re-running aggregation after a fresh scan is safe. Temp files are deleted
after a successful save.

Example:
  mcpscan aggregate acme mcp-server ./results`,
	Args: exactArgs(3),
	RunE: runAggregate,
}

func init() {
	aggregateCmd.Flags().StringVar(&aggregateSummaryFile, "summary-file", "",
		"path of the Markdown summary (default from config)")
}

func runAggregate(cmd *cobra.Command, args []string) error {
	org, repo, resultsDir := args[0], args[1], args[2]

	summaryFile := aggregateSummaryFile
	if summaryFile == "" {
		summaryFile = cfg.SummaryFile
	}

	agg := aggregator.New(cfg.Registry())
	agg.SetLogf(func(format string, a ...any) {
		fmt.Printf(format+"\n", a...)
	})

	logVerbose("Aggregating results for %s/%s from %s", org, repo, resultsDir)

	results, err := agg.Aggregate(org, repo, resultsDir)
	if err != nil {
		logError("Failed to aggregate results: %v", err)
		return err
	}

	if err := agg.Save(org, repo, results, resultsDir); err != nil {
		logError("Failed to save results: %v", err)
		return err
	}

	rows, err := agg.SummaryRows(resultsDir)
	if err != nil {
		logError("Failed to build summary: %v", err)
		return err
	}

	if err := os.WriteFile(summaryFile, []byte(reporter.Markdown(rows)), 0644); err != nil {
		logError("Failed to write summary: %v", err)
		return err
	}
	fmt.Println("Generated SCAN_RESULTS.md with vulnerability summary")

	return nil
}

package cli

import (
	"fmt"
	"os"

	"github.com/mcpscan/mcpscan/internal/aggregator"
	"github.com/mcpscan/mcpscan/internal/reporter"
	"github.com/spf13/cobra"
)

var (
	summaryFile   string
	summaryStdout bool
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary <results-dir>",
	Short: "Regenerate the Markdown summary from existing violations files",
	Long: `Rebuild the scan-results table from the per-repository violations files in
the results directory, without merging any scanner temp files.

Rows are sorted best-first: clean repositories at the top, the worst
offenders at the bottom.

Example:
  mcpscan summary ./results
  mcpscan summary ./results --stdout`,
	Args: exactArgs(1),
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFile, "summary-file", "",
		"path of the Markdown summary (default from config)")
	summaryCmd.Flags().BoolVar(&summaryStdout, "stdout", false,
		"print the summary instead of writing a file")
}

func runSummary(cmd *cobra.Command, args []string) error {
	resultsDir := args[0]

	outPath := summaryFile
	if outPath == "" {
		outPath = cfg.SummaryFile
	}

	agg := aggregator.New(cfg.Registry())

	rows, err := agg.SummaryRows(resultsDir)
	if err != nil {
		logError("Failed to build summary: %v", err)
		return err
	}
	logVerbose("Summarized %d repositories", len(rows))

	md := reporter.Markdown(rows)

	if summaryStdout {
		fmt.Println(md)
		return nil
	}

	if err := os.WriteFile(outPath, []byte(md), 0644); err != nil {
		logError("Failed to write summary: %v", err)
		return err
	}
	fmt.Printf("Generated %s with vulnerability summary\n", outPath)

	return nil
}

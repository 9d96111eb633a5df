package cli

import (
	"fmt"

	"github.com/mcpscan/mcpscan/internal/aggregator"
	"github.com/mcpscan/mcpscan/internal/tui"
	"github.com/spf13/cobra"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse <results-dir>",
	Short: "Browse aggregated results in an interactive terminal UI",
	Long: `Open an interactive table of the per-repository scan results.

Keys:
  up/down  move the cursor
  /        search by project or scanner name
  s        cycle sort order (severity, name, total)
  esc      clear the active filter
  q        quit

Example:
  mcpscan browse ./results`,
	Args: exactArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	resultsDir := args[0]

	agg := aggregator.New(cfg.Registry())
	rows, err := agg.SummaryRows(resultsDir)
	if err != nil {
		logError("Failed to build summary: %v", err)
		return err
	}

	if len(rows) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	return tui.Run(rows)
}

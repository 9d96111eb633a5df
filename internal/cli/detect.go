package cli

import (
	"fmt"
	"os"

	"github.com/mcpscan/mcpscan/internal/detector"
	"github.com/mcpscan/mcpscan/internal/reporter"
	"github.com/spf13/cobra"
)

var (
	// Detect command flags
	detectFormat  string
	detectOutput  string
	detectExclude []string
)

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect <repo-path>",
	Short: "Detect MCP tool definitions in a repository",
	Long: `Scan a cloned repository for MCP tool definitions.

Detection is regex-based over raw source text: Python decorator idioms
(@mcp.tool, @server.tool, @tool) and TypeScript idioms (@Tool({...}) and
ListToolsRequestSchema handler registrations). When nothing matches but the
dependency manifests reference the MCP ecosystem, a single placeholder tool
is reported so the repository is still inventoried as an MCP server.

Example:
  mcpscan detect ./cloned-repo
  mcpscan detect ./cloned-repo --format json --output tools.json
  mcpscan detect ./cloned-repo --exclude 'node_modules/**' --exclude 'vendor/**'`,
	Args: exactArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringVarP(&detectFormat, "format", "f", "",
		"output format: text or json (default from config)")
	detectCmd.Flags().StringVarP(&detectOutput, "output", "o", "",
		"output file path (default: stdout)")
	detectCmd.Flags().StringSliceVar(&detectExclude, "exclude", nil,
		"doublestar globs to skip (default from config)")
}

func runDetect(cmd *cobra.Command, args []string) error {
	repoPath := args[0]

	// Apply config defaults if flags not set
	if detectFormat == "" {
		detectFormat = cfg.Format
	}
	excludes := cfg.Exclude
	if len(detectExclude) > 0 {
		excludes = detectExclude
	}

	logVerbose("Detecting tools in: %s", repoPath)
	logDebug("Config: format=%s, excludes=%v", detectFormat, excludes)

	d := detector.New(repoPath, detector.Config{
		Excludes: excludes,
		Verbose:  cfg.Verbose,
	})

	tools, err := d.Detect()
	if err != nil {
		logError("Failed to detect tools: %v", err)
		return err
	}

	logVerbose("Detected %d tool(s)", len(tools))

	out := os.Stdout
	if detectOutput != "" {
		f, err := os.Create(detectOutput)
		if err != nil {
			logError("Failed to create output file: %v", err)
			return err
		}
		defer f.Close()
		out = f
	}

	switch detectFormat {
	case "text":
		return reporter.NewTextReporter(out).Generate(repoPath, tools, d.ToolsByFile())
	case "json":
		return reporter.NewJSONReporter(out, true).Generate(repoPath, tools, d.ToolsByFile())
	default:
		return &UsageError{Message: fmt.Sprintf("unsupported format: %s", detectFormat)}
	}
}

package cli

import (
	"fmt"
	"os"

	"github.com/mcpscan/mcpscan/internal/config"
	"github.com/spf13/cobra"
)

const (
	// Exit codes
	ExitOK           = 0 // Success
	ExitUsageError   = 1 // Bad invocation or invalid input
	ExitPolicyFail   = 2 // Policy check failed
	ExitRuntimeError = 3 // I/O, permissions, or runtime error
)

var (
	// Global config instance
	cfg *config.Config

	// Global flags
	configFile string
	verbose    bool
	debug      bool

	// Set at build time through SetVersion
	version = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mcpscan",
	Short: "mcpscan - MCP tool detection and scan-result aggregation",
	Long: `mcpscan inspects cloned MCP (Model-Context-Protocol) server repositories and
aggregates vulnerability-scanner output into per-repository reports.

It provides:
- Heuristic detection of MCP tool definitions in Python and TypeScript sources
- Aggregation of per-scanner JSON findings into one file per repository
- A Markdown summary table across every scanned repository
- Policy checks for CI/CD gating

Quick start:
  mcpscan detect ./cloned-repo
  mcpscan aggregate acme server ./results
  mcpscan summary ./results

Other commands:
  mcpscan check ./results
  mcpscan browse ./results`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration
		var err error
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with flags if provided
		if verbose {
			cfg.Verbose = true
		}
		if debug {
			cfg.Debug = true
		}

		return nil
	},
}

// SetVersion records the build version shown by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		os.Exit(HandleError(err))
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ~/mcpscan.yaml or ./mcpscan.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"debug mode (very verbose)")

	// Add subcommands
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(aggregateCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mcpscan %s\n", version)
	},
}

// HandleError determines the appropriate exit code for an error
func HandleError(err error) int {
	if err == nil {
		return ExitOK
	}

	switch err.(type) {
	case *UsageError:
		return ExitUsageError
	case *PolicyFailureError:
		return ExitPolicyFail
	default:
		return ExitRuntimeError
	}
}

// UsageError represents a bad invocation or invalid input
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// PolicyFailureError represents a failed policy check
type PolicyFailureError struct {
	Breaches int
}

func (e *PolicyFailureError) Error() string {
	return fmt.Sprintf("policy check failed with %d breach(es)", e.Breaches)
}

// exactArgs validates positional argument count, mapping failures to a usage
// error so the process exits with code 1.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{Message: fmt.Sprintf("usage: mcpscan %s", cmd.Use)}
		}
		return nil
	}
}

// logVerbose prints a message if verbose mode is enabled
func logVerbose(format string, args ...interface{}) {
	if cfg != nil && cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", args...)
	}
}

// logDebug prints a message if debug mode is enabled
func logDebug(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// logError prints an error message
func logError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
}

package cli

import (
	"fmt"

	"github.com/mcpscan/mcpscan/internal/aggregator"
	"github.com/mcpscan/mcpscan/internal/policy"
	"github.com/spf13/cobra"
)

var checkPolicyFile string

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <results-dir>",
	Short: "Evaluate aggregated results against a policy file",
	Long: `Evaluate the per-repository violations files against the rules in a
.mcpscan-policy.yaml file. Intended for CI/CD gating: the process exits
with code 2 when any rule is breached.

Without --policy the file is searched for in the current directory and its
parents. No policy file means the check passes.

Example:
  mcpscan check ./results
  mcpscan check ./results --policy ci/policy.yaml`,
	Args: exactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkPolicyFile, "policy", "",
		"policy file (default: nearest .mcpscan-policy.yaml)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	resultsDir := args[0]

	policyPath := checkPolicyFile
	if policyPath == "" {
		policyPath = policy.FindPolicyFile()
	}

	if policyPath == "" {
		fmt.Println("No policy file found, nothing to check")
		return nil
	}

	pol, err := policy.LoadFromFile(policyPath)
	if err != nil {
		logError("Failed to load policy: %v", err)
		return err
	}
	if pol == nil {
		fmt.Printf("Policy file %s does not exist, nothing to check\n", policyPath)
		return nil
	}
	logVerbose("Loaded policy from %s", policyPath)

	agg := aggregator.New(cfg.Registry())
	rows, err := agg.SummaryRows(resultsDir)
	if err != nil {
		logError("Failed to build summary: %v", err)
		return err
	}

	result := pol.Evaluate(rows)
	if result.Pass {
		fmt.Printf("Policy check passed (%d repositories)\n", len(rows))
		return nil
	}

	for _, breach := range result.Breaches {
		logError("policy breach [%s]: %s", breach.Rule, breach.Message)
	}

	return &PolicyFailureError{Breaches: len(result.Breaches)}
}

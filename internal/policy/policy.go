package policy

import (
	"fmt"
	"os"
	"strings"

	"github.com/mcpscan/mcpscan/internal/models"
	"gopkg.in/yaml.v3"
)

// Policy defines enforcement rules for aggregated scan results.
type Policy struct {
	Version string `yaml:"version"`
	Rules   Rules  `yaml:"rules"`
}

// Rules contains all configurable policy rules.
type Rules struct {
	MaxTotal       *int     `yaml:"max_total,omitempty"`
	MaxCritical    *int     `yaml:"max_critical,omitempty"`
	MaxHigh        *int     `yaml:"max_high,omitempty"`
	FailOnSeverity string   `yaml:"fail_on_severity,omitempty"`
	RequireScanner []string `yaml:"require_scanners,omitempty"`
}

// Breach is a single policy failure.
type Breach struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result holds the outcome of a policy check.
type Result struct {
	Pass     bool     `json:"pass"`
	Breaches []Breach `json:"breaches"`
}

// LoadFromFile reads a policy file.
func LoadFromFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read policy: %w", err)
	}

	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse policy: %w", err)
	}

	return &p, nil
}

// FindPolicyFile searches for a policy file in the current directory
// and parent directories up to the filesystem root.
func FindPolicyFile() string {
	names := []string{".mcpscan-policy.yaml", ".mcpscan-policy.yml"}

	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range names {
			path := dir + "/" + name
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		parent := dir[:strings.LastIndex(dir, "/")]
		if parent == dir || parent == "" {
			break
		}
		dir = parent
	}

	return ""
}

// Evaluate checks summary rows against the policy rules.
func (p *Policy) Evaluate(rows []models.SummaryRow) *Result {
	if p == nil {
		return &Result{Pass: true}
	}

	total := 0
	critical := 0
	high := 0
	scannersSeen := make(map[string]bool)
	for _, row := range rows {
		total += row.Total
		critical += row.SeverityCounts[models.SeverityCritical]
		high += row.SeverityCounts[models.SeverityHigh]
		if row.Scanners != "None" {
			for _, name := range strings.Split(row.Scanners, ", ") {
				scannersSeen[name] = true
			}
		}
	}

	var breaches []Breach

	// max_total
	if p.Rules.MaxTotal != nil && total > *p.Rules.MaxTotal {
		breaches = append(breaches, Breach{
			Rule:    "max_total",
			Message: fmt.Sprintf("total findings %d exceeds limit %d", total, *p.Rules.MaxTotal),
		})
	}

	// max_critical
	if p.Rules.MaxCritical != nil && critical > *p.Rules.MaxCritical {
		breaches = append(breaches, Breach{
			Rule:    "max_critical",
			Message: fmt.Sprintf("critical findings %d exceeds limit %d", critical, *p.Rules.MaxCritical),
		})
	}

	// max_high
	if p.Rules.MaxHigh != nil && high > *p.Rules.MaxHigh {
		breaches = append(breaches, Breach{
			Rule:    "max_high",
			Message: fmt.Sprintf("high findings %d exceeds limit %d", high, *p.Rules.MaxHigh),
		})
	}

	// fail_on_severity: any repository whose worst severity is at least as
	// bad as the configured threshold fails the check.
	if p.Rules.FailOnSeverity != "" {
		threshold := models.SeverityRank(p.Rules.FailOnSeverity)
		for _, row := range rows {
			if models.SeverityRank(row.Worst) <= threshold {
				breaches = append(breaches, Breach{
					Rule:    "fail_on_severity",
					Message: fmt.Sprintf("%s has worst severity %s (threshold %s)", row.OrgRepo, row.Worst, p.Rules.FailOnSeverity),
				})
			}
		}
	}

	// require_scanners
	for _, name := range p.Rules.RequireScanner {
		if !scannersSeen[name] {
			breaches = append(breaches, Breach{
				Rule:    "require_scanners",
				Message: fmt.Sprintf("required scanner %q contributed no results", name),
			})
		}
	}

	return &Result{
		Pass:     len(breaches) == 0,
		Breaches: breaches,
	}
}

package models

import "sort"

// Tool represents a single MCP tool definition detected in a repository.
type Tool struct {
	Name        string `json:"name"`
	FilePath    string `json:"file_path"`
	Description string `json:"description"`
	LineNumber  int    `json:"line_number"`
}

// Violation is a single scanner finding. Scanners attach arbitrary fields, so
// the record is kept as an open mapping; only "severity" and "fixed_version"
// are interpreted by this tool.
type Violation map[string]any

// Severity returns the finding's severity, defaulting to UNKNOWN when the
// field is absent or not a string.
func (v Violation) Severity() string {
	if s, ok := v["severity"].(string); ok && s != "" {
		return s
	}
	return SeverityUnknown
}

// FixedVersion returns the version that fixes the finding, or "" when the
// scanner reported none.
func (v Violation) FixedVersion() string {
	if s, ok := v["fixed_version"].(string); ok {
		return s
	}
	return ""
}

// ScannerResults maps a scanner name to its ordered list of findings for one
// repository. This is the on-disk shape of both the per-scanner temp files and
// the persistent {org}-{repo}-violations.json files.
type ScannerResults map[string][]Violation

// Flatten collects all findings across scanners. Scanner keys are visited in
// sorted order so the result is deterministic.
func (r ScannerResults) Flatten() []Violation {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	var all []Violation
	for _, name := range names {
		all = append(all, r[name]...)
	}
	return all
}

// ScannerNames returns the sorted, comma-joined scanner names, or "None" when
// no scanner contributed results.
func (r ScannerResults) ScannerNames() string {
	if len(r) == 0 {
		return "None"
	}

	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	joined := names[0]
	for _, name := range names[1:] {
		joined += ", " + name
	}
	return joined
}

// SummaryRow is one repository's line in the scan summary table.
type SummaryRow struct {
	OrgRepo        string         `json:"org_repo"`
	FileName       string         `json:"file_name"`
	Total          int            `json:"total"`
	SeverityCounts map[string]int `json:"severity_counts"`
	Fixable        int            `json:"fixable"`
	Scanners       string         `json:"scanners"`
	Worst          string         `json:"worst_severity"`
}

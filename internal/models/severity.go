package models

// Severity levels recognized in scanner output.
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
	SeverityLow      = "LOW"
	SeverityUnknown  = "UNKNOWN"
	SeverityWarning  = "WARNING"
	SeverityNone     = "NONE"
)

// severityOrder is the fixed total order used everywhere severities are
// compared. Lower rank = worse.
var severityOrder = map[string]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
	SeverityUnknown:  4,
	SeverityWarning:  5,
	SeverityNone:     6,
}

// unrankedSeverity is the rank assigned to severity values outside the fixed
// order. It sorts worse than every recognized value.
const unrankedSeverity = 999

// severityEmoji maps a worst-case severity to the status indicator shown in
// the summary table.
var severityEmoji = map[string]string{
	SeverityCritical: "🔴",
	SeverityHigh:     "🔴",
	SeverityMedium:   "🟡",
	SeverityLow:      "🟡",
	SeverityUnknown:  "🟡",
	SeverityWarning:  "🟡",
	SeverityNone:     "🟢",
}

// SeverityRank returns the position of a severity in the fixed total order.
func SeverityRank(severity string) int {
	if rank, ok := severityOrder[severity]; ok {
		return rank
	}
	return unrankedSeverity
}

// WorstSeverity returns the highest-priority severity present in the findings,
// or NONE for an empty list.
func WorstSeverity(violations []Violation) string {
	worst := SeverityNone
	worstRank := SeverityRank(worst)

	for _, v := range violations {
		severity := v.Severity()
		if rank := SeverityRank(severity); rank < worstRank {
			worst = severity
			worstRank = rank
		}
	}

	return worst
}

// CountBySeverity tallies findings for the four severities shown as table
// columns. Other severities are counted only in the total.
func CountBySeverity(violations []Violation) map[string]int {
	counts := map[string]int{
		SeverityCritical: 0,
		SeverityHigh:     0,
		SeverityMedium:   0,
		SeverityLow:      0,
	}
	for _, v := range violations {
		severity := v.Severity()
		if _, ok := counts[severity]; ok {
			counts[severity]++
		}
	}
	return counts
}

// CountFixable returns how many findings carry a non-empty fixed_version.
func CountFixable(violations []Violation) int {
	fixable := 0
	for _, v := range violations {
		if v.FixedVersion() != "" {
			fixable++
		}
	}
	return fixable
}

// StatusEmoji returns the table status indicator for a worst-case severity.
// Unrecognized values get a neutral white circle.
func StatusEmoji(severity string) string {
	if emoji, ok := severityEmoji[severity]; ok {
		return emoji
	}
	return "⚪"
}

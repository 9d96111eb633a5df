package reporter

import (
	"fmt"
	"strings"

	"github.com/mcpscan/mcpscan/internal/models"
)

// Markdown renders the scan summary table as a Markdown document. Row order
// is taken as given; the aggregator has already sorted best-first.
func Markdown(rows []models.SummaryRow) string {
	lines := []string{
		"# Vulnerability Scan Results",
		"",
		"| Project | Results | Total | Critical | High | Medium | Low | Fixable | Scanners | Status |",
		"|---------|---------|-------|----------|------|--------|-----|---------|----------|--------|",
	}

	for _, row := range rows {
		projectLink := fmt.Sprintf("[%s](https://github.com/%s)", row.OrgRepo, row.OrgRepo)
		resultsLink := fmt.Sprintf("[📋](results/%s)", row.FileName)

		lines = append(lines, fmt.Sprintf("| %s | %s | %d | %d | %d | %d | %d | %d | %s | %s |",
			projectLink,
			resultsLink,
			row.Total,
			row.SeverityCounts[models.SeverityCritical],
			row.SeverityCounts[models.SeverityHigh],
			row.SeverityCounts[models.SeverityMedium],
			row.SeverityCounts[models.SeverityLow],
			row.Fixable,
			row.Scanners,
			models.StatusEmoji(row.Worst)))
	}

	return strings.Join(lines, "\n")
}

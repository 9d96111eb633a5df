package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mcpscan/mcpscan/internal/models"
)

var tableColumns = []table.Column{
	{Title: "Project", Width: 28},
	{Title: "Total", Width: 6},
	{Title: "Crit", Width: 5},
	{Title: "High", Width: 5},
	{Title: "Med", Width: 5},
	{Title: "Low", Width: 5},
	{Title: "Fixable", Width: 8},
	{Title: "Worst", Width: 9},
	{Title: "Scanners", Width: 24},
}

// buildRows converts summary rows to table rows.
func buildRows(rows []models.SummaryRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, table.Row{
			truncate(row.OrgRepo, tableColumns[0].Width),
			fmt.Sprintf("%d", row.Total),
			fmt.Sprintf("%d", row.SeverityCounts[models.SeverityCritical]),
			fmt.Sprintf("%d", row.SeverityCounts[models.SeverityHigh]),
			fmt.Sprintf("%d", row.SeverityCounts[models.SeverityMedium]),
			fmt.Sprintf("%d", row.SeverityCounts[models.SeverityLow]),
			fmt.Sprintf("%d", row.Fixable),
			row.Worst,
			truncate(row.Scanners, tableColumns[8].Width),
		})
	}
	return out
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	const ellipsis = "..."
	if maxLen <= len(ellipsis) {
		return s[:maxLen]
	}
	return s[:maxLen-len(ellipsis)] + ellipsis
}

// sortField selects the active row ordering.
type sortField int

const (
	sortBySeverity sortField = iota
	sortByName
	sortByTotal
	sortFieldCount
)

func sortFieldName(f sortField) string {
	switch f {
	case sortBySeverity:
		return "severity"
	case sortByName:
		return "name"
	case sortByTotal:
		return "total"
	default:
		return "unknown"
	}
}

// sortRows orders rows for browsing. Severity sorts worst first, the
// opposite of the Markdown table, because the worst repositories are what an
// operator opens the browser for.
func sortRows(rows []models.SummaryRow, by sortField) {
	switch by {
	case sortByName:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].OrgRepo < rows[j].OrgRepo
		})
	case sortByTotal:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Total > rows[j].Total
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			ri := models.SeverityRank(rows[i].Worst)
			rj := models.SeverityRank(rows[j].Worst)
			if ri != rj {
				return ri < rj
			}
			return rows[i].OrgRepo < rows[j].OrgRepo
		})
	}
}

// filterRows returns the rows whose project or scanner list contains the
// search text (case-insensitive).
func filterRows(rows []models.SummaryRow, search string) []models.SummaryRow {
	if search == "" {
		out := make([]models.SummaryRow, len(rows))
		copy(out, rows)
		return out
	}

	needle := strings.ToLower(search)
	var out []models.SummaryRow
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.OrgRepo), needle) ||
			strings.Contains(strings.ToLower(row.Scanners), needle) {
			out = append(out, row)
		}
	}
	return out
}

// newTable creates a bubbles table with standard columns and styling.
func newTable(rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(tableColumns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorAccent).
		Bold(false)
	t.SetStyles(s)

	return t
}

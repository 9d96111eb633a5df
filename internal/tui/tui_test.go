package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mcpscan/mcpscan/internal/models"
)

func sampleRows() []models.SummaryRow {
	return []models.SummaryRow{
		{
			OrgRepo:        "acme/clean",
			FileName:       "acme-clean-violations.json",
			SeverityCounts: map[string]int{},
			Scanners:       "None",
			Worst:          models.SeverityNone,
		},
		{
			OrgRepo:        "acme/server",
			FileName:       "acme-server-violations.json",
			Total:          3,
			SeverityCounts: map[string]int{models.SeverityCritical: 1},
			Scanners:       "trivy",
			Worst:          models.SeverityCritical,
		},
		{
			OrgRepo:        "beta/api",
			FileName:       "beta-api-violations.json",
			Total:          1,
			SeverityCounts: map[string]int{models.SeverityLow: 1},
			Scanners:       "grype",
			Worst:          models.SeverityLow,
		},
	}
}

func TestNewSortsWorstFirst(t *testing.T) {
	m := New(sampleRows())

	if len(m.filteredRows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(m.filteredRows))
	}
	expected := []string{"acme/server", "beta/api", "acme/clean"}
	for i, want := range expected {
		if m.filteredRows[i].OrgRepo != want {
			t.Fatalf("row %d: expected %s, got %s", i, want, m.filteredRows[i].OrgRepo)
		}
	}
}

func TestQuitKey(t *testing.T) {
	m := New(sampleRows())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("expected tea.Quit, got %v", msg)
	}
}

func TestSearchFilter(t *testing.T) {
	m := New(sampleRows())

	// Enter search mode, type, confirm.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = updated.(Model)
	if m.mode != modeSearch {
		t.Fatalf("expected search mode")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("beta")})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.mode != modeNormal {
		t.Fatalf("expected normal mode after enter")
	}
	if len(m.filteredRows) != 1 || m.filteredRows[0].OrgRepo != "beta/api" {
		t.Fatalf("unexpected filtered rows: %v", m.filteredRows)
	}

	// esc clears the filter.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if len(m.filteredRows) != 3 {
		t.Fatalf("expected filter cleared, got %d rows", len(m.filteredRows))
	}
}

func TestSearchByScannerName(t *testing.T) {
	rows := filterRows(sampleRows(), "grype")
	if len(rows) != 1 || rows[0].OrgRepo != "beta/api" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestSortCycle(t *testing.T) {
	m := New(sampleRows())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updated.(Model)
	if m.sortBy != sortByName {
		t.Fatalf("expected sort by name, got %v", m.sortBy)
	}
	if m.filteredRows[0].OrgRepo != "acme/clean" {
		t.Fatalf("expected alphabetical first row, got %s", m.filteredRows[0].OrgRepo)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updated.(Model)
	if m.sortBy != sortByTotal {
		t.Fatalf("expected sort by total, got %v", m.sortBy)
	}
	if m.filteredRows[0].OrgRepo != "acme/server" {
		t.Fatalf("expected highest total first, got %s", m.filteredRows[0].OrgRepo)
	}
}

func TestViewContainsData(t *testing.T) {
	m := New(sampleRows())
	m.table.SetWidth(120)

	view := m.View()
	if !strings.Contains(view, "acme/server") {
		t.Fatalf("expected project in view:\n%s", view)
	}
	if !strings.Contains(view, "3/3 repositories") {
		t.Fatalf("expected footer count in view:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short unchanged", "abc", 10, "abc"},
		{"exact unchanged", "abcde", 5, "abcde"},
		{"truncated", "abcdefghij", 8, "abcde..."},
		{"tiny max", "abcdefghij", 2, "ab"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

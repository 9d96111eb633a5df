package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mcpscan/mcpscan/internal/models"

	"github.com/charmbracelet/bubbles/table"
)

// mode represents the current UI interaction mode.
type mode int

const (
	modeNormal mode = iota
	modeSearch
)

const defaultTableHeight = 15

// headerHeight is the number of terminal lines the header occupies.
const headerHeight = 3

// Model is the top-level Bubble Tea model for the browse command.
type Model struct {
	// Data (immutable after init)
	allRows []models.SummaryRow

	// UI state
	table        table.Model
	searchInput  textinput.Model
	filteredRows []models.SummaryRow
	search       string
	sortBy       sortField
	mode         mode
	width        int
	height       int
	statusMsg    string
}

// New creates a new TUI model from summary rows.
func New(rows []models.SummaryRow) Model {
	all := make([]models.SummaryRow, len(rows))
	copy(all, rows)

	sortRows(all, sortBySeverity)
	t := newTable(buildRows(all), defaultTableHeight)

	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.CharLimit = 64

	return Model{
		allRows:      all,
		filteredRows: all,
		table:        t,
		searchInput:  ti,
		sortBy:       sortBySeverity,
		mode:         modeNormal,
		width:        80,
		height:       24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		tableH := msg.Height - headerHeight - 3
		if tableH < 3 {
			tableH = 3
		}
		m.table.SetHeight(tableH)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	default:
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeSearch {
		return m.handleSearchKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Search):
		m.mode = modeSearch
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.Sort):
		m.sortBy = (m.sortBy + 1) % sortFieldCount
		m.rebuildTable()
		m.statusMsg = fmt.Sprintf("Sort: %s", sortFieldName(m.sortBy))
		return m, nil
	case key.Matches(msg, keys.ClearFilter):
		m.search = ""
		m.statusMsg = ""
		m.rebuildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search = m.searchInput.Value()
		m.mode = modeNormal
		m.searchInput.Blur()
		m.rebuildTable()
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) rebuildTable() {
	filtered := filterRows(m.allRows, m.search)
	sortRows(filtered, m.sortBy)
	m.filteredRows = filtered
	m.table.SetRows(buildRows(filtered))
}

func (m *Model) selectedRow() *models.SummaryRow {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.filteredRows) {
		return nil
	}
	return &m.filteredRows[cursor]
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Search bar overlay
	if m.mode == modeSearch {
		b.WriteString(styleSearchPrompt.Render("/ "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")

	b.WriteString(m.renderDetail())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

func (m *Model) renderHeader() string {
	total := 0
	worst := models.SeverityNone
	for _, row := range m.allRows {
		total += row.Total
		if models.SeverityRank(row.Worst) < models.SeverityRank(worst) {
			worst = row.Worst
		}
	}

	line := fmt.Sprintf("mcpscan  Repositories: %d  Findings: %d  Worst: %s",
		len(m.allRows), total, severityStyle(worst).Render(worst))
	return styleTitle.Render(line)
}

func (m *Model) renderDetail() string {
	row := m.selectedRow()
	if row == nil {
		return ""
	}
	return fmt.Sprintf("  %s  file: %s  scanners: %s",
		severityStyle(row.Worst).Render(row.Worst), row.FileName, row.Scanners)
}

func (m *Model) renderFooter() string {
	left := "q:quit  /:search  s:sort  esc:clear"
	right := fmt.Sprintf("%d/%d repositories", len(m.filteredRows), len(m.allRows))

	if m.statusMsg != "" {
		right = m.statusMsg + "  " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return styleFooter.Render(left + strings.Repeat(" ", gap) + right)
}

// Run starts the Bubble Tea program. Called from the browse command.
func Run(rows []models.SummaryRow) error {
	m := New(rows)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

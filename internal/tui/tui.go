// Package tui implements the Bubble Tea step inspector.
package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/classify"
	"github.com/RLin8103/cs598-swe-agent-trajectory-analysis-group8/internal/trajectory"
)

// stepRow is one entry in the step list.
type stepRow struct {
	index    int
	action   string
	command  string
	isRepro  bool
	isSearch bool
}

// Model is the top-level Bubble Tea model for the inspector.
type Model struct {
	instanceID string
	path       string
	steps      []trajectory.IndexedStep
	rows       []stepRow

	// UI state
	width  int
	height int

	cursor       int // selected step
	listOffset   int // scroll position of the step list
	detailOffset int // scroll position within the detail pane
	detailLines  []string

	showHelp bool
}

// New creates an inspector model from an indexed step sequence and the
// classification outcomes computed for it.
func New(instanceID, path string, steps []trajectory.IndexedStep, outcomes map[string]classify.Outcome) Model {
	reproSet := stepSet(outcomes["reproduction"].Steps)
	searchSet := stepSet(outcomes["search"].Steps)

	rows := make([]stepRow, len(steps))
	for i, is := range steps {
		action := is.Step.ActionName()
		if action == "" {
			action = "(none)"
		}
		rows[i] = stepRow{
			index:    is.Index,
			action:   action,
			command:  is.Step.Command(),
			isRepro:  reproSet[is.Index],
			isSearch: searchSet[is.Index],
		}
	}

	m := Model{
		instanceID: instanceID,
		path:       path,
		steps:      steps,
		rows:       rows,
	}
	m.updateDetail()
	return m
}

func stepSet(steps []int) map[int]bool {
	set := make(map[int]bool, len(steps))
	for _, s := range steps {
		set[s] = true
	}
	return set
}

func (m *Model) updateDetail() {
	m.detailOffset = 0
	if len(m.steps) == 0 {
		m.detailLines = nil
		return
	}
	data, err := json.MarshalIndent(m.steps[m.cursor].Step, "", "  ")
	if err != nil {
		m.detailLines = []string{fmt.Sprintf("(unrenderable step: %v)", err)}
		return
	}
	m.detailLines = highlightJSON(string(data))
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
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				m.updateDetail()
			}

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.updateDetail()
			}

		case key.Matches(msg, keys.DetailDown):
			if m.detailOffset < len(m.detailLines)-1 {
				m.detailOffset++
			}

		case key.Matches(msg, keys.DetailUp):
			if m.detailOffset > 0 {
				m.detailOffset--
			}

		case key.Matches(msg, keys.NextHit):
			m.jumpToHit(1)

		case key.Matches(msg, keys.PrevHit):
			m.jumpToHit(-1)

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
		}
	}

	return m, nil
}

// jumpToHit moves the cursor to the next/previous step flagged by any
// classifier.
func (m *Model) jumpToHit(dir int) {
	for i := m.cursor + dir; i >= 0 && i < len(m.rows); i += dir {
		if m.rows[i].isRepro || m.rows[i].isSearch {
			m.cursor = i
			m.updateDetail()
			return
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	listWidth := m.listWidth()
	detailWidth := m.width - listWidth - 1

	list := m.renderStepList(listWidth, m.height-2)
	detail := m.renderDetail(detailWidth, m.height-2)

	main := lipgloss.JoinHorizontal(lipgloss.Top, list, " ", detail)
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

func (m Model) listWidth() int {
	w := m.width * 2 / 5
	if w < 28 {
		w = 28
	}
	if w > m.width-20 {
		w = m.width - 20
	}
	return w
}

func (m *Model) visibleRows(height int) (int, int) {
	visible := height - 2 // borders
	if visible < 1 {
		visible = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visible {
		m.listOffset = m.cursor - visible + 1
	}
	end := m.listOffset + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}
	return m.listOffset, end
}

func (m Model) renderStepList(width, height int) string {
	var b strings.Builder

	start, end := m.visibleRows(height)
	for i := start; i < end; i++ {
		row := m.rows[i]

		badges := ""
		if row.isRepro {
			badges += badgeReproStyle.Render("R")
		}
		if row.isSearch {
			badges += badgeSearchStyle.Render("S")
		}
		if badges == "" {
			badges = "  "
		}

		label := row.action
		if row.command != "" {
			label = fmt.Sprintf("%s  %s", row.action, row.command)
		}
		maxLabel := width - 12
		if maxLabel > 0 && len(label) > maxLabel {
			label = label[:maxLabel-1] + "…"
		}

		line := fmt.Sprintf("%4d %s %s", row.index, badges, label)

		style := stepItemStyle
		if i == m.cursor {
			style = stepItemSelectedStyle
		}

		b.WriteString(style.Width(width - 4).Render(line))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}

	return stepListStyle.Width(width).Height(height - 2).Render(b.String())
}

func (m Model) renderDetail(width, height int) string {
	innerHeight := height - 2

	header := detailHeaderStyle.Render(fmt.Sprintf("Step %d", m.currentIndex()))

	visible := innerHeight - 2
	if visible < 1 {
		visible = 1
	}

	end := m.detailOffset + visible
	if end > len(m.detailLines) {
		end = len(m.detailLines)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for i := m.detailOffset; i < end; i++ {
		b.WriteString(m.detailLines[i])
		if i < end-1 {
			b.WriteByte('\n')
		}
	}

	return detailViewStyle.Width(width).Height(innerHeight).Render(b.String())
}

func (m Model) currentIndex() int {
	if len(m.rows) == 0 {
		return 0
	}
	return m.rows[m.cursor].index
}

func (m Model) renderStatusBar() string {
	reproCount, searchCount := 0, 0
	for _, r := range m.rows {
		if r.isRepro {
			reproCount++
		}
		if r.isSearch {
			searchCount++
		}
	}

	left := fmt.Sprintf(" %s  step %d/%d", m.instanceID, m.cursor+1, len(m.rows))
	right := fmt.Sprintf("repro %d  search %d  ? help ", reproCount, searchCount)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return statusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(detailHeaderStyle.Render("trajlens — Keyboard Shortcuts"))
	b.WriteString("\n\n")

	helpItems := []struct{ key, desc string }{
		{"↑/k", "Previous step"},
		{"↓/j", "Next step"},
		{"K/pgup", "Scroll detail up"},
		{"J/pgdn", "Scroll detail down"},
		{"]", "Next classified step"},
		{"[", "Previous classified step"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}

	for _, item := range helpItems {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			helpKeyStyle.Width(12).Render(item.key),
			item.desc,
		))
	}

	b.WriteString("\n")
	b.WriteString(helpBarStyle.Render("Press ? to close help"))

	return b.String()
}

// Run starts the inspector.
func Run(instanceID, path string, steps []trajectory.IndexedStep, outcomes map[string]classify.Outcome) error {
	m := New(instanceID, path, steps, outcomes)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

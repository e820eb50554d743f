package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/codex-history/cohistory/internal/sessions"
)

// linesPerItem is the number of terminal lines each session occupies.
const linesPerItem = 2

// renderList renders the left panel: the filtered session list with
// scrolling.
func (m model) renderList(width, height int) string {
	if len(m.filtered) == 0 {
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No sessions")
	}

	var lines []string
	for i, e := range m.filtered {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, formatEntryLine(e, width, i == m.cursor)...)
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatEntryLine formats a single session as two lines:
//
//	line 1: [>] MM-DD HH:MM  file name
//	line 2:     working directory (dimmed)
func formatEntryLine(e sessions.SessionEntry, width int, selected bool) []string {
	when := e.StartedAt.Format("01-02 15:04")
	name := filepath.Base(e.Path)

	nameMax := width - 2 - len(when) - 2
	if nameMax < 0 {
		nameMax = 0
	}
	if runewidth.StringWidth(name) > nameMax {
		name = runewidth.Truncate(name, nameMax, "")
	}

	line1 := fmt.Sprintf("%s  %s", when, name)
	if selected {
		line1 = styleListSelected.Render("> ") + line1
	} else {
		line1 = "  " + line1
	}

	cwd := e.Cwd
	if cwd == "" {
		cwd = "-"
	}
	cwdMax := width - 4
	if cwdMax < 0 {
		cwdMax = 0
	}
	if runewidth.StringWidth(cwd) > cwdMax {
		cwd = runewidth.Truncate(cwd, cwdMax, "")
	}
	line2 := "    " + styleListDim.Render(cwd)

	return []string{line1, line2}
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}

// Package tui implements browse mode: a full-screen, filterable list of
// every session in the date tree with a transcript preview pane.
package tui

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codex-history/cohistory/internal/open"
	"github.com/codex-history/cohistory/internal/sessions"
)

// message types

type sessionsLoadedMsg struct {
	entries []sessions.SessionEntry
	err     error
}

type editorFinishedMsg struct {
	err error
}

// model

type model struct {
	root        string
	all         []sessions.SessionEntry
	filtered    []sessions.SessionEntry
	cursor      int
	listOffset  int
	filterInput textinput.Model
	preview     viewport.Model
	previewPath string // avoid duplicate renders
	width       int
	height      int
	ready       bool
	quitting    bool
	loadErr     error
	chosen      *sessions.SessionEntry
}

func initialModel(root string) model {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	return model{
		root:        root,
		filterInput: ti,
		preview:     viewport.New(0, 0),
	}
}

// Run starts browse mode and blocks until it exits. If the user selects
// a session with Enter, the matching resume command is copied to the
// clipboard on the way out.
func Run(root string) error {
	p := tea.NewProgram(initialModel(root), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.loadErr != nil {
		return fm.loadErr
	}
	if fm.chosen != nil {
		return copyResumeCommand(*fm.chosen)
	}
	return nil
}

// copyResumeCommand puts "codex resume <uuid>" (with a cd prefix when
// the session's working directory is known) on the clipboard. When the
// clipboard is unavailable the command is printed instead.
func copyResumeCommand(e sessions.SessionEntry) error {
	sessionID := strings.TrimSuffix(filepath.Base(e.Path), ".jsonl")
	resumeCmd := fmt.Sprintf("codex resume %s", extractUUID(sessionID))

	fullCmd := resumeCmd
	if e.Cwd != "" {
		fullCmd = fmt.Sprintf("cd %s && %s", e.Cwd, resumeCmd)
	}

	if err := clipboard.WriteAll(fullCmd); err != nil {
		fmt.Printf("%s\n", fullCmd)
		return nil
	}

	fmt.Printf("Copied to clipboard: %s\n", fullCmd)
	return nil
}

// uuidRe matches a standard UUID (8-4-4-4-12 hex pattern).
var uuidRe = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// extractUUID extracts a UUID from a string, returning the original if none found.
// Codex rollout file names look like
// rollout-2026-01-26T17-30-22-019bf9a3-d433-7fc1-8214-b82613804964.
func extractUUID(s string) string {
	if m := uuidRe.FindString(s); m != "" {
		return m
	}
	return s
}

func loadSessionsCmd(root string) tea.Cmd {
	return func() tea.Msg {
		entries, err := sessions.ListAll(root)
		return sessionsLoadedMsg{entries: entries, err: err}
	}
}

// Init scans the date tree.
func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, loadSessionsCmd(m.root))
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.preview = newViewport(m.previewWidth(), m.panelHeight())
		m.previewPath = ""
		cmds = append(cmds, m.loadCurrentPreview())
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				e := m.filtered[m.cursor]
				m.chosen = &e
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, keys.Open):
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				cmd := open.EditorCommand(m.filtered[m.cursor].Path, 1)
				return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
					return editorFinishedMsg{err: err}
				})
			}

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentPreview())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentPreview())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.PreviewUp):
			m.preview.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PreviewDn):
			m.preview.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.preview.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.preview.LineDown(m.panelHeight())
			return m, nil
		}

		// Pass remaining keys to the filter input
		var tiCmd tea.Cmd
		m.filterInput, tiCmd = m.filterInput.Update(msg)
		cmds = append(cmds, tiCmd)

		m.applyFilter()
		cmds = append(cmds, m.loadCurrentPreview())
		return m, tea.Batch(cmds...)

	case sessionsLoadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.all = msg.entries
		m.applyFilter()
		cmds = append(cmds, m.loadCurrentPreview())
		return m, tea.Batch(cmds...)

	case editorFinishedMsg:
		return m, nil

	case previewRenderedMsg:
		// Drop stale renders; the cursor may have moved on.
		if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
			return m, nil
		}
		if msg.path != m.filtered[m.cursor].Path {
			return m, nil
		}
		if msg.err != nil {
			m.preview.SetContent("Preview error: " + msg.err.Error())
		} else {
			m.preview.SetContent(msg.content)
			m.preview.GotoTop()
		}
		m.previewPath = msg.path
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

// applyFilter recomputes the visible list from the filter input. The
// match is a case-insensitive substring test against the session label
// and working directory.
func (m *model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	if query == "" {
		m.filtered = m.all
	} else {
		m.filtered = nil
		for _, e := range m.all {
			if strings.Contains(strings.ToLower(e.Label), query) ||
				strings.Contains(strings.ToLower(e.Cwd), query) {
				m.filtered = append(m.filtered, e)
			}
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
		m.listOffset = 0
	}
	if len(m.filtered) == 0 {
		m.preview.SetContent("")
		m.previewPath = ""
	}
}

// View renders the full TUI.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	previewW := m.previewWidth()
	panelH := m.panelHeight()

	inputRow := m.filterInput.View()

	listContent := m.renderList(listW, panelH)
	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(listContent)

	m.preview.Width = previewW
	m.preview.Height = panelH
	previewPanel := styleActiveBorder.
		Width(previewW).
		Height(panelH).
		Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, m.statusBar())
}

// helper methods

func (m model) listWidth() int {
	if m.width <= 0 {
		return 40
	}
	// 40% for list, minus border padding
	w := m.width*40/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) previewWidth() int {
	if m.width <= 0 {
		return 60
	}
	// 60% for preview, minus border padding
	w := m.width*60/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

func (m model) statusBar() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%d sessions", len(m.filtered)))
	parts = append(parts, "up/dn navigate")
	parts = append(parts, "C-u/C-d preview")
	parts = append(parts, "C-o edit")
	parts = append(parts, "Enter copy resume cmd")
	parts = append(parts, "Esc quit")
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func (m model) loadCurrentPreview() tea.Cmd {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	e := m.filtered[m.cursor]
	if e.Path == m.previewPath {
		return nil // already showing this preview
	}
	return loadPreviewCmd(e, m.previewWidth())
}

package tui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codex-history/cohistory/internal/parse"
	"github.com/codex-history/cohistory/internal/render"
	"github.com/codex-history/cohistory/internal/sessions"
)

// previewRenderedMsg is sent when an async preview render completes.
type previewRenderedMsg struct {
	path    string
	content string
	err     error
}

// loadPreviewCmd returns a tea.Cmd that parses the session file and
// renders its transcript off the update loop.
func loadPreviewCmd(e sessions.SessionEntry, width int) tea.Cmd {
	return func() tea.Msg {
		messages, err := parse.ParseConversation(e.Path)
		if err != nil {
			return previewRenderedMsg{path: e.Path, err: err}
		}
		if len(messages) == 0 {
			return previewRenderedMsg{path: e.Path, content: "(no messages)"}
		}

		dateLabel := e.StartedAt.Format("2006-01-02")
		content := render.Transcript(messages, dateLabel, filepath.Base(e.Path), width)
		return previewRenderedMsg{path: e.Path, content: content}
	}
}

// newViewport creates a new viewport model with the given dimensions.
func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.Style = stylePanelBorder
	return vp
}

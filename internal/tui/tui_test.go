package tui

import (
	"testing"
	"time"

	"github.com/codex-history/cohistory/internal/sessions"
)

func TestExtractUUID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "rollout file name",
			input: "rollout-2026-01-26T17-30-22-019bf9a3-d433-7fc1-8214-b82613804964",
			want:  "019bf9a3-d433-7fc1-8214-b82613804964",
		},
		{
			name:  "bare uuid",
			input: "019bf9a3-d433-7fc1-8214-b82613804964",
			want:  "019bf9a3-d433-7fc1-8214-b82613804964",
		},
		{
			name:  "no uuid returns input",
			input: "some-session-name",
			want:  "some-session-name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractUUID(tt.input); got != tt.want {
				t.Errorf("extractUUID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func entry(path, cwd string, when time.Time) sessions.SessionEntry {
	return sessions.SessionEntry{
		Label:     when.Format("15:04") + " - " + path,
		Path:      path,
		StartedAt: when,
		Cwd:       cwd,
	}
}

func TestApplyFilter(t *testing.T) {
	now := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	m := initialModel("/unused")
	m.all = []sessions.SessionEntry{
		entry("rollout-alpha.jsonl", "/home/u/webapp", now),
		entry("rollout-beta.jsonl", "/home/u/cli-tool", now.Add(-time.Hour)),
	}

	m.filterInput.SetValue("")
	m.applyFilter()
	if len(m.filtered) != 2 {
		t.Fatalf("empty filter: %d entries, want 2", len(m.filtered))
	}

	m.filterInput.SetValue("WEBAPP")
	m.applyFilter()
	if len(m.filtered) != 1 || m.filtered[0].Path != "rollout-alpha.jsonl" {
		t.Errorf("cwd filter: %+v", m.filtered)
	}

	m.filterInput.SetValue("beta")
	m.applyFilter()
	if len(m.filtered) != 1 || m.filtered[0].Path != "rollout-beta.jsonl" {
		t.Errorf("label filter: %+v", m.filtered)
	}

	m.cursor = 5
	m.filterInput.SetValue("nothing matches this")
	m.applyFilter()
	if len(m.filtered) != 0 {
		t.Errorf("no-match filter: %+v", m.filtered)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want reset to 0", m.cursor)
	}
}

func TestAdjustListScroll(t *testing.T) {
	m := initialModel("/unused")
	m.filtered = make([]sessions.SessionEntry, 20)

	// panel of 10 lines shows 5 two-line items
	m.cursor = 7
	m.adjustListScroll(10)
	if m.cursor < m.listOffset || m.cursor >= m.listOffset+5 {
		t.Errorf("cursor %d not visible at offset %d", m.cursor, m.listOffset)
	}

	m.cursor = 0
	m.adjustListScroll(10)
	if m.listOffset != 0 {
		t.Errorf("offset = %d, want 0 after scrolling back to top", m.listOffset)
	}
}

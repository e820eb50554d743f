package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/codex-history/cohistory/internal/parse"
)

func TestWrapLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		maxWidth int
		want     []string
	}{
		{name: "no width means no wrap", line: "abcdef", maxWidth: 0, want: []string{"abcdef"}},
		{name: "fits", line: "abc", maxWidth: 10, want: []string{"abc"}},
		{name: "exact fit", line: "abcde", maxWidth: 5, want: []string{"abcde"}},
		{name: "splits", line: "abcdefgh", maxWidth: 3, want: []string{"abc", "def", "gh"}},
		{name: "empty line", line: "", maxWidth: 5, want: []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapLine(tt.line, tt.maxWidth)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapLine() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWrapLineIgnoresANSIWidth(t *testing.T) {
	line := "\033[1;32mabc\033[0mdef"
	got := wrapLine(line, 6)
	if len(got) != 1 {
		t.Errorf("colored 6-column line wrapped into %d lines: %q", len(got), got)
	}
}

func TestWrapLineWideRunes(t *testing.T) {
	// CJK runes occupy two columns each
	line := "日本語のテキスト"
	for _, part := range wrapLine(line, 6) {
		if w := runewidth.StringWidth(part); w > 6 {
			t.Errorf("wrapped part %q is %d columns wide", part, w)
		}
	}
}

func TestIndentLines(t *testing.T) {
	got := indentLines("a\nb", "  ")
	if got != "  a\n  b" {
		t.Errorf("indentLines = %q", got)
	}
}

func TestTranscript(t *testing.T) {
	messages := []parse.Message{
		{Role: "user", Content: "how do I sort a slice?", Timestamp: "2026-08-23T09:01:00Z"},
		{Role: "assistant", Content: "use sort.Slice\nwith a less func"},
	}

	out := Transcript(messages, "2026-08-23 (2 sessions)", "rollout-x.jsonl", 0)

	for _, want := range []string{
		"Date: 2026-08-23 (2 sessions)",
		"Session: rollout-x.jsonl",
		"user:",
		"assistant:",
		"  how do I sort a slice?",
		"  use sort.Slice",
		"  with a less func",
		"2026-08-23T09:01:00Z",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("transcript missing %q", want)
		}
	}

	userIdx := strings.Index(out, "user:")
	asstIdx := strings.Index(out, "assistant:")
	if userIdx < 0 || asstIdx < 0 || asstIdx < userIdx {
		t.Error("messages not rendered in file order")
	}
}

func TestTranscriptEmpty(t *testing.T) {
	out := Transcript(nil, "2026-08-23", "x.jsonl", 80)
	if !strings.Contains(out, "Session: x.jsonl") {
		t.Error("header missing for empty transcript")
	}
}

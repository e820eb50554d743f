package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/codex-history/cohistory/internal/parse"
)

const (
	colorReset  = "\033[0m"
	colorUser   = "\033[1;32m" // bold green
	colorAssist = "\033[1;34m" // bold blue
	colorHeader = "\033[1;36m" // bold cyan
	colorDim    = "\033[2m"
)

// indentLines prepends each line of text with the given prefix.
func indentLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// wrapLine breaks a single line into multiple lines that fit within maxWidth
// visible columns, correctly skipping ANSI escape sequences when measuring width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		// check for ANSI escape sequence: ESC[ ... m
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++ // include 'm'
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}

// Transcript renders a conversation as colored terminal text. width > 0
// wraps long lines to that many visible columns.
func Transcript(messages []parse.Message, dateLabel, fileName string, width int) string {
	var b strings.Builder

	writeLine := func(s string) {
		for _, wl := range wrapLine(s, width) {
			b.WriteString(wl)
			b.WriteString("\n")
		}
	}

	writeLine(fmt.Sprintf("%sDate: %s%s", colorHeader, dateLabel, colorReset))
	writeLine(fmt.Sprintf("%sSession: %s%s", colorHeader, fileName, colorReset))
	writeLine(strings.Repeat("=", 80))
	writeLine("")

	for _, m := range messages {
		roleColor := colorDim
		switch m.Role {
		case "user":
			roleColor = colorUser
		case "assistant":
			roleColor = colorAssist
		}

		if m.Timestamp != "" {
			writeLine(fmt.Sprintf("%s%s:%s %s%s%s", roleColor, m.Role, colorReset, colorDim, m.Timestamp, colorReset))
		} else {
			writeLine(fmt.Sprintf("%s%s:%s", roleColor, m.Role, colorReset))
		}

		for _, tl := range strings.Split(indentLines(m.Content, "  "), "\n") {
			writeLine(tl)
		}
		writeLine("")
	}

	return b.String()
}

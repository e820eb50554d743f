// Package viewer drives the interactive date → session → transcript
// navigation loop.
package viewer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/codex-history/cohistory/internal/menu"
	"github.com/codex-history/cohistory/internal/parse"
	"github.com/codex-history/cohistory/internal/render"
	"github.com/codex-history/cohistory/internal/sessions"
	"github.com/codex-history/cohistory/internal/termio"
)

var (
	styleWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleErr  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleHint = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Menu is the selection surface the viewer drives. Implemented by
// *menu.Menu; tests substitute a scripted one.
type Menu interface {
	Display(items []string, title string, pageSize int) (int, error)
}

type Viewer struct {
	root            string
	datePageSize    int
	sessionPageSize int

	menu    Menu
	out     io.Writer
	readKey func() (termio.Key, error)
	width   func() int
}

func New(root string, datePageSize, sessionPageSize int) *Viewer {
	return &Viewer{
		root:            root,
		datePageSize:    datePageSize,
		sessionPageSize: sessionPageSize,
		menu:            menu.New(),
		out:             os.Stdout,
		readKey:         termio.ReadKey,
		width:           terminalWidth,
	}
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0 // no wrapping
	}
	return w
}

// Run loops until the user quits (menu.ErrQuit) or an unrecoverable
// error occurs. "No dates at all" is the one empty state that ends the
// program.
func (v *Viewer) Run() error {
	for {
		dates, err := sessions.ListDates(v.root)
		if err != nil {
			return fmt.Errorf("list dates: %w", err)
		}
		if len(dates) == 0 {
			return fmt.Errorf("no Codex sessions found in %s", v.root)
		}

		labels := make([]string, len(dates))
		for i, d := range dates {
			labels[i] = d.Label
		}

		idx, err := v.menu.Display(labels, "Select a Date", v.datePageSize)
		if err != nil {
			return err
		}

		if err := v.browseDay(dates[idx]); err != nil {
			return err
		}
	}
}

// browseDay runs the session-selection loop for one day. Returning nil
// goes back to date selection.
func (v *Viewer) browseDay(day sessions.DateEntry) error {
	for {
		sess, err := sessions.ListSessions(day.Path)
		if err != nil || len(sess) == 0 {
			v.clearScreen()
			fmt.Fprintln(v.out, styleWarn.Render("No sessions found for "+day.Label))
			return v.pause("Press any key to continue...")
		}

		items := make([]string, 0, len(sess)+1)
		items = append(items, "< Back to Dates")
		for _, s := range sess {
			items = append(items, s.Label)
		}

		idx, err := v.menu.Display(items, "Select a Session from "+day.Label, v.sessionPageSize)
		if err != nil {
			return err
		}
		if idx == 0 {
			return nil
		}

		selected := sess[idx-1]
		messages, err := parse.ParseConversation(selected.Path)
		if err != nil {
			v.clearScreen()
			fmt.Fprintln(v.out, styleErr.Render(fmt.Sprintf("Error reading file: %v", err)))
			if err := v.pause("Press any key to continue..."); err != nil {
				return err
			}
			continue
		}
		if len(messages) == 0 {
			v.clearScreen()
			fmt.Fprintln(v.out, styleWarn.Render("No messages found in this session"))
			if err := v.pause("Press any key to continue..."); err != nil {
				return err
			}
			continue
		}

		v.clearScreen()
		fmt.Fprint(v.out, render.Transcript(messages, day.Label, filepath.Base(selected.Path), v.width()))
		if err := v.pause("Press any key to return to the menu..."); err != nil {
			return err
		}
	}
}

// pause prints a hint and waits for any keypress. The key itself is
// discarded.
func (v *Viewer) pause(hint string) error {
	fmt.Fprintln(v.out, styleHint.Render(hint))
	_, err := v.readKey()
	return err
}

func (v *Viewer) clearScreen() {
	fmt.Fprint(v.out, "\033[2J\033[H")
}

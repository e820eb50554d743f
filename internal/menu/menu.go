// Package menu implements an interactive, optionally paginated
// selection menu driven by single keypresses.
package menu

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codex-history/cohistory/internal/termio"
)

// ErrQuit is returned by Display when the user quits the menu ('q' or
// Ctrl+C). Callers treat it as a normal termination request, not a
// failure.
var ErrQuit = errors.New("menu: quit")

var (
	styleTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleHelp     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	stylePage     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type Menu struct {
	out     io.Writer
	readKey func() (termio.Key, error)
}

func New() *Menu {
	return &Menu{out: os.Stdout, readKey: termio.ReadKey}
}

// state holds the per-invocation cursor. Selection is an absolute index
// into the item list, not an offset within the page.
type state struct {
	selected int
	page     int
	pageSize int
	total    int
	paginate bool
}

func newState(total, pageSize int) state {
	s := state{total: total, pageSize: pageSize}
	if pageSize > 0 && total > pageSize {
		s.paginate = true
	} else {
		s.pageSize = total
		if s.pageSize < 1 {
			s.pageSize = 1
		}
	}
	return s
}

func (s *state) totalPages() int {
	if !s.paginate {
		return 1
	}
	return (s.total + s.pageSize - 1) / s.pageSize
}

// pageBounds returns the half-open item range [start, end) of the
// current page.
func (s *state) pageBounds() (int, int) {
	start := s.page * s.pageSize
	end := start + s.pageSize
	if end > s.total {
		end = s.total
	}
	return start, end
}

func (s *state) handle(k termio.Key) {
	start, end := s.pageBounds()

	switch k {
	case termio.KeyUp:
		if s.selected > start {
			s.selected--
		} else if s.paginate && s.page > 0 {
			s.page--
			newStart, newEnd := s.pageBounds()
			s.selected = newEnd - 1
			if s.selected < newStart {
				s.selected = newStart
			}
		}
	case termio.KeyDown:
		last := end - 1
		if last > s.total-1 {
			last = s.total - 1
		}
		if s.selected < last {
			s.selected++
		} else if s.paginate && s.page < s.totalPages()-1 {
			s.page++
			s.selected = s.page * s.pageSize
		}
	case termio.KeyPageUp:
		if s.paginate && s.page > 0 {
			s.page--
			s.selected = s.page * s.pageSize
		}
	case termio.KeyPageDown:
		if s.paginate && s.page < s.totalPages()-1 {
			s.page++
			s.selected = s.page * s.pageSize
		}
	}
}

// Display shows the menu and blocks until the user selects an item or
// quits. It returns the absolute index of the selection, or ErrQuit.
// pageSize <= 0 disables pagination; so does an item count that fits on
// one page. An empty item list renders no rows; Enter then returns 0,
// which callers must treat as "nothing to select".
func (m *Menu) Display(items []string, title string, pageSize int) (int, error) {
	st := newState(len(items), pageSize)

	for {
		m.render(items, title, &st)

		key, err := m.readKey()
		if err != nil {
			return 0, err
		}

		switch key {
		case termio.KeyEnter:
			return st.selected, nil
		case termio.KeyQuit:
			m.clearScreen()
			return 0, ErrQuit
		default:
			st.handle(key)
		}
	}
}

func (m *Menu) clearScreen() {
	fmt.Fprint(m.out, "\033[2J\033[H")
}

func (m *Menu) render(items []string, title string, st *state) {
	m.clearScreen()

	if title != "" {
		fmt.Fprintln(m.out, styleTitle.Render(title))
		fmt.Fprintln(m.out, strings.Repeat("=", len(title)))
		fmt.Fprintln(m.out)
	}

	if st.paginate {
		fmt.Fprintln(m.out, styleHelp.Render("Use ↑/↓ to navigate, PgUp/PgDn for pages, Enter to select, 'q' to quit"))
		fmt.Fprintln(m.out, stylePage.Render(fmt.Sprintf("Page %d/%d (Total: %d items)", st.page+1, st.totalPages(), st.total)))
	} else {
		fmt.Fprintln(m.out, styleHelp.Render("Use ↑/↓ to navigate, Enter to select, 'q' to quit"))
	}
	fmt.Fprintln(m.out)

	start, end := st.pageBounds()
	for i := start; i < end; i++ {
		if i == st.selected {
			fmt.Fprintln(m.out, styleSelected.Render("▶ "+items[i]))
		} else {
			fmt.Fprintln(m.out, "  "+items[i])
		}
	}
}

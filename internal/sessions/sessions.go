// Package sessions discovers Codex session logs in the date-partitioned
// layout YYYY/MM/DD/*.jsonl under a sessions root. Every listing is a
// fresh scan; nothing is cached between calls.
package sessions

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/codex-history/cohistory/internal/parse"
)

// DateEntry is one calendar day that holds at least one session file.
type DateEntry struct {
	Label string
	Path  string
	Date  time.Time
}

// SessionEntry is one session log file.
type SessionEntry struct {
	Label     string
	Path      string
	StartedAt time.Time
	Cwd       string
}

// ListDates walks root's year/month/day directories and returns the
// days that contain session files, newest first. Directories whose
// names do not parse as integers are skipped, as are days with no
// matching files.
func ListDates(root string) ([]DateEntry, error) {
	years, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var entries []DateEntry

	for _, yd := range years {
		if !yd.IsDir() {
			continue
		}
		year, err := strconv.Atoi(yd.Name())
		if err != nil {
			continue
		}

		months, err := os.ReadDir(filepath.Join(root, yd.Name()))
		if err != nil {
			continue
		}
		for _, md := range months {
			if !md.IsDir() {
				continue
			}
			month, err := strconv.Atoi(md.Name())
			if err != nil {
				continue
			}

			days, err := os.ReadDir(filepath.Join(root, yd.Name(), md.Name()))
			if err != nil {
				continue
			}
			for _, dd := range days {
				if !dd.IsDir() {
					continue
				}
				day, err := strconv.Atoi(dd.Name())
				if err != nil {
					continue
				}

				dayPath := filepath.Join(root, yd.Name(), md.Name(), dd.Name())
				count := len(sessionFiles(dayPath))
				if count == 0 {
					continue
				}

				date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
				if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
					// directory names like 13/45 normalize away
					continue
				}

				noun := "sessions"
				if count == 1 {
					noun = "session"
				}
				entries = append(entries, DateEntry{
					Label: fmt.Sprintf("%s (%d %s)", date.Format("2006-01-02"), count, noun),
					Path:  dayPath,
					Date:  date,
				})
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

// ListSessions returns the session files of one day directory, newest
// first. The start time comes from the session metadata when present
// and valid, otherwise from the file's modification time.
func ListSessions(dayPath string) ([]SessionEntry, error) {
	var entries []SessionEntry

	for _, name := range sessionFiles(dayPath) {
		path := filepath.Join(dayPath, name)

		meta := parse.ReadMetadata(path)
		started := parseTimestamp(meta.Timestamp)
		if started.IsZero() {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			started = info.ModTime()
		}

		cwdLabel := ""
		if meta.Cwd != "" {
			cwdLabel = " - " + filepath.Base(meta.Cwd)
		}

		entries = append(entries, SessionEntry{
			Label:     fmt.Sprintf("%s - %s%s", started.Format("15:04"), name, cwdLabel),
			Path:      path,
			StartedAt: started,
			Cwd:       meta.Cwd,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].StartedAt.After(entries[j].StartedAt)
	})
	return entries, nil
}

// ListAll flattens the whole date tree into a single list of sessions,
// newest first. Used by browse mode.
func ListAll(root string) ([]SessionEntry, error) {
	dates, err := ListDates(root)
	if err != nil {
		return nil, err
	}

	var all []SessionEntry
	for _, d := range dates {
		sess, err := ListSessions(d.Path)
		if err != nil {
			continue
		}
		all = append(all, sess...)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].StartedAt.After(all[j].StartedAt)
	})
	return all, nil
}

// sessionFiles returns the names of the session logs directly inside
// dir: regular .jsonl files that are not hidden.
func sessionFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if filepath.Ext(name) != ".jsonl" {
			continue
		}
		names = append(names, name)
	}
	return names
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	// try RFC3339
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	// try RFC3339Nano
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	// try ISO8601 without timezone
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}

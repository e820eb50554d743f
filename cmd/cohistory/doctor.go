package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codex-history/cohistory/internal/config"
	"github.com/codex-history/cohistory/internal/sessions"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify the sessions root and show scan stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Sessions Root ===")
			checkDir(cfg.SessionsRoot)

			fmt.Println("\n=== Scan ===")
			dates, err := sessions.ListDates(cfg.SessionsRoot)
			if err != nil {
				fmt.Printf("  scan error: %v\n", err)
				return nil
			}

			total := 0
			var busiest sessions.DateEntry
			busiestCount := 0
			for _, d := range dates {
				sess, err := sessions.ListSessions(d.Path)
				if err != nil {
					continue
				}
				total += len(sess)
				if len(sess) > busiestCount {
					busiestCount = len(sess)
					busiest = d
				}
			}

			fmt.Printf("  Days with sessions: %d\n", len(dates))
			fmt.Printf("  Session files:      %d\n", total)
			if len(dates) > 0 {
				fmt.Printf("  Most recent day:    %s\n", dates[0].Date.Format("2006-01-02"))
				fmt.Printf("  Busiest day:        %s (%d sessions)\n", busiest.Date.Format("2006-01-02"), busiestCount)
			} else {
				fmt.Println("  Status: no sessions found")
			}

			return nil
		},
	}
}

func checkDir(path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s (NOT FOUND)\n", path)
	} else if !info.IsDir() {
		fmt.Printf("  %s (NOT A DIRECTORY)\n", path)
	} else {
		fmt.Printf("  %s (OK)\n", path)
	}
}

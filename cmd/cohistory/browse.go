package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/codex-history/cohistory/internal/config"
	"github.com/codex-history/cohistory/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Full-screen browser: filterable session list with transcript preview",
		Long: `Opens a full-screen panel listing every session in the date tree,
newest first. Type to filter by file name or working directory. The
right pane previews the selected transcript; Enter copies the matching
'codex resume' command to the clipboard, Ctrl+O opens the log in $EDITOR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := checkRoot(cfg.SessionsRoot); err != nil {
				return err
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("browse needs a terminal")
			}

			return tui.Run(cfg.SessionsRoot)
		},
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codex-history/cohistory/internal/config"
	"github.com/codex-history/cohistory/internal/menu"
	"github.com/codex-history/cohistory/internal/viewer"
)

var version = "1.0.1"

func main() {
	rootCmd := &cobra.Command{
		Use:     "cohistory",
		Short:   "Codex Conversation History Viewer - browse Codex conversation logs in the terminal",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := checkRoot(cfg.SessionsRoot); err != nil {
				return err
			}

			v := viewer.New(cfg.SessionsRoot, cfg.DatePageSize, cfg.SessionPageSize)
			if err := v.Run(); err != nil {
				if errors.Is(err, menu.ErrQuit) {
					fmt.Println("Goodbye!")
					return nil
				}
				return err
			}
			return nil
		},
	}

	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("Codex sessions directory not found at %s", root)
	}
	return nil
}

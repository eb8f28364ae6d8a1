package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iksnae/comment-filter/internal"
	"github.com/iksnae/comment-filter/internal/tui"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the demo page in the terminal",
	Long: `Open the interactive demo page.

Pick a user in the login modal, then:
  f  apply the filter (first five users only)
  c  clear the filter
  a  add a comment as the current user
  s  toggle the comment sidebar
  l  switch user
  o  log out
  q  quit

Diagnostics go to log_file from the config, or nowhere, while the page is open.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if _, err := document(s); err != nil {
			return err
		}

		var logOut io.Writer = io.Discard
		if cfg.LogFile != "" {
			f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer f.Close()
			logOut = f
		}
		internal.SetLogOutput(logOut)
		defer internal.SetLogOutput(os.Stderr)

		if cfg.MetricsAddr != "" {
			shutdownMetrics := startMetricsServer(cfg.MetricsAddr)
			defer shutdownMetrics()
		}

		page, _, err := newPage(s)
		if err != nil {
			return err
		}

		p := tea.NewProgram(tui.NewModel(page), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("terminal page failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

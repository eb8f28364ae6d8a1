package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/iksnae/comment-filter/internal"
	"github.com/iksnae/comment-filter/internal/comments"
	"github.com/iksnae/comment-filter/internal/export"
	"github.com/spf13/cobra"
)

var (
	demoAs     string
	demoSteps  string
	demoSeed   bool
	demoFormat string
	demoOutput string
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the filter without the interactive page",
	Long: `Log in as a demo user and run the given steps against the local comment
client, printing the status log as it grows and the visible comments after
each step.

Steps: apply, clear, sidebar, logout.

Examples:
  comment-filter demo --as user-7
  comment-filter demo --as user-2 --steps apply --format md --output report.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		steps, err := parseSteps(demoSteps)
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if demoSeed {
			if _, err := seedComments(s); err != nil {
				return err
			}
		}

		page, provider, err := newPage(s)
		if err != nil {
			return err
		}
		for _, e := range page.Log().Entries() {
			internal.PrintEntry(out, e)
		}
		page.Log().OnAppend(func(e internal.LogEntry) { internal.PrintEntry(out, e) })

		if err := page.SelectCandidate(demoAs); err != nil {
			return err
		}
		if err := page.Login(); err != nil {
			return fmt.Errorf("failed to log in as %q: %w", demoAs, err)
		}
		printVisible(out, provider.LocalClient())

		for _, step := range steps {
			// failures are already reported in the status log
			_ = runStep(page, step)
			printVisible(out, provider.LocalClient())
		}

		if demoFormat == "" {
			return nil
		}
		return writeReport(out, page)
	},
}

func parseSteps(raw string) ([]string, error) {
	var steps []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		switch s {
		case "":
			continue
		case "apply", "clear", "sidebar", "logout":
			steps = append(steps, s)
		default:
			return nil, fmt.Errorf("unknown step %q (supported: apply, clear, sidebar, logout)", s)
		}
	}
	return steps, nil
}

func runStep(page *internal.Page, step string) error {
	switch step {
	case "apply":
		return page.ApplyFilter()
	case "clear":
		return page.ClearFilter()
	case "sidebar":
		page.ToggleSidebar()
	case "logout":
		page.Logout()
	}
	return nil
}

// printVisible summarises which authors the comment area and sidebar show
func printVisible(out io.Writer, client *comments.Client) {
	if client == nil {
		return
	}
	dom, err := client.DomComments()
	if err != nil {
		internal.LogWarn("failed to load comments: %v", err)
		return
	}
	line := fmt.Sprintf("   comment area: %d visible %s", len(dom), authorList(dom))
	if client.SidebarOpen() {
		side, err := client.SidebarComments()
		if err == nil {
			line += fmt.Sprintf(" | sidebar: %d %s", len(side), authorList(side))
		}
	}
	fmt.Fprintln(out, dateStyle.Render(line))
}

func authorList(list []internal.Comment) string {
	seen := make(map[string]bool)
	var ids []string
	for _, c := range list {
		if !seen[c.AuthorID] {
			seen[c.AuthorID] = true
			ids = append(ids, c.AuthorID)
		}
	}
	return "[" + strings.Join(ids, " ") + "]"
}

func writeReport(out io.Writer, page *internal.Page) error {
	exporter, err := export.NewExporter(demoFormat)
	if err != nil {
		return err
	}
	report := export.NewReport(page.View(), time.Now())

	if demoOutput == "" {
		fmt.Fprintln(out)
		return exporter.Export(report, out)
	}

	f, err := os.Create(demoOutput)
	if err != nil {
		return &internal.ExportError{Format: demoFormat, Path: demoOutput, Err: err}
	}
	defer f.Close()
	if err := exporter.Export(report, f); err != nil {
		return &internal.ExportError{Format: demoFormat, Path: demoOutput, Err: err}
	}
	internal.PrintSuccess(out, fmt.Sprintf("Report written to %s", demoOutput))
	return nil
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVar(&demoAs, "as", "user-1", "User id to log in as")
	demoCmd.Flags().StringVar(&demoSteps, "steps", "apply,clear", "Comma-separated steps to run in order")
	demoCmd.Flags().BoolVar(&demoSeed, "seed", true, "Seed one comment per user first")
	demoCmd.Flags().StringVarP(&demoFormat, "format", "f", "", "Also export the status log (jsonl, md, yaml, json)")
	demoCmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Report file (default: stdout)")
}

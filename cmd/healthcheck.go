package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/comment-filter/internal"
	"github.com/iksnae/comment-filter/internal/comments"
	"github.com/iksnae/comment-filter/internal/store"
	"github.com/spf13/cobra"
)

var (
	healthcheckDetails bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that the demo can run",
	Long: `Check the health of comment-filter by verifying:
  • Configuration
  • Comment database access
  • Comment client initialisation
  • User directory (ten users, first five in the filter)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, sectionStyle.Render("🔍 Comment Filter Health Check"))
		fmt.Fprintln(out)

		var s *store.Store
		defer func() {
			if s != nil {
				_ = s.Close()
			}
		}()

		steps := []internal.ProgressStep{
			{Message: "Checking configuration", Fn: func() error {
				if healthcheckDetails {
					fmt.Fprintf(out, "   Organization: %s (%s)\n", cfg.Organization.Name, cfg.Organization.ID)
					fmt.Fprintf(out, "   Document: %s (%s)\n", cfg.Document.Name, cfg.Document.ID)
				}
				return nil
			}},
			{Message: "Opening comment database", Fn: func() error {
				var err error
				s, err = openStore()
				if err == nil && healthcheckDetails {
					fmt.Fprintf(out, "   Database: %s\n", s.Path())
				}
				return err
			}},
			{Message: "Initialising comment client", Fn: func() error {
				return comments.NewProvider(s, cfg.APIKey).Init()
			}},
			{Message: "Checking user directory", Fn: checkDirectory},
		}
		if err := internal.ShowProgressWithSteps(context.Background(), out, steps); err != nil {
			fmt.Fprintln(out)
			return fmt.Errorf("health check failed: %w", err)
		}

		counts, err := s.CountByAuthor(cfg.Document.ID)
		if err != nil {
			return fmt.Errorf("health check failed: %w", err)
		}
		total := 0
		for _, n := range counts {
			total += n
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, sectionStyle.Render("📊 Summary"))
		fmt.Fprintln(out)
		fmt.Fprintln(out, successStyle.Render("✅ Health check passed!"))
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("   • Users: %d (%d in filter)", len(internal.AllUsers()), len(internal.IncludedUsers()))))
		if total == 0 {
			fmt.Fprintln(out, warningStyle.Render("⚠️  No comments yet, run 'comment-filter comments seed'"))
			return nil
		}
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("   • Comments: %d from %d user(s)", total, len(counts))))
		return nil
	},
}

// checkDirectory verifies the user directory shape the filter depends on
func checkDirectory() error {
	users := internal.AllUsers()
	if len(users) != 10 {
		return fmt.Errorf("expected 10 users, found %d", len(users))
	}
	seen := make(map[string]bool)
	for _, u := range users {
		if seen[u.UserID] {
			return fmt.Errorf("duplicate user id %s", u.UserID)
		}
		seen[u.UserID] = true
	}
	included := internal.IncludedUsers()
	for i, u := range included {
		if u.UserID != users[i].UserID {
			return fmt.Errorf("included user %d is %s, want %s", i+1, u.UserID, users[i].UserID)
		}
	}
	if len(internal.PeopleFilter()) != len(included) {
		return fmt.Errorf("people filter does not match the included users")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVarP(&healthcheckDetails, "details", "d", false, "Show detailed diagnostic information")
}

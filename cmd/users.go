package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/comment-filter/internal"
	"github.com/spf13/cobra"
)

var (
	usersIncluded bool
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	showStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	hideStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the demo users",
	Long: `List the ten demo users. The first five are kept visible by the filter
(SHOW), the other five are hidden by it (HIDE).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		users := internal.AllUsers()
		if usersIncluded {
			users = internal.IncludedUsers()
		}
		displayUsers(cmd.OutOrStdout(), users)
		return nil
	},
}

func displayUsers(out io.Writer, users []internal.Identity) {
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("👥 %s users", countStyle.Render(fmt.Sprintf("%d", len(users))))))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tFILTER")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			idStyle.Render(u.UserID),
			u.Name,
			dateStyle.Render(u.Email),
			filterBadge(u.UserID),
		)
	}
	w.Flush()
}

// filterBadge renders SHOW for users the filter keeps and HIDE for the rest
func filterBadge(userID string) string {
	if internal.IsIncluded(userID) {
		return showStyle.Render("SHOW")
	}
	return hideStyle.Render("HIDE")
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.Flags().BoolVar(&usersIncluded, "included", false, "Only list the users the filter keeps")
}

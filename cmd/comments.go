package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/iksnae/comment-filter/internal"
	"github.com/iksnae/comment-filter/internal/store"
	"github.com/spf13/cobra"
)

var (
	commentsFiltered bool
	commentsAs       string
)

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Manage the comments on the demo document",
}

var commentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List comments on the demo document",
	Long: `List every comment on the configured document. With --filtered only the
comments the user filter keeps visible are listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		list, err := s.ListComments(cfg.Document.ID)
		if err != nil {
			return fmt.Errorf("failed to list comments: %w", err)
		}
		if commentsFiltered {
			list = keepIncluded(list)
		}
		displayComments(cmd.OutOrStdout(), cfg.Document, list)
		return nil
	},
}

var commentsAddCmd = &cobra.Command{
	Use:   "add <body>",
	Short: "Add a comment as one of the demo users",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		page, _, err := newPage(s)
		if err != nil {
			return err
		}
		if err := page.SelectCandidate(commentsAs); err != nil {
			return err
		}
		if err := page.Login(); err != nil {
			return fmt.Errorf("failed to log in as %q: %w", commentsAs, err)
		}
		if err := page.AddComment(strings.Join(args, " ")); err != nil {
			return fmt.Errorf("failed to add comment: %w", err)
		}

		entries := page.Log().Entries()
		internal.PrintSuccess(cmd.OutOrStdout(), entries[len(entries)-1].Message)
		return nil
	},
}

var commentsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Leave one comment from every demo user",
	Long: `Leave one comment from every demo user on the configured document. Users
who already commented are skipped, so seeding twice adds nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		added, err := seedComments(s)
		if err != nil {
			return err
		}
		internal.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Seeded %d comment(s) on %s", added, cfg.Document.Name))
		return nil
	},
}

var commentsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every comment on the demo document",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.DeleteDocumentComments(cfg.Document.ID)
		if err != nil {
			return fmt.Errorf("failed to purge comments: %w", err)
		}
		internal.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Deleted %d comment(s) from %s", n, cfg.Document.Name))
		return nil
	},
}

// seedComments adds "Comment from <name>" for every user without a comment
func seedComments(s *store.Store) (int, error) {
	doc, err := document(s)
	if err != nil {
		return 0, err
	}
	counts, err := s.CountByAuthor(doc.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}

	added := 0
	for _, u := range internal.AllUsers() {
		if counts[u.UserID] > 0 {
			internal.LogDebug("%s already commented, skipping", u.UserID)
			continue
		}
		if _, err := s.AddComment(doc.ID, u, "Comment from "+u.Name); err != nil {
			return added, fmt.Errorf("failed to seed comment for %s: %w", u.UserID, err)
		}
		added++
	}
	return added, nil
}

func keepIncluded(list []internal.Comment) []internal.Comment {
	var out []internal.Comment
	for _, c := range list {
		if internal.IsIncluded(c.AuthorID) {
			out = append(out, c)
		}
	}
	return out
}

func displayComments(out io.Writer, doc internal.Document, list []internal.Comment) {
	if len(list) == 0 {
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("💬 No comments on %s", doc.Name)))
		return
	}
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("💬 %s comment(s) on %s", countStyle.Render(fmt.Sprintf("%d", len(list))), doc.Name)))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tAUTHOR\tFILTER\tCREATED\tCOMMENT")
	for _, c := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			c.ID,
			fmt.Sprintf("%s %s", c.AuthorName, idStyle.Render("("+c.AuthorID+")")),
			filterBadge(c.AuthorID),
			dateStyle.Render(c.CreatedAt.Local().Format("2006-01-02 15:04")),
			c.Body,
		)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(commentsCmd)
	commentsCmd.AddCommand(commentsListCmd, commentsAddCmd, commentsSeedCmd, commentsPurgeCmd)

	commentsListCmd.Flags().BoolVar(&commentsFiltered, "filtered", false, "Only list comments the filter keeps visible")
	commentsAddCmd.Flags().StringVar(&commentsAs, "as", "", "User id to comment as (user-1 to user-10)")
	_ = commentsAddCmd.MarkFlagRequired("as")
}

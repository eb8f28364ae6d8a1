package export

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownExporter writes the report as a Markdown document
type MarkdownExporter struct{}

// Export renders a header block followed by one bullet per entry
func (e *MarkdownExporter) Export(report *Report, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# %s\n\n", report.Title)

	_, _ = fmt.Fprintf(w, "**Document:** %s (%s)  \n", report.Document.Name, report.Document.ID)
	if report.User != "" {
		_, _ = fmt.Fprintf(w, "**User:** %s  \n", report.User)
	}
	filter := "off"
	if report.Filtered {
		filter = "on"
	}
	_, _ = fmt.Fprintf(w, "**Filter:** %s  \n", filter)
	_, _ = fmt.Fprintf(w, "**Entries:** %d\n\n", len(report.Entries))

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, _ = fmt.Fprintf(w, "## Status Log\n\n")

	for _, entry := range report.Entries {
		_, err := fmt.Fprintf(w, "- `[%s]` **%s** %s\n", entry.Time, entry.Severity, escapeMarkdown(entry.Message))
		if err != nil {
			return err
		}
	}

	return nil
}

// escapeMarkdown escapes emphasis markers and backticks
func escapeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "`", "\\`")
	text = strings.ReplaceAll(text, "**", "\\*\\*")
	text = strings.ReplaceAll(text, "__", "\\_\\_")
	return text
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}

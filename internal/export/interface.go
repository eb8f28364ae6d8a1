package export

import (
	"fmt"
	"io"
	"time"

	"github.com/iksnae/comment-filter/internal"
)

// Report is an activity log together with the page it came from
type Report struct {
	Title       string              `json:"title" yaml:"title"`
	Document    internal.Document   `json:"document" yaml:"document"`
	User        string              `json:"user,omitempty" yaml:"user,omitempty"`
	Filtered    bool                `json:"filtered" yaml:"filtered"`
	GeneratedAt time.Time           `json:"generated_at" yaml:"generated_at"`
	Entries     []internal.LogEntry `json:"entries" yaml:"entries"`
}

// NewReport snapshots a page view
func NewReport(v internal.PageView, at time.Time) *Report {
	r := &Report{
		Title:       v.Title,
		Document:    v.Document,
		Filtered:    v.FilterApplied,
		GeneratedAt: at,
		Entries:     v.Log,
	}
	if v.LoggedIn {
		r.User = v.User.UserID
	}
	return r
}

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(report *Report, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: jsonl, md, yaml, json)", format)
	}
}

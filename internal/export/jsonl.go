package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// JSONLExporter writes one log entry per line
type JSONLExporter struct{}

type jsonlEntry struct {
	Time     string `json:"time"`
	Type     string `json:"type"`
	Message  string `json:"message"`
	Document string `json:"document,omitempty"`
}

// Export encodes each entry on its own line
func (e *JSONLExporter) Export(report *Report, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, entry := range report.Entries {
		line := jsonlEntry{
			Time:     entry.Timestamp.Format(time.RFC3339),
			Type:     string(entry.Severity),
			Message:  entry.Message,
			Document: report.Document.ID,
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("failed to encode log entry: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}

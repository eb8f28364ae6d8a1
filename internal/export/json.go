package export

import (
	"encoding/json"
	"io"
)

// JSONExporter writes the whole report as indented JSON
type JSONExporter struct{}

// Export encodes the report
func (e *JSONExporter) Export(report *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}

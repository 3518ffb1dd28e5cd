package output

import (
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"
)

// JSONPrinter writes JSON Lines: one JSON array of strings per row
type JSONPrinter struct {
	encoder *json.Encoder
}

// NewJSONPrinter creates a JSONPrinter writing to w
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return &JSONPrinter{encoder: encoder}
}

// WriteHeader implements Printer
func (p *JSONPrinter) WriteHeader(row []string) error {
	return p.WriteRow(row)
}

// WriteRow implements Printer
func (p *JSONPrinter) WriteRow(row []string) error {
	if row == nil {
		row = []string{}
	}
	if err := p.encoder.Encode(row); err != nil {
		return fmt.Errorf("failed to encode row: %w", err)
	}
	return nil
}

// Flush implements Printer. Rows are not buffered.
func (p *JSONPrinter) Flush() error {
	return nil
}

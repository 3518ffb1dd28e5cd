package output

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVPrinter writes rows as RFC 4180 CSV records
type CSVPrinter struct {
	writer *csv.Writer
}

// NewCSVPrinter creates a CSVPrinter writing to w
func NewCSVPrinter(w io.Writer) *CSVPrinter {
	return &CSVPrinter{writer: csv.NewWriter(w)}
}

// WriteHeader implements Printer
func (p *CSVPrinter) WriteHeader(row []string) error {
	return p.WriteRow(row)
}

// WriteRow implements Printer
func (p *CSVPrinter) WriteRow(row []string) error {
	if err := p.writer.Write(row); err != nil {
		return fmt.Errorf("failed to write CSV record: %w", err)
	}
	return nil
}

// Flush implements Printer
func (p *CSVPrinter) Flush() error {
	p.writer.Flush()
	if err := p.writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// SimplePrinter writes every row as its fields joined by a single space.
// Rows are written as they arrive.
type SimplePrinter struct {
	w *bufio.Writer
}

// NewSimplePrinter creates a SimplePrinter writing to w
func NewSimplePrinter(w io.Writer) *SimplePrinter {
	return &SimplePrinter{w: bufio.NewWriter(w)}
}

// WriteHeader implements Printer
func (p *SimplePrinter) WriteHeader(row []string) error {
	return p.WriteRow(row)
}

// WriteRow implements Printer
func (p *SimplePrinter) WriteRow(row []string) error {
	if _, err := p.w.WriteString(strings.Join(row, " ")); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	if err := p.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	return nil
}

// Flush implements Printer
func (p *SimplePrinter) Flush() error {
	if err := p.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

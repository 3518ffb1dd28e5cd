package output

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// cellGap separates table columns
const cellGap = " "

// TablePrinter collects every row and renders them as left aligned columns
// padded to the widest cell and separated by one space. Nothing is written
// until Flush.
type TablePrinter struct {
	w     io.Writer
	buf   bytes.Buffer
	table *tablewriter.Table
	rows  int
}

// NewTablePrinter creates a TablePrinter writing to w
func NewTablePrinter(w io.Writer) *TablePrinter {
	p := &TablePrinter{w: w}

	table := tablewriter.NewWriter(&p.buf)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding(cellGap)
	table.SetNoWhiteSpace(true)

	p.table = table
	return p
}

// WriteHeader implements Printer. The header is aligned with the rows.
func (p *TablePrinter) WriteHeader(row []string) error {
	p.table.SetHeader(row)
	p.rows++
	return nil
}

// WriteRow implements Printer
func (p *TablePrinter) WriteRow(row []string) error {
	p.table.Append(row)
	p.rows++
	return nil
}

// Flush implements Printer. tablewriter follows the last cell with the gap
// too; that one gap is cut from every line, the last column keeps its
// padding.
func (p *TablePrinter) Flush() error {
	if p.rows == 0 {
		return nil
	}
	p.buf.Reset()
	p.table.Render()

	out := bufio.NewWriter(p.w)
	for _, line := range strings.SplitAfter(p.buf.String(), "\n") {
		if line == "" {
			continue
		}
		line = strings.TrimSuffix(line, "\n")
		if _, err := fmt.Fprintln(out, strings.TrimSuffix(line, cellGap)); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

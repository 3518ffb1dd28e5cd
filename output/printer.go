package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported format names
var ErrUnknownFormat = errors.New("unknown output format")

// Format names an output layout
type Format string

const (
	FormatTable  Format = "table"
	FormatSimple Format = "simple"
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
)

// Formats lists the supported formats in help order
var Formats = []Format{FormatTable, FormatSimple, FormatCSV, FormatJSON}

// ParseFormat converts a format name, ignoring case
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Printer writes projected rows.
//
// WriteHeader is called at most once, before any row, and only when the
// header should be shown. Flush must be called after the last row; buffering
// printers write nothing before it.
type Printer interface {
	WriteHeader(row []string) error
	WriteRow(row []string) error
	Flush() error
}

// New creates the printer for format writing to w
func New(format Format, w io.Writer) (Printer, error) {
	switch format {
	case FormatTable:
		return NewTablePrinter(w), nil
	case FormatSimple:
		return NewSimplePrinter(w), nil
	case FormatCSV:
		return NewCSVPrinter(w), nil
	case FormatJSON:
		return NewJSONPrinter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

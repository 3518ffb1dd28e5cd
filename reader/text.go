package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// MaxLineLength is the longest input line accepted (16MB)
const MaxLineLength = 16 * 1024 * 1024

// ErrEmptySeparator is returned when delimiter mode is chosen without a separator
var ErrEmptySeparator = errors.New("separator cannot be empty")

// RowReader yields rows in input order. Read returns io.EOF after the last row.
type RowReader interface {
	Read() ([]string, error)
}

// Options configures a TextReader
type Options struct {
	Mode      Mode
	Separator string // used by ModeDelimiter
	Logger    *slog.Logger
}

// TextReader reads lines from an io.Reader and splits them into rows.
//
// Whitespace and delimiter modes stream one line at a time. Adaptive mode
// reads the whole input on the first call to Read, because the column
// boundaries depend on every line.
type TextReader struct {
	scanner  *bufio.Scanner
	mode     Mode
	splitter Splitter
	logger   *slog.Logger

	// adaptive mode only
	lines  []string
	loaded bool
}

// NewTextReader creates a reader splitting r according to opts
func NewTextReader(r io.Reader, opts Options) (*TextReader, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)

	t := &TextReader{scanner: scanner, mode: opts.Mode, logger: logger}
	switch opts.Mode {
	case ModeAdaptive:
	case ModeWhitespace:
		t.splitter = WhitespaceSplitter{}
	case ModeDelimiter:
		if opts.Separator == "" {
			return nil, ErrEmptySeparator
		}
		t.splitter = DelimiterSplitter{Sep: opts.Separator}
	default:
		return nil, fmt.Errorf("unknown split mode %v", opts.Mode)
	}

	logger.Debug("text input", "mode", opts.Mode.String(), "separator", opts.Separator)
	return t, nil
}

// Read implements RowReader
func (t *TextReader) Read() ([]string, error) {
	if t.mode == ModeAdaptive {
		return t.readAdaptive()
	}

	line, err := t.nextLine()
	if err != nil {
		return nil, err
	}
	return t.splitter.Split(line), nil
}

// nextLine returns the next line without its line ending
func (t *TextReader) nextLine() (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read line: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(t.scanner.Text(), "\r"), nil
}

func (t *TextReader) readAdaptive() ([]string, error) {
	if !t.loaded {
		if err := t.load(); err != nil {
			return nil, err
		}
	}
	if len(t.lines) == 0 {
		return nil, io.EOF
	}
	line := t.lines[0]
	t.lines = t.lines[1:]
	return t.splitter.Split(line), nil
}

// load buffers the whole input and fixes the column ranges
func (t *TextReader) load() error {
	for {
		line, err := t.nextLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		t.lines = append(t.lines, line)
	}
	t.loaded = true

	ranges := Boundaries(t.lines)
	t.splitter = RangeSplitter{Ranges: ranges}
	t.logger.Debug("adaptive columns detected", "lines", len(t.lines), "columns", len(ranges), "ranges", ranges)
	return nil
}

// ReadAll drains a RowReader
func ReadAll(r RowReader) ([][]string, error) {
	rows := make([][]string, 0)
	for {
		row, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vegasq/tx/internal/config"
	"github.com/vegasq/tx/output"
	"github.com/vegasq/tx/query"
	"github.com/vegasq/tx/reader"
)

// engine drives the compiled query over every row of a source
type engine struct {
	cfg     *config.CLI
	printer output.Printer
	logger  *slog.Logger
}

func (e *engine) run(src reader.RowReader, first []string) error {
	var opts []query.Option
	if e.cfg.HeaderForced() {
		opts = append(opts, query.WithHeader())
	}

	compiled, err := query.Compile(e.cfg.Query, first, opts...)
	if err != nil {
		return fmt.Errorf("couldn't parse query string: %w", err)
	}
	q := compiled.Query
	hasHeader := e.cfg.HeaderForced() || compiled.HeaderRequired
	e.logger.Debug("query compiled",
		"columns", len(q.Columns),
		"filter", q.Filter.Kind.String(),
		"header_required", compiled.HeaderRequired,
		"has_header", hasHeader,
	)

	if hasHeader {
		header, err := q.ProcessHeader(first)
		if err != nil {
			return fmt.Errorf("couldn't process line 1: %w", err)
		}
		if e.cfg.PrintHeader {
			if err := e.printer.WriteHeader(header); err != nil {
				return err
			}
		}
	} else if err := e.process(q, first, 1); err != nil {
		return err
	}

	for line := 2; ; line++ {
		row, err := src.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("couldn't read input: %w", err)
		}
		if err := e.process(q, row, line); err != nil {
			return err
		}
	}
}

// process filters and prints one data row
func (e *engine) process(q *query.Query, row []string, line int) error {
	out, ok, err := q.Process(row)
	if err != nil {
		var rangeErr *query.ColumnOutOfRangeError
		if e.cfg.SkipInvalid && errors.As(err, &rangeErr) {
			e.logger.Warn("skipping row", "line", line, "error", err)
			return nil
		}
		return fmt.Errorf("couldn't process line %d: %w", line, err)
	}
	if !ok {
		return nil
	}
	return e.printer.WriteRow(out)
}

// Package cli runs tx: it reads rows, compiles the query against the first
// row and prints the projected rows.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/vegasq/tx/internal/config"
	"github.com/vegasq/tx/internal/logging"
	"github.com/vegasq/tx/output"
	"github.com/vegasq/tx/reader"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var (
	errorPrefix   = color.New(color.FgRed, color.Bold)
	warningPrefix = color.New(color.FgYellow)
)

// Streams are the standard streams of a run
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Main parses args, runs tx and returns the process exit code
func Main(args []string, streams Streams, options ...kong.Option) int {
	options = append([]kong.Option{kong.Writers(streams.Out, streams.Err)}, options...)
	cfg, err := config.Parse(args, options...)
	if err != nil {
		printError(streams.Err, err)
		return ExitUsage
	}

	logger, cleanup := logging.Setup(streams.Err, logging.Options{Verbose: cfg.Verbose, SeqURL: cfg.SeqURL})
	defer cleanup()

	if err := Run(cfg, streams, logger); err != nil {
		logger.Debug("run failed", "error", err)
		printError(streams.Err, err)
		return ExitError
	}
	return ExitOK
}

func printError(w io.Writer, err error) {
	_, _ = errorPrefix.Fprint(w, "error:")
	_, _ = fmt.Fprintf(w, " %v\n", err)
}

func printWarning(w io.Writer, msg string) {
	_, _ = warningPrefix.Fprint(w, "warning:")
	_, _ = fmt.Fprintf(w, " %s\n", msg)
}

// Run executes one invocation described by cfg
func Run(cfg *config.CLI, streams Streams, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}
	printer, err := output.New(format, streams.Out)
	if err != nil {
		return err
	}

	if cfg.Schema && cfg.Parquet != "" {
		infos, err := reader.DescribeParquet(cfg.Parquet)
		if err != nil {
			return fmt.Errorf("couldn't read input: %w", err)
		}
		return printSchema(printer, infos)
	}

	src, closeSource, err := openSource(cfg, streams.In, logger)
	if err != nil {
		return fmt.Errorf("couldn't read input: %w", err)
	}
	defer closeSource()

	first, err := src.Read()
	if errors.Is(err, io.EOF) {
		printWarning(streams.Err, "empty input")
		return nil
	}
	if err != nil {
		return fmt.Errorf("couldn't read input: %w", err)
	}

	if cfg.Schema {
		return printSchema(printer, reader.DescribeHeader(first))
	}

	e := &engine{cfg: cfg, printer: printer, logger: logger}
	if err := e.run(src, first); err != nil {
		_ = printer.Flush()
		return err
	}
	return printer.Flush()
}

// openSource returns the row source for cfg and a function releasing it
func openSource(cfg *config.CLI, in io.Reader, logger *slog.Logger) (reader.RowReader, func(), error) {
	if cfg.Parquet != "" {
		r, err := reader.NewParquetReader(cfg.Parquet)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("parquet input", "path", cfg.Parquet, "columns", len(r.Columns()))
		return r, func() { _ = r.Close() }, nil
	}

	mode, sep := cfg.SplitMode()
	r, err := reader.NewTextReader(in, reader.Options{Mode: mode, Separator: sep, Logger: logger})
	if err != nil {
		return nil, nil, err
	}
	return r, func() {}, nil
}

func printSchema(printer output.Printer, infos []reader.ColumnInfo) error {
	if err := printer.WriteHeader([]string{"#", "NAME", "TYPE"}); err != nil {
		return err
	}
	for _, info := range infos {
		if err := printer.WriteRow(info.Row()); err != nil {
			return err
		}
	}
	return printer.Flush()
}

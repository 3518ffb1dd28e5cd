// Package config defines the tx command line, its environment variables and
// the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/vegasq/tx/output"
	"github.com/vegasq/tx/reader"
)

// EnvPrefix prefixes the environment variable of every flag, e.g. TX_SEP
const EnvPrefix = "TX"

// DefaultConfigPaths are tried in order; missing files are ignored
var DefaultConfigPaths = []string{"~/.config/tx/config.yaml"}

var (
	ErrMissingQuery     = errors.New("a query is required unless --schema is given")
	ErrParquetSeparator = errors.New("--parquet cannot be combined with --sep or --ws-sep")
)

// CLI is the tx command line
type CLI struct {
	Query string `arg:"" optional:"" help:"Columns to select, optionally followed by 'if <condition>'."`

	NoPretty    bool   `help:"Print fields separated by a single space instead of an aligned table."`
	PrintHeader bool   `short:"h" help:"Print the header of the selected columns."`
	HasHeader   bool   `short:"H" help:"Treat the first line as a header even when columns are selected by number."`
	WsSep       bool   `name:"ws-sep" xor:"split" help:"Split fields on runs of whitespace."`
	Sep         string `short:"s" xor:"split" help:"Split fields on a literal separator."`
	Format      string `short:"f" enum:"table,simple,csv,json" default:"table" help:"Output format (${enum})."`

	Parquet     string `type:"path" help:"Read rows from a parquet file instead of standard input."`
	Schema      bool   `help:"Describe the input columns instead of running a query."`
	SkipInvalid bool   `help:"Skip rows that are too short for the query instead of failing."`

	Config  kong.ConfigFlag `help:"YAML configuration file."`
	Verbose bool            `short:"v" help:"Enable debug logging."`
	SeqURL  string          `name:"seq-url" help:"Also send logs to this Seq server."`

	Help helpFlag `help:"Show help."`
}

// helpFlag replaces the built-in help flag, which would claim -h
type helpFlag bool

func (h helpFlag) BeforeReset(ctx *kong.Context) error {
	err := ctx.PrintUsage(false)
	ctx.Kong.Exit(0)
	return err
}

// SplitMode returns how text input is cut into fields
func (c *CLI) SplitMode() (reader.Mode, string) {
	switch {
	case c.Sep != "":
		return reader.ModeDelimiter, c.Sep
	case c.WsSep:
		return reader.ModeWhitespace, ""
	default:
		return reader.ModeAdaptive, ""
	}
}

// OutputFormat resolves --format and --no-pretty. --no-pretty only changes
// the default table layout.
func (c *CLI) OutputFormat() (output.Format, error) {
	f, err := output.ParseFormat(c.Format)
	if err != nil {
		return "", err
	}
	if c.NoPretty && f == output.FormatTable {
		return output.FormatSimple, nil
	}
	return f, nil
}

// HeaderForced reports whether the first row is a header whatever the query
// says
func (c *CLI) HeaderForced() bool {
	return c.HasHeader || c.PrintHeader || c.Parquet != ""
}

func (c *CLI) validate() error {
	if c.Query == "" && !c.Schema {
		return ErrMissingQuery
	}
	if c.Parquet != "" && (c.Sep != "" || c.WsSep) {
		return ErrParquetSeparator
	}
	return nil
}

// NewParser builds the kong parser for cli. Extra options are applied last,
// so tests can override Exit or Writers.
func NewParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name("tx"),
		kong.Description("Select and filter columns of tabular text."),
		kong.NoDefaultHelp(),
		kong.DefaultEnvars(EnvPrefix),
		kong.Configuration(YAML, DefaultConfigPaths...),
	}
	return kong.New(cli, append(base, options...)...)
}

// Parse parses command line arguments into a CLI
func Parse(args []string, options ...kong.Option) (*CLI, error) {
	var cli CLI
	parser, err := NewParser(&cli, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to build command line parser: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}
	if err := cli.validate(); err != nil {
		return nil, err
	}
	return &cli, nil
}

package reader

import (
	"fmt"
	"strings"
)

// Mode selects how text lines are cut into fields.
type Mode int

const (
	// ModeAdaptive infers column boundaries from the whole input. It is the
	// default and keeps single spaces inside cells ("Ivan Ivanov").
	ModeAdaptive Mode = iota
	// ModeWhitespace splits on every run of whitespace.
	ModeWhitespace
	// ModeDelimiter splits on a literal separator string.
	ModeDelimiter
)

func (m Mode) String() string {
	switch m {
	case ModeAdaptive:
		return "adaptive"
	case ModeWhitespace:
		return "whitespace"
	case ModeDelimiter:
		return "delimiter"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Splitter cuts a single line into fields. Implementations hold no state
// between lines.
type Splitter interface {
	Split(line string) []string
}

// WhitespaceSplitter splits on runs of whitespace and drops empty fields.
type WhitespaceSplitter struct{}

// Split implements Splitter
func (WhitespaceSplitter) Split(line string) []string {
	return strings.Fields(line)
}

// DelimiterSplitter splits on every occurrence of Sep. Fields are not
// trimmed, so "a, b" split on "," yields "a" and " b".
type DelimiterSplitter struct {
	Sep string
}

// Split implements Splitter
func (d DelimiterSplitter) Split(line string) []string {
	return strings.Split(line, d.Sep)
}

// RangeSplitter cuts lines at precomputed column ranges, see Boundaries.
type RangeSplitter struct {
	Ranges []Range
}

// Split implements Splitter
func (s RangeSplitter) Split(line string) []string {
	return SplitRanges(line, s.Ranges)
}

package query

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SyntaxError reports a query string that does not match the grammar.
// Line and Column are 1-based and counted in characters.
type SyntaxError struct {
	Query   string
	Offset  int
	Line    int
	Column  int
	Message string
}

func newSyntaxError(query string, offset int, format string, args ...interface{}) *SyntaxError {
	if offset > len(query) {
		offset = len(query)
	}
	line := 1 + strings.Count(query[:offset], "\n")
	lineStart := strings.LastIndex(query[:offset], "\n") + 1
	return &SyntaxError{
		Query:   query,
		Offset:  offset,
		Line:    line,
		Column:  utf8.RuneCountInString(query[lineStart:offset]) + 1,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *SyntaxError) Error() string {
	lines := strings.Split(e.Query, "\n")
	source := ""
	if e.Line-1 < len(lines) {
		source = lines[e.Line-1]
	}
	return fmt.Sprintf("syntax error at %d:%d: %s\n  | %s\n  | %s^",
		e.Line, e.Column, e.Message, source, strings.Repeat(" ", e.Column-1))
}

// DuplicateHeaderError is returned when two header cells share a name.
// First and Second are 1-based column positions.
type DuplicateHeaderError struct {
	First  int
	Second int
	Name   string
}

func (e *DuplicateHeaderError) Error() string {
	return fmt.Sprintf("columns %d and %d have the same name: %s", e.First, e.Second, e.Name)
}

// ColumnNotFoundError is returned when a column name is missing from the header.
type ColumnNotFoundError struct {
	Name string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column with name %s not found", e.Name)
}

// InvalidOrdinalError is returned for column numbers below 1 or too large to
// be an index.
type InvalidOrdinalError struct {
	Text string
}

func (e *InvalidOrdinalError) Error() string {
	return fmt.Sprintf("invalid column number %s: columns are numbered from 1", e.Text)
}

// ColumnOutOfRangeError is returned when a row is too narrow for a resolved
// column. Index is zero-based, Width is the number of fields in Row.
type ColumnOutOfRangeError struct {
	Index int
	Width int
	Row   []string
}

func (e *ColumnOutOfRangeError) Error() string {
	return fmt.Sprintf("cannot get column number %d as there are only %d columns. Line: %q",
		e.Index+1, e.Width, e.Row)
}

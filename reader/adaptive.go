package reader

import (
	"strings"
	"unicode"
)

// Range is a half-open span [Start, End) of character columns.
type Range struct {
	Start int
	End   int
}

// Boundaries infers the column ranges shared by all lines of a whitespace
// aligned table. Columns are counted in characters, not bytes.
//
// A character column is blank when every line has whitespace there or ends
// before it. Blank runs at least as wide as the separator width end a field.
// The separator width is the narrowest gap between content that is wider
// than one column, or 1 if every such gap is a single column, so that single
// spaces inside cells do not split them when the table uses wider gaps.
//
// The last range always extends to the end of the longest line. An empty or
// entirely blank sample has no ranges.
func Boundaries(lines []string) []Range {
	grid := make([][]rune, len(lines))
	width := 0
	for i, line := range lines {
		grid[i] = []rune(line)
		width = max(width, len(grid[i]))
	}

	blank := blankColumns(grid, width)
	sep := separatorWidth(blank)

	var ranges []Range
	start := -1
	run := 0
	for c := 0; c < width; c++ {
		if !blank[c] {
			run = 0
			if start < 0 {
				start = c
			}
			continue
		}
		run++
		if run == sep && start >= 0 {
			ranges = append(ranges, Range{Start: start, End: c - sep + 1})
			start = -1
		}
	}
	if start >= 0 {
		ranges = append(ranges, Range{Start: start, End: width})
	}

	return ranges
}

// blankColumns marks the columns that are whitespace in every line. Lines
// shorter than a column count as blank there.
func blankColumns(grid [][]rune, width int) []bool {
	blank := make([]bool, width)
	for c := range blank {
		blank[c] = true
	}
	for _, line := range grid {
		for c, r := range line {
			if !unicode.IsSpace(r) {
				blank[c] = false
			}
		}
	}
	return blank
}

// separatorWidth picks the blank run width that separates fields. Only runs
// with content on both sides count; leading indentation and trailing
// padding are ignored.
func separatorWidth(blank []bool) int {
	narrowest := 0
	seenContent := false
	run := 0
	for _, b := range blank {
		if b {
			run++
			continue
		}
		if seenContent && run > 1 && (narrowest == 0 || run < narrowest) {
			narrowest = run
		}
		seenContent = true
		run = 0
	}
	if narrowest == 0 {
		return 1
	}
	return narrowest
}

// SplitRanges cuts line at the given character ranges and trims each field.
// Ranges past the end of the line yield empty fields.
func SplitRanges(line string, ranges []Range) []string {
	runes := []rune(line)
	fields := make([]string, len(ranges))
	for i, r := range ranges {
		start := min(r.Start, len(runes))
		end := min(r.End, len(runes))
		fields[i] = strings.TrimSpace(string(runes[start:end]))
	}
	return fields
}

package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, q string, header []string) *Query {
	t.Helper()
	res, err := Compile(q, header)
	require.NoError(t, err)
	return res.Query
}

func TestQuery_Process(t *testing.T) {
	header := []string{"A", "B", "C"}

	tests := []struct {
		name   string
		query  string
		row    []string
		want   []string
		wantOK bool
	}{
		{"projection order", "2 1", []string{"1", "2", "3"}, []string{"2", "1"}, true},
		{"same column twice", "1 1", []string{"x", "y"}, []string{"x", "x"}, true},
		{"names", "C A", []string{"1", "2", "3"}, []string{"3", "1"}, true},
		{"filter passes", `A if B = "2"`, []string{"1", "2", "3"}, []string{"1"}, true},
		{"filter rejects", `A if B = "5"`, []string{"1", "2", "3"}, nil, false},
		{"filter on unselected column", `1 if C = "3"`, []string{"1", "2", "3"}, []string{"1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := compile(t, tt.query, header).Process(tt.row)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuery_ProcessBooleanLogic(t *testing.T) {
	q := compile(t, `A B C if (A = "0" | A = "1") & (B = "1" | C = "2")`, []string{"A", "B", "C"})

	rows := [][]string{
		{"0", "1", "9"}, // A ok, B ok
		{"1", "9", "2"}, // A ok, C ok
		{"2", "1", "2"}, // A fails
		{"0", "9", "9"}, // B and C fail
		{"1", "1", "2"}, // all
	}

	got := processAll(t, q, rows)
	assert.Equal(t, [][]string{
		{"0", "1", "9"},
		{"1", "9", "2"},
		{"1", "1", "2"},
	}, got)
}

func TestQuery_ProcessPrecedence(t *testing.T) {
	header := []string{"X", "A", "B", "C"}
	implicit := compile(t, `X if A="1" or B="2" and C="3"`, header)
	explicit := compile(t, `X if A="1" or (B="2" and C="3")`, header)
	grouped := compile(t, `X if (A="1" or B="2") and C="3"`, header)

	// A matches, C does not: or-of-and accepts, and-of-or rejects
	row := []string{"x", "1", "0", "0"}

	_, okImplicit, err := implicit.Process(row)
	require.NoError(t, err)
	_, okExplicit, err := explicit.Process(row)
	require.NoError(t, err)
	_, okGrouped, err := grouped.Process(row)
	require.NoError(t, err)

	assert.True(t, okImplicit)
	assert.Equal(t, okExplicit, okImplicit)
	assert.False(t, okGrouped)
}

func TestQuery_ProcessOutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		row       []string
		wantIndex int
	}{
		{"selected column", "1 4", []string{"a", "b"}, 3},
		{"filter column", `1 if 3 = "x"`, []string{"a", "b"}, 2},
		{"empty row", "1", []string{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := compile(t, tt.query, nil).Process(tt.row)
			assert.False(t, ok)

			var rangeErr *ColumnOutOfRangeError
			require.True(t, errors.As(err, &rangeErr), "got %v", err)
			assert.Equal(t, tt.wantIndex, rangeErr.Index)
			assert.Equal(t, len(tt.row), rangeErr.Width)
		})
	}
}

func TestQuery_ProcessOutOfRangeOnlyWhenSelected(t *testing.T) {
	// a rejected row is never projected, so its width does not matter
	q := compile(t, `3 if 1 = "keep"`, nil)

	_, ok, err := q.Process([]string{"drop"})
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = q.Process([]string{"keep"})
	assert.Error(t, err)
}

func TestColumnOutOfRangeError_Message(t *testing.T) {
	err := &ColumnOutOfRangeError{Index: 3, Width: 2, Row: []string{"a", "b c"}}
	assert.Equal(t, `cannot get column number 4 as there are only 2 columns. Line: ["a" "b c"]`, err.Error())
}

func TestQuery_ProcessHeader(t *testing.T) {
	q := compile(t, `B A if A = "never"`, []string{"A", "B"})

	got, err := q.ProcessHeader([]string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, got)

	_, err = q.ProcessHeader([]string{"A"})
	assert.Error(t, err)
}

func TestNewQuery_NilFilter(t *testing.T) {
	q := NewQuery([]ColumnRef{{Index: 0}}, nil)

	got, ok, err := q.Process([]string{"v"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"v"}, got)
}

func TestQuery_ProcessPreservesOrder(t *testing.T) {
	q := compile(t, `2 if 1 = "y"`, nil)
	rows := [][]string{{"y", "1"}, {"n", "2"}, {"y", "3"}, {"y", "4"}}

	got := processAll(t, q, rows)
	assert.Equal(t, [][]string{{"1"}, {"3"}, {"4"}}, got)
}

// processAll runs q over rows and keeps the accepted projections
func processAll(t *testing.T, q *Query, rows [][]string) [][]string {
	t.Helper()
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		got, ok, err := q.Process(row)
		require.NoError(t, err)
		if ok {
			out = append(out, got)
		}
	}
	return out
}

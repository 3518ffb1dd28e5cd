package query

// ColumnRef is a resolved column selection. Index is zero-based; Source is the
// text the column was selected with.
type ColumnRef struct {
	Index  int
	Source string
}

// Query is a compiled query: the selected columns, in the order and
// multiplicity they were written, and the filter tree. A Query is never
// modified after Compile and may be shared between goroutines.
type Query struct {
	Columns []ColumnRef
	Filter  *Condition

	filterWidth int
}

// NewQuery builds a Query from already resolved parts. A nil filter accepts
// every row.
func NewQuery(columns []ColumnRef, filter *Condition) *Query {
	if filter == nil {
		filter = True()
	}
	return &Query{
		Columns:     columns,
		Filter:      filter,
		filterWidth: filter.width(),
	}
}

// Process runs the query on one row. The second result is false when the
// filter rejected the row. A row narrower than a referenced column yields a
// *ColumnOutOfRangeError.
func (q *Query) Process(row []string) ([]string, bool, error) {
	if len(row) < q.filterWidth {
		return nil, false, &ColumnOutOfRangeError{Index: q.filterWidth - 1, Width: len(row), Row: row}
	}

	if !q.Filter.Check(row) {
		return nil, false, nil
	}

	projected, err := q.project(row)
	if err != nil {
		return nil, false, err
	}
	return projected, true, nil
}

// ProcessHeader projects a header row without applying the filter.
func (q *Query) ProcessHeader(row []string) ([]string, error) {
	return q.project(row)
}

// project copies the selected columns out of row
func (q *Query) project(row []string) ([]string, error) {
	out := make([]string, 0, len(q.Columns))
	for _, col := range q.Columns {
		if col.Index >= len(row) {
			return nil, &ColumnOutOfRangeError{Index: col.Index, Width: len(row), Row: row}
		}
		out = append(out, row[col.Index])
	}
	return out, nil
}

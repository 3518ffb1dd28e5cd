package query

import (
	"strconv"
)

// Result is the output of Compile
type Result struct {
	Query *Query

	// HeaderRequired is true when at least one column was referenced by
	// name, in which case the first row is a header and not data.
	HeaderRequired bool
}

type compileOptions struct {
	header bool
}

// Option configures Compile
type Option func(*compileOptions)

// WithHeader declares that the first row is a header even if the query only
// uses column numbers. The header map is then built and checked for
// duplicate names up front.
func WithHeader() Option {
	return func(o *compileOptions) {
		o.header = true
	}
}

// Compile parses queryString and resolves its column references. firstRow is
// only read when a column is referenced by name or WithHeader is given; it
// may be nil otherwise.
//
// Errors are *SyntaxError, *DuplicateHeaderError, *ColumnNotFoundError,
// *InvalidOrdinalError or one of the limit errors from validation.go.
func Compile(queryString string, firstRow []string, opts ...Option) (*Result, error) {
	var o compileOptions
	for _, opt := range opts {
		opt(&o)
	}

	tree, err := parse(queryString)
	if err != nil {
		return nil, err
	}

	r := &resolver{}
	usesNames := tree.hasNames()
	if usesNames || o.header {
		header, err := buildHeader(firstRow)
		if err != nil {
			return nil, err
		}
		r.header = header
	}

	columns := make([]ColumnRef, 0, len(tree.Columns))
	for _, node := range tree.Columns {
		idx, err := r.resolve(node)
		if err != nil {
			return nil, err
		}
		columns = append(columns, ColumnRef{Index: idx, Source: node.Text})
	}

	filter := True()
	if tree.Filter != nil {
		filter, err = r.condition(tree.Filter)
		if err != nil {
			return nil, err
		}
	}

	return &Result{
		Query:          NewQuery(columns, filter),
		HeaderRequired: usesNames,
	}, nil
}

// buildHeader maps header cells to their zero-based index
func buildHeader(row []string) (map[string]int, error) {
	header := make(map[string]int, len(row))
	for i, name := range row {
		if first, ok := header[name]; ok {
			return nil, &DuplicateHeaderError{First: first + 1, Second: i + 1, Name: name}
		}
		header[name] = i
	}
	return header, nil
}

// resolver turns column nodes into indexes. header is nil when the query
// only uses column numbers.
type resolver struct {
	header map[string]int
}

func (r *resolver) resolve(node columnNode) (int, error) {
	if node.Number {
		n, err := strconv.Atoi(node.Text)
		if err != nil || n < 1 {
			return 0, &InvalidOrdinalError{Text: node.Text}
		}
		return n - 1, nil
	}

	idx, ok := r.header[node.Text]
	if !ok {
		return 0, &ColumnNotFoundError{Name: node.Text}
	}
	return idx, nil
}

func (r *resolver) condition(node *condNode) (*Condition, error) {
	switch node.Kind {
	case CondAnd, CondOr:
		left, err := r.condition(node.Left)
		if err != nil {
			return nil, err
		}
		right, err := r.condition(node.Right)
		if err != nil {
			return nil, err
		}
		if node.Kind == CondAnd {
			return And(left, right), nil
		}
		return Or(left, right), nil
	case CondEq:
		var ops [2]Operand
		for i, op := range node.Operands {
			if op.Column == nil {
				ops[i] = OperandConst(op.Literal)
				continue
			}
			idx, err := r.resolve(*op.Column)
			if err != nil {
				return nil, err
			}
			ops[i] = OperandColumn(idx)
		}
		return Eq(ops[0], ops[1]), nil
	default:
		return True(), nil
	}
}

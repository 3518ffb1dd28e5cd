package query

// CondKind enumerates the filter tree variants
type CondKind int

const (
	// CondTrue accepts every row. Queries without an if clause compile to it.
	CondTrue CondKind = iota
	// CondEq compares its two operands for exact string equality.
	CondEq
	// CondAnd accepts rows accepted by both children.
	CondAnd
	// CondOr accepts rows accepted by either child.
	CondOr
)

func (k CondKind) String() string {
	switch k {
	case CondTrue:
		return "true"
	case CondEq:
		return "="
	case CondAnd:
		return "and"
	case CondOr:
		return "or"
	default:
		return "unknown"
	}
}

// Operand is one side of an equality test: either the value of a column of
// the row being checked, or a constant taken from the query.
type Operand struct {
	IsColumn bool
	Index    int
	Const    string
}

// OperandColumn returns an operand reading the zero-based column index
func OperandColumn(index int) Operand {
	return Operand{IsColumn: true, Index: index}
}

// OperandConst returns a constant operand
func OperandConst(value string) Operand {
	return Operand{Const: value}
}

// Value returns the operand value for row. Column operands must be in range.
func (o Operand) Value(row []string) string {
	if o.IsColumn {
		return row[o.Index]
	}
	return o.Const
}

// Condition is a node of the compiled filter tree. Left and Right are set for
// CondAnd and CondOr, Operands for CondEq.
type Condition struct {
	Kind     CondKind
	Left     *Condition
	Right    *Condition
	Operands [2]Operand
}

// True returns the condition accepting every row
func True() *Condition {
	return &Condition{Kind: CondTrue}
}

// Eq returns an equality test between two operands
func Eq(left, right Operand) *Condition {
	return &Condition{Kind: CondEq, Operands: [2]Operand{left, right}}
}

// And combines two conditions with logical and
func And(left, right *Condition) *Condition {
	return &Condition{Kind: CondAnd, Left: left, Right: right}
}

// Or combines two conditions with logical or
func Or(left, right *Condition) *Condition {
	return &Condition{Kind: CondOr, Left: left, Right: right}
}

// Check evaluates the condition against row. Values are compared byte for
// byte; nothing is trimmed, folded or parsed.
func (c *Condition) Check(row []string) bool {
	switch c.Kind {
	case CondTrue:
		return true
	case CondEq:
		return c.Operands[0].Value(row) == c.Operands[1].Value(row)
	case CondAnd:
		return c.Left.Check(row) && c.Right.Check(row)
	case CondOr:
		return c.Left.Check(row) || c.Right.Check(row)
	default:
		return false
	}
}

// width returns one past the largest column index read by the condition
func (c *Condition) width() int {
	switch c.Kind {
	case CondEq:
		w := 0
		for _, op := range c.Operands {
			if op.IsColumn && op.Index+1 > w {
				w = op.Index + 1
			}
		}
		return w
	case CondAnd, CondOr:
		return max(c.Left.width(), c.Right.width())
	default:
		return 0
	}
}

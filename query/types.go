package query

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Keywords
	TokenIf TokenType = iota
	TokenAnd
	TokenOr

	// Operators
	TokenEqual      // =
	TokenLeftParen  // (
	TokenRightParen // )

	// Literals
	TokenNumber
	TokenWord
	TokenString

	// Special
	TokenEOF
	TokenError
)

var tokenNames = map[TokenType]string{
	TokenIf:         "if",
	TokenAnd:        "and",
	TokenOr:         "or",
	TokenEqual:      "=",
	TokenLeftParen:  "(",
	TokenRightParen: ")",
	TokenNumber:     "column number",
	TokenWord:       "column name",
	TokenString:     "string",
	TokenEOF:        "end of input",
	TokenError:      "invalid token",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token represents a lexical token. Pos is the byte offset of the token in
// the query string.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// describe renders the token for "found ..." parts of syntax errors.
func (t Token) describe() string {
	switch t.Type {
	case TokenEOF:
		return "end of input"
	case TokenString:
		return fmt.Sprintf("string %q", t.Value)
	default:
		return fmt.Sprintf("%q", t.Value)
	}
}

// columnNode is a column reference as written in the query, before it is
// resolved against the header.
type columnNode struct {
	Text   string
	Number bool
	Pos    int
}

// operandNode is one side of an equality test.
type operandNode struct {
	Column  *columnNode
	Literal string
}

// condNode is the unresolved filter tree produced by the parser.
type condNode struct {
	Kind     CondKind
	Left     *condNode
	Right    *condNode
	Operands [2]operandNode
}

// queryNode is the parsed form of a whole query string.
type queryNode struct {
	Columns []columnNode
	Filter  *condNode
}

// hasNames reports whether any column in the parsed query is referenced by
// name. It only reads the tree.
func (q *queryNode) hasNames() bool {
	for _, c := range q.Columns {
		if !c.Number {
			return true
		}
	}
	return q.Filter.hasNames()
}

func (n *condNode) hasNames() bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case CondAnd, CondOr:
		return n.Left.hasNames() || n.Right.hasNames()
	case CondEq:
		for _, op := range n.Operands {
			if op.Column != nil && !op.Column.Number {
				return true
			}
		}
	}
	return false
}

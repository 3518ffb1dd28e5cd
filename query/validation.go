package query

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Input limits
const (
	MaxQueryLength      = 64 * 1024 // bytes
	MaxTokens           = 4096
	MaxExpressionDepth  = 100 // nested or-expressions, i.e. parentheses
	MaxColumnNameLength = 256 // characters
)

var (
	ErrQueryTooLong      = errors.New("query too long")
	ErrTooManyTokens     = errors.New("too many tokens in query")
	ErrExpressionTooDeep = errors.New("expression nesting too deep")
	ErrColumnNameTooLong = errors.New("column name too long")
)

// ValidateQuery checks the raw query string before tokenizing
func ValidateQuery(query string) error {
	if n := len(query); n > MaxQueryLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrQueryTooLong, n, MaxQueryLength)
	}
	return nil
}

// ValidateTokens checks the token count, end of input included
func ValidateTokens(tokens []Token) error {
	if n := len(tokens); n > MaxTokens {
		return fmt.Errorf("%w: %d tokens (max %d)", ErrTooManyTokens, n, MaxTokens)
	}
	return nil
}

// ValidateColumnName checks a column name. Length is counted in characters,
// the same unit column positions use.
func ValidateColumnName(name string) error {
	if n := utf8.RuneCountInString(name); n > MaxColumnNameLength {
		return fmt.Errorf("%w: %q... is %d characters (max %d)",
			ErrColumnNameTooLong, string([]rune(name)[:16]), n, MaxColumnNameLength)
	}
	return nil
}

// ExpressionDepthCounter bounds parser recursion
type ExpressionDepthCounter struct {
	depth, limit int
}

// NewExpressionDepthCounter returns a counter allowing MaxExpressionDepth levels
func NewExpressionDepthCounter() *ExpressionDepthCounter {
	return &ExpressionDepthCounter{limit: MaxExpressionDepth}
}

// Enter records one more level. A successful Enter is paired with Exit.
func (c *ExpressionDepthCounter) Enter() error {
	c.depth++
	if c.depth > c.limit {
		return fmt.Errorf("%w: more than %d levels", ErrExpressionTooDeep, c.limit)
	}
	return nil
}

// Exit leaves the current level
func (c *ExpressionDepthCounter) Exit() {
	c.depth--
}

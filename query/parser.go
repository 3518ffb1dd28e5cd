package query

import "strconv"

// Parser turns a token stream into an unresolved query tree
type Parser struct {
	query        string
	tokens       []Token
	pos          int
	depthCounter *ExpressionDepthCounter
}

// NewParser creates a new parser. The query string is kept for error reporting.
func NewParser(query string, tokens []Token) *Parser {
	return &Parser{
		query:        query,
		tokens:       tokens,
		pos:          0,
		depthCounter: NewExpressionDepthCounter(),
	}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Pos: len(p.query)}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// errorf builds a syntax error pointing at the current token
func (p *Parser) errorf(format string, args ...interface{}) error {
	return newSyntaxError(p.query, p.current().Pos, format, args...)
}

// unexpected reports the current token where something else was required
func (p *Parser) unexpected(expected string) error {
	tok := p.current()
	if tok.Type == TokenError {
		return newSyntaxError(p.query, tok.Pos, "unterminated string")
	}
	return p.errorf("expected %s, found %s", expected, tok.describe())
}

// expect checks if current token matches expected type and advances
func (p *Parser) expect(tokType TokenType) error {
	if p.current().Type != tokType {
		return p.unexpected(strconv.Quote(tokType.String()))
	}
	p.advance()
	return nil
}

// parse parses a query string into its unresolved tree
func parse(query string) (*queryNode, error) {
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}

	tokens := Tokenize(query)
	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}

	return NewParser(query, tokens).parseQuery()
}

// parseQuery parses: column+ [if cond_expr] EOF
func (p *Parser) parseQuery() (*queryNode, error) {
	q := &queryNode{}

	for {
		col, ok, err := p.parseColumn()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		q.Columns = append(q.Columns, col)
	}
	if len(q.Columns) == 0 {
		return nil, p.unexpected("column number or column name")
	}

	if p.current().Type == TokenIf {
		p.advance()
		filter, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		q.Filter = filter
	}

	if p.current().Type != TokenEOF {
		if q.Filter == nil {
			return nil, p.unexpected(`column or "if"`)
		}
		return nil, p.unexpected(`"and", "or" or end of input`)
	}

	return q, nil
}

// parseColumn consumes a column number or name if one is next
func (p *Parser) parseColumn() (columnNode, bool, error) {
	tok := p.current()
	switch tok.Type {
	case TokenNumber:
		p.advance()
		return columnNode{Text: tok.Value, Number: true, Pos: tok.Pos}, true, nil
	case TokenWord:
		if err := ValidateColumnName(tok.Value); err != nil {
			return columnNode{}, false, err
		}
		p.advance()
		return columnNode{Text: tok.Value, Pos: tok.Pos}, true, nil
	}
	return columnNode{}, false, nil
}

// parseOr parses OR expressions (lowest precedence)
func (p *Parser) parseOr() (*condNode, error) {
	if err := p.depthCounter.Enter(); err != nil {
		return nil, err
	}
	defer p.depthCounter.Exit()

	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &condNode{Kind: CondOr, Left: left, Right: right}
	}

	return left, nil
}

// parseAnd parses AND expressions (higher precedence than OR)
func (p *Parser) parseAnd() (*condNode, error) {
	left, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenAnd {
		p.advance()
		right, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		left = &condNode{Kind: CondAnd, Left: left, Right: right}
	}

	return left, nil
}

// parseCondition parses a parenthesized expression or operand = operand
func (p *Parser) parseCondition() (*condNode, error) {
	if p.current().Type == TokenLeftParen {
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRightParen); err != nil {
			return nil, err
		}
		return inner, nil
	}

	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenEqual); err != nil {
		return nil, err
	}
	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	return &condNode{Kind: CondEq, Operands: [2]operandNode{left, right}}, nil
}

// parseOperand parses a column reference or a string literal
func (p *Parser) parseOperand() (operandNode, error) {
	if tok := p.current(); tok.Type == TokenString {
		p.advance()
		return operandNode{Literal: tok.Value}, nil
	}

	col, ok, err := p.parseColumn()
	if err != nil {
		return operandNode{}, err
	}
	if !ok {
		return operandNode{}, p.unexpected("column or string")
	}
	return operandNode{Column: &col}, nil
}

package query

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes query strings
type Lexer struct {
	input string
	pos   int // offset of ch
	next  int // offset after ch
	ch    rune
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next character
func (l *Lexer) readChar() {
	l.pos = l.next
	if l.next >= len(l.input) {
		l.ch = 0
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.next:])
	l.ch = r
	l.next += size
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

// readString reads a double-quoted string. The second result is false when
// the closing quote is missing.
func (l *Lexer) readString() (string, bool) {
	var result strings.Builder
	l.readChar() // skip opening quote

	for !l.atEnd() && l.ch != '"' {
		if l.ch == '\\' {
			l.readChar()
			if l.atEnd() {
				break
			}
			switch l.ch {
			case '"', '\\':
				result.WriteRune(l.ch)
			default:
				result.WriteRune('\\')
				result.WriteRune(l.ch)
			}
		} else {
			result.WriteRune(l.ch)
		}
		l.readChar()
	}

	if l.atEnd() {
		return result.String(), false
	}
	l.readChar() // skip closing quote
	return result.String(), true
}

// isDelimiter reports whether r ends a bare word
func isDelimiter(r rune) bool {
	switch r {
	case '"', '=', '&', '|', '(', ')':
		return true
	}
	return unicode.IsSpace(r)
}

// readWord reads a bare word: a column number, a column name or a keyword
func (l *Lexer) readWord() string {
	start := l.pos
	for !l.atEnd() && !isDelimiter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.pos
	if l.atEnd() {
		return Token{Type: TokenEOF, Pos: start}
	}

	switch l.ch {
	case '=':
		l.readChar()
		return Token{Type: TokenEqual, Value: "=", Pos: start}
	case '&':
		l.readChar()
		return Token{Type: TokenAnd, Value: "&", Pos: start}
	case '|':
		l.readChar()
		return Token{Type: TokenOr, Value: "|", Pos: start}
	case '(':
		l.readChar()
		return Token{Type: TokenLeftParen, Value: "(", Pos: start}
	case ')':
		l.readChar()
		return Token{Type: TokenRightParen, Value: ")", Pos: start}
	case '"':
		value, ok := l.readString()
		if !ok {
			return Token{Type: TokenError, Value: l.input[start:], Pos: start}
		}
		return Token{Type: TokenString, Value: value, Pos: start}
	}

	word := l.readWord()
	return Token{Type: wordType(word), Value: word, Pos: start}
}

// wordType classifies a bare word as a keyword, a column number or a column
// name. Keywords are lowercase only, so "IF" or "Or" stay usable as header
// names.
func wordType(word string) TokenType {
	switch word {
	case "if":
		return TokenIf
	case "and":
		return TokenAnd
	case "or":
		return TokenOr
	}
	if isNumber(word) {
		return TokenNumber
	}
	return TokenWord
}

// isNumber matches -?[0-9]+
func isNumber(word string) bool {
	digits := strings.TrimPrefix(word, "-")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// Tokenize returns all tokens from the input
func Tokenize(input string) []Token {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}

	return tokens
}

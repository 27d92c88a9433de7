package surface

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Lexer tokenizes surface source into Tokens, the same rune-scanner shape
// as the teacher's internal/lexer.Lexer: readChar/peekChar over an
// NFC-normalized input string, tracking line/column for diagnostics.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

// New creates a Lexer over src, normalizing it to NFC first (the same
// boundary the teacher's lexer.Normalize applies, reused here since this
// package has no separate normalization entry point of its own).
func New(src string) *Lexer {
	if !norm.NFC.IsNormalString(src) {
		src = norm.NFC.String(src)
	}
	l := &Lexer{input: src, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentCont(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\''
}

// Next returns the next token in the stream.
func (l *Lexer) Next() Token {
	l.skipWhitespace()

	line, col := l.line, l.column
	switch l.ch {
	case 0:
		return Token{Type: EOF, Line: line, Column: col}
	case '(':
		l.readChar()
		return Token{Type: LPAREN, Literal: "(", Line: line, Column: col}
	case ')':
		l.readChar()
		return Token{Type: RPAREN, Literal: ")", Line: line, Column: col}
	case '\\':
		l.readChar()
		return Token{Type: BACKSLASH, Literal: "\\", Line: line, Column: col}
	case '.':
		l.readChar()
		return Token{Type: DOT, Literal: ".", Line: line, Column: col}
	case '=':
		l.readChar()
		return Token{Type: EQUALS, Literal: "=", Line: line, Column: col}
	case ':':
		l.readChar()
		return Token{Type: COLON, Literal: ":", Line: line, Column: col}
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return Token{Type: ARROW, Literal: "->", Line: line, Column: col}
		}
		l.readChar()
		return Token{Type: ILLEGAL, Literal: "-", Line: line, Column: col}
	}

	if isIdentStart(l.ch) {
		start := l.position
		for isIdentCont(l.ch) {
			l.readChar()
		}
		lit := l.input[start:l.position]
		if kw, ok := keywords[lit]; ok {
			return Token{Type: kw, Literal: lit, Line: line, Column: col}
		}
		return Token{Type: IDENT, Literal: lit, Line: line, Column: col}
	}

	ch := l.ch
	l.readChar()
	return Token{Type: ILLEGAL, Literal: string(ch), Line: line, Column: col}
}

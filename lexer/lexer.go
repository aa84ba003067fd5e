// Package lexer implements a lexical scanner for A2L (ASAM MCD-2MC) source.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cschuler/go-a2l/token"
)

// Lexer scans A2L source text into a stream of tokens.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int
	column       int

	atFileStart bool // true until the first non-trivial token is produced
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{
		input:       input,
		line:        1,
		column:      0,
		atFileStart: true,
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
	} else {
		r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += size
	}
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

// NextToken returns the next token from the input. Whitespace and
// comments are skipped.
func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	tok.Line = l.line
	tok.Column = l.column

	switch {
	case l.ch == 0:
		tok.Type = token.EOF
		tok.Literal = ""
		return tok
	case l.ch == '/':
		switch {
		case l.peekChar() == '*':
			l.readBlockComment()
			return l.NextToken()
		case l.peekChar() == '/':
			l.readLineComment()
			return l.NextToken()
		case l.startsWith("/begin"):
			tok = l.newToken(token.BEGIN, "/begin")
			l.advance(len("/begin"))
		case l.startsWith("/end"):
			tok = l.newToken(token.END, "/end")
			l.advance(len("/end"))
		case l.startsWith("/include"):
			tok = l.newToken(token.INCLUDE, "/include")
			l.advance(len("/include"))
		default:
			// A bare '/' not followed by a comment or a recognized
			// punctuation keyword is not part of the A2L grammar.
			tok = l.newToken(token.ILLEGAL, string(l.ch))
			l.readChar()
		}
	case l.ch == '"':
		lit, ok := l.readString()
		if !ok {
			tok = l.newToken(token.ILLEGAL, lit)
		} else {
			tok = l.newToken(token.STRING, lit)
		}
	case isDigit(l.ch) || ((l.ch == '+' || l.ch == '-') && isDigit(l.peekChar())):
		if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
			tok = l.newToken(token.HEX, l.readHex())
		} else {
			lit, kind := l.readNumber()
			tok = l.newToken(kind, lit)
		}
	case isIdentStart(l.ch):
		lit := l.readIdentifier()
		if lit == "ASAP2_VERSION" && l.atFileStart {
			tok = l.newToken(token.ASAP2_VERSION_, lit)
		} else {
			tok = l.newToken(token.IDENT, lit)
		}
	default:
		tok = l.newToken(token.ILLEGAL, string(l.ch))
		l.readChar()
	}

	if tok.Type != token.COMMENT {
		l.atFileStart = false
	}
	return tok
}

func (l *Lexer) startsWith(lit string) bool {
	return strings.HasPrefix(l.input[l.position:], lit)
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		l.readChar()
	}
}

func (l *Lexer) newToken(tokenType token.Type, literal string) token.Token {
	return token.Token{
		Type:    tokenType,
		Literal: literal,
		Line:    l.line,
		Column:  l.column,
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier reads an A2L identifier: letter or '_', then
// letters/digits/'_'/'.'; trailing '[' ']' segments (array indices on
// symbol names) are swallowed as part of the lexeme.
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '.' {
		l.readChar()
	}
	for l.ch == '[' {
		for l.ch != ']' && l.ch != 0 {
			l.readChar()
		}
		if l.ch == ']' {
			l.readChar()
		}
	}
	return l.input[position:l.position]
}

// readNumber reads INT or FLOAT, disambiguating on '.' or 'e'/'E'.
func (l *Lexer) readNumber() (string, token.Type) {
	position := l.position
	tokenType := token.INT

	if l.ch == '+' || l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		tokenType = token.FLOAT
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		tokenType = token.FLOAT
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[position:l.position], tokenType
}

func (l *Lexer) readHex() string {
	position := l.position
	l.readChar() // consume 0
	l.readChar() // consume x
	for isHexDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readString reads a double-quoted string. Embedded quotes are escaped
// by doubling ("") and interior whitespace, including newlines, is
// preserved verbatim. Returns ok=false on an unterminated string.
func (l *Lexer) readString() (string, bool) {
	var result strings.Builder
	l.readChar() // consume opening quote

	for {
		if l.ch == '"' {
			if l.peekChar() == '"' {
				result.WriteByte('"')
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar()
			return result.String(), true
		}
		if l.ch == 0 {
			return result.String(), false
		}
		result.WriteRune(l.ch)
		l.readChar()
	}
}

func (l *Lexer) readLineComment() string {
	position := l.position
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readBlockComment reads a /* ... */ comment, nestable per the grammar.
func (l *Lexer) readBlockComment() string {
	position := l.position
	l.readChar() // consume /
	l.readChar() // consume *

	depth := 1
	for depth > 0 {
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			depth++
		} else if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			depth--
		} else if l.ch == 0 {
			break
		} else {
			l.readChar()
		}
	}

	return l.input[position:l.position]
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentStart(ch rune) bool {
	return isLetter(ch)
}

func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// Tokenize scans the whole input and returns every non-trivial token,
// discarding COMMENT per the lexer's stated contract. The final token
// is always EOF.
func Tokenize(input string) []token.Token {
	l := New(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.COMMENT {
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens
}

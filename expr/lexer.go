package expr

import (
	"fmt"
	"strings"
)

type textTokenKind int

const (
	ttEOF textTokenKind = iota
	ttIdent
	ttString
	ttTrue
	ttFalse
	ttNull
	ttEq
	ttNe
	ttAnd
	ttOr
	ttNot
	ttContains
	ttLParen
	ttRParen
	ttLBracket
	ttRBracket
	ttComma
)

type textToken struct {
	kind    textTokenKind
	literal string
	offset  int
}

type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func (l *lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *lexer) skipWhitespace() {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.pos++
		} else {
			return
		}
	}
}

func (l *lexer) next() (textToken, error) {
	l.skipWhitespace()
	start := l.pos
	if l.pos >= len(l.input) {
		return textToken{kind: ttEOF, offset: start}, nil
	}

	ch := l.peek()
	switch {
	case ch == '(':
		l.pos++
		return textToken{kind: ttLParen, offset: start}, nil
	case ch == ')':
		l.pos++
		return textToken{kind: ttRParen, offset: start}, nil
	case ch == '[':
		l.pos++
		return textToken{kind: ttLBracket, offset: start}, nil
	case ch == ']':
		l.pos++
		return textToken{kind: ttRBracket, offset: start}, nil
	case ch == ',':
		l.pos++
		return textToken{kind: ttComma, offset: start}, nil
	case ch == '=' && l.peekN(1) == '=':
		l.pos += 2
		return textToken{kind: ttEq, offset: start}, nil
	case ch == '!' && l.peekN(1) == '=':
		l.pos += 2
		return textToken{kind: ttNe, offset: start}, nil
	case ch == '!':
		l.pos++
		return textToken{kind: ttNot, offset: start}, nil
	case ch == '&' && l.peekN(1) == '&':
		l.pos += 2
		return textToken{kind: ttAnd, offset: start}, nil
	case ch == '|' && l.peekN(1) == '|':
		l.pos += 2
		return textToken{kind: ttOr, offset: start}, nil
	case ch == '"':
		return l.scanString(start)
	case isIdentStart(ch):
		return l.scanIdent(start), nil
	default:
		return textToken{}, fmt.Errorf("offset %d: unexpected character %q", start, string(ch))
	}
}

func (l *lexer) scanString(start int) (textToken, error) {
	var sb strings.Builder
	l.pos++
	for {
		if l.pos >= len(l.input) {
			return textToken{}, fmt.Errorf("offset %d: unterminated string", start)
		}
		ch := l.input[l.pos]
		switch ch {
		case '"':
			l.pos++
			return textToken{kind: ttString, literal: sb.String(), offset: start}, nil
		case '\\':
			l.pos++
			if l.pos >= len(l.input) {
				return textToken{}, fmt.Errorf("offset %d: unterminated string", start)
			}
			esc := l.input[l.pos]
			switch esc {
			case '"', '\\':
				sb.WriteByte(esc)
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				return textToken{}, fmt.Errorf("offset %d: unknown escape \\%s", l.pos, string(esc))
			}
			l.pos++
		default:
			sb.WriteByte(ch)
			l.pos++
		}
	}
}

func (l *lexer) scanIdent(start int) textToken {
	for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
		l.pos++
	}
	word := l.input[start:l.pos]
	switch word {
	case "true":
		return textToken{kind: ttTrue, offset: start}
	case "false":
		return textToken{kind: ttFalse, offset: start}
	case "null":
		return textToken{kind: ttNull, offset: start}
	case "contains":
		return textToken{kind: ttContains, offset: start}
	default:
		return textToken{kind: ttIdent, literal: word, offset: start}
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ch == '$' ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || ch == '.' || ch == '-' ||
		(ch >= '0' && ch <= '9')
}

// Package tree turns a forward-only JSON token stream into ordered
// start/end element events describing a tree of nodes, without knowing
// anything about the schema beyond an injected key classifier.
package tree

import "fmt"

// TokenKind enumerates the structural tokens delivered by a TokenSource.
type TokenKind int

const (
	TokenBeginObject TokenKind = iota
	TokenEndObject
	TokenBeginArray
	TokenEndArray
	TokenKey
	TokenString
	TokenBool
	TokenNull
	TokenNumber
)

var tokenKindNames = map[TokenKind]string{
	TokenBeginObject: "{",
	TokenEndObject:   "}",
	TokenBeginArray:  "[",
	TokenEndArray:    "]",
	TokenKey:         "key",
	TokenString:      "string",
	TokenBool:        "boolean",
	TokenNull:        "null",
	TokenNumber:      "number",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Position is a 1-based line/column location in the source document.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Token is one structural event from the underlying JSON source.
// Str holds key names, string values and raw number text.
type Token struct {
	Kind TokenKind
	Str  string
	Bool bool
	Pos  Position
}

// TokenSource delivers JSON tokens one at a time. Next returns io.EOF
// at end of input and JSON syntax errors unchanged. Pos reports the
// location of the most recently delivered token.
type TokenSource interface {
	Next() (Token, error)
	Pos() Position
}

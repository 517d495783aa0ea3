// Package expr models the boolean/string expression language embedded in
// blueprint scripts. An expression is an immutable flat token sequence;
// the tree codec stores it as a token list and the text front end
// ("a == b && !(c contains \"x\")") compiles to the same form.
package expr

import (
	"fmt"
	"strings"
)

// Expr is an immutable expression: an ordered token sequence.
type Expr struct {
	tokens []Token
}

// New builds an expression from a token sequence. Validation is
// structural only (operand/operator alternation, balanced parentheses);
// token streams normally come from a prior grammar-level parse.
func New(tokens ...Token) (*Expr, error) {
	if err := validate(tokens); err != nil {
		return nil, err
	}
	owned := make([]Token, len(tokens))
	copy(owned, tokens)
	return &Expr{tokens: owned}, nil
}

// Tokens returns a copy of the token sequence. New(e.Tokens()...) is
// structurally equal to e.
func (e *Expr) Tokens() []Token {
	tokens := make([]Token, len(e.tokens))
	copy(tokens, e.tokens)
	return tokens
}

func (e *Expr) Len() int { return len(e.tokens) }

func (e *Expr) Equal(o *Expr) bool {
	if o == nil || len(e.tokens) != len(o.tokens) {
		return false
	}
	for i := range e.tokens {
		if !TokenEqual(e.tokens[i], o.tokens[i]) {
			return false
		}
	}
	return true
}

// Fingerprint returns a stable key that is equal exactly for
// structurally equal expressions. The writer uses it for interning.
func (e *Expr) Fingerprint() string {
	var sb strings.Builder
	for i, tok := range e.tokens {
		if i > 0 {
			sb.WriteByte(0x1f)
		}
		switch t := tok.(type) {
		case Literal:
			sb.WriteString("l:")
			sb.WriteString(t.Value.Kind().String())
			sb.WriteByte(':')
			sb.WriteString(t.Value.String())
		case Variable:
			sb.WriteString("v:")
			sb.WriteString(t.Name)
		case Operator:
			sb.WriteString("o:")
			sb.WriteString(t.Name())
		}
	}
	return sb.String()
}

// String renders the expression in the text form. Binary operators are
// spaced, "!" binds tightly, parentheses are preserved.
func (e *Expr) String() string {
	var sb strings.Builder
	prev := Token(nil)
	for _, tok := range e.tokens {
		if needsSpace(prev, tok) {
			sb.WriteByte(' ')
		}
		switch t := tok.(type) {
		case Literal:
			sb.WriteString(t.Value.String())
		case Variable:
			sb.WriteString(t.Name)
		case Operator:
			sb.WriteString(t.String())
		}
		prev = tok
	}
	return sb.String()
}

func needsSpace(prev, cur Token) bool {
	if prev == nil {
		return false
	}
	if op, ok := prev.(Operator); ok && (op == OpOpenParen || op == OpNot) {
		return false
	}
	if op, ok := cur.(Operator); ok && op == OpCloseParen {
		return false
	}
	return true
}

func validate(tokens []Token) error {
	if len(tokens) == 0 {
		return fmt.Errorf("empty expression")
	}
	depth := 0
	expectOperand := true
	for i, tok := range tokens {
		switch t := tok.(type) {
		case Literal, Variable:
			if !expectOperand {
				return fmt.Errorf("token %d: operand where an operator was expected", i)
			}
			expectOperand = false
		case Operator:
			switch t {
			case OpEquals, OpNotEquals, OpAnd, OpOr, OpContains:
				if expectOperand {
					return fmt.Errorf("token %d: operator %s without a left operand", i, t)
				}
				expectOperand = true
			case OpNot:
				if !expectOperand {
					return fmt.Errorf("token %d: %s after an operand", i, t)
				}
			case OpOpenParen:
				if !expectOperand {
					return fmt.Errorf("token %d: ( after an operand", i)
				}
				depth++
			case OpCloseParen:
				if expectOperand {
					return fmt.Errorf("token %d: ) where an operand was expected", i)
				}
				depth--
				if depth < 0 {
					return fmt.Errorf("token %d: unbalanced )", i)
				}
			}
		}
	}
	if expectOperand {
		return fmt.Errorf("expression ends with an operator")
	}
	if depth != 0 {
		return fmt.Errorf("unbalanced (")
	}
	return nil
}

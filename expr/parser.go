package expr

import (
	"fmt"

	"github.com/dhamidi/blueprint/value"
)

// Parse compiles the text form of an expression into its flat token
// sequence. The grammar, loosest first: || over && over ==/!=/contains
// over unary ! over primaries (variables, literals, parenthesized
// groups, string-list literals).
func Parse(input string) (*Expr, error) {
	p := &textParser{lex: newLexer(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.parseOr(); err != nil {
		return nil, err
	}
	if p.cur.kind != ttEOF {
		return nil, fmt.Errorf("offset %d: unexpected trailing input", p.cur.offset)
	}
	return New(p.tokens...)
}

type textParser struct {
	lex    *lexer
	cur    textToken
	tokens []Token
}

func (p *textParser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *textParser) emit(tok Token) {
	p.tokens = append(p.tokens, tok)
}

func (p *textParser) parseOr() error {
	if err := p.parseAnd(); err != nil {
		return err
	}
	for p.cur.kind == ttOr {
		p.emit(OpOr)
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.parseAnd(); err != nil {
			return err
		}
	}
	return nil
}

func (p *textParser) parseAnd() error {
	if err := p.parseComparison(); err != nil {
		return err
	}
	for p.cur.kind == ttAnd {
		p.emit(OpAnd)
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.parseComparison(); err != nil {
			return err
		}
	}
	return nil
}

func (p *textParser) parseComparison() error {
	if err := p.parseUnary(); err != nil {
		return err
	}
	for {
		var op Operator
		switch p.cur.kind {
		case ttEq:
			op = OpEquals
		case ttNe:
			op = OpNotEquals
		case ttContains:
			op = OpContains
		default:
			return nil
		}
		p.emit(op)
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.parseUnary(); err != nil {
			return err
		}
	}
}

func (p *textParser) parseUnary() error {
	if p.cur.kind == ttNot {
		p.emit(OpNot)
		if err := p.advance(); err != nil {
			return err
		}
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *textParser) parsePrimary() error {
	switch p.cur.kind {
	case ttIdent:
		p.emit(Variable{Name: p.cur.literal})
		return p.advance()
	case ttString:
		p.emit(Literal{Value: value.StringVal(p.cur.literal)})
		return p.advance()
	case ttTrue:
		p.emit(Literal{Value: value.BoolVal(true)})
		return p.advance()
	case ttFalse:
		p.emit(Literal{Value: value.BoolVal(false)})
		return p.advance()
	case ttNull:
		p.emit(Literal{Value: value.NullVal()})
		return p.advance()
	case ttLBracket:
		return p.parseList()
	case ttLParen:
		p.emit(OpOpenParen)
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.parseOr(); err != nil {
			return err
		}
		if p.cur.kind != ttRParen {
			return fmt.Errorf("offset %d: expected )", p.cur.offset)
		}
		p.emit(OpCloseParen)
		return p.advance()
	case ttEOF:
		return fmt.Errorf("offset %d: unexpected end of expression", p.cur.offset)
	default:
		return fmt.Errorf("offset %d: unexpected token", p.cur.offset)
	}
}

func (p *textParser) parseList() error {
	start := p.cur.offset
	if err := p.advance(); err != nil {
		return err
	}
	var items []string
	for p.cur.kind != ttRBracket {
		if len(items) > 0 {
			if p.cur.kind != ttComma {
				return fmt.Errorf("offset %d: expected , or ] in list", p.cur.offset)
			}
			if err := p.advance(); err != nil {
				return err
			}
		}
		if p.cur.kind != ttString {
			return fmt.Errorf("offset %d: lists may contain only strings", start)
		}
		items = append(items, p.cur.literal)
		if err := p.advance(); err != nil {
			return err
		}
	}
	p.emit(Literal{Value: value.StringsVal(items...)})
	return p.advance()
}

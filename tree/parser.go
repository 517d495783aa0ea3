package tree

import (
	"fmt"
	"io"

	"github.com/dhamidi/blueprint/value"
)

// Role classifies a JSON object key within a node.
type Role int

const (
	// RoleUnknown marks a plain attribute: a scalar, null or array of
	// strings attached to the node, never walked as a sub-node.
	RoleUnknown Role = iota
	// RoleName marks the key whose string value names the node's kind.
	RoleName
	// RoleChildren marks the ordered array of child nodes.
	RoleChildren
	// RoleObject marks a dictionary of named sub-nodes; each entry's
	// kind name is the dictionary key itself.
	RoleObject
)

// Classifier decides the role of an object key. It is injected so the
// parser stays schema-agnostic.
type Classifier func(key string) Role

// Attr is one attribute of a node, in document order.
type Attr struct {
	Key   string
	Value value.Value
}

// Handler receives the pre-order tree walk. StartElement fires before
// any of the node's child events, EndElement after all of them.
// A non-nil error aborts the walk.
type Handler interface {
	StartElement(name string, attrs []Attr, pos Position) error
	EndElement(name string, pos Position) error
}

// ShapeError reports an event sequence inconsistent with the tree
// discipline, located in the source document.
type ShapeError struct {
	Pos Position
	Msg string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Parser walks a token stream and emits element events. Internal state
// is a stack of pending roles; memory use is proportional to tree
// depth, never to document size.
type Parser struct {
	src      TokenSource
	classify Classifier
	handler  Handler
	stack    []parseFrame
}

type frameKind int

const (
	frameNode frameKind = iota
	frameChildren
	frameTable
)

type parseFrame struct {
	kind    frameKind
	name    string
	attrs   []Attr
	started bool
	// forced is set for table entries, whose kind name comes from the
	// dictionary key instead of a name-role key.
	forced bool
	// closeName, on a children frame, requests an EndElement for a
	// table entry whose value was a bare array.
	closeName string
}

func NewParser(src TokenSource, classify Classifier, handler Handler) *Parser {
	return &Parser{src: src, classify: classify, handler: handler}
}

// Parse consumes the whole document in a single forward pass. The
// document must contain exactly one root node.
func (p *Parser) Parse() error {
	tok, err := p.src.Next()
	if err == io.EOF {
		return p.violationf("empty document")
	}
	if err != nil {
		return err
	}
	if tok.Kind != TokenBeginObject {
		return p.violationf("expected an object at the document root, got %s", tok.Kind)
	}
	p.stack = append(p.stack, parseFrame{kind: frameNode})

	for len(p.stack) > 0 {
		tok, err := p.next()
		if err != nil {
			return err
		}
		top := &p.stack[len(p.stack)-1]
		switch top.kind {
		case frameNode:
			err = p.nodeToken(top, tok)
		case frameChildren:
			err = p.childrenToken(top, tok)
		case frameTable:
			err = p.tableToken(top, tok)
		}
		if err != nil {
			return err
		}
	}

	if _, err := p.src.Next(); err != io.EOF {
		if err != nil {
			return err
		}
		return p.violationf("unexpected content after the document root")
	}
	return nil
}

func (p *Parser) nodeToken(top *parseFrame, tok Token) error {
	switch tok.Kind {
	case TokenKey:
		return p.nodeKey(top, tok)
	case TokenEndObject:
		if !top.started {
			if err := p.flushStart(top); err != nil {
				return err
			}
		}
		name := top.name
		p.stack = p.stack[:len(p.stack)-1]
		return p.handler.EndElement(name, tok.Pos)
	default:
		return p.violationf("expected a key or end of node, got %s", tok.Kind)
	}
}

func (p *Parser) nodeKey(top *parseFrame, tok Token) error {
	switch p.classify(tok.Str) {
	case RoleName:
		v, err := p.next()
		if err != nil {
			return err
		}
		if v.Kind != TokenString {
			return p.violationf("kind name must be a string, got %s", v.Kind)
		}
		if top.forced {
			return p.violationf("kind name conflicts with the enclosing dictionary key %q", top.name)
		}
		if top.name != "" {
			return p.violationf("duplicate kind name (already %q)", top.name)
		}
		top.name = v.Str
		return nil

	case RoleChildren:
		if err := p.flushStart(top); err != nil {
			return err
		}
		v, err := p.next()
		if err != nil {
			return err
		}
		if v.Kind != TokenBeginArray {
			return p.violationf("children must be an array, got %s", v.Kind)
		}
		p.stack = append(p.stack, parseFrame{kind: frameChildren})
		return nil

	case RoleObject:
		if err := p.flushStart(top); err != nil {
			return err
		}
		v, err := p.next()
		if err != nil {
			return err
		}
		if v.Kind != TokenBeginObject {
			return p.violationf("%q must be an object, got %s", tok.Str, v.Kind)
		}
		if err := p.handler.StartElement(tok.Str, nil, tok.Pos); err != nil {
			return err
		}
		p.stack = append(p.stack, parseFrame{kind: frameTable, name: tok.Str})
		return nil

	default:
		if top.started {
			return p.violationf("attribute %q after children", tok.Str)
		}
		v, err := p.attributeValue(tok.Str)
		if err != nil {
			return err
		}
		top.attrs = append(top.attrs, Attr{Key: tok.Str, Value: v})
		return nil
	}
}

func (p *Parser) childrenToken(top *parseFrame, tok Token) error {
	switch tok.Kind {
	case TokenBeginObject:
		p.stack = append(p.stack, parseFrame{kind: frameNode})
		return nil
	case TokenEndArray:
		closeName := top.closeName
		p.stack = p.stack[:len(p.stack)-1]
		if closeName != "" {
			return p.handler.EndElement(closeName, tok.Pos)
		}
		return nil
	default:
		return p.violationf("children must be objects, got %s", tok.Kind)
	}
}

func (p *Parser) tableToken(top *parseFrame, tok Token) error {
	switch tok.Kind {
	case TokenKey:
		v, err := p.next()
		if err != nil {
			return err
		}
		switch v.Kind {
		case TokenBeginObject:
			p.stack = append(p.stack, parseFrame{kind: frameNode, name: tok.Str, forced: true})
			return nil
		case TokenBeginArray:
			if err := p.handler.StartElement(tok.Str, nil, tok.Pos); err != nil {
				return err
			}
			p.stack = append(p.stack, parseFrame{kind: frameChildren, closeName: tok.Str})
			return nil
		default:
			return p.violationf("entry %q must be an object or array, got %s", tok.Str, v.Kind)
		}
	case TokenEndObject:
		name := top.name
		p.stack = p.stack[:len(p.stack)-1]
		return p.handler.EndElement(name, tok.Pos)
	default:
		return p.violationf("expected an entry key or end of %q, got %s", top.name, tok.Kind)
	}
}

// flushStart fires StartElement once the node's attributes are complete:
// at the first structural key, or at end of node for leaves.
func (p *Parser) flushStart(top *parseFrame) error {
	if top.started {
		return nil
	}
	if top.name == "" {
		return p.violationf("node has no kind name")
	}
	top.started = true
	return p.handler.StartElement(top.name, top.attrs, p.src.Pos())
}

// attributeValue reads an unknown-role value: a scalar, null or a plain
// array of strings. Such arrays are never walked as children.
func (p *Parser) attributeValue(key string) (value.Value, error) {
	tok, err := p.next()
	if err != nil {
		return value.NullVal(), err
	}
	switch tok.Kind {
	case TokenString:
		return value.StringVal(tok.Str), nil
	case TokenBool:
		return value.BoolVal(tok.Bool), nil
	case TokenNull:
		return value.NullVal(), nil
	case TokenNumber:
		return value.NullVal(), p.violationf("attribute %q: numbers are not part of the document grammar", key)
	case TokenBeginArray:
		var items []string
		for {
			el, err := p.next()
			if err != nil {
				return value.NullVal(), err
			}
			switch el.Kind {
			case TokenString:
				items = append(items, el.Str)
			case TokenEndArray:
				return value.StringsVal(items...), nil
			default:
				return value.NullVal(), p.violationf("attribute %q: arrays may contain only strings, got %s", key, el.Kind)
			}
		}
	default:
		return value.NullVal(), p.violationf("attribute %q: unexpected %s", key, tok.Kind)
	}
}

// next maps end of input inside the walk to an unterminated-node error.
func (p *Parser) next() (Token, error) {
	tok, err := p.src.Next()
	if err == io.EOF {
		if len(p.stack) > 0 {
			return Token{}, p.violationf("unexpected end of input with %d unterminated nodes", len(p.stack))
		}
		return Token{}, io.EOF
	}
	if err != nil {
		// Malformed JSON surfaces unchanged.
		return Token{}, err
	}
	return tok, nil
}

func (p *Parser) violationf(format string, args ...interface{}) error {
	return &ShapeError{Pos: p.src.Pos(), Msg: fmt.Sprintf(format, args...)}
}

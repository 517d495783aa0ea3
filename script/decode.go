package script

import (
	"io"

	"github.com/pkg/errors"

	"github.com/dhamidi/blueprint/expr"
	"github.com/dhamidi/blueprint/tree"
)

// Decode reads a blueprint script document from r and returns the
// typed AST root. On any violation no partial AST is returned; see
// SchemaError, UnresolvedError and tree.ShapeError for the taxonomy.
func Decode(r io.Reader) (*Script, error) {
	d := &decoder{table: make(map[string]*expr.Expr)}
	p := tree.NewParser(tree.NewScanner(r), ClassifyKey, d)
	if err := p.Parse(); err != nil {
		return nil, err
	}
	root, ok := d.root.(*Script)
	if !ok {
		return nil, &SchemaError{
			Kind: d.rootKind,
			Pos:  d.rootPos,
			Err:  errors.New("the document root must be a script"),
		}
	}
	return root, nil
}

// decoder consumes tree events and drives the push-down automaton.
// All state is per-call; nothing survives a Decode invocation.
type decoder struct {
	stack    []frame
	table    map[string]*expr.Expr
	root     Node
	rootKind string
	rootPos  tree.Position
}

type frame struct {
	st   state
	b    builder
	name string
	pos  tree.Position
	// cond is the resolved "if" expression awaiting the node's end.
	cond *expr.Expr
	// tokens accumulates an expression body; tok is a single pending
	// token element.
	tokens []expr.Token
	tok    expr.Token
}

func (d *decoder) StartElement(name string, attrs []tree.Attr, pos tree.Position) error {
	st := stateRoot
	if len(d.stack) > 0 {
		st = d.stack[len(d.stack)-1].st
	}
	atRoot := len(d.stack) == 1

	tr, err := dispatch(st, name, atRoot)
	if err != nil {
		return &SchemaError{Kind: name, Pos: pos, Err: err}
	}

	f := frame{st: tr.next, name: name, pos: pos}
	switch tr.next {
	case stateExprTable:
		// The table itself carries nothing.
	case stateExprBody:
		if len(attrs) > 0 {
			return &SchemaError{Kind: name, Pos: pos, Err: errors.New("expression entries carry no attributes")}
		}
	case stateToken:
		tok, err := tokenFromElement(name, attrs)
		if err != nil {
			return &SchemaError{Kind: name, Pos: pos, Err: err}
		}
		f.tok = tok
	default:
		b := tr.make(name)
		for _, a := range attrs {
			if a.Key == AttrIf {
				cond, err := d.resolveIf(a, pos)
				if err != nil {
					return err
				}
				f.cond = cond
				continue
			}
			if err := b.set(a.Key, a.Value); err != nil {
				return &SchemaError{Kind: name, Pos: pos, Err: err}
			}
		}
		f.b = b
	}
	d.stack = append(d.stack, f)
	return nil
}

func (d *decoder) EndElement(name string, pos tree.Position) error {
	f := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]

	switch f.st {
	case stateExprTable:
		return nil
	case stateToken:
		parent := &d.stack[len(d.stack)-1]
		parent.tokens = append(parent.tokens, f.tok)
		return nil
	case stateExprBody:
		e, err := expr.New(f.tokens...)
		if err != nil {
			return &SchemaError{Kind: f.name, Pos: f.pos, Err: errors.Wrap(err, "invalid expression")}
		}
		if _, dup := d.table[f.name]; dup {
			return &SchemaError{Kind: f.name, Pos: f.pos, Err: errors.New("duplicate expression id")}
		}
		d.table[f.name] = e
		return nil
	}

	n, err := f.b.build()
	if err != nil {
		return &SchemaError{Kind: f.name, Pos: pos, Err: err}
	}
	if f.cond != nil {
		n = &Condition{If: f.cond, Then: n}
	}
	if len(d.stack) == 0 {
		d.root = n
		d.rootKind = f.name
		d.rootPos = f.pos
		return nil
	}
	parent := &d.stack[len(d.stack)-1]
	if err := parent.b.child(n); err != nil {
		return &SchemaError{Kind: f.name, Pos: pos, Err: err}
	}
	return nil
}

// resolveIf looks the referenced expression up in the table built from
// the document's expressions dictionary. Declarations must precede the
// first reference; a miss is fatal.
func (d *decoder) resolveIf(a tree.Attr, pos tree.Position) (*expr.Expr, error) {
	id, ok := a.Value.AsString()
	if !ok {
		return nil, &SchemaError{
			Kind: AttrIf,
			Pos:  pos,
			Err:  errors.Errorf("an %q attribute must name an expression, got %s", AttrIf, a.Value.Kind()),
		}
	}
	e := d.table[id]
	if e == nil {
		return nil, &UnresolvedError{ID: id, Pos: pos}
	}
	return e, nil
}

func tokenFromElement(kind string, attrs []tree.Attr) (expr.Token, error) {
	switch kind {
	case kindLiteral:
		var tok expr.Token
		for _, a := range attrs {
			if a.Key != "value" {
				return nil, errUnknownAttr(a.Key)
			}
			tok = expr.Literal{Value: a.Value}
		}
		if tok == nil {
			return nil, errors.New("a literal token requires a value")
		}
		return tok, nil
	case kindOperator:
		name, err := singleNameAttr(kind, attrs)
		if err != nil {
			return nil, err
		}
		op, ok := expr.OperatorByName(name)
		if !ok {
			return nil, errors.Errorf("unknown operator %q", name)
		}
		return op, nil
	case kindVariable:
		name, err := singleNameAttr(kind, attrs)
		if err != nil {
			return nil, err
		}
		return expr.Variable{Name: name}, nil
	}
	return nil, errors.Errorf("not an expression token kind: %q", kind)
}

func singleNameAttr(kind string, attrs []tree.Attr) (string, error) {
	name := ""
	for _, a := range attrs {
		if a.Key != "name" {
			return "", errUnknownAttr(a.Key)
		}
		s, ok := a.Value.AsString()
		if !ok {
			return "", errors.Errorf("a %s token's name must be a string", kind)
		}
		name = s
	}
	if name == "" {
		return "", errors.Errorf("a %s token requires a name", kind)
	}
	return name, nil
}

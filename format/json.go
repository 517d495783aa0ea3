// Package format writes blueprint script ASTs back out as documents:
// the exact inverse of the script package's reader, with expression
// interning and deterministic key order.
package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/blueprint/script"
	"github.com/dhamidi/blueprint/value"
)

// ScriptEncoder writes a script document to w, pretty-printed.
type ScriptEncoder struct {
	w io.Writer
}

func NewScriptEncoder(w io.Writer) *ScriptEncoder {
	return &ScriptEncoder{w: w}
}

func (e *ScriptEncoder) Encode(s *script.Script) error {
	text, err := e.MarshalText(s)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ScriptEncoder) MarshalText(s *script.Script) ([]byte, error) {
	return MarshalIndent(s)
}

// Marshal serializes the AST as a compact document.
func Marshal(s *script.Script) ([]byte, error) {
	root, err := buildDocument(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(root)
}

// MarshalIndent is the pretty-printed variant of Marshal.
func MarshalIndent(s *script.Script) ([]byte, error) {
	root, err := buildDocument(s)
	if err != nil {
		return nil, err
	}
	return marshalIndentValue(root)
}

func marshalIndentValue(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// buildDocument walks the AST depth-first and assembles the generic
// JSON tree. Expression ids are assigned while walking the body; the
// finished table lands on the root between its attributes and its
// children, matching the reader's declare-before-use requirement.
func buildDocument(s *script.Script) (*object, error) {
	wr := &writer{intern: newInterner()}
	root, err := wr.node(s)
	if err != nil {
		return nil, err
	}
	if !wr.intern.empty() {
		at := len(root.keys)
		for i, key := range root.keys {
			if key == script.KeyMethods || key == script.KeyChildren {
				at = i
				break
			}
		}
		root.insert(at, script.KeyExpressions, wr.intern.table())
	}
	return root, nil
}

type writer struct {
	intern *interner
}

// body splits a node list into the methods table (emitted as an
// object-role key on the enclosing node) and the ordered children.
func (wr *writer) body(nodes []script.Node) (*object, []any, error) {
	var methods *object
	children := []any{}
	for _, n := range nodes {
		if m, ok := n.(*script.Methods); ok {
			table, err := wr.methodsTable(m)
			if err != nil {
				return nil, nil, err
			}
			methods = table
			continue
		}
		child, err := wr.node(n)
		if err != nil {
			return nil, nil, err
		}
		children = append(children, child)
	}
	return methods, children, nil
}

func (wr *writer) methodsTable(m *script.Methods) (*object, error) {
	table := newObject()
	for _, entry := range m.Entries {
		method := entry
		var cond *script.Condition
		if c, ok := entry.(*script.Condition); ok {
			cond = c
			method = c.Then
		}
		def, ok := method.(*script.Method)
		if !ok {
			return nil, fmt.Errorf("methods table holds a %s, expected a method", method.NodeKind())
		}
		o := newObject()
		if cond != nil {
			o.set(script.AttrIf, wr.intern.intern(cond.If))
		}
		methods, children, err := wr.body(def.Body)
		if err != nil {
			return nil, err
		}
		if methods != nil {
			o.set(script.KeyMethods, methods)
		}
		o.set(script.KeyChildren, children)
		table.set(def.Name, o)
	}
	return table, nil
}

// node emits one AST node as a generic tree node. A Condition is not a
// node of its own: its wrapped node is emitted with an "if" attribute
// referencing the interned expression.
func (wr *writer) node(n script.Node) (*object, error) {
	if c, ok := n.(*script.Condition); ok {
		o, err := wr.node(c.Then)
		if err != nil {
			return nil, err
		}
		o.insert(1, script.AttrIf, wr.intern.intern(c.If))
		return o, nil
	}

	o := newObject()
	var body []script.Node

	switch t := n.(type) {
	case *script.Script:
		o.set("kind", "script")
		setString(o, "name", t.Name)
		body = t.Body
	case *script.Step:
		o.set("kind", "step")
		setString(o, "name", t.Name)
		body = t.Body
	case *script.Method:
		o.set("kind", "method")
		body = t.Body
	case *script.Call:
		o.set("kind", "call")
		setString(o, "method", t.Method)
		body = t.Body
	case *script.Inputs:
		o.set("kind", "inputs")
		body = t.Items
	case *script.BooleanInput:
		o.set("kind", "boolean")
		setString(o, "name", t.Name)
		setString(o, "label", t.Label)
		setValue(o, "default", t.Default)
		body = t.Body
	case *script.TextInput:
		o.set("kind", "text")
		setString(o, "name", t.Name)
		setString(o, "label", t.Label)
		setValue(o, "default", t.Default)
		body = t.Body
	case *script.EnumInput:
		o.set("kind", "enum")
		setString(o, "name", t.Name)
		setString(o, "label", t.Label)
		setValue(o, "default", t.Default)
		body = t.Items
	case *script.ListInput:
		o.set("kind", "list")
		setString(o, "name", t.Name)
		setString(o, "label", t.Label)
		setValue(o, "default", t.Default)
		body = t.Items
	case *script.Option:
		o.set("kind", "option")
		setString(o, "name", t.Name)
		setString(o, "label", t.Label)
		body = t.Body
	case *script.Presets:
		o.set("kind", "presets")
		body = t.Items
	case *script.BooleanPreset:
		o.set("kind", "boolean")
		setString(o, "name", t.Name)
		setValue(o, "value", t.Value)
	case *script.TextPreset:
		o.set("kind", "text")
		setString(o, "name", t.Name)
		setValue(o, "value", t.Value)
	case *script.EnumPreset:
		o.set("kind", "enum")
		setString(o, "name", t.Name)
		body = t.Values
	case *script.ListPreset:
		o.set("kind", "list")
		setString(o, "name", t.Name)
		body = t.Values
	case *script.PresetValue:
		o.set("kind", "value")
		o.set("value", t.Value)
	case *script.Output:
		o.set("kind", "output")
		for _, a := range t.Attrs {
			o.set(a.Key, a.Value)
		}
		body = t.Body
	case *script.Model:
		o.set("kind", "model")
		setString(o, "name", t.Name)
		body = t.Body
	case *script.ModelList:
		o.set("kind", "model-list")
		setString(o, "name", t.Name)
		body = t.Body
	case *script.ModelValue:
		o.set("kind", "model-value")
		o.set("value", t.Value)
		body = t.Body
	case *script.Block:
		o.set("kind", t.KindName)
		for _, a := range t.Attrs {
			o.set(a.Key, a.Value)
		}
		body = t.Body
	case *script.Methods:
		return nil, fmt.Errorf("a methods table cannot appear outside a node body")
	default:
		return nil, fmt.Errorf("cannot serialize node kind %s", n.NodeKind())
	}

	methods, children, err := wr.body(body)
	if err != nil {
		return nil, err
	}
	if methods != nil {
		o.set(script.KeyMethods, methods)
	}
	o.set(script.KeyChildren, children)
	return o, nil
}

func setString(o *object, key, s string) {
	if s != "" {
		o.set(key, value.StringVal(s))
	}
}

func setValue(o *object, key string, v value.Value) {
	if !v.IsNull() {
		o.set(key, v)
	}
}

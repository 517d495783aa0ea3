package format

import (
	"fmt"

	"github.com/dhamidi/blueprint/expr"
)

// interner assigns one id per structurally distinct expression, in
// first-seen order. Repeated encounters reuse the existing id, so a
// document never carries duplicate table entries.
type interner struct {
	ids     map[string]string
	entries []internEntry
}

type internEntry struct {
	id string
	e  *expr.Expr
}

func newInterner() *interner {
	return &interner{ids: make(map[string]string)}
}

func (in *interner) intern(e *expr.Expr) string {
	fp := e.Fingerprint()
	if id, ok := in.ids[fp]; ok {
		return id
	}
	id := fmt.Sprintf("e%d", len(in.entries)+1)
	in.ids[fp] = id
	in.entries = append(in.entries, internEntry{id: id, e: e})
	return id
}

func (in *interner) empty() bool {
	return len(in.entries) == 0
}

// table renders the expressions dictionary, keyed by id, each entry a
// token-node array.
func (in *interner) table() *object {
	o := newObject()
	for _, entry := range in.entries {
		o.set(entry.id, expressionTokens(entry.e))
	}
	return o
}

func expressionTokens(e *expr.Expr) []any {
	tokens := e.Tokens()
	out := make([]any, len(tokens))
	for i, tok := range tokens {
		o := newObject()
		switch t := tok.(type) {
		case expr.Literal:
			o.set("kind", "literal")
			o.set("value", t.Value)
		case expr.Operator:
			o.set("kind", "operator")
			o.set("name", t.Name())
		case expr.Variable:
			o.set("kind", "variable")
			o.set("name", t.Name)
		}
		out[i] = o
	}
	return out
}

// MarshalExpression renders an expression's flat token list as the
// JSON array the document format embeds in its expressions dictionary.
func MarshalExpression(e *expr.Expr) ([]byte, error) {
	return marshalIndentValue(expressionTokens(e))
}

package script

import (
	"fmt"

	"github.com/dhamidi/blueprint/tree"
)

// SchemaError reports an element kind that is illegal for the reader's
// current state, an attribute a kind does not own, or an enumerated
// value outside its closed set. It wraps the lower-level cause.
type SchemaError struct {
	Kind string
	Pos  tree.Position
	Err  error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: kind %q: %s", e.Pos, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: kind %q is not allowed here", e.Pos, e.Kind)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// UnresolvedError reports an "if" attribute naming an expression id
// that was never declared. It aborts the read.
type UnresolvedError struct {
	ID  string
	Pos tree.Position
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("%s: unresolved expression reference %q", e.Pos, e.ID)
}

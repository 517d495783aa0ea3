package script

import "github.com/dhamidi/blueprint/tree"

// Reference schema key set.
const (
	KeyKind        = "kind"
	KeyChildren    = "children"
	KeyMethods     = "methods"
	KeyExpressions = "expressions"
	AttrIf         = "if"
)

// Document kind names.
const (
	kindScript      = "script"
	kindStep        = "step"
	kindMethod      = "method"
	kindMethods     = "methods"
	kindCall        = "call"
	kindInputs      = "inputs"
	kindPresets     = "presets"
	kindBoolean     = "boolean"
	kindText        = "text"
	kindEnum        = "enum"
	kindList        = "list"
	kindOption      = "option"
	kindValue       = "value"
	kindOutput      = "output"
	kindModel       = "model"
	kindModelList   = "model-list"
	kindModelValue  = "model-value"
	kindExpressions = "expressions"
	kindLiteral     = "literal"
	kindOperator    = "operator"
	kindVariable    = "variable"
)

// ClassifyKey is the reference-schema key classifier for the tree
// parser: "kind" names the node, "children" holds the ordered child
// array, "methods" and "expressions" are dictionaries of named
// sub-nodes, and everything else is a plain attribute.
func ClassifyKey(key string) tree.Role {
	switch key {
	case KeyKind:
		return tree.RoleName
	case KeyChildren:
		return tree.RoleChildren
	case KeyMethods, KeyExpressions:
		return tree.RoleObject
	default:
		return tree.RoleUnknown
	}
}

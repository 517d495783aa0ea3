// Package script defines the typed AST for blueprint project-template
// scripts and the reader that reconstructs it from the generic tree
// events of package tree.
package script

import (
	"github.com/dhamidi/blueprint/expr"
	"github.com/dhamidi/blueprint/tree"
	"github.com/dhamidi/blueprint/value"
)

type Kind int

const (
	KindScript Kind = iota
	KindStep
	KindMethod
	KindMethods
	KindCall
	KindInputs
	KindBooleanInput
	KindTextInput
	KindEnumInput
	KindListInput
	KindOption
	KindPresets
	KindBooleanPreset
	KindTextPreset
	KindEnumPreset
	KindListPreset
	KindPresetValue
	KindOutput
	KindModel
	KindModelList
	KindModelValue
	KindBlock
	KindCondition
)

var kindNames = map[Kind]string{
	KindScript:        "script",
	KindStep:          "step",
	KindMethod:        "method",
	KindMethods:       "methods",
	KindCall:          "call",
	KindInputs:        "inputs",
	KindBooleanInput:  "boolean input",
	KindTextInput:     "text input",
	KindEnumInput:     "enum input",
	KindListInput:     "list input",
	KindOption:        "option",
	KindPresets:       "presets",
	KindBooleanPreset: "boolean preset",
	KindTextPreset:    "text preset",
	KindEnumPreset:    "enum preset",
	KindListPreset:    "list preset",
	KindPresetValue:   "preset value",
	KindOutput:        "output",
	KindModel:         "model",
	KindModelList:     "model list",
	KindModelValue:    "model value",
	KindBlock:         "block",
	KindCondition:     "condition",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Node is the closed set of AST nodes. Consumers dispatch with an
// exhaustive type switch; the unexported method keeps the set closed.
type Node interface {
	NodeKind() Kind
	node()
}

// Script is the document root.
type Script struct {
	Name string
	Body []Node
}

// Step is one ordered executable statement group.
type Step struct {
	Name string
	Body []Node
}

// Method is a named, callable statement group. Its name normally comes
// from the enclosing methods-table key.
type Method struct {
	Name string
	Body []Node
}

// Methods is the table of callable methods, in declaration order.
// Entries are *Method, possibly wrapped in a Condition.
type Methods struct {
	Entries []Node
}

// Call invokes a method by name.
type Call struct {
	Method string
	Body   []Node
}

// Inputs groups the user-facing input declarations.
type Inputs struct {
	Items []Node
}

type BooleanInput struct {
	Name    string
	Label   string
	Default value.Value
	Body    []Node
}

type TextInput struct {
	Name    string
	Label   string
	Default value.Value
	Body    []Node
}

// EnumInput holds nested options; its children stay in input context.
type EnumInput struct {
	Name    string
	Label   string
	Default value.Value
	Items   []Node
}

type ListInput struct {
	Name    string
	Label   string
	Default value.Value
	Items   []Node
}

// Option is one selectable choice; its children are executable.
type Option struct {
	Name  string
	Label string
	Body  []Node
}

// Presets groups preset declarations that pre-answer inputs.
type Presets struct {
	Items []Node
}

type BooleanPreset struct {
	Name  string
	Value value.Value
}

type TextPreset struct {
	Name  string
	Value value.Value
}

type EnumPreset struct {
	Name   string
	Values []Node
}

type ListPreset struct {
	Name   string
	Values []Node
}

type PresetValue struct {
	Value value.Value
}

// Output declares a generated artifact; attributes are kept verbatim.
type Output struct {
	Attrs []tree.Attr
	Body  []Node
}

type Model struct {
	Name string
	Body []Node
}

type ModelList struct {
	Name string
	Body []Node
}

type ModelValue struct {
	Value value.Value
	Body  []Node
}

// Block is the generic fallback for kinds without a dedicated type.
// KindName is the document kind; attributes are kept in order.
type Block struct {
	KindName string
	Attrs    []tree.Attr
	Body     []Node
}

// Condition guards a node with an expression. It never appears as a
// node of its own in the JSON encoding; the reader materializes it from
// an "if" attribute and the writer folds it back into one.
type Condition struct {
	If   *expr.Expr
	Then Node
}

func (*Script) NodeKind() Kind        { return KindScript }
func (*Step) NodeKind() Kind          { return KindStep }
func (*Method) NodeKind() Kind        { return KindMethod }
func (*Methods) NodeKind() Kind       { return KindMethods }
func (*Call) NodeKind() Kind          { return KindCall }
func (*Inputs) NodeKind() Kind        { return KindInputs }
func (*BooleanInput) NodeKind() Kind  { return KindBooleanInput }
func (*TextInput) NodeKind() Kind     { return KindTextInput }
func (*EnumInput) NodeKind() Kind     { return KindEnumInput }
func (*ListInput) NodeKind() Kind     { return KindListInput }
func (*Option) NodeKind() Kind        { return KindOption }
func (*Presets) NodeKind() Kind       { return KindPresets }
func (*BooleanPreset) NodeKind() Kind { return KindBooleanPreset }
func (*TextPreset) NodeKind() Kind    { return KindTextPreset }
func (*EnumPreset) NodeKind() Kind    { return KindEnumPreset }
func (*ListPreset) NodeKind() Kind    { return KindListPreset }
func (*PresetValue) NodeKind() Kind   { return KindPresetValue }
func (*Output) NodeKind() Kind        { return KindOutput }
func (*Model) NodeKind() Kind         { return KindModel }
func (*ModelList) NodeKind() Kind     { return KindModelList }
func (*ModelValue) NodeKind() Kind    { return KindModelValue }
func (*Block) NodeKind() Kind         { return KindBlock }
func (*Condition) NodeKind() Kind     { return KindCondition }

func (*Script) node()        {}
func (*Step) node()          {}
func (*Method) node()        {}
func (*Methods) node()       {}
func (*Call) node()          {}
func (*Inputs) node()        {}
func (*BooleanInput) node()  {}
func (*TextInput) node()     {}
func (*EnumInput) node()     {}
func (*ListInput) node()     {}
func (*Option) node()        {}
func (*Presets) node()       {}
func (*BooleanPreset) node() {}
func (*TextPreset) node()    {}
func (*EnumPreset) node()    {}
func (*ListPreset) node()    {}
func (*PresetValue) node()   {}
func (*Output) node()        {}
func (*Model) node()         {}
func (*ModelList) node()     {}
func (*ModelValue) node()    {}
func (*Block) node()         {}
func (*Condition) node()     {}

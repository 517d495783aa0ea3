package script

import (
	"github.com/pkg/errors"

	"github.com/dhamidi/blueprint/tree"
	"github.com/dhamidi/blueprint/value"
)

// builder is the open, mutable form of a node under construction.
// Attributes are applied on element start, children attached as they
// finish, and build consumes the open form exactly once on element end.
type builder interface {
	set(key string, v value.Value) error
	child(n Node) error
	build() (Node, error)
}

func stringAttr(key string, v value.Value) (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", errors.Errorf("attribute %q must be a string, got %s", key, v.Kind())
	}
	return s, nil
}

func errUnknownAttr(key string) error {
	return errors.Errorf("unknown attribute %q", key)
}

type scriptBuilder struct {
	name string
	body []Node
}

func (b *scriptBuilder) set(key string, v value.Value) error {
	if key != "name" {
		return errUnknownAttr(key)
	}
	name, err := stringAttr(key, v)
	b.name = name
	return err
}

func (b *scriptBuilder) child(n Node) error {
	b.body = append(b.body, n)
	return nil
}

func (b *scriptBuilder) build() (Node, error) {
	return &Script{Name: b.name, Body: b.body}, nil
}

type stepBuilder struct {
	name string
	body []Node
}

func (b *stepBuilder) set(key string, v value.Value) error {
	if key != "name" {
		return errUnknownAttr(key)
	}
	name, err := stringAttr(key, v)
	b.name = name
	return err
}

func (b *stepBuilder) child(n Node) error {
	b.body = append(b.body, n)
	return nil
}

func (b *stepBuilder) build() (Node, error) {
	return &Step{Name: b.name, Body: b.body}, nil
}

type methodBuilder struct {
	name string
	body []Node
}

func (b *methodBuilder) set(key string, v value.Value) error {
	return errUnknownAttr(key)
}

func (b *methodBuilder) child(n Node) error {
	b.body = append(b.body, n)
	return nil
}

func (b *methodBuilder) build() (Node, error) {
	return &Method{Name: b.name, Body: b.body}, nil
}

type methodsBuilder struct {
	entries []Node
}

func (b *methodsBuilder) set(key string, v value.Value) error {
	return errUnknownAttr(key)
}

func (b *methodsBuilder) child(n Node) error {
	switch c := n.(type) {
	case *Method:
	case *Condition:
		if _, ok := c.Then.(*Method); !ok {
			return errors.Errorf("a methods table may only hold methods, got %s", c.Then.NodeKind())
		}
	default:
		return errors.Errorf("a methods table may only hold methods, got %s", n.NodeKind())
	}
	b.entries = append(b.entries, n)
	return nil
}

func (b *methodsBuilder) build() (Node, error) {
	return &Methods{Entries: b.entries}, nil
}

type callBuilder struct {
	method string
	body   []Node
}

func (b *callBuilder) set(key string, v value.Value) error {
	if key != "method" {
		return errUnknownAttr(key)
	}
	method, err := stringAttr(key, v)
	b.method = method
	return err
}

func (b *callBuilder) child(n Node) error {
	b.body = append(b.body, n)
	return nil
}

func (b *callBuilder) build() (Node, error) {
	if b.method == "" {
		return nil, errors.New("call requires a method name")
	}
	return &Call{Method: b.method, Body: b.body}, nil
}

type inputsBuilder struct {
	items []Node
}

func (b *inputsBuilder) set(key string, v value.Value) error {
	return errUnknownAttr(key)
}

func (b *inputsBuilder) child(n Node) error {
	b.items = append(b.items, n)
	return nil
}

func (b *inputsBuilder) build() (Node, error) {
	return &Inputs{Items: b.items}, nil
}

// inputBuilder covers the four value-bearing input kinds; kind selects
// the concrete node on build.
type inputBuilder struct {
	kind  Kind
	name  string
	label string
	def   value.Value
	body  []Node
}

func (b *inputBuilder) set(key string, v value.Value) error {
	switch key {
	case "name":
		name, err := stringAttr(key, v)
		b.name = name
		return err
	case "label":
		label, err := stringAttr(key, v)
		b.label = label
		return err
	case "default":
		return b.setDefault(v)
	default:
		return errUnknownAttr(key)
	}
}

func (b *inputBuilder) setDefault(v value.Value) error {
	if v.IsNull() {
		b.def = v
		return nil
	}
	switch b.kind {
	case KindBooleanInput:
		if v.Kind() != value.KindBool {
			return errors.Errorf("default for a boolean input must be a boolean, got %s", v.Kind())
		}
	case KindTextInput, KindEnumInput:
		if v.Kind() != value.KindString {
			return errors.Errorf("default for a %s must be a string, got %s", b.kind, v.Kind())
		}
	case KindListInput:
		if v.Kind() != value.KindString && v.Kind() != value.KindStrings {
			return errors.Errorf("default for a list input must be a string or string list, got %s", v.Kind())
		}
	}
	b.def = v
	return nil
}

func (b *inputBuilder) child(n Node) error {
	b.body = append(b.body, n)
	return nil
}

func (b *inputBuilder) build() (Node, error) {
	switch b.kind {
	case KindBooleanInput:
		return &BooleanInput{Name: b.name, Label: b.label, Default: b.def, Body: b.body}, nil
	case KindTextInput:
		return &TextInput{Name: b.name, Label: b.label, Default: b.def, Body: b.body}, nil
	case KindEnumInput:
		return &EnumInput{Name: b.name, Label: b.label, Default: b.def, Items: b.body}, nil
	case KindListInput:
		return &ListInput{Name: b.name, Label: b.label, Default: b.def, Items: b.body}, nil
	}
	return nil, errors.Errorf("not an input kind: %s", b.kind)
}

type optionBuilder struct {
	name  string
	label string
	body  []Node
}

func (b *optionBuilder) set(key string, v value.Value) error {
	switch key {
	case "name":
		name, err := stringAttr(key, v)
		b.name = name
		return err
	case "label":
		label, err := stringAttr(key, v)
		b.label = label
		return err
	default:
		return errUnknownAttr(key)
	}
}

func (b *optionBuilder) child(n Node) error {
	b.body = append(b.body, n)
	return nil
}

func (b *optionBuilder) build() (Node, error) {
	return &Option{Name: b.name, Label: b.label, Body: b.body}, nil
}

type presetsBuilder struct {
	items []Node
}

func (b *presetsBuilder) set(key string, v value.Value) error {
	return errUnknownAttr(key)
}

func (b *presetsBuilder) child(n Node) error {
	b.items = append(b.items, n)
	return nil
}

func (b *presetsBuilder) build() (Node, error) {
	return &Presets{Items: b.items}, nil
}

type presetBuilder struct {
	kind   Kind
	name   string
	val    value.Value
	values []Node
}

func (b *presetBuilder) set(key string, v value.Value) error {
	switch key {
	case "name":
		name, err := stringAttr(key, v)
		b.name = name
		return err
	case "value":
		if b.kind != KindBooleanPreset && b.kind != KindTextPreset {
			return errors.Errorf("a %s carries values as children, not a %q attribute", b.kind, key)
		}
		b.val = v
		return nil
	default:
		return errUnknownAttr(key)
	}
}

func (b *presetBuilder) child(n Node) error {
	if b.kind != KindEnumPreset && b.kind != KindListPreset {
		return errors.Errorf("a %s has no children", b.kind)
	}
	b.values = append(b.values, n)
	return nil
}

func (b *presetBuilder) build() (Node, error) {
	switch b.kind {
	case KindBooleanPreset:
		return &BooleanPreset{Name: b.name, Value: b.val}, nil
	case KindTextPreset:
		return &TextPreset{Name: b.name, Value: b.val}, nil
	case KindEnumPreset:
		return &EnumPreset{Name: b.name, Values: b.values}, nil
	case KindListPreset:
		return &ListPreset{Name: b.name, Values: b.values}, nil
	}
	return nil, errors.Errorf("not a preset kind: %s", b.kind)
}

type presetValueBuilder struct {
	val value.Value
}

func (b *presetValueBuilder) set(key string, v value.Value) error {
	if key != "value" {
		return errUnknownAttr(key)
	}
	b.val = v
	return nil
}

func (b *presetValueBuilder) child(n Node) error {
	return errors.New("a preset value has no children")
}

func (b *presetValueBuilder) build() (Node, error) {
	return &PresetValue{Value: b.val}, nil
}

type outputBuilder struct {
	attrs []tree.Attr
	body  []Node
}

func (b *outputBuilder) set(key string, v value.Value) error {
	b.attrs = append(b.attrs, tree.Attr{Key: key, Value: v})
	return nil
}

func (b *outputBuilder) child(n Node) error {
	b.body = append(b.body, n)
	return nil
}

func (b *outputBuilder) build() (Node, error) {
	return &Output{Attrs: b.attrs, Body: b.body}, nil
}

type modelBuilder struct {
	kind Kind
	name string
	val  value.Value
	body []Node
}

func (b *modelBuilder) set(key string, v value.Value) error {
	switch {
	case key == "name" && b.kind != KindModelValue:
		name, err := stringAttr(key, v)
		b.name = name
		return err
	case key == "value" && b.kind == KindModelValue:
		b.val = v
		return nil
	default:
		return errUnknownAttr(key)
	}
}

func (b *modelBuilder) child(n Node) error {
	b.body = append(b.body, n)
	return nil
}

func (b *modelBuilder) build() (Node, error) {
	switch b.kind {
	case KindModel:
		return &Model{Name: b.name, Body: b.body}, nil
	case KindModelList:
		return &ModelList{Name: b.name, Body: b.body}, nil
	case KindModelValue:
		return &ModelValue{Value: b.val, Body: b.body}, nil
	}
	return nil, errors.Errorf("not a model kind: %s", b.kind)
}

type blockBuilder struct {
	kindName string
	attrs    []tree.Attr
	body     []Node
}

func (b *blockBuilder) set(key string, v value.Value) error {
	b.attrs = append(b.attrs, tree.Attr{Key: key, Value: v})
	return nil
}

func (b *blockBuilder) child(n Node) error {
	b.body = append(b.body, n)
	return nil
}

func (b *blockBuilder) build() (Node, error) {
	return &Block{KindName: b.kindName, Attrs: b.attrs, Body: b.body}, nil
}

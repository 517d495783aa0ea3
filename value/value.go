// Package value defines the closed set of scalar values a blueprint
// document can carry: strings, booleans, string lists and null. It is
// shared by node attributes and expression literals.
package value

import (
	"encoding/json"
	"strconv"
	"strings"
)

type Kind int

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindStrings
)

var kindNames = map[Kind]string{
	KindNull:    "null",
	KindString:  "string",
	KindBool:    "bool",
	KindStrings: "string list",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Value is an immutable tagged variant. The zero Value is null.
type Value struct {
	kind Kind
	str  string
	b    bool
	list []string
}

func NullVal() Value {
	return Value{kind: KindNull}
}

func StringVal(s string) Value {
	return Value{kind: KindString, str: s}
}

func BoolVal(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func StringsVal(items ...string) Value {
	list := make([]string, len(items))
	copy(list, items)
	return Value{kind: KindStrings, list: list}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString reports the string content, with ok false for other kinds.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) AsStrings() ([]string, bool) {
	if v.kind != KindStrings {
		return nil, false
	}
	list := make([]string, len(v.list))
	copy(list, v.list)
	return list, true
}

func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindStrings:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders the value the way the expression language writes
// literals: quoted strings, bare booleans, bracketed lists, null.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindStrings:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(item))
		}
		sb.WriteByte(']')
		return sb.String()
	default:
		return "null"
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindBool:
		return json.Marshal(v.b)
	case KindStrings:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}

package expr

import (
	"github.com/dhamidi/blueprint/value"
)

// Operator is one of the fixed connectives of the expression language.
// Operators double as expression tokens.
type Operator int

const (
	OpEquals Operator = iota
	OpNotEquals
	OpAnd
	OpOr
	OpNot
	OpContains
	OpOpenParen
	OpCloseParen
)

var operatorNames = map[Operator]string{
	OpEquals:     "equals",
	OpNotEquals:  "not-equals",
	OpAnd:        "and",
	OpOr:         "or",
	OpNot:        "not",
	OpContains:   "contains",
	OpOpenParen:  "open-paren",
	OpCloseParen: "close-paren",
}

var operatorSymbols = map[Operator]string{
	OpEquals:     "==",
	OpNotEquals:  "!=",
	OpAnd:        "&&",
	OpOr:         "||",
	OpNot:        "!",
	OpContains:   "contains",
	OpOpenParen:  "(",
	OpCloseParen: ")",
}

// Name returns the stable name used in the serialized token form.
func (o Operator) Name() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return "unknown"
}

// String returns the operator as the text form writes it.
func (o Operator) String() string {
	if sym, ok := operatorSymbols[o]; ok {
		return sym
	}
	return "unknown"
}

// OperatorByName resolves a serialized operator name. The name set is
// closed; ok is false for anything else.
func OperatorByName(name string) (Operator, bool) {
	for op, n := range operatorNames {
		if n == name {
			return op, true
		}
	}
	return 0, false
}

// Token is one element of a flat expression token sequence: a Literal,
// a Variable or an Operator.
type Token interface {
	isToken()
}

// Literal carries a constant value.
type Literal struct {
	Value value.Value
}

// Variable references a script variable by name.
type Variable struct {
	Name string
}

func (Literal) isToken()  {}
func (Variable) isToken() {}
func (Operator) isToken() {}

// TokenEqual compares two tokens structurally.
func TokenEqual(a, b Token) bool {
	switch at := a.(type) {
	case Literal:
		bt, ok := b.(Literal)
		return ok && at.Value.Equal(bt.Value)
	case Variable:
		bt, ok := b.(Variable)
		return ok && at.Name == bt.Name
	case Operator:
		bt, ok := b.(Operator)
		return ok && at == bt
	default:
		return false
	}
}

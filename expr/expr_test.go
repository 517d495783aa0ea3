package expr

import (
	"testing"

	"github.com/dhamidi/blueprint/value"
)

func TestTokenRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
	}{
		{"single literal", []Token{Literal{Value: value.BoolVal(true)}}},
		{"variable", []Token{Variable{Name: "platform"}}},
		{
			"comparison",
			[]Token{Variable{Name: "platform"}, OpEquals, Literal{Value: value.StringVal("jvm")}},
		},
		{
			"parenthesized connectives",
			[]Token{
				Literal{Value: value.BoolVal(true)}, OpEquals, OpOpenParen,
				Literal{Value: value.BoolVal(true)}, OpOr, Literal{Value: value.BoolVal(false)},
				OpCloseParen,
			},
		},
		{
			"contains over a list literal",
			[]Token{
				Literal{Value: value.StringsVal("web", "cli")}, OpContains, Variable{Name: "target"},
			},
		},
		{
			"negation",
			[]Token{OpNot, OpOpenParen, Variable{Name: "a"}, OpAnd, Variable{Name: "b"}, OpCloseParen},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.tokens...)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			back, err := New(e.Tokens()...)
			if err != nil {
				t.Fatalf("New(Tokens()): %v", err)
			}
			if !e.Equal(back) {
				t.Errorf("round trip changed the expression: %s != %s", e, back)
			}
		})
	}
}

func TestNewRejectsMalformedSequences(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
	}{
		{"empty", nil},
		{"trailing operator", []Token{Variable{Name: "a"}, OpAnd}},
		{"leading binary operator", []Token{OpOr, Variable{Name: "a"}}},
		{"adjacent operands", []Token{Variable{Name: "a"}, Variable{Name: "b"}}},
		{"unbalanced open", []Token{OpOpenParen, Variable{Name: "a"}}},
		{"unbalanced close", []Token{Variable{Name: "a"}, OpCloseParen}},
		{"empty group", []Token{OpOpenParen, OpCloseParen}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.tokens...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	a, err := New(Variable{Name: "a"}, OpEquals, Literal{Value: value.StringVal("x")})
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(Variable{Name: "a"}, OpEquals, Literal{Value: value.StringVal("x")})
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(Variable{Name: "a"}, OpNotEquals, Literal{Value: value.StringVal("x")})
	if err != nil {
		t.Fatal(err)
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("structurally equal expressions have different fingerprints")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different expressions share a fingerprint")
	}
}

func TestFingerprintDistinguishesValueKinds(t *testing.T) {
	asBool, err := New(Literal{Value: value.BoolVal(true)})
	if err != nil {
		t.Fatal(err)
	}
	asString, err := New(Literal{Value: value.StringVal("true")})
	if err != nil {
		t.Fatal(err)
	}
	if asBool.Fingerprint() == asString.Fingerprint() {
		t.Error("bool true and string \"true\" share a fingerprint")
	}
}

func TestOperatorByName(t *testing.T) {
	for op, name := range operatorNames {
		got, ok := OperatorByName(name)
		if !ok || got != op {
			t.Errorf("OperatorByName(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := OperatorByName("xor"); ok {
		t.Error("OperatorByName accepted an unknown name")
	}
}

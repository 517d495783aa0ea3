package expr

import (
	"testing"

	"github.com/dhamidi/blueprint/value"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{"true", []Token{Literal{Value: value.BoolVal(true)}}},
		{"platform", []Token{Variable{Name: "platform"}}},
		{`"jvm"`, []Token{Literal{Value: value.StringVal("jvm")}}},
		{"null", []Token{Literal{Value: value.NullVal()}}},
		{
			`platform == "jvm"`,
			[]Token{Variable{Name: "platform"}, OpEquals, Literal{Value: value.StringVal("jvm")}},
		},
		{
			`platform != "native"`,
			[]Token{Variable{Name: "platform"}, OpNotEquals, Literal{Value: value.StringVal("native")}},
		},
		{
			"a && b || c",
			[]Token{Variable{Name: "a"}, OpAnd, Variable{Name: "b"}, OpOr, Variable{Name: "c"}},
		},
		{
			"!ready",
			[]Token{OpNot, Variable{Name: "ready"}},
		},
		{
			"true == (true || false)",
			[]Token{
				Literal{Value: value.BoolVal(true)}, OpEquals, OpOpenParen,
				Literal{Value: value.BoolVal(true)}, OpOr, Literal{Value: value.BoolVal(false)},
				OpCloseParen,
			},
		},
		{
			`tags contains "web"`,
			[]Token{Variable{Name: "tags"}, OpContains, Literal{Value: value.StringVal("web")}},
		},
		{
			`["web", "cli"] contains target`,
			[]Token{Literal{Value: value.StringsVal("web", "cli")}, OpContains, Variable{Name: "target"}},
		},
		{
			`!(a == b) && c`,
			[]Token{
				OpNot, OpOpenParen, Variable{Name: "a"}, OpEquals, Variable{Name: "b"},
				OpCloseParen, OpAnd, Variable{Name: "c"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got := e.Tokens()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d (%s)", len(got), len(tt.want), e)
			}
			for i := range got {
				if !TokenEqual(got[i], tt.want[i]) {
					t.Errorf("token %d: got %#v, want %#v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"a &&",
		"(a",
		"a)",
		"a == == b",
		`["web", true]`,
		`"unterminated`,
		"a # b",
		"[1]",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseStringEscapes(t *testing.T) {
	e, err := Parse(`name == "a\"b\\c"`)
	if err != nil {
		t.Fatal(err)
	}
	lit, ok := e.Tokens()[2].(Literal)
	if !ok {
		t.Fatalf("expected a literal, got %#v", e.Tokens()[2])
	}
	s, _ := lit.Value.AsString()
	if s != `a"b\c` {
		t.Errorf("got %q", s)
	}
}

func TestStringRendersCanonically(t *testing.T) {
	tests := []string{
		"true == (true || false)",
		`platform == "jvm" && !ready`,
		`tags contains "web"`,
		`!(a && b)`,
		`["a", "b"] contains c`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			e, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := e.String(); got != input {
				t.Errorf("String() = %q, want %q", got, input)
			}
		})
	}
}

func TestParseEquivalentTextsShareFingerprint(t *testing.T) {
	a, err := Parse("true == (true || false)")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("true  ==  ( true||false )")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("whitespace changed the parsed expression")
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("fingerprints differ for token-equal expressions")
	}
}

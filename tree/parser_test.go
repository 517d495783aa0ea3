package tree_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/blueprint/tree"
)

func classify(key string) tree.Role {
	switch key {
	case "kind":
		return tree.RoleName
	case "children":
		return tree.RoleChildren
	case "methods", "expressions":
		return tree.RoleObject
	default:
		return tree.RoleUnknown
	}
}

type recorder struct {
	events []string
}

func (r *recorder) StartElement(name string, attrs []tree.Attr, pos tree.Position) error {
	var sb strings.Builder
	sb.WriteString("start " + name)
	for _, a := range attrs {
		sb.WriteString(" " + a.Key + "=" + a.Value.String())
	}
	r.events = append(r.events, sb.String())
	return nil
}

func (r *recorder) EndElement(name string, pos tree.Position) error {
	r.events = append(r.events, "end "+name)
	return nil
}

func parse(t *testing.T, input string) ([]string, error) {
	t.Helper()
	r := &recorder{}
	p := tree.NewParser(tree.NewScanner(strings.NewReader(input)), classify, r)
	err := p.Parse()
	return r.events, err
}

func TestParserEvents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"attributes in order",
			`{"kind":"step","name":"a","flag":true,"tags":["x","y"],"note":null}`,
			[]string{`start step name="a" flag=true tags=["x", "y"] note=null`, "end step"},
		},
		{
			"empty children still yield start and end",
			`{"kind":"step","children":[]}`,
			[]string{"start step", "end step"},
		},
		{
			"no attributes",
			`{"kind":"inputs"}`,
			[]string{"start inputs", "end inputs"},
		},
		{
			"nested children preserve order",
			`{"kind":"script","children":[{"kind":"a"},{"kind":"b","children":[{"kind":"c"}]}]}`,
			[]string{
				"start script",
				"start a", "end a",
				"start b", "start c", "end c", "end b",
				"end script",
			},
		},
		{
			"object role entries are named by their keys",
			`{"kind":"script","methods":{"deploy":{"children":[]},"clean":{}}}`,
			[]string{
				"start script",
				"start methods",
				"start deploy", "end deploy",
				"start clean", "end clean",
				"end methods",
				"end script",
			},
		},
		{
			"object role entry with array value",
			`{"kind":"script","expressions":{"e1":[{"kind":"literal","value":true}]}}`,
			[]string{
				"start script",
				"start expressions",
				"start e1",
				"start literal value=true", "end literal",
				"end e1",
				"end expressions",
				"end script",
			},
		},
		{
			"scalar arrays are attributes, never children",
			`{"kind":"step","tags":["a","b"],"children":[{"kind":"x"}]}`,
			[]string{
				`start step tags=["a", "b"]`,
				"start x", "end x",
				"end step",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(t, tt.input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events, want %d:\n%s", len(got), len(tt.want), strings.Join(got, "\n"))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParserShapeViolations(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ``},
		{"root is not an object", `[]`},
		{"missing kind", `{"name":"a"}`},
		{"kind is not a string", `{"kind":3}`},
		{"duplicate kind", `{"kind":"a","kind":"b"}`},
		{"children not an array", `{"kind":"a","children":{}}`},
		{"scalar inside children", `{"kind":"a","children":[true]}`},
		{"number attribute", `{"kind":"a","n":3}`},
		{"mixed attribute array", `{"kind":"a","tags":["x",true]}`},
		{"object attribute value", `{"kind":"a","meta":{"x":1}}`},
		{"attribute after children", `{"kind":"a","children":[],"late":"x"}`},
		{"table entry is scalar", `{"kind":"a","methods":{"m":3}}`},
		{"kind inside table entry", `{"kind":"a","methods":{"m":{"kind":"b"}}}`},
		{"trailing content", `{"kind":"a"} {"kind":"b"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			var shape *tree.ShapeError
			if !errors.As(err, &shape) {
				t.Fatalf("expected a ShapeError, got %T: %v", err, err)
			}
		})
	}
}

func TestParserReportsPositions(t *testing.T) {
	input := "{\n  \"kind\": \"step\",\n  \"bad\": 12\n}"
	_, err := parse(t, input)
	var shape *tree.ShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("expected a ShapeError, got %v", err)
	}
	if shape.Pos.Line != 3 {
		t.Errorf("error at line %d, want 3 (%v)", shape.Pos.Line, err)
	}
	if shape.Pos.Column != 11 {
		t.Errorf("error at column %d, want 11 (%v)", shape.Pos.Column, err)
	}
}

func TestParserSurfacesSyntaxErrorsUnchanged(t *testing.T) {
	_, err := parse(t, `{"kind": }`)
	if err == nil {
		t.Fatal("expected an error")
	}
	var shape *tree.ShapeError
	if errors.As(err, &shape) {
		t.Fatalf("syntax error was reinterpreted as a shape violation: %v", err)
	}
}

type failingHandler struct {
	recorder
	failOn string
}

func (h *failingHandler) StartElement(name string, attrs []tree.Attr, pos tree.Position) error {
	if name == h.failOn {
		return errors.New("handler rejected " + name)
	}
	return h.recorder.StartElement(name, attrs, pos)
}

func TestParserStopsOnHandlerError(t *testing.T) {
	h := &failingHandler{failOn: "b"}
	p := tree.NewParser(
		tree.NewScanner(strings.NewReader(`{"kind":"a","children":[{"kind":"b"},{"kind":"c"}]}`)),
		classify, h)
	err := p.Parse()
	if err == nil || !strings.Contains(err.Error(), "handler rejected b") {
		t.Fatalf("got %v", err)
	}
	for _, ev := range h.events {
		if strings.Contains(ev, "c") {
			t.Errorf("parser kept walking after the handler error: %v", h.events)
		}
	}
}

package format

import (
	"fmt"
	"strings"

	"github.com/dhamidi/blueprint/script"
)

// Outline renders an indented textual view of the AST, one node per
// line, for inspection on the command line.
func Outline(n script.Node) string {
	var sb strings.Builder
	outline(&sb, n, 0)
	return sb.String()
}

func outline(sb *strings.Builder, n script.Node, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	if c, ok := n.(*script.Condition); ok {
		fmt.Fprintf(sb, "if %s:\n", c.If)
		outline(sb, c.Then, indent+1)
		return
	}
	sb.WriteString(label(n))
	sb.WriteByte('\n')
	for _, child := range childrenOf(n) {
		outline(sb, child, indent+1)
	}
}

func label(n script.Node) string {
	switch t := n.(type) {
	case *script.Script:
		return named("script", t.Name)
	case *script.Step:
		return named("step", t.Name)
	case *script.Method:
		return named("method", t.Name)
	case *script.Methods:
		return "methods"
	case *script.Call:
		return named("call", t.Method)
	case *script.Inputs:
		return "inputs"
	case *script.BooleanInput:
		return named("boolean input", t.Name)
	case *script.TextInput:
		return named("text input", t.Name)
	case *script.EnumInput:
		return named("enum input", t.Name)
	case *script.ListInput:
		return named("list input", t.Name)
	case *script.Option:
		return named("option", t.Name)
	case *script.Presets:
		return "presets"
	case *script.BooleanPreset:
		return named("boolean preset", t.Name)
	case *script.TextPreset:
		return named("text preset", t.Name)
	case *script.EnumPreset:
		return named("enum preset", t.Name)
	case *script.ListPreset:
		return named("list preset", t.Name)
	case *script.PresetValue:
		return "value " + t.Value.String()
	case *script.Output:
		return "output"
	case *script.Model:
		return named("model", t.Name)
	case *script.ModelList:
		return named("model list", t.Name)
	case *script.ModelValue:
		return "model value " + t.Value.String()
	case *script.Block:
		return t.KindName
	default:
		return n.NodeKind().String()
	}
}

func named(kind, name string) string {
	if name == "" {
		return kind
	}
	return kind + " " + name
}

func childrenOf(n script.Node) []script.Node {
	switch t := n.(type) {
	case *script.Script:
		return t.Body
	case *script.Step:
		return t.Body
	case *script.Method:
		return t.Body
	case *script.Methods:
		return t.Entries
	case *script.Call:
		return t.Body
	case *script.Inputs:
		return t.Items
	case *script.BooleanInput:
		return t.Body
	case *script.TextInput:
		return t.Body
	case *script.EnumInput:
		return t.Items
	case *script.ListInput:
		return t.Items
	case *script.Option:
		return t.Body
	case *script.Presets:
		return t.Items
	case *script.EnumPreset:
		return t.Values
	case *script.ListPreset:
		return t.Values
	case *script.Output:
		return t.Body
	case *script.Model:
		return t.Body
	case *script.ModelList:
		return t.Body
	case *script.ModelValue:
		return t.Body
	case *script.Block:
		return t.Body
	case *script.Condition:
		return []script.Node{t.Then}
	default:
		return nil
	}
}

package encode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ferronweb/kdlite/format"
	"github.com/ferronweb/kdlite/ir"
)

func TestGeneric(t *testing.T) {
	doc := ir.NewDocument(
		ir.NewNode("server").WithType("cfg").
			Arg(ir.String("web-1")).
			Prop("port", ir.Integer(8080, 10)).
			TypedArg("u8", ir.Integer(3, 10)).
			Child(ir.NewNode("tls").Arg(ir.Bool(true))),
		ir.NewNode("misc").
			Arg(ir.Null()).
			Arg(ir.Float(2.5)).
			Prop("k", ir.String("old")).
			Prop("k", ir.String("new")))

	want := []any{
		map[string]any{
			"name": "server",
			"type": "cfg",
			"args": []any{
				"web-1",
				map[string]any{"type": "u8", "value": int64(3)},
			},
			"props": map[string]any{"port": int64(8080)},
			"children": []any{
				map[string]any{
					"name": "tls",
					"args": []any{true},
				},
			},
		},
		map[string]any{
			"name":  "misc",
			"args":  []any{nil, 2.5},
			"props": map[string]any{"k": "new"},
		},
	}
	if diff := cmp.Diff(want, Generic(doc)); diff != "" {
		t.Errorf("Generic mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeJSON(t *testing.T) {
	doc := ir.NewDocument(
		ir.NewNode("a").Arg(ir.Integer(1, 10)).Prop("k", ir.String("v")))
	var buf strings.Builder
	if err := Encode(doc, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `[
  {
    "args": [
      1
    ],
    "name": "a",
    "props": {
      "k": "v"
    }
  }
]
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("JSON output mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeTree(t *testing.T) {
	doc := ir.NewDocument(
		ir.NewNode("server").WithType("cfg").
			Arg(ir.String("web-1")).
			Prop("port", ir.Integer(8080, 10)).
			TypedArg("u16", ir.Integer(16, 16)).
			Arg(ir.Integer(-5, 2)).
			Child(ir.NewNode("tls").Arg(ir.Bool(true)).Arg(ir.Null())),
		ir.NewNode("empty").Block())

	var buf strings.Builder
	err := Encode(doc, &buf, EncodeFormat(format.TreeFormat))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := strings.Join([]string{
		"node server (cfg)",
		`  arg "web-1"`,
		"  prop port = 8080",
		"  arg (u16) 0x10",
		"  arg -0b101",
		"  children",
		"    node tls",
		"      arg true",
		"      arg null",
		"node empty",
		"  children (empty)",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("tree output mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeYAML(t *testing.T) {
	doc := ir.NewDocument(ir.NewNode("a").Arg(ir.Integer(1, 10)))
	var buf strings.Builder
	if err := Encode(doc, &buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "name: a") {
		t.Errorf("YAML output missing node name:\n%s", out)
	}
}

func TestRadixInt(t *testing.T) {
	tests := []struct {
		i      int64
		radix  int
		prefix string
		want   string
	}{
		{255, 16, "0x", "0xff"},
		{-255, 16, "0x", "-0xff"},
		{5, 2, "0b", "0b101"},
		{8, 8, "0o", "0o10"},
		{-9223372036854775808, 16, "0x", "-0x8000000000000000"},
	}
	for _, tt := range tests {
		if got := radixInt(tt.i, tt.radix, tt.prefix); got != tt.want {
			t.Errorf("radixInt(%d, %d) = %q, want %q", tt.i, tt.radix, got, tt.want)
		}
	}
}

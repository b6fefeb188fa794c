package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ferronweb/kdlite/diag"
	"github.com/ferronweb/kdlite/ir"
	"github.com/ferronweb/kdlite/token"
)

func mustClean(t *testing.T, in string) *ir.Document {
	t.Helper()
	doc, diags := Parse([]byte(in))
	if len(diags) != 0 {
		t.Fatalf("Parse(%q) diagnostics = %v", in, diags)
	}
	return doc
}

func TestParseOK(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *ir.Document
	}{
		{
			name: "bare node",
			in:   "node",
			want: ir.NewDocument(ir.NewNode("node")),
		},
		{
			name: "args and props",
			in:   `server "web-1" port=8080 tls=#true`,
			want: ir.NewDocument(
				ir.NewNode("server").
					Arg(ir.String("web-1")).
					Prop("port", ir.Integer(8080, 10)).
					Prop("tls", ir.Bool(true))),
		},
		{
			name: "value kinds",
			in:   `n 1 2.5 #null #false "s" 0x10 0b101 0o17`,
			want: ir.NewDocument(
				ir.NewNode("n").
					Arg(ir.Integer(1, 10)).
					Arg(ir.Float(2.5)).
					Arg(ir.Null()).
					Arg(ir.Bool(false)).
					Arg(ir.String("s")).
					Arg(ir.Integer(16, 16)).
					Arg(ir.Integer(5, 2)).
					Arg(ir.Integer(15, 8))),
		},
		{
			name: "children",
			in:   "a {\n  b 1\n  c 2\n}",
			want: ir.NewDocument(
				ir.NewNode("a").
					Child(ir.NewNode("b").Arg(ir.Integer(1, 10))).
					Child(ir.NewNode("c").Arg(ir.Integer(2, 10)))),
		},
		{
			name: "empty children differ from none",
			in:   "a {}\nb",
			want: ir.NewDocument(
				ir.NewNode("a").Block(),
				ir.NewNode("b")),
		},
		{
			name: "nested children",
			in:   "a { b { c } }",
			want: ir.NewDocument(
				ir.NewNode("a").Child(
					ir.NewNode("b").Child(ir.NewNode("c")))),
		},
		{
			name: "semicolon terminators",
			in:   "a; b; c",
			want: ir.NewDocument(ir.NewNode("a"), ir.NewNode("b"), ir.NewNode("c")),
		},
		{
			name: "annotations",
			in:   `(cfg)server (u16)8080 (host)"x" id=(u8)7`,
			want: ir.NewDocument(
				ir.NewNode("server").WithType("cfg").
					TypedArg("u16", ir.Integer(8080, 10)).
					TypedArg("host", ir.String("x")).
					TypedProp("id", "u8", ir.Integer(7, 10))),
		},
		{
			name: "bare identifier values",
			in:   "node arg prop=val",
			want: ir.NewDocument(
				ir.NewNode("node").
					Arg(ir.String("arg")).
					Prop("prop", ir.String("val"))),
		},
		{
			name: "bare emoji value",
			in:   "smile 😀",
			want: ir.NewDocument(
				ir.NewNode("smile").Arg(ir.String("😀"))),
		},
		{
			name: "quoted node name and key",
			in:   `"my node" "the key"=1`,
			want: ir.NewDocument(
				ir.NewNode("my node").Prop("the key", ir.Integer(1, 10))),
		},
		{
			name: "raw string name",
			in:   `#"raw"# 1`,
			want: ir.NewDocument(ir.NewNode("raw").Arg(ir.Integer(1, 10))),
		},
		{
			name: "slashdash node",
			in:   "/-dead 1 2\nlive",
			want: ir.NewDocument(ir.NewNode("live")),
		},
		{
			name: "slashdash entry",
			in:   "n 1 /-2 3",
			want: ir.NewDocument(
				ir.NewNode("n").Arg(ir.Integer(1, 10)).Arg(ir.Integer(3, 10))),
		},
		{
			name: "slashdash children block",
			in:   "n /-{ a; b }",
			want: ir.NewDocument(ir.NewNode("n")),
		},
		{
			name: "slashdash across newline",
			in:   "n /-\n  1 2",
			want: ir.NewDocument(ir.NewNode("n").Arg(ir.Integer(2, 10))),
		},
		{
			name: "escline continues node",
			in:   "n 1 \\\n  2",
			want: ir.NewDocument(
				ir.NewNode("n").Arg(ir.Integer(1, 10)).Arg(ir.Integer(2, 10))),
		},
		{
			name: "comments ignored",
			in:   "// lead\nn /* inline */ 1",
			want: ir.NewDocument(ir.NewNode("n").Arg(ir.Integer(1, 10))),
		},
		{
			name: "duplicate props kept in order",
			in:   "n a=1 a=2",
			want: ir.NewDocument(
				ir.NewNode("n").
					Prop("a", ir.Integer(1, 10)).
					Prop("a", ir.Integer(2, 10))),
		},
		{
			name: "empty document",
			in:   "\n\n// only comments\n",
			want: &ir.Document{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustClean(t, tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseIdempotent(t *testing.T) {
	in := "a 1 k=\"v\" {\n  b (u8)2\n  /-c 3\n}\nd #true\n"
	first := mustClean(t, in)
	second := mustClean(t, in)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two parses of the same input differ:\n%s", diff)
	}
}

func TestParseDiagnostics(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		kinds []diag.Kind
	}{
		{
			name:  "missing value after equals",
			in:    "node key=",
			kinds: []diag.Kind{diag.UnexpectedToken},
		},
		{
			name:  "unterminated string",
			in:    "n \"abc",
			kinds: []diag.Kind{diag.UnterminatedString},
		},
		{
			name:  "unterminated raw string",
			in:    `n #"abc`,
			kinds: []diag.Kind{diag.UnterminatedRawString},
		},
		{
			name:  "unterminated comment",
			in:    "n /* x",
			kinds: []diag.Kind{diag.UnterminatedComment},
		},
		{
			name:  "invalid escape",
			in:    `n "\q"`,
			kinds: []diag.Kind{diag.InvalidEscape},
		},
		{
			name:  "invalid number",
			in:    "n 1._5",
			kinds: []diag.Kind{diag.InvalidNumberLiteral},
		},
		{
			name:  "integer overflow",
			in:    "n 9223372036854775808",
			kinds: []diag.Kind{diag.IntegerOverflow},
		},
		{
			name:  "reserved identifier",
			in:    "n true",
			kinds: []diag.Kind{diag.ReservedIdentifier},
		},
		{
			name:  "missing closing brace",
			in:    "a {\n  b",
			kinds: []diag.Kind{diag.MissingClosingBrace},
		},
		{
			name:  "duplicate annotation",
			in:    "(a)(b)n",
			kinds: []diag.Kind{diag.DuplicateTypeAnnotation},
		},
		{
			name:  "slashdash without target",
			in:    "n /-",
			kinds: []diag.Kind{diag.MalformedSlashdashTarget},
		},
		{
			name:  "second children block",
			in:    "n { a } { b }",
			kinds: []diag.Kind{diag.UnexpectedToken},
		},
		{
			name:  "entry after children",
			in:    "n { a } 1",
			kinds: []diag.Kind{diag.UnexpectedToken},
		},
		{
			name:  "unmatched close brace",
			in:    "}\nn",
			kinds: []diag.Kind{diag.UnexpectedToken},
		},
		{
			name:  "number as node name",
			in:    "42 1",
			kinds: []diag.Kind{diag.UnexpectedToken},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := Parse([]byte(tt.in))
			got := make([]diag.Kind, 0, len(diags))
			for _, d := range diags {
				got = append(got, d.Kind)
			}
			if diff := cmp.Diff(tt.kinds, got); diff != "" {
				t.Errorf("Parse(%q) kinds mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseRecovery(t *testing.T) {
	in := "good1 1\nbad key=\ngood2 2\n"
	doc, diags := Parse([]byte(in))
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want one", diags)
	}
	if diags[0].Kind != diag.UnexpectedToken {
		t.Errorf("kind = %v, want UnexpectedToken", diags[0].Kind)
	}
	names := make([]string, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		names = append(names, n.Name)
	}
	want := []string{"good1", "bad", "good2"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("surviving nodes mismatch (-want +got):\n%s", diff)
	}
}

func TestSlashdashTargetErrorsSurvive(t *testing.T) {
	// problems inside a discarded target are still reported
	_, diags := Parse([]byte("n /-9223372036854775808 1"))
	if len(diags) != 1 || diags[0].Kind != diag.IntegerOverflow {
		t.Errorf("diagnostics = %v, want one IntegerOverflow", diags)
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*ir.Node]token.Span{}
	doc, diags := Parse([]byte("a 1\n  b 2\n"), ParsePositions(positions))
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v", diags)
	}
	if len(doc.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(doc.Nodes))
	}
	spA := positions[doc.Nodes[0]]
	spB := positions[doc.Nodes[1]]
	if spA.Start != 0 || spA.End != 3 {
		t.Errorf("span a = [%d, %d), want [0, 3)", spA.Start, spA.End)
	}
	if line, col := spB.LineCol(); line != 1 || col != 2 {
		t.Errorf("node b at (%d, %d), want (1, 2)", line, col)
	}
}

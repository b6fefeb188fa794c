package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuilder(t *testing.T) {
	got := NewDocument(
		NewNode("server").WithType("cfg").
			Arg(String("web-1")).
			Prop("port", Integer(8080, 10)).
			TypedProp("retries", "u8", Integer(3, 10)).
			Child(NewNode("tls").Arg(Bool(true))),
		NewNode("empty").Block(),
		NewNode("leaf"))

	cfg := "cfg"
	port := "port"
	retries := "retries"
	u8 := "u8"
	want := &Document{Nodes: []*Node{
		{
			Name: "server",
			Type: &cfg,
			Entries: []*Entry{
				{Value: String("web-1")},
				{Key: &port, Value: Integer(8080, 10)},
				{Key: &retries, Type: &u8, Value: Integer(3, 10)},
			},
			Children: &Document{Nodes: []*Node{
				{Name: "tls", Entries: []*Entry{{Value: Bool(true)}}},
			}},
		},
		{Name: "empty", Children: &Document{}},
		{Name: "leaf"},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("built document mismatch (-want +got):\n%s", diff)
	}
}

func TestGetFirst(t *testing.T) {
	doc := NewDocument(
		NewNode("a").Arg(Integer(1, 10)),
		NewNode("b"),
		NewNode("a").Arg(Integer(2, 10)))

	if got := len(doc.Get("a")); got != 2 {
		t.Errorf("Get(a) returned %d nodes, want 2", got)
	}
	if got := doc.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
	first := doc.First("a")
	if first == nil || first.Entries[0].Value.Int != 1 {
		t.Errorf("First(a) = %v, want the node with argument 1", first)
	}
	if doc.First("missing") != nil {
		t.Error("First(missing) is non-nil")
	}

	var empty *Document
	if empty.Get("a") != nil || empty.First("a") != nil {
		t.Error("nil document lookups are non-nil")
	}
}

func TestArgsProps(t *testing.T) {
	n := NewNode("n").
		Arg(Integer(1, 10)).
		Prop("k", String("old")).
		Arg(Integer(2, 10)).
		Prop("k", String("new")).
		Prop("other", Null()).
		Build()

	wantArgs := []Value{Integer(1, 10), Integer(2, 10)}
	if diff := cmp.Diff(wantArgs, n.Args()); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}
	if len(n.Entries) != 5 {
		t.Errorf("entries = %d, want all 5 kept", len(n.Entries))
	}
	v, ok := n.Prop("k")
	if !ok || v.Str != "new" {
		t.Errorf("Prop(k) = %v, %v, want last-wins %q", v, ok, "new")
	}
	if _, ok := n.Prop("missing"); ok {
		t.Error("Prop(missing) reports present")
	}
	wantProps := map[string]Value{"k": String("new"), "other": Null()}
	if diff := cmp.Diff(wantProps, n.Props()); diff != "" {
		t.Errorf("Props mismatch (-want +got):\n%s", diff)
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Null(), "null"},
		{Bool(true), "true"},
		{Integer(-42, 10), "-42"},
		{Integer(255, 16), "255"},
		{Float(2.5), "2.5"},
		{String("hi"), "hi"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

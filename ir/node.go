package ir

import (
	"fmt"
	"strconv"
)

// Document is an ordered list of nodes, either a whole file or one
// node's children block. A nil *Document means no children block was
// written; a non-nil empty one means `{}` appeared in the source.
type Document struct {
	Nodes []*Node
}

// Node is one KDL node: a name, an optional type annotation, the
// entries in source order, and an optional children block.
type Node struct {
	Name     string
	Type     *string
	Entries  []*Entry
	Children *Document
}

// Entry is one argument or property of a node. Key is nil for
// arguments and the property name otherwise.
type Entry struct {
	Key   *string
	Type  *string
	Value Value
}

type ValueKind int

const (
	KNull ValueKind = iota
	KBool
	KInt
	KFloat
	KString
)

func (k ValueKind) String() string {
	return map[ValueKind]string{
		KNull:   "null",
		KBool:   "bool",
		KInt:    "int",
		KFloat:  "float",
		KString: "string",
	}[k]
}

// Value is a closed tagged union over the KDL value space. The field
// matching Kind holds the value; Radix records the source radix of
// integers (2, 8, 10 or 16).
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
	Radix int
}

func Null() Value           { return Value{Kind: KNull} }
func Bool(b bool) Value     { return Value{Kind: KBool, Bool: b} }
func Float(f float64) Value { return Value{Kind: KFloat, Float: f} }
func String(s string) Value { return Value{Kind: KString, Str: s} }

func Integer(i int64, radix int) Value {
	return Value{Kind: KInt, Int: i, Radix: radix}
}

func (v Value) String() string {
	switch v.Kind {
	case KNull:
		return "null"
	case KBool:
		return strconv.FormatBool(v.Bool)
	case KInt:
		return strconv.FormatInt(v.Int, 10)
	case KFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KString:
		return v.Str
	}
	return fmt.Sprintf("ValueKind(%d)", int(v.Kind))
}

// Get returns all top-level nodes with the given name, in source order.
func (d *Document) Get(name string) []*Node {
	if d == nil {
		return nil
	}
	var res []*Node
	for _, n := range d.Nodes {
		if n.Name == name {
			res = append(res, n)
		}
	}
	return res
}

// First returns the first top-level node with the given name, or nil.
func (d *Document) First(name string) *Node {
	if d == nil {
		return nil
	}
	for _, n := range d.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// Args returns the node's argument values in source order.
func (n *Node) Args() []Value {
	var res []Value
	for _, e := range n.Entries {
		if e.Key == nil {
			res = append(res, e.Value)
		}
	}
	return res
}

// Prop returns the value of the named property. Duplicate properties
// keep all entries in source order but lookup is last-occurrence-wins.
func (n *Node) Prop(name string) (Value, bool) {
	for i := len(n.Entries) - 1; i >= 0; i-- {
		e := n.Entries[i]
		if e.Key != nil && *e.Key == name {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Props returns the node's effective property map, last-wins.
func (n *Node) Props() map[string]Value {
	res := map[string]Value{}
	for _, e := range n.Entries {
		if e.Key != nil {
			res[*e.Key] = e.Value
		}
	}
	return res
}

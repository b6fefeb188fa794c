// Package encode renders parsed documents in the CLI's output formats:
// canonical JSON, YAML and a human inspection tree. None of these are
// KDL; the library does not re-emit KDL text.
package encode

import (
	"encoding/json"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/ferronweb/kdlite/format"
	"github.com/ferronweb/kdlite/ir"
)

type EncState struct {
	format format.Format
	indent int
	colors *Colors
}

func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.YAMLFormat:
		d, err := yaml.Marshal(Generic(doc))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.TreeFormat:
		return encodeTree(doc, w, es)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Generic(doc))
	}
}

// Generic converts a document to the canonical generic representation
// shared by the JSON and YAML outputs and by `kdl diff`. Nodes become
// maps with "name" plus "type", "args", "props" and "children" when
// present; property lookup is last-wins.
func Generic(doc *ir.Document) []any {
	if doc == nil {
		return nil
	}
	res := make([]any, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		res = append(res, genericNode(n))
	}
	return res
}

func genericNode(n *ir.Node) map[string]any {
	res := map[string]any{"name": n.Name}
	if n.Type != nil {
		res["type"] = *n.Type
	}
	var args []any
	for _, e := range n.Entries {
		if e.Key != nil {
			continue
		}
		args = append(args, genericEntry(e))
	}
	if args != nil {
		res["args"] = args
	}
	props := map[string]any{}
	for _, e := range n.Entries {
		if e.Key == nil {
			continue
		}
		props[*e.Key] = genericEntry(e)
	}
	if len(props) > 0 {
		res["props"] = props
	}
	if n.Children != nil {
		res["children"] = Generic(n.Children)
	}
	return res
}

func genericEntry(e *ir.Entry) any {
	v := GenericValue(e.Value)
	if e.Type == nil {
		return v
	}
	return map[string]any{"type": *e.Type, "value": v}
}

func GenericValue(v ir.Value) any {
	switch v.Kind {
	case ir.KBool:
		return v.Bool
	case ir.KInt:
		return v.Int
	case ir.KFloat:
		return v.Float
	case ir.KString:
		return v.Str
	}
	return nil
}

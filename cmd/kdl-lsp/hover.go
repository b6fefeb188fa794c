package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/ferronweb/kdlite/ir"
	"github.com/ferronweb/kdlite/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.doc == nil {
		return nil, nil
	}

	off := lineColToOffset(doc.content, int(params.Position.Line), int(params.Position.Character))
	target := findNodeAtOffset(doc.doc, doc.positions, off)
	if target == nil {
		return nil, nil
	}

	hoverText := buildHoverText(target)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// findNodeAtOffset returns the innermost node whose span contains the
// offset.
func findNodeAtOffset(doc *ir.Document, positions map[*ir.Node]token.Span, off int) *ir.Node {
	var best *ir.Node
	bestLen := -1

	var visit func(*ir.Document)
	visit = func(d *ir.Document) {
		if d == nil {
			return
		}
		for _, n := range d.Nodes {
			sp, ok := positions[n]
			if ok && sp.Start <= off && off <= sp.End {
				if bestLen == -1 || sp.End-sp.Start <= bestLen {
					best = n
					bestLen = sp.End - sp.Start
				}
			}
			if n.Children != nil {
				visit(n.Children)
			}
		}
	}

	visit(doc)
	return best
}

func buildHoverText(n *ir.Node) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("**Node:** `%s`", n.Name))
	if n.Type != nil {
		parts = append(parts, fmt.Sprintf("**Type:** `%s`", *n.Type))
	}
	if args := n.Args(); len(args) > 0 {
		vals := make([]string, 0, len(args))
		for _, v := range args {
			vals = append(vals, fmt.Sprintf("`%s` (%s)", v, v.Kind))
		}
		parts = append(parts, "**Args:** "+strings.Join(vals, ", "))
	}
	if props := n.Props(); len(props) > 0 {
		parts = append(parts, fmt.Sprintf("**Props:** %d", len(props)))
	}
	if n.Children != nil {
		parts = append(parts, fmt.Sprintf("**Children:** %d", len(n.Children.Nodes)))
	}
	return strings.Join(parts, "\n\n")
}

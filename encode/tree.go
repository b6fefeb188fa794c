package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ferronweb/kdlite/ir"
)

// encodeTree writes the inspection tree: one line per node, one line
// per entry, children indented under their node.
func encodeTree(doc *ir.Document, w io.Writer, es *EncState) error {
	colors := es.colors
	if colors == nil {
		colors = NoColors()
	}
	return treeDoc(doc, w, es, colors, 0)
}

func treeDoc(doc *ir.Document, w io.Writer, es *EncState, c *Colors, depth int) error {
	if doc == nil {
		return nil
	}
	for _, n := range doc.Nodes {
		if err := treeNode(n, w, es, c, depth); err != nil {
			return err
		}
	}
	return nil
}

func treeNode(n *ir.Node, w io.Writer, es *EncState, c *Colors, depth int) error {
	pad := strings.Repeat(strings.Repeat(" ", es.indent), depth)
	line := pad + "node " + c.Name("%s", n.Name)
	if n.Type != nil {
		line += " " + c.Type("(%s)", *n.Type)
	}
	if err := writeLine(w, line); err != nil {
		return err
	}
	epad := pad + strings.Repeat(" ", es.indent)
	for _, e := range n.Entries {
		line := epad
		if e.Key == nil {
			line += "arg"
		} else {
			line += "prop " + c.Name("%s", *e.Key) + " ="
		}
		if e.Type != nil {
			line += " " + c.Type("(%s)", *e.Type)
		}
		line += " " + treeValue(e.Value, c)
		if err := writeLine(w, line); err != nil {
			return err
		}
	}
	if n.Children == nil {
		return nil
	}
	if len(n.Children.Nodes) == 0 {
		return writeLine(w, epad+"children (empty)")
	}
	if err := writeLine(w, epad+"children"); err != nil {
		return err
	}
	return treeDoc(n.Children, w, es, c, depth+2)
}

func treeValue(v ir.Value, c *Colors) string {
	switch v.Kind {
	case ir.KString:
		return c.Str("%s", strconv.Quote(v.Str))
	case ir.KInt:
		switch v.Radix {
		case 2:
			return c.Num("%s", radixInt(v.Int, 2, "0b"))
		case 8:
			return c.Num("%s", radixInt(v.Int, 8, "0o"))
		case 16:
			return c.Num("%s", radixInt(v.Int, 16, "0x"))
		}
		return c.Num("%d", v.Int)
	case ir.KFloat:
		return c.Num("%s", strconv.FormatFloat(v.Float, 'g', -1, 64))
	case ir.KBool:
		return c.Kw("%t", v.Bool)
	}
	return c.Kw("null")
}

func radixInt(i int64, radix int, prefix string) string {
	if i < 0 {
		return "-" + prefix + strconv.FormatUint(uint64(-(i+1))+1, radix)
	}
	return prefix + strconv.FormatInt(i, radix)
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}

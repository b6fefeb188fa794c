package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Colors maps the parts of a rendered diagnostic to sprint functions.
// The zero-value-free constructor NewColors picks the palette; NoColors
// renders plain text.
type Colors struct {
	Kind func(string, ...any) string
	Loc  func(string, ...any) string
	Msg  func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Kind: color.RedString,
		Loc:  color.RGB(128, 168, 196).SprintfFunc(),
		Msg:  colorDefault,
	}
}

func NoColors() *Colors {
	return &Colors{Kind: colorDefault, Loc: colorDefault, Msg: colorDefault}
}

func colorDefault(v string, args ...any) string {
	return fmt.Sprintf(v, args...)
}

// Render writes one line per diagnostic, prefixed with the file name
// when given.
func Render(w io.Writer, file string, l List, colors *Colors) error {
	if colors == nil {
		colors = NoColors()
	}
	for _, d := range l {
		line, col := d.Span.LineCol()
		loc := fmt.Sprintf("%d:%d", line+1, col+1)
		if file != "" {
			loc = fmt.Sprintf("%s:%s", file, loc)
		}
		msg := d.Msg
		if msg == "" {
			msg = d.Span.String()
		}
		_, err := fmt.Fprintf(w, "%s: %s: %s\n",
			colors.Loc("%s", loc), colors.Kind("%s", d.Kind), colors.Msg("%s", msg))
		if err != nil {
			return err
		}
	}
	return nil
}

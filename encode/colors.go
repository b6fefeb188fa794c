package encode

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Colors maps the parts of the tree view to sprint functions.
type Colors struct {
	Name func(string, ...any) string
	Type func(string, ...any) string
	Str  func(string, ...any) string
	Num  func(string, ...any) string
	Kw   func(string, ...any) string
}

func NewColors() *Colors {
	c := &Colors{
		Name: color.RGB(128, 168, 196).SprintfFunc(),
		Type: color.RGB(74, 92, 138).SprintfFunc(),
		Str:  color.RGB(8, 196, 16).SprintfFunc(),
		Num:  color.RGB(128, 216, 236).SprintfFunc(),
		Kw:   color.CyanString,
	}
	c.Name = escapePercents(c.Name)
	c.Type = escapePercents(c.Type)
	c.Str = escapePercents(c.Str)
	c.Num = escapePercents(c.Num)
	c.Kw = escapePercents(c.Kw)
	return c
}

func NoColors() *Colors {
	return &Colors{
		Name: colorDefault,
		Type: colorDefault,
		Str:  colorDefault,
		Num:  colorDefault,
		Kw:   colorDefault,
	}
}

func colorDefault(v string, args ...any) string {
	return fmt.Sprintf(v, args...)
}

func escapePercents(f func(string, ...any) string) func(string, ...any) string {
	return func(format string, args ...any) string {
		v := fmt.Sprintf(format, args...)
		return f(strings.Replace(v, "%", "%%", -1))
	}
}

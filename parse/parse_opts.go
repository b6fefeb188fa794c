package parse

import (
	"github.com/ferronweb/kdlite/ir"
	"github.com/ferronweb/kdlite/token"
)

type parseOpts struct {
	positions map[*ir.Node]token.Span
}

type ParseOption func(*parseOpts)

// ParsePositions asks the parser to record the source span of every
// node it builds into m.
func ParsePositions(m map[*ir.Node]token.Span) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]token.Span {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}

// Package diag defines the diagnostics produced by parsing: a closed
// set of kinds, span-carrying diagnostic values, and an accumulating
// list. Parsing never stops at the first problem; every diagnostic a
// document contains ends up in one List.
package diag

import (
	"fmt"
	"strings"

	"github.com/ferronweb/kdlite/token"
)

type Kind int

const (
	UnterminatedString Kind = iota
	UnterminatedRawString
	UnterminatedComment
	InvalidEscape
	InvalidNumberLiteral
	IntegerOverflow
	InvalidIdentifierCharacter
	UnexpectedToken
	MissingClosingBrace
	DuplicateTypeAnnotation
	MalformedSlashdashTarget
	ReservedIdentifier
	BannedCharacter
	InvalidIndentation
)

var kind2String = map[Kind]string{
	UnterminatedString:         "UnterminatedString",
	UnterminatedRawString:      "UnterminatedRawString",
	UnterminatedComment:        "UnterminatedComment",
	InvalidEscape:              "InvalidEscape",
	InvalidNumberLiteral:       "InvalidNumberLiteral",
	IntegerOverflow:            "IntegerOverflow",
	InvalidIdentifierCharacter: "InvalidIdentifierCharacter",
	UnexpectedToken:            "UnexpectedToken",
	MissingClosingBrace:        "MissingClosingBrace",
	DuplicateTypeAnnotation:    "DuplicateTypeAnnotation",
	MalformedSlashdashTarget:   "MalformedSlashdashTarget",
	ReservedIdentifier:         "ReservedIdentifier",
	BannedCharacter:            "BannedCharacter",
	InvalidIndentation:         "InvalidIndentation",
}

func (k Kind) String() string {
	s, ok := kind2String[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return s
}

// Diagnostic is one problem found in a document. The Span locates the
// offending source bytes; Msg describes the problem in context.
type Diagnostic struct {
	Kind Kind
	Span token.Span
	Msg  string
}

func New(k Kind, sp token.Span, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: k, Span: sp, Msg: fmt.Sprintf(format, args...)}
}

func (d *Diagnostic) Error() string {
	if d.Msg == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.Span)
	}
	return fmt.Sprintf("%s: %s: %s", d.Kind, d.Msg, d.Span)
}

// List accumulates diagnostics in source order.
type List []*Diagnostic

func (l *List) Add(d *Diagnostic) {
	*l = append(*l, d)
}

func (l *List) Addf(k Kind, sp token.Span, format string, args ...any) {
	l.Add(New(k, sp, format, args...))
}

// Err returns nil for a clean parse and the list itself otherwise, so
// callers can treat a best-effort result as an error value.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	}
	msgs := make([]string, 0, len(l))
	for _, d := range l {
		msgs = append(msgs, d.Error())
	}
	return fmt.Sprintf("%d problems:\n\t%s", len(l), strings.Join(msgs, "\n\t"))
}

package parse

import (
	"errors"
	"math"

	"github.com/ferronweb/kdlite/diag"
	"github.com/ferronweb/kdlite/ir"
	"github.com/ferronweb/kdlite/token"
)

type vStatus int

const (
	vOK vStatus = iota
	// vDropped: the token was consumed and reported; skip the entry.
	vDropped
	// vNone: the token cannot start a value; nothing consumed.
	vNone
)

func (p *parser) value() (ir.Value, vStatus) {
	t := p.peek(0)
	switch t.Type {
	case token.TKeyword:
		p.next()
		return keywordValue(t.Bytes), vOK
	case token.TNumber:
		p.next()
		num, err := token.DecodeNumber(t.Bytes)
		if err != nil {
			kind := diag.InvalidNumberLiteral
			if errors.Is(err, token.ErrNumberRange) {
				kind = diag.IntegerOverflow
			}
			p.diags.Addf(kind, t.Span, "%s", err)
			return ir.Value{}, vDropped
		}
		if num.IsFloat {
			return ir.Float(num.Float), vOK
		}
		return ir.Integer(num.Int, num.Radix), vOK
	case token.TString, token.TRawString:
		s, err := token.DecodeString(*t)
		p.next()
		if err != nil {
			p.decodeDiag(err, t.Span)
			return ir.Value{}, vDropped
		}
		return ir.String(s), vOK
	case token.TIdent:
		// identifier-strings: a bare word is a string value. Reserved
		// words never get here, the scanner rejects them.
		s := string(t.Bytes)
		p.next()
		return ir.String(s), vOK
	}
	return ir.Value{}, vNone
}

func keywordValue(lexeme []byte) ir.Value {
	switch string(lexeme) {
	case "#true":
		return ir.Bool(true)
	case "#false":
		return ir.Bool(false)
	case "#inf":
		return ir.Float(math.Inf(1))
	case "#-inf":
		return ir.Float(math.Inf(-1))
	case "#nan":
		return ir.Float(math.NaN())
	}
	return ir.Null()
}

// decodeDiag reports a literal decode failure, mapping the sentinel to
// its diagnostic kind.
func (p *parser) decodeDiag(err error, sp token.Span) {
	p.diags.Add(diag.FromScanError(token.NewScanError(err, sp)))
}

// Package parse provides KDL parsing support.
//
// Parse is best-effort: structural problems produce diagnostics and the
// parser resynchronizes at the next node terminator or matching close
// brace, so one malformed node does not take its siblings down with it.
package parse

import (
	"github.com/ferronweb/kdlite/debug"
	"github.com/ferronweb/kdlite/diag"
	"github.com/ferronweb/kdlite/ir"
	"github.com/ferronweb/kdlite/token"
)

// Parse parses a KDL document. The returned document holds everything
// that could be understood; problems are accumulated in the list, in
// source order. An empty list means a clean parse.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, diag.List) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{sc: token.NewScanner(d), opts: pOpts}
	doc := p.document(true, token.Span{})
	return doc, p.diags
}

type parser struct {
	sc   *token.Scanner
	buf  []token.Token
	dead bool
	eof  token.Token

	diags   diag.List
	opts    *parseOpts
	lastEnd int
	nodeEnd int
}

// fill tops up the lookahead buffer to k+1 tokens, dropping comment
// tokens. A scanner error is reported once; after it the stream is a
// synthetic EOF at the error position.
func (p *parser) fill(k int) {
	for len(p.buf) <= k {
		if p.dead {
			p.buf = append(p.buf, p.eof)
			continue
		}
		tok, err := p.sc.Next()
		if err != nil {
			d := diag.FromScanError(err)
			p.diags.Add(d)
			p.dead = true
			p.eof = token.Token{
				Type: token.TEOF,
				Span: token.Span{Start: d.Span.End, End: d.Span.End, D: d.Span.D},
			}
			continue
		}
		if tok.Type == token.TComment {
			continue
		}
		p.buf = append(p.buf, tok)
	}
}

func (p *parser) peek(k int) *token.Token {
	p.fill(k)
	return &p.buf[k]
}

func (p *parser) next() token.Token {
	p.fill(0)
	t := p.buf[0]
	p.buf = p.buf[1:]
	if t.Type != token.TEOF {
		p.lastEnd = t.Span.End
	}
	return t
}

// lineSpace skips newline tokens. Inline space and comments never reach
// the parser.
func (p *parser) lineSpace() {
	for p.peek(0).Type == token.TNewline {
		p.next()
	}
}

// document parses nodes until EOF (root) or the matching '}'. open is
// the span of the opening brace for non-root documents.
func (p *parser) document(root bool, open token.Span) *ir.Document {
	doc := &ir.Document{}
	for {
		t := p.peek(0)
		switch t.Type {
		case token.TNewline, token.TSemi:
			p.next()
		case token.TEOF:
			if !root {
				p.diags.Addf(diag.MissingClosingBrace, open, "children block is never closed")
			}
			return doc
		case token.TRCurl:
			if root {
				p.diags.Addf(diag.UnexpectedToken, t.Span, "unmatched '}'")
				p.next()
				continue
			}
			p.next()
			return doc
		case token.TSlashdash:
			sd := p.next()
			p.lineSpace()
			nt := p.peek(0)
			if nt.Type == token.TEOF || nt.Type == token.TRCurl || nt.Type == token.TLCurl {
				p.diags.Addf(diag.MalformedSlashdashTarget, sd.Span, "slashdash must be followed by a node")
				continue
			}
			p.node()
		default:
			if n := p.node(); n != nil {
				doc.Nodes = append(doc.Nodes, n)
			}
		}
	}
}

// node parses one node: optional annotation, name, entries and an
// optional children block. A best-effort node is returned even when its
// entries had problems; nil means the node itself could not start.
func (p *parser) node() *ir.Node {
	start := p.peek(0).Span.Start
	typ, ok := p.annotation()
	if !ok {
		p.resync()
		return nil
	}
	n := &ir.Node{Type: typ}
	t := p.peek(0)
	switch t.Type {
	case token.TIdent, token.TString, token.TRawString:
		name, err := token.DecodeString(*t)
		p.next()
		if err != nil {
			p.decodeDiag(err, t.Span)
			p.resync()
			return nil
		}
		n.Name = name
	default:
		p.diags.Addf(diag.UnexpectedToken, t.Span, "expected node name, found %s", t.Type)
		p.resync()
		return nil
	}
	if debug.Parse() {
		debug.Logf("parse: node %q at %d\n", n.Name, start)
	}
	p.nodeEnd = p.lastEnd
	p.entries(n)
	if p.opts.positions != nil {
		sp := t.Span
		p.opts.positions[n] = token.Span{Start: start, End: p.nodeEnd, D: sp.D}
	}
	return n
}

// entries parses a node's arguments, properties and children block up
// to and including the node terminator.
func (p *parser) entries(n *ir.Node) {
	for {
		t := p.peek(0)
		switch t.Type {
		case token.TNewline, token.TSemi:
			p.nodeEnd = p.lastEnd
			p.next()
			return
		case token.TEOF, token.TRCurl:
			p.nodeEnd = p.lastEnd
			return
		case token.TSlashdash:
			p.gap(t)
			sd := p.next()
			p.lineSpace()
			nt := p.peek(0)
			switch nt.Type {
			case token.TLCurl:
				open := p.next()
				p.document(false, open.Span)
			case token.TEOF, token.TRCurl, token.TSemi, token.TEquals:
				p.diags.Addf(diag.MalformedSlashdashTarget, sd.Span, "nothing to discard")
			default:
				if !p.entry(n, true) {
					p.nodeEnd = p.lastEnd
					p.resync()
					return
				}
			}
		case token.TLCurl:
			p.gap(t)
			open := p.next()
			kids := p.document(false, open.Span)
			if n.Children != nil {
				p.diags.Addf(diag.UnexpectedToken, open.Span, "node already has a children block")
				continue
			}
			n.Children = kids
		case token.TEquals:
			p.diags.Addf(diag.UnexpectedToken, t.Span, "unexpected '='")
			p.next()
			p.nodeEnd = p.lastEnd
			p.resync()
			return
		default:
			p.gap(t)
			discard := false
			if n.Children != nil {
				p.diags.Addf(diag.UnexpectedToken, t.Span, "entry after children block")
				discard = true
			}
			if !p.entry(n, discard) {
				p.nodeEnd = p.lastEnd
				p.resync()
				return
			}
		}
	}
}

// gap checks that whitespace (or a comment) separated t from the
// previous token. Entries and children blocks may not abut what came
// before them.
func (p *parser) gap(t *token.Token) {
	if t.Span.Start == p.lastEnd {
		p.diags.Addf(diag.UnexpectedToken, t.Span, "expected whitespace")
	}
}

// entry parses one argument or property. A false return means the
// caller should resync; decode failures are reported but consume their
// token, so parsing continues with the next entry.
func (p *parser) entry(n *ir.Node, discard bool) bool {
	e := &ir.Entry{}
	t := p.peek(0)
	switch t.Type {
	case token.TIdent, token.TString, token.TRawString:
		if p.peek(1).Type == token.TEquals {
			key, err := token.DecodeString(*t)
			p.next()
			p.next()
			if err != nil {
				p.decodeDiag(err, t.Span)
				discard = true
			}
			e.Key = &key
		}
	}
	typ, ok := p.annotation()
	if !ok {
		return false
	}
	e.Type = typ
	v, st := p.value()
	switch st {
	case vNone:
		vt := p.peek(0)
		p.diags.Addf(diag.UnexpectedToken, vt.Span, "expected a value, found %s", vt.Type)
		return false
	case vDropped:
		return true
	}
	e.Value = v
	if !discard {
		n.Entries = append(n.Entries, e)
	}
	return true
}

// annotation parses zero or more "(name)" groups. The first one is the
// annotation; repeats are reported and dropped.
func (p *parser) annotation() (*string, bool) {
	var res *string
	seen := false
	for p.peek(0).Type == token.TLParen {
		open := p.next()
		name, ok := p.annotationTail()
		if !ok {
			return res, false
		}
		if seen {
			p.diags.Addf(diag.DuplicateTypeAnnotation, open.Span, "repeated type annotation")
			continue
		}
		seen = true
		res = name
	}
	return res, true
}

func (p *parser) annotationTail() (*string, bool) {
	t := p.peek(0)
	switch t.Type {
	case token.TIdent, token.TString, token.TRawString:
	default:
		p.diags.Addf(diag.UnexpectedToken, t.Span, "expected annotation name, found %s", t.Type)
		return nil, false
	}
	name, err := token.DecodeString(*t)
	p.next()
	if err != nil {
		p.decodeDiag(err, t.Span)
		name = ""
	}
	if ct := p.peek(0); ct.Type != token.TRParen {
		p.diags.Addf(diag.UnexpectedToken, ct.Span, "expected ')', found %s", ct.Type)
		return nil, false
	}
	p.next()
	return &name, true
}

// resync skips ahead to the next node terminator, consuming it, or
// stops in front of '}' and EOF. Balanced children blocks encountered
// on the way are skipped whole.
func (p *parser) resync() {
	for {
		t := p.peek(0)
		switch t.Type {
		case token.TEOF, token.TRCurl:
			return
		case token.TNewline, token.TSemi:
			p.next()
			return
		case token.TLCurl:
			p.next()
			p.skipBalanced()
		default:
			p.next()
		}
	}
}

func (p *parser) skipBalanced() {
	depth := 0
	for {
		t := p.peek(0)
		switch t.Type {
		case token.TEOF:
			return
		case token.TLCurl:
			depth++
		case token.TRCurl:
			if depth == 0 {
				p.next()
				return
			}
			depth--
		}
		p.next()
	}
}

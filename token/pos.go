package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc records the newline offsets of a document so that byte offsets
// can be mapped to line/column pairs lazily.
type PosDoc struct {
	d []byte
	n []int
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] >= i {
		return
	}
	p.n = append(p.n, i)
}

func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Span(start, end int) Span {
	return Span{Start: start, End: end, D: p}
}

// Span is a byte-offset range in a document, attached to every token and
// diagnostic. Line and column are derived on demand from the PosDoc.
type Span struct {
	Start, End int
	D          *PosDoc
}

func (s Span) LineCol() (int, int) {
	if s.D == nil {
		return 0, s.Start
	}
	return s.D.LineCol(s.Start)
}

func (s Span) Line() int {
	l, _ := s.LineCol()
	return l
}

func (s Span) Col() int {
	_, c := s.LineCol()
	return c
}

func (s Span) String() string {
	sample := "?"
	if s.D != nil && len(s.D.d) > 0 {
		sample = string(s.D.d[max(0, s.Start-5):min(s.Start+5, len(s.D.d))])
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, s.Start, s.Line(), s.Col())
}

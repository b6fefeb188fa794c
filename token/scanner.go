package token

import (
	"unicode/utf8"

	"github.com/ferronweb/kdlite/debug"
)

// Scanner turns a KDL document into a token sequence in one forward
// pass. Lexical errors are fatal for the remainder of the input: once
// Next returns a *ScanError it returns the same error forever.
type Scanner struct {
	d      []byte
	i      int
	posDoc *PosDoc
	err    *ScanError
}

func NewScanner(src []byte) *Scanner {
	s := &Scanner{
		d:      src,
		posDoc: &PosDoc{d: src},
	}
	if r, sz := utf8.DecodeRune(src); r == bom {
		s.i = sz
	}
	return s
}

// Doc exposes the position document shared by all spans the scanner
// produces.
func (s *Scanner) Doc() *PosDoc {
	return s.posDoc
}

func (s *Scanner) span(start, end int) Span {
	return s.posDoc.Span(start, end)
}

func (s *Scanner) fail(err error, start, end int) (Token, error) {
	s.err = NewScanError(err, s.span(start, end))
	return Token{}, s.err
}

func (s *Scanner) tok(t Type, start, end int) Token {
	if debug.Scan() {
		debug.Logf("scan: %s %q at %d\n", t, s.d[start:end], start)
	}
	return Token{Type: t, Span: s.span(start, end), Bytes: s.d[start:end]}
}

// Tokenize scans src to completion, appending to dst. On a lexical
// error it returns the tokens produced so far along with the error.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	sc := NewScanner(src)
	for {
		t, err := sc.Next()
		if err != nil {
			return dst, err
		}
		dst = append(dst, t)
		if t.Type == TEOF {
			return dst, nil
		}
	}
}

func (s *Scanner) Next() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}
	for {
		if s.i >= len(s.d) {
			return s.tok(TEOF, s.i, s.i), nil
		}
		start := s.i
		r, sz := utf8.DecodeRune(s.d[s.i:])
		if r == utf8.RuneError && sz == 1 {
			return s.fail(ErrBadUTF8, start, start+1)
		}
		switch {
		case isSpace(r):
			s.i += sz
			continue
		case isNewline(r):
			end := s.newlineEnd(start)
			s.i = end
			return s.tok(TNewline, start, end), nil
		case r == '\\':
			if err := s.escline(start); err != nil {
				return Token{}, err
			}
			continue
		}
		switch r {
		case '/':
			return s.slash(start)
		case '(':
			s.i++
			return s.tok(TLParen, start, s.i), nil
		case ')':
			s.i++
			return s.tok(TRParen, start, s.i), nil
		case '{':
			s.i++
			return s.tok(TLCurl, start, s.i), nil
		case '}':
			s.i++
			return s.tok(TRCurl, start, s.i), nil
		case ';':
			s.i++
			return s.tok(TSemi, start, s.i), nil
		case '=':
			s.i++
			return s.tok(TEquals, start, s.i), nil
		case '"':
			return s.scanString(start, 0)
		case '#':
			return s.hash(start)
		default:
			if isIdentRune(r) {
				return s.identOrNumber(start)
			}
			if isBanned(r) {
				return s.fail(ErrBannedChar, start, start+sz)
			}
			return s.fail(ErrIdentChar, start, start+sz)
		}
	}
}

// newlineEnd returns the end offset of the newline unit starting at
// `at`, collapsing CRLF, and records it for line/column mapping.
func (s *Scanner) newlineEnd(at int) int {
	r, sz := utf8.DecodeRune(s.d[at:])
	end := at + sz
	if r == '\r' && end < len(s.d) && s.d[end] == '\n' {
		end++
	}
	s.posDoc.nl(end - 1)
	return end
}

// slash handles "//", "/*" and "/-"; a lone '/' is reserved.
func (s *Scanner) slash(start int) (Token, error) {
	if start+1 >= len(s.d) {
		return s.fail(ErrIdentChar, start, start+1)
	}
	switch s.d[start+1] {
	case '/':
		end, err := s.lineComment(start + 2)
		if err != nil {
			return Token{}, err
		}
		s.i = end
		return s.tok(TComment, start, end), nil
	case '*':
		end, err := s.blockComment(start + 2)
		if err != nil {
			return Token{}, err
		}
		s.i = end
		return s.tok(TComment, start, end), nil
	case '-':
		s.i = start + 2
		return s.tok(TSlashdash, start, s.i), nil
	default:
		return s.fail(ErrIdentChar, start, start+1)
	}
}

// lineComment scans from just after "//" to the byte before the
// terminating newline (or EOF), which is left for the next token.
func (s *Scanner) lineComment(at int) (int, error) {
	for at < len(s.d) {
		r, sz := utf8.DecodeRune(s.d[at:])
		if r == utf8.RuneError && sz == 1 {
			return 0, s.errAt(ErrBadUTF8, at, at+1)
		}
		if isNewline(r) {
			return at, nil
		}
		if isBanned(r) {
			return 0, s.errAt(ErrBannedChar, at, at+sz)
		}
		at += sz
	}
	return at, nil
}

// blockComment scans from just after "/*" past the matching "*/",
// honoring nesting.
func (s *Scanner) blockComment(at int) (int, error) {
	open := at - 2
	nest := 0
	for at < len(s.d) {
		if s.d[at] == '*' && at+1 < len(s.d) && s.d[at+1] == '/' {
			at += 2
			if nest == 0 {
				return at, nil
			}
			nest--
			continue
		}
		if s.d[at] == '/' && at+1 < len(s.d) && s.d[at+1] == '*' {
			at += 2
			nest++
			continue
		}
		r, sz := utf8.DecodeRune(s.d[at:])
		if r == utf8.RuneError && sz == 1 {
			return 0, s.errAt(ErrBadUTF8, at, at+1)
		}
		if isBanned(r) {
			return 0, s.errAt(ErrBannedChar, at, at+sz)
		}
		if isNewline(r) {
			at = s.newlineEnd(at)
			continue
		}
		at += sz
	}
	return 0, s.errAt(ErrUnterminatedComment, open, len(s.d))
}

// escline consumes a '\'-escaped line continuation: inline space and
// block comments, then an optional line comment, then a newline or EOF.
// Nothing is emitted; the newline does not terminate the node.
func (s *Scanner) escline(start int) error {
	at := start + 1
	for at < len(s.d) {
		r, sz := utf8.DecodeRune(s.d[at:])
		if isSpace(r) {
			at += sz
			continue
		}
		if r == '/' && at+1 < len(s.d) && s.d[at+1] == '*' {
			end, err := s.blockComment(at + 2)
			if err != nil {
				return err
			}
			at = end
			continue
		}
		break
	}
	if at < len(s.d) && s.d[at] == '/' && at+1 < len(s.d) && s.d[at+1] == '/' {
		end, err := s.lineComment(at + 2)
		if err != nil {
			return err
		}
		at = end
	}
	if at >= len(s.d) {
		s.i = at
		return nil
	}
	r, _ := utf8.DecodeRune(s.d[at:])
	if !isNewline(r) {
		return s.errAt(ErrEscline, start, at+1)
	}
	s.i = s.newlineEnd(at)
	return nil
}

// hash handles '#'-prefixed forms: keywords (#true, #false, #null,
// #inf, #-inf, #nan) and raw strings (#"..."# with matching pound
// counts).
func (s *Scanner) hash(start int) (Token, error) {
	at := start + 1
	for at < len(s.d) && s.d[at] == '#' {
		at++
	}
	hashes := at - start
	if at < len(s.d) && s.d[at] == '"' {
		return s.scanString(start, hashes)
	}
	if hashes > 1 {
		return s.fail(ErrUnterminatedRawString, start, at)
	}
	end := at
	for end < len(s.d) {
		r, sz := utf8.DecodeRune(s.d[end:])
		if !isIdentRune(r) {
			break
		}
		end += sz
	}
	switch string(s.d[at:end]) {
	case "true", "false", "null", "inf", "-inf", "nan":
		s.i = end
		return s.tok(TKeyword, start, end), nil
	default:
		return s.fail(ErrKeyword, start, end)
	}
}

// identOrNumber scans an identifier-charset run and classifies it.
func (s *Scanner) identOrNumber(start int) (Token, error) {
	end := start
	for end < len(s.d) {
		r, sz := utf8.DecodeRune(s.d[end:])
		if r == utf8.RuneError && sz == 1 {
			return s.fail(ErrBadUTF8, end, end+1)
		}
		if !isIdentRune(r) {
			break
		}
		end += sz
	}
	lexeme := s.d[start:end]
	if numberLike(lexeme) {
		if err := checkNumber(lexeme); err != nil {
			return s.fail(err, start, end)
		}
		s.i = end
		return s.tok(TNumber, start, end), nil
	}
	if reservedIdent(lexeme) {
		return s.fail(ErrReservedIdent, start, end)
	}
	s.i = end
	return s.tok(TIdent, start, end), nil
}

func (s *Scanner) errAt(err error, start, end int) *ScanError {
	s.err = NewScanError(err, s.span(start, end))
	return s.err
}

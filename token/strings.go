package token

import (
	"bytes"
	"unicode/utf8"
)

// scanString scans a quoted or raw string whose lexeme starts at
// `start`. For raw strings `hashes` is the pound count and start points
// at the first '#'; for plain quoted strings hashes is 0 and start
// points at the opening '"'. The returned token's bytes include the
// full delimiters.
func (s *Scanner) scanString(start, hashes int) (Token, error) {
	typ := TString
	unterminated := ErrUnterminatedString
	if hashes > 0 {
		typ = TRawString
		unterminated = ErrUnterminatedRawString
	}
	qi := start + hashes
	if bytes.HasPrefix(s.d[qi:], []byte(`"""`)) {
		end, err := s.scanMultiline(start, qi+3, hashes)
		if err != nil {
			return Token{}, err
		}
		s.i = end
		return s.tok(typ, start, end), nil
	}
	at := qi + 1
	for at < len(s.d) {
		r, sz := utf8.DecodeRune(s.d[at:])
		switch {
		case r == utf8.RuneError && sz == 1:
			return s.fail(ErrBadUTF8, at, at+1)
		case r == '"':
			if end, ok := s.stringEnd(at, false, hashes); ok {
				s.i = end
				return s.tok(typ, start, end), nil
			}
			at++
		case r == '\\' && hashes == 0:
			end, err := s.validEscape(at)
			if err != nil {
				return Token{}, err
			}
			at = end
		case isNewline(r):
			return s.fail(ErrNewlineInString, at, at+sz)
		case isBanned(r):
			return s.fail(ErrBannedChar, at, at+sz)
		default:
			at += sz
		}
	}
	return s.fail(unterminated, start, len(s.d))
}

// scanMultiline scans the body of a triple-quoted string starting just
// after the opening delimiter. Dedent validation happens at decode
// time; the scanner only finds the lexeme's extent.
func (s *Scanner) scanMultiline(start, at, hashes int) (int, error) {
	unterminated := ErrUnterminatedString
	if hashes > 0 {
		unterminated = ErrUnterminatedRawString
	}
	seenNewline := false
	for at < len(s.d) {
		r, sz := utf8.DecodeRune(s.d[at:])
		switch {
		case r == utf8.RuneError && sz == 1:
			return 0, s.errAt(ErrBadUTF8, at, at+1)
		case r == '"' && bytes.HasPrefix(s.d[at:], []byte(`"""`)):
			if end, ok := s.stringEnd(at, true, hashes); ok {
				return end, nil
			}
			at += 3
		case r == '\\' && hashes == 0:
			end, err := s.validEscape(at)
			if err != nil {
				return 0, err
			}
			at = end
		case isNewline(r):
			at = s.newlineEnd(at)
			seenNewline = true
		case isBanned(r):
			return 0, s.errAt(ErrBannedChar, at, at+sz)
		default:
			if !seenNewline {
				return 0, s.errAt(ErrExpectedNewline, at, at+sz)
			}
			at += sz
		}
	}
	return 0, s.errAt(unterminated, start, len(s.d))
}

// stringEnd reports whether the closing delimiter for a string with the
// given shape starts at `at`, returning the offset just past it.
func (s *Scanner) stringEnd(at int, multi bool, hashes int) (int, bool) {
	end := at + 1
	if multi {
		end = at + 3
	}
	for i := 0; i < hashes; i++ {
		if end >= len(s.d) || s.d[end] != '#' {
			return 0, false
		}
		end++
	}
	return end, true
}

// validEscape checks the escape starting at the backslash at `at` and
// returns the offset just past it. Whitespace escapes may consume
// newlines; those are recorded for position mapping.
func (s *Scanner) validEscape(at int) (int, error) {
	n, werr := escExtent(s.d, at, s.posDoc)
	if werr != nil {
		return 0, s.errAt(werr, at, at+max(n, 2))
	}
	return at + n, nil
}

// escExtent returns the byte length of the escape sequence starting at
// the backslash at d[at]. posDoc may be nil; when set, newlines eaten
// by a whitespace escape are recorded.
func escExtent(d []byte, at int, posDoc *PosDoc) (int, error) {
	_, n, emit, err := escSeq(d, at)
	if err != nil {
		return n, err
	}
	if !emit && posDoc != nil {
		for i := at + 1; i < at+n; {
			r, sz := utf8.DecodeRune(d[i:])
			if isNewline(r) {
				end := i + sz
				if r == '\r' && end < at+n && d[end] == '\n' {
					end++
				}
				posDoc.nl(end - 1)
				i = end
				continue
			}
			i += sz
		}
	}
	return n, nil
}

func hexRune(d []byte) rune {
	var v rune
	for _, c := range d {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			v |= rune(c-'a') + 10
		default:
			v |= rune(c-'A') + 10
		}
	}
	return v
}

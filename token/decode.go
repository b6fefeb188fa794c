package token

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// DecodeString turns an identifier, quoted string or raw string token
// into its decoded value: escapes resolved, raw delimiters stripped,
// multiline dedent applied. No raw lexeme survives into the result.
func DecodeString(t Token) (string, error) {
	switch t.Type {
	case TIdent:
		return string(t.Bytes), nil
	case TString:
		return decodeQuoted(t.Bytes, false)
	case TRawString:
		h := 0
		for h < len(t.Bytes) && t.Bytes[h] == '#' {
			h++
		}
		return decodeQuoted(t.Bytes[h:len(t.Bytes)-h], true)
	default:
		return "", ErrLiteral
	}
}

func decodeQuoted(d []byte, raw bool) (string, error) {
	if bytes.HasPrefix(d, []byte(`"""`)) {
		return decodeMultiline(d[3:len(d)-3], raw)
	}
	body := d[1 : len(d)-1]
	if raw {
		return string(body), nil
	}
	return unescape(body)
}

func unescape(d []byte) (string, error) {
	b := &strings.Builder{}
	at := 0
	for at < len(d) {
		if d[at] == '\\' {
			r, n, emit, err := escSeq(d, at)
			if err != nil {
				return "", err
			}
			if emit {
				b.WriteRune(r)
			}
			at += n
			continue
		}
		r, sz := utf8.DecodeRune(d[at:])
		b.WriteRune(r)
		at += sz
	}
	return b.String(), nil
}

// decodeMultiline dedents and unescapes the body of a triple-quoted
// string (the bytes between the delimiters). The whitespace prefix on
// the closing delimiter's line is stripped from every content line; a
// content line without that prefix is an error unless it is entirely
// whitespace, in which case it decodes to empty.
func decodeMultiline(body []byte, raw bool) (string, error) {
	type lineBreak struct{ start, end int }
	var breaks []lineBreak
	at := 0
	for at < len(body) {
		if !raw && body[at] == '\\' {
			_, n, _, err := escSeq(body, at)
			if err != nil {
				return "", err
			}
			at += n
			continue
		}
		r, sz := utf8.DecodeRune(body[at:])
		if isNewline(r) {
			end := at + sz
			if r == '\r' && end < len(body) && body[end] == '\n' {
				end++
			}
			breaks = append(breaks, lineBreak{at, end})
			at = end
			continue
		}
		at += sz
	}
	if len(breaks) == 0 {
		return "", ErrExpectedNewline
	}
	indent := body[breaks[len(breaks)-1].end:]
	if !allSpace(indent) {
		return "", ErrBadIndent
	}
	lines := make([]string, 0, len(breaks)-1)
	for k := 0; k+1 < len(breaks); k++ {
		line := body[breaks[k].end:breaks[k+1].start]
		if allSpace(line) {
			lines = append(lines, "")
			continue
		}
		if !bytes.HasPrefix(line, indent) {
			return "", ErrBadIndent
		}
		content := line[len(indent):]
		if raw {
			lines = append(lines, string(content))
			continue
		}
		text, err := unescape(content)
		if err != nil {
			return "", err
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n"), nil
}

func allSpace(d []byte) bool {
	for at := 0; at < len(d); {
		r, sz := utf8.DecodeRune(d[at:])
		if !isSpace(r) {
			return false
		}
		at += sz
	}
	return true
}

// escSeq decodes the escape sequence whose backslash is at d[at].
// emit is false for whitespace escapes, which consume all following
// whitespace and produce nothing.
func escSeq(d []byte, at int) (rune, int, bool, error) {
	if at+1 >= len(d) {
		return 0, 1, false, ErrUnterminatedString
	}
	r, sz := utf8.DecodeRune(d[at+1:])
	switch r {
	case 'n':
		return '\n', 1 + sz, true, nil
	case 'r':
		return '\r', 1 + sz, true, nil
	case 't':
		return '\t', 1 + sz, true, nil
	case '\\':
		return '\\', 1 + sz, true, nil
	case '"':
		return '"', 1 + sz, true, nil
	case 'b':
		return '\b', 1 + sz, true, nil
	case 'f':
		return '\f', 1 + sz, true, nil
	case 's':
		return ' ', 1 + sz, true, nil
	case 'u':
		i := at + 2
		if i >= len(d) || d[i] != '{' {
			return 0, 2, false, ErrBadEscape
		}
		i++
		hs := i
		for i < len(d) && i-hs < 6 && hexDigit(d[i]) {
			i++
		}
		if i == hs || i >= len(d) || d[i] != '}' {
			return 0, i - at, false, ErrBadEscape
		}
		v := hexRune(d[hs:i])
		if !utf8.ValidRune(v) {
			return 0, i + 1 - at, false, ErrBadEscape
		}
		return v, i + 1 - at, true, nil
	}
	if isSpace(r) || isNewline(r) {
		i := at + 1
		for i < len(d) {
			r, sz := utf8.DecodeRune(d[i:])
			if !isSpace(r) && !isNewline(r) {
				break
			}
			i += sz
		}
		return 0, i - at, false, nil
	}
	return 0, 1 + sz, false, ErrBadEscape
}

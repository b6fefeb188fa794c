package token

// Character classes from the KDL v2 grammar.

// isSpace reports whether r is in the unicode-space class, the inline
// whitespace that separates tokens without terminating a node.
func isSpace(r rune) bool {
	switch r {
	case '\t', ' ', 0xA0, 0x1680, 0x202F, 0x205F, 0x3000:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// isNewline reports whether r is in the newline class. CRLF is handled
// as one unit by the scanner, not here.
func isNewline(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// isBanned reports whether r is a disallowed-literal-code-point, illegal
// anywhere in a document outside of an initial BOM.
func isBanned(r rune) bool {
	switch {
	case r <= 0x08:
		return true
	case r >= 0x0E && r <= 0x1F:
		return true
	case r == 0x7F:
		return true
	case r == 0x200E || r == 0x200F:
		return true
	case r >= 0x202A && r <= 0x202E:
		return true
	case r >= 0x2066 && r <= 0x2069:
		return true
	case r == bom:
		return true
	}
	return false
}

const bom = 0xFEFF

// isIdentRune reports whether r may appear in a bare identifier.
func isIdentRune(r rune) bool {
	if isBanned(r) || isSpace(r) || isNewline(r) {
		return false
	}
	switch r {
	case '\\', '/', '(', ')', '{', '}', ';', '[', ']', '"', '#', '=':
		return false
	}
	return true
}

// numberLike reports whether an identifier-charset lexeme must be
// classified as a number: an optional sign, an optional dot, then an
// ASCII digit. The classification is exclusive; a number-like lexeme is
// never an identifier.
func numberLike(d []byte) bool {
	i := 0
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	if i < len(d) && d[i] == '.' {
		i++
	}
	return i < len(d) && asciiDigit(d[i])
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// reservedIdent reports whether a bare identifier lexeme collides with a
// keyword and must be rejected. The keyword forms are spelled with a
// leading '#'.
func reservedIdent(d []byte) bool {
	switch string(d) {
	case "true", "false", "null", "inf", "-inf", "nan":
		return true
	}
	return false
}

package token

import (
	"bytes"
	"errors"
	"math"
	"strconv"
)

// Number is the decoded form of a TNumber token: a radix-tagged integer
// or a float, never both.
type Number struct {
	Radix   int
	IsFloat bool
	Int     int64
	Float   float64
}

// splitNumber strips the sign and radix prefix from a number lexeme.
func splitNumber(d []byte) (neg bool, radix int, digits []byte) {
	if len(d) > 0 && (d[0] == '+' || d[0] == '-') {
		neg = d[0] == '-'
		d = d[1:]
	}
	radix = 10
	if len(d) > 2 && d[0] == '0' {
		switch d[1] {
		case 'b':
			radix = 2
			d = d[2:]
		case 'o':
			radix = 8
			d = d[2:]
		case 'x':
			radix = 16
			d = d[2:]
		}
	}
	return neg, radix, d
}

func radixDigit(c byte, radix int) bool {
	switch radix {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return hexDigit(c)
	default:
		return asciiDigit(c)
	}
}

// digitRun consumes digit (digit | '_')* for the radix, returning the
// consumed length. A run must start with a digit; after that, digits
// and separators mix freely, trailing separators included.
func digitRun(d []byte, radix int) int {
	if len(d) == 0 || !radixDigit(d[0], radix) {
		return 0
	}
	i := 1
	for i < len(d) && (radixDigit(d[i], radix) || d[i] == '_') {
		i++
	}
	return i
}

// checkNumber validates the syntax of a number lexeme: an optional
// sign, then either a radix-prefixed integer or a decimal with optional
// fraction and exponent. A non-decimal radix cannot carry a fraction or
// exponent.
func checkNumber(d []byte) error {
	_, radix, rest := splitNumber(d)
	n := digitRun(rest, radix)
	if n == 0 {
		return ErrNumber
	}
	rest = rest[n:]
	if radix != 10 {
		if len(rest) != 0 {
			return ErrNumber
		}
		return nil
	}
	if len(rest) > 0 && rest[0] == '.' {
		fn := digitRun(rest[1:], 10)
		if fn == 0 {
			return ErrNumber
		}
		rest = rest[1+fn:]
	}
	if len(rest) > 0 && (rest[0] == 'e' || rest[0] == 'E') {
		rest = rest[1:]
		if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
			rest = rest[1:]
		}
		en := digitRun(rest, 10)
		if en == 0 || en != len(rest) {
			return ErrNumber
		}
		rest = rest[en:]
	}
	if len(rest) != 0 {
		return ErrNumber
	}
	return nil
}

// DecodeNumber turns a validated TNumber lexeme into a Number. Integer
// values outside int64 produce ErrNumberRange rather than wrapping or
// degrading to a float.
func DecodeNumber(d []byte) (Number, error) {
	if err := checkNumber(d); err != nil {
		return Number{}, err
	}
	neg, radix, digits := splitNumber(d)
	clean := bytes.ReplaceAll(digits, []byte{'_'}, nil)
	if radix == 10 && bytes.ContainsAny(clean, ".eE") {
		s := string(clean)
		if neg {
			s = "-" + s
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) {
			return Number{}, ErrNumberRange
		}
		return Number{Radix: 10, IsFloat: true, Float: f}, nil
	}
	u, err := strconv.ParseUint(string(clean), radix, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Number{}, ErrNumberRange
		}
		return Number{}, ErrNumber
	}
	if neg {
		if u > 1<<63 {
			return Number{}, ErrNumberRange
		}
		if u == 1<<63 {
			return Number{Radix: radix, Int: math.MinInt64}, nil
		}
		return Number{Radix: radix, Int: -int64(u)}, nil
	}
	if u > math.MaxInt64 {
		return Number{}, ErrNumberRange
	}
	return Number{Radix: radix, Int: int64(u)}, nil
}

package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8               = errors.New("bad utf8")
	ErrBannedChar            = errors.New("banned character")
	ErrUnterminatedString    = errors.New("unterminated string")
	ErrUnterminatedRawString = errors.New("unterminated raw string")
	ErrUnterminatedComment   = errors.New("unterminated comment")
	ErrBadEscape             = errors.New("bad escape")
	ErrBadIndent             = errors.New("multiline indentation mismatch")
	ErrExpectedNewline       = errors.New("expected newline")
	ErrNumber                = errors.New("bad number literal")
	ErrNumberRange           = errors.New("number out of range")
	ErrIdentChar             = errors.New("bad identifier character")
	ErrReservedIdent         = errors.New("reserved identifier")
	ErrKeyword               = errors.New("unknown keyword")
	ErrEscline               = errors.New("malformed line continuation")
	ErrNewlineInString       = errors.New("newline in single-line string")
	ErrLiteral               = errors.New("not a string-valued token")
)

// ScanError is the error type produced by the Scanner. Err is always one
// of the sentinel values above.
type ScanError struct {
	Err  error
	Span Span
}

func NewScanError(e error, sp Span) *ScanError {
	return &ScanError{Err: e, Span: sp}
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Span.String())
}

package diag

import (
	"errors"

	"github.com/ferronweb/kdlite/token"
)

var scanKinds = []struct {
	err  error
	kind Kind
}{
	{token.ErrUnterminatedString, UnterminatedString},
	{token.ErrNewlineInString, UnterminatedString},
	{token.ErrUnterminatedRawString, UnterminatedRawString},
	{token.ErrUnterminatedComment, UnterminatedComment},
	{token.ErrBadEscape, InvalidEscape},
	{token.ErrNumber, InvalidNumberLiteral},
	{token.ErrNumberRange, IntegerOverflow},
	{token.ErrIdentChar, InvalidIdentifierCharacter},
	{token.ErrKeyword, InvalidIdentifierCharacter},
	{token.ErrReservedIdent, ReservedIdentifier},
	{token.ErrBannedChar, BannedCharacter},
	{token.ErrBadUTF8, BannedCharacter},
	{token.ErrBadIndent, InvalidIndentation},
	{token.ErrExpectedNewline, InvalidIndentation},
	{token.ErrEscline, UnexpectedToken},
}

// FromScanError maps a scanner error to a Diagnostic, keeping its span.
func FromScanError(err error) *Diagnostic {
	se := &token.ScanError{}
	if !errors.As(err, &se) {
		return New(UnexpectedToken, token.Span{}, "%s", err.Error())
	}
	for _, m := range scanKinds {
		if errors.Is(se.Err, m.err) {
			return &Diagnostic{Kind: m.kind, Span: se.Span, Msg: se.Err.Error()}
		}
	}
	return &Diagnostic{Kind: UnexpectedToken, Span: se.Span, Msg: se.Err.Error()}
}

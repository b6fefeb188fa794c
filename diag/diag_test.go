package diag

import (
	"errors"
	"testing"

	"github.com/ferronweb/kdlite/token"
)

func TestFromScanError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"unterminated string", token.ErrUnterminatedString, UnterminatedString},
		{"newline folds into unterminated", token.ErrNewlineInString, UnterminatedString},
		{"raw string", token.ErrUnterminatedRawString, UnterminatedRawString},
		{"comment", token.ErrUnterminatedComment, UnterminatedComment},
		{"escape", token.ErrBadEscape, InvalidEscape},
		{"number", token.ErrNumber, InvalidNumberLiteral},
		{"range", token.ErrNumberRange, IntegerOverflow},
		{"reserved", token.ErrReservedIdent, ReservedIdentifier},
		{"banned", token.ErrBannedChar, BannedCharacter},
		{"utf8 folds into banned", token.ErrBadUTF8, BannedCharacter},
		{"indent", token.ErrBadIndent, InvalidIndentation},
		{"unknown sentinel falls back", errors.New("surprise"), UnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := token.Span{Start: 3, End: 7}
			d := FromScanError(token.NewScanError(tt.err, sp))
			if d.Kind != tt.want {
				t.Errorf("kind = %v, want %v", d.Kind, tt.want)
			}
			if d.Span.Start != 3 || d.Span.End != 7 {
				t.Errorf("span = [%d, %d), want [3, 7)", d.Span.Start, d.Span.End)
			}
		})
	}
}

func TestFromScanErrorBare(t *testing.T) {
	// not a ScanError at all
	d := FromScanError(errors.New("plain"))
	if d.Kind != UnexpectedToken || d.Msg != "plain" {
		t.Errorf("diagnostic = %v", d)
	}
}

func TestListErr(t *testing.T) {
	var l List
	if l.Err() != nil {
		t.Error("empty list is an error")
	}
	l.Addf(UnexpectedToken, token.Span{}, "first")
	l.Addf(IntegerOverflow, token.Span{}, "second")
	if l.Err() == nil {
		t.Error("non-empty list is not an error")
	}
	if len(l) != 2 {
		t.Errorf("len = %d, want 2", len(l))
	}
	msg := l.Error()
	if msg == "" || msg[0] != '2' {
		t.Errorf("Error() = %q, want a two-problem summary", msg)
	}
}

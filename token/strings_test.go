package token

import (
	"errors"
	"testing"
)

func scanOne(t *testing.T, in string) Token {
	t.Helper()
	toks, err := Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", in, err)
	}
	if len(toks) != 2 || toks[1].Type != TEOF {
		t.Fatalf("Tokenize(%q) = %d tokens, want one plus EOF", in, len(toks))
	}
	return toks[0]
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `"hello"`, want: "hello"},
		{name: "escapes", in: `"a\nb\tc\\d\"e"`, want: "a\nb\tc\\d\"e"},
		{name: "control escapes", in: `"\b\f\r\s"`, want: "\b\f\r "},
		{name: "unicode escape", in: `"\u{1F600}"`, want: "\U0001F600"},
		{name: "short unicode escape", in: `"\u{a}"`, want: "\n"},
		{
			name: "whitespace escape",
			in:   "\"one \\\n      two\"",
			want: "one two",
		},
		{name: "raw keeps backslashes", in: `#"a\nb"#`, want: `a\nb`},
		{name: "raw with pounds", in: `##"a "# b"##`, want: `a "# b`},
		{
			name: "multiline dedent",
			in:   "\"\"\"\n    first\n      second\n\n    \"\"\"",
			want: "first\n  second\n",
		},
		{
			name: "multiline empty body",
			in:   "\"\"\"\n    \"\"\"",
			want: "",
		},
		{
			name: "multiline short whitespace line ok",
			in:   "\"\"\"\n    a\n  \n    b\n    \"\"\"",
			want: "a\n\nb",
		},
		{
			name: "raw multiline",
			in:   "#\"\"\"\n  a\\n\n  \"\"\"#",
			want: `a\n`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(scanOne(t, tt.in))
			if err != nil {
				t.Fatalf("DecodeString(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("DecodeString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeStringErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{
			name: "insufficient indent",
			in:   "\"\"\"\n    a\n  b\n    \"\"\"",
			want: ErrBadIndent,
		},
		{
			name: "closing line not whitespace",
			in:   "\"\"\"\n  a\n  x\"\"\"",
			want: ErrBadIndent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeString(scanOne(t, tt.in))
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodeString(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestMultilineNeedsNewline(t *testing.T) {
	_, err := Tokenize(nil, []byte("\"\"\"abc\"\"\""))
	if !errors.Is(err, ErrExpectedNewline) {
		t.Errorf("content on opening line: error = %v, want %v", err, ErrExpectedNewline)
	}
}

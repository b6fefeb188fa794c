package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
		{"t", TreeFormat},
		{"tree", TreeFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(xml) error = %v, want ErrBadFormat", err)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, f := range []Format{JSONFormat, YAMLFormat, TreeFormat} {
		var g Format
		if err := g.UnmarshalText([]byte(f.String())); err != nil {
			t.Errorf("round trip %v: %v", f, err)
			continue
		}
		if g != f {
			t.Errorf("round trip %v produced %v", f, g)
		}
	}
}

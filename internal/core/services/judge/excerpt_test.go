package judge

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"short ascii", "Traceback: boom"},
		{"long ascii", strings.Repeat("x", maxStderrExcerpt+100)},
		{"multibyte at the cut", strings.Repeat("é", maxStderrExcerpt)},
		{"wide runes", strings.Repeat("判定", maxStderrExcerpt)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := excerpt(tt.in)
			if len(got) > maxStderrExcerpt {
				t.Errorf("len = %d, want <= %d", len(got), maxStderrExcerpt)
			}
			if !utf8.ValidString(got) {
				t.Errorf("excerpt is not valid UTF-8: %q", got[len(got)-4:])
			}
			if !strings.HasPrefix(tt.in, got) {
				t.Error("excerpt is not a prefix of the input")
			}
		})
	}
}

func TestExcerptKeepsShortInputIntact(t *testing.T) {
	in := "exactly as given"
	if got := excerpt(in); got != in {
		t.Errorf("excerpt(%q) = %q", in, got)
	}
}

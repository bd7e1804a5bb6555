package text

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "ABC abc 123", "ABC abc 123"},
		{"newline", "A\nB", "A\nB"},
		{"accents", "CAFÉ crème", "CAFE creme"},
		{"fullwidth", "ＡＢＣ", "ABC"},
		{"ligature", "ﬁx", "fix"},
		{"no ascii form", "A€B", "A?B"},
		{"cjk", "世", "?"},
		{"delete", "A\x7fB", "A?B"},
		{"invalid utf8", "A\xffB", "A?B"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.in); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

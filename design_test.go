package glyphatlas

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewDesignTable(t *testing.T) {
	table, err := NewDesignTable(
		Design{Code: 'Z', Pattern: "#"},
		Design{Code: '0', Pattern: "."},
		Design{Code: 'a', Pattern: "#."},
	)
	if err != nil {
		t.Fatalf("NewDesignTable() error: %v", err)
	}

	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
	if diff := cmp.Diff([]byte{'Z', '0', 'a'}, table.Codes()); diff != "" {
		t.Errorf("Codes() mismatch (-want +got):\n%s", diff)
	}

	d, ok := table.Lookup('a')
	if !ok {
		t.Fatal("Lookup('a') not found")
	}
	if d.Pattern != "#." || d.Len() != 2 || !d.IsSet(0) || d.IsSet(1) {
		t.Errorf("Lookup('a') = %+v, want pattern \"#.\"", d)
	}

	if _, ok := table.Lookup('b'); ok {
		t.Error("Lookup('b') found an unregistered design")
	}
	if _, ok := table.Lookup(200); ok {
		t.Error("Lookup(200) found a design outside the code space")
	}
}

func TestNewDesignTable_CopiesDesigns(t *testing.T) {
	designs := []Design{{Code: 'A', Pattern: "#"}}
	table, err := NewDesignTable(designs...)
	if err != nil {
		t.Fatal(err)
	}
	designs[0].Pattern = "."

	d, _ := table.Lookup('A')
	if d.Pattern != "#" {
		t.Errorf("table design changed with caller slice: %q", d.Pattern)
	}

	codes := table.Codes()
	codes[0] = 'X'
	if table.Codes()[0] != 'A' {
		t.Error("Codes() exposes the internal order slice")
	}
}

func TestNewDesignTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		designs []Design
		want    error
		code    byte
	}{
		{
			name:    "duplicate",
			designs: []Design{{Code: 'A', Pattern: "#"}, {Code: 'A', Pattern: "."}},
			want:    ErrDuplicateDesign,
			code:    'A',
		},
		{
			name:    "topmost code",
			designs: []Design{{Code: CodeSpace - 1, Pattern: "#"}},
			want:    ErrCodeOutOfRange,
			code:    CodeSpace - 1,
		},
		{
			name:    "outside code space",
			designs: []Design{{Code: 0xe9, Pattern: "#"}},
			want:    ErrCodeOutOfRange,
			code:    0xe9,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewDesignTable(tt.designs...)
			if table != nil {
				t.Error("NewDesignTable() returned a table on error")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewDesignTable() = %v, want %v", err, tt.want)
			}
			var designErr *DesignError
			if !errors.As(err, &designErr) || designErr.Code != tt.code {
				t.Errorf("NewDesignTable() = %v, want DesignError for code %d", err, tt.code)
			}
		})
	}
}

func TestNewDesignTable_AcceptsMaxCode(t *testing.T) {
	if _, err := NewDesignTable(Design{Code: MaxCode, Pattern: "#"}); err != nil {
		t.Errorf("NewDesignTable(MaxCode) = %v, want nil", err)
	}
}

func TestDefaultDesigns(t *testing.T) {
	table := DefaultDesigns()
	if table != DefaultDesigns() {
		t.Error("DefaultDesigns() built the table twice")
	}
	if diff := cmp.Diff([]byte("ABC"), table.Codes()); diff != "" {
		t.Errorf("Codes() mismatch (-want +got):\n%s", diff)
	}

	cfg := DefaultConfig()
	for _, code := range table.Codes() {
		d, _ := table.Lookup(code)
		if d.Len() != cfg.GlyphLen() {
			t.Errorf("design %q has %d pixels, want %d", code, d.Len(), cfg.GlyphLen())
		}
		if strings.Trim(d.Pattern, ".#") != "" {
			t.Errorf("design %q uses symbols other than '.' and '#'", code)
		}
	}
}

func TestPattern(t *testing.T) {
	if got := Pattern(".#.", "#.#"); got != ".#.#.#" {
		t.Errorf("Pattern() = %q, want %q", got, ".#.#.#")
	}
}

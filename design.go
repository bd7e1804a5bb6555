package glyphatlas

import "strings"

// SetSymbol marks a set pixel in a design pattern. Any other byte is clear.
const SetSymbol = '#'

// MaxCode is the highest character code a design may be registered for.
// The topmost code of the code space (DEL) is never laid out.
const MaxCode = CodeSpace - 2

// Design is a monochrome glyph bitmap for one character code.
// Pattern lists the pixels row-major, top row first.
type Design struct {
	Code    byte
	Pattern string
}

// Len returns the number of pixels described by the pattern.
func (d *Design) Len() int {
	return len(d.Pattern)
}

// IsSet reports whether pixel i of the pattern is set.
func (d *Design) IsSet(i int) bool {
	return d.Pattern[i] == SetSymbol
}

// Pattern joins design rows into a single pattern string.
//
//	glyphatlas.Pattern(
//	    ".#.",
//	    "#.#",
//	)
func Pattern(rows ...string) string {
	return strings.Join(rows, "")
}

// DesignTable is an immutable mapping from character code to glyph design.
// It is safe for concurrent use by any number of atlas builds.
type DesignTable struct {
	designs [CodeSpace]*Design
	order   []byte
}

// NewDesignTable registers designs in the given order.
// Pattern lengths are not checked here; the atlas build skips designs whose
// length does not match its glyph size.
func NewDesignTable(designs ...Design) (*DesignTable, error) {
	t := &DesignTable{order: make([]byte, 0, len(designs))}
	for i := range designs {
		d := designs[i]
		if d.Code > MaxCode {
			return nil, &DesignError{Code: d.Code, Err: ErrCodeOutOfRange}
		}
		if t.designs[d.Code] != nil {
			return nil, &DesignError{Code: d.Code, Err: ErrDuplicateDesign}
		}
		t.designs[d.Code] = &d
		t.order = append(t.order, d.Code)
	}
	return t, nil
}

// Lookup returns the design registered for code.
func (t *DesignTable) Lookup(code byte) (*Design, bool) {
	if int(code) >= CodeSpace {
		return nil, false
	}
	d := t.designs[code]
	return d, d != nil
}

// Codes returns the registered codes in registration order.
func (t *DesignTable) Codes() []byte {
	codes := make([]byte, len(t.order))
	copy(codes, t.order)
	return codes
}

// Len returns the number of registered designs.
func (t *DesignTable) Len() int {
	return len(t.order)
}

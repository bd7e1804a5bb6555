package text

import (
	"github.com/gogpu/glyphatlas"
)

// LayoutOptions configures text layout behavior.
type LayoutOptions struct {
	// X and Y place the top-left corner of the first line.
	X, Y float32

	// Scale multiplies glyph size and advance. Values <= 0 mean 1.
	Scale float32

	// LineSpacing is a multiplier for the line advance (the cell height).
	// Values <= 0 mean 1.
	LineSpacing float32
}

// DefaultLayoutOptions returns layout options for unscaled text at the
// origin.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		Scale:       1,
		LineSpacing: 1,
	}
}

// Layout positions the characters of s as quads textured from a.
//
// The pen starts at (X, Y) and advances by the atlas cell pitch times
// Scale for every character, so columns line up like on a terminal.
// A '\n' moves the pen to the start of the next line. Characters without
// a placed glyph, including any rune outside the code space, advance the
// pen without emitting a quad. Pass the text through Fold first to map
// accented or full-width characters onto ASCII.
func Layout(a *glyphatlas.Atlas, s string, opts LayoutOptions) []Quad {
	if a == nil || s == "" {
		return nil
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	spacing := opts.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}

	cfg := a.Config()
	cw, ch := cfg.CellSize()
	advance := float32(cw) * scale
	lineAdvance := float32(ch) * scale * spacing
	gw := float32(cfg.GlyphWidth) * scale
	gh := float32(cfg.GlyphHeight) * scale

	quads := make([]Quad, 0, len(s))
	x, y := opts.X, opts.Y
	for _, r := range s {
		if r == '\n' {
			x = opts.X
			y += lineAdvance
			continue
		}
		if r >= 0 && r < glyphatlas.CodeSpace {
			if info, ok := a.Glyph(byte(r)); ok {
				reg := info.Region
				quads = append(quads, Quad{
					X0: x, Y0: y, X1: x + gw, Y1: y + gh,
					U0: reg.U0, V0: reg.V0, U1: reg.U1, V1: reg.V1,
				})
			}
		}
		x += advance
	}
	return quads
}

package text

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphatlas"
)

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	ascent int // pixels above the baseline; -1 derives it from the glyph height
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{ascent: -1}
}

// WithAscent sets the number of glyph rows above the baseline.
// The default reserves the bottom quarter of the glyph for descenders,
// which places the baseline under row 7 of the built-in 5x9 designs.
func WithAscent(rows int) FaceOption {
	return func(c *faceConfig) {
		c.ascent = rows
	}
}

// Face is a golang.org/x/image/font.Face that draws glyphs from an atlas.
//
// The face holds its own coverage mask and glyph bounds, so it stays
// usable after the atlas is destroyed. Every glyph has the same advance,
// the atlas cell pitch. ASCII codes without a placed glyph draw nothing
// but still advance; runes outside ASCII are reported as missing.
//
// Face is safe for concurrent use.
type Face struct {
	mask    *image.Alpha
	bounds  [glyphatlas.CodeSpace]image.Rectangle
	placed  [glyphatlas.CodeSpace]bool
	width   int
	height  int
	ascent  int
	advance fixed.Int26_6
	lineGap int
}

var _ font.Face = (*Face)(nil)

// NewFace builds a face from the placed glyphs of a.
// Pixels equal to the atlas foreground color are fully covered; every
// other pixel is transparent.
func NewFace(a *glyphatlas.Atlas, opts ...FaceOption) (*Face, error) {
	if a == nil {
		return nil, ErrNilAtlas
	}
	cfg := defaultFaceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ac := a.Config()
	ascent := cfg.ascent
	if ascent < 0 || ascent > ac.GlyphHeight {
		ascent = ac.GlyphHeight - ac.GlyphHeight/4
	}
	cw, _ := ac.CellSize()

	f := &Face{
		mask:    coverageMask(a.Pixmap(), ac.Foreground),
		width:   ac.GlyphWidth,
		height:  ac.GlyphHeight,
		ascent:  ascent,
		advance: fixed.I(cw),
		lineGap: ac.Padding,
	}
	for _, code := range a.PlacedCodes() {
		info, _ := a.Glyph(code)
		f.bounds[code] = info.Region.Rect()
		f.placed[code] = true
	}
	return f, nil
}

// coverageMask converts the atlas pixels into an alpha mask.
func coverageMask(pm *glyphatlas.Pixmap, fg color.NRGBA) *image.Alpha {
	mask := image.NewAlpha(pm.Bounds())
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.PixelAt(x, y) == fg {
				mask.Pix[y*mask.Stride+x] = 0xff
			}
		}
	}
	return mask
}

// lookup returns whether r is in the code space and whether it has a
// placed glyph.
func (f *Face) lookup(r rune) (inRange, placed bool) {
	if r < 0 || r >= glyphatlas.CodeSpace {
		return false, false
	}
	return true, f.placed[r]
}

// Close implements font.Face.
func (f *Face) Close() error {
	return nil
}

// Glyph implements font.Face. The glyph's top-left pixel is drawn ascent
// rows above dot.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {

	inRange, placed := f.lookup(r)
	if !inRange {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	if !placed {
		return image.Rectangle{}, f.mask, image.Point{}, f.advance, true
	}
	x := dot.X.Round()
	y := dot.Y.Round() - f.ascent
	dr = image.Rect(x, y, x+f.width, y+f.height)
	return dr, f.mask, f.bounds[r].Min, f.advance, true
}

// GlyphBounds implements font.Face. Bounds are relative to the dot.
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	inRange, placed := f.lookup(r)
	if !inRange {
		return fixed.Rectangle26_6{}, 0, false
	}
	if !placed {
		return fixed.Rectangle26_6{}, f.advance, true
	}
	bounds = fixed.Rectangle26_6{
		Min: fixed.P(0, -f.ascent),
		Max: fixed.P(f.width, f.height-f.ascent),
	}
	return bounds, f.advance, true
}

// GlyphAdvance implements font.Face.
func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	inRange, _ := f.lookup(r)
	if !inRange {
		return 0, false
	}
	return f.advance, true
}

// Kern implements font.Face. Bitmap glyphs are never kerned.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

// Metrics implements font.Face.
func (f *Face) Metrics() font.Metrics {
	return font.Metrics{
		Height:     fixed.I(f.height + f.lineGap),
		Ascent:     fixed.I(f.ascent),
		Descent:    fixed.I(f.height - f.ascent),
		CapHeight:  fixed.I(f.ascent),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

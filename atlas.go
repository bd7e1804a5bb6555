package glyphatlas

import (
	"image"
)

// GlyphStatus tells what happened to a character code during the build.
type GlyphStatus uint8

const (
	// GlyphUnregistered marks a code without a design.
	GlyphUnregistered GlyphStatus = iota

	// GlyphMalformed marks a design whose pattern length does not match
	// the glyph size. It was skipped.
	GlyphMalformed

	// GlyphUnplaced marks a valid design that found no free grid cell.
	GlyphUnplaced

	// GlyphPlaced marks a glyph plotted into the atlas with a valid Region.
	GlyphPlaced
)

// String returns the status name.
func (s GlyphStatus) String() string {
	switch s {
	case GlyphUnregistered:
		return "unregistered"
	case GlyphMalformed:
		return "malformed"
	case GlyphUnplaced:
		return "unplaced"
	case GlyphPlaced:
		return "placed"
	default:
		return "unknown"
	}
}

// GlyphInfo is the per-code record of an atlas.
type GlyphInfo struct {
	// Design is the registered design, nil for unregistered codes.
	// It is shared with the DesignTable and must not be modified.
	Design *Design

	// Status tells whether Region is usable.
	Status GlyphStatus

	// Region is set only when Status is GlyphPlaced.
	Region Region
}

// Placed reports whether the glyph has a usable Region.
func (g GlyphInfo) Placed() bool {
	return g.Status == GlyphPlaced
}

// Stats summarizes an atlas build.
type Stats struct {
	Registered int // designs found in the iterated code range
	Placed     int
	Malformed  int
	Unplaced   int
	Capacity   int // grid cells
}

// Atlas is a bitmap font texture atlas: one RGBA pixel buffer holding every
// placed glyph at a fixed grid position, plus the texture coordinates of
// each glyph. An Atlas is immutable once built; its query methods are safe
// for concurrent use until Destroy is called.
type Atlas struct {
	config Config
	pixmap *Pixmap
	glyphs *[CodeSpace]GlyphInfo
	stats  Stats
}

// Create builds an atlas from DefaultDesigns with DefaultConfig.
func Create() (*Atlas, error) {
	return New(DefaultDesigns(), DefaultConfig())
}

// New builds an atlas from the designs of table. The whole build runs
// synchronously: New returns either a complete atlas or nil and an error.
//
// Designs of the wrong size and designs that do not fit in the grid are
// skipped with a warning on Logger; they do not fail the build.
func New(table *DesignTable, cfg Config) (*Atlas, error) {
	if table == nil {
		return nil, ErrNilDesignTable
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.checkTextureSize(); err != nil {
		return nil, err
	}

	w, h := cfg.TextureSize()
	pm := NewPixmap(w, h)
	pm.Clear(cfg.Background)

	a := &Atlas{
		config: cfg,
		pixmap: pm,
		glyphs: new([CodeSpace]GlyphInfo),
	}
	a.build(table)
	return a, nil
}

// build lays out, plots and records every design of table in one pass
// over the code space. The topmost code is not visited.
func (a *Atlas) build(table *DesignTable) {
	log := Logger()
	cfg := &a.config

	cw, ch := cfg.CellSize()
	grid := NewGridAllocator(cfg.Columns, cfg.Rows, cw, ch)
	want := cfg.GlyphLen()
	a.stats.Capacity = grid.Capacity()

	for code := 0; code < CodeSpace-1; code++ {
		d, ok := table.Lookup(byte(code))
		if !ok {
			continue
		}
		info := &a.glyphs[code]
		info.Design = d
		a.stats.Registered++

		if d.Len() != want {
			log.Warn("glyphatlas: skipping glyph design with wrong size",
				"code", code, "char", string(rune(code)), "len", d.Len(), "want", want)
			info.Status = GlyphMalformed
			a.stats.Malformed++
			continue
		}

		x, y, ok := grid.Allocate()
		if !ok {
			info.Status = GlyphUnplaced
			a.stats.Unplaced++
			continue
		}

		minX, minY := x+cfg.Padding, y+cfg.Padding
		bounds := image.Rect(minX, minY, minX+cfg.GlyphWidth, minY+cfg.GlyphHeight)
		a.plot(d, bounds)
		info.Region = newRegion(bounds, a.pixmap.Width(), a.pixmap.Height())
		info.Status = GlyphPlaced
		a.stats.Placed++
	}

	if a.stats.Unplaced > 0 {
		log.Warn("glyphatlas: atlas grid exhausted",
			"unplaced", a.stats.Unplaced, "capacity", a.stats.Capacity)
	}
	log.Debug("glyphatlas: atlas built",
		"width", a.pixmap.Width(), "height", a.pixmap.Height(),
		"placed", a.stats.Placed, "capacity", a.stats.Capacity)
}

// plot writes the set pixels of d into bounds. Clear pixels keep the
// background. bounds lies inside the pixmap by construction of the grid.
func (a *Atlas) plot(d *Design, bounds image.Rectangle) {
	w := bounds.Dx()
	fg := a.config.Foreground
	for i := 0; i < d.Len(); i++ {
		if d.IsSet(i) {
			a.pixmap.set(bounds.Min.X+i%w, bounds.Min.Y+i/w, fg)
		}
	}
}

// Texture returns the atlas pixel buffer and its dimensions.
func (a *Atlas) Texture() TextureInfo {
	return newTextureInfo(a.pixmap)
}

// Glyph returns the record for code. ok is false unless the glyph was
// placed; the Region of a glyph that was not placed must not be used.
func (a *Atlas) Glyph(code byte) (info GlyphInfo, ok bool) {
	if int(code) >= CodeSpace {
		return GlyphInfo{}, false
	}
	info = a.glyphs[code]
	return info, info.Placed()
}

// PlacedCodes returns the codes of all placed glyphs in ascending order,
// which is also their cell order.
func (a *Atlas) PlacedCodes() []byte {
	codes := make([]byte, 0, a.stats.Placed)
	for code := range a.glyphs {
		if a.glyphs[code].Placed() {
			codes = append(codes, byte(code))
		}
	}
	return codes
}

// Stats returns the build statistics.
func (a *Atlas) Stats() Stats {
	return a.stats
}

// Config returns the configuration the atlas was built with.
func (a *Atlas) Config() Config {
	return a.config
}

// Pixmap returns the atlas pixel buffer. It must not be modified.
func (a *Atlas) Pixmap() *Pixmap {
	return a.pixmap
}

// Image returns a copy of the atlas as an image.RGBA.
func (a *Atlas) Image() *image.RGBA {
	return a.pixmap.ToImage()
}

// Destroy releases the atlas referenced by ref and sets *ref to nil.
// It does nothing if ref or *ref is nil. The atlas, its TextureInfo
// pixels and its glyph records must not be used afterwards.
func Destroy(ref **Atlas) {
	if ref == nil || *ref == nil {
		return
	}
	a := *ref
	a.pixmap.release()
	a.pixmap = nil
	a.glyphs = nil
	*ref = nil
}

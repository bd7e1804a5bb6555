package glyphatlas

import (
	"fmt"
	"image/color"
)

// CodeSpace is the number of character codes an atlas indexes (7-bit ASCII).
const CodeSpace = 128

// Texture limits. A build whose atlas exceeds them fails as if the pixel
// buffer could not be allocated.
const (
	// MaxTextureSize is the maximum atlas width or height in pixels.
	MaxTextureSize = 8192

	// MaxTextureBytes is the maximum size of the atlas pixel buffer.
	MaxTextureBytes = 64 << 20
)

// Channels is the number of bytes per atlas pixel (R, G, B, A).
const Channels = 4

// Config holds atlas configuration.
type Config struct {
	// GlyphWidth is the width of every glyph design in pixels.
	// Default: 5
	GlyphWidth int

	// GlyphHeight is the height of every glyph design in pixels.
	// Default: 9
	GlyphHeight int

	// Columns is the number of grid cells per atlas row.
	// Default: 25
	Columns int

	// Rows is the number of grid cell rows.
	// Default: 4
	Rows int

	// Padding is the clear margin around every glyph to prevent bleeding.
	// Default: 1
	Padding int

	// Background fills every pixel not covered by a set glyph pixel.
	// Default: opaque black
	Background color.NRGBA

	// Foreground is written for every set glyph pixel.
	// Default: opaque white
	Foreground color.NRGBA
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		GlyphWidth:  5,
		GlyphHeight: 9,
		Columns:     25,
		Rows:        4,
		Padding:     1,
		Background:  Black,
		Foreground:  White,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.GlyphWidth < 1 {
		return &ConfigError{Field: "GlyphWidth", Reason: "must be at least 1"}
	}
	if c.GlyphWidth > MaxTextureSize {
		return &ConfigError{Field: "GlyphWidth", Reason: "must be at most MaxTextureSize"}
	}
	if c.GlyphHeight < 1 {
		return &ConfigError{Field: "GlyphHeight", Reason: "must be at least 1"}
	}
	if c.GlyphHeight > MaxTextureSize {
		return &ConfigError{Field: "GlyphHeight", Reason: "must be at most MaxTextureSize"}
	}
	if c.Columns < 1 {
		return &ConfigError{Field: "Columns", Reason: "must be at least 1"}
	}
	if c.Columns > MaxTextureSize {
		return &ConfigError{Field: "Columns", Reason: "must be at most MaxTextureSize"}
	}
	if c.Rows < 1 {
		return &ConfigError{Field: "Rows", Reason: "must be at least 1"}
	}
	if c.Rows > MaxTextureSize {
		return &ConfigError{Field: "Rows", Reason: "must be at most MaxTextureSize"}
	}
	if c.Padding < 1 {
		return &ConfigError{Field: "Padding", Reason: "must be at least 1"}
	}
	if c.Padding > MaxTextureSize {
		return &ConfigError{Field: "Padding", Reason: "must be at most MaxTextureSize"}
	}
	if c.Background.A != 255 {
		return &ConfigError{Field: "Background", Reason: "must be opaque"}
	}
	if c.Foreground.A != 255 {
		return &ConfigError{Field: "Foreground", Reason: "must be opaque"}
	}
	return nil
}

// GlyphLen returns the pattern length every design must have.
func (c *Config) GlyphLen() int {
	return c.GlyphWidth * c.GlyphHeight
}

// CellSize returns the grid pitch: glyph size plus one padding unit.
func (c *Config) CellSize() (w, h int) {
	return c.GlyphWidth + c.Padding, c.GlyphHeight + c.Padding
}

// TextureSize returns the atlas dimensions in pixels. The trailing padding
// closes the right and bottom edges of the last column and row.
func (c *Config) TextureSize() (w, h int) {
	cw, ch := c.CellSize()
	return c.Columns*cw + c.Padding, c.Rows*ch + c.Padding
}

// checkTextureSize reports ErrTextureTooLarge when the atlas would exceed
// the texture limits. Must be called on a validated config.
func (c *Config) checkTextureSize() error {
	w, h := c.TextureSize()
	if w > MaxTextureSize || h > MaxTextureSize {
		return fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrTextureTooLarge, w, h, MaxTextureSize, MaxTextureSize)
	}
	if n := w * h * Channels; n > MaxTextureBytes {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrTextureTooLarge, n, MaxTextureBytes)
	}
	return nil
}

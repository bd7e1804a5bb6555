package glyphatlas

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is an owned rectangular RGBA pixel buffer, 4 bytes per pixel,
// row-major, top row first.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
// All pixels start as transparent black.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*Channels),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Stride returns the number of bytes per pixel row.
func (p *Pixmap) Stride() int {
	return p.width * Channels
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// inBounds reports whether (x, y) addresses a pixel of the pixmap.
func (p *Pixmap) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// offset returns the index of the red channel of pixel (x, y).
func (p *Pixmap) offset(x, y int) int {
	return y*p.Stride() + x*Channels
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if !p.inBounds(x, y) {
		return
	}
	p.set(x, y, c)
}

// set writes pixel (x, y) without a bounds check.
func (p *Pixmap) set(x, y int, c color.NRGBA) {
	i := p.offset(x, y)
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// PixelAt returns the color of a single pixel.
// Out-of-bounds coordinates return transparent black.
func (p *Pixmap) PixelAt(x, y int) color.NRGBA {
	if !p.inBounds(x, y) {
		return color.NRGBA{}
	}
	i := p.offset(x, y)
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.NRGBA) {
	for i := 0; i < len(p.data); i += Channels {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// release drops the pixel buffer. The pixmap is empty afterwards.
func (p *Pixmap) release() {
	p.data = nil
	p.width = 0
	p.height = 0
}

// ToImage converts the pixmap to an image.RGBA.
// Atlas pixels are opaque, so no premultiplication is needed.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.PixelAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

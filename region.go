package glyphatlas

import (
	"fmt"
	"image"
)

// Region describes a glyph's location in the atlas.
type Region struct {
	// UV coordinates [0, 1] for texture sampling. (U0, V0) is the min
	// corner and (U1, V1) the max corner, both at pixel centers.
	U0, V0, U1, V1 float32

	// Pixel coordinates in atlas. The glyph covers
	// [X, X+Width-1] x [Y, Y+Height-1].
	X, Y, Width, Height int
}

// newRegion records the texture coordinates of the pixel bounds r in an
// atlas of atlasW x atlasH pixels. Both corners sample the center of
// their pixel so a filtering sampler never reaches into the padding.
func newRegion(r image.Rectangle, atlasW, atlasH int) Region {
	minX, minY := r.Min.X, r.Min.Y
	maxX, maxY := r.Max.X-1, r.Max.Y-1
	return Region{
		U0:     texelCenter(minX, atlasW),
		V0:     texelCenter(minY, atlasH),
		U1:     texelCenter(maxX, atlasW),
		V1:     texelCenter(maxY, atlasH),
		X:      minX,
		Y:      minY,
		Width:  r.Dx(),
		Height: r.Dy(),
	}
}

// texelCenter maps pixel index px of an axis of size n to the normalized
// coordinate of its center.
func texelCenter(px, n int) float32 {
	return float32((float64(px) + 0.5) / float64(n))
}

// Rect returns the pixel bounds of the region (exclusive max).
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// IsValid returns true if the region covers at least one pixel and its
// texture coordinates are ordered.
func (r Region) IsValid() bool {
	return r.Width > 0 && r.Height > 0 && r.U0 <= r.U1 && r.V0 <= r.V1
}

// String returns a string representation of the region.
func (r Region) String() string {
	return fmt.Sprintf("Region(%d,%d %dx%d uv=[%.4f,%.4f]-[%.4f,%.4f])",
		r.X, r.Y, r.Width, r.Height, r.U0, r.V0, r.U1, r.V1)
}

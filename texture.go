package glyphatlas

import (
	"github.com/gogpu/gputypes"
)

// TextureInfo exposes the atlas pixel buffer for upload to a rendering
// backend. Pixels is RGBA, row-major, top row first, one byte per channel.
//
// Pixels is a view of the atlas buffer, not a copy. It must be treated as
// read-only and must not be used after the atlas is destroyed.
type TextureInfo struct {
	Pixels      []byte
	Width       int
	Height      int
	Channels    int
	SizeInBytes int
	PixelCount  int
}

// newTextureInfo describes the pixel buffer of pm.
func newTextureInfo(pm *Pixmap) TextureInfo {
	return TextureInfo{
		Pixels:      pm.Data(),
		Width:       pm.Width(),
		Height:      pm.Height(),
		Channels:    Channels,
		SizeInBytes: len(pm.Data()),
		PixelCount:  pm.Width() * pm.Height(),
	}
}

// Stride returns the number of bytes per pixel row.
func (t TextureInfo) Stride() int {
	return t.Width * t.Channels
}

// UploadDescriptor describes the GPU resources a rendering backend creates
// for the atlas: the texture, the layout of Pixels for the queue write and
// a sampler that keeps glyph edges crisp.
type UploadDescriptor struct {
	Texture gputypes.TextureDescriptor
	Layout  gputypes.TextureDataLayout
	Sampler gputypes.SamplerDescriptor
}

// DefaultTextureUsage allows sampling the atlas and writing it from the CPU.
const DefaultTextureUsage = gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst

// UploadDescriptor returns the descriptors matching the pixel buffer: a
// single-mip 2D RGBA8 texture sampled with nearest filtering and clamped
// addressing.
func (t TextureInfo) UploadDescriptor(label string) UploadDescriptor {
	sampler := gputypes.DefaultSamplerDescriptor()
	sampler.Label = label
	return UploadDescriptor{
		Texture: gputypes.TextureDescriptor{
			Label: label,
			Size: gputypes.Extent3D{
				Width:              uint32(t.Width),  //nolint:gosec // bounded by MaxTextureSize
				Height:             uint32(t.Height), //nolint:gosec // bounded by MaxTextureSize
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        gputypes.TextureFormatRGBA8Unorm,
			Usage:         DefaultTextureUsage,
		},
		Layout: gputypes.TextureDataLayout{
			BytesPerRow:  uint32(t.Stride()), //nolint:gosec // bounded by MaxTextureSize
			RowsPerImage: uint32(t.Height),   //nolint:gosec // bounded by MaxTextureSize
		},
		Sampler: sampler,
	}
}

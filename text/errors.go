package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrTooManyQuads is returned when a quad count cannot be addressed by
	// 16-bit indices.
	ErrTooManyQuads = errors.New("text: too many quads for 16-bit indices")

	// ErrNilAtlas is returned when a face is created without an atlas.
	ErrNilAtlas = errors.New("text: atlas is nil")
)

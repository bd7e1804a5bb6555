package glyphatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for glyphatlas package.
var (
	// ErrTextureTooLarge is returned when the atlas pixel buffer cannot be
	// allocated within the texture limits.
	ErrTextureTooLarge = errors.New("glyphatlas: texture too large to allocate")

	// ErrNilDesignTable is returned when an atlas is built without designs.
	ErrNilDesignTable = errors.New("glyphatlas: design table is nil")

	// ErrDuplicateDesign is returned when a code is registered twice.
	ErrDuplicateDesign = errors.New("glyphatlas: duplicate glyph design")

	// ErrCodeOutOfRange is returned when a design uses a code outside the
	// registrable code range.
	ErrCodeOutOfRange = errors.New("glyphatlas: character code out of range")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "glyphatlas: invalid config." + e.Field + ": " + e.Reason
}

// DesignError describes a design rejected while building a DesignTable.
type DesignError struct {
	Code byte
	Err  error
}

func (e *DesignError) Error() string {
	return fmt.Sprintf("%v: code %d (%q)", e.Err, e.Code, rune(e.Code))
}

func (e *DesignError) Unwrap() error {
	return e.Err
}

package glyphatlas

import (
	"errors"
	"image/color"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	w, h := cfg.TextureSize()
	if w != 151 || h != 41 {
		t.Errorf("TextureSize() = %dx%d, want 151x41", w, h)
	}
	if cw, ch := cfg.CellSize(); cw != 6 || ch != 10 {
		t.Errorf("CellSize() = %dx%d, want 6x10", cw, ch)
	}
	if n := cfg.GlyphLen(); n != 45 {
		t.Errorf("GlyphLen() = %d, want 45", n)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"zero glyph width", func(c *Config) { c.GlyphWidth = 0 }, "GlyphWidth"},
		{"huge glyph width", func(c *Config) { c.GlyphWidth = MaxTextureSize + 1 }, "GlyphWidth"},
		{"negative glyph height", func(c *Config) { c.GlyphHeight = -1 }, "GlyphHeight"},
		{"zero columns", func(c *Config) { c.Columns = 0 }, "Columns"},
		{"zero rows", func(c *Config) { c.Rows = 0 }, "Rows"},
		{"no padding", func(c *Config) { c.Padding = 0 }, "Padding"},
		{"translucent background", func(c *Config) { c.Background = color.NRGBA{A: 128} }, "Background"},
		{"transparent foreground", func(c *Config) { c.Foreground = color.NRGBA{R: 255} }, "Foreground"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestConfigCheckTextureSize(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.checkTextureSize(); err != nil {
		t.Fatalf("checkTextureSize() = %v, want nil", err)
	}

	cfg.Columns = MaxTextureSize
	if err := cfg.checkTextureSize(); !errors.Is(err, ErrTextureTooLarge) {
		t.Errorf("checkTextureSize() wide = %v, want ErrTextureTooLarge", err)
	}

	// 8001x8001 fits the dimension limit but not the byte limit.
	cfg = DefaultConfig()
	cfg.GlyphWidth, cfg.GlyphHeight = 999, 999
	cfg.Columns, cfg.Rows = 8, 8
	if err := cfg.checkTextureSize(); !errors.Is(err, ErrTextureTooLarge) {
		t.Errorf("checkTextureSize() bytes = %v, want ErrTextureTooLarge", err)
	}
}

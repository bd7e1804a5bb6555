// Package glyphatlas builds bitmap font texture atlases.
//
// # Overview
//
// An atlas packs hand-authored monochrome glyph designs into a single RGBA
// pixel buffer laid out as a uniform grid, and records for every placed
// glyph the normalized texture coordinates a renderer needs to sample it.
// The buffer is meant to be uploaded once as a GPU texture; the package
// itself never talks to a device.
//
// # Quick Start
//
//	import "github.com/gogpu/glyphatlas"
//
//	atlas, err := glyphatlas.Create()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer glyphatlas.Destroy(&atlas)
//
//	tex := atlas.Texture()          // tex.Pixels, tex.Width, tex.Height
//	info, ok := atlas.Glyph('A')    // info.Region.U0, V0, U1, V1
//
// # Designs
//
// A Design is a row-major pattern string of GlyphWidth*GlyphHeight bytes in
// which SetSymbol ('#') marks a set pixel and any other byte a clear one.
// Designs are collected in an immutable DesignTable indexed by 7-bit
// character code. DefaultDesigns provides the built-in 5x9 table.
//
// # Layout
//
// Cells are handed out in ascending character code order, row-major, from
// the top-left corner. Each cell is the glyph plus one padding unit on its
// top and left edge; the atlas adds a final padding unit on the right and
// bottom, so every glyph is surrounded by background. The default
// configuration yields a 151x41 texture with room for 100 glyphs.
//
// Designs of the wrong size are skipped, and designs that find no free
// cell are left unplaced. Both cases are reported through Logger and in
// Stats; neither fails the build.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left pixel
//   - X increases right, Y increases down
//   - Texture coordinates address pixel centers: u = (x+0.5)/width
//
// # Logging
//
// The package logs nothing by default. Call SetLogger to receive build
// diagnostics.
package glyphatlas

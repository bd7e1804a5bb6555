package glyphatlas_test

import (
	"fmt"

	"github.com/gogpu/glyphatlas"
)

// ExampleCreate builds the default atlas and looks up one glyph.
func ExampleCreate() {
	atlas, err := glyphatlas.Create()
	if err != nil {
		fmt.Println("create failed:", err)
		return
	}
	defer glyphatlas.Destroy(&atlas)

	tex := atlas.Texture()
	fmt.Printf("texture %dx%d, %d bytes\n", tex.Width, tex.Height, tex.SizeInBytes)

	info, ok := atlas.Glyph('A')
	fmt.Println("A placed:", ok, "at", info.Region.Rect())

	_, ok = atlas.Glyph('z')
	fmt.Println("z placed:", ok)
	// Output:
	// texture 151x41, 24764 bytes
	// A placed: true at (1,1)-(6,10)
	// z placed: false
}

// ExampleNew builds an atlas from custom 3x3 designs.
func ExampleNew() {
	table, err := glyphatlas.NewDesignTable(
		glyphatlas.Design{Code: '+', Pattern: glyphatlas.Pattern(
			".#.",
			"###",
			".#.",
		)},
		glyphatlas.Design{Code: '-', Pattern: glyphatlas.Pattern(
			"...",
			"###",
			"...",
		)},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	cfg := glyphatlas.DefaultConfig()
	cfg.GlyphWidth, cfg.GlyphHeight = 3, 3
	cfg.Columns, cfg.Rows = 4, 1

	atlas, err := glyphatlas.New(table, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer glyphatlas.Destroy(&atlas)

	fmt.Println(atlas.Texture().Width, atlas.Texture().Height)
	fmt.Printf("%q\n", atlas.PlacedCodes())
	// Output:
	// 17 5
	// "+-"
}

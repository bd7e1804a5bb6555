package text_test

import (
	"fmt"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/text"
)

// ExampleLayout lays out a folded string and builds GPU buffer contents.
func ExampleLayout() {
	atlas, err := glyphatlas.Create()
	if err != nil {
		fmt.Println(err)
		return
	}
	defer glyphatlas.Destroy(&atlas)

	quads := text.Layout(atlas, text.Fold("ÇAB"), text.DefaultLayoutOptions())
	vertices := text.VertexData(quads)
	indices, err := text.IndexData(len(quads))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(quads), "quads")
	fmt.Println(len(vertices), "vertex bytes")
	fmt.Println(len(indices), "index bytes")
	fmt.Println("first quad x:", quads[0].X0, "-", quads[0].X1)
	// Output:
	// 3 quads
	// 192 vertex bytes
	// 36 index bytes
	// first quad x: 0 - 5
}

package main

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/glyphatlas"
)

// dumpAtlas prints every placed glyph as text, '#' for foreground pixels
// and '.' for anything else, read back from the atlas pixels.
func dumpAtlas(w io.Writer, atlas *glyphatlas.Atlas) error {
	bw := bufio.NewWriter(w)
	pm := atlas.Pixmap()
	fg := atlas.Config().Foreground

	for _, code := range atlas.PlacedCodes() {
		info, _ := atlas.Glyph(code)
		r := info.Region
		fmt.Fprintf(bw, "0x%02x %q %s\n", code, rune(code), runenames.Name(rune(code)))
		fmt.Fprintf(bw, "  pixels (%d,%d) %dx%d  uv [%.4f,%.4f]-[%.4f,%.4f]\n",
			r.X, r.Y, r.Width, r.Height, r.U0, r.V0, r.U1, r.V1)

		for y := r.Y; y < r.Y+r.Height; y++ {
			bw.WriteString("  ")
			for x := r.X; x < r.X+r.Width; x++ {
				if pm.PixelAt(x, y) == fg {
					bw.WriteByte('#')
				} else {
					bw.WriteByte('.')
				}
			}
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}

	stats := atlas.Stats()
	fmt.Fprintf(bw, "%d placed, %d malformed, %d unplaced, %d cells\n",
		stats.Placed, stats.Malformed, stats.Unplaced, stats.Capacity)
	return bw.Flush()
}

// Command atlasgen builds the default glyph atlas and writes it to disk.
//
// Usage:
//
//	atlasgen -output atlas.png -scale 8
//	atlasgen -sample "HELLO" -sample-output sample.png
//	atlasgen -raw atlas.rgba -dump
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/text"
)

type options struct {
	output       string
	raw          string
	scale        int
	sample       string
	sampleOutput string
	background   string
	foreground   string
	dump         bool
}

func main() {
	var opts options
	flag.StringVar(&opts.output, "output", "atlas.png", "atlas PNG output file (empty to skip)")
	flag.StringVar(&opts.raw, "raw", "", "raw RGBA output file")
	flag.IntVar(&opts.scale, "scale", 1, "integer upscale factor for PNG output")
	flag.StringVar(&opts.sample, "sample", "", "text to render into the sample image")
	flag.StringVar(&opts.sampleOutput, "sample-output", "sample.png", "sample PNG output file")
	flag.StringVar(&opts.background, "bg", "#000000", "background color")
	flag.StringVar(&opts.foreground, "fg", "#ffffff", "foreground color")
	flag.BoolVar(&opts.dump, "dump", false, "print every placed glyph to stdout")
	verbose := flag.Bool("v", false, "log build details")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	glyphatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts); err != nil {
		log.Fatalf("atlasgen: %v", err)
	}
}

func run(opts options) error {
	if opts.scale < 1 {
		return fmt.Errorf("invalid scale %d", opts.scale)
	}

	cfg := glyphatlas.DefaultConfig()
	var err error
	if cfg.Background, err = glyphatlas.ParseHex(opts.background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if cfg.Foreground, err = glyphatlas.ParseHex(opts.foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}

	atlas, err := glyphatlas.New(glyphatlas.DefaultDesigns(), cfg)
	if err != nil {
		return fmt.Errorf("create atlas: %w", err)
	}
	defer func() {
		glyphatlas.Destroy(&atlas)
		log.Printf("Atlas destroyed (released: %t)", atlas == nil)
	}()

	tex := atlas.Texture()
	stats := atlas.Stats()
	log.Printf("Atlas created: %dx%d, %d bytes, %d/%d glyphs placed",
		tex.Width, tex.Height, tex.SizeInBytes, stats.Placed, stats.Capacity)

	if opts.output != "" {
		if err := writePNG(opts.output, upscale(atlas.Image(), opts.scale)); err != nil {
			return fmt.Errorf("write atlas: %w", err)
		}
		log.Printf("Atlas saved to %s", opts.output)
	}

	if opts.raw != "" {
		if err := os.WriteFile(opts.raw, tex.Pixels, 0o600); err != nil {
			return fmt.Errorf("write raw atlas: %w", err)
		}
		log.Printf("Written %d bytes to %s", tex.SizeInBytes, opts.raw)
	}

	if opts.sample != "" {
		img, err := renderSample(atlas, opts.sample)
		if err != nil {
			return fmt.Errorf("render sample: %w", err)
		}
		if err := writePNG(opts.sampleOutput, upscale(img, opts.scale)); err != nil {
			return fmt.Errorf("write sample: %w", err)
		}
		log.Printf("Sample saved to %s (%dx%d)", opts.sampleOutput, img.Bounds().Dx(), img.Bounds().Dy())
	}

	if opts.dump {
		if err := dumpAtlas(os.Stdout, atlas); err != nil {
			return fmt.Errorf("dump: %w", err)
		}
	}
	return nil
}

// renderSample draws s with the atlas face on the atlas background,
// leaving one padding unit around the text.
func renderSample(atlas *glyphatlas.Atlas, s string) (*image.RGBA, error) {
	face, err := text.NewFace(atlas)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	cfg := atlas.Config()
	lines := strings.Split(text.Fold(s), "\n")
	m := face.Metrics()

	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(face, line).Ceil())
	}
	lineHeight := m.Height.Ceil()
	pad := cfg.Padding

	img := image.NewRGBA(image.Rect(0, 0, width+pad, len(lines)*lineHeight+pad))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(cfg.Background), image.Point{}, xdraw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(cfg.Foreground),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(pad, pad+i*lineHeight+m.Ascent.Ceil())
		d.DrawString(line)
	}
	return img, nil
}

// upscale enlarges src by an integer factor without smoothing.
func upscale(src *image.RGBA, factor int) *image.RGBA {
	if factor == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

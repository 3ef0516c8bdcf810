package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/field"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/geom"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/sim"
)

// #region main

func main() {
	regime := flag.String("regime", string(reward.RegimeSemantic), "reward regime to render")
	width := flag.Int("width", 60, "field width in cells")
	height := flag.Int("height", 30, "field height in cells")
	scale := flag.Int("scale", 10, "pixels per cell in the output image")
	outPath := flag.String("out", "", "output PNG path")
	flag.Parse()

	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fieldgen --out field.png [--regime name] [--width W] [--height H] [--scale S]")
		os.Exit(2)
	}

	if err := run(reward.Regime(*regime), *width, *height, *scale, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region render

func run(regime reward.Regime, width, height, scale int, outPath string) error {
	if !reward.Known(regime) {
		return fmt.Errorf("unknown regime %q (known: %v)", regime, reward.Regimes())
	}
	if width < 1 || height < 1 || scale < 1 {
		return fmt.Errorf("invalid dimensions %dx%d scale %d", width, height, scale)
	}

	cfg := sim.DefaultConfig(regime)

	// Goal in cell space: the field samples cell centers against the
	// same goal geometry the canvas uses, scaled to the grid.
	goal := geom.Vec2{
		X: cfg.Goal.X / cfg.Bounds.X * float64(width),
		Y: cfg.Goal.Y / cfg.Bounds.Y * float64(height),
	}

	pixels := field.Generate(width, height, goal, regime, cfg.Params)
	img := upscale(pixels, width, height, scale)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	fmt.Printf("Wrote %s (%dx%d cells at %dx scale)\n", outPath, width, height, scale)
	return nil
}

// upscale expands the cell buffer into an RGBA image with scale×scale
// pixel blocks per cell.
func upscale(pixels []byte, width, height, scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	for cy := 0; cy < height; cy++ {
		for cx := 0; cx < width; cx++ {
			i := (cy*width + cx) * 4
			r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
			for py := cy * scale; py < (cy+1)*scale; py++ {
				for px := cx * scale; px < (cx+1)*scale; px++ {
					o := img.PixOffset(px, py)
					img.Pix[o] = r
					img.Pix[o+1] = g
					img.Pix[o+2] = b
					img.Pix[o+3] = a
				}
			}
		}
	}
	return img
}

// #endregion render

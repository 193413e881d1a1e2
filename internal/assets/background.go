// Package assets loads the background image and prepares it for a cell grid.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

// LoadImage reads and decodes an image file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, nil
}

// Fallback returns a generated vertical gradient used when the background
// image cannot be loaded.
func Fallback() image.Image {
	const w, h = 64, 32
	top, _ := colorful.Hex("#1d2b53")
	bottom, _ := colorful.Hex("#008751")

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := top.BlendLab(bottom, float64(y)/float64(h-1)).Clamped()
		r, g, b := c.RGB255()
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// Backdrop is a background image sampled to one color per screen cell.
// The sampled grid is cached for the last requested size.
type Backdrop struct {
	src   image.Image
	dim   float64
	w, h  int
	cells [][]string
}

// NewBackdrop wraps an image. dim in [0, 1] darkens it toward black so text
// drawn on top stays readable.
func NewBackdrop(src image.Image, dim float64) *Backdrop {
	return &Backdrop{src: src, dim: dim}
}

// Prepare scales the image to w x h cells. It is a no-op when the size is
// unchanged.
func (b *Backdrop) Prepare(w, h int) {
	if w == b.w && h == b.h && b.cells != nil {
		return
	}
	b.w, b.h = w, h
	b.cells = make([][]string, h)
	if w <= 0 || h <= 0 {
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), b.src, b.src.Bounds(), xdraw.Src, nil)

	black := colorful.Color{}
	for y := 0; y < h; y++ {
		row := make([]string, w)
		for x := 0; x < w; x++ {
			c, ok := colorful.MakeColor(scaled.RGBAAt(x, y))
			if !ok {
				continue // fully transparent
			}
			row[x] = c.BlendRgb(black, b.dim).Clamped().Hex()
		}
		b.cells[y] = row
	}
}

// Hex returns the color of a cell in "#rrggbb" form, or "" outside the
// prepared grid.
func (b *Backdrop) Hex(x, y int) string {
	if y < 0 || y >= len(b.cells) || x < 0 || x >= len(b.cells[y]) {
		return ""
	}
	return b.cells[y][x]
}

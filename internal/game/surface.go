package game

import "math"

// Surface holds the drawing surface dimensions in cells.
type Surface struct {
	Width  int
	Height int
}

// SurfaceFor sizes the surface to ratio of the viewport.
func SurfaceFor(viewportW, viewportH int, ratio float64) Surface {
	return Surface{
		Width:  int(math.Floor(float64(max(viewportW, 0)) * ratio)),
		Height: int(math.Floor(float64(max(viewportH, 0)) * ratio)),
	}
}

// Bounds returns where a square of size w x h may be placed.
// A surface smaller than the square pins it at the origin.
func (s Surface) Bounds(w, h int) Bounds {
	return Bounds{
		MaxX: math.Max(float64(s.Width-w), 0),
		MaxY: math.Max(float64(s.Height-h), 0),
	}
}

package game

import "github.com/vovakirdan/square-rush/internal/core"

func newScreen() *core.Screen {
	return core.NewScreen(0, 0)
}

// flatBackdrop paints every cell the same color.
type flatBackdrop struct {
	hex  string
	w, h int
}

func (b *flatBackdrop) Prepare(w, h int) { b.w, b.h = w, h }

func (b *flatBackdrop) Hex(x, y int) string {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return ""
	}
	return b.hex
}

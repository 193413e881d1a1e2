package game

import "github.com/vovakirdan/square-rush/internal/core"

// Direction is one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// DirectionFor maps a movement action to a direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Player is the position of the square's top-left corner, in cells.
type Player struct {
	X, Y float64
}

// Moved returns the position one step away in dir, clamped to the bounds.
func (p Player) Moved(dir Direction, stepX, stepY float64, b Bounds) Player {
	switch dir {
	case DirUp:
		p.Y -= stepY
	case DirDown:
		p.Y += stepY
	case DirLeft:
		p.X -= stepX
	case DirRight:
		p.X += stepX
	}
	return p.Clamped(b)
}

// Clamped returns the position restricted to the bounds.
func (p Player) Clamped(b Bounds) Player {
	p.X = core.ClampF(p.X, 0, b.MaxX)
	p.Y = core.ClampF(p.Y, 0, b.MaxY)
	return p
}

// Rect returns the cells covered by a square of the given size.
func (p Player) Rect(w, h int) core.Rect {
	return core.NewRect(int(p.X), int(p.Y), w, h)
}

// Bounds is the range the player's top-left corner may occupy:
// [0, MaxX] x [0, MaxY].
type Bounds struct {
	MaxX, MaxY float64
}

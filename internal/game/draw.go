package game

import (
	"fmt"

	"github.com/vovakirdan/square-rush/internal/core"
)

// Visual characters and colors
const (
	PlayerChar  = '█'
	PlayerColor = core.ColorBrightRed
	HUDColor    = core.ColorBrightWhite
)

// HUD placement
const (
	hudMarginX = 2
	hudRow     = 1
)

// Backdrop supplies one background color per surface cell.
type Backdrop interface {
	Prepare(w, h int)
	Hex(x, y int) string
}

// Draw paints the current frame into dst, sized to the surface.
// It reads the game state only, so it may be called at any frequency.
// A nil backdrop leaves the background uncolored.
func (c *Controller) Draw(dst *core.Screen, bg Backdrop) {
	w, h := c.surface.Width, c.surface.Height
	dst.Resize(w, h)
	dst.Clear()

	if bg != nil {
		bg.Prepare(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetBg(x, y, bg.Hex(x, y))
			}
		}
	}

	dst.DrawRect(c.player.Rect(c.cfg.Player.Width, c.cfg.Player.Height), PlayerChar, PlayerColor)

	timeText := fmt.Sprintf("Time Left: %d seconds", c.session.SecondsRemaining)
	dst.DrawTextColored(hudMarginX, hudRow, timeText, HUDColor)

	scoreText := fmt.Sprintf("Score: %d", c.session.Score)
	dst.DrawTextColored(w-len(scoreText)-hudMarginX, hudRow, scoreText, HUDColor)

	if c.session.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if c.notice != "" {
		drawCenteredMessage(dst, "GAME OVER", c.notice, "Press Enter to close")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, HUDColor)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightRed)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, HUDColor)
	}
}

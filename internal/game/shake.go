package game

import (
	"math"
	"time"
)

// Shake is the end-of-game effect: the surface's on-screen offset travels
// once around a circle over Duration and then returns to zero.
type Shake struct {
	Start      time.Time
	Duration   time.Duration
	IntensityX float64
	IntensityY float64
}

// Offset returns the offset at now and whether the effect has finished.
func (s Shake) Offset(now time.Time) (dx, dy int, done bool) {
	elapsed := now.Sub(s.Start)
	if s.Duration <= 0 || elapsed >= s.Duration {
		return 0, 0, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	phase := float64(elapsed) / float64(s.Duration) * 2 * math.Pi
	dx = int(math.Round(math.Sin(phase) * s.IntensityX))
	dy = int(math.Round(math.Cos(phase) * s.IntensityY))
	return dx, dy, false
}

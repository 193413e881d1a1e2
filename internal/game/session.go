// Package game implements the timed square game: the session state machine,
// player movement, the surface it is drawn on and the end-of-game shake.
// It has no terminal dependencies; the platform layer feeds it input and
// timer events and renders what Draw produces.
package game

// Session is the mutable state of one play-through.
// Paused implies Running; SecondsRemaining never goes below zero.
type Session struct {
	Running          bool
	Paused           bool
	SecondsRemaining int
	Score            int // never incremented: the game has no scoring rule
	SelectedDuration int
}

// Active reports whether input and the clock should advance the game.
func (s Session) Active() bool {
	return s.Running && !s.Paused
}

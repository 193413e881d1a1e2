// Package audio plays the game's sound cues.
//
// The game only ever asks for a cue to start or stop. This package holds the
// backends that need no sound driver (silence and the terminal bell); real
// playback of the configured files lives in package ebitenaudio.
package audio

import (
	"fmt"
	"io"

	"github.com/vovakirdan/square-rush/internal/config"
)

// Cue identifies one of the game's sounds.
type Cue int

const (
	CueAmbient  Cue = iota // Looping background track
	CueStart               // Game started
	CuePause               // Game paused
	CueGameOver            // Time ran out
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueAmbient:
		return "ambient"
	case CueStart:
		return "start"
	case CuePause:
		return "pause"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Looping reports whether the cue repeats until stopped.
func (c Cue) Looping() bool {
	return c == CueAmbient
}

// Player starts and stops cues. Implementations never block the caller.
type Player interface {
	// Play starts a cue. A looping cue resumes where it was stopped;
	// a one-shot cue restarts if it already finished.
	Play(c Cue)
	// Stop pauses a cue.
	Stop(c Cue)
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// Stop does nothing.
func (Nop) Stop(Cue) {}

// bellChar makes most terminals beep or flash.
const bellChar = "\a"

// Bell rings the terminal bell for one-shot cues. The ambient loop has no
// terminal equivalent and is ignored.
//
// Each ring is a single one-byte Write. BEL does not move the cursor, so when
// it shares the terminal with the UI renderer it can only sound between or
// inside a frame without changing what is drawn. Ringing is best-effort and
// write errors are dropped.
type Bell struct {
	w io.Writer
}

// NewBell creates a Bell writing to w (the terminal or an SSH session).
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play rings the bell for one-shot cues.
func (b *Bell) Play(c Cue) {
	if c.Looping() || b.w == nil {
		return
	}
	//nolint:errcheck // Best-effort beep
	io.WriteString(b.w, bellChar)
}

// Stop does nothing; a bell cannot be stopped.
func (b *Bell) Stop(Cue) {}

// New creates the built-in Player selected by cfg.Backend. out receives the
// bell for the bell backend. The ebiten backend is not built in; callers that
// want it construct it from package ebitenaudio.
func New(cfg config.AudioConfig, out io.Writer) (Player, error) {
	switch cfg.Backend {
	case config.AudioNop, "":
		return Nop{}, nil
	case config.AudioBell:
		return NewBell(out), nil
	default:
		return nil, fmt.Errorf("audio: backend %q is not built in", cfg.Backend)
	}
}

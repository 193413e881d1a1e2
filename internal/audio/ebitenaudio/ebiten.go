// Package ebitenaudio plays the game's sound cues from wav and mp3 files
// through ebiten's audio package. It links the platform sound driver, so only
// binaries that play real files import it.
package ebitenaudio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/square-rush/internal/audio"
	"github.com/vovakirdan/square-rush/internal/config"
)

const sampleRate = 44100

// ebiten allows a single audio context per process.
var (
	contextOnce   sync.Once
	sharedContext *eaudio.Context
)

func audioContext() *eaudio.Context {
	contextOnce.Do(func() {
		sharedContext = eaudio.NewContext(sampleRate)
	})
	return sharedContext
}

// stream is what the ebiten decoders return.
type stream interface {
	io.ReadSeeker
	Length() int64
}

// Player plays cue files. It implements audio.Player.
type Player struct {
	players map[audio.Cue]*eaudio.Player
}

var _ audio.Player = (*Player)(nil)

// Paths maps every cue to its configured file.
func Paths(assets config.AssetsConfig) map[audio.Cue]string {
	return map[audio.Cue]string{
		audio.CueAmbient:  assets.Ambient,
		audio.CueStart:    assets.Start,
		audio.CuePause:    assets.Pause,
		audio.CueGameOver: assets.GameOver,
	}
}

// New loads every cue file. Cues whose file cannot be loaded stay silent;
// their errors are joined into the returned error, which never makes the
// returned Player unusable.
func New(paths map[audio.Cue]string, volume float64) (*Player, error) {
	e := &Player{players: make(map[audio.Cue]*eaudio.Player)}
	ctx := audioContext()

	var errs []error
	for cue, path := range paths {
		if path == "" {
			continue
		}
		p, err := loadPlayer(ctx, path, cue.Looping())
		if err != nil {
			errs = append(errs, fmt.Errorf("ebitenaudio: %s cue: %w", cue, err))
			continue
		}
		p.SetVolume(volume)
		e.players[cue] = p
	}
	return e, errors.Join(errs...)
}

// loadPlayer reads and decodes a sound file into a player.
func loadPlayer(ctx *eaudio.Context, path string, loop bool) (*eaudio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	s, err := decode(path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var src io.Reader = s
	if loop {
		src = eaudio.NewInfiniteLoop(s, s.Length())
	}

	p, err := ctx.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("cannot create player for %s: %w", path, err)
	}
	return p, nil
}

// decode picks a decoder from the file extension.
func decode(path string, r io.ReadSeeker) (stream, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("cannot decode %s: %w", path, err)
		}
		return s, nil
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("cannot decode %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported sound format %q", filepath.Ext(path))
	}
}

// Play starts or resumes a cue.
func (e *Player) Play(c audio.Cue) {
	p, ok := e.players[c]
	if !ok {
		return
	}
	if !c.Looping() && !p.IsPlaying() {
		//nolint:errcheck // Rewinding an in-memory stream does not fail
		p.Rewind()
	}
	p.Play()
}

// Stop pauses a cue, keeping its position.
func (e *Player) Stop(c audio.Cue) {
	if p, ok := e.players[c]; ok {
		p.Pause()
	}
}

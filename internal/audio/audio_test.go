package audio

import (
	"bytes"
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/vovakirdan/square-rush/internal/config"
)

func TestBellRingsOnlyForOneShotCues(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)

	b.Play(CueAmbient)
	if buf.Len() != 0 {
		t.Errorf("ambient loop should not ring, wrote %q", buf.String())
	}

	b.Play(CueStart)
	b.Play(CuePause)
	b.Play(CueGameOver)
	b.Stop(CueAmbient)

	if got := strings.Count(buf.String(), bellChar); got != 3 {
		t.Errorf("expected 3 bells, got %d", got)
	}
}

func TestBellNilWriter(t *testing.T) {
	b := NewBell(nil)
	b.Play(CueStart) // Should not panic
}

// writeCounter records every Write call separately.
type writeCounter struct {
	writes []string
}

func (w *writeCounter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, string(p))
	return len(p), nil
}

func TestBellRingsInOneWrite(t *testing.T) {
	w := &writeCounter{}
	b := NewBell(w)

	b.Play(CueStart)
	b.Play(CueGameOver)

	if len(w.writes) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(w.writes))
	}
	for i, got := range w.writes {
		if got != bellChar {
			t.Errorf("write %d = %q, expected a lone BEL", i, got)
		}
	}
}

func TestNewSelectsBackend(t *testing.T) {
	p, err := New(config.AudioConfig{Backend: config.AudioNop}, nil)
	if err != nil {
		t.Fatalf("New(nop) failed: %v", err)
	}
	if _, ok := p.(Nop); !ok {
		t.Errorf("expected Nop, got %T", p)
	}

	p, err = New(config.AudioConfig{Backend: config.AudioBell}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("New(bell) failed: %v", err)
	}
	if _, ok := p.(*Bell); !ok {
		t.Errorf("expected *Bell, got %T", p)
	}

	if _, err := New(config.AudioConfig{Backend: "alsa"}, nil); err == nil {
		t.Error("unknown backend should fail")
	}
	if _, err := New(config.AudioConfig{Backend: config.AudioEbiten}, nil); err == nil {
		t.Error("ebiten is not built in and should fail")
	}
}

func TestCueLooping(t *testing.T) {
	if !CueAmbient.Looping() {
		t.Error("ambient should loop")
	}
	for _, c := range []Cue{CueStart, CuePause, CueGameOver} {
		if c.Looping() {
			t.Errorf("%s should not loop", c)
		}
	}
}

// The game, the UI and the SSH server must build without a sound driver.
func TestGamePackagesDoNotLinkSoundDriver(t *testing.T) {
	dirs := []string{".", "../game", "../platform/tui", "../config", "../core", "../schedule", "../assets"}
	forbidden := []string{"github.com/hajimehoshi/ebiten", "internal/audio/ebitenaudio"}

	for _, dir := range dirs {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatal(err)
		}
		if len(files) == 0 {
			t.Fatalf("no Go files in %s", dir)
		}
		for _, file := range files {
			f, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", file, err)
			}
			for _, imp := range f.Imports {
				path, _ := strconv.Unquote(imp.Path.Value)
				for _, bad := range forbidden {
					if strings.Contains(path, bad) {
						t.Errorf("%s imports %s", file, path)
					}
				}
			}
		}
	}
}

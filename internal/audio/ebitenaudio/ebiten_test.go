package ebitenaudio

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/square-rush/internal/audio"
	"github.com/vovakirdan/square-rush/internal/config"
)

func TestDecodeRejectsUnknownFormat(t *testing.T) {
	if _, err := decode("theme.ogg", bytes.NewReader(nil)); err == nil {
		t.Error("ogg should be rejected")
	}
	if _, err := decode("Start.wav", bytes.NewReader([]byte("not a wav"))); err == nil {
		t.Error("garbage wav should fail to decode")
	}
}

func TestPathsCoversEveryCue(t *testing.T) {
	paths := Paths(config.DefaultGameConfig().Assets)

	for _, c := range []audio.Cue{audio.CueAmbient, audio.CueStart, audio.CuePause, audio.CueGameOver} {
		if paths[c] == "" {
			t.Errorf("no path for %s", c)
		}
	}
}

func TestNewSkipsMissingFiles(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.wav")
	p, err := New(map[audio.Cue]string{audio.CueStart: missing, audio.CuePause: ""}, 1)
	if err == nil {
		t.Error("missing file should be reported")
	}
	if p == nil {
		t.Fatal("player should be usable despite load errors")
	}
	p.Play(audio.CueStart) // Should not panic
	p.Stop(audio.CueStart)
}

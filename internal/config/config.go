// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// GameConfig contains all configuration for the game.
type GameConfig struct {
	Surface SurfaceConfig `yaml:"surface"`
	Player  PlayerConfig  `yaml:"player"`
	Timer   TimerConfig   `yaml:"timer"`
	Effects EffectsConfig `yaml:"effects"`
	Keys    KeysConfig    `yaml:"keys"`
	Audio   AudioConfig   `yaml:"audio"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// SurfaceConfig defines how much of the terminal the drawing surface takes.
type SurfaceConfig struct {
	Ratio float64 `yaml:"ratio"`
}

// PlayerConfig defines the size and speed of the player square.
type PlayerConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	StepX  float64 `yaml:"step_x"`
	StepY  float64 `yaml:"step_y"`
}

// TimerConfig defines the selectable game durations in seconds.
type TimerConfig struct {
	Durations []int `yaml:"durations"`
	Default   int   `yaml:"default"`
}

// EffectsConfig defines the end-of-game shake and backdrop rendering.
type EffectsConfig struct {
	FPS             int     `yaml:"fps"`
	ShakeDurationMS int     `yaml:"shake_duration_ms"`
	ShakeX          int     `yaml:"shake_x"`
	ShakeY          int     `yaml:"shake_y"`
	Dim             float64 `yaml:"dim"`
}

// ShakeDuration returns the shake length as a time.Duration.
func (e EffectsConfig) ShakeDuration() time.Duration {
	return time.Duration(e.ShakeDurationMS) * time.Millisecond
}

// KeysConfig maps the four movement directions to single-character keys.
type KeysConfig struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// ReservedKeys are bound to controls and cannot be used for movement.
const ReservedKeys = "pq 123456789"

func (k KeysConfig) validate() error {
	used := make(map[string]string, 4)
	for _, b := range []struct{ name, key string }{
		{"up", k.Up}, {"down", k.Down}, {"left", k.Left}, {"right", k.Right},
	} {
		if len([]rune(b.key)) != 1 {
			return fmt.Errorf("config: keys.%s must be a single character, got %q", b.name, b.key)
		}
		if strings.Contains(ReservedKeys, b.key) {
			return fmt.Errorf("config: keys.%s %q is reserved for a control", b.name, b.key)
		}
		if other, ok := used[b.key]; ok {
			return fmt.Errorf("config: keys.%s and keys.%s are both %q", other, b.name, b.key)
		}
		used[b.key] = b.name
	}
	return nil
}

// AudioConfig selects the audio backend.
type AudioConfig struct {
	Backend string  `yaml:"backend"` // "nop", "bell" or "ebiten"
	Volume  float64 `yaml:"volume"`
}

// AssetsConfig holds asset paths, resolved relative to the working directory.
type AssetsConfig struct {
	Background string `yaml:"background"`
	Ambient    string `yaml:"ambient"`
	Start      string `yaml:"start"`
	Pause      string `yaml:"pause"`
	GameOver   string `yaml:"game_over"`
}

// Audio backends.
const (
	AudioNop    = "nop"
	AudioBell   = "bell"
	AudioEbiten = "ebiten"
)

// Validate reports the first unusable value in the configuration.
func (c GameConfig) Validate() error {
	if c.Surface.Ratio <= 0 || c.Surface.Ratio > 1 {
		return fmt.Errorf("config: surface.ratio must be in (0, 1], got %v", c.Surface.Ratio)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	}
	if c.Player.StepX <= 0 || c.Player.StepY <= 0 {
		return errors.New("config: player steps must be positive")
	}
	if len(c.Timer.Durations) == 0 {
		return errors.New("config: timer.durations is empty")
	}
	if len(c.Timer.Durations) > 9 {
		return fmt.Errorf("config: at most 9 durations are supported, got %d", len(c.Timer.Durations))
	}
	found := false
	seen := make(map[int]bool, len(c.Timer.Durations))
	for _, d := range c.Timer.Durations {
		if d <= 0 {
			return fmt.Errorf("config: duration must be positive, got %d", d)
		}
		if seen[d] {
			return fmt.Errorf("config: duration %d is listed twice", d)
		}
		seen[d] = true
		if d == c.Timer.Default {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("config: timer.default %d is not one of %v", c.Timer.Default, c.Timer.Durations)
	}
	if c.Effects.FPS <= 0 {
		return fmt.Errorf("config: effects.fps must be positive, got %d", c.Effects.FPS)
	}
	if c.Effects.ShakeDurationMS < 0 {
		return errors.New("config: effects.shake_duration_ms must not be negative")
	}
	if c.Effects.Dim < 0 || c.Effects.Dim > 1 {
		return fmt.Errorf("config: effects.dim must be in [0, 1], got %v", c.Effects.Dim)
	}
	if err := c.Keys.validate(); err != nil {
		return err
	}
	switch c.Audio.Backend {
	case AudioNop, AudioBell, AudioEbiten:
	default:
		return fmt.Errorf("config: unknown audio backend %q", c.Audio.Backend)
	}
	return nil
}

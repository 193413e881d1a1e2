package config

import (
	_ "embed"
)

//go:embed defaults/rush.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultGameConfig returns the default configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Surface: SurfaceConfig{Ratio: 0.8},
		Player: PlayerConfig{
			Width:  4,
			Height: 2,
			StepX:  2,
			StepY:  1,
		},
		Timer: TimerConfig{
			Durations: []int{30, 60, 90},
			Default:   60,
		},
		Effects: EffectsConfig{
			FPS:             60,
			ShakeDurationMS: 1000,
			ShakeX:          4,
			ShakeY:          2,
			Dim:             0.35,
		},
		Keys: KeysConfig{
			Up:    "w",
			Down:  "s",
			Left:  "a",
			Right: "d",
		},
		Audio: AudioConfig{
			Backend: AudioBell,
			Volume:  0.8,
		},
		Assets: AssetsConfig{
			Background: "Background.jpg",
			Ambient:    "background.mp3",
			Start:      "Start.wav",
			Pause:      "Pause.mp3",
			GameOver:   "Gameover.wav",
		},
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/square-rush/internal/audio"
	"github.com/vovakirdan/square-rush/internal/audio/ebitenaudio"
	"github.com/vovakirdan/square-rush/internal/config"
	"github.com/vovakirdan/square-rush/internal/core"
	"github.com/vovakirdan/square-rush/internal/game"
	"github.com/vovakirdan/square-rush/internal/platform/tui"
)

var (
	flagAudio    string
	flagDuration int
	flagDebug    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  W/A/S/D      - Move (configurable)
  Enter/Space  - Start
  P            - Pause/Resume
  1-9          - Pick a duration (before starting)
  Enter/Esc    - Close the game-over notice
  Ctrl+S       - Save a text screenshot to ~/.rush/screenshots
  Q/Ctrl+C     - Quit

The buttons under the board can also be clicked.

Audio backends:
  nop     - Silent
  bell    - Terminal bell on start, pause and game over
  ebiten  - Play the configured sound files

Examples:
  rush play
  rush play --duration 90
  rush play --audio ebiten --log-file rush.log
  rush play --config ./my-rush.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagAudio, "audio", "", "Audio backend: nop, bell, ebiten")
	playCmd.Flags().IntVar(&flagDuration, "duration", 0, "Preselected duration in seconds (one of timer.durations)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log state transitions")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()
	if flagAudio != "" {
		gameCfg.Audio.Backend = flagAudio
	}
	if flagDuration > 0 {
		gameCfg.Timer.Default = flagDuration
	}
	if err := gameCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go to a file.
	logger, closeLog := newLogger("rush", io.Discard)
	defer closeLog()
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	sound, err := newSound(gameCfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	ctrl := game.NewController(gameCfg, sound, game.WithLogger(logger))
	if err := tui.Run(ctrl, cfg, logger, screenshotDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// newSound builds the configured audio backend. Sound files that fail to load
// are logged and their cues stay silent.
func newSound(cfg config.GameConfig, logger *log.Logger) (audio.Player, error) {
	if cfg.Audio.Backend != config.AudioEbiten {
		return audio.New(cfg.Audio, os.Stdout)
	}

	p, err := ebitenaudio.New(ebitenaudio.Paths(cfg.Assets), cfg.Audio.Volume)
	if err != nil {
		logger.Warn("some sound cues could not be loaded", "error", err)
	}
	return p, nil
}

// screenshotDir returns ~/.rush/screenshots, or "" when home is unknown.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rush", "screenshots")
}

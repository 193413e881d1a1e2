// rush is a timed terminal game: steer a square around the board until the
// clock runs out.
//
// Usage:
//
//	rush play     - Play in this terminal
//	rush serve    - Start SSH server for remote play
//	rush config   - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/square-rush/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rush",
	Short: "Square Rush - a timed game for your terminal",
	Long: `Square Rush puts a red square on a picture and a clock in the corner.
Pick a duration, press Start and move around until time runs out.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  rush play
  rush play --duration 30 --audio ebiten
  rush serve --ssh :2222
  rush config > my-rush.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.GameConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger returns a logger writing to --log-file, or to fallback when the
// flag is unset. The returned function closes the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func()) {
	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		} else {
			out = f
			closeFn = func() { f.Close() } //nolint:errcheck // Best-effort close
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/square-rush/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration rush would play with, as YAML.

Search order:
  1. --config <path>
  2. ~/.rush/config.yaml
  3. ./configs/rush.yaml
  4. built-in defaults

With --defaults the built-in configuration is printed as shipped,
including its comments.

Examples:
  rush config
  rush config --defaults
  rush config --config ./my-rush.yaml
  rush config > ~/.rush/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead of the effective configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // Best-effort write
		return
	}

	data, err := config.Marshal(loadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck // Best-effort write
}

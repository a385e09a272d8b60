// dasher is a side-scrolling runner: jump the nebulae, reach the finish line.
//
// Usage:
//
//	dasher play              - Play in the terminal
//	dasher window            - Play in a desktop window
//	dasher history           - Show recorded runs
//	dasher config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set run database path (default: ~/.dasher/runs.db)
//	--config <path>       - Use a specific config file
//	--assets <dir>        - Load textures from a directory
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dapper-dasher/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagAssets     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dasher",
	Short: "Dapper Dasher - a side-scrolling runner",
	Long: `Dapper Dasher is a small side-scrolling runner. Jump over the
oncoming nebulae and reach the finish line to win.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  history  - Show recorded runs
  config   - Print the default configuration

Examples:
  dasher play
  dasher play --difficulty hard
  dasher window --zoom 2
  dasher history --plain`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dasher/runs.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory to load textures from (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dasher",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fail prints err and exits.
func fail(context string, err error) {
	var cfgErr *core.ConfigError
	var assetErr *core.AssetLoadError
	switch {
	case errors.As(err, &cfgErr):
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
	case errors.As(err, &assetErr):
		fmt.Fprintf(os.Stderr, "Could not load textures: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run without --assets to use the built-in textures.")
	default:
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	}
	os.Exit(1)
}

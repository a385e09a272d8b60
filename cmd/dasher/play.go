package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dapper-dasher/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Space/W/Up  - Jump
  P/Esc       - Pause
  R           - Restart after the run ends
  Ctrl+S      - Save a screenshot to ~/.dasher/screenshots
  Q/Ctrl+C    - Quit

Logs are written to ~/.dasher/dasher.log while the game owns the terminal.

Examples:
  dasher play
  dasher play --fps 30
  dasher play --config ./dasher.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logFile, err := openLogFile()
	if err != nil {
		fail("opening log file", err)
	}
	defer logFile.Close()
	logger := newLogger(logFile)

	s, err := newSession(logger)
	if err != nil {
		fail("starting game", err)
	}
	defer s.Close()

	// Get terminal size
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	opts := tui.Options{
		Width:    width,
		Height:   height,
		TickRate: flagFPS,
		Preset:   s.preset,
		Logger:   logger,
		Watcher:  s.watcher,
	}
	if err := tui.Run(s.game, s.textures, s.store, opts); err != nil {
		s.Close()
		fail("running game", err)
	}
}

// openLogFile opens ~/.dasher/dasher.log for appending.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".dasher")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "dasher.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

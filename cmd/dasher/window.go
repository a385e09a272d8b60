package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dapper-dasher/internal/platform/window"
)

var flagZoom float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in a desktop window.

Controls:
  Space/W/Up  - Jump
  P/Esc       - Pause
  R           - Restart after the run ends
  Q           - Quit

Examples:
  dasher window
  dasher window --zoom 2`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagZoom, "zoom", 1, "Window size relative to the game world")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	s, err := newSession(logger)
	if err != nil {
		fail("starting game", err)
	}
	defer s.Close()

	opts := window.Options{
		TickRate: flagFPS,
		Zoom:     flagZoom,
		Preset:   s.preset,
		Logger:   logger,
		Watcher:  s.watcher,
	}
	if err := window.Run(s.game, s.textures, s.store, opts); err != nil {
		s.Close()
		fail("running game", err)
	}
}

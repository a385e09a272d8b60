package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dapper-dasher/internal/games/dasher"
	"github.com/vovakirdan/dapper-dasher/internal/platform/tui"
	"github.com/vovakirdan/dapper-dasher/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display recent runs with totals and the fastest win.

Examples:
  dasher history
  dasher history --plain
  dasher history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table instead of opening the viewer")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run database", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(dasher.GameID); err != nil {
			store.Close()
			fail("clearing runs", err)
		}
		fmt.Println("Run history cleared.")
		return
	}

	h, err := tui.LoadHistory(store, dasher.GameID)
	if err != nil {
		store.Close()
		fail("loading runs", err)
	}

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(tui.PlainHistory(h))
		return
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}
	if err := tui.RunHistory("Dapper Dasher", h, width, height); err != nil {
		store.Close()
		fail("showing history", err)
	}
}

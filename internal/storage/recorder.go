package storage

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// Recorder watches the game state tick by tick and stores each finished run
// exactly once. A nil store only logs.
type Recorder struct {
	store  *Store
	logger *log.Logger
	gameID string
	preset string
	saved  bool
}

// NewRecorder creates a recorder for one game and difficulty preset.
func NewRecorder(store *Store, logger *log.Logger, gameID, preset string) *Recorder {
	return &Recorder{store: store, logger: logger, gameID: gameID, preset: preset}
}

// Observe looks at the state after a tick. It reports whether the run was
// recorded by this call.
func (r *Recorder) Observe(st core.GameState) bool {
	if !st.GameOver() {
		r.saved = false
		return false
	}
	if r.saved {
		return false
	}
	r.saved = true

	r.logger.Info("run finished",
		"outcome", st.Outcome,
		"seconds", fmt.Sprintf("%.2f", st.Elapsed),
		"jumps", st.Jumps,
		"distance", int(st.Distance))

	if r.store == nil {
		return true
	}
	_, err := r.store.SaveRun(Run{
		GameID:   r.gameID,
		Outcome:  st.Outcome.String(),
		Duration: st.Elapsed,
		Jumps:    st.Jumps,
		Distance: st.Distance,
		Preset:   r.preset,
	})
	if err != nil {
		// The run is lost from the ledger but play continues.
		r.logger.Error("cannot record run", "err", err)
	}
	return true
}

package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
	}
}

// FixedDelta returns the fixed timestep implied by the tick rate.
func (c RuntimeConfig) FixedDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// Outcome is the tri-state result of a run.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeLost
	OutcomeWon
)

// String returns the lowercase name used in logs and storage.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome can no longer change within a run.
func (o Outcome) Terminal() bool {
	return o == OutcomeLost || o == OutcomeWon
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Outcome  Outcome // Playing, Lost or Won
	Paused   bool    // Whether the game is paused
	Elapsed  float64 // Simulated seconds since the run started
	Jumps    int     // Accepted jumps this run
	Distance float64 // Pixels the obstacle field has travelled
}

// GameOver reports whether the run has been decided.
func (s GameState) GameOver() bool {
	return s.Outcome.Terminal()
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Err   error // Non-nil when the simulation hit an invariant violation
}

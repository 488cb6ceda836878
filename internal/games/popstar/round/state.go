package round

import "github.com/vovakirdan/popstar/internal/games/popstar/board"

// State is the phase of a round.
type State int

const (
	Idle           State = iota // Awaiting a selection
	Resolving                   // Removed cells are held before collapse
	ForcedClearing              // No move left, columns are cleared right to left
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resolving:
		return "resolving"
	case ForcedClearing:
		return "forced_clearing"
	default:
		return "unknown"
	}
}

// InputKind is the kind of input delivered for one tick.
type InputKind int

const (
	InputNone InputKind = iota
	InputSelect
	InputReset
)

// Input is the single input sampled for a tick.
type Input struct {
	Kind InputKind
	Pos  board.Pos
}

// Select returns a selection input for the cell at (row, col).
func Select(row, col int) Input {
	return Input{Kind: InputSelect, Pos: board.P(row, col)}
}

// Reset returns a reset input.
func Reset() Input {
	return Input{Kind: InputReset}
}

// Stats accumulate over a session and are cleared by reset.
type Stats struct {
	Moves       int // Accepted selections
	BestGroup   int // Largest group removed
	BoardClears int // Completed forced clears
	Cleared     int // Cells removed by selections
}

// TickResult describes what happened during one Step.
type TickResult struct {
	Tick       uint64
	State      State
	Score      int
	ScoreDelta int
	Removals   []board.RemovalResult

	// Settled is set on the tick that ran collapse and compaction.
	Settled bool
	// BoardCleared is set on the tick a forced clear finished.
	BoardCleared bool

	// Rejected holds the reason a selection was ignored, nil otherwise.
	Rejected error
}

// Explosions returns the number of cells removed during the tick.
func (r TickResult) Explosions() int {
	n := 0
	for _, rm := range r.Removals {
		n += rm.Count
	}
	return n
}

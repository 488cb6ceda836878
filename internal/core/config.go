package core

// Default screen and timing values for front ends that cannot measure them.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what a front end tells a game when it deals a board.
type RuntimeConfig struct {
	ScreenW  int   // Columns available to the game
	ScreenH  int   // Rows available to the game
	TickRate int   // Simulation ticks per second
	Seed     int64 // Board RNG seed; the platform replaces 0 with the clock
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score  int
	Paused bool // Paused by the player or by a too-small window
	Busy   bool // Selections are ignored until the board settles
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	// Explosions is the number of cells destroyed this tick, forwarded to
	// the sound player.
	Explosions int

	// Rejected is set when the game ignored the player's input this tick.
	Rejected error

	// Restarted is set when a new board was dealt this tick.
	Restarted bool
}

// SessionStats summarize one play session for persistence.
type SessionStats struct {
	Moves       int // Accepted selections
	BestGroup   int // Largest group removed at once
	BoardClears int // Boards cleared after running out of moves
	Cleared     int // Cells removed by the player
}

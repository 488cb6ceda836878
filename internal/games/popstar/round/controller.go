// Package round drives one PopStar session: selection, removal, the hold
// before collapse, deadlock detection and the forced column-by-column clear.
//
// A Controller is advanced by exactly one Step per simulation tick. All
// timers are tick counters, so a session is fully deterministic given its
// colour source and input sequence.
package round

import (
	"fmt"

	"github.com/vovakirdan/popstar/internal/games/popstar/board"
)

// Controller owns the grid, score and state of one session.
type Controller struct {
	params Params
	pal    board.Palette
	grid   *board.Grid

	state State
	tick  uint64
	score int
	stats Stats

	holdLeft  int // Ticks until collapse while Resolving
	clearLeft int // Ticks until the next column removal while ForcedClearing
	clearCol  int // Next column to remove while ForcedClearing

	removals []board.RemovalResult // Removals of the last tick
	motion   *motion
}

// New creates a controller with a freshly dealt random grid.
func New(p Params, src board.ColorSource) (*Controller, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	pal := board.NewPalette(p.PaletteSize, src)
	return newController(p, pal, board.NewRandomGrid(p.Rows, p.Cols, pal)), nil
}

// NewWithGrid creates a controller around an existing grid. The grid's
// dimensions override p.Rows and p.Cols. The grid is owned by the controller
// afterwards.
func NewWithGrid(p Params, src board.ColorSource, g *board.Grid) (*Controller, error) {
	if g == nil {
		return nil, fmt.Errorf("round: nil grid: %w", ErrInvalidConfiguration)
	}
	p.Rows, p.Cols = g.Rows(), g.Cols()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return newController(p, board.NewPalette(p.PaletteSize, src), g), nil
}

func newController(p Params, pal board.Palette, g *board.Grid) *Controller {
	c := &Controller{
		params: p,
		pal:    pal,
		grid:   g,
		state:  Idle,
		motion: newMotion(p),
	}
	c.checkMoves()
	return c
}

// Params returns the rules the controller was created with.
func (c *Controller) Params() Params {
	return c.params
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Score returns the current score.
func (c *Controller) Score() int {
	return c.score
}

// Stats returns the session statistics.
func (c *Controller) Stats() Stats {
	return c.stats
}

// Tick returns the number of steps taken.
func (c *Controller) Tick() uint64 {
	return c.tick
}

// Grid returns a copy of the current grid.
func (c *Controller) Grid() *board.Grid {
	return c.grid.Clone()
}

// Step advances the session by one tick with the input sampled for it.
//
// A reset is honoured in any state. A selection is honoured only in Idle;
// in other states it is discarded and reported in TickResult.Rejected.
// Timers do not run on the tick an input was accepted, so a selection at
// tick t collapses at tick t+max(ResolvingHoldTicks, 1).
func (c *Controller) Step(in Input) TickResult {
	c.tick++
	c.removals = nil
	c.motion.advance()

	res := TickResult{}
	acted := false

	switch in.Kind {
	case InputReset:
		c.reset()
		acted = true
	case InputSelect:
		if c.state != Idle {
			res.Rejected = fmt.Errorf("round: select %v while %s: %w", in.Pos, c.state, ErrBusy)
			break
		}
		delta, err := c.selectAt(in.Pos)
		if err != nil {
			res.Rejected = err
			break
		}
		res.ScoreDelta = delta
		acted = true
	}

	if !acted {
		c.advance(&res)
	}

	res.Tick = c.tick
	res.State = c.state
	res.Score = c.score
	res.Removals = c.removals
	return res
}

// selectAt removes the group at p if it is large enough and starts the hold.
func (c *Controller) selectAt(p board.Pos) (int, error) {
	group, err := board.ConnectedGroup(c.grid, p)
	if err != nil {
		return 0, fmt.Errorf("round: select: %w", err)
	}
	if len(group) < c.params.MinGroupSize {
		return 0, fmt.Errorf("round: select %v: size %d below %d: %w",
			p, len(group), c.params.MinGroupSize, ErrGroupTooSmall)
	}

	removal, err := board.Remove(c.grid, group)
	if err != nil {
		return 0, fmt.Errorf("round: select: %w", err)
	}
	c.record(removal)

	delta := removal.Count * removal.Count
	c.score += delta
	c.stats.Moves++
	c.stats.Cleared += removal.Count
	if removal.Count > c.stats.BestGroup {
		c.stats.BestGroup = removal.Count
	}

	c.state = Resolving
	c.holdLeft = atLeastOne(c.params.ResolvingHoldTicks)
	return delta, nil
}

// advance runs the timers of the current state for one tick.
func (c *Controller) advance(res *TickResult) {
	switch c.state {
	case Resolving:
		c.holdLeft--
		if c.holdLeft > 0 {
			return
		}
		c.settle()
		res.Settled = true

	case ForcedClearing:
		c.clearLeft--
		if c.clearLeft > 0 {
			return
		}
		removal, err := board.RemoveColumn(c.grid, c.clearCol)
		if err != nil {
			// The cursor only walks in-range columns; leave the round usable.
			c.clearCol = -1
		} else {
			c.record(removal)
			c.clearCol--
		}
		if c.clearCol >= 0 {
			c.clearLeft = atLeastOne(c.params.ClearColumnDelayTicks)
			return
		}
		c.stats.BoardClears++
		c.settle()
		res.Settled = true
		res.BoardCleared = true
	}
}

// settle collapses and compacts the grid, then chooses the next state.
func (c *Controller) settle() {
	moves := board.Collapse(c.grid, c.pal)
	moves = append(moves, board.CompactColumnsLeft(c.grid, c.pal)...)
	c.motion.moved(moves)
	c.motion.settleShrinks(c.grid)

	c.state = Idle
	c.checkMoves()
}

// checkMoves enters ForcedClearing when no group of the minimum size is left.
func (c *Controller) checkMoves() {
	if board.HasMoveOfSize(c.grid, c.params.MinGroupSize) {
		c.state = Idle
		return
	}
	c.state = ForcedClearing
	c.clearCol = c.grid.Cols() - 1
	c.clearLeft = atLeastOne(c.params.ClearColumnDelayTicks)
}

// reset deals a new grid and clears score, stats and timers.
func (c *Controller) reset() {
	c.grid = board.NewRandomGrid(c.params.Rows, c.params.Cols, c.pal)
	c.score = 0
	c.stats = Stats{}
	c.holdLeft = 0
	c.clearLeft = 0
	c.clearCol = 0
	c.motion.clear()
	c.state = Idle
	c.checkMoves()
}

func (c *Controller) record(r board.RemovalResult) {
	c.removals = append(c.removals, r)
	c.motion.removed(r)
}

package round

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when Params violate their constraints.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrBusy is reported when a selection arrives while the board is resolving.
	ErrBusy = errors.New("board is busy")
	// ErrGroupTooSmall is reported when the selected group is below the minimum size.
	ErrGroupTooSmall = errors.New("group too small")
)

// Params are the static rules of a session. Durations are in ticks.
type Params struct {
	Rows         int
	Cols         int
	PaletteSize  int
	MinGroupSize int

	// ResolvingHoldTicks is how long removed cells stay vacated before collapse.
	ResolvingHoldTicks int
	// ClearColumnDelayTicks is the pause between column removals in a forced clear.
	ClearColumnDelayTicks int

	// FallTicks and ShrinkTicks only drive presentation progress.
	FallTicks   int
	ShrinkTicks int
}

// DefaultParams returns the classic 10x10 five-colour board at 60 ticks per second.
func DefaultParams() Params {
	return Params{
		Rows:                  10,
		Cols:                  10,
		PaletteSize:           5,
		MinGroupSize:          2,
		ResolvingHoldTicks:    10,
		ClearColumnDelayTicks: 20,
		FallTicks:             8,
		ShrinkTicks:           10,
	}
}

// Validate checks every field and reports the first violation.
func (p Params) Validate() error {
	switch {
	case p.Rows < 1:
		return invalid("rows", p.Rows, "must be at least 1")
	case p.Cols < 1:
		return invalid("cols", p.Cols, "must be at least 1")
	case p.PaletteSize < 2:
		return invalid("palette size", p.PaletteSize, "must be at least 2")
	case p.MinGroupSize < 2:
		return invalid("min group size", p.MinGroupSize, "must be at least 2")
	case p.ResolvingHoldTicks < 0:
		return invalid("resolving hold ticks", p.ResolvingHoldTicks, "must not be negative")
	case p.ClearColumnDelayTicks < 0:
		return invalid("clear column delay ticks", p.ClearColumnDelayTicks, "must not be negative")
	case p.FallTicks < 0:
		return invalid("fall ticks", p.FallTicks, "must not be negative")
	case p.ShrinkTicks < 0:
		return invalid("shrink ticks", p.ShrinkTicks, "must not be negative")
	}
	return nil
}

func invalid(field string, value int, msg string) error {
	return fmt.Errorf("round: %s %d %s: %w", field, value, msg, ErrInvalidConfiguration)
}

// atLeastOne clamps a tick duration so every timer spans at least one step.
func atLeastOne(ticks int) int {
	if ticks < 1 {
		return 1
	}
	return ticks
}

// Package config provides YAML-based configuration loading and difficulty
// presets for the PopStar boards.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// PopstarConfig contains all configuration for the PopStar variants.
type PopstarConfig struct {
	Board     BoardConfig  `yaml:"board"`      // Classic board
	MiniBoard BoardConfig  `yaml:"mini_board"` // Small board variant
	Rules     RulesConfig  `yaml:"rules"`
	Timing    TimingConfig `yaml:"timing"`
	Audio     AudioConfig  `yaml:"audio"`
}

// BoardConfig defines the size and palette of one board variant.
type BoardConfig struct {
	Rows        int      `yaml:"rows"`
	Cols        int      `yaml:"cols"`
	PaletteSize int      `yaml:"palette_size"`
	Colors      []string `yaml:"colors"` // Terminal color per palette entry
}

// RulesConfig defines scoring and selection rules.
type RulesConfig struct {
	MinGroupSize int `yaml:"min_group_size"`
}

// TimingConfig defines round timers, in simulation ticks.
type TimingConfig struct {
	TickRate              int `yaml:"tick_rate"`
	ResolvingHoldTicks    int `yaml:"resolving_hold_ticks"`
	ClearColumnDelayTicks int `yaml:"clear_column_delay_ticks"`
	FallTicks             int `yaml:"fall_ticks"`
	ShrinkTicks           int `yaml:"shrink_ticks"`
}

// AudioConfig defines explosion sound playback.
type AudioConfig struct {
	Enabled            bool    `yaml:"enabled"`
	Volume             float64 `yaml:"volume"`               // 0.0 silent .. 1.0 full
	ExplosionSpacingMS int     `yaml:"explosion_spacing_ms"` // Gap between queued explosions
	SampleRate         int     `yaml:"sample_rate"`
}

// ErrInvalid is wrapped by every ValidationError.
var ErrInvalid = errors.New("invalid config")

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Unwrap lets callers match with errors.Is(err, ErrInvalid).
func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Validate checks every field and returns the first violation.
func (c PopstarConfig) Validate() error {
	if err := c.Board.validate("board"); err != nil {
		return err
	}
	if err := c.MiniBoard.validate("mini_board"); err != nil {
		return err
	}

	switch {
	case c.Rules.MinGroupSize < 2:
		return &ValidationError{"rules.min_group_size", "must be at least 2"}
	case c.Timing.TickRate < 1:
		return &ValidationError{"timing.tick_rate", "must be at least 1"}
	case c.Timing.ResolvingHoldTicks < 0:
		return &ValidationError{"timing.resolving_hold_ticks", "must not be negative"}
	case c.Timing.ClearColumnDelayTicks < 0:
		return &ValidationError{"timing.clear_column_delay_ticks", "must not be negative"}
	case c.Timing.FallTicks < 0:
		return &ValidationError{"timing.fall_ticks", "must not be negative"}
	case c.Timing.ShrinkTicks < 0:
		return &ValidationError{"timing.shrink_ticks", "must not be negative"}
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return &ValidationError{"audio.volume", "must be between 0 and 1"}
	case c.Audio.ExplosionSpacingMS < 0:
		return &ValidationError{"audio.explosion_spacing_ms", "must not be negative"}
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return &ValidationError{"audio.sample_rate", "must be positive"}
	}
	return nil
}

func (b BoardConfig) validate(prefix string) error {
	switch {
	case b.Rows < 1:
		return &ValidationError{prefix + ".rows", "must be at least 1"}
	case b.Cols < 1:
		return &ValidationError{prefix + ".cols", "must be at least 1"}
	case b.PaletteSize < 2:
		return &ValidationError{prefix + ".palette_size", "must be at least 2"}
	case b.PaletteSize > len(b.Colors):
		return &ValidationError{prefix + ".colors",
			fmt.Sprintf("has %d entries, palette_size needs %d", len(b.Colors), b.PaletteSize)}
	}
	for i, name := range b.Colors {
		if strings.TrimSpace(name) == "" {
			return &ValidationError{fmt.Sprintf("%s.colors[%d]", prefix, i), "must not be empty"}
		}
	}
	return nil
}

// TicksFor converts a duration in milliseconds to ticks at the configured
// rate, rounding up so a non-zero duration lasts at least one tick.
func (t TimingConfig) TicksFor(ms int) int {
	if ms <= 0 || t.TickRate <= 0 {
		return 0
	}
	return (ms*t.TickRate + 999) / 1000
}

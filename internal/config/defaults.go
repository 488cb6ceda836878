package config

import (
	_ "embed"
)

//go:embed defaults/popstar.yaml
var defaultPopstarYAML []byte

// starColors is the terminal palette, in palette index order.
var starColors = []string{
	"bright_red",
	"bright_green",
	"bright_blue",
	"bright_yellow",
	"bright_magenta",
	"bright_cyan",
}

// DefaultPopstarConfig returns the built-in configuration, used when the
// embedded YAML cannot be parsed.
func DefaultPopstarConfig() PopstarConfig {
	return PopstarConfig{
		Board: BoardConfig{
			Rows:        10,
			Cols:        10,
			PaletteSize: 5,
			Colors:      append([]string(nil), starColors...),
		},
		MiniBoard: BoardConfig{
			Rows:        6,
			Cols:        6,
			PaletteSize: 4,
			Colors:      append([]string(nil), starColors...),
		},
		Rules: RulesConfig{
			MinGroupSize: 2,
		},
		Timing: TimingConfig{
			TickRate:              60,
			ResolvingHoldTicks:    10,
			ClearColumnDelayTicks: 20,
			FallTicks:             8,
			ShrinkTicks:           10,
		},
		Audio: AudioConfig{
			Enabled:            true,
			Volume:             0.5,
			ExplosionSpacingMS: 100,
			SampleRate:         44100,
		},
	}
}

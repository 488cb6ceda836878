package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Difficulty in PopStar is the palette size: fewer colors make larger groups.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// easyPalette is the palette size used by the easy preset.
const easyPalette = 4

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
}

// ApplyPopstarPreset adjusts the palette of both boards for a preset.
// Normal keeps the configured palette. Hard adds one color, limited by the
// number of configured colors.
func ApplyPopstarPreset(cfg *PopstarConfig, preset DifficultyPreset) {
	applyBoardPreset(&cfg.Board, preset)
	applyBoardPreset(&cfg.MiniBoard, preset)
}

func applyBoardPreset(b *BoardConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		if b.PaletteSize > easyPalette {
			b.PaletteSize = easyPalette
		}
	case DifficultyHard:
		if b.PaletteSize < len(b.Colors) {
			b.PaletteSize++
		}
	}
}

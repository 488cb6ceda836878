package core

import "strings"

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright_red",
	ColorBrightGreen:   "bright_green",
	ColorBrightYellow:  "bright_yellow",
	ColorBrightBlue:    "bright_blue",
	ColorBrightMagenta: "bright_magenta",
	ColorBrightCyan:    "bright_cyan",
	ColorBrightWhite:   "bright_white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
}

// String returns the config name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor looks up a color by its config name, case-insensitively.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorDefault, false
}

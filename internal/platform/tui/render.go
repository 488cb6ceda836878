package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/popstar/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// ScreenRenderer converts Screen buffers to styled strings for one output.
// SSH sessions need their own renderer so colors match the client terminal.
type ScreenRenderer struct {
	plain  lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

// NewScreenRenderer creates a renderer; nil uses the process stdout.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &ScreenRenderer{
		plain:  r.NewStyle(),
		styles: make(map[core.Color]lipgloss.Style, len(colorCodes)),
	}
	for c, code := range colorCodes {
		sr.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return sr
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if st, ok := sr.styles[c]; ok {
		return st
	}
	return sr.plain
}

// Render converts a Screen buffer to a styled string.
// Runs of same-colored cells share one escape sequence.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(sr.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultScreenRenderer = NewScreenRenderer(nil)

// RenderScreen renders a Screen buffer for the local terminal.
func RenderScreen(s *core.Screen) string {
	return defaultScreenRenderer.Render(s)
}

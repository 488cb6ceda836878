package core

import (
	"strings"
)

// Cell is one character of the screen with its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D colored character buffer.
// Games draw into it; the platform turns it into terminal output.
// Cells are stored row-major in a single slice.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.cells = make([]Cell, s.width*s.height)
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a rectangle at the origin.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	oldW := s.width
	copyW := min(oldW, width)
	copyH := min(s.height, height)

	s.width = width
	s.height = height
	s.cells = make([]Cell, width*height)
	s.Clear()

	for y := 0; y < copyH; y++ {
		copy(s.cells[y*width:y*width+copyW], old[y*oldW:y*oldW+copyW])
	}
}

// Clear fills the entire screen with default-colored spaces.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// Fill fills the entire screen with the given rune, keeping colors.
func (s *Screen) Fill(r rune) {
	for i := range s.cells {
		s.cells[i].Rune = r
	}
}

// Set places a rune with the default color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColor(x, y, r, ColorDefault)
}

// SetColor places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetColor(x, y int, r rune, c Color) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes a colored string horizontally starting at (x, y).
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColor(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColor(y, text, ColorDefault)
}

// DrawTextCenteredColor draws colored text centered horizontally.
func (s *Screen) DrawTextCenteredColor(y int, text string, c Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawTextColor(x, y, text, c)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	s.SetColor(r.X, r.Y, '┌', c)
	s.SetColor(r.Right()-1, r.Y, '┐', c)
	s.SetColor(r.X, r.Bottom()-1, '└', c)
	s.SetColor(r.Right()-1, r.Bottom()-1, '┘', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColor(x, r.Y, '─', c)
		s.SetColor(x, r.Bottom()-1, '─', c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColor(r.X, y, '│', c)
		s.SetColor(r.Right()-1, y, '│', c)
	}
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x := range runes {
		runes[x] = s.cells[y*s.width+x].Rune
	}
	return string(runes)
}

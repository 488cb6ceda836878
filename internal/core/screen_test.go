package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if got := s.GetCell(x, y); got != blank {
				t.Fatalf("GetCell(%d, %d) = %+v, expected blank", x, y, got)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = %dx%d, expected 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, expected empty", s.String())
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, '★', ColorRed)
	got := s.GetCell(5, 5)
	if got.Rune != '★' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red star", got)
	}

	s.Set(5, 5, 'X')
	if got := s.GetCell(5, 5); got.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", got.Color)
	}

	// Out of bounds writes are ignored
	s.SetColor(-1, 0, 'A', ColorBlue)
	s.SetColor(10, 0, 'A', ColorBlue)
	s.SetColor(0, 10, 'A', ColorBlue)

	if s.GetCell(-1, 0) != blank {
		t.Error("Out of bounds GetCell should return blank")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColor(1, 1, 'X', ColorGreen)

	s.Fill('#')
	if got := s.GetCell(1, 1); got.Rune != '#' || got.Color != ColorGreen {
		t.Errorf("Fill should keep colors, got %+v", got)
	}

	s.Clear()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if s.GetCell(x, y) != blank {
				t.Errorf("After Clear, expected blank at (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Score", ColorYellow)

	for i, ch := range "Score" {
		got := s.GetCell(2+i, 1)
		if got.Rune != ch || got.Color != ColorYellow {
			t.Errorf("DrawTextColor: expected yellow %q at (%d, 1), got %+v", ch, 2+i, got)
		}
	}

	// Multi-byte runes take one cell each
	s.DrawText(0, 2, "★★x")
	if s.Get(2, 2) != 'x' {
		t.Errorf("Get(2, 2) = %q, expected 'x'", s.Get(2, 2))
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCenteredColor(2, "★★", ColorRed)

	x := (20 - 2) / 2
	if s.Get(x, 2) != '★' || s.Get(x+1, 2) != '★' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		got := s.GetCell(c.x, c.y)
		if got.Rune != c.want || got.Color != ColorGray {
			t.Errorf("corner (%d, %d) = %+v, expected gray %q", c.x, c.y, got, c.want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}

	// Too small to draw
	s2 := NewScreen(4, 4)
	s2.DrawBox(NewRect(0, 0, 1, 3), ColorGray)
	if s2.Get(0, 0) != ' ' {
		t.Error("DrawBox should skip boxes narrower than 2")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextColor(0, 1, "BBBBB", ColorBlue)
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorCyan)
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row := s.Row(0); !strings.HasPrefix(row, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row)
	}
	if got := s.GetCell(0, 0).Color; got != ColorCyan {
		t.Errorf("Color should be preserved, got %v", got)
	}

	s.Resize(15, 8)
	if row := s.Row(0); !strings.HasPrefix(row, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row)
	}
	if s.Get(14, 7) != ' ' {
		t.Error("New area should be blank")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}
	if got := s.Row(-1); got != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"red", ColorRed, true},
		{" Bright_Blue ", ColorBrightBlue, true},
		{"orange", ColorOrange, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tt := range tests {
		got, ok := ParseColor(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseColor(%q) = %v, %v, expected %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}

	if ColorMagenta.String() != "magenta" {
		t.Errorf("ColorMagenta.String() = %q", ColorMagenta.String())
	}
}

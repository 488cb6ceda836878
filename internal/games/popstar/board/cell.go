// Package board implements the tile grid of the PopStar puzzle: bounds-checked
// cell storage, same-colour group search, removal and gravity.
// The package is UI-agnostic and deterministic given its colour source.
package board

// ColorID identifies a token colour within the palette, 0 <= id < palette size.
type ColorID int

// NoColor marks a removal that spans several colours (a forced column clear).
const NoColor ColorID = -1

// Cell is one grid slot. A cell that is not Alive has been vacated by removal
// and is waiting to be replaced by collapse.
type Cell struct {
	Pos   Pos
	Color ColorID
	Alive bool
}

// ColorSource provides uniform random integers in [0, n).
// *rand.Rand satisfies it.
type ColorSource interface {
	Intn(n int) int
}

// Palette draws fresh token colours.
type Palette struct {
	Size int
	Src  ColorSource
}

// NewPalette creates a palette of the given size backed by src.
func NewPalette(size int, src ColorSource) Palette {
	return Palette{Size: size, Src: src}
}

// Next returns a uniformly random colour from the palette.
func (p Palette) Next() ColorID {
	if p.Size <= 1 || p.Src == nil {
		return 0
	}
	return ColorID(p.Src.Intn(p.Size))
}

// fresh returns a newly spawned alive cell at pos.
func (p Palette) fresh(pos Pos) Cell {
	return Cell{Pos: pos, Color: p.Next(), Alive: true}
}

package popstar

import (
	"fmt"
	"math"

	"github.com/vovakirdan/popstar/internal/core"
	"github.com/vovakirdan/popstar/internal/games/popstar/board"
	"github.com/vovakirdan/popstar/internal/games/popstar/round"
)

const (
	cellWidth    = 3 // Columns per star, with room for the cursor brackets
	hudHeight    = 2
	footerHeight = 1

	starRune = '★'
)

// boardRect returns the bordered board area, centered horizontally under
// the HUD.
func (g *Game) boardRect() core.Rect {
	p := g.ctrl.Params()
	w := p.Cols*cellWidth + 2
	h := p.Rows + 2
	return core.NewRect((g.screenW-w)/2, hudHeight, w, h)
}

// cellOrigin returns the screen position of the star glyph of a cell.
func (g *Game) cellOrigin(r core.Rect, row, col int) (int, int) {
	return r.X + 1 + col*cellWidth + 1, r.Y + 1 + row
}

// cellAt maps a screen position to the cell under it.
func (g *Game) cellAt(x, y int) (board.Pos, bool) {
	if g.ctrl == nil || g.tooSmall {
		return board.Pos{}, false
	}
	inner := g.boardRect().Inset(1)
	if !inner.Contains(x, y) {
		return board.Pos{}, false
	}
	return board.P(y-inner.Y, (x-inner.X)/cellWidth), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.ctrl.Snapshot()
	r := g.boardRect()

	g.renderHUD(dst, snap, r)
	dst.DrawBox(r, core.ColorGray)
	g.renderStars(dst, snap, r)
	g.renderCursor(dst, snap, r)
	g.renderFooter(dst, snap, r)

	if g.paused {
		g.drawOverlay(dst, r, "PAUSED", "Press P to resume")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and score above the board.
func (g *Game) renderHUD(dst *core.Screen, snap round.Snapshot, r core.Rect) {
	dst.DrawTextCenteredColor(0, g.Title(), core.ColorBrightYellow)

	score := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawText(r.X, 1, score)

	best := fmt.Sprintf("Best group: %d", snap.Stats.BestGroup)
	x := r.Right() - len(best)
	if x < r.X+len(score)+1 {
		x = r.X + len(score) + 1
	}
	dst.DrawText(x, 1, best)
}

// renderStars draws alive stars at their interpolated fall position and
// removed stars while they shrink.
func (g *Game) renderStars(dst *core.Screen, snap round.Snapshot, r core.Rect) {
	inner := r.Inset(1)
	for _, v := range snap.Cells {
		if !v.Alive {
			ch := shrinkRune(v.ShrinkProgress)
			if ch == 0 {
				continue
			}
			x, y := g.cellOrigin(r, v.Pos.Row, v.Pos.Col)
			dst.SetColor(x, y, ch, g.colorOf(v.Color))
			continue
		}

		row := lerp(v.FallFrom.Row, v.Pos.Row, v.FallProgress)
		col := lerp(v.FallFrom.Col, v.Pos.Col, v.FallProgress)
		x, y := g.cellOrigin(r, row, col)
		if !inner.Contains(x, y) {
			continue // spawned star still above the board
		}
		dst.SetColor(x, y, starRune, g.colorOf(v.Color))
	}

	if snap.ClearColumn >= 0 {
		x, _ := g.cellOrigin(r, 0, snap.ClearColumn)
		dst.SetColor(x, r.Y, '▼', core.ColorBrightWhite)
	}
}

func (g *Game) renderCursor(dst *core.Screen, snap round.Snapshot, r core.Rect) {
	if snap.State == round.ForcedClearing {
		return
	}
	x, y := g.cellOrigin(r, g.cursor.Row, g.cursor.Col)
	c := core.ColorBrightWhite
	if snap.State != round.Idle {
		c = core.ColorGray
	}
	dst.SetColor(x-1, y, '[', c)
	dst.SetColor(x+1, y, ']', c)
}

// renderFooter draws the status line under the board.
func (g *Game) renderFooter(dst *core.Screen, snap round.Snapshot, r core.Rect) {
	y := r.Bottom()
	switch snap.State {
	case round.ForcedClearing:
		dst.DrawTextCenteredColor(y, "No more moves!", core.ColorBrightRed)
	default:
		status := fmt.Sprintf("Moves: %d  Cleared: %d  Boards: %d",
			snap.Stats.Moves, snap.Stats.Cleared, snap.Stats.BoardClears)
		dst.DrawTextCentered(y, status)
	}
}

// drawOverlay draws a boxed message in the middle of the board.
func (g *Game) drawOverlay(dst *core.Screen, r core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}
	box := r.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, line := range lines {
		dst.DrawText(box.X+(box.W-len(line))/2, box.Y+1+i, line)
	}
}

func (g *Game) colorOf(id board.ColorID) core.Color {
	if id < 0 || int(id) >= len(g.colors) {
		return core.ColorWhite
	}
	return g.colors[id]
}

// shrinkRune returns the glyph of a removed star, or 0 once it is gone.
func shrinkRune(progress float64) rune {
	switch {
	case progress < 0.5:
		return '*'
	case progress < 1:
		return '·'
	default:
		return 0
	}
}

func lerp(from, to int, t float64) int {
	return from + int(math.Round(float64(to-from)*t))
}

package round

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/popstar/internal/games/popstar/board"
)

// track is one running presentation tween.
type track struct {
	tween    *gween.Tween
	progress float32
	from     board.Pos
}

// motion tracks fall and shrink progress per grid slot.
// It only feeds snapshots and never affects the simulation.
type motion struct {
	cols   int
	fall   map[int]*track
	shrink map[int]*track

	fallTicks   int
	shrinkTicks int
}

func newMotion(p Params) *motion {
	return &motion{
		cols:        p.Cols,
		fall:        make(map[int]*track),
		shrink:      make(map[int]*track),
		fallTicks:   p.FallTicks,
		shrinkTicks: p.ShrinkTicks,
	}
}

func (m *motion) index(p board.Pos) int {
	return p.Row*m.cols + p.Col
}

// advance moves every tween one tick forward and drops finished ones.
func (m *motion) advance() {
	step(m.fall)
	step(m.shrink)
}

func step(tracks map[int]*track) {
	for idx, t := range tracks {
		curr, finished := t.tween.Update(1)
		t.progress = curr
		if finished {
			delete(tracks, idx)
		}
	}
}

// removed starts a shrink for every removed cell.
func (m *motion) removed(res board.RemovalResult) {
	if m.shrinkTicks == 0 {
		return
	}
	for _, cell := range res.Cells {
		m.shrink[m.index(cell.Pos)] = &track{
			tween: gween.New(0, 1, float32(m.shrinkTicks), ease.Linear),
			from:  cell.Pos,
		}
	}
}

// moved starts falls for the given moves. A cell that is already in flight
// keeps its original starting point so chained moves animate as one.
func (m *motion) moved(moves []board.Move) {
	if m.fallTicks == 0 || len(moves) == 0 {
		return
	}
	prev := make(map[int]board.Pos, len(m.fall))
	for idx, t := range m.fall {
		prev[idx] = t.from
	}
	for _, mv := range moves {
		from := mv.From
		if !mv.Spawned {
			if origin, ok := prev[m.index(mv.From)]; ok {
				from = origin
			}
		}
		m.fall[m.index(mv.To)] = &track{
			tween: gween.New(0, 1, float32(m.fallTicks), ease.Linear),
			from:  from,
		}
	}
}

// settleShrinks drops shrink tracks for slots that were refilled.
func (m *motion) settleShrinks(g *board.Grid) {
	for idx := range m.shrink {
		cell, err := g.Get(board.P(idx/m.cols, idx%m.cols))
		if err != nil || cell.Alive {
			delete(m.shrink, idx)
		}
	}
}

func (m *motion) clear() {
	m.fall = make(map[int]*track)
	m.shrink = make(map[int]*track)
}

// fallOf returns where the cell at p started falling and how far it got.
func (m *motion) fallOf(p board.Pos) (board.Pos, float64) {
	if t, ok := m.fall[m.index(p)]; ok {
		return t.from, float64(t.progress)
	}
	return p, 1
}

// shrinkOf returns how far a removed cell at p has shrunk.
func (m *motion) shrinkOf(p board.Pos) float64 {
	if t, ok := m.shrink[m.index(p)]; ok {
		return float64(t.progress)
	}
	return 1
}

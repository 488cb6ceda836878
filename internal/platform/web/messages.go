package web

import (
	"fmt"

	"github.com/vovakirdan/popstar/internal/games/popstar/round"
)

// Client message types.
const (
	MsgSelect = "select"
	MsgReset  = "reset"
)

// ClientMessage is sent by the browser.
type ClientMessage struct {
	Type string `json:"type"`
	Row  int    `json:"row,omitempty"`
	Col  int    `json:"col,omitempty"`
}

// Input converts the message to a round input.
func (m ClientMessage) Input() (round.Input, error) {
	switch m.Type {
	case MsgSelect:
		return round.Select(m.Row, m.Col), nil
	case MsgReset:
		return round.Reset(), nil
	}
	return round.Input{}, fmt.Errorf("web: unknown message type %q", m.Type)
}

// CellMessage is the presentation state of one grid slot.
type CellMessage struct {
	Color   int     `json:"color"`
	Alive   bool    `json:"alive"`
	FromRow int     `json:"from_row"`
	FromCol int     `json:"from_col"`
	Fall    float64 `json:"fall"`   // 0 at from, 1 at rest
	Shrink  float64 `json:"shrink"` // 0 just removed, 1 gone
}

// StatsMessage mirrors round.Stats.
type StatsMessage struct {
	Moves       int `json:"moves"`
	BestGroup   int `json:"best_group"`
	BoardClears int `json:"board_clears"`
	Cleared     int `json:"cleared"`
}

// SnapshotMessage is pushed to the browser on every tick that changed
// something visible.
type SnapshotMessage struct {
	Type        string        `json:"type"`
	Tick        uint64        `json:"tick"`
	Rows        int           `json:"rows"`
	Cols        int           `json:"cols"`
	State       string        `json:"state"`
	Score       int           `json:"score"`
	ScoreDelta  int           `json:"score_delta,omitempty"`
	Explosions  int           `json:"explosions,omitempty"`
	ClearColumn int           `json:"clear_column"`
	HasMove     bool          `json:"has_move"`
	Stats       StatsMessage  `json:"stats"`
	Cells       []CellMessage `json:"cells"`
	Rejected    string        `json:"rejected,omitempty"`
}

// GameInfo describes a playable board for the games endpoint.
type GameInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
}

// ScoreMessage is one entry of the scores endpoint.
type ScoreMessage struct {
	Rank      int    `json:"rank"`
	Player    string `json:"player"`
	Score     int    `json:"score"`
	CreatedAt string `json:"created_at"`
}

// ErrorMessage is returned by the HTTP API on failure.
type ErrorMessage struct {
	Error string `json:"error"`
}

func newSnapshotMessage(s round.Snapshot, res round.TickResult) SnapshotMessage {
	msg := SnapshotMessage{
		Type:        "snapshot",
		Tick:        s.Tick,
		Rows:        s.Rows,
		Cols:        s.Cols,
		State:       s.State.String(),
		Score:       s.Score,
		ScoreDelta:  res.ScoreDelta,
		Explosions:  res.Explosions(),
		ClearColumn: s.ClearColumn,
		HasMove:     s.HasMove,
		Stats: StatsMessage{
			Moves:       s.Stats.Moves,
			BestGroup:   s.Stats.BestGroup,
			BoardClears: s.Stats.BoardClears,
			Cleared:     s.Stats.Cleared,
		},
		Cells: make([]CellMessage, len(s.Cells)),
	}
	if res.Rejected != nil {
		msg.Rejected = res.Rejected.Error()
	}
	for i, c := range s.Cells {
		msg.Cells[i] = CellMessage{
			Color:   int(c.Color),
			Alive:   c.Alive,
			FromRow: c.FallFrom.Row,
			FromCol: c.FallFrom.Col,
			Fall:    c.FallProgress,
			Shrink:  c.ShrinkProgress,
		}
	}
	return msg
}

// animating reports whether any cell is still falling or shrinking.
func animating(s round.Snapshot) bool {
	for _, c := range s.Cells {
		if c.Alive && c.FallProgress < 1 {
			return true
		}
		if !c.Alive && c.ShrinkProgress < 1 {
			return true
		}
	}
	return false
}

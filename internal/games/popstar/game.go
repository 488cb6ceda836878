// Package popstar adapts the PopStar round controller to the registry Game
// interface: cursor and pointer input, pausing, and terminal rendering.
package popstar

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/popstar/internal/config"
	"github.com/vovakirdan/popstar/internal/core"
	"github.com/vovakirdan/popstar/internal/games/popstar/board"
	"github.com/vovakirdan/popstar/internal/games/popstar/round"
	"github.com/vovakirdan/popstar/internal/registry"
)

// Variant selects the board size.
type Variant string

const (
	VariantClassic Variant = "classic"
	VariantMini    Variant = "mini"
)

// Game implements registry.Game for one PopStar board.
type Game struct {
	variant Variant
	cfg     config.PopstarConfig
	fixed   bool // cfg was injected and is not reloaded on Reset

	ctrl   *round.Controller
	colors []core.Color
	cursor board.Pos
	last   round.TickResult

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the config file used by subsequently reset games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the configured palette.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// New creates the classic board.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewMini creates the small board.
func NewMini() *Game {
	return &Game{variant: VariantMini}
}

// NewWithConfig creates a game that always uses cfg instead of loading
// configuration files.
func NewWithConfig(v Variant, cfg config.PopstarConfig) *Game {
	return &Game{variant: v, cfg: cfg, fixed: true}
}

func init() {
	registry.Register("popstar", func() registry.Game {
		return New()
	})
	registry.Register("popstar_mini", func() registry.Game {
		return NewMini()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantMini {
		return "popstar_mini"
	}
	return "popstar"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantMini {
		return "PopStar (Mini)"
	}
	return "PopStar"
}

// Describe summarizes the board size and palette.
func (g *Game) Describe() string {
	cfg := g.cfg
	if !g.fixed {
		cfg = LoadConfig()
	}
	b := boardConfig(cfg, g.variant)
	return fmt.Sprintf("%dx%d, %d colors", b.Rows, b.Cols, b.PaletteSize)
}

// ParamsFromConfig builds round parameters for a board variant.
func ParamsFromConfig(cfg config.PopstarConfig, v Variant) round.Params {
	b := boardConfig(cfg, v)
	return round.Params{
		Rows:                  b.Rows,
		Cols:                  b.Cols,
		PaletteSize:           b.PaletteSize,
		MinGroupSize:          cfg.Rules.MinGroupSize,
		ResolvingHoldTicks:    cfg.Timing.ResolvingHoldTicks,
		ClearColumnDelayTicks: cfg.Timing.ClearColumnDelayTicks,
		FallTicks:             cfg.Timing.FallTicks,
		ShrinkTicks:           cfg.Timing.ShrinkTicks,
	}
}

// Palette maps palette indices to terminal colors. Unknown names render white.
func Palette(b config.BoardConfig) []core.Color {
	colors := make([]core.Color, len(b.Colors))
	for i, name := range b.Colors {
		c, ok := core.ParseColor(name)
		if !ok {
			c = core.ColorWhite
		}
		colors[i] = c
	}
	return colors
}

func boardConfig(cfg config.PopstarConfig, v Variant) config.BoardConfig {
	if v == VariantMini {
		return cfg.MiniBoard
	}
	return cfg.Board
}

// LoadConfig loads the configuration the CLI selected, with the difficulty
// preset applied. It falls back to defaults on error.
func LoadConfig() config.PopstarConfig {
	cfg, err := config.LoadPopstar(configPath)
	if err != nil {
		cfg = config.DefaultPopstarConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPopstarPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset deals a new board sized for the screen in cfg.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.fixed {
		g.cfg = LoadConfig()
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.paused = false
	g.last = round.TickResult{}

	params := ParamsFromConfig(g.cfg, g.variant)
	ctrl, err := round.New(params, rand.New(rand.NewSource(rc.Seed)))
	if err != nil {
		// Invalid user config: play the built-in board instead.
		params = ParamsFromConfig(config.DefaultPopstarConfig(), g.variant)
		ctrl, err = round.New(params, rand.New(rand.NewSource(rc.Seed)))
		if err != nil {
			panic(fmt.Sprintf("popstar: built-in %s board is invalid: %v", g.variant, err))
		}
		g.cfg = config.DefaultPopstarConfig()
	}
	g.ctrl = ctrl
	g.colors = Palette(boardConfig(g.cfg, g.variant))
	g.cursor = board.P(params.Rows/2, params.Cols/2)
	g.checkScreenSize()
}

// Config returns the configuration of the current board.
func (g *Game) Config() config.PopstarConfig {
	return g.cfg
}

// Controller exposes the underlying round controller.
func (g *Game) Controller() *round.Controller {
	return g.ctrl
}

// Cursor returns the keyboard cursor position.
func (g *Game) Cursor() board.Pos {
	return g.cursor
}

// Resize adapts the layout to a new screen size without dealing a new board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.ctrl != nil {
		g.checkScreenSize()
	}
}

func (g *Game) checkScreenSize() {
	p := g.ctrl.Params()
	minW := p.Cols*cellWidth + 2
	minH := p.Rows + 2 + hudHeight + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick. A restart is honoured even while the
// game is paused or the window is too small, and unpauses the new board.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.paused = false
		g.last = g.ctrl.Step(round.Reset())
		return core.StepResult{State: g.State(), Restarted: true}
	}
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	var input round.Input
	switch {
	case in.Click != nil:
		if pos, ok := g.cellAt(in.Click.X, in.Click.Y); ok {
			g.cursor = pos
			input = round.Select(pos.Row, pos.Col)
		}
	case in.Has(core.ActionConfirm):
		input = round.Select(g.cursor.Row, g.cursor.Col)
	}

	g.last = g.ctrl.Step(input)
	return core.StepResult{
		State:      g.State(),
		Explosions: g.last.Explosions(),
		Rejected:   g.last.Rejected,
	}
}

// moveCursor applies at most one direction per tick, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	p := g.ctrl.Params()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, p.Rows-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, p.Cols-1)
}

// State returns the current game state. A PopStar session never ends; the
// board is cleared and redealt when no move is left.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.ctrl.Score(),
		Paused: g.paused || g.tooSmall,
		Busy:   g.ctrl.State() != round.Idle,
	}
}

// SessionStats reports the statistics of the current board.
func (g *Game) SessionStats() core.SessionStats {
	if g.ctrl == nil {
		return core.SessionStats{}
	}
	s := g.ctrl.Stats()
	return core.SessionStats{
		Moves:       s.Moves,
		BestGroup:   s.BestGroup,
		BoardClears: s.BoardClears,
		Cleared:     s.Cleared,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter/Click: Pop | P: Pause | R: New board | Q: Quit"
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/popstar/internal/audio"
	"github.com/vovakirdan/popstar/internal/core"
	"github.com/vovakirdan/popstar/internal/registry"
	"github.com/vovakirdan/popstar/internal/storage"
)

// helpHeight is the number of rows reserved under the game for key help.
const helpHeight = 1

// GameOptions are the optional collaborators of a GameModel.
type GameOptions struct {
	Player string              // Recorded with saved sessions
	Sound  *audio.SoundManager // Nil plays silently
	Logger *log.Logger         // Nil uses the default logger

	// Renderer styles output for the player's terminal; nil uses stdout.
	Renderer *lipgloss.Renderer

	// ExitOnBack quits the program on Back instead of returning to a menu.
	ExitOnBack bool
}

// resizer is implemented by games that can re-layout without a new board.
type resizer interface {
	Resize(w, h int)
}

// GameModel is the Bubble Tea model that runs one game at a fixed tick rate.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	opts       GameOptions
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	output     *ScreenRenderer
	started    time.Time
	loop       uint64
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new game model. cfg holds the full terminal size.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	cfg.ScreenH -= helpHeight

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		opts:       opts,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		output:     NewScreenRenderer(opts.Renderer),
		loop:       newLoopID(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// started and gameState are set on the first tick (value receiver)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.endSession()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.endSession()
		if m.opts.ExitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height - helpHeight
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.started.IsZero() {
		m.started = time.Now()
	}

	// The game may redeal inside Step, so capture the old board first.
	pending, hasPending := m.sessionRecord()

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Restarted {
		if hasPending {
			m.saveSession(pending)
		}
		m.started = time.Now()
		if m.opts.Sound != nil {
			m.opts.Sound.Flush()
		}
	}
	if result.Rejected != nil {
		m.logger.Debug("selection rejected", "game", m.game.ID(), "reason", result.Rejected)
	}

	if m.opts.Sound != nil {
		m.opts.Sound.Trigger(result.Explosions)
		m.opts.Sound.Tick()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.loop)
}

// endSession saves the current board when it scored anything.
func (m *GameModel) endSession() {
	if rec, ok := m.sessionRecord(); ok {
		m.saveSession(rec)
	}
}

// sessionRecord describes the current board, or reports false when there
// is nothing worth saving.
func (m *GameModel) sessionRecord() (storage.SessionRecord, bool) {
	if m.store == nil || m.gameState.Score <= 0 {
		return storage.SessionRecord{}, false
	}

	rec := storage.SessionRecord{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.gameState.Score,
	}
	if sr, ok := m.game.(registry.StatsReporter); ok {
		stats := sr.SessionStats()
		rec.Moves = stats.Moves
		rec.BestGroup = stats.BestGroup
		rec.BoardClears = stats.BoardClears
		rec.Cleared = stats.Cleared
	}
	if !m.started.IsZero() {
		rec.Duration = time.Since(m.started)
	}
	return rec, true
}

func (m *GameModel) saveSession(rec storage.SessionRecord) {
	if _, ok := m.game.(registry.StatsReporter); !ok && rec.Player == "" {
		// No stats and no player: only the score is worth keeping.
		if _, err := m.store.SaveScore(rec.GameID, rec.Score); err != nil {
			m.logger.Warn("could not save score", "game", rec.GameID, "error", err)
			return
		}
		m.logger.Debug("score saved", "game", rec.GameID, "score", rec.Score)
		m.gameState.Score = 0
		return
	}
	if _, err := m.store.SaveSession(rec); err != nil {
		m.logger.Warn("could not save session", "game", rec.GameID, "error", err)
		return
	}
	m.logger.Debug("session saved", "game", rec.GameID, "player", rec.Player, "score", rec.Score)
	m.gameState.Score = 0
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".popstar", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.output.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	opts.ExitOnBack = true
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

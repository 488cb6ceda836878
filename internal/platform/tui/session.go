package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/popstar/internal/core"
	"github.com/vovakirdan/popstar/internal/registry"
	"github.com/vovakirdan/popstar/internal/storage"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full session flow: menu -> game or scoreboard ->
// menu. It is the top-level model of both the local menu and SSH sessions.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	opts     GameOptions
	view     sessionView
	menu     MenuModel
	game     *GameModel
	scores   *ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) SessionModel {
	opts.ExitOnBack = false
	return SessionModel{
		store:  store,
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(store, cfg, opts.Renderer),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		sb.embedded = true
		m.scores = &sb
		m.view = viewScores
		return m, sb.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Menu only lists registered games
			m.menu = NewMenuModel(m.store, m.config, m.opts.Renderer)
			return m, nil
		}

		gm := NewGameModel(game, m.store, m.config, m.opts)
		m.game = &gm
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}
	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// backToMenu drops the current screen and shows a fresh menu, so high
// scores are reloaded.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.game = nil
	m.scores = nil
	m.menu = NewMenuModel(m.store, m.config, m.opts.Renderer)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunSession runs the interactive menu until the player quits.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/popstar/internal/registry"
	"github.com/vovakirdan/popstar/internal/storage"
)

const (
	maxScores   = 100
	maxSessions = 50
)

// scoreboardMode selects what the table lists.
type scoreboardMode int

const (
	modeTopScores scoreboardMode = iota
	modeRecent
)

func (m scoreboardMode) String() string {
	if m == modeRecent {
		return "RECENT SESSIONS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Mode     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGame, k.PrevGame, k.Mode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Mode, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next board"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev board"),
		),
		Mode: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "top/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best scores and lifetime statistics per board.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	mode       scoreboardMode
	store      *storage.Store
	scores     []storage.ScoreEntry
	sessions   []storage.SessionRecord
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
	embedded   bool // Back is handled by the parent model instead of quitting
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable builds an empty table for the current mode and window size.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	switch m.mode {
	case modeRecent:
		columns = []table.Column{
			{Title: "Date", Width: 14},
			{Title: "Player", Width: 12},
			{Title: "Score", Width: 8},
			{Title: "Moves", Width: 6},
			{Title: "Best", Width: 5},
			{Title: "Time", Width: 8},
		}
	default:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Player", Width: 14},
			{Title: "Date", Width: 14},
		}
	}
	if m.width < 60 {
		for i := range columns {
			if columns[i].Title == "Player" {
				columns[i].Width = 8
			}
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 3)), // Title, tabs, stats and help
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)
	return t
}

// load reads the current board's rows and statistics from the store.
func (m *ScoreboardModel) load() {
	m.scores, m.sessions, m.stats = nil, nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.gameCursor].ID
		var err error
		if m.mode == modeRecent {
			m.sessions, err = m.store.RecentSessions(id, maxSessions)
		} else {
			m.scores, err = m.store.TopScores(id, maxScores)
		}
		if err == nil {
			m.stats, _ = m.store.GetGameStats(id)
		}
	}
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m *ScoreboardModel) rows() []table.Row {
	if m.mode == modeRecent {
		rows := make([]table.Row, len(m.sessions))
		for i, s := range m.sessions {
			rows[i] = table.Row{
				s.CreatedAt.Format("Jan 02 15:04"),
				playerName(s.Player),
				strconv.Itoa(s.Score),
				strconv.Itoa(s.Moves),
				strconv.Itoa(s.BestGroup),
				s.Duration.Round(time.Second).String(),
			}
		}
		return rows
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			playerName(s.Player),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func playerName(p string) string {
	if p == "" {
		return "local"
	}
	return p
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + len(m.games) - 1) % len(m.games)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Mode):
			m.mode = 1 - m.mode
			m.table = m.createTable()
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(m.rows())
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling is handled by the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = tabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(scoreTitleStyle.Render(centerText(m.mode.String(), m.width)))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, tabs...)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderStats()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panelStyle.Render(m.renderTableContent())))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderStats renders the lifetime statistics line of the current board.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	s := m.stats
	return fmt.Sprintf("Sessions: %d  Avg: %.0f  Best group: %d  Stars: %d  Boards cleared: %d",
		s.GamesCount, s.AvgScore, s.BestGroup, s.StarsCleared, s.BoardClears)
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 && len(m.sessions) == 0 {
		return emptyStyle.Render("No sessions recorded yet.\nPop some stars to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen on its own.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/popstar/internal/core"
	"github.com/vovakirdan/popstar/internal/registry"
	"github.com/vovakirdan/popstar/internal/storage"
)

// MenuItem is one board in the picker.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	HighScore   int
}

// stripColors is the decorative star row under the menu title.
var stripColors = []core.Color{
	core.ColorRed, core.ColorYellow, core.ColorGreen, core.ColorCyan, core.ColorBlue, core.ColorMagenta,
}

type menuStyles struct {
	title    lipgloss.Style
	card     lipgloss.Style
	selected lipgloss.Style
	detail   lipgloss.Style
	hint     lipgloss.Style
	stars    []lipgloss.Style
}

func newMenuStyles(r *lipgloss.Renderer) menuStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	card := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 2).
		Width(34)
	s := menuStyles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		card:     card,
		selected: card.BorderForeground(lipgloss.Color("11")),
		detail:   r.NewStyle().Foreground(lipgloss.Color("245")),
		hint:     r.NewStyle().Foreground(lipgloss.Color("241")),
	}
	for _, c := range stripColors {
		s.stars = append(s.stars, r.NewStyle().Foreground(lipgloss.Color(colorCodes[c])))
	}
	return s
}

// MenuModel is the board picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	styles         menuStyles
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered boards with their high scores.
// store and r may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, r *lipgloss.Renderer) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.HighScore = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		styles:    newMenuStyles(r),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, max(len(m.items)-1, 0))
	case MenuActionSelect:
		if len(m.items) > 0 {
			item := m.items[m.cursor]
			m.selected = &item
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var strip strings.Builder
	for i, st := range m.styles.stars {
		if i > 0 {
			strip.WriteString(" ")
		}
		strip.WriteString(st.Render("★"))
	}

	parts := []string{
		m.styles.title.Render("P O P S T A R"),
		strip.String(),
		"",
	}
	for i, item := range m.items {
		parts = append(parts, m.renderItem(item, i == m.cursor))
	}
	parts = append(parts, "", m.styles.hint.Render("↑/↓ move · enter play · tab scores · q quit"))

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m MenuModel) renderItem(item MenuItem, active bool) string {
	detail := item.Description
	if item.HighScore > 0 {
		if detail != "" {
			detail += " · "
		}
		detail += fmt.Sprintf("best %d", item.HighScore)
	}

	title := item.Title
	style := m.styles.card
	if active {
		title = "▸ " + title
		style = m.styles.selected
	}
	if detail == "" {
		return style.Render(title)
	}
	return style.Render(title + "\n" + m.styles.detail.Render(detail))
}

// Selected returns the chosen item, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the player pressed Tab.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by window resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

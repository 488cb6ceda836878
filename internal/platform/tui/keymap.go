package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/popstar/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Restart, k.Pause, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Restart, k.Pause},
		{k.Back, k.Quit, k.Screenshot},
	}
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/click", "pop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left-button press as a click.
// Returns true if the message was a click.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	frame.SetClick(msg.X, msg.Y)
	return true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

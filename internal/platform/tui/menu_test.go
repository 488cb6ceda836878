package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/popstar/internal/registry"
	"github.com/vovakirdan/popstar/internal/storage"
)

type describedStub struct{ stubGame }

func (g *describedStub) ID() string       { return "zz_menu_b" }
func (g *describedStub) Describe() string { return "4x4, 3 colors" }

func init() {
	registry.Register("zz_menu_a", func() registry.Game { return &stubGame{} })
	registry.Register("zz_menu_b", func() registry.Game { return &describedStub{} })
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func menuIndex(m MenuModel, id string) int {
	for i, item := range m.items {
		if item.GameID == id {
			return i
		}
	}
	return -1
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), nil)
	target := menuIndex(m, "zz_menu_b")
	if target < 0 {
		t.Fatal("registered board missing from menu")
	}

	for i := 0; i < target; i++ {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil || sel.GameID != "zz_menu_b" {
		t.Fatalf("Selected() = %+v, expected zz_menu_b", sel)
	}
	if sel.Description != "4x4, 3 colors" {
		t.Errorf("Description = %q, expected %q", sel.Description, "4x4, 3 colors")
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), nil)
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after Up at top, expected 0", m.cursor)
	}
	for range len(m.items) + 3 {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), nil)
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("Tab should request the scoreboard")
	}

	m = menuUpdate(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting menu should render nothing")
	}
}

func TestMenuViewShowsBoards(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()
	if _, err := store.SaveScore("zz_menu_b", 77); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}

	m := NewMenuModel(store, testConfig(), nil)
	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	view := stripANSI(m.View())

	for _, want := range []string{"P O P S T A R", "Stub", "4x4, 3 colors", "best 77"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q:\n%s", want, view)
		}
	}
}

package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/popstar/internal/storage"
)

func scoreboardUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func scoreboardAt(t *testing.T, m ScoreboardModel, id string) ScoreboardModel {
	t.Helper()
	for range m.games {
		if m.games[m.gameCursor].ID == id {
			return m
		}
		m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	t.Fatalf("board %q not in scoreboard", id)
	return m
}

func TestScoreboardModes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	_, err = store.SaveSession(storage.SessionRecord{
		GameID: "zz_menu_a", Player: "dana", Score: 120, Moves: 7, BestGroup: 9, Duration: 95 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	m := scoreboardAt(t, NewScoreboardModel(store, 100, 30), "zz_menu_a")
	if len(m.scores) != 1 || m.scores[0].Score != 120 {
		t.Fatalf("scores = %+v, expected one score of 120", m.scores)
	}
	view := stripANSI(m.View())
	for _, want := range []string{"HIGH SCORES", "dana", "120", "Best group: 9"} {
		if !strings.Contains(view, want) {
			t.Errorf("top view missing %q", want)
		}
	}

	m = scoreboardUpdate(t, m, runeKey("v"))
	if m.mode != modeRecent {
		t.Fatalf("mode = %v, expected recent", m.mode)
	}
	if len(m.sessions) != 1 || m.sessions[0].Moves != 7 {
		t.Fatalf("sessions = %+v, expected one with 7 moves", m.sessions)
	}
	view = stripANSI(m.View())
	for _, want := range []string{"RECENT SESSIONS", "dana", "1m35s"} {
		if !strings.Contains(view, want) {
			t.Errorf("recent view missing %q", want)
		}
	}

	m = scoreboardUpdate(t, m, runeKey("v"))
	if m.mode != modeTopScores {
		t.Errorf("mode = %v, expected top scores", m.mode)
	}
}

func TestScoreboardEmptyAndBack(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	m.embedded = true
	if !strings.Contains(stripANSI(m.View()), "No sessions recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Errorf("Esc: back = %v quit = %v, expected back only", m.IsGoingBack(), m.IsQuitting())
	}
}

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/popstar/internal/config"
	"github.com/vovakirdan/popstar/internal/games/popstar/board"
	"github.com/vovakirdan/popstar/internal/games/popstar/round"
	"github.com/vovakirdan/popstar/internal/storage"
)

type constSource int

func (c constSource) Intn(n int) int { return int(c) % n }

// dealGrid returns a deal function that always starts from layout.
func dealGrid(layout string, src board.ColorSource) func(round.Params) (*round.Controller, error) {
	return func(p round.Params) (*round.Controller, error) {
		return round.NewWithGrid(p, src, board.MustParse(layout))
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func fastConfig() config.PopstarConfig {
	cfg := config.DefaultPopstarConfig()
	cfg.Timing.TickRate = 240
	cfg.Timing.ResolvingHoldTicks = 2
	cfg.Timing.ClearColumnDelayTicks = 2
	cfg.Timing.FallTicks = 2
	cfg.Timing.ShrinkTicks = 2
	return cfg
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp.StatusCode
}

func TestGamesEndpoint(t *testing.T) {
	ts := httptest.NewServer(NewServer(Options{Config: config.DefaultPopstarConfig()}))
	defer ts.Close()

	var games []GameInfo
	status := getJSON(t, ts.URL+"/api/games", &games)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, games, 2)

	assert.Equal(t, GameInfo{ID: "popstar", Title: "PopStar", Rows: 10, Cols: 10}, games[0])
	assert.Equal(t, GameInfo{ID: "popstar_mini", Title: "PopStar (Mini)", Rows: 6, Cols: 6}, games[1])
}

func TestScoresEndpoint(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveSession(storage.SessionRecord{GameID: "popstar", Player: "bob", Score: 50})
	require.NoError(t, err)
	_, err = store.SaveScore("popstar", 20)
	require.NoError(t, err)

	ts := httptest.NewServer(NewServer(Options{Config: config.DefaultPopstarConfig(), Store: store}))
	defer ts.Close()

	var scores []ScoreMessage
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/scores/popstar", &scores))
	require.Len(t, scores, 2)
	assert.Equal(t, 1, scores[0].Rank)
	assert.Equal(t, "bob", scores[0].Player)
	assert.Equal(t, 50, scores[0].Score)
	assert.Equal(t, 20, scores[1].Score)

	scores = nil
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/scores/popstar?limit=1", &scores))
	assert.Len(t, scores, 1)

	scores = nil
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/scores/popstar_mini", &scores))
	assert.Empty(t, scores)

	var e ErrorMessage
	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/scores/popstar?limit=zero", &e))
	assert.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/api/scores/tetris", &e))
	assert.Contains(t, e.Error, "tetris")
}

func dial(t *testing.T, ts *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readUntil reads snapshots until cond holds.
func readUntil(t *testing.T, conn *websocket.Conn, cond func(SnapshotMessage) bool) SnapshotMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var msg SnapshotMessage
		require.NoError(t, conn.ReadJSON(&msg))
		require.Equal(t, "snapshot", msg.Type)
		if cond(msg) {
			return msg
		}
	}
}

func TestPlayOverWebsocket(t *testing.T) {
	store := openStore(t)
	srv := NewServer(Options{Config: fastConfig(), Store: store})
	srv.deal = dealGrid("AAB\nACB\nCCB", constSource(0))
	ts := httptest.NewServer(srv)
	defer ts.Close()

	conn := dial(t, ts, "/ws/popstar_mini?player=carol")

	first := readUntil(t, conn, func(SnapshotMessage) bool { return true })
	assert.Equal(t, 3, first.Rows)
	assert.Equal(t, 3, first.Cols)
	assert.Len(t, first.Cells, 9)
	assert.Equal(t, "idle", first.State)
	assert.True(t, first.HasMove)
	assert.Equal(t, -1, first.ClearColumn)

	// Malformed and unknown messages are skipped without closing the socket.
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{bad")))
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "jump"}))
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgSelect, Row: 0, Col: 0}))

	popped := readUntil(t, conn, func(m SnapshotMessage) bool { return m.ScoreDelta > 0 })
	assert.Equal(t, 9, popped.Score)
	assert.Equal(t, 3, popped.Explosions)
	assert.Equal(t, "resolving", popped.State)
	assert.Equal(t, 1, popped.Stats.Moves)
	assert.False(t, popped.Cells[0].Alive)

	readUntil(t, conn, func(m SnapshotMessage) bool { return m.State == "idle" && m.Tick > popped.Tick })

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgReset}))
	reset := readUntil(t, conn, func(m SnapshotMessage) bool { return m.Score == 0 })
	assert.Equal(t, 0, reset.Stats.Moves)

	sessions, err := store.RecentSessions("popstar_mini", 5)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "carol", sessions[0].Player)
	assert.Equal(t, 9, sessions[0].Score)
	assert.Equal(t, 3, sessions[0].BestGroup)
}

func TestPlayRejectsWhileResolving(t *testing.T) {
	cfg := fastConfig()
	cfg.Timing.ResolvingHoldTicks = 1000
	srv := NewServer(Options{Config: cfg})
	srv.deal = dealGrid("AAB\nACB\nCCB", constSource(0))
	ts := httptest.NewServer(srv)
	defer ts.Close()

	conn := dial(t, ts, "/ws/popstar")
	readUntil(t, conn, func(SnapshotMessage) bool { return true })

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgSelect, Row: 0, Col: 0}))
	readUntil(t, conn, func(m SnapshotMessage) bool { return m.State == "resolving" })

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgSelect, Row: 2, Col: 2}))
	rejected := readUntil(t, conn, func(m SnapshotMessage) bool { return m.Rejected != "" })
	assert.Contains(t, rejected.Rejected, round.ErrBusy.Error())
	assert.Equal(t, 9, rejected.Score)
}

func TestPlayUnknownGame(t *testing.T) {
	ts := httptest.NewServer(NewServer(Options{Config: config.DefaultPopstarConfig()}))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/tetris"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInboxKeepsLatest(t *testing.T) {
	var b inbox
	assert.Equal(t, round.InputNone, b.take().Kind)

	b.put(round.Select(1, 2))
	b.put(round.Reset())
	assert.Equal(t, round.Reset(), b.take())
	assert.Equal(t, round.InputNone, b.take().Kind)
}

func TestClientMessageInput(t *testing.T) {
	in, err := ClientMessage{Type: MsgSelect, Row: 3, Col: 4}.Input()
	require.NoError(t, err)
	assert.Equal(t, round.Select(3, 4), in)

	in, err = ClientMessage{Type: MsgReset}.Input()
	require.NoError(t, err)
	assert.Equal(t, round.InputReset, in.Kind)

	_, err = ClientMessage{Type: "explode"}.Input()
	assert.Error(t, err)
}

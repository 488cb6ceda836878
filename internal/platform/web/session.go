package web

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/popstar/internal/games/popstar/round"
	"github.com/vovakirdan/popstar/internal/storage"
)

const (
	writeWait      = 2 * time.Second
	maxMessageSize = 512
)

// inbox holds the latest input received since the last tick.
type inbox struct {
	mu      sync.Mutex
	pending round.Input
}

func (b *inbox) put(in round.Input) {
	b.mu.Lock()
	b.pending = in
	b.mu.Unlock()
}

func (b *inbox) take() round.Input {
	b.mu.Lock()
	defer b.mu.Unlock()
	in := b.pending
	b.pending = round.Input{}
	return in
}

// session plays one board over one websocket connection. The tick loop is
// the only writer to the connection; a reader goroutine fills the inbox.
type session struct {
	gameID   string
	player   string
	ctrl     *round.Controller
	conn     *websocket.Conn
	tickRate int
	store    *storage.Store
	logger   *log.Logger

	in      inbox
	started time.Time
}

// run drives the board until the client disconnects or ctx is done.
func (s *session) run(ctx context.Context) error {
	s.started = time.Now()
	defer s.save()

	readErr := make(chan error, 1)
	go func() { readErr <- s.readLoop() }()

	if err := s.push(round.TickResult{}); err != nil {
		return err
	}

	ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.close(websocket.CloseGoingAway, "server shutting down")
			return ctx.Err()

		case err := <-readErr:
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err

		case <-ticker.C:
			if err := s.tick(); err != nil {
				return err
			}
		}
	}
}

// tick steps the controller with the latest input and pushes a snapshot
// when anything visible changed.
func (s *session) tick() error {
	in := s.in.take()
	if in.Kind == round.InputReset {
		s.save()
	}

	res := s.ctrl.Step(in)
	if res.Rejected != nil {
		s.logger.Debug("selection rejected", "game", s.gameID, "player", s.player, "reason", res.Rejected)
	}

	if in.Kind == round.InputNone && len(res.Removals) == 0 && !res.Settled && !animating(s.ctrl.Snapshot()) {
		return nil
	}
	return s.push(res)
}

func (s *session) push(res round.TickResult) error {
	msg := newSnapshotMessage(s.ctrl.Snapshot(), res)
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(msg)
}

// readLoop decodes client messages into the inbox until the connection fails.
func (s *session) readLoop() error {
	s.conn.SetReadLimit(maxMessageSize)
	for {
		var msg ClientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if !isDecodeError(err) {
				return err
			}
			// The rest of a malformed frame is discarded by the next read
			s.logger.Debug("bad message", "player", s.player, "error", err)
			continue
		}

		in, err := msg.Input()
		if err != nil {
			s.logger.Debug("bad message", "player", s.player, "error", err)
			continue
		}
		s.in.put(in)
	}
}

func (s *session) close(code int, text string) {
	deadline := time.Now().Add(writeWait)
	//nolint:errcheck // Best-effort close frame
	s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), deadline)
}

// save records the board that just ended when it scored anything.
func (s *session) save() {
	score := s.ctrl.Score()
	if s.store == nil || score <= 0 {
		return
	}

	stats := s.ctrl.Stats()
	rec := storage.SessionRecord{
		GameID:      s.gameID,
		Player:      s.player,
		Score:       score,
		Moves:       stats.Moves,
		BestGroup:   stats.BestGroup,
		BoardClears: stats.BoardClears,
		Cleared:     stats.Cleared,
		Duration:    time.Since(s.started),
	}
	if _, err := s.store.SaveSession(rec); err != nil {
		s.logger.Warn("could not save session", "game", s.gameID, "error", err)
		return
	}
	s.logger.Info("session saved", "game", s.gameID, "player", s.player, "score", score)
	s.started = time.Now()
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

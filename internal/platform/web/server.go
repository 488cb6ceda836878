// Package web serves PopStar boards to browsers: a small JSON API for games
// and scores, and a websocket per player that streams board snapshots.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"

	"github.com/vovakirdan/popstar/internal/config"
	"github.com/vovakirdan/popstar/internal/games/popstar"
	"github.com/vovakirdan/popstar/internal/games/popstar/round"
	"github.com/vovakirdan/popstar/internal/registry"
	"github.com/vovakirdan/popstar/internal/storage"
)

const defaultScoreLimit = 10

// variants maps registry IDs to the board they play.
var variants = map[string]popstar.Variant{
	"popstar":      popstar.VariantClassic,
	"popstar_mini": popstar.VariantMini,
}

// Options configure a Server.
type Options struct {
	Address string
	Config  config.PopstarConfig
	Store   *storage.Store // Nil disables scores
	Logger  *log.Logger    // Nil logs to stderr
	Seed    int64          // 0 seeds each board from the clock
}

// Server routes the HTTP API and websocket play.
type Server struct {
	opts     Options
	router   *way.Router
	upgrader websocket.Upgrader
	logger   *log.Logger

	// deal creates the controller of a new connection.
	deal func(p round.Params) (*round.Controller, error)
}

// NewServer creates a server and registers its routes.
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "popstar-web"})
	}

	s := &Server{
		opts:   opts,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	s.deal = s.dealRandom
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", "/api/games", s.handleGames)
	s.router.HandleFunc("GET", "/api/scores/:game", s.handleScores)
	s.router.HandleFunc("GET", "/ws/:game", s.handlePlay)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Address,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.opts.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleGames(w http.ResponseWriter, _ *http.Request) {
	games := make([]GameInfo, 0, len(variants))
	for _, g := range registry.List() {
		v, ok := variants[g.ID]
		if !ok {
			continue
		}
		p := popstar.ParamsFromConfig(s.opts.Config, v)
		games = append(games, GameInfo{ID: g.ID, Title: g.Title, Rows: p.Rows, Cols: p.Cols})
	}
	writeJSON(w, http.StatusOK, games)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	gameID := way.Param(r.Context(), "game")
	if _, ok := variants[gameID]; !ok {
		writeJSON(w, http.StatusNotFound, ErrorMessage{Error: "unknown game " + strconv.Quote(gameID)})
		return
	}

	limit := defaultScoreLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, ErrorMessage{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	scores := []ScoreMessage{}
	if s.opts.Store != nil {
		entries, err := s.opts.Store.TopScores(gameID, limit)
		if err != nil {
			s.logger.Error("could not load scores", "game", gameID, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorMessage{Error: "could not load scores"})
			return
		}
		for i, e := range entries {
			scores = append(scores, ScoreMessage{
				Rank:      i + 1,
				Player:    e.Player,
				Score:     e.Score,
				CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
	}
	writeJSON(w, http.StatusOK, scores)
}

// handlePlay upgrades to a websocket and plays one board until the client
// leaves.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	gameID := way.Param(r.Context(), "game")
	v, ok := variants[gameID]
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorMessage{Error: "unknown game " + strconv.Quote(gameID)})
		return
	}

	ctrl, err := s.deal(popstar.ParamsFromConfig(s.opts.Config, v))
	if err != nil {
		s.logger.Error("could not deal board", "game", gameID, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorMessage{Error: "invalid board configuration"})
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	player := r.URL.Query().Get("player")
	if player == "" {
		player = r.RemoteAddr
	}

	tickRate := s.opts.Config.Timing.TickRate
	if tickRate <= 0 {
		tickRate = config.DefaultPopstarConfig().Timing.TickRate
	}

	sess := &session{
		gameID:   gameID,
		player:   player,
		ctrl:     ctrl,
		conn:     conn,
		tickRate: tickRate,
		store:    s.opts.Store,
		logger:   s.logger,
	}

	s.logger.Info("player connected", "game", gameID, "player", player)
	err = sess.run(r.Context())
	s.logger.Info("player left", "game", gameID, "player", player, "score", ctrl.Score())
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Debug("session ended with error", "player", player, "error", err)
	}
}

func (s *Server) dealRandom(p round.Params) (*round.Controller, error) {
	seed := s.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return round.New(p, rand.New(rand.NewSource(seed)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // The client may be gone
	json.NewEncoder(w).Encode(v)
}

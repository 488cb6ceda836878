package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/popstar/internal/core"
	"github.com/vovakirdan/popstar/internal/storage"
)

const sshShutdownTimeout = 10 * time.Second

// SSHServerConfig configures the SSH front end.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23234"
	HostKeyPath string        // Empty uses ~/.popstar/host_key, generated on first start
	DBPath      string        // Shared scores database
	TickRate    int           // Simulation rate of every session
	IdleTimeout time.Duration // Disconnect idle clients after this long
}

// DefaultSSHServerConfig returns the config used by `popstar serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.popstar/scores.db",
		TickRate:    core.DefaultTickRate,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer runs one board-picker session per SSH connection. All players
// share one scores database.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer creates the server. A nil logger logs to stderr. A database
// that cannot be opened disables scores instead of failing.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "popstar-ssh"})
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}
	if srv.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("scores disabled", "error", err)
		srv.store = nil
	}

	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return srv, nil
}

func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".popstar", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler builds the session model for one connection. Remote players
// get no sound and their own lipgloss renderer so colors match their
// terminal.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	user := sess.User()

	model := NewSessionModel(s.store, core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}, GameOptions{
		Player:   user,
		Logger:   s.logger.With("user", user),
		Renderer: bubbletea.MakeRenderer(sess),
	})
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		started := time.Now()
		n := s.active.Add(1)
		s.logger.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr().String(), "active", n)

		next(sess)

		n = s.active.Add(-1)
		s.logger.Info("session ended",
			"user", sess.User(),
			"duration", time.Since(started).Round(time.Second),
			"active", n,
		)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.active.Load())
	return s.Shutdown()
}

// Shutdown stops accepting connections, waits for sessions to end, and
// closes the scores database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), sshShutdownTimeout)
	defer cancel()
	defer s.closeStore()

	if err := s.server.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// ActiveSessions returns the number of connected players.
func (s *SSHServer) ActiveSessions() int {
	return int(s.active.Load())
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

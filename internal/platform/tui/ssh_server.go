package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/okarlsen/skyshot/internal/config"
	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/shooter"
	"github.com/okarlsen/skyshot/internal/storage"
)

// SSHServerConfig holds the remote-play server settings.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g. ":23234").
	Address string

	// HostKeyPath is the host key file. If empty, a key is generated at
	// ~/.skyshot/host_key.
	HostKeyPath string

	// DBPath is the scores database path.
	DBPath string

	// IdleTimeout closes idle connections.
	IdleTimeout time.Duration

	// Game holds the tuning for the sessions' games.
	Game config.Config
}

// DefaultSSHServerConfig returns the default server settings.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.skyshot/scores.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.Default(),
	}
}

// SSHServer hosts the game over SSH via Wish. Each session gets its own
// backend and engine loop; the final score is saved when the loop ends.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyshot-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Sessions run without persistence
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".skyshot", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler starts a game loop for the session and returns the model
// displaying it.
func (s *SSHServer) teaHandler(session ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := session.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", session.User())
		return nil, nil
	}

	cfg := s.config.Game
	backend := NewBackend(pty.Window.Width, pty.Window.Height)
	game := shooter.New(cfg, time.Now().UnixNano())
	loop := engine.New(backend, engine.Config{
		Width:  cfg.Screen.Width,
		Height: cfg.Screen.Height,
		FPS:    cfg.Screen.FPS,
	})

	user := session.User()
	go func() {
		if err := loop.Run(game); err != nil {
			s.logger.Error("game loop failed", "user", user, "error", err)
			return
		}
		s.saveScore(user, game)
	}()

	return NewModel(backend), []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) saveScore(user string, game *shooter.BalloonShooter) {
	score := game.Score()
	if s.store == nil || score == 0 {
		return
	}
	if _, err := s.store.SaveScore(shooter.GameID, score, len(game.Players())); err != nil {
		s.logger.Warn("could not save score", "user", user, "error", err)
		return
	}
	s.logger.Info("score saved", "user", user, "score", score)
}

// loggingMiddleware logs session lifecycle events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(session ssh.Session) {
		s.logger.Info("session started",
			"user", session.User(),
			"remote", session.RemoteAddr().String(),
		)
		next(session)
		s.logger.Info("session ended",
			"user", session.User(),
			"remote", session.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the server and blocks until an interrupt.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown stops the server gracefully.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

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
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/flouhou/internal/config"
	"github.com/vovakirdan/flouhou/internal/host"
)

// shutdownTimeout bounds how long Shutdown waits for open connections.
const shutdownTimeout = 10 * time.Second

// SSHServer serves flouhou over SSH. Every connection plays its own game.
type SSHServer struct {
	cfg    config.ServerConfig
	deps   Deps
	server *ssh.Server
	logger *log.Logger
	active atomic.Int32
}

// NewSSHServer creates a new SSH server. The deps are shared by every
// connection; the player name comes from the SSH user.
func NewSSHServer(deps Deps) (*SSHServer, error) {
	deps = deps.withDefaults()
	cfg := deps.Config.Server

	srv := &SSHServer{
		cfg:    cfg,
		deps:   deps,
		logger: deps.Logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKey
	if hostKeyPath == "" {
		hostKeyPath = filepath.Join(config.Dir(), "host_key")
	}

	// Ensure host key directory exists
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("ssh: cannot create host key directory: %w", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.limitMiddleware,
			srv.loggingMiddleware,
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	if _, _, ok := sshSession.Pty(); !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		wish.Fatalln(sshSession, "flouhou needs an interactive terminal, try ssh -t")
		return nil, nil
	}

	deps := s.deps
	deps.Player = sshSession.User()
	deps.Renderer = bubbletea.MakeRenderer(sshSession)
	deps.Logger = s.logger.With("user", sshSession.User())
	deps.Sessions = host.NewRegistry()

	// A dropped connection ends the game as a quit
	go func() {
		<-sshSession.Context().Done()
		if n := deps.Sessions.CloseAll(); n > 0 {
			deps.Logger.Debug("closed games of dropped connection", "games", n)
		}
	}()

	return NewAppModel(deps), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// limitMiddleware rejects connections beyond the configured maximum.
func (s *SSHServer) limitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		n := s.active.Add(1)
		defer s.active.Add(-1)

		if s.cfg.MaxSessions > 0 && int(n) > s.cfg.MaxSessions {
			s.logger.Warn("session limit reached",
				"user", sshSession.User(),
				"limit", s.cfg.MaxSessions,
			)
			wish.Fatalln(sshSession, "server is full, try again later")
			return
		}
		next(sshSession)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until ctx is cancelled,
// then shuts the server down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.cfg.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("ssh: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...", "active", s.Active())
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Active returns the number of open connections.
func (s *SSHServer) Active() int {
	return int(s.active.Load())
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}

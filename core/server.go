package core

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/gliderlabs/ssh"
	"github.com/juju/ratelimit"
	"github.com/spf13/afero"
	gossh "golang.org/x/crypto/ssh"

	"github.com/loom-sh/loom/core/config"
	"github.com/loom-sh/loom/core/handlers"
	"github.com/loom-sh/loom/core/logger"
	"github.com/loom-sh/loom/core/session"
)

// Server exposes the REPL over SSH. Remote sessions are sandboxed: they get
// an in-memory scratch filesystem and external launches are disabled.
type Server struct {
	cfg       *config.Config
	events    *logger.Recorder
	sshServer *ssh.Server

	// authBucket throttles password attempts across all connections.
	authBucket *ratelimit.Bucket
	nextID     uint64
}

// NewServer builds a server from the configuration; the host key written by
// Initialize must exist.
func NewServer(cfg *config.Config, events *logger.Recorder) (*Server, error) {
	keyPem, err := cfg.HostKeyPEM()
	if err != nil {
		return nil, fmt.Errorf("loading host key: %w", err)
	}
	signer, err := gossh.ParsePrivateKey(keyPem)
	if err != nil {
		return nil, fmt.Errorf("parsing host key: %w", err)
	}

	if events == nil {
		events = logger.Nop()
	}

	srv := &Server{
		cfg:        cfg,
		events:     events,
		authBucket: ratelimit.NewBucketWithRate(1, 5),
	}

	srv.sshServer = &ssh.Server{
		Addr: fmt.Sprintf(":%d", cfg.SSH.Port),
		Handler: func(s ssh.Session) {
			srv.handleSession(s)
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			if srv.authBucket.TakeAvailable(1) == 0 {
				return false
			}
			for _, allowed := range cfg.Passwords(ctx.User()) {
				if subtle.ConstantTimeCompare([]byte(password), []byte(allowed)) == 1 {
					return true
				}
			}
			return false
		},
	}
	srv.sshServer.AddHostKey(signer)

	return srv, nil
}

func (srv *Server) handleSession(s ssh.Session) {
	id := fmt.Sprintf("ssh-%d", atomic.AddUint64(&srv.nextID, 1))
	events := srv.events.NewSession(id)
	events.Record(logger.KindSessionStart, "", fmt.Sprintf("user=%s remote=%s", s.User(), s.RemoteAddr()))

	pty, winch, isPty := s.Pty()
	width := pty.Window.Width
	go func() {
		for window := range winch {
			width = window.Width
		}
	}()

	sess := session.New(afero.NewMemMapFs(), handlers.Resolver, srv.cfg)
	sess.SetIO(s, s, s.Stderr())
	sess.SetLauncher(&session.DisabledLauncher{})

	shell, err := NewShell(sess, Terminal{
		IsPTY: isPty,
		Width: func() int { return width },
	}, events)
	if err != nil {
		log.Printf("session %s: %v", id, err)
		s.Exit(1)
		return
	}

	if err := shell.Run(); err != nil {
		log.Printf("session %s: %v", id, err)
		s.Exit(1)
		return
	}
	s.Exit(0)
}

// ListenAndServe blocks serving SSH connections.
func (srv *Server) ListenAndServe() error {
	return srv.sshServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (srv *Server) Shutdown(ctx context.Context) error {
	return srv.sshServer.Shutdown(ctx)
}

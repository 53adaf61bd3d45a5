package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/circles/internal/config"
	"github.com/tomz197/circles/internal/geom"
	circleslog "github.com/tomz197/circles/internal/logging"
	"github.com/tomz197/circles/internal/loop"
)

func main() {
	host := config.GetEnv(config.EnvSSHHost, config.DefaultSSHHost)
	port := config.GetEnv(config.EnvSSHPort, config.DefaultSSHPort)
	hostKeyPath := config.GetEnv(config.EnvSSHHostKey, config.DefaultSSHHostKey)
	level := config.GetEnv(config.EnvLogLevel, config.DefaultLogLevel)

	logger, err := circleslog.New(os.Stderr, "circles-ssh", level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "circles-ssh: %v\n", err)
		os.Exit(2)
	}

	solver := geom.Solver{Epsilon: config.Epsilon()}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "epsilon", solver.Epsilon)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithIdleTimeout(config.SessionIdleTimeout),
		wish.WithMiddleware(
			sessionMiddleware(solver, logger),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", s.Addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// sessionMiddleware runs an interactive intersection session per SSH connection.
func sessionMiddleware(solver geom.Solver, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessLogger := logger.With("user", sess.User())
			sessLogger.Info("New session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

			session := loop.NewSession(sess, loop.Options{Solver: solver, Logger: sessLogger})
			_ = session.SetSize(pty.Window.Width, pty.Window.Height)

			// Forward window size changes to the line editor
			go func() {
				for win := range winCh {
					_ = session.SetSize(win.Width, win.Height)
				}
			}()

			if err := session.Run(); err != nil {
				sessLogger.Error("Session error", "err", err)
			}

			sessLogger.Info("Session ended", "queries", session.State().Queries)
			next(sess)
		}
	}
}

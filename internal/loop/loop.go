// Package loop runs line-oriented command sessions against the circle solver.
package loop

import (
	"bufio"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/tomz197/circles/internal/config"
	"github.com/tomz197/circles/internal/geom"
	"golang.org/x/term"
)

const greeting = "circle intersections, type help for commands\n"

// Options configures a session.
type Options struct {
	Solver geom.Solver
	Prompt string      // Defaults to config.Prompt
	Logger *log.Logger // Optional; receives one debug entry per line

	// Terminal size for line wrapping; ignored unless both are positive.
	Width, Height int
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// Session is an interactive session on a terminal. Line editing and
// history come from golang.org/x/term.
type Session struct {
	state  *State
	term   *term.Terminal
	logger *log.Logger
}

// NewSession creates a session reading keystrokes from rw and echoing to it.
// rw should already be in raw mode when it is a local terminal.
func NewSession(rw io.ReadWriter, opts Options) *Session {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = config.Prompt
	}

	s := &Session{
		state:  NewState(opts.Solver),
		term:   term.NewTerminal(rw, prompt),
		logger: opts.logger(),
	}
	if opts.Width > 0 && opts.Height > 0 {
		_ = s.term.SetSize(opts.Width, opts.Height)
	}
	return s
}

// SetSize updates the terminal dimensions used for line wrapping.
func (s *Session) SetSize(width, height int) error {
	return s.term.SetSize(width, height)
}

// State returns the session state.
func (s *Session) State() *State {
	return s.state
}

// Run reads and evaluates lines until quit, Ctrl-C/Ctrl-D or the end of input.
func (s *Session) Run() error {
	if _, err := io.WriteString(s.term, greeting); err != nil {
		return err
	}

	for s.state.Running {
		line, err := s.term.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		out := s.state.Exec(line)
		s.logger.Debug("command", "line", line, "result", out)

		if _, err := io.WriteString(s.term, out); err != nil {
			return err
		}
	}

	return nil
}

// Run starts an interactive session on rw and blocks until it ends.
func Run(rw io.ReadWriter, opts Options) error {
	return NewSession(rw, opts).Run()
}

// RunScript evaluates newline separated commands from r without prompting or
// echoing, writing results to w. It stops at a quit command or the end of input.
func RunScript(r io.Reader, w io.Writer, opts Options) error {
	logger := opts.logger()
	state := NewState(opts.Solver)
	scanner := bufio.NewScanner(r)

	for state.Running && scanner.Scan() {
		line := scanner.Text()
		out := state.Exec(line)
		logger.Debug("command", "line", line, "result", out)

		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}

	return scanner.Err()
}

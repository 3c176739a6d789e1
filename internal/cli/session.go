package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/torusmaze/disjointset"
	"github.com/katalvlaran/torusmaze/maze"
)

// Session errors. Each is wrapped with the failing command's name.
var (
	ErrUnknownCommand  = errors.New("cli: unknown command")
	ErrUsage           = errors.New("cli: wrong number of arguments")
	ErrInvalidArgument = errors.New("cli: invalid argument")
	ErrNoSession       = errors.New("cli: no active universe (use make or maze first)")
	ErrNoMaze          = errors.New("cli: no maze built (use maze first)")
)

// universe is what session commands need from a union-find: either a bare
// DisjointSet or a maze delegating to its own.
type universe interface {
	Find(x int) (int, error)
	Union(x, y int) (bool, error)
	Remaining() int
	Stats() disjointset.Stats
	Sets() []int
}

var (
	_ universe = (*disjointset.DisjointSet)(nil)
	_ universe = (*maze.Maze)(nil)
)

// Session interprets commands against one current universe at a time.
// A make or maze command replaces the current universe.
type Session struct {
	ID string

	out    io.Writer
	logger *log.Logger
	strict bool
	prompt bool

	seed     int64
	strategy maze.Strategy

	current universe
	maze    *maze.Maze
}

// NewSession creates a session writing command output to out.
// logger receives diagnostics only; nothing written to out depends on it.
func NewSession(out io.Writer, logger *log.Logger, cfg Config) (*Session, error) {
	strategy, err := maze.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()

	return &Session{
		ID:       id,
		out:      out,
		logger:   logger.With("session", id),
		strict:   cfg.Strict,
		prompt:   cfg.Prompt,
		seed:     cfg.Seed,
		strategy: strategy,
	}, nil
}

// Run reads commands from r until EOF, quit, or ctx cancellation.
//
// A failing command prints "error: <cause>" and the session moves on, unless
// the session is strict, in which case Run stops and returns that error.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	s.logger.Debug("session started", "strict", s.strict, "strategy", s.strategy)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt {
			fmt.Fprint(s.out, promptStyle.Render(promptText))
		}
		if !scanner.Scan() {
			break
		}
		lineNo++

		quit, err := s.Exec(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			s.logger.Warn("command failed", "line", lineNo, "err", err)
			if s.strict {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
		if quit {
			s.logger.Debug("session ended by quit", "lines", lineNo)
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	s.logger.Debug("session ended at EOF", "lines", lineNo)

	return nil
}

// Exec runs a single command line. Blank lines and lines starting with #
// are ignored. quit reports whether the line ended the session.
func (s *Session) Exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	cmd, ok := commands[name]
	if !ok {
		return false, fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
	if len(args) != len(cmd.args) {
		return false, fmt.Errorf("%s: %w (usage: %s)", name, ErrUsage, cmd.usage(name))
	}
	if cmd.quit {
		return true, nil
	}
	if err := cmd.run(s, args); err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	s.logger.Debug("command done", "cmd", name, "args", args)

	return false, nil
}

// active returns the current universe or ErrNoSession.
func (s *Session) active() (universe, error) {
	if s.current == nil {
		return nil, ErrNoSession
	}
	return s.current, nil
}

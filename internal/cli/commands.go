package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/torusmaze/disjointset"
	"github.com/katalvlaran/torusmaze/maze"
)

// command describes one session command.
type command struct {
	args    []string
	summary string
	quit    bool
	run     func(s *Session, args []string) error
}

// commands is filled in init to break the help → commands reference cycle.
var commands map[string]command

func init() {
	commands = map[string]command{
		"make":      {args: []string{"n"}, summary: "start a union-find universe of n singletons", run: cmdMake},
		"union":     {args: []string{"x", "y"}, summary: "merge the sets of x and y", run: cmdUnion},
		"find":      {args: []string{"x"}, summary: "print the root of x", run: cmdFind},
		"remaining": {summary: "print the number of sets", run: cmdRemaining},
		"sets":      {summary: "print the raw parent/size array", run: cmdSets},
		"stats":     {summary: "print set count and mean find path length", run: cmdStats},
		"maze":      {args: []string{"p", "w"}, summary: "build a 2^p x 2^p torus maze with weights in [1,w]", run: cmdMaze},
		"rows":      {summary: "print the row report of the current maze", run: cmdRows},
		"raw":       {summary: "print the raw weight matrix of the current maze", run: cmdRaw},
		"seed":      {args: []string{"s"}, summary: "seed later maze builds (0 = time based)", run: cmdSeed},
		"strategy":  {args: []string{"name"}, summary: "rejection or kruskal for later maze builds", run: cmdStrategy},
		"help":      {summary: "list commands", run: cmdHelp},
		"quit":      {summary: "end the session", quit: true},
		"exit":      {summary: "end the session", quit: true},
	}
}

// usage renders name followed by the command's argument names.
func (c command) usage(name string) string {
	return strings.TrimSpace(name + " " + strings.Join(c.args, " "))
}

// newSeed returns a time-based seed for sessions configured with seed 0.
func newSeed() int64 {
	return time.Now().UnixNano()
}

// ints parses every argument as a decimal integer.
func ints(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, a)
		}
		out[i] = v
	}
	return out, nil
}

func cmdMake(s *Session, args []string) error {
	v, err := ints(args)
	if err != nil {
		return err
	}
	d, err := disjointset.New(v[0])
	if err != nil {
		return err
	}
	s.current, s.maze = d, nil
	s.logger.Info("universe created", "elements", v[0])
	return nil
}

func cmdUnion(s *Session, args []string) error {
	u, err := s.active()
	if err != nil {
		return err
	}
	v, err := ints(args)
	if err != nil {
		return err
	}
	_, err = u.Union(v[0], v[1])
	return err
}

func cmdFind(s *Session, args []string) error {
	u, err := s.active()
	if err != nil {
		return err
	}
	v, err := ints(args)
	if err != nil {
		return err
	}
	root, err := u.Find(v[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, root)
	return err
}

func cmdRemaining(s *Session, _ []string) error {
	u, err := s.active()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, u.Remaining())
	return err
}

func cmdSets(s *Session, _ []string) error {
	u, err := s.active()
	if err != nil {
		return err
	}
	var sb strings.Builder
	for _, v := range u.Sets() {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(' ')
	}
	_, err = fmt.Fprintln(s.out, sb.String())
	return err
}

func cmdStats(s *Session, _ []string) error {
	u, err := s.active()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(s.out, u.Stats())
	return err
}

func cmdMaze(s *Session, args []string) error {
	v, err := ints(args)
	if err != nil {
		return err
	}
	seed := s.seed
	if seed == 0 {
		seed = newSeed()
	}
	m, err := maze.New(v[0], v[1], maze.WithSeed(seed), maze.WithStrategy(s.strategy))
	if err != nil {
		return err
	}
	s.current, s.maze = m, m

	g := m.Grid()
	s.logger.Info("maze built",
		"side", g.Side, "nodes", g.Nodes, "strategy", m.Strategy(),
		"seed", seed, "attempts", m.Attempts())
	_, err = fmt.Fprintf(s.out, "maze %dx%d: %d nodes, %d edges\n", g.Side, g.Side, g.Nodes, m.EdgeCount())
	return err
}

func cmdRows(s *Session, _ []string) error {
	if s.maze == nil {
		return ErrNoMaze
	}
	return s.maze.WriteRowReport(s.out)
}

func cmdRaw(s *Session, _ []string) error {
	if s.maze == nil {
		return ErrNoMaze
	}
	return s.maze.WriteRawMatrix(s.out)
}

func cmdSeed(s *Session, args []string) error {
	seed, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, args[0])
	}
	s.seed = seed
	return nil
}

func cmdStrategy(s *Session, args []string) error {
	strategy, err := maze.ParseStrategy(args[0])
	if err != nil {
		return err
	}
	s.strategy = strategy
	return nil
}

func cmdHelp(s *Session, _ []string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(s.out, headerStyle.Render("COMMANDS"))
	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(s.out, "  %-16s %s\n", cmd.usage(name), usageStyle.Render(cmd.summary))
	}
	return nil
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/torusmaze/maze"
)

// appName is the binary name used in usage lines.
const appName = "torusmaze"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// flagValues holds the raw values bound to persistent flags.
type flagValues struct {
	configFile string
	verbose    bool
	seed       int64
	strategy   string
	strict     bool
	prompt     bool
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	In     io.Reader
	Out    io.Writer

	flags  flagValues
	config Config
}

// New creates a CLI reading commands from in, writing results to out and
// logs to logOut.
func New(in io.Reader, out, logOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logOut, level),
		In:     in,
		Out:    out,
		config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Config returns the configuration resolved for the running command.
func (c *CLI) Config() Config {
	return c.config
}

// RootCommand creates the root cobra command with all subcommands registered.
// Without a subcommand it runs an interactive session, like repl.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Torusmaze builds random mazes on a torus with union-find",
		Long: `Torusmaze is a line-oriented interpreter for a union-find universe and for
random perfect mazes built on a wrap-around grid.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: c.preRun,
		RunE:              c.runRepl,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configFile, "config", "", "TOML config file")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.Int64Var(&c.flags.seed, "seed", 0, "seed for maze builds (0 = time based)")
	pf.StringVar(&c.flags.strategy, "strategy", maze.StrategyRejection.String(), "maze strategy: rejection or kruskal")
	pf.BoolVar(&c.flags.strict, "strict", false, "stop the session at the first failing command")
	pf.BoolVar(&c.flags.prompt, "prompt", false, "print a prompt before each command")

	root.AddCommand(c.replCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.mazeCommand())

	return root
}

// preRun loads the config file, applies explicitly set flags on top, sets the
// log level and attaches the logger to the command context.
func (c *CLI) preRun(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(c.flags.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = c.flags.seed
	}
	if flags.Changed("strategy") {
		cfg.Strategy = c.flags.strategy
	}
	if flags.Changed("strict") {
		cfg.Strict = c.flags.strict
	}
	if flags.Changed("prompt") {
		cfg.Prompt = c.flags.prompt
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := cfg.Level()
	if c.flags.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	c.config = cfg
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	c.Logger.Debug("config resolved",
		"file", c.flags.configFile, "seed", cfg.Seed, "strategy", cfg.Strategy, "strict", cfg.Strict)
	return nil
}

// runSession runs a session over r.
func (c *CLI) runSession(cmd *cobra.Command, r io.Reader) error {
	logger := loggerFromContext(cmd.Context())
	s, err := NewSession(c.Out, logger, c.config)
	if err != nil {
		return err
	}
	return s.Run(cmd.Context(), r)
}

func (c *CLI) runRepl(cmd *cobra.Command, _ []string) error {
	return c.runSession(cmd, c.In)
}

func (c *CLI) replCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run an interactive session on stdin",
		Args:  cobra.NoArgs,
		RunE:  c.runRepl,
	}
}

func (c *CLI) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Run a script of session commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return c.runSession(cmd, f)
		},
	}
}

func (c *CLI) mazeCommand() *cobra.Command {
	var (
		power     int
		maxWeight int
		raw       bool
	)
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Build one maze and print its row report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())
			strategy, err := maze.ParseStrategy(c.config.Strategy)
			if err != nil {
				return err
			}
			seed := c.config.Seed
			if seed == 0 {
				seed = newSeed()
			}

			m, err := maze.New(power, maxWeight, maze.WithSeed(seed), maze.WithStrategy(strategy))
			if err != nil {
				return fmt.Errorf("maze: %w", err)
			}
			logger.Info("maze built",
				"side", m.Grid().Side, "seed", seed, "attempts", m.Attempts(), "strategy", m.Strategy())

			if raw {
				return m.WriteRawMatrix(c.Out)
			}
			return m.WriteRowReport(c.Out)
		},
	}
	cmd.Flags().IntVarP(&power, "power", "p", 2, "grid side is 2^power (1..6)")
	cmd.Flags().IntVarP(&maxWeight, "max-weight", "w", 10, "passage weights are drawn from [1, max-weight]")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw weight matrix instead of the row report")

	return cmd
}

// Package cli implements the torusmaze command-line interface: a line-oriented
// command interpreter over a union-find universe or a torus maze.
//
// # Commands
//
// The cobra root command starts an interactive session on stdin. Subcommands:
//   - repl: same as the root command
//   - run FILE: execute a script of session commands
//   - maze: build one maze and print its row report (or --raw matrix)
//
// Session commands (one per line, # starts a comment):
//
//	make n | union x y | find x | remaining | sets | stats
//	maze p w | rows | raw | seed s | strategy name | help | quit
//
// # Logging
//
// Logs go to stderr through charmbracelet/log; --verbose switches to debug
// level. The logger travels in the command context, and each session tags its
// records with a session id.
//
// # Configuration
//
// An optional TOML file (--config) provides defaults for seed, strategy,
// prompt, strict and log_level. Flags set on the command line win.
package cli

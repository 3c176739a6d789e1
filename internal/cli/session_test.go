package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/torusmaze/disjointset"
)

// runScript runs script in a fresh session and returns everything written to out.
func runScript(t *testing.T, cfg Config, script string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	s, err := NewSession(&out, log.New(io.Discard), cfg)
	require.NoError(t, err)
	err = s.Run(context.Background(), strings.NewReader(script))
	return out.String(), err
}

// TestSession_UnionFindTranscript replays the reference union-find session,
// including out-of-range errors and the stats report.
func TestSession_UnionFindTranscript(t *testing.T) {
	script := `# reference scenario
make 10
sets
union 7 6
union 3 1
find 1
remaining
union 0 2
remaining
union 0 2
remaining
sets
union 10 1
find -1
stats
`
	out, err := runScript(t, DefaultConfig(), script)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "unionfind_session", []byte(out))
}

// TestSession_MazeTranscript covers maze validation, delegation on a built maze,
// argument errors, strategy switching and quit.
func TestSession_MazeTranscript(t *testing.T) {
	script := `seed 5
stats
find 0
maze 7 2
maze 2 0
maze 2 3
remaining
union 0 15
remaining
find 16
frobnicate
union 1
union a b
strategy wilson
strategy kruskal
maze 1 1
remaining

quit
remaining
`
	out, err := runScript(t, DefaultConfig(), script)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "maze_session", []byte(out))
}

// TestSession_Strict stops at the first failing command and returns its error.
func TestSession_Strict(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strict = true

	out, err := runScript(t, cfg, "make 2\nfind 5\nremaining\n")
	require.ErrorIs(t, err, disjointset.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, "error: find: disjointset: index out of range: 5 not in [0, 2)\n", out)
}

func TestSession_Canceled(t *testing.T) {
	var out bytes.Buffer
	s, err := NewSession(&out, log.New(io.Discard), DefaultConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.Run(ctx, strings.NewReader("make 3\nremaining\n"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestSession_MazeReports(t *testing.T) {
	out, err := runScript(t, DefaultConfig(), "make 3\nrows\nraw\nseed 9\nmaze 1 4\nrows\nraw\nsets\n")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "error: rows: cli: no maze built (use maze first)", lines[0])
	assert.Equal(t, "error: raw: cli: no maze built (use maze first)", lines[1])
	assert.Equal(t, "maze 2x2: 4 nodes, 3 edges", lines[2])

	// Row report: four rows with three passages in total.
	total := 0
	for _, row := range lines[3:7] {
		total += int(row[0] - '0')
	}
	assert.Equal(t, 3, total)
	// Raw matrix: four rows of four values, lower triangle zero.
	for i, row := range lines[7:11] {
		fields := strings.Fields(row)
		require.Len(t, fields, 4)
		for j := 0; j <= i; j++ {
			assert.Equal(t, "0", fields[j])
		}
	}
	// The maze is the current universe, so sets shows a single root of size 4.
	assert.Contains(t, lines[11], "-4")
}

func TestSession_PromptAndHelp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Prompt = true

	out, err := runScript(t, cfg, "help\n")
	require.NoError(t, err)
	assert.Contains(t, out, "torusmaze>")
	assert.Contains(t, out, "COMMANDS")
	assert.Contains(t, out, "union x y")
	assert.Contains(t, out, "maze p w")
}

func TestSession_Exec(t *testing.T) {
	s, err := NewSession(io.Discard, log.New(io.Discard), DefaultConfig())
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	for _, line := range []string{"", "   ", "# comment", "#make 3"} {
		quit, err := s.Exec(line)
		require.NoError(t, err)
		require.False(t, quit)
	}

	quit, err := s.Exec("EXIT")
	require.NoError(t, err)
	assert.True(t, quit)

	_, err = s.Exec("quit now")
	require.ErrorIs(t, err, ErrUsage)
	_, err = s.Exec("seed x")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = s.Exec("make 0")
	require.ErrorIs(t, err, disjointset.ErrInvalidSize)
	_, err = s.Exec("remaining")
	require.ErrorIs(t, err, ErrNoSession)
}

func TestNewSession_BadStrategy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = "wilson"
	_, err := NewSession(io.Discard, log.New(io.Discard), cfg)
	require.Error(t, err)
}

package maze_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/torusmaze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_String(t *testing.T) {
	assert.Equal(t, "0", maze.Row{Node: 3}.String())
	r := maze.Row{Node: 0, Neighbors: []int{1, 4}, Weights: []int{3, 2}}
	assert.Equal(t, "2 1 4 3 2", r.String())
}

// TestRowReport checks one row per node, only higher-indexed neighbors,
// and a total count of N-1.
func TestRowReport(t *testing.T) {
	m, err := maze.New(2, 2, maze.WithSeed(5))
	require.NoError(t, err)

	rows := m.RowReport()
	require.Len(t, rows, 16)
	total := 0
	for i, r := range rows {
		require.Equal(t, i, r.Node)
		require.Len(t, r.Weights, len(r.Neighbors))
		for k, v := range r.Neighbors {
			require.Greater(t, v, i)
			w, ok := m.Weight(i, v)
			require.True(t, ok)
			require.Equal(t, w, r.Weights[k])
		}
		total += len(r.Neighbors)
	}
	assert.Equal(t, 15, total)

	var buf bytes.Buffer
	require.NoError(t, m.WriteRowReport(&buf))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 16)
	for i, line := range lines {
		fields := strings.Fields(line)
		count, err := strconv.Atoi(fields[0])
		require.NoError(t, err)
		require.Equal(t, len(rows[i].Neighbors), count)
		require.Len(t, fields, 1+2*count)
		require.Equal(t, rows[i].String(), line)
	}
}

// TestRawMatrix checks the upper-triangular shape and agreement with Weight.
func TestRawMatrix(t *testing.T) {
	m, err := maze.New(2, 9, maze.WithSeed(8))
	require.NoError(t, err)

	raw := m.RawMatrix()
	require.Len(t, raw, 16)
	nonZero := 0
	for u, row := range raw {
		require.Len(t, row, 16)
		for v, w := range row {
			if v <= u {
				require.Zero(t, w, "entry [%d][%d] must be zero", u, v)
				continue
			}
			got, ok := m.Weight(u, v)
			if !ok {
				require.Zero(t, w)
				continue
			}
			require.Equal(t, got, w)
			nonZero++
		}
	}
	assert.Equal(t, 15, nonZero)

	var want strings.Builder
	for _, row := range raw {
		parts := make([]string, len(row))
		for i, w := range row {
			parts[i] = strconv.Itoa(w)
		}
		want.WriteString(strings.Join(parts, " ") + "\n")
	}
	var buf bytes.Buffer
	require.NoError(t, m.WriteRawMatrix(&buf))
	assert.Equal(t, want.String(), buf.String())
}

package torus_test

import (
	"testing"

	"github.com/katalvlaran/torusmaze/torus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// New
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that powers outside [1,6] are rejected.
func TestNew_Errors(t *testing.T) {
	for _, p := range []int{-1, 0, 7, 30} {
		_, err := torus.New(p)
		require.ErrorIs(t, err, torus.ErrInvalidPower, "power=%d", p)
	}
}

func TestNew_Sizes(t *testing.T) {
	cases := []struct{ power, side, nodes int }{
		{1, 2, 4},
		{2, 4, 16},
		{3, 8, 64},
		{6, 64, 4096},
	}
	for _, tc := range cases {
		g, err := torus.New(tc.power)
		require.NoError(t, err)
		assert.Equal(t, tc.side, g.Side)
		assert.Equal(t, tc.nodes, g.Nodes)
	}
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

// TestNeighbors_Wraparound checks the four wrap cases on a 4×4 torus.
func TestNeighbors_Wraparound(t *testing.T) {
	g, err := torus.New(2)
	require.NoError(t, err)

	assert.Equal(t, 0, g.Right(3))
	assert.Equal(t, 6, g.Right(5))
	assert.Equal(t, 7, g.Left(4))
	assert.Equal(t, 4, g.Left(5))
	assert.Equal(t, 1, g.Below(13))
	assert.Equal(t, 9, g.Below(5))
	assert.Equal(t, 14, g.Above(2))
	assert.Equal(t, 1, g.Above(5))
}

// TestNeighbors_Inverse checks that opposite moves cancel on every node and
// that every neighbor stays on the same row or column.
func TestNeighbors_Inverse(t *testing.T) {
	for p := torus.MinPower; p <= torus.MaxPower; p++ {
		g, err := torus.New(p)
		require.NoError(t, err)
		for i := 0; i < g.Nodes; i++ {
			require.Equal(t, i, g.Left(g.Right(i)))
			require.Equal(t, i, g.Above(g.Below(i)))

			r, c := g.Coordinate(i)
			rr, rc := g.Coordinate(g.Right(i))
			require.Equal(t, r, rr)
			require.Equal(t, (c+1)%g.Side, rc)
			br, bc := g.Coordinate(g.Below(i))
			require.Equal(t, (r+1)%g.Side, br)
			require.Equal(t, c, bc)

			for _, d := range torus.Directions {
				require.True(t, g.Contains(g.Neighbor(i, d)))
			}
		}
	}
}

func TestNeighbor_Dispatch(t *testing.T) {
	g, _ := torus.New(3)
	assert.Equal(t, g.Above(9), g.Neighbor(9, torus.Up))
	assert.Equal(t, g.Below(9), g.Neighbor(9, torus.Down))
	assert.Equal(t, g.Left(9), g.Neighbor(9, torus.Left))
	assert.Equal(t, g.Right(9), g.Neighbor(9, torus.Right))
	assert.Equal(t, 9, g.Neighbor(9, torus.Direction(42)))
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "up", torus.Up.String())
	assert.Equal(t, "down", torus.Down.String())
	assert.Equal(t, "left", torus.Left.String())
	assert.Equal(t, "right", torus.Right.String())
	assert.Equal(t, "unknown", torus.Direction(-1).String())
}

func TestIndex_Wraps(t *testing.T) {
	g, _ := torus.New(2)
	assert.Equal(t, 6, g.Index(1, 2))
	assert.Equal(t, 12, g.Index(-1, 0))
	assert.Equal(t, 3, g.Index(0, -1))
	assert.Equal(t, 0, g.Index(4, 4))
}

//----------------------------------------------------------------------------//
// Edges
//----------------------------------------------------------------------------//

// TestEdges_Counts checks the deduplicated edge count: Nodes for a 2×2 torus
// (left/right and up/down coincide), 2*Nodes otherwise.
func TestEdges_Counts(t *testing.T) {
	g, _ := torus.New(1)
	assert.Equal(t, []torus.Edge{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, g.Edges())

	for p := 2; p <= torus.MaxPower; p++ {
		g, err := torus.New(p)
		require.NoError(t, err)
		edges := g.Edges()
		require.Len(t, edges, 2*g.Nodes)
		for k, e := range edges {
			require.Less(t, e.U, e.V)
			if k > 0 {
				prev := edges[k-1]
				require.True(t, prev.U < e.U || (prev.U == e.U && prev.V < e.V), "edges must be sorted and unique")
			}
		}
	}
}

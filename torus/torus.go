package torus

import (
	"fmt"
	"sort"
)

// New returns the 2^power × 2^power torus.
// Returns ErrInvalidPower unless power is in [MinPower, MaxPower].
func New(power int) (Grid, error) {
	if power < MinPower || power > MaxPower {
		return Grid{}, fmt.Errorf("New: power=%d (must be in [%d, %d]): %w",
			power, MinPower, MaxPower, ErrInvalidPower)
	}
	side := 1 << power

	return Grid{Power: power, Side: side, Nodes: side * side}, nil
}

// Contains reports whether i is a node of the grid.
func (g Grid) Contains(i int) bool {
	return i >= 0 && i < g.Nodes
}

// Right returns the next node in i's row, wrapping from the last column to the first.
func (g Grid) Right(i int) int {
	if (i+1)%g.Side == 0 {
		return i - (g.Side - 1)
	}

	return i + 1
}

// Left returns the previous node in i's row, wrapping from the first column to the last.
func (g Grid) Left(i int) int {
	if i%g.Side == 0 {
		return i + (g.Side - 1)
	}

	return i - 1
}

// Below returns the node in the next row, wrapping from the last row to the first.
func (g Grid) Below(i int) int {
	if i+g.Side > g.Nodes-1 {
		return i - (g.Nodes - g.Side)
	}

	return i + g.Side
}

// Above returns the node in the previous row, wrapping from the first row to the last.
func (g Grid) Above(i int) int {
	if i-g.Side < 0 {
		return i + (g.Nodes - g.Side)
	}

	return i - g.Side
}

// Neighbor returns the neighbor of i in direction d.
// An unknown direction yields i itself.
func (g Grid) Neighbor(i int, d Direction) int {
	switch d {
	case Up:
		return g.Above(i)
	case Down:
		return g.Below(i)
	case Left:
		return g.Left(i)
	case Right:
		return g.Right(i)
	default:
		return i
	}
}

// Coordinate converts a row-major index to (row, col).
func (g Grid) Coordinate(i int) (row, col int) {
	return i / g.Side, i % g.Side
}

// Index converts (row, col) to a row-major index. Both coordinates wrap,
// so Index(-1, 0) is the first cell of the last row.
func (g Grid) Index(row, col int) int {
	row = ((row % g.Side) + g.Side) % g.Side
	col = ((col % g.Side) + g.Side) % g.Side

	return row*g.Side + col
}

// Edges returns every undirected torus edge exactly once, sorted by (U, V).
// For Side >= 3 that is 2*Nodes edges; for Side == 2 the left and right
// (and up and down) neighbors coincide, leaving Nodes edges.
func (g Grid) Edges() []Edge {
	seen := make(map[Edge]struct{}, 2*g.Nodes)
	edges := make([]Edge, 0, 2*g.Nodes)
	for i := 0; i < g.Nodes; i++ {
		for _, j := range [2]int{g.Right(i), g.Below(i)} {
			e := Edge{U: min(i, j), V: max(i, j)}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].U != edges[b].U {
			return edges[a].U < edges[b].U
		}
		return edges[a].V < edges[b].V
	})

	return edges
}

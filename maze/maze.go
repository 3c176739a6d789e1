package maze

import (
	"fmt"

	"github.com/katalvlaran/torusmaze/disjointset"
	"github.com/katalvlaran/torusmaze/torus"
)

// Edge is an accepted passage {U, V} with U < V and Weight in [1, maxWeight].
type Edge struct {
	U, V   int
	Weight int
}

// Maze is a spanning tree of a torus grid. It is complete once New returns.
type Maze struct {
	grid      torus.Grid
	maxWeight int
	strategy  Strategy
	attempts  int

	sets *disjointset.DisjointSet
	adj  *adjacency
}

// New builds a maze on the 2^power × 2^power torus with passage weights drawn
// uniformly from [1, maxWeight].
//
// Steps:
//  1. Validate power in [1, 6] and maxWeight >= 1 (no partial work on failure).
//  2. Create a DisjointSet over N = 4^power nodes and an empty passage store.
//  3. Run the selected strategy until Remaining() == 1, i.e. N-1 edges.
//
// Complexity: StrategyKruskal is O(N log N); StrategyRejection is expected
// super-linear in N because late draws mostly hit already-joined cells.
func New(power, maxWeight int, opts ...Option) (*Maze, error) {
	if power < torus.MinPower || power > torus.MaxPower {
		return nil, fmt.Errorf("%s: power=%d (must be in [%d, %d]): %w",
			methodNew, power, torus.MinPower, torus.MaxPower, ErrInvalidPower)
	}
	if maxWeight < 1 {
		return nil, fmt.Errorf("%s: maxWeight=%d (must be >= 1): %w", methodNew, maxWeight, ErrInvalidWeight)
	}
	cfg := newConfig(opts...)

	grid, err := torus.New(power)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	sets, err := disjointset.New(grid.Nodes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	m := &Maze{
		grid:      grid,
		maxWeight: maxWeight,
		strategy:  cfg.strategy,
		sets:      sets,
		adj:       newAdjacency(grid.Nodes),
	}

	switch cfg.strategy {
	case StrategyRejection:
		err = m.buildRejection(cfg)
	case StrategyKruskal:
		err = m.buildKruskal(cfg)
	default:
		return nil, fmt.Errorf("%s: %w: %v", methodNew, ErrUnknownStrategy, cfg.strategy)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodNew, cfg.strategy, err)
	}

	return m, nil
}

// Grid returns the underlying torus.
func (m *Maze) Grid() torus.Grid { return m.grid }

// MaxWeight returns the upper bound of passage weights.
func (m *Maze) MaxWeight() int { return m.maxWeight }

// Strategy returns the strategy the maze was built with.
func (m *Maze) Strategy() Strategy { return m.strategy }

// Attempts returns how many candidate edges construction examined.
func (m *Maze) Attempts() int { return m.attempts }

// EdgeCount returns the number of accepted passages (N-1 once built).
func (m *Maze) EdgeCount() int { return m.adj.edges }

// Edges returns every passage sorted by (U, V).
func (m *Maze) Edges() []Edge {
	out := make([]Edge, 0, m.adj.edges)
	for u, row := range m.adj.rows {
		for _, p := range row {
			out = append(out, Edge{U: u, V: p.to, Weight: p.weight})
		}
	}

	return out
}

// Weight returns the weight of passage {u, v} in either order, and whether it exists.
func (m *Maze) Weight(u, v int) (int, bool) {
	return m.adj.weight(u, v)
}

// Neighbors returns the nodes joined to i by a passage, in ascending order.
// Lower neighbors are recovered by scanning rows 0..i-1, since only the upper
// half is stored. Returns disjointset.ErrIndexOutOfRange for a bad node.
func (m *Maze) Neighbors(i int) ([]int, error) {
	if !m.grid.Contains(i) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", disjointset.ErrIndexOutOfRange, i, m.grid.Nodes)
	}
	var out []int
	for u := 0; u < i; u++ {
		if _, ok := m.adj.weight(u, i); ok {
			out = append(out, u)
		}
	}
	for _, p := range m.adj.rows[i] {
		out = append(out, p.to)
	}

	return out, nil
}

// Find delegates to the maze's DisjointSet.
func (m *Maze) Find(x int) (int, error) { return m.sets.Find(x) }

// Union delegates to the maze's DisjointSet. On a finished maze every pair is
// already connected, so it never merges anything.
func (m *Maze) Union(x, y int) (bool, error) { return m.sets.Union(x, y) }

// Remaining delegates to the maze's DisjointSet; 1 once built.
func (m *Maze) Remaining() int { return m.sets.Remaining() }

// Stats delegates to the maze's DisjointSet, including the finds made while building.
func (m *Maze) Stats() disjointset.Stats { return m.sets.Stats() }

// Sets delegates to the maze's DisjointSet.
func (m *Maze) Sets() []int { return m.sets.Sets() }

package maze

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/torusmaze/torus"
)

// Strategy selects how candidate passages are drawn during construction.
type Strategy int

const (
	// StrategyRejection samples a random node and direction per step and
	// discards draws that would close a cycle.
	StrategyRejection Strategy = iota
	// StrategyKruskal shuffles all torus edges and scans them once.
	StrategyKruskal
)

// String returns the strategy name used by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyRejection:
		return "rejection"
	case StrategyKruskal:
		return "kruskal"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "rejection" or "kruskal" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rejection", "":
		return StrategyRejection, nil
	case "kruskal":
		return StrategyKruskal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// buildRejection runs the rejection-sampling loop until one component remains.
//
// Each iteration draws a node in [0, N) and then a direction, in that order;
// the weight is drawn only for accepted edges. Keep this order stable: it is
// what makes a seed reproduce the same maze.
func (m *Maze) buildRejection(cfg config) error {
	rng := cfg.rng
	for m.sets.Remaining() > 1 {
		m.attempts++
		node := rng.Intn(m.grid.Nodes)
		dir := torus.Directions[rng.Intn(len(torus.Directions))]
		next := m.grid.Neighbor(node, dir)

		rn, err := m.sets.Find(node)
		if err != nil {
			return err
		}
		rx, err := m.sets.Find(next)
		if err != nil {
			return err
		}
		if rn == rx {
			continue
		}
		if _, err = m.sets.Union(node, next); err != nil {
			return err
		}
		m.adj.add(node, next, rng.Intn(m.maxWeight)+1)
	}

	return nil
}

// buildKruskal shuffles the torus edge list and accepts every edge that joins
// two components. A connected grid always yields a spanning tree in one pass.
func (m *Maze) buildKruskal(cfg config) error {
	rng := cfg.rng
	edges := m.grid.Edges()
	rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	for _, e := range edges {
		if m.sets.Remaining() == 1 {
			break
		}
		m.attempts++
		merged, err := m.sets.Union(e.U, e.V)
		if err != nil {
			return err
		}
		if merged {
			m.adj.add(e.U, e.V, rng.Intn(m.maxWeight)+1)
		}
	}

	return nil
}

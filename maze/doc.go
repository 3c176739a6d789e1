// Package maze builds a random perfect maze on a toroidal grid: a spanning tree
// of the 2^p × 2^p wrap-around 4-neighbor grid, with a random integer weight on
// every passage.
//
// What & Why
//
//   - A perfect maze has exactly one route between any two cells. On a graph
//     that means a spanning tree: connected, acyclic, N-1 edges for N cells.
//   - Acyclicity is enforced by a disjointset.DisjointSet sized to N: an edge is
//     accepted only when its endpoints still have different roots, and the union
//     that follows records the merge.
//
// Construction Strategies
//
//   - StrategyRejection (default): while more than one component remains, draw a
//     node uniformly from [0, N) and a direction uniformly from
//     {up, down, left, right}; keep the edge if it joins two components,
//     otherwise discard the draw. The tail behaves like a coupon collector, which
//     is why the grid power is capped at 6 (4096 nodes).
//   - StrategyKruskal: shuffle every torus edge once and accept them in that
//     order with the same union-find test. One pass always suffices.
//
//   Neither strategy samples spanning trees uniformly (Aldous–Broder or Wilson's
//   algorithm would); treat the distribution as an approximation.
//
// Randomness
//
//   All draws come from one *rand.Rand supplied through WithRand or WithSeed.
//   Without either option a fixed default seed is used, so New is reproducible.
//
// Storage & Reports
//
//   - Passages are kept in an upper-triangular sparse store: row u records only
//     neighbors v > u and their weights. The lower half is never materialized.
//   - RowReport lists, per node in ascending order, "<count> <idx...> <w...>".
//   - RawMatrix / WriteRawMatrix dump the upper-triangular N×N weight matrix.
//
// After New returns the maze is complete (Remaining() == 1) and only the
// delegated Find/Union calls can touch its union-find state.
//
// Errors:
//
//   - ErrInvalidPower:    power outside [1, 6].
//   - ErrInvalidWeight:   maxWeight <= 0.
//   - ErrUnknownStrategy: a Strategy value that is not defined.
//   - disjointset.ErrIndexOutOfRange: delegated Find/Union on a bad node.
package maze

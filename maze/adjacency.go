package maze

import "sort"

// passage is one stored half of an undirected edge: the higher endpoint and its weight.
type passage struct {
	to     int
	weight int
}

// adjacency is an upper-triangular sparse weight store. rows[u] holds only
// passages to v > u, sorted by v.
type adjacency struct {
	rows  [][]passage
	edges int
}

func newAdjacency(n int) *adjacency {
	return &adjacency{rows: make([][]passage, n)}
}

// add records the undirected edge {u, v} once, under min(u, v).
// Re-adding an existing edge overwrites its weight.
func (a *adjacency) add(u, v, w int) {
	if u > v {
		u, v = v, u
	}
	row := a.rows[u]
	k := sort.Search(len(row), func(i int) bool { return row[i].to >= v })
	if k < len(row) && row[k].to == v {
		row[k].weight = w
		return
	}
	row = append(row, passage{})
	copy(row[k+1:], row[k:])
	row[k] = passage{to: v, weight: w}
	a.rows[u] = row
	a.edges++
}

// weight returns the weight of {u, v} and whether the edge exists.
func (a *adjacency) weight(u, v int) (int, bool) {
	if u > v {
		u, v = v, u
	}
	if u < 0 || u >= len(a.rows) {
		return 0, false
	}
	row := a.rows[u]
	k := sort.Search(len(row), func(i int) bool { return row[i].to >= v })
	if k < len(row) && row[k].to == v {
		return row[k].weight, true
	}

	return 0, false
}

package maze

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Row is one line of the row report: the passages from Node to higher-indexed nodes.
type Row struct {
	Node      int
	Neighbors []int
	Weights   []int
}

// String renders "<count> <idx1> <idx2> ... <w1> <w2> ...", or "0" for an empty row.
func (r Row) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(r.Neighbors)))
	for _, v := range r.Neighbors {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(v))
	}
	for _, w := range r.Weights {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(w))
	}

	return sb.String()
}

// RowReport returns one Row per node in ascending order.
func (m *Maze) RowReport() []Row {
	rows := make([]Row, len(m.adj.rows))
	for u, stored := range m.adj.rows {
		r := Row{
			Node:      u,
			Neighbors: make([]int, 0, len(stored)),
			Weights:   make([]int, 0, len(stored)),
		}
		for _, p := range stored {
			r.Neighbors = append(r.Neighbors, p.to)
			r.Weights = append(r.Weights, p.weight)
		}
		rows[u] = r
	}

	return rows
}

// WriteRowReport writes the row report to w, one line per node.
func (m *Maze) WriteRowReport(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, r := range m.RowReport() {
		if _, err := bw.WriteString(r.String() + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// RawMatrix returns the N×N upper-triangular weight matrix: entry [u][v] is
// the weight of passage {u, v} when u < v, and 0 everywhere else.
// Memory is O(N²); prefer WriteRawMatrix for large grids.
func (m *Maze) RawMatrix() [][]int {
	n := m.grid.Nodes
	out := make([][]int, n)
	for u := range out {
		out[u] = make([]int, n)
		for _, p := range m.adj.rows[u] {
			out[u][p.to] = p.weight
		}
	}

	return out
}

// WriteRawMatrix streams the raw matrix to w, one space-separated row per line,
// without materializing it.
func (m *Maze) WriteRawMatrix(w io.Writer) error {
	n := m.grid.Nodes
	bw := bufio.NewWriter(w)
	line := make([]int, n)
	for u := 0; u < n; u++ {
		clear(line)
		for _, p := range m.adj.rows[u] {
			line[p.to] = p.weight
		}
		for v, x := range line {
			if v > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.Itoa(x)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

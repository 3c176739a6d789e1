package disjointset

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// New creates n singleton sets {0}, {1}, ..., {n-1}.
// Returns ErrInvalidSize if n <= 0.
// Complexity: O(n) time and memory.
func New(n int) (*DisjointSet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: n=%d (must be >= 1): %w", methodNew, n, ErrInvalidSize)
	}
	sets := make([]int, n)
	for i := range sets {
		sets[i] = -1
	}

	return &DisjointSet{sets: sets, remaining: n}, nil
}

// Len returns the number of elements n.
func (d *DisjointSet) Len() int {
	return len(d.sets)
}

// Remaining returns the current number of disjoint sets.
func (d *DisjointSet) Remaining() int {
	return d.remaining
}

// Stats returns a snapshot of the diagnostic counters.
func (d *DisjointSet) Stats() Stats {
	return Stats{
		Remaining:  d.remaining,
		FindCalls:  d.findCalls,
		PathLength: d.pathLength,
	}
}

// Find returns the root of x's set and compresses the path from x to it:
// afterwards every element visited on the way points directly at the root.
//
// The walk runs in two passes (ascend to the root, then re-walk and redirect),
// so stack depth does not depend on tree height.
// Returns ErrIndexOutOfRange if x is outside [0, n).
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	return d.find(x), nil
}

// find is Find without the bounds check.
func (d *DisjointSet) find(x int) int {
	d.findCalls++
	d.pathLength++

	// 1) Ascend to the root, counting every non-root hop.
	root := x
	for d.sets[root] >= 0 {
		d.pathLength++
		root = d.sets[root]
	}

	// 2) Re-walk the path and point each element straight at the root.
	for d.sets[x] >= 0 {
		next := d.sets[x]
		d.sets[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing x and y.
//
// It reports merged=false without touching any state when x == y, and
// merged=false after the two Finds when x and y already share a root.
// Otherwise the root of the smaller-or-equal tree is grafted under the root
// of the strictly larger tree: if size(root(y)) <= size(root(x)) then
// root(y) goes under root(x), else root(x) goes under root(y).
//
// Both arguments are validated before anything else, so a failing call
// leaves the structure and its counters unchanged.
func (d *DisjointSet) Union(x, y int) (bool, error) {
	if err := d.check(x); err != nil {
		return false, err
	}
	if err := d.check(y); err != nil {
		return false, err
	}
	if x == y {
		return false, nil
	}

	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return false, nil
	}
	if -d.sets[ry] <= -d.sets[rx] {
		d.graft(ry, rx)
	} else {
		d.graft(rx, ry)
	}

	return true, nil
}

// graft attaches root child under root parent.
func (d *DisjointSet) graft(child, parent int) {
	d.sets[parent] += d.sets[child]
	d.sets[child] = parent
	d.remaining--
}

// Size returns the number of elements in x's set.
func (d *DisjointSet) Size(x int) (int, error) {
	root, err := d.Find(x)
	if err != nil {
		return 0, err
	}

	return -d.sets[root], nil
}

// Connected reports whether x and y are in the same set.
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Sets returns a copy of the raw array: a parent index for inner elements,
// minus the tree size for roots.
func (d *DisjointSet) Sets() []int {
	out := make([]int, len(d.sets))
	copy(out, d.sets)

	return out
}

// String renders the raw array as space-terminated values, e.g. "-1 -1 -1 ".
func (d *DisjointSet) String() string {
	var sb strings.Builder
	for _, v := range d.sets {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(' ')
	}

	return sb.String()
}

// WriteSets writes String followed by a newline to w.
func (d *DisjointSet) WriteSets(w io.Writer) error {
	_, err := io.WriteString(w, d.String()+"\n")

	return err
}

// check validates that x is an element of the universe.
func (d *DisjointSet) check(x int) error {
	if x < 0 || x >= len(d.sets) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, x, len(d.sets))
	}

	return nil
}

package disjointset

import (
	"errors"
	"fmt"
)

// Sentinel errors for disjointset operations.
var (
	// ErrInvalidSize indicates a non-positive element count passed to New.
	ErrInvalidSize = errors.New("disjointset: set count must be positive")
	// ErrIndexOutOfRange indicates an element outside [0, n).
	ErrIndexOutOfRange = errors.New("disjointset: index out of range")
)

// methodNew tags errors produced by New.
const methodNew = "New"

// DisjointSet is a union-find structure over the elements [0, n).
// The zero value is not usable; construct with New.
type DisjointSet struct {
	sets      []int // parent pointer, or -size for a root
	remaining int   // number of roots

	pathLength int // total path length walked by Find
	findCalls  int // number of Find calls
}

// Stats is a snapshot of the diagnostic counters of a DisjointSet.
type Stats struct {
	Remaining  int // live set count
	FindCalls  int // number of Find calls so far
	PathLength int // total path length over all Find calls
}

// MeanPathLength returns PathLength / FindCalls, or 0 before the first Find.
func (s Stats) MeanPathLength() float64 {
	if s.FindCalls == 0 {
		return 0
	}

	return float64(s.PathLength) / float64(s.FindCalls)
}

// String renders the two-line stats report:
//
//	Number of sets remaining =    7
//	Mean path length in find =   1.22
func (s Stats) String() string {
	return fmt.Sprintf("Number of sets remaining = %4d\nMean path length in find = %6.2f\n",
		s.Remaining, s.MeanPathLength())
}

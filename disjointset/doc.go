// Package disjointset provides a fixed-size, array-backed union-find structure
// over the integer elements [0, n).
//
// What:
//
//   - Each element starts in its own singleton set.
//   - Find returns the root (representative) of an element's set and rewrites
//     every pointer on the walked path to point straight at that root
//     (full path compression).
//   - Union merges two sets by size: the smaller-or-equal tree is grafted under
//     the strictly larger one. On a tie the root of the second argument's tree
//     goes under the root of the first argument's tree.
//
// Representation:
//
//	sets[i] >= 0  parent pointer of element i
//	sets[i] <  0  i is a root; -sets[i] is the size of its tree
//
// For n=10, after Union(7, 6) the raw array is
//
//	-1 -1 -1 -1 -1 -1 7 -2 -1 -1
//
// Diagnostics:
//
//   - Remaining is the live set count. It starts at n and drops by exactly one
//     per successful merge.
//   - Stats reports the number of Find calls and the total path length walked.
//     Every call counts 1 plus one per parent hop, so a lookup on a root costs 1.
//
// Complexity:
//
//   - New:   O(n) time and memory.
//   - Find:  amortized O(α(n)); the walk is iterative, so stack use is O(1).
//   - Union: two Finds plus O(1).
//
// Errors:
//
//   - ErrInvalidSize: New called with n <= 0.
//   - ErrIndexOutOfRange: Find/Union/Size/Connected called with an element
//     outside [0, n). State is left untouched.
//
// A DisjointSet is not safe for concurrent use.
package disjointset

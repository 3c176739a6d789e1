// Package torusmaze builds random perfect mazes on a wrap-around grid and
// exposes the union-find structure that keeps them acyclic.
//
// What is inside?
//
//	disjointset    array-backed union-find with path compression, union by size,
//	               live set count and mean find path length
//	torus          2^p × 2^p grid whose edges wrap; neighbor arithmetic
//	maze           randomized spanning-tree builder over the torus, sparse
//	               upper-triangular passage store, row report and raw matrix
//	internal/cli   line-oriented command interpreter and the cobra CLI
//	cmd/torusmaze  binary entry point
//
// Quick ASCII example (4×4 torus, one possible maze):
//
//	 0───1   2───3
//	 │       │
//	 4   5───6   7
//	 │   │       │
//	 8───9  10──11
//	     │   │
//	12──13  14  15
//
// Passages leaving the picture wrap to the opposite side, so a maze may use
// 3───0 or 12───0 as well.
//
//	go install github.com/katalvlaran/torusmaze/cmd/torusmaze@latest
package torusmaze

package maze_test

import (
	"fmt"

	"github.com/katalvlaran/torusmaze/maze"
)

// ExampleNew builds a 4×4 torus maze and checks the spanning-tree invariants.
// The exact passages depend on the seed; the counts do not.
func ExampleNew() {
	m, err := maze.New(2, 10, maze.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	total := 0
	for _, r := range m.RowReport() {
		total += len(r.Neighbors)
	}
	fmt.Println("nodes:", m.Grid().Nodes)
	fmt.Println("passages:", m.EdgeCount(), total)
	fmt.Println("components:", m.Remaining())
	// Output:
	// nodes: 16
	// passages: 15 15
	// components: 1
}

func ExampleNew_invalidPower() {
	_, err := maze.New(7, 2)
	fmt.Println(err)
	// Output: New: power=7 (must be in [1, 6]): torus: power out of range
}

package torus

import "errors"

// ErrInvalidPower indicates a grid power outside [MinPower, MaxPower].
var ErrInvalidPower = errors.New("torus: power out of range")

// Supported grid powers. 2^MaxPower squared is 4096 nodes.
const (
	MinPower = 1
	MaxPower = 6
)

// Direction selects one of the four orthogonal neighbors.
type Direction int

const (
	// Up is the neighbor in the previous row (wrapping to the last row).
	Up Direction = iota
	// Down is the neighbor in the next row (wrapping to the first row).
	Down
	// Left is the neighbor in the previous column (wrapping to the last column).
	Left
	// Right is the neighbor in the next column (wrapping to the first column).
	Right
)

// Directions lists every Direction in sampling order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Edge is an undirected torus edge stored with U < V.
type Edge struct {
	U, V int
}

// Grid is an immutable Side×Side torus. Nodes == Side*Side.
type Grid struct {
	Power int
	Side  int
	Nodes int
}

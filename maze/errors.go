package maze

import (
	"errors"

	"github.com/katalvlaran/torusmaze/torus"
)

var (
	// ErrInvalidPower indicates a grid power outside [torus.MinPower, torus.MaxPower].
	ErrInvalidPower = torus.ErrInvalidPower
	// ErrInvalidWeight indicates a non-positive maximum passage weight.
	ErrInvalidWeight = errors.New("maze: max weight must be positive")
	// ErrUnknownStrategy indicates an undefined construction Strategy.
	ErrUnknownStrategy = errors.New("maze: unknown construction strategy")
)

// methodNew tags errors produced by New.
const methodNew = "New"

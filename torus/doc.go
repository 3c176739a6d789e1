// Package torus models an L×L grid whose rows and columns wrap around, so every
// cell has exactly four neighbors and there is no boundary.
//
// What:
//
//   - Grid is built from a power p in [MinPower, MaxPower]; side L = 2^p and
//     node count N = L*L.
//   - Nodes are row-major indices in [0, N): row = i / L, col = i % L.
//   - Right/Left/Below/Above compute the wrapped neighbor with plain modular
//     arithmetic; Neighbor dispatches on a Direction.
//   - Edges lists every undirected torus edge once, as (u, v) with u < v.
//
// Example (L = 4):
//
//	 0  1  2  3
//	 4  5  6  7
//	 8  9 10 11
//	12 13 14 15
//
//	Right(3) = 0, Left(4) = 7, Below(13) = 1, Above(2) = 14.
//
// Complexity:
//
//   - New, neighbor and coordinate helpers: O(1).
//   - Edges: O(N log N) time, O(N) memory.
//
// Errors:
//
//   - ErrInvalidPower: power outside [MinPower, MaxPower].
package torus

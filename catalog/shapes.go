// Package catalog holds the 21 canonical Blokus piece shapes and their
// precomputed orientations.
package catalog

// Cell is a single integer offset within a shape, (row, col).
type Cell struct {
	Row, Col int
}

// PieceID names one of the 21 canonical pieces.
type PieceID string

// Canonical piece identifiers, per the wire format.
const (
	I1 PieceID = "I1"
	I2 PieceID = "I2"
	I3 PieceID = "I3"
	I4 PieceID = "I4"
	I5 PieceID = "I5"
	L4 PieceID = "L4"
	L5 PieceID = "L5"
	T4 PieceID = "T4"
	T5 PieceID = "T5"
	Z4 PieceID = "Z4"
	Z5 PieceID = "Z5"
	V3 PieceID = "V3"
	V4 PieceID = "V4"
	V5 PieceID = "V5"
	U5 PieceID = "U5"
	W4 PieceID = "W4"
	W5 PieceID = "W5"
	X5 PieceID = "X5"
	Y5 PieceID = "Y5"
	F5 PieceID = "F5"
	P5 PieceID = "P5"
)

// AllPieceIDs lists the 21 pieces in a stable, deterministic order:
// the five straights, the one tromino, the four tetrominoes, then the
// eleven pentominoes.
var AllPieceIDs = []PieceID{
	I1, I2, I3, I4, I5,
	V3,
	L4, Z4, T4, W4,
	L5, T5, Z5, V4, V5, U5, W5, X5, Y5, F5, P5,
}

// canonicalShapes holds each piece's cells before normalization, as
// literally transcribed from the standard Blokus piece set.
var canonicalShapes = map[PieceID][]Cell{
	I1: {{0, 0}},
	I2: {{0, 0}, {0, 1}},
	I3: {{0, 0}, {0, 1}, {0, 2}},
	I4: {{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	I5: {{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}},

	V3: {{0, 0}, {1, 0}, {1, 1}},

	L4: {{0, 0}, {1, 0}, {2, 0}, {2, 1}},
	Z4: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	T4: {{0, 0}, {0, 1}, {0, 2}, {1, 1}},
	W4: {{0, 0}, {0, 1}, {1, 0}, {1, 1}}, // 2x2 square tetromino

	L5: {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}},
	T5: {{0, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 1}},
	Z5: {{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}},
	V4: {{0, 0}, {1, 0}, {1, 1}, {2, 1}, {3, 1}}, // N/S-pentomino zigzag; uses the "V4" wire name per spec.md §6
	V5: {{0, 0}, {0, 1}, {0, 2}, {1, 0}, {2, 0}}, // true V-pentomino: two 3-long arms sharing a corner
	U5: {{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}},
	W5: {{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}},
	X5: {{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}},
	Y5: {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {2, 1}},
	F5: {{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}},
	P5: {{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}},
}

// CanonicalCells returns a copy of piece id's un-normalized canonical cells.
func CanonicalCells(id PieceID) []Cell {
	src := canonicalShapes[id]
	out := make([]Cell, len(src))
	copy(out, src)
	return out
}

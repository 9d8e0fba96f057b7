package rules

import (
	"github.com/korjavin/blokus-engine/board"
	"github.com/korjavin/blokus-engine/catalog"
)

// Move is a total description of a legal placement, or the distinguished
// Pass value.
type Move struct {
	PlayerID    int
	Pass        bool
	PieceID     catalog.PieceID
	Orientation catalog.Orientation
	Anchor      board.Point
}

// PassMove returns the distinguished pass move for playerID.
func PassMove(playerID int) Move {
	return Move{PlayerID: playerID, Pass: true}
}

// Cells returns the absolute board cells m covers. Pass moves return nil.
func (m Move) Cells() []board.Point {
	if m.Pass {
		return nil
	}
	raw := catalog.PlaceCells(m.Orientation, m.Anchor.Row, m.Anchor.Col)
	out := make([]board.Point, len(raw))
	for i, c := range raw {
		out[i] = board.Point{Row: c.Row, Col: c.Col}
	}
	return out
}

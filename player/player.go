// Package player holds per-player game state: remaining/placed pieces,
// score bookkeeping, and pass/first-move flags.
package player

import (
	"fmt"

	"github.com/korjavin/blokus-engine/board"
	"github.com/korjavin/blokus-engine/catalog"
)

// OriginCorner returns the fixed starting cell for player id (1..4).
func OriginCorner(id int) board.Point {
	switch id {
	case 1:
		return board.Point{Row: 0, Col: 0}
	case 2:
		return board.Point{Row: 0, Col: board.Size - 1}
	case 3:
		return board.Point{Row: board.Size - 1, Col: board.Size - 1}
	case 4:
		return board.Point{Row: board.Size - 1, Col: 0}
	default:
		panic(fmt.Sprintf("player: invalid player id %d", id))
	}
}

// PlacedPiece records one piece a player has committed to the board.
type PlacedPiece struct {
	PieceID     catalog.PieceID
	Orientation catalog.Orientation
	Anchor      board.Point
}

// Player is one seat's mutable state. Owned exclusively by game.State;
// strategies only ever see immutable views or deep copies (spec.md §5).
type Player struct {
	ID           int
	Name         string
	Color        string
	Origin       board.Point
	Remaining    map[catalog.PieceID]bool
	Placed       []PlacedPiece
	HasFirstMove bool
	HasPassed    bool

	// IsAI and Strategy name are descriptive only; actual move selection
	// is owned by the ai package and invoked by the engine facade.
	IsAI         bool
	StrategyName string
}

// New constructs a player with the full 21-piece catalog remaining.
func New(id int, name, color string, isAI bool, strategyName string) *Player {
	remaining := make(map[catalog.PieceID]bool, len(catalog.AllPieceIDs))
	for _, id := range catalog.AllPieceIDs {
		remaining[id] = true
	}
	return &Player{
		ID:           id,
		Name:         name,
		Color:        color,
		Origin:       OriginCorner(id),
		Remaining:    remaining,
		Placed:       nil,
		IsAI:         isAI,
		StrategyName: strategyName,
	}
}

// TakePiece moves pieceID from Remaining to Placed, recording its
// orientation and anchor. Precondition: pieceID is currently remaining.
func (p *Player) TakePiece(pieceID catalog.PieceID, orientation catalog.Orientation, anchor board.Point) error {
	if !p.Remaining[pieceID] {
		return fmt.Errorf("player %d: piece %s is not in remaining set", p.ID, pieceID)
	}
	delete(p.Remaining, pieceID)
	p.Placed = append(p.Placed, PlacedPiece{PieceID: pieceID, Orientation: orientation, Anchor: anchor})
	return nil
}

// MarkPassed sets HasPassed. It is sticky: nothing in this package ever
// clears it again (spec.md §9 open-question decision).
func (p *Player) MarkPassed() {
	p.HasPassed = true
}

// RemainingSquareCount sums the cell count of every piece still in
// Remaining.
func (p *Player) RemainingSquareCount() int {
	total := 0
	for id := range p.Remaining {
		total += catalog.SquareCount(id)
	}
	return total
}

// PlacedSquareCount sums the cell count of every placed piece.
func (p *Player) PlacedSquareCount() int {
	total := 0
	for _, pp := range p.Placed {
		total += catalog.SquareCount(pp.PieceID)
	}
	return total
}

// CheckInvariants verifies remaining ∪ placed = full catalog and
// remaining ∩ placed = ∅. Intended for debug builds / tests per
// spec.md §4.4.
func (p *Player) CheckInvariants() error {
	seen := make(map[catalog.PieceID]bool, len(catalog.AllPieceIDs))
	for id := range p.Remaining {
		seen[id] = true
	}
	for _, pp := range p.Placed {
		if seen[pp.PieceID] {
			return fmt.Errorf("player %d: piece %s is both remaining and placed", p.ID, pp.PieceID)
		}
		seen[pp.PieceID] = true
	}
	if len(seen) != len(catalog.AllPieceIDs) {
		return fmt.Errorf("player %d: remaining+placed has %d pieces, want %d", p.ID, len(seen), len(catalog.AllPieceIDs))
	}
	return nil
}

// Clone returns a deep copy suitable for AI simulation.
func (p *Player) Clone() *Player {
	remaining := make(map[catalog.PieceID]bool, len(p.Remaining))
	for k, v := range p.Remaining {
		remaining[k] = v
	}
	placed := make([]PlacedPiece, len(p.Placed))
	copy(placed, p.Placed)
	clone := *p
	clone.Remaining = remaining
	clone.Placed = placed
	return &clone
}

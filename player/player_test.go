package player

import (
	"testing"

	"github.com/korjavin/blokus-engine/board"
	"github.com/korjavin/blokus-engine/catalog"
)

func TestNewPlayerHasFullCatalog(t *testing.T) {
	p := New(1, "Alice", "red", false, "")
	if len(p.Remaining) != 21 {
		t.Fatalf("expected 21 remaining pieces, got %d", len(p.Remaining))
	}
	if err := p.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants: %v", err)
	}
}

func TestTakePieceMovesRemainingToPlaced(t *testing.T) {
	p := New(1, "Alice", "red", false, "")
	orientation := catalog.Orientations(catalog.I1)[0]
	if err := p.TakePiece(catalog.I1, orientation, board.Point{Row: 0, Col: 0}); err != nil {
		t.Fatalf("TakePiece: %v", err)
	}
	if p.Remaining[catalog.I1] {
		t.Fatal("I1 should no longer be remaining")
	}
	if len(p.Placed) != 1 {
		t.Fatalf("expected 1 placed piece, got %d", len(p.Placed))
	}
	if err := p.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants after take: %v", err)
	}
}

func TestOriginCorners(t *testing.T) {
	cases := map[int]board.Point{
		1: {Row: 0, Col: 0},
		2: {Row: 0, Col: 19},
		3: {Row: 19, Col: 19},
		4: {Row: 19, Col: 0},
	}
	for id, want := range cases {
		if got := OriginCorner(id); got != want {
			t.Errorf("OriginCorner(%d) = %v, want %v", id, got, want)
		}
	}
}

func TestRemainingSquareCountAfterFirstMove(t *testing.T) {
	p := New(1, "Alice", "red", false, "")
	orientation := catalog.Orientations(catalog.I1)[0]
	_ = p.TakePiece(catalog.I1, orientation, board.Point{Row: 0, Col: 0})
	if got := p.RemainingSquareCount(); got != 88 {
		t.Errorf("RemainingSquareCount() = %d, want 88", got)
	}
	if got := p.PlacedSquareCount(); got != 1 {
		t.Errorf("PlacedSquareCount() = %d, want 1", got)
	}
}

package board

import "testing"

func TestPlaceAndOwner(t *testing.T) {
	b := New()
	if !b.IsEmpty(0, 0) {
		t.Fatal("expected (0,0) empty on new board")
	}
	err := b.Place(1, []Point{{0, 0}, {0, 1}})
	if err != nil {
		t.Fatalf("Place returned error: %v", err)
	}
	if b.Owner(0, 0) != 1 || b.Owner(0, 1) != 1 {
		t.Fatalf("owner mismatch after place")
	}
	if b.IsEmpty(0, 0) {
		t.Fatal("expected (0,0) non-empty after place")
	}
}

func TestPlaceOverlapIsInvariantViolation(t *testing.T) {
	b := New()
	if err := b.Place(1, []Point{{5, 5}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := b.Place(2, []Point{{5, 5}})
	if err == nil {
		t.Fatal("expected InvariantViolation on overlap, got nil")
	}
	if _, ok := err.(*InvariantViolation); !ok {
		t.Fatalf("expected *InvariantViolation, got %T", err)
	}
}

func TestPlaceOutOfBounds(t *testing.T) {
	b := New()
	err := b.Place(1, []Point{{20, 0}})
	if err == nil {
		t.Fatal("expected InvariantViolation for out-of-bounds place")
	}
}

func TestNeighborsEdgeVsCorner(t *testing.T) {
	edges := Neighbors(5, 5, Edge)
	if len(edges) != 4 {
		t.Errorf("expected 4 edge neighbors for interior cell, got %d", len(edges))
	}
	corners := Neighbors(5, 5, Corner)
	if len(corners) != 4 {
		t.Errorf("expected 4 corner neighbors for interior cell, got %d", len(corners))
	}
	cornerEdges := Neighbors(0, 0, Edge)
	if len(cornerEdges) != 2 {
		t.Errorf("expected 2 edge neighbors for board corner, got %d", len(cornerEdges))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New()
	_ = b.Place(1, []Point{{0, 0}})
	clone := b.Clone()
	_ = clone.Place(2, []Point{{0, 1}})
	if !b.IsEmpty(0, 1) {
		t.Fatal("mutating clone affected original board")
	}
	if clone.Owner(0, 0) != 1 {
		t.Fatal("clone did not inherit original board's placements")
	}
}

func TestHashChangesOnPlace(t *testing.T) {
	b := New()
	h0 := b.Hash()
	_ = b.Place(1, []Point{{3, 3}})
	if b.Hash() == h0 {
		t.Fatal("expected hash to change after placement")
	}
}

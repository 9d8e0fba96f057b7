package engine

import (
	"testing"
	"time"

	"github.com/korjavin/blokus-engine/game"
	"github.com/korjavin/blokus-engine/rules"
)

func newHumanFacade(t *testing.T) *Facade {
	t.Helper()
	f, err := NewGame(Config{
		Seats: []SeatConfig{
			{Name: "P1", Color: "red"},
			{Name: "P2", Color: "blue"},
		},
		Seed: 1,
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if _, err := f.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return f
}

func firstLegalMove(t *testing.T, f *Facade, playerID int) rules.Move {
	t.Helper()
	for m := range f.LegalMoves(playerID) {
		return m
	}
	t.Fatalf("no legal move found for player %d on a fresh board", playerID)
	return rules.Move{}
}

func TestApplyRoundTrip(t *testing.T) {
	f := newHumanFacade(t)
	defer f.Close()

	move := firstLegalMove(t, f, 1)
	snap, verr, err := f.Apply(1, move.PieceID, move.Orientation, move.Anchor)
	if verr != nil {
		t.Fatalf("Apply returned validation error: %v", verr)
	}
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if snap.CurrentPlayer != 2 {
		t.Errorf("CurrentPlayer = %d, want 2 after player 1's move", snap.CurrentPlayer)
	}
	if len(snap.Players[0].Placed) != 1 {
		t.Errorf("player 1 placed count = %d, want 1", len(snap.Players[0].Placed))
	}

	events := f.Events()
	var sawAttempted, sawApplied, sawAdvanced bool
	for _, e := range events {
		switch e.Kind {
		case PlacementAttempted:
			if !e.Ok {
				t.Errorf("PlacementAttempted event reports failure for a legal move: %+v", e)
			}
			sawAttempted = true
		case PlacementApplied:
			sawApplied = true
		case TurnAdvanced:
			sawAdvanced = true
		}
	}
	if !sawAttempted || !sawApplied || !sawAdvanced {
		t.Errorf("missing expected events: attempted=%v applied=%v advanced=%v", sawAttempted, sawApplied, sawAdvanced)
	}
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	f := newHumanFacade(t)
	defer f.Close()

	move := firstLegalMove(t, f, 1)
	if _, verr, err := f.Apply(1, move.PieceID, move.Orientation, move.Anchor); verr != nil || err != nil {
		t.Fatalf("Apply for player 1: verr=%v err=%v", verr, err)
	}
	// On player 2's turn, the same placement overlaps player 1's cells
	// (and misses player 2's origin corner), so it is illegal.
	_, verr, err := f.Apply(2, move.PieceID, move.Orientation, move.Anchor)
	if err != nil {
		t.Fatalf("Apply returned unexpected fatal error: %v", err)
	}
	if verr == nil {
		t.Fatalf("expected a validation error applying player 1's move for player 2")
	}
}

func TestPassTurnRoundTrip(t *testing.T) {
	f := newHumanFacade(t)
	defer f.Close()

	snap, err := f.PassTurn(1)
	if err != nil {
		t.Fatalf("PassTurn: %v", err)
	}
	if !snap.Players[0].HasPassed {
		t.Errorf("player 1 should be marked as passed")
	}
	if snap.CurrentPlayer != 2 {
		t.Errorf("CurrentPlayer = %d, want 2 after player 1 passes", snap.CurrentPlayer)
	}

	var sawPassed, sawAdvanced bool
	for _, e := range f.Events() {
		switch e.Kind {
		case PlayerPassed:
			sawPassed = true
		case TurnAdvanced:
			sawAdvanced = true
		}
	}
	if !sawPassed || !sawAdvanced {
		t.Errorf("missing expected events: passed=%v advanced=%v", sawPassed, sawAdvanced)
	}
}

func TestRequestAIMoveRoundTrip(t *testing.T) {
	f, err := NewGame(Config{
		Seats: []SeatConfig{
			{Name: "Bot", Color: "red", IsAI: true, Strategy: "easy"},
			{Name: "P2", Color: "blue"},
		},
		Seed: 7,
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	defer f.Close()
	if _, err := f.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	move, snap, err := f.RequestAIMove(time.Now().Add(3 * time.Second))
	if err != nil {
		t.Fatalf("RequestAIMove: %v", err)
	}
	if move.Pass {
		t.Fatalf("easy strategy passed on a fresh board, expected a legal move")
	}
	if len(snap.Players[0].Placed) != 1 {
		t.Errorf("AI player placed count = %d, want 1", len(snap.Players[0].Placed))
	}

	var sawStart, sawEnd bool
	for _, e := range f.Events() {
		if e.Kind == AIThinkingStarted && e.PlayerID == 1 {
			sawStart = true
		}
		if e.Kind == AIThinkingEnded && e.PlayerID == 1 {
			sawEnd = true
		}
	}
	if !sawStart || !sawEnd {
		t.Errorf("missing AI thinking events: start=%v end=%v", sawStart, sawEnd)
	}
}

func TestEventsAreSequencedInOrder(t *testing.T) {
	f := newHumanFacade(t)
	defer f.Close()

	move := firstLegalMove(t, f, 1)
	if _, verr, err := f.Apply(1, move.PieceID, move.Orientation, move.Anchor); verr != nil || err != nil {
		t.Fatalf("Apply: verr=%v err=%v", verr, err)
	}
	if _, err := f.PassTurn(2); err != nil {
		t.Fatalf("PassTurn: %v", err)
	}

	events := f.Events()
	if len(events) < 2 {
		t.Fatalf("expected at least 2 events, got %d", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Sequence <= events[i-1].Sequence {
			t.Errorf("event %d sequence %d is not strictly greater than event %d sequence %d",
				i, events[i].Sequence, i-1, events[i-1].Sequence)
		}
	}
}

// panickyStrategy simulates a broken AI strategy to exercise the facade's
// panic-to-pass fallback.
type panickyStrategy struct{}

func (panickyStrategy) Name() string { return "panicky" }

func (panickyStrategy) Choose(s *game.State, playerID int, deadline time.Time) rules.Move {
	panic("panickyStrategy always panics")
}

func TestRequestAIMoveFallsBackToPassOnPanic(t *testing.T) {
	f, err := NewGame(Config{
		Seats: []SeatConfig{
			{Name: "Bot", Color: "red", IsAI: true, Strategy: "easy"},
			{Name: "P2", Color: "blue"},
		},
		Seed: 3,
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	defer f.Close()
	if _, err := f.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	f.strategies[1] = panickyStrategy{}

	move, snap, err := f.RequestAIMove(time.Now().Add(3 * time.Second))
	if err != nil {
		t.Fatalf("RequestAIMove: %v", err)
	}
	if !move.Pass {
		t.Errorf("expected a pass move after the strategy panicked, got %+v", move)
	}
	if !snap.Players[0].HasPassed {
		t.Errorf("player 1 should be marked as passed after the panic fallback")
	}

	var sawStart, sawEnd, sawPassed bool
	for _, e := range f.Events() {
		switch {
		case e.Kind == AIThinkingStarted && e.PlayerID == 1:
			sawStart = true
		case e.Kind == AIThinkingEnded && e.PlayerID == 1:
			sawEnd = true
		case e.Kind == PlayerPassed && e.PlayerID == 1:
			sawPassed = true
		}
	}
	if !sawStart || !sawEnd || !sawPassed {
		t.Errorf("missing expected events: start=%v end=%v passed=%v", sawStart, sawEnd, sawPassed)
	}
}

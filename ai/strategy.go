// Package ai implements the Easy/Medium/Hard move-selection strategies
// described in spec.md §4.7, all built on top of rules.EnumerateLegalMoves.
package ai

import (
	"time"

	"github.com/korjavin/blokus-engine/game"
	"github.com/korjavin/blokus-engine/rules"
)

// Strategy is the polymorphic move chooser every AI seat implements.
// Choose must never return an illegal move, must respect deadline (a
// wall-clock deadline, not a duration), and returns Pass if no legal
// move exists. If the deadline has already expired when Choose is
// called, it returns fallbackMove's result instead of searching.
type Strategy interface {
	Name() string
	Choose(s *game.State, playerID int, deadline time.Time) rules.Move
}

// fallbackMove implements the failure/fallback ladder common to all
// three strategies (spec.md §4.7): first legal move from the enumerator,
// or Pass if the enumerator is empty. Each strategy uses it when its
// deadline has already expired on entry to Choose.
func fallbackMove(s *game.State, playerID int) rules.Move {
	p := s.PlayerByID(playerID)
	moves := rules.EnumerateLegalMoves(s.Board, p, &rules.Filter{MaxMoves: 1})
	if len(moves) == 0 {
		return rules.PassMove(playerID)
	}
	return moves[0]
}

// deadlineExpired is a tiny helper kept as its own function so every call
// site reads identically; strategies are required to check it at least
// once per evaluated candidate (spec.md §5).
func deadlineExpired(deadline time.Time) bool {
	return !time.Now().Before(deadline)
}

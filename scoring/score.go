// Package scoring computes per-player score breakdowns and detects the
// end-of-game condition, per spec.md §4.6.
package scoring

import (
	"github.com/korjavin/blokus-engine/catalog"
	"github.com/korjavin/blokus-engine/player"
)

// Breakdown is the structured score record exposed for UI display and
// tests (spec.md §4.6).
type Breakdown struct {
	PlacedSquares   int
	RemainingSquares int
	Base            int
	Bonus           int
	FinalScore      int
}

// allPiecesBonus is awarded when a player has placed every one of the 21
// pieces.
const allPiecesBonus = 15

// lastPieceI1Bonus is awarded in addition to allPiecesBonus when the last
// piece placed was the 1-cell piece. This module implements BOTH
// documented scoring variants together (see SPEC_FULL.md §4.6 / DESIGN.md
// open-question decisions), rather than picking only the simpler +15 rule.
const lastPieceI1Bonus = 5

// Compute returns p's current score breakdown. Scores are always derived
// from state, never stored independently (spec.md §3).
func Compute(p *player.Player) Breakdown {
	placed := p.PlacedSquareCount()
	remaining := p.RemainingSquareCount()
	base := placed - remaining

	bonus := 0
	allPlaced := len(p.Remaining) == 0
	if allPlaced {
		bonus += allPiecesBonus
		if n := len(p.Placed); n > 0 && p.Placed[n-1].PieceID == catalog.I1 {
			bonus += lastPieceI1Bonus
		}
	}

	return Breakdown{
		PlacedSquares:    placed,
		RemainingSquares: remaining,
		Base:             base,
		Bonus:            bonus,
		FinalScore:       base + bonus,
	}
}

package scoring

import (
	"github.com/korjavin/blokus-engine/board"
	"github.com/korjavin/blokus-engine/player"
	"github.com/korjavin/blokus-engine/rules"
)

// EndConditionHolds checks EG1/EG2/EG3 from spec.md §4.6. EG3 is implied
// by EG2 whenever remaining counts are zero, so it is checked first as a
// cheap special case before falling back to the validator.
func EndConditionHolds(b *board.Board, players []*player.Player) bool {
	allPassed := true
	allEmpty := true
	for _, p := range players {
		if !p.HasPassed {
			allPassed = false
		}
		if len(p.Remaining) != 0 {
			allEmpty = false
		}
	}
	if allPassed || allEmpty {
		return true
	}

	for _, p := range players {
		if !p.HasPassed && rules.HasAnyLegalMove(b, p) {
			return false
		}
	}
	return true
}

// Winners returns the ids of the player(s) with the maximum final score,
// computing breakdowns fresh from state.
func Winners(players []*player.Player) []int {
	if len(players) == 0 {
		return nil
	}
	best := Compute(players[0]).FinalScore
	for _, p := range players[1:] {
		if s := Compute(p).FinalScore; s > best {
			best = s
		}
	}
	var winners []int
	for _, p := range players {
		if Compute(p).FinalScore == best {
			winners = append(winners, p.ID)
		}
	}
	return winners
}

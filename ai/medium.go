package ai

import (
	"time"

	"github.com/korjavin/blokus-engine/board"
	"github.com/korjavin/blokus-engine/catalog"
	"github.com/korjavin/blokus-engine/game"
	"github.com/korjavin/blokus-engine/rules"
)

// MediumTimeBudget is Medium's nominal wall-clock budget (spec.md §4.7).
const MediumTimeBudget = 5 * time.Second

// mediumCandidateCap is Medium's candidate cap, and it is unbounded:
// unlike Easy's hard K1 cap, Medium considers the whole legal set to
// find the true argmax.
const mediumCandidateCap = 0 // 0 = unbounded, per EnumerateLegalMoves contract

// MediumWeights is the weighted-sum scorer's factor set, grounded on
// other_examples' virusbot EvaluationFactors/DefaultFactors pattern.
type MediumWeights struct {
	OwnCornerTouches   float64 // w1: own diagonal contacts created
	PieceSize          float64 // w2: prefer large pieces
	DistanceFromEdge   float64 // w3: prefer expansion outward
	OpponentCornersBlocked float64 // w4 (applied as a negative term)
}

// DefaultMediumWeights are spec.md §4.7's defaults: w1=10, w2=2, w3=1, w4=3.
func DefaultMediumWeights() MediumWeights {
	return MediumWeights{
		OwnCornerTouches:       10,
		PieceSize:              2,
		DistanceFromEdge:       1,
		OpponentCornersBlocked: 3,
	}
}

// MediumStrategy scores every legal move as a weighted sum and picks the
// argmax, breaking ties by the validator's deterministic iterator order.
type MediumStrategy struct {
	weights MediumWeights
}

// NewMediumStrategy builds a Medium strategy with the given weights.
func NewMediumStrategy(weights MediumWeights) *MediumStrategy {
	return &MediumStrategy{weights: weights}
}

func (m *MediumStrategy) Name() string { return "medium" }

func (m *MediumStrategy) Choose(s *game.State, playerID int, deadline time.Time) rules.Move {
	if deadlineExpired(deadline) {
		return fallbackMove(s, playerID)
	}

	p := s.PlayerByID(playerID)
	moves := rules.EnumerateLegalMoves(s.Board, p, nil)
	if len(moves) == 0 {
		return rules.PassMove(playerID)
	}

	bestIdx := 0
	bestScore := m.score(s, playerID, moves[0])
	for i := 1; i < len(moves); i++ {
		if deadlineExpired(deadline) {
			break
		}
		if sc := m.score(s, playerID, moves[i]); sc > bestScore {
			bestScore = sc
			bestIdx = i
		}
	}
	return moves[bestIdx]
}

// score implements the weighted sum from spec.md §4.7.
func (m *MediumStrategy) score(s *game.State, playerID int, move rules.Move) float64 {
	cells := move.Cells()

	ownTouches := countOwnCornerTouches(s.Board, playerID, cells)
	size := float64(catalog.SquareCount(move.PieceID))
	edgeDist := minDistanceToEdge(cells)
	blocked := countOpponentCornerContactsBlocked(s.Board, playerID, cells)

	return m.weights.OwnCornerTouches*float64(ownTouches) +
		m.weights.PieceSize*size +
		m.weights.DistanceFromEdge*float64(edgeDist) -
		m.weights.OpponentCornersBlocked*float64(blocked)
}

func countOwnCornerTouches(b *board.Board, playerID int, cells []board.Point) int {
	count := 0
	for _, c := range cells {
		for _, n := range board.Neighbors(c.Row, c.Col, board.Corner) {
			if b.Owner(n.Row, n.Col) == playerID {
				count++
			}
		}
	}
	return count
}

// minDistanceToEdge returns the smallest distance any of cells has to the
// nearest board edge; larger values mean the move expands toward open
// territory rather than hugging the border.
func minDistanceToEdge(cells []board.Point) int {
	best := board.Size
	for _, c := range cells {
		d := c.Row
		if v := board.Size - 1 - c.Row; v < d {
			d = v
		}
		if v := c.Col; v < d {
			d = v
		}
		if v := board.Size - 1 - c.Col; v < d {
			d = v
		}
		if d < best {
			best = d
		}
	}
	return best
}

// countOpponentCornerContactsBlocked counts, for each of this move's
// cells, its edge neighbors owned by opponents -- an approximation of how many opponent expansion corners this placement
// crowds out, per spec.md §4.7's "mild blocking" term.
func countOpponentCornerContactsBlocked(b *board.Board, playerID int, cells []board.Point) int {
	count := 0
	for _, c := range cells {
		for _, n := range board.Neighbors(c.Row, c.Col, board.Edge) {
			owner := b.Owner(n.Row, n.Col)
			if owner != 0 && owner != playerID {
				count++
			}
		}
	}
	return count
}

package ai

import (
	"time"

	"github.com/korjavin/blokus-engine/board"
	"github.com/korjavin/blokus-engine/game"
	"github.com/korjavin/blokus-engine/player"
	"github.com/korjavin/blokus-engine/rules"
)

// HardTimeBudget is Hard's nominal wall-clock budget (spec.md §4.7).
const HardTimeBudget = 8 * time.Second

// hardMobilitySamples bounds the under-approximated mobility count
// (spec.md §4.7's M≈50).
const hardMobilitySamples = 50

// HardWeights are the position-evaluation coefficients from spec.md
// §4.7: E = α·area(p) − β·Σarea(opp) + γ·mobility(p) − δ·Σmobility(opp) + ε·cornerPotential(p).
type HardWeights struct {
	Area            float64
	OpponentArea    float64
	Mobility        float64
	OpponentMobility float64
	CornerPotential float64
}

// DefaultHardWeights are spec.md's defaults: α=1, β=0.6, γ=0.5, δ=0.3, ε=2.
func DefaultHardWeights() HardWeights {
	return HardWeights{
		Area:             1,
		OpponentArea:     0.6,
		Mobility:         0.5,
		OpponentMobility: 0.3,
		CornerPotential:  2,
	}
}

// HardStrategy performs single-ply (optionally iterative-deepened 2-ply
// best-reply) simulation of every candidate move, grounded on the
// teacher's minimax + TranspositionTable + Zobrist-hash pattern
// (backend/bot.go, backend/cmd/bot-hoster/ai_engine.go).
type HardStrategy struct {
	weights HardWeights
	// tt caches position evaluations keyed by Zobrist hash so a position
	// reached via two different move orders (within one Choose call, or
	// across the strategy's later turns) is evaluated only once.
	tt *TranspositionTable
	// TwoPly enables the optional 2-ply best-reply extension described
	// in spec.md §4.7; this implementation turns it on by default per
	// the §9 open-question decision recorded in DESIGN.md.
	TwoPly bool
}

// NewHardStrategy builds a Hard strategy with the given weights and a
// fresh transposition table.
func NewHardStrategy(weights HardWeights) *HardStrategy {
	return &HardStrategy{weights: weights, tt: NewTranspositionTable(), TwoPly: true}
}

func (h *HardStrategy) Name() string { return "hard" }

func (h *HardStrategy) Choose(s *game.State, playerID int, deadline time.Time) rules.Move {
	if deadlineExpired(deadline) {
		return fallbackMove(s, playerID)
	}

	p := s.PlayerByID(playerID)
	moves := rules.EnumerateLegalMoves(s.Board, p, nil)
	if len(moves) == 0 {
		return rules.PassMove(playerID)
	}

	// 1-ply pass: complete fully before ever attempting 2-ply, per the
	// iterative-deepening contract in spec.md §4.7.
	best1, scores1 := h.evaluateOnePly(s, playerID, moves, deadline)

	if !h.TwoPly {
		return best1
	}
	if deadlineExpired(deadline) {
		return best1
	}

	best2, ok := h.evaluateTwoPly(s, playerID, moves, scores1, deadline)
	if !ok {
		return best1
	}
	return best2
}

// evaluateOnePly applies each candidate move on a cheap clone, evaluates
// the resulting position, and returns the argmax plus each move's score
// (used as a seed ordering for the 2-ply pass).
func (h *HardStrategy) evaluateOnePly(s *game.State, playerID int, moves []rules.Move, deadline time.Time) (rules.Move, []float64) {
	scores := make([]float64, len(moves))
	bestIdx := 0
	bestScore := -1e18
	for i, m := range moves {
		if deadlineExpired(deadline) {
			// Fill remaining scores with a sentinel that sorts them last
			// in the 2-ply ordering; the 1-ply result found so far is
			// still a fully legal move.
			for j := i; j < len(moves); j++ {
				scores[j] = -1e18
			}
			break
		}
		clone := s.Clone()
		_, _ = clone.ApplyMove(playerID, m.PieceID, m.Orientation, m.Anchor)
		sc := h.evaluate(clone, playerID)
		scores[i] = sc
		if sc > bestScore {
			bestScore = sc
			bestIdx = i
		}
	}
	return moves[bestIdx], scores
}

// evaluateTwoPly re-ranks candidates by their worst-case (best-reply)
// outcome: for each of our candidate moves, find the opponent's best
// reply, and prefer the move that leaves us best off afterward. If the
// deadline passes before every candidate is done, it reports no result
// (ok=false), so Choose returns the complete 1-ply result instead, per
// the iterative-deepening contract.
func (h *HardStrategy) evaluateTwoPly(s *game.State, playerID int, moves []rules.Move, oneplyScores []float64, deadline time.Time) (rules.Move, bool) {
	type scored struct {
		idx   int
		score float64
	}
	order := make([]scored, len(moves))
	for i := range moves {
		order[i] = scored{idx: i, score: oneplyScores[i]}
	}
	// Simple insertion sort by descending 1-ply score: candidates are
	// examined most promising first, so among equal 2-ply scores the one
	// with the better 1-ply score wins.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && order[j].score > order[j-1].score; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	haveResult := false
	bestScore := -1e18
	bestIdx := 0

	for _, entry := range order {
		if deadlineExpired(deadline) {
			return rules.Move{}, false
		}
		m := moves[entry.idx]
		clone := s.Clone()
		_, _ = clone.ApplyMove(playerID, m.PieceID, m.Orientation, m.Anchor)
		key := clone.Board.Hash()

		var worstReply float64
		if cached, ok := h.tt.Get(key); ok && cached.Depth >= 2 {
			worstReply = cached.Score
		} else {
			worstReply = h.bestOpponentReply(clone, playerID, deadline)
			if deadlineExpired(deadline) {
				// The reply search may have been cut short; discard it.
				return rules.Move{}, false
			}
			h.tt.Put(key, TranspositionEntry{Score: worstReply, Depth: 2, Flag: exactScore})
		}

		if worstReply > bestScore {
			bestScore = worstReply
			bestIdx = entry.idx
			haveResult = true
		}
	}

	if !haveResult {
		return rules.Move{}, false
	}
	return moves[bestIdx], true
}

// bestOpponentReply evaluates the position from playerID's perspective
// after the strongest of the first hardMobilitySamples replies by
// whichever opponent is next to move (an under-approximation: only the
// immediate next mover is considered, matching spec.md's "2-ply
// best-reply" wording).
func (h *HardStrategy) bestOpponentReply(s *game.State, playerID int, deadline time.Time) float64 {
	if s.Phase != game.Playing {
		return h.evaluate(s, playerID)
	}
	opponent := s.CurrentPlayer()
	if opponent.ID == playerID {
		return h.evaluate(s, playerID)
	}

	replies := rules.EnumerateLegalMoves(s.Board, opponent, &rules.Filter{MaxMoves: hardMobilitySamples})
	if len(replies) == 0 {
		return h.evaluate(s, playerID)
	}

	worst := 1e18
	for _, r := range replies {
		if deadlineExpired(deadline) {
			break
		}
		clone := s.Clone()
		_, _ = clone.ApplyMove(opponent.ID, r.PieceID, r.Orientation, r.Anchor)
		key := clone.Board.Hash()

		var sc float64
		if cached, ok := h.tt.Get(key); ok && cached.Depth >= 1 {
			sc = cached.Score
		} else {
			sc = h.evaluate(clone, playerID)
			h.tt.Put(key, TranspositionEntry{Score: sc, Depth: 1, Flag: exactScore})
		}
		if sc < worst {
			worst = sc
		}
	}
	if worst == 1e18 {
		return h.evaluate(s, playerID)
	}
	return worst
}

// evaluate computes E(state, playerID) from spec.md §4.7.
func (h *HardStrategy) evaluate(s *game.State, playerID int) float64 {
	var opponentArea, opponentMobility float64
	var ownArea, ownMobility, cornerPotential float64

	for _, p := range s.Players {
		area := float64(p.PlacedSquareCount())
		mobility := float64(approximateMobility(s.Board, p))
		if p.ID == playerID {
			ownArea = area
			ownMobility = mobility
			cornerPotential = float64(countOwnEmptyCorners(s.Board, p))
		} else {
			opponentArea += area
			opponentMobility += mobility
		}
	}

	return h.weights.Area*ownArea -
		h.weights.OpponentArea*opponentArea +
		h.weights.Mobility*ownMobility -
		h.weights.OpponentMobility*opponentMobility +
		h.weights.CornerPotential*cornerPotential
}

// approximateMobility under-approximates legal-move count by sampling up
// to hardMobilitySamples candidate piece/orientation pairs, per spec.md
// §4.7.
func approximateMobility(b *board.Board, p *player.Player) int {
	moves := rules.EnumerateLegalMoves(b, p, &rules.Filter{MaxMoves: hardMobilitySamples})
	return len(moves)
}

// countOwnEmptyCorners counts p's currently-empty diagonal cells, i.e.
// potential future corner-connection points.
func countOwnEmptyCorners(b *board.Board, p *player.Player) int {
	count := 0
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if b.Owner(r, c) != p.ID {
				continue
			}
			for _, n := range board.Neighbors(r, c, board.Corner) {
				if b.IsEmpty(n.Row, n.Col) {
					count++
				}
			}
		}
	}
	return count
}

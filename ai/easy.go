package ai

import (
	"math/rand"
	"sync"
	"time"

	"github.com/korjavin/blokus-engine/game"
	"github.com/korjavin/blokus-engine/rules"
)

// easyCandidateCap bounds the work Easy does enumerating moves (spec.md
// §4.7's K1≈200).
const easyCandidateCap = 200

// EasyTimeBudget is Easy's nominal time budget; callers typically derive
// their deadline from this rather than using it directly.
const EasyTimeBudget = 3 * time.Second

// EasyStrategy uniformly samples among up to easyCandidateCap legal
// moves. It is deterministic given an identical state and rng seed
// (spec.md §4.7, §8), with randomness confined here and to strict
// tie-breaks elsewhere.
type EasyStrategy struct {
	rng *rand.Rand

	mu          sync.Mutex
	cacheHash   uint64
	cachePlayer int
	cacheMoves  []rules.Move
	cacheValid  bool
}

// NewEasyStrategy seeds the strategy's PRNG from seed, matching
// spec.md §6's BLOKUS_SEED reproducibility contract.
func NewEasyStrategy(seed int64) *EasyStrategy {
	return &EasyStrategy{rng: rand.New(rand.NewSource(seed))}
}

func (e *EasyStrategy) Name() string { return "easy" }

func (e *EasyStrategy) Choose(s *game.State, playerID int, deadline time.Time) rules.Move {
	if deadlineExpired(deadline) {
		return fallbackMove(s, playerID)
	}

	moves := e.candidateMoves(s, playerID)
	if len(moves) == 0 {
		return rules.PassMove(playerID)
	}
	idx := e.rng.Intn(len(moves))
	return moves[idx]
}

// candidateMoves caches the last board-fingerprint -> candidate-list
// mapping so repeat calls on an unchanged board skip re-enumeration
// (spec.md §4.7).
func (e *EasyStrategy) candidateMoves(s *game.State, playerID int) []rules.Move {
	hash := s.Board.Hash()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cacheValid && e.cacheHash == hash && e.cachePlayer == playerID {
		return e.cacheMoves
	}

	p := s.PlayerByID(playerID)
	moves := rules.EnumerateLegalMoves(s.Board, p, &rules.Filter{MaxMoves: easyCandidateCap})

	e.cacheHash = hash
	e.cachePlayer = playerID
	e.cacheMoves = moves
	e.cacheValid = true
	return moves
}

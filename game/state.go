// Package game implements the phase machine, turn order, and move
// application at the heart of a Blokus match (spec.md §4.5).
package game

import (
	"fmt"

	"github.com/korjavin/blokus-engine/board"
	"github.com/korjavin/blokus-engine/catalog"
	"github.com/korjavin/blokus-engine/player"
	"github.com/korjavin/blokus-engine/rules"
	"github.com/korjavin/blokus-engine/scoring"
)

// Phase is one of the three game-lifecycle states.
type Phase int

const (
	Setup Phase = iota
	Playing
	Ended
)

func (ph Phase) String() string {
	switch ph {
	case Setup:
		return "setup"
	case Playing:
		return "playing"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// HistoryEntry records one applied move (or pass) in order.
type HistoryEntry struct {
	Move rules.Move
}

// IllegalOperation signals the wrong API was invoked for the current
// phase or player (spec.md §7); it is a programmer error, never a game
// rule violation.
type IllegalOperation struct {
	Reason string
}

func (e *IllegalOperation) Error() string {
	return fmt.Sprintf("illegal operation: %s", e.Reason)
}

// State is the full mutable game state: board, players, turn order,
// phase, history, and winner set once ended.
type State struct {
	Board        *board.Board
	Players      []*player.Player
	CurrentIndex int
	Phase        Phase
	History      []HistoryEntry
	ConsecutivePasses int
	WinnerIDs    []int
}

// New constructs a game in the setup phase for the given player configs.
// names/colors/isAI/strategyNames must all have the same length, 2-4.
func New(names, colors []string, isAI []bool, strategyNames []string) (*State, error) {
	n := len(names)
	if n < 2 || n > 4 {
		return nil, fmt.Errorf("game: player count must be 2-4, got %d", n)
	}
	players := make([]*player.Player, n)
	for i := 0; i < n; i++ {
		players[i] = player.New(i+1, names[i], colors[i], isAI[i], strategyNames[i])
	}
	return &State{
		Board:   board.New(),
		Players: players,
		Phase:   Setup,
	}, nil
}

// Start transitions setup -> playing. Requires 2-4 populated players,
// which New already guarantees, so Start only checks the phase.
func (s *State) Start() error {
	if s.Phase != Setup {
		return &IllegalOperation{Reason: fmt.Sprintf("Start called in phase %s, want setup", s.Phase)}
	}
	s.Phase = Playing
	return nil
}

// CurrentPlayer returns the player whose turn it is.
func (s *State) CurrentPlayer() *player.Player {
	return s.Players[s.CurrentIndex]
}

// PlayerByID returns the player with the given id, or nil.
func (s *State) PlayerByID(id int) *player.Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// nextTurn advances CurrentIndex to the next player who has not passed.
// If every player has passed, CurrentIndex is left unchanged; the
// caller's end-condition check that follows then ends the game.
func (s *State) nextTurn() {
	n := len(s.Players)
	for i := 1; i <= n; i++ {
		idx := (s.CurrentIndex + i) % n
		if !s.Players[idx].HasPassed {
			s.CurrentIndex = idx
			return
		}
	}
}

func (s *State) reevaluateEndCondition() {
	if scoring.EndConditionHolds(s.Board, s.Players) {
		s.Phase = Ended
		s.WinnerIDs = scoring.Winners(s.Players)
	}
}

// ApplyPass records playerID's pass. Sticky per spec.md §9.
func (s *State) ApplyPass(playerID int) error {
	if err := s.assertCanMove(playerID); err != nil {
		return err
	}
	p := s.PlayerByID(playerID)
	p.MarkPassed()
	s.ConsecutivePasses++
	s.History = append(s.History, HistoryEntry{Move: rules.PassMove(playerID)})
	s.nextTurn()
	s.reevaluateEndCondition()
	return nil
}

// ApplyMove validates and applies a placement for playerID. On a
// ValidationError, state is left entirely unchanged (move application is
// transactional at move granularity, spec.md §7).
func (s *State) ApplyMove(playerID int, pieceID catalog.PieceID, orientation catalog.Orientation, anchor board.Point) (*rules.ValidationError, error) {
	if err := s.assertCanMove(playerID); err != nil {
		return nil, err
	}
	p := s.PlayerByID(playerID)

	if verr := rules.Validate(s.Board, p, pieceID, orientation, anchor); verr != nil {
		return verr, nil
	}
	if !p.Remaining[pieceID] {
		return nil, &IllegalOperation{Reason: fmt.Sprintf("player %d has no remaining piece %s", playerID, pieceID)}
	}

	cells := catalog.PlaceCells(orientation, anchor.Row, anchor.Col)
	absCells := make([]board.Point, len(cells))
	for i, c := range cells {
		absCells[i] = board.Point{Row: c.Row, Col: c.Col}
	}
	if err := s.Board.Place(playerID, absCells); err != nil {
		return nil, err // InvariantViolation: fatal, per spec.md §7.
	}
	if err := p.TakePiece(pieceID, orientation, anchor); err != nil {
		return nil, err
	}
	p.HasFirstMove = true
	s.ConsecutivePasses = 0
	s.History = append(s.History, HistoryEntry{Move: rules.Move{
		PlayerID: playerID, PieceID: pieceID, Orientation: orientation, Anchor: anchor,
	}})
	s.nextTurn()
	s.reevaluateEndCondition()
	return nil, nil
}

// Clone returns a deep copy of s cheap enough for AI single- and 2-ply
// simulation: board + player state only, no history (spec.md §9 design
// note on avoiding deep-copied history for simulation).
func (s *State) Clone() *State {
	players := make([]*player.Player, len(s.Players))
	for i, p := range s.Players {
		players[i] = p.Clone()
	}
	return &State{
		Board:             s.Board.Clone(),
		Players:           players,
		CurrentIndex:      s.CurrentIndex,
		Phase:             s.Phase,
		ConsecutivePasses: s.ConsecutivePasses,
		WinnerIDs:         append([]int(nil), s.WinnerIDs...),
	}
}

func (s *State) assertCanMove(playerID int) error {
	if s.Phase != Playing {
		return &IllegalOperation{Reason: fmt.Sprintf("move attempted in phase %s, want playing", s.Phase)}
	}
	if s.CurrentPlayer().ID != playerID {
		return &IllegalOperation{Reason: fmt.Sprintf("it is player %d's turn, not player %d", s.CurrentPlayer().ID, playerID)}
	}
	return nil
}

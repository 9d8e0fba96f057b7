package engine

import (
	"github.com/korjavin/blokus-engine/board"
	"github.com/korjavin/blokus-engine/catalog"
	"github.com/korjavin/blokus-engine/game"
	"github.com/korjavin/blokus-engine/player"
	"github.com/korjavin/blokus-engine/scoring"
)

// PlacedPieceView is one placed piece in the snapshot wire format.
type PlacedPieceView struct {
	PieceID  string `json:"piece_id"`
	Rotation int    `json:"rotation"`
	Flipped  bool   `json:"flipped"`
	AnchorR  int    `json:"anchor_r"`
	AnchorC  int    `json:"anchor_c"`
}

// PlayerView is one player's read-only snapshot (spec.md §6).
type PlayerView struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Color           string            `json:"color"`
	Origin          [2]int            `json:"origin"`
	Score           int               `json:"score"`
	Breakdown       scoring.Breakdown `json:"breakdown"`
	HasPassed       bool              `json:"has_passed"`
	HasMadeFirstMove bool             `json:"has_made_first_move"`
	Remaining       []string          `json:"remaining"`
	Placed          []PlacedPieceView `json:"placed"`
}

// Snapshot is the full read-only state view (spec.md §6 wire format).
type Snapshot struct {
	Phase         string       `json:"phase"`
	CurrentPlayer int          `json:"current_player"`
	Players       []PlayerView `json:"players"`
	Board         [20][20]int  `json:"board"`
	WinnerIDs     []int        `json:"winner_ids"`
}

func buildPlayerView(p *player.Player) PlayerView {
	remaining := make([]string, 0, len(p.Remaining))
	for _, id := range catalog.AllPieceIDs {
		if p.Remaining[id] {
			remaining = append(remaining, string(id))
		}
	}
	placed := make([]PlacedPieceView, len(p.Placed))
	for i, pp := range p.Placed {
		placed[i] = PlacedPieceView{
			PieceID:  string(pp.PieceID),
			Rotation: pp.Orientation.Rotation,
			Flipped:  pp.Orientation.Flipped,
			AnchorR:  pp.Anchor.Row,
			AnchorC:  pp.Anchor.Col,
		}
	}
	breakdown := scoring.Compute(p)
	return PlayerView{
		ID:               p.ID,
		Name:             p.Name,
		Color:            p.Color,
		Origin:           [2]int{p.Origin.Row, p.Origin.Col},
		Score:            breakdown.FinalScore,
		Breakdown:        breakdown,
		HasPassed:        p.HasPassed,
		HasMadeFirstMove: p.HasFirstMove,
		Remaining:        remaining,
		Placed:           placed,
	}
}

func buildSnapshot(s *game.State) Snapshot {
	players := make([]PlayerView, len(s.Players))
	for i, p := range s.Players {
		players[i] = buildPlayerView(p)
	}
	var grid [20][20]int
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			grid[r][c] = s.Board.Owner(r, c)
		}
	}
	return Snapshot{
		Phase:         s.Phase.String(),
		CurrentPlayer: s.CurrentPlayer().ID,
		Players:       players,
		Board:         grid,
		WinnerIDs:     append([]int(nil), s.WinnerIDs...),
	}
}

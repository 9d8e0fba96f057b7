// Package rules implements the Blokus placement validator: R1-R4 legality
// checks, single-move validation, and deterministic legal-move
// enumeration for AI strategies.
package rules

import (
	"github.com/korjavin/blokus-engine/board"
	"github.com/korjavin/blokus-engine/catalog"
	"github.com/korjavin/blokus-engine/player"
)

// Validate checks every rule for placing piece pieceID at orientation,
// anchored at anchor, for p on b, and reports the first that fails in
// this order: R1 bounds, R2 overlap, R3a origin corner (first move), R4
// own-edge adjacency, R3b corner connection. It returns nil if the move
// is legal.
func Validate(b *board.Board, p *player.Player, pieceID catalog.PieceID, orientation catalog.Orientation, anchor board.Point) *ValidationError {
	rawCells := catalog.PlaceCells(orientation, anchor.Row, anchor.Col)

	// R1: bounds.
	for _, c := range rawCells {
		if !board.IsInBounds(c.Row, c.Col) {
			return outOfBounds(c.Row, c.Col)
		}
	}

	// R2: no overlap.
	for _, c := range rawCells {
		if owner := b.Owner(c.Row, c.Col); owner != 0 {
			return overlap(c.Row, c.Col, owner)
		}
	}

	// R3a / R3b: origin corner on first move, corner-connection after. A
	// missing corner connection is reported only once R4 has passed.
	var cornerErr *ValidationError
	if !p.HasFirstMove {
		coversOrigin := false
		for _, c := range rawCells {
			if c.Row == p.Origin.Row && c.Col == p.Origin.Col {
				coversOrigin = true
				break
			}
		}
		if !coversOrigin {
			return firstMoveNotAtCorner(p.Origin.Row, p.Origin.Col)
		}
	} else {
		connected := false
		for _, c := range rawCells {
			for _, n := range board.Neighbors(c.Row, c.Col, board.Corner) {
				if b.Owner(n.Row, n.Col) == p.ID {
					connected = true
					break
				}
			}
			if connected {
				break
			}
		}
		if !connected {
			cornerErr = noCornerConnection()
		}
	}

	// R4: no own-edge adjacency. On the first move this can never fire
	// since the player owns no cells yet; the loop below is a safe no-op
	// in that case, matching spec.md §4.3's stated edge case.
	for _, c := range rawCells {
		for _, n := range board.Neighbors(c.Row, c.Col, board.Edge) {
			if b.Owner(n.Row, n.Col) == p.ID {
				return ownEdgeAdjacency(n.Row, n.Col)
			}
		}
	}

	return cornerErr
}

// candidateAnchors returns every anchor position worth trying for an
// orientation of height h, width w: anchors are bounded so the piece's
// bounding box stays on the board, in row-major order.
func candidateAnchors(h, w int) []board.Point {
	out := make([]board.Point, 0, (board.Size-h+1)*(board.Size-w+1))
	for r := 0; r+h <= board.Size; r++ {
		for c := 0; c+w <= board.Size; c++ {
			out = append(out, board.Point{Row: r, Col: c})
		}
	}
	return out
}

// Filter lets callers cheaply restrict enumeration, e.g. to a single
// piece or a candidate cap (used by AI strategies).
type Filter struct {
	PieceID  catalog.PieceID // zero value means "all pieces"
	MaxMoves int             // zero value means unbounded
}

// EnumerateLegalMoves returns every legal move for player p on b (up to
// filter.MaxMoves when set) as a fully built slice, in deterministic
// order: piece id (catalog.AllPieceIDs order), then orientation index,
// then anchor in row-major order. It is not lazy: the list is complete
// before the caller sees the first move. It is the backbone
// of AI move generation. An empty result is not an error; it means the
// player must pass (spec.md §4.3).
func EnumerateLegalMoves(b *board.Board, p *player.Player, filter *Filter) []Move {
	var out []Move
	maxMoves := 0
	if filter != nil {
		maxMoves = filter.MaxMoves
	}

	for _, id := range catalog.AllPieceIDs {
		if filter != nil && filter.PieceID != "" && filter.PieceID != id {
			continue
		}
		if !p.Remaining[id] {
			continue
		}
		for _, orientation := range catalog.Orientations(id) {
			for _, anchor := range candidateAnchors(orientation.Height, orientation.Width) {
				if Validate(b, p, id, orientation, anchor) == nil {
					out = append(out, Move{
						PlayerID:    p.ID,
						PieceID:     id,
						Orientation: orientation,
						Anchor:      anchor,
					})
					if maxMoves > 0 && len(out) >= maxMoves {
						return out
					}
				}
			}
		}
	}
	return out
}

// HasAnyLegalMove short-circuits on the first legal candidate found.
func HasAnyLegalMove(b *board.Board, p *player.Player) bool {
	for _, id := range catalog.AllPieceIDs {
		if !p.Remaining[id] {
			continue
		}
		for _, orientation := range catalog.Orientations(id) {
			for _, anchor := range candidateAnchors(orientation.Height, orientation.Width) {
				if Validate(b, p, id, orientation, anchor) == nil {
					return true
				}
			}
		}
	}
	return false
}

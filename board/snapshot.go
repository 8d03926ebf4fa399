package board

import (
	"fmt"

	"github.com/daystram/chessrules/position"
)

// Snapshot is the persistent form of a Board.
type Snapshot struct {
	Pieces []Piece `json:"pieces"`

	// EnPassant is the square of the pawn that may still be captured en passant.
	EnPassant position.Pos `json:"en_passant"`
}

func (b *Board) Snapshot() Snapshot {
	snap := Snapshot{EnPassant: position.Invalid}
	for _, s := range Sides {
		snap.Pieces = append(snap.Pieces, b.Pieces(s)...)
	}
	if pos, ok := b.EnPassant(); ok {
		snap.EnPassant = pos
	}
	return snap
}

// FromSnapshot rebuilds a board, rejecting snapshots that break the board invariants.
func FromSnapshot(snap Snapshot) (*Board, error) {
	b := newEmptyBoard()
	kings := make(map[Side]int, 2)
	for _, p := range snap.Pieces {
		if !p.Pos.Valid() {
			return nil, fmt.Errorf("%w: %s off the board", ErrInvalidSnapshot, p.Kind)
		}
		if p.Kind == KindUnknown || p.Kind > KindKing {
			return nil, fmt.Errorf("%w: unknown kind on %s", ErrInvalidSnapshot, p.Pos)
		}
		if p.Side != SideWhite && p.Side != SideBlack {
			return nil, fmt.Errorf("%w: unknown side on %s", ErrInvalidSnapshot, p.Pos)
		}
		if !b.cells[p.Pos].IsEmpty() {
			return nil, fmt.Errorf("%w: %s occupied twice", ErrInvalidSnapshot, p.Pos)
		}
		if p.Kind == KindKing {
			kings[p.Side]++
		}
		b.place(p)
	}
	for _, s := range Sides {
		if kings[s] != 1 {
			return nil, fmt.Errorf("%w: %s must have exactly one king", ErrInvalidSnapshot, s)
		}
	}
	if snap.EnPassant.Valid() {
		if p, ok := b.Piece(snap.EnPassant); !ok || p.Kind != KindPawn {
			return nil, fmt.Errorf("%w: no pawn to capture en passant on %s", ErrInvalidSnapshot, snap.EnPassant)
		}
		b.enPassant = snap.EnPassant
	}
	return b, nil
}

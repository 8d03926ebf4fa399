package board

// Square is a board cell: either empty or holding exactly one Piece.
type Square struct {
	piece    Piece
	occupied bool
}

func Occupied(p Piece) Square {
	return Square{piece: p, occupied: true}
}

func (s Square) Piece() (Piece, bool) {
	return s.piece, s.occupied
}

func (s Square) IsEmpty() bool {
	return !s.occupied
}

// Glyph returns the display symbol of the occupant, or EmptyGlyph.
func (s Square) Glyph() string {
	if !s.occupied {
		return EmptyGlyph
	}
	return s.piece.Kind.SymbolUnicode(s.piece.Side, false)
}

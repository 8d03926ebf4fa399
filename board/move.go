package board

import "github.com/daystram/chessrules/position"

type Move struct {
	From, To position.Pos
	Piece    Kind

	IsTurn       Side
	IsCapture    bool
	IsCheck      bool
	IsCastle     CastleDirection
	IsEnPassant  bool
	IsDoubleStep bool

	// ReachedLastRank flags a pawn landing on the far rank. Promotion is not supported, so the
	// pawn stays a pawn without any further forward moves.
	ReachedLastRank bool
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Algebra() string {
	if m.IsCastle != CastleDirectionUnknown {
		if m.IsCastle.IsRight() {
			return "0-0"
		}
		return "0-0-0"
	}
	nt := m.Piece.SymbolAlgebra(SideWhite) // SideWhite because it returns capital symbols
	if m.IsCapture {
		if m.Piece == KindPawn {
			nt += position.NotationComponentX(m.From.Col())
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if m.IsCheck {
		nt += "+"
	}
	if m.IsEnPassant {
		nt += " e.p."
	}
	return nt
}

func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation()
}

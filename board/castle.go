package board

import (
	"fmt"

	"github.com/daystram/chessrules/position"
)

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

func NewCastleDirection(s Side, right bool) CastleDirection {
	switch {
	case s == SideWhite && right:
		return CastleDirectionWhiteRight
	case s == SideWhite:
		return CastleDirectionWhiteLeft
	case s == SideBlack && right:
		return CastleDirectionBlackRight
	case s == SideBlack:
		return CastleDirectionBlackLeft
	default:
		return CastleDirectionUnknown
	}
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

// rookHops returns the rook's origin and destination on the given row.
func (d CastleDirection) rookHops(row int) (position.Pos, position.Pos) {
	cols := rookCastleCols[d]
	return position.NewPos(row, cols[0]), position.NewPos(row, cols[1])
}

// castle plans a castling move of king onto to. errCastleNotApplicable lets the caller fall
// through to a regular King move.
func (b *Board) castle(king Piece, to position.Pos) (*Move, error) {
	if king.HasMoved || !king.ValidCastle(to) {
		return nil, errCastleNotApplicable
	}
	from := king.Pos
	right := to.Col() > from.Col()
	d := NewCastleDirection(king.Side, right)
	step := position.Delta{Col: -1}
	if right {
		step = position.Delta{Col: 1}
	}

	rookFrom, _ := d.rookHops(from.Row())
	rook, ok := b.cells[rookFrom].Piece()
	if !ok || rook.Kind != KindRook || rook.Side != king.Side || rook.HasMoved {
		return nil, fmt.Errorf("%w: %s cannot castle, rook on %s missing or moved", ErrIllegalMove, d, rookFrom)
	}

	for i := 1; ; i++ {
		q, ok := from.Add(step, i)
		if !ok || q == rookFrom {
			break
		}
		if !b.cells[q].IsEmpty() {
			return nil, fmt.Errorf("%w: %s blocked on %s", ErrIllegalMove, d, q)
		}
	}

	if _, attacked := b.HasCheck(from, king.Side); attacked {
		return nil, fmt.Errorf("%w: cannot castle out of check", ErrSelfCheck)
	}
	if !b.FreeCheckPath(from, to, step, king.Side) {
		return nil, fmt.Errorf("%w: %s passes through an attacked square", ErrSelfCheck, d)
	}

	return &Move{
		From:     from,
		To:       to,
		Piece:    KindKing,
		IsTurn:   king.Side,
		IsCastle: d,
	}, nil
}

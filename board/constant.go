package board

import (
	"errors"

	"github.com/daystram/chessrules/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// EmptyGlyph marks an unoccupied cell in rendered output.
	EmptyGlyph = "."

	maxStepsSliding = int(Width) - 1
)

var (
	ErrInvalidFEN      = errors.New("invalid fen")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	ErrInvalidSide     = errors.New("invalid side")
	ErrInvalidKind     = errors.New("invalid kind")

	// ErrIllegalMove is returned for moves the piece cannot make: unreachable geometry, blocked
	// path, capturing an own piece or a failed castling precondition.
	ErrIllegalMove = errors.New("illegal move")

	// ErrSelfCheck is returned for moves that would place or leave the mover's King in check.
	ErrSelfCheck = errors.New("king would be in check")

	errCastleNotApplicable = errors.New("castle not applicable")
)

var (
	translationsRoyal = []position.Delta{
		{Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: -1}, {Row: 0, Col: 1},
		{Row: 0, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: 0}, {Row: -1, Col: -1},
	}
	translationsLateral = []position.Delta{
		{Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}, {Row: -1, Col: 0},
	}
	translationsDiagonal = []position.Delta{
		{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1},
	}
	translationsKnight = []position.Delta{
		{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: 1, Col: 2}, {Row: 1, Col: -2},
		{Row: -2, Col: 1}, {Row: -2, Col: -1}, {Row: -1, Col: 2}, {Row: -1, Col: -2},
	}
	translationsPawnForward = [2 + 1][]position.Delta{
		SideWhite: {{Row: 1, Col: 0}},
		SideBlack: {{Row: -1, Col: 0}},
	}
	translationsPawnCapture = [2 + 1][]position.Delta{
		SideWhite: {{Row: 1, Col: 1}, {Row: 1, Col: -1}},
		SideBlack: {{Row: -1, Col: 1}, {Row: -1, Col: -1}},
	}
	translationsCastle = []position.Delta{{Row: 0, Col: 2}, {Row: 0, Col: -2}}

	backRank = [Width]Kind{KindRook, KindKnight, KindBishop, KindQueen, KindKing, KindBishop, KindKnight, KindRook}

	// rookCastleCols holds the rook's origin and destination column per castle direction.
	rookCastleCols = [4 + 1][2]int{
		CastleDirectionWhiteRight: {7, 5},
		CastleDirectionWhiteLeft:  {0, 3},
		CastleDirectionBlackRight: {7, 5},
		CastleDirectionBlackLeft:  {0, 3},
	}
)

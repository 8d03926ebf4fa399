package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/chessrules/position"
)

// UnmarshalFEN populates an empty board from fen and returns the side to move. HasMoved is
// derived: pieces off their starting squares have moved, and Kings and Rooks have moved unless
// the castling rights say otherwise. The move clocks are validated but not kept.
func UnmarshalFEN(fen string, b *Board) (Side, error) {
	if b == nil {
		return SideUnknown, fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return SideUnknown, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return SideUnknown, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := 0; y < int(Height); y++ {
		ptrX, ptrY := -1, int(Height)-y-1
		for x := 0; x < int(Width); x++ {
			ptrX++
			if ptrX >= len(rows[ptrY]) {
				return SideUnknown, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			var s Side
			var k Kind
			switch cell := rune(rows[ptrY][ptrX]); cell {
			case 'P':
				s, k = SideWhite, KindPawn
			case 'B':
				s, k = SideWhite, KindBishop
			case 'N':
				s, k = SideWhite, KindKnight
			case 'R':
				s, k = SideWhite, KindRook
			case 'Q':
				s, k = SideWhite, KindQueen
			case 'K':
				s, k = SideWhite, KindKing
			case 'p':
				s, k = SideBlack, KindPawn
			case 'b':
				s, k = SideBlack, KindBishop
			case 'n':
				s, k = SideBlack, KindKnight
			case 'r':
				s, k = SideBlack, KindRook
			case 'q':
				s, k = SideBlack, KindQueen
			case 'k':
				s, k = SideBlack, KindKing
			default:
				if cell != '0' && unicode.IsDigit(cell) {
					skip := int(cell - '0')
					if x+skip-1 < int(Width) {
						x += skip - 1
						continue
					}
					return SideUnknown, fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return SideUnknown, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			p := NewPiece(k, s, position.NewPos(y, x))
			p.HasMoved = !onStartingSquare(p)
			b.place(p)
		}
		if ptrX+1 != len(rows[ptrY]) {
			return SideUnknown, fmt.Errorf("%w: too many cells in rank %d", ErrInvalidFEN, y+1)
		}
	}
	kings := make(map[Side]int, len(Sides))
	b.Cells(func(_ position.Pos, sq Square) {
		if p, ok := sq.Piece(); ok && p.Kind == KindKing {
			kings[p.Side]++
		}
	})
	for _, s := range Sides {
		if kings[s] != 1 {
			return SideUnknown, fmt.Errorf("%w: %s must have exactly one king", ErrInvalidFEN, s)
		}
	}

	var turn Side
	switch segments[1] {
	case "w":
		turn = SideWhite
	case "b":
		turn = SideBlack
	default:
		return SideUnknown, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if _, checked := b.Check(turn.Opposite()); checked {
		return SideUnknown, fmt.Errorf("%w: %s is in check but not to move", ErrInvalidFEN, turn.Opposite())
	}

	if err := unmarshalCastleRights(segments[2], b); err != nil {
		return SideUnknown, err
	}

	if segments[3] != "-" {
		target, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return SideUnknown, fmt.Errorf("%w: %v", fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN), err)
		}
		mover := turn.Opposite()
		pawnPos := position.NewPos(target.Row()+int(mover.Forward()), target.Col())
		if p, ok := b.Piece(pawnPos); !ok || p.Kind != KindPawn || p.Side != mover ||
			target.Row() != mover.PawnRow()+int(mover.Forward()) {
			return SideUnknown, fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
		b.enPassant = pawnPos
	}

	if _, err := strconv.ParseUint(segments[4], 10, 8); err != nil {
		return SideUnknown, fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	if _, err := strconv.ParseUint(segments[5], 10, 16); err != nil {
		return SideUnknown, fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}

	return turn, nil
}

func onStartingSquare(p Piece) bool {
	if p.Kind == KindPawn {
		return p.Pos.Row() == p.Side.PawnRow()
	}
	return p.Pos.Row() == p.Side.HomeRow() && backRank[p.Pos.Col()] == p.Kind
}

// unmarshalCastleRights marks Kings and corner Rooks as moved unless a right keeps them unmoved.
func unmarshalCastleRights(field string, b *Board) error {
	if len(field) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	var allowed []CastleDirection
crLoop:
	for i, e := range field {
		switch e {
		case 'K':
			allowed = append(allowed, CastleDirectionWhiteRight)
		case 'k':
			allowed = append(allowed, CastleDirectionBlackRight)
		case 'Q':
			allowed = append(allowed, CastleDirectionWhiteLeft)
		case 'q':
			allowed = append(allowed, CastleDirectionBlackLeft)
		default:
			if i == 0 && e == '-' && len(field) == 1 {
				break crLoop
			}
			return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	for _, s := range Sides {
		king, _ := b.King(s)
		king.HasMoved = true
		b.place(king)
		for _, col := range []int{0, 7} {
			if rook, ok := b.Piece(position.NewPos(s.HomeRow(), col)); ok && rook.Kind == KindRook && rook.Side == s {
				rook.HasMoved = true
				b.place(rook)
			}
		}
	}
	for _, d := range allowed {
		s := SideWhite
		if !d.IsWhite() {
			s = SideBlack
		}
		row := s.HomeRow()
		king, ok := b.Piece(position.NewPos(row, 4))
		rookPos, _ := d.rookHops(row)
		rook, rookOK := b.Piece(rookPos)
		if !ok || king.Kind != KindKing || king.Side != s || !rookOK || rook.Kind != KindRook || rook.Side != s {
			return fmt.Errorf("%w: castling rights without king and rook in place", ErrInvalidFEN)
		}
		king.HasMoved, rook.HasMoved = false, false
		b.place(king)
		b.place(rook)
	}
	return nil
}

// castleRights lists the castle directions still open, judged by unmoved Kings and Rooks.
func (b *Board) castleRights() []CastleDirection {
	var ds []CastleDirection
	for _, d := range []CastleDirection{
		CastleDirectionWhiteRight,
		CastleDirectionWhiteLeft,
		CastleDirectionBlackRight,
		CastleDirectionBlackLeft,
	} {
		s := SideWhite
		if !d.IsWhite() {
			s = SideBlack
		}
		row := s.HomeRow()
		king, ok := b.Piece(position.NewPos(row, 4))
		if !ok || king.Kind != KindKing || king.Side != s || king.HasMoved {
			continue
		}
		rookPos, _ := d.rookHops(row)
		rook, ok := b.Piece(rookPos)
		if !ok || rook.Kind != KindRook || rook.Side != s || rook.HasMoved {
			continue
		}
		ds = append(ds, d)
	}
	return ds
}

// MarshalFEN encodes the board with turn as the side to move. Move clocks are not tracked and
// always encode as "0 1".
func MarshalFEN(b *Board, turn Side) string {
	builder := strings.Builder{}
	var skip uint8
	for y := int(Height) - 1; y >= 0; y-- {
		for x := 0; x < int(Width); x++ {
			for skip = 0; x < int(Width) && b.cells[position.NewPos(y, x)].IsEmpty(); x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < int(Width) {
				p, _ := b.cells[position.NewPos(y, x)].Piece()
				_, _ = builder.WriteString(p.Kind.SymbolFEN(p.Side))
			}
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if turn == SideBlack {
		_, _ = builder.WriteString(" b ")
	} else {
		_, _ = builder.WriteString(" w ")
	}

	rights := b.castleRights()
	if len(rights) == 0 {
		_, _ = builder.WriteRune('-')
	}
	for _, d := range rights {
		sym := 'Q'
		if d.IsRight() {
			sym = 'K'
		}
		if !d.IsWhite() {
			sym |= 0x20
		}
		_, _ = builder.WriteRune(sym)
	}
	_, _ = builder.WriteRune(' ')

	if pawn, ok := b.Piece(b.enPassant); ok {
		target := position.NewPos(pawn.Pos.Row()-int(pawn.Side.Forward()), pawn.Pos.Col())
		_, _ = builder.WriteString(target.Notation())
	} else {
		_, _ = builder.WriteRune('-')
	}

	_, _ = builder.WriteString(" 0 1")

	return builder.String()
}

func (b *Board) FEN(turn Side) string {
	return MarshalFEN(b, turn)
}

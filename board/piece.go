package board

import (
	"strings"

	"github.com/daystram/chessrules/position"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindPawn
	KindBishop
	KindKnight
	KindRook
	KindQueen
	KindKing
)

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindBishop:
		return "Bishop"
	case KindKnight:
		return "Knight"
	case KindRook:
		return "Rook"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

func (k Kind) SymbolAlgebra(s Side) string {
	if k == KindPawn {
		return ""
	}
	return k.SymbolFEN(s)
}

func (k Kind) SymbolFEN(s Side) string {
	var sym rune
	switch k {
	case KindPawn:
		sym = 'P'
	case KindBishop:
		sym = 'B'
	case KindKnight:
		sym = 'N'
	case KindRook:
		sym = 'R'
	case KindQueen:
		sym = 'Q'
	case KindKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (k Kind) SymbolUnicode(s Side, invert bool) string {
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		switch k {
		case KindPawn:
			return "♙"
		case KindBishop:
			return "♗"
		case KindKnight:
			return "♘"
		case KindRook:
			return "♖"
		case KindQueen:
			return "♕"
		case KindKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch k {
		case KindPawn:
			return "♟"
		case KindBishop:
			return "♝"
		case KindKnight:
			return "♞"
		case KindRook:
			return "♜"
		case KindQueen:
			return "♛"
		case KindKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(k.Name())), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for _, c := range []Kind{KindPawn, KindBishop, KindKnight, KindRook, KindQueen, KindKing} {
		if strings.EqualFold(c.Name(), string(b)) {
			*k = c
			return nil
		}
	}
	return ErrInvalidKind
}

// Piece is a single chess piece. Its Pos always equals the cell of the Board holding it, and
// both Pos and HasMoved are only changed by the Board when a move is applied.
type Piece struct {
	Kind     Kind         `json:"kind"`
	Side     Side         `json:"side"`
	Pos      position.Pos `json:"pos"`
	HasMoved bool         `json:"has_moved"`
}

func NewPiece(k Kind, s Side, pos position.Pos) Piece {
	return Piece{Kind: k, Side: s, Pos: pos}
}

func (p Piece) String() string {
	return p.Side.String() + " " + p.Kind.Name() + " " + p.Pos.Notation()
}

// Translations returns the direction vectors the piece may repeat up to MaxSteps times.
// Pawns only list their forward translation here.
func (p Piece) Translations() []position.Delta {
	switch p.Kind {
	case KindPawn:
		return translationsPawnForward[p.Side]
	case KindBishop:
		return translationsDiagonal
	case KindKnight:
		return translationsKnight
	case KindRook:
		return translationsLateral
	case KindQueen, KindKing:
		return translationsRoyal
	default:
		return nil
	}
}

// MaxSteps is the step limit applied to Translations. An unmoved pawn may double-step.
func (p Piece) MaxSteps() int {
	switch p.Kind {
	case KindPawn:
		if p.HasMoved {
			return 1
		}
		return 2
	case KindKnight, KindKing:
		return 1
	default:
		return maxStepsSliding
	}
}

// ValidMove reports the translation reaching target, ignoring every other piece on the board.
func (p Piece) ValidMove(target position.Pos) (position.Delta, bool) {
	for _, d := range p.Translations() {
		for i := 1; i <= p.MaxSteps(); i++ {
			q, ok := p.Pos.Add(d, i)
			if !ok {
				break
			}
			if q == target {
				return d, true
			}
		}
	}
	return position.Delta{}, false
}

// ValidEat reports the translation reaching target given its occupant. For every kind but the
// Pawn this is ValidMove. A Pawn captures diagonally, either an opposing occupant or, en passant,
// the opposing pawn in passed that stands beside it; otherwise it moves forward onto empty squares.
func (p Piece) ValidEat(target position.Pos, occupant, passed Square) (position.Delta, bool) {
	if p.Kind != KindPawn {
		return p.ValidMove(target)
	}

	for _, d := range translationsPawnCapture[p.Side] {
		q, ok := p.Pos.Add(d, 1)
		if !ok || q != target {
			continue
		}
		if o, ok := occupant.Piece(); ok {
			if o.Side != p.Side {
				return d, true
			}
			continue
		}
		if p.canEatEnPassant(target, passed) {
			return d, true
		}
	}

	if !occupant.IsEmpty() {
		return position.Delta{}, false
	}
	return p.ValidMove(target)
}

func (p Piece) canEatEnPassant(target position.Pos, passed Square) bool {
	o, ok := passed.Piece()
	if !ok || o.Kind != KindPawn || o.Side == p.Side {
		return false
	}
	return o.Pos == position.NewPos(p.Pos.Row(), target.Col())
}

// Attacks reports the translation along which the piece threatens target, regardless of whether
// target is occupied. Pawns only threaten diagonally.
func (p Piece) Attacks(target position.Pos) (position.Delta, bool) {
	if p.Kind != KindPawn {
		return p.ValidMove(target)
	}
	for _, d := range translationsPawnCapture[p.Side] {
		if q, ok := p.Pos.Add(d, 1); ok && q == target {
			return d, true
		}
	}
	return position.Delta{}, false
}

// ValidCastle reports whether target is two files away from the King on the same rank.
func (p Piece) ValidCastle(target position.Pos) bool {
	if p.Kind != KindKing {
		return false
	}
	for _, d := range translationsCastle {
		if q, ok := p.Pos.Add(d, 1); ok && q == target {
			return true
		}
	}
	return false
}

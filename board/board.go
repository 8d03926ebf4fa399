package board

import (
	"errors"
	"fmt"

	"github.com/daystram/chessrules/position"
)

// Board is an 8x8 grid owning every piece in play. It is not safe for concurrent use; Clone it
// to work on independent copies.
type Board struct {
	cells [TotalCells]Square

	// enPassant is the square of the pawn that double-stepped on the last applied move. It
	// expires on the next applied move.
	enPassant position.Pos
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// NewBoard returns a board in the standard starting position, or the position given by WithFEN,
// together with the side to move.
func NewBoard(opts ...BoardOption) (*Board, Side, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := newEmptyBoard()
	turn, err := UnmarshalFEN(cfg.fen, b)
	if err != nil {
		return nil, SideUnknown, err
	}
	return b, turn, nil
}

func newEmptyBoard() *Board {
	return &Board{enPassant: position.Invalid}
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

// Piece returns the piece standing on pos.
func (b *Board) Piece(pos position.Pos) (Piece, bool) {
	if !pos.Valid() {
		return Piece{}, false
	}
	return b.cells[pos].Piece()
}

// PieceSide returns the side of the piece standing on pos.
func (b *Board) PieceSide(pos position.Pos) (Side, bool) {
	p, ok := b.Piece(pos)
	if !ok {
		return SideUnknown, false
	}
	return p.Side, true
}

// King returns the King of the given side.
func (b *Board) King(s Side) (Piece, bool) {
	for _, sq := range b.cells {
		if p, ok := sq.Piece(); ok && p.Kind == KindKing && p.Side == s {
			return p, true
		}
	}
	return Piece{}, false
}

// Pieces returns every piece of the side, ordered by square.
func (b *Board) Pieces(s Side) []Piece {
	var ps []Piece
	for _, sq := range b.cells {
		if p, ok := sq.Piece(); ok && p.Side == s {
			ps = append(ps, p)
		}
	}
	return ps
}

// EnPassant returns the square of the pawn that may be captured en passant on this move.
func (b *Board) EnPassant() (position.Pos, bool) {
	return b.enPassant, b.enPassant.Valid()
}

// Cells calls f for every square from a1 to h8.
func (b *Board) Cells(f func(pos position.Pos, sq Square)) {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		f(pos, b.cells[pos])
	}
}

// Glyph returns the display symbol for pos.
func (b *Board) Glyph(pos position.Pos) string {
	if !pos.Valid() {
		return ""
	}
	return b.cells[pos].Glyph()
}

func (b *Board) place(p Piece) {
	b.cells[p.Pos] = Occupied(p)
}

func (b *Board) passedSquare() Square {
	if !b.enPassant.Valid() {
		return Square{}
	}
	return b.cells[b.enPassant]
}

// Move validates and applies the move of the piece on from onto to. On error the board is left
// unchanged; errors wrap ErrIllegalMove or ErrSelfCheck.
func (b *Board) Move(from, to position.Pos) (*Move, error) {
	mv, err := b.Validate(from, to)
	if err != nil {
		return nil, err
	}
	b.apply(mv)
	if _, checked := b.Check(mv.IsTurn.Opposite()); checked {
		mv.IsCheck = true
	}
	return mv, nil
}

// IsLegal reports whether Move would accept the move.
func (b *Board) IsLegal(from, to position.Pos) bool {
	_, err := b.Validate(from, to)
	return err == nil
}

// Validate returns the move the piece on from would make onto to without applying it.
func (b *Board) Validate(from, to position.Pos) (*Move, error) {
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("%w: square off the board", ErrIllegalMove)
	}
	piece, ok := b.cells[from].Piece()
	if !ok {
		return nil, fmt.Errorf("%w: no piece on %s", ErrIllegalMove, from)
	}
	if s, ok := b.PieceSide(to); ok && s == piece.Side {
		return nil, fmt.Errorf("%w: %s is occupied by own piece", ErrIllegalMove, to)
	}

	if piece.Kind == KindKing {
		return b.validateKingMove(piece, to)
	}

	d, ok := piece.ValidEat(to, b.cells[to], b.passedSquare())
	if !ok {
		return nil, fmt.Errorf("%w: %s cannot reach %s", ErrIllegalMove, piece, to)
	}
	if _, ok := b.FreePath(from, to, d); !ok {
		return nil, fmt.Errorf("%w: path from %s to %s is blocked", ErrIllegalMove, from, to)
	}

	mv := b.newMove(piece, to)
	if piece.Kind == KindPawn {
		mv.IsEnPassant = d.Col != 0 && b.cells[to].IsEmpty()
		mv.IsCapture = mv.IsCapture || mv.IsEnPassant
		mv.IsDoubleStep = d.Col == 0 && abs(to.Row()-from.Row()) == 2
		mv.ReachedLastRank = to.Row() == piece.Side.Opposite().HomeRow()
	}

	if b.exposesKing(mv) {
		return nil, fmt.Errorf("%w: moving %s exposes the king", ErrSelfCheck, piece)
	}
	return mv, nil
}

func (b *Board) validateKingMove(king Piece, to position.Pos) (*Move, error) {
	mv, err := b.castle(king, to)
	if err == nil {
		return mv, nil
	}
	if !errors.Is(err, errCastleNotApplicable) {
		return nil, err
	}

	if _, ok := king.ValidEat(to, b.cells[to], Square{}); !ok {
		return nil, fmt.Errorf("%w: %s cannot reach %s", ErrIllegalMove, king, to)
	}
	mv = b.newMove(king, to)
	if b.exposesKing(mv) {
		return nil, fmt.Errorf("%w: %s is attacked", ErrSelfCheck, to)
	}
	return mv, nil
}

func (b *Board) newMove(p Piece, to position.Pos) *Move {
	return &Move{
		From:      p.Pos,
		To:        to,
		Piece:     p.Kind,
		IsTurn:    p.Side,
		IsCapture: !b.cells[to].IsEmpty(),
	}
}

// exposesKing applies mv on a copy and reports whether the mover's King ends up attacked.
func (b *Board) exposesKing(mv *Move) bool {
	bb := b.Clone()
	bb.apply(mv)
	_, checked := bb.Check(mv.IsTurn)
	return checked
}

// apply commits a validated move.
func (b *Board) apply(mv *Move) {
	if mv.IsEnPassant {
		b.cells[position.NewPos(mv.From.Row(), mv.To.Col())] = Square{}
	}
	if mv.IsCastle != CastleDirectionUnknown {
		rookFrom, rookTo := mv.IsCastle.rookHops(mv.From.Row())
		b.relocate(rookFrom, rookTo)
	}
	b.relocate(mv.From, mv.To)

	b.enPassant = position.Invalid
	if mv.IsDoubleStep {
		b.enPassant = mv.To
	}
}

// relocate moves the piece on from onto to, capturing any occupant.
func (b *Board) relocate(from, to position.Pos) {
	p, _ := b.cells[from].Piece()
	p.Pos = to
	p.HasMoved = true
	b.cells[from] = Square{}
	b.cells[to] = Occupied(p)
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

package board

import (
	"testing"

	"github.com/daystram/chessrules/position"
)

func mustBoard(t *testing.T, fen string) *Board {
	t.Helper()
	b, _, err := NewBoard(WithFEN(fen))
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", fen, err)
	}
	return b
}

func mustPos(t *testing.T, n string) position.Pos {
	t.Helper()
	p, err := position.NewPosFromNotation(n)
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", n, err)
	}
	return p
}

func mustPath(t *testing.T, ns ...string) []position.Pos {
	t.Helper()
	var ps []position.Pos
	for _, n := range ns {
		ps = append(ps, mustPos(t, n))
	}
	return ps
}

func mustMove(t *testing.T, b *Board, from, to string) *Move {
	t.Helper()
	mv, err := b.Move(mustPos(t, from), mustPos(t, to))
	if err != nil {
		t.Fatalf("unexpected error moving %s%s: %v\n%s", from, to, err, b.Dump())
	}
	return mv
}

func mustPiece(t *testing.T, b *Board, n string, k Kind, s Side) Piece {
	t.Helper()
	p, ok := b.Piece(mustPos(t, n))
	if !ok {
		t.Fatalf("expected %s %s on %s, got empty", s, k, n)
	}
	if p.Kind != k || p.Side != s {
		t.Fatalf("unexpected piece on %s: got=%s want=%s %s", n, p, s, k)
	}
	return p
}

func mustEmpty(t *testing.T, b *Board, ns ...string) {
	t.Helper()
	for _, n := range ns {
		if p, ok := b.Piece(mustPos(t, n)); ok {
			t.Errorf("expected %s to be empty, got %s", n, p)
		}
	}
}

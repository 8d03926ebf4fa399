package game

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/memory"

	"github.com/daystram/chessrules/position"
)

func quietLogger() log.Interface {
	return &log.Logger{Handler: discard.New(), Level: log.DebugLevel}
}

func memoryLogger() (log.Interface, *memory.Handler) {
	h := memory.New()
	return &log.Logger{Handler: h, Level: log.DebugLevel}, h
}

func mustGame(t *testing.T, opts ...GameOption) *Game {
	t.Helper()
	g, err := NewGame(append([]GameOption{WithLogger(quietLogger())}, opts...)...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func mustPos(t *testing.T, n string) position.Pos {
	t.Helper()
	p, err := position.NewPosFromNotation(n)
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", n, err)
	}
	return p
}

func mustPlay(t *testing.T, g *Game, from, to string) *Report {
	t.Helper()
	r, err := g.Play(mustPos(t, from), mustPos(t, to))
	if err != nil {
		t.Fatalf("unexpected error playing %s %s: %v\n%s", from, to, err, g.Board().Dump())
	}
	return r
}

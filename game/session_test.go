package game

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/store"
)

func runSession(t *testing.T, g *Game, input string, opts ...SessionOption) string {
	t.Helper()
	var out bytes.Buffer
	opts = append([]SessionOption{WithSessionLogger(quietLogger())}, opts...)
	s := NewSession(g, strings.NewReader(input), &out, opts...)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out.String())
	}
	return out.String()
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSessionFoolsMate(t *testing.T) {
	t.Parallel()
	g := mustGame(t, WithPlayers("Alice", "Bob"))
	out := runSession(t, g, "f2 f3\ne7 e5\ng2 g4\nd8 h4\n")

	assertContains(t, out,
		"Welcome to Chess!",
		"Alice goes first.",
		"Alice's turn",
		"Bob's turn",
		"Qh4+",
		"Alice is in checkmate!",
		"Bob wins!",
	)
	if strings.Contains(out, "\x1b[") {
		t.Errorf("unexpected escape sequence in uncolored output")
	}
}

func TestSessionRejections(t *testing.T) {
	t.Parallel()
	g := mustGame(t)
	out := runSession(t, g, "e2\ne7 e5\ne2 e5\na1 a3\nquit\n")

	assertContains(t, out,
		ErrInvalidInput.Error(),
		ErrNotYourPiece.Error(),
		board.ErrIllegalMove.Error(),
		"Try again.",
	)
	if g.Turn() != board.SideWhite {
		t.Errorf("unexpected turn: got=%s want=%s", g.Turn(), board.SideWhite)
	}
}

func TestSessionCheck(t *testing.T) {
	t.Parallel()
	g := mustGame(t, WithFEN("k7/8/8/8/8/8/8/1R5K w - - 0 1"))
	out := runSession(t, g, "b1 b8\n")
	assertContains(t, out, "Rb8+", "Black is in check!")
}

func TestSessionStalemate(t *testing.T) {
	t.Parallel()
	g := mustGame(t, WithFEN("k7/8/8/2Q5/8/8/8/7K w - - 0 1"))
	out := runSession(t, g, "c5 b6\nh1 h2\n")
	assertContains(t, out, "Stalemate!")
	if strings.Contains(out, "wins!") {
		t.Errorf("unexpected winner announced:\n%s", out)
	}
}

func TestSessionCommands(t *testing.T) {
	t.Parallel()
	g := mustGame(t, WithFEN("k7/8/8/8/8/8/8/K7 w - - 0 1"))
	out := runSession(t, g, "fen\nmoves\nhelp\nd\nexit\n", WithUnicode(false))

	assertContains(t, out,
		"k7/8/8/8/8/8/8/K7 w - - 0 1",
		"a1 b1, a1 a2, a1 b2",
		"Commands:",
		" 1 | K |",
	)
	if strings.Contains(out, "♔") {
		t.Errorf("unexpected glyph in ascii output:\n%s", out)
	}
}

func TestSessionSaveLoad(t *testing.T) {
	t.Parallel()
	st, err := store.New(filepath.Join(t.TempDir(), "save.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g := mustGame(t)
	out := runSession(t, g, "e2 e4\nsave\nquit\n", WithStore(st))
	assertContains(t, out, "Game saved to "+st.Path())

	g = mustGame(t)
	out = runSession(t, g, "load\nfen\nquit\n", WithStore(st))
	assertContains(t, out, "Game loaded.", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if g.Turn() != board.SideBlack {
		t.Errorf("unexpected turn: got=%s want=%s", g.Turn(), board.SideBlack)
	}
}

func TestSessionStoreDisabled(t *testing.T) {
	t.Parallel()
	out := runSession(t, mustGame(t), "save\nload\n")
	assertContains(t, out, "saving is disabled", "loading is disabled")
}

func TestSessionColored(t *testing.T) {
	t.Parallel()
	out := runSession(t, mustGame(t), "e2\n", WithColor(true))
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected escape sequences:\n%q", out)
	}
}

func TestSessionContextCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	s := NewSession(mustGame(t), strings.NewReader("e2 e4\n"), &out, WithSessionLogger(quietLogger()))
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected error: got=%v want=%v", err, context.Canceled)
	}
}

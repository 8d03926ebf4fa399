package board

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/notnil/chess"
)

// movesOf lists the from-to pairs of legal moves. Promotion choices collapse into one pair.
func movesOf(b *Board, turn Side) []string {
	var mvs []string
	for _, mv := range b.LegalMoves(turn) {
		mvs = append(mvs, mv.UCI())
	}
	sort.Strings(mvs)
	return mvs
}

func referenceMovesOf(t *testing.T, g *chess.Game) []string {
	t.Helper()
	seen := make(map[string]bool)
	var mvs []string
	for _, mv := range g.ValidMoves() {
		uci := mv.S1().String() + mv.S2().String()
		if !seen[uci] {
			seen[uci] = true
			mvs = append(mvs, uci)
		}
	}
	sort.Strings(mvs)
	return mvs
}

func TestLegalMovesAgreeWithReference(t *testing.T) {
	t.Parallel()
	fens := []string{
		DefaultStartingPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"k7/8/8/8/8/8/2R3PP/r6K w - - 0 1",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			b, turn, err := NewBoard(WithFEN(fen))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			opt, err := chess.FEN(fen)
			if err != nil {
				t.Fatalf("unexpected reference error: %v", err)
			}
			ref := chess.NewGame(opt)

			if diff := cmp.Diff(referenceMovesOf(t, ref), movesOf(b, turn)); diff != "" {
				t.Errorf("unexpected legal moves (-reference +got):\n%s", diff)
			}
		})
	}
}

func TestRandomGamesAgreeWithReference(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 8; seed++ {
		seed := seed
		t.Run("seed "+strconv.FormatInt(seed, 10), func(t *testing.T) {
			t.Parallel()
			rnd := rand.New(rand.NewSource(seed))
			b, turn, _ := NewBoard()
			ref := chess.NewGame()

			for ply := 0; ply < 120; ply++ {
				got, want := movesOf(b, turn), referenceMovesOf(t, ref)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("ply %d %s: unexpected legal moves (-reference +got):\n%s", ply, b.FEN(turn), diff)
				}
				if len(got) == 0 {
					return
				}

				uci := got[rnd.Intn(len(got))]
				mv := mustMove(t, b, uci[:2], uci[2:])
				if mv.ReachedLastRank {
					// promotion is not modeled, the positions diverge from here
					return
				}
				for _, refMv := range ref.ValidMoves() {
					if refMv.S1().String()+refMv.S2().String() == uci {
						if err := ref.Move(refMv); err != nil {
							t.Fatalf("unexpected reference error: %v", err)
						}
						break
					}
				}
				turn = turn.Opposite()
			}
		})
	}
}

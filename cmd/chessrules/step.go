package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/apex/log"

	"github.com/daystram/chessrules/game"
)

// step plays random legal moves until the game ends or plies moves were made.
func step(out io.Writer, logger log.Interface, fen string, plies int, seed int64) error {
	g, err := game.NewGame(game.WithFEN(fen), game.WithLogger(logger))
	if err != nil {
		return err
	}
	rnd := rand.New(rand.NewSource(seed))

	for ply := 0; ply < plies && !g.Outcome().IsOver(); ply++ {
		mvs := g.LegalMoves()
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion: outcome=%s", g.Outcome())
		}
		mv := mvs[rnd.Intn(len(mvs))]
		r, err := g.Play(mv.From, mv.To)
		if err != nil {
			return fmt.Errorf("legal move %s rejected: %w", mv.UCI(), err)
		}
		fmt.Fprintf(out, "[#%d] %s: %s\n", ply/2+1, r.Move.IsTurn, r.Move)
	}

	fmt.Fprintln(out, g.Board().Dump())
	fmt.Fprintln(out, g.Board().FEN(g.Turn()))
	fmt.Fprintln(out, "outcome:", g.Outcome())
	return nil
}

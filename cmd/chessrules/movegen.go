package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/daystram/chessrules/board"
)

func moves(out io.Writer, fen string, colored, unicode bool) error {
	b, turn, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "to move:", turn)
	if unicode {
		fmt.Fprintln(out, b.Draw(colored))
	} else {
		fmt.Fprintln(out, b.Dump())
	}
	fmt.Fprintln(out, b.State(turn))
	dumpMoves(out, b, turn)
	return nil
}

func dumpMoves(out io.Writer, b *board.Board, turn board.Side) {
	mvs := b.LegalMoves(turn)
	for i, mv := range mvs {
		fmt.Fprintf(out, "option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (enp=%v) (cas=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), mv.IsTurn, mv.Piece, mv.From, mv.To, mv.IsCapture, mv.IsEnPassant, mv.IsCastle)
	}
}

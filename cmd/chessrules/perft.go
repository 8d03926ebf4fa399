package main

import (
	"fmt"
	"io"

	"github.com/apex/log"

	"github.com/daystram/chessrules/bench"
)

func perft(out io.Writer, logger log.Interface, depth int, fen string, parallel, verbose bool) error {
	logger.WithFields(log.Fields{
		"depth":    depth,
		"parallel": parallel,
	}).Info("running perft")

	lines := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range lines {
			fmt.Fprintln(out, s)
		}
	}()

	err := bench.Perft(depth, fen, parallel, verbose, lines)
	close(lines)
	<-done
	return err
}

package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chessrules/board"
)

// Result tallies the leaf moves of a perft run.
type Result struct {
	Nodes     uint64
	Captures  uint64
	EnPassant uint64
	Castles   uint64
	Checks    uint64
}

type counters struct {
	nodes, cap, enp, cas, chk atomic.Uint64
}

func (c *counters) leaf(mv *board.Move) {
	c.nodes.Add(1)
	if mv.IsCapture {
		c.cap.Add(1)
	}
	if mv.IsEnPassant {
		c.enp.Add(1)
	}
	if mv.IsCastle != board.CastleDirectionUnknown {
		c.cas.Add(1)
	}
	if mv.IsCheck {
		c.chk.Add(1)
	}
}

func (c *counters) result() Result {
	return Result{
		Nodes:     c.nodes.Load(),
		Captures:  c.cap.Load(),
		EnPassant: c.enp.Load(),
		Castles:   c.cas.Load(),
		Checks:    c.chk.Load(),
	}
}

// Perft counts the positions reachable from fen in depth plies and reports them on out. With
// verbose the node count below each root move is reported too.
func Perft(depth int, fen string, parallel, verbose bool, out chan string) error {
	b, turn, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return err
	}

	var report func(mv *board.Move, nodes uint64)
	if verbose {
		report = func(mv *board.Move, nodes uint64) {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), nodes)
		}
	}

	start := time.Now()
	res := Count(b, turn, depth, parallel, report)
	elapsed := time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d chk=%d (%.3fs elapsed)",
			depth, res.Nodes, rate(res.Nodes, elapsed), res.Captures, res.EnPassant, res.Castles, res.Checks, elapsed.Seconds())

	return nil
}

// rate is the node throughput per second, zero when no time was measured.
func rate(nodes uint64, elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	return int(float64(nodes) / elapsed.Seconds())
}

// Count walks every legal line of depth plies from b with turn to move. report, if set, is
// called once per root move with the leaf count below it.
func Count(b *board.Board, turn board.Side, depth int, parallel bool, report func(mv *board.Move, nodes uint64)) Result {
	var c counters
	if depth == 0 {
		c.nodes.Add(1)
		return c.result()
	}

	var run perftFunc = runPerft
	if parallel {
		run = runPerftParallel
	}
	run(b, turn, depth, report, &c)
	return c.result()
}

type perftFunc func(b *board.Board, turn board.Side, d int, report func(*board.Move, uint64), c *counters) uint64

func runPerft(b *board.Board, turn board.Side, d int, report func(*board.Move, uint64), c *counters) uint64 {
	var sum uint64
	for _, mv := range b.LegalMoves(turn) {
		sum += playPerft(b, turn, d, mv, report, c, runPerft)
	}
	return sum
}

func runPerftParallel(b *board.Board, turn board.Side, d int, report func(*board.Move, uint64), c *counters) uint64 {
	var sum atomic.Uint64
	var wg sync.WaitGroup
	for _, mv := range b.LegalMoves(turn) {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			// only the root fans out; deeper plies run sequentially in their goroutine
			sum.Add(playPerft(b, turn, d, mv, report, c, runPerft))
		}()
	}
	wg.Wait()
	return sum.Load()
}

func playPerft(b *board.Board, turn board.Side, d int, mv *board.Move, report func(*board.Move, uint64), c *counters, next perftFunc) uint64 {
	bb := b.Clone()
	played, err := bb.Move(mv.From, mv.To)
	if err != nil {
		return 0
	}

	var child uint64
	if d == 1 {
		c.leaf(played)
		child = 1
	} else {
		child = next(bb, turn.Opposite(), d-1, nil, c)
	}
	if report != nil {
		report(played, child)
	}
	return child
}

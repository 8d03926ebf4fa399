package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/fatih/color"

	"github.com/daystram/chessrules/store"
)

const usage = `Enter moves in the format: a2 a4 (from a2 to a4)
Commands:
  draw    show the board
  fen     print the position as FEN
  moves   list the legal moves
  save    save the game
  load    restore the saved game
  help    show this message
  quit    leave the game`

type Session struct {
	game    *Game
	store   *store.Store
	in      *bufio.Scanner
	out     io.Writer
	colored bool
	unicode bool
	logger  log.Interface

	fail, alert, win, prompt *color.Color
}

type SessionOption func(*Session)

// WithStore enables the save and load commands.
func WithStore(st *store.Store) SessionOption {
	return func(s *Session) {
		s.store = st
	}
}

func WithColor(colored bool) SessionOption {
	return func(s *Session) {
		s.colored = colored
	}
}

// WithUnicode draws the board with chess glyphs instead of the ASCII grid.
func WithUnicode(unicode bool) SessionOption {
	return func(s *Session) {
		s.unicode = unicode
	}
}

func WithSessionLogger(l log.Interface) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

func NewSession(g *Game, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		game:    g,
		in:      bufio.NewScanner(in),
		out:     out,
		unicode: true,
		logger:  log.Log,
		fail:    color.New(color.FgRed),
		alert:   color.New(color.FgYellow, color.Bold),
		win:     color.New(color.FgGreen, color.Bold),
		prompt:  color.New(color.FgCyan),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, c := range []*color.Color{s.fail, s.alert, s.win, s.prompt} {
		if s.colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Run plays turns read from the input until the game ends, the input is exhausted, quit is
// entered or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	s.println("Welcome to Chess!")
	s.println(fmt.Sprintf("%s goes first.", s.game.Player(s.game.Turn())))
	s.println(usage)

	redraw := true
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.game.Outcome().IsOver() {
			s.announce()
			return nil
		}
		if redraw {
			s.draw()
			s.println(fmt.Sprintf("%s's turn", s.game.Player(s.game.Turn())))
			redraw = false
		}

		_, _ = s.prompt.Fprint(s.out, "Move: ")
		if !s.in.Scan() {
			s.println("")
			return s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help":
			s.println(usage)
		case "draw", "d":
			redraw = true
		case "fen":
			s.println(s.game.Board().FEN(s.game.Turn()))
		case "moves":
			s.commandMoves()
		case "save":
			s.commandSave()
		case "load":
			redraw = s.commandLoad()
		default:
			redraw = s.commandPlay(line)
		}
	}
}

func (s *Session) commandPlay(line string) bool {
	from, to, err := ParseMove(line)
	if err != nil {
		s.failure(err)
		return false
	}
	r, err := s.game.Play(from, to)
	if err != nil {
		s.failure(err)
		return false
	}

	s.println(r.Move.Algebra())
	if r.Move.ReachedLastRank {
		s.println("Pawn reached the last rank. Promotion is not supported.")
	}
	if r.Outcome == OutcomeCheck {
		_, _ = s.alert.Fprintf(s.out, "%s is in check!\n", s.game.Player(r.Next))
	}
	return true
}

func (s *Session) commandMoves() {
	var mvs []string
	for _, mv := range s.game.LegalMoves() {
		mvs = append(mvs, mv.From.Notation()+" "+mv.To.Notation())
	}
	s.println(strings.Join(mvs, ", "))
}

func (s *Session) commandSave() {
	if s.store == nil {
		s.failure(errors.New("saving is disabled"))
		return
	}
	if err := s.store.Save(s.game.Record()); err != nil {
		s.logger.WithError(err).Error("save failed")
		s.failure(err)
		return
	}
	s.println(fmt.Sprintf("Game saved to %s", s.store.Path()))
}

func (s *Session) commandLoad() bool {
	if s.store == nil {
		s.failure(errors.New("loading is disabled"))
		return false
	}
	r, err := s.store.Load()
	if err != nil {
		s.failure(err)
		return false
	}
	if err := s.game.Restore(r); err != nil {
		s.failure(err)
		return false
	}
	s.println("Game loaded.")
	return true
}

func (s *Session) announce() {
	s.draw()
	switch s.game.Outcome() {
	case OutcomeCheckmate:
		loser := s.game.Turn()
		_, _ = s.alert.Fprintf(s.out, "%s is in checkmate!\n", s.game.Player(loser))
		_, _ = s.win.Fprintf(s.out, "%s wins!\n", s.game.Player(loser.Opposite()))
	case OutcomeStalemate:
		_, _ = s.win.Fprintln(s.out, "Stalemate!")
	}
}

func (s *Session) draw() {
	if s.unicode {
		s.println(s.game.Board().Draw(s.colored))
		return
	}
	s.println(s.game.Board().Dump())
}

func (s *Session) failure(err error) {
	_, _ = s.fail.Fprintf(s.out, "%v. Try again.\n", err)
}

func (s *Session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

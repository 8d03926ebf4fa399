package game

import (
	"errors"
	"fmt"

	"github.com/apex/log"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/position"
	"github.com/daystram/chessrules/store"
)

var (
	ErrNotYourPiece = errors.New("not your piece")
	ErrStillInCheck = errors.New("still in check")
	ErrGameOver     = errors.New("game is over")
	ErrInvalidInput = errors.New("invalid input")
)

type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeCheck
	OutcomeCheckmate
	OutcomeStalemate
)

func (o Outcome) IsOver() bool {
	return o == OutcomeCheckmate || o == OutcomeStalemate
}

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCheck:
		return "check"
	case OutcomeCheckmate:
		return "checkmate"
	case OutcomeStalemate:
		return "stalemate"
	default:
		return ""
	}
}

func outcomeOf(st board.State) Outcome {
	switch {
	case st.IsCheckmate():
		return OutcomeCheckmate
	case st.IsDraw():
		return OutcomeStalemate
	case st.IsCheck():
		return OutcomeCheck
	default:
		return OutcomeNone
	}
}

// Report describes a played move and the position it left for the side now to move.
type Report struct {
	Move    *board.Move
	Next    board.Side
	Outcome Outcome
}

type Game struct {
	board   *board.Board
	turn    board.Side
	players [2]store.Player
	outcome Outcome
	logger  log.Interface
}

type gameConfig struct {
	board   *board.Board
	turn    board.Side
	fen     string
	players [2]string
	logger  log.Interface
}

type GameOption func(*gameConfig)

// WithBoard starts the game on b with turn to move. b is owned by the game afterwards.
func WithBoard(b *board.Board, turn board.Side) GameOption {
	return func(cfg *gameConfig) {
		cfg.board, cfg.turn = b, turn
	}
}

func WithFEN(fen string) GameOption {
	return func(cfg *gameConfig) {
		cfg.fen = fen
	}
}

func WithPlayers(white, black string) GameOption {
	return func(cfg *gameConfig) {
		cfg.players = [2]string{white, black}
	}
}

func WithLogger(l log.Interface) GameOption {
	return func(cfg *gameConfig) {
		cfg.logger = l
	}
}

func NewGame(opts ...GameOption) (*Game, error) {
	cfg := &gameConfig{
		fen:     board.DefaultStartingPositionFEN,
		players: [2]string{board.SideWhite.String(), board.SideBlack.String()},
		logger:  log.Log,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	b, turn := cfg.board, cfg.turn
	if b == nil {
		var err error
		b, turn, err = board.NewBoard(board.WithFEN(cfg.fen))
		if err != nil {
			return nil, err
		}
	}
	if turn != board.SideWhite && turn != board.SideBlack {
		return nil, fmt.Errorf("%w: %s", board.ErrInvalidSide, turn)
	}

	g := &Game{
		board: b,
		turn:  turn,
		players: [2]store.Player{
			{Name: cfg.players[0], Side: board.SideWhite},
			{Name: cfg.players[1], Side: board.SideBlack},
		},
		logger: cfg.logger,
	}
	g.outcome = outcomeOf(b.State(turn))
	return g, nil
}

// Board returns the live board. Callers must not move pieces on it directly.
func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Turn() board.Side {
	return g.turn
}

// Outcome is the state of the side to move.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Winner returns the side that delivered checkmate.
func (g *Game) Winner() (board.Side, bool) {
	if g.outcome != OutcomeCheckmate {
		return board.SideUnknown, false
	}
	return g.turn.Opposite(), true
}

// Player returns the name of the player holding s.
func (g *Game) Player(s board.Side) string {
	for _, p := range g.players {
		if p.Side == s {
			return p.Name
		}
	}
	return s.String()
}

// Play moves the piece on from to to for the side whose turn it is, then passes the turn.
// While in check only moves of the King or moves onto the attack path are considered; the
// board still rejects any of them that leave the King attacked.
func (g *Game) Play(from, to position.Pos) (*Report, error) {
	logger := g.logger.WithFields(log.Fields{
		"side": g.turn,
		"from": from,
		"to":   to,
	})
	if g.outcome.IsOver() {
		return nil, ErrGameOver
	}

	if s, ok := g.board.PieceSide(from); !ok || s != g.turn {
		logger.WithField("reason", ErrNotYourPiece).Debug("move rejected")
		return nil, fmt.Errorf("%w: %s", ErrNotYourPiece, from)
	}
	if err := g.checkRestriction(from, to); err != nil {
		logger.WithField("reason", err).Debug("move rejected")
		return nil, err
	}

	mv, err := g.board.Move(from, to)
	if err != nil {
		logger.WithField("reason", err).Debug("move rejected")
		return nil, err
	}
	if mv.ReachedLastRank {
		logger.Warn("pawn reached last rank, promotion not supported")
	}

	g.turn = g.turn.Opposite()
	g.outcome = outcomeOf(g.board.State(g.turn))
	logger.WithFields(log.Fields{
		"move":    mv.Algebra(),
		"outcome": g.outcome,
	}).Info("move played")

	return &Report{Move: mv, Next: g.turn, Outcome: g.outcome}, nil
}

func (g *Game) checkRestriction(from, to position.Pos) error {
	path, checked := g.board.Check(g.turn)
	if !checked {
		return nil
	}
	if p, _ := g.board.Piece(from); p.Kind == board.KindKing {
		return nil
	}
	// an en passant capture of the checking pawn lands behind it, off the path
	if mv, err := g.board.Validate(from, to); err == nil && mv.IsEnPassant {
		return nil
	}
	targets, ok := g.board.CanBlock(path, g.turn)[from]
	if !ok {
		return fmt.Errorf("%w: %s cannot block or capture", ErrStillInCheck, from)
	}
	for _, t := range targets {
		if t == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s does not block or capture", ErrStillInCheck, to)
}

// LegalMoves lists the moves available to the side to move.
func (g *Game) LegalMoves() []*board.Move {
	if g.outcome.IsOver() {
		return nil
	}
	return g.board.LegalMoves(g.turn)
}

func (g *Game) Record() store.Record {
	return store.Record{
		Version: store.RecordVersion,
		Board:   g.board.Snapshot(),
		Turn:    g.turn,
		Players: append([]store.Player(nil), g.players[:]...),
	}
}

// Restore replaces the game state with r.
func (g *Game) Restore(r store.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	b, err := board.FromSnapshot(r.Board)
	if err != nil {
		return err
	}
	var players [2]store.Player
	for _, p := range r.Players {
		if p.Side == board.SideWhite {
			players[0] = p
		} else {
			players[1] = p
		}
	}
	g.board, g.turn, g.players = b, r.Turn, players
	g.outcome = outcomeOf(b.State(g.turn))
	g.logger.WithFields(log.Fields{
		"turn":    g.turn,
		"outcome": g.outcome,
	}).Debug("game restored")
	return nil
}

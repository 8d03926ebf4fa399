package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/config"
	"github.com/daystram/chessrules/game"
	"github.com/daystram/chessrules/store"
)

const (
	exitOK = iota
	exitErr
)

type options struct {
	fen        string
	configFile string
	configInit bool
	saveFile   string
	load       bool
	debug      bool
	noColor    bool
	ascii      bool

	perftDepth    int
	perftParallel bool
	perftVerbose  bool

	movesRun bool

	stepPlies int
	stepSeed  int64
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := realMain(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func parseFlags(args []string, errOut io.Writer) (*options, error) {
	var opts options
	fs := flag.NewFlagSet("chessrules", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.StringVar(&opts.fen, "fen", board.DefaultStartingPositionFEN, "starting position")
	fs.StringVar(&opts.configFile, "config", "", "config file (defaults to the XDG config directories)")
	fs.BoolVar(&opts.configInit, "config.init", false, "write the default config to -config or the XDG config directory and exit")
	fs.StringVar(&opts.saveFile, "save", "", "save file (defaults to the XDG data directory)")
	fs.BoolVar(&opts.load, "load", false, "resume the saved game")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&opts.ascii, "ascii", false, "draw the board with FEN letters")

	fs.IntVar(&opts.perftDepth, "perft", 0, "run perft to the given depth and exit")
	fs.BoolVar(&opts.perftParallel, "perft.parallel", true, "split perft across root moves")
	fs.BoolVar(&opts.perftVerbose, "perft.verbose", false, "report nodes below each root move")

	fs.BoolVar(&opts.movesRun, "moves", false, "list the legal moves of the position and exit")

	fs.IntVar(&opts.stepPlies, "step", 0, "play up to the given number of random plies and exit")
	fs.Int64Var(&opts.stepSeed, "step.seed", 1, "random seed in step mode")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &opts, nil
}

func realMain(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	opts, err := parseFlags(args, errOut)
	if err != nil {
		return err
	}
	if opts.configInit {
		return initConfig(out, opts.configFile)
	}

	var cfg *config.Config
	if opts.configFile != "" {
		cfg, err = config.LoadFile(opts.configFile)
	} else {
		cfg, err = config.InitConfig()
	}
	if err != nil {
		return err
	}

	logger := &log.Logger{Handler: cli.New(errOut), Level: cfg.Level()}
	if opts.debug {
		logger.Level = log.DebugLevel
	}
	colored := cfg.Color && !opts.noColor
	unicode := cfg.Unicode && !opts.ascii

	switch {
	case opts.perftDepth > 0:
		return perft(out, logger, opts.perftDepth, opts.fen, opts.perftParallel, opts.perftVerbose)
	case opts.movesRun:
		return moves(out, opts.fen, colored, unicode)
	case opts.stepPlies > 0:
		return step(out, logger, opts.fen, opts.stepPlies, opts.stepSeed)
	}

	saveFile := opts.saveFile
	if saveFile == "" {
		saveFile = cfg.SaveFile
	}
	st, err := store.New(saveFile)
	if err != nil {
		return err
	}

	g, err := game.NewGame(
		game.WithFEN(opts.fen),
		game.WithPlayers(cfg.Players.White, cfg.Players.Black),
		game.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	if opts.load {
		r, err := st.Load()
		if err != nil {
			return err
		}
		if err := g.Restore(r); err != nil {
			return err
		}
		logger.WithField("path", st.Path()).Info("game loaded")
	}

	return game.NewSession(g, in, out,
		game.WithStore(st),
		game.WithColor(colored),
		game.WithUnicode(unicode),
		game.WithSessionLogger(logger),
	).Run(ctx)
}

func initConfig(out io.Writer, path string) error {
	cfg := config.DefaultConfig
	var err error
	if path != "" {
		err = cfg.WriteFile(path)
	} else {
		path, err = cfg.Save()
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "config written to %s\n", path)
	return nil
}

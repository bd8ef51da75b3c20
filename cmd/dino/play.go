package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/engine"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/platform/term"
	"github.com/vovakirdan/tui-dino/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadDino(flagConfig)
	if err != nil {
		return err
	}
	jump, quit := cfg.KeyMap()
	keys := core.KeyMap{Jump: jump, Quit: quit}
	ramp := config.NewDifficultyRamp(cfg.Difficulty)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Debug("seeded", "seed", seed)

	var res engine.Result
	switch flagFrontend {
	case "raw":
		res, err = playRaw(cfg, keys, ramp, rng, logger)
	case "tea":
		res, err = playTea(cfg, keys, ramp, rng, logger)
	default:
		return fmt.Errorf("unknown frontend %q (expected raw or tea)", flagFrontend)
	}
	if err != nil {
		return err
	}

	if res.Outcome == engine.OutcomeGameOver {
		fmt.Fprintln(cmd.OutOrStdout(), "Game Over!")
		fmt.Fprintf(cmd.OutOrStdout(), "Your score is: %d\n", res.Score)
	}
	return nil
}

// playRaw runs the game on a raw-mode terminal. The terminal is restored
// before returning, whatever the outcome.
func playRaw(cfg config.DinoConfig, keys core.KeyMap, ramp *config.DifficultyRamp, rng dino.RandSource, logger *log.Logger) (engine.Result, error) {
	t, err := term.Open(os.Stdin, os.Stdout)
	if err != nil {
		return engine.Result{}, err
	}

	world, err := engine.MeasureWorld(t, cfg)
	if err != nil {
		t.Close()
		return engine.Result{}, err
	}

	game, err := dino.New(world, cfg, rng)
	if err != nil {
		t.Close()
		return engine.Result{}, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := engine.NewRunner(game, engine.Options{
		Keys:    keys,
		Input:   t,
		Display: t,
		Ramp:    ramp,
		Logger:  logger,
	})
	res, runErr := runner.Run(ctx)

	if err := t.Close(); err != nil {
		return res, err
	}
	if errors.Is(runErr, context.Canceled) {
		return res, nil
	}
	return res, runErr
}

// playTea runs the game as a Bubble Tea program. One row is kept free for
// the help footer.
func playTea(cfg config.DinoConfig, keys core.KeyMap, ramp *config.DifficultyRamp, rng dino.RandSource, logger *log.Logger) (engine.Result, error) {
	world, err := engine.MeasureWorld(footerGeometry{term.Window{Out: os.Stdout}}, cfg)
	if err != nil {
		return engine.Result{}, err
	}

	game, err := dino.New(world, cfg, rng)
	if err != nil {
		return engine.Result{}, err
	}

	logger.Info("run started", "frontend", "tea", "rows", world.Rows, "cols", world.Cols, "pool", world.PoolSize)
	res, err := tui.Run(game, ramp, keys)
	if err != nil {
		return res, fmt.Errorf("tea: %w", err)
	}
	logger.Info("run finished", "outcome", res.Outcome, "score", res.Score, "ticks", res.Ticks)
	return res, nil
}

// footerGeometry reports one row less than the terminal has.
type footerGeometry struct {
	engine.Geometry
}

func (g footerGeometry) Size() (rows, cols int, err error) {
	rows, cols, err = g.Geometry.Size()
	return rows - 1, cols, err
}

// newLogger builds the run logger. The game owns the terminal, so logs go
// to a file or nowhere.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dino",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

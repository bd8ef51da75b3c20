package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
)

// Outcome tells how a run ended.
type Outcome int

const (
	OutcomeQuit     Outcome = iota // Player pressed quit or the run was cancelled
	OutcomeGameOver                // Player hit an obstacle
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeQuit:
		return "quit"
	case OutcomeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Result summarises a finished run.
type Result struct {
	Outcome Outcome
	Score   int
	Ticks   int
}

// Runner is the frame loop orchestrator. It is single-threaded: the only
// blocking point is the sleep at the end of each tick, and quit or
// cancellation are only noticed between ticks.
type Runner struct {
	game     *dino.Game
	keys     core.KeyMap
	input    KeySource
	display  Display
	sleeper  Sleeper
	ramp     *config.DifficultyRamp
	interval time.Duration
	surface  *core.Surface
	logger   *log.Logger
	score    int
}

// Options bundles the collaborators of a Runner.
type Options struct {
	Keys    core.KeyMap
	Input   KeySource
	Display Display
	Sleeper Sleeper                // Defaults to ClockSleeper
	Ramp    *config.DifficultyRamp // Defaults to the built-in difficulty steps
	Logger  *log.Logger            // Defaults to the charmbracelet/log default logger
}

// NewRunner wires a game to its collaborators. The frame surface is sized
// from the game's world once and reused for every tick.
func NewRunner(game *dino.Game, opts Options) *Runner {
	if opts.Sleeper == nil {
		opts.Sleeper = ClockSleeper{}
	}
	if opts.Ramp == nil {
		opts.Ramp = config.NewDifficultyRamp(config.DefaultDinoConfig().Difficulty)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	world := game.World()
	return &Runner{
		game:     game,
		keys:     opts.Keys,
		input:    opts.Input,
		display:  opts.Display,
		sleeper:  opts.Sleeper,
		ramp:     opts.Ramp,
		interval: opts.Ramp.Initial(),
		surface:  core.NewSurface(world.Cols, world.Rows),
		logger:   opts.Logger,
	}
}

// Interval returns the current tick interval.
func (r *Runner) Interval() time.Duration {
	return r.interval
}

// Run loops until the player quits, the game ends, or ctx is cancelled.
// A cancelled context ends the run as a quit and returns ctx.Err().
func (r *Runner) Run(ctx context.Context) (Result, error) {
	world := r.game.World()
	r.logger.Info("run started",
		"rows", world.Rows, "cols", world.Cols,
		"ground", world.GroundRow, "pool", world.PoolSize,
		"interval", r.interval)

	for {
		if err := ctx.Err(); err != nil {
			return r.finish(OutcomeQuit), err
		}

		done, outcome, err := r.tick()
		if err != nil {
			return r.finish(OutcomeQuit), err
		}
		if done {
			return r.finish(outcome), nil
		}

		if err := r.sleeper.Sleep(ctx, r.interval); err != nil {
			return r.finish(OutcomeQuit), err
		}
	}
}

// tick runs one iteration up to, but not including, the sleep.
func (r *Runner) tick() (done bool, outcome Outcome, err error) {
	action := core.ActionNone
	if key, ok := r.input.PollKey(); ok {
		action = r.keys.Action(key)
	}

	result := r.game.Step(action)
	switch {
	case result.Quit:
		return true, OutcomeQuit, nil
	case result.State.GameOver:
		return true, OutcomeGameOver, nil
	}

	if result.State.Score != r.score {
		r.score = result.State.Score
		r.logger.Debug("obstacle cleared", "score", r.score, "tick", r.game.Ticks(), "active", r.game.Pool().ActiveCount())
	}

	r.game.Render(r.surface)
	if err := r.display.Flush(r.surface); err != nil {
		return true, OutcomeQuit, fmt.Errorf("engine: cannot draw frame: %w", err)
	}

	if next := r.ramp.Interval(result.State.Score); next != r.interval {
		r.logger.Info("speeding up", "score", result.State.Score, "level", r.ramp.Level(result.State.Score), "interval", next)
		r.interval = next
	}
	return false, OutcomeQuit, nil
}

func (r *Runner) finish(outcome Outcome) Result {
	state := r.game.State()
	res := Result{Outcome: outcome, Score: state.Score, Ticks: r.game.Ticks()}
	r.logger.Info("run finished", "outcome", outcome, "score", res.Score, "ticks", res.Ticks)
	return res
}

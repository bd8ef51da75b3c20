// Package engine runs the fixed-tick frame loop. It owns the game, the
// frame surface and the tick interval for the whole run and talks to the
// outside world only through the small interfaces below.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// KeySource delivers key presses without blocking.
type KeySource interface {
	// PollKey returns the next pending key, or false if none is waiting.
	PollKey() (rune, bool)
}

// Display shows a finished frame.
type Display interface {
	Flush(s *core.Surface) error
}

// Geometry reports the terminal size.
type Geometry interface {
	Size() (rows, cols int, err error)
}

// Sleeper blocks between ticks.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// MeasureWorld queries the terminal size once and derives the run geometry.
func MeasureWorld(geo Geometry, cfg config.DinoConfig) (core.World, error) {
	rows, cols, err := geo.Size()
	if err != nil {
		return core.World{}, fmt.Errorf("engine: cannot read terminal size: %w", err)
	}
	if rows <= 0 || cols <= 0 {
		return core.World{}, fmt.Errorf("engine: unusable terminal size %dx%d", cols, rows)
	}
	return core.NewWorld(rows, cols, cfg.World.GroundMargin, cfg.World.PoolDivisor), nil
}

// ClockSleeper sleeps on the wall clock and wakes early on cancellation.
type ClockSleeper struct{}

// Sleep waits for d or until ctx is done, whichever comes first.
func (ClockSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

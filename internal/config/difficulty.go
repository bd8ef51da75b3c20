package config

import "time"

// DifficultyRamp maps the current score to a tick interval.
// Intervals only shrink as thresholds are met, which speeds the game up.
type DifficultyRamp struct {
	enabled bool
	initial time.Duration
	steps   []DifficultyStep
}

// NewDifficultyRamp creates a ramp from validated config.
func NewDifficultyRamp(cfg DifficultyConfig) *DifficultyRamp {
	steps := make([]DifficultyStep, len(cfg.Steps))
	copy(steps, cfg.Steps)
	return &DifficultyRamp{
		enabled: cfg.Enabled,
		initial: microseconds(cfg.InitialIntervalUS),
		steps:   steps,
	}
}

// IsEnabled returns whether the interval changes with score.
func (d *DifficultyRamp) IsEnabled() bool {
	return d.enabled && len(d.steps) > 0
}

// Initial returns the interval used before any threshold is met.
func (d *DifficultyRamp) Initial() time.Duration {
	return d.initial
}

// Level returns how many thresholds the score has met or exceeded.
func (d *DifficultyRamp) Level(score int) int {
	if !d.IsEnabled() {
		return 0
	}
	level := 0
	for _, step := range d.steps {
		if score < step.Score {
			break
		}
		level++
	}
	return level
}

// Interval returns the tick interval for the given score. Evaluating it every
// tick is idempotent: past a threshold it keeps returning the same value.
func (d *DifficultyRamp) Interval(score int) time.Duration {
	level := d.Level(score)
	if level == 0 {
		return d.initial
	}
	return microseconds(d.steps[level-1].IntervalUS)
}

func microseconds(us int) time.Duration {
	return time.Duration(us) * time.Microsecond
}

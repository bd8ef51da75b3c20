// Package config provides YAML-based tuning for the runner and the
// score-driven difficulty ramp.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// DinoConfig contains all tuning for the runner.
type DinoConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    DinoPhysics      `yaml:"physics"`
	Obstacles  DinoObstacles    `yaml:"obstacles"`
	Player     DinoPlayer       `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Keys       KeyConfig        `yaml:"keys"`
}

// WorldConfig defines how the play field is derived from the terminal size.
type WorldConfig struct {
	GroundMargin float64 `yaml:"ground_margin"` // Fraction of rows below the ground line
	PoolDivisor  int     `yaml:"pool_divisor"`  // One obstacle slot per this many columns
}

// DinoPhysics defines physics parameters, in cells and ticks.
type DinoPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	ScrollSpeed int     `yaml:"scroll_speed"`
}

// DinoObstacles defines obstacle spawning parameters.
type DinoObstacles struct {
	SpawnChance int `yaml:"spawn_chance"` // A free slot spawns with probability 1/SpawnChance per tick
	MinGap      int `yaml:"min_gap"`      // Columns between the right edge and the rightmost obstacle
	HitboxInset int `yaml:"hitbox_inset"` // Cells trimmed from the sprite on the hitbox width, height and top
}

// DinoPlayer defines player parameters.
type DinoPlayer struct {
	X           int `yaml:"x"`
	HitboxWidth int `yaml:"hitbox_width"`
	HitboxTrim  int `yaml:"hitbox_trim"` // Cells trimmed from the sprite height
}

// DifficultyConfig defines the tick interval ramp.
type DifficultyConfig struct {
	Enabled           bool             `yaml:"enabled"`
	InitialIntervalUS int              `yaml:"initial_interval_us"`
	Steps             []DifficultyStep `yaml:"steps"`
}

// DifficultyStep lowers the tick interval once the score reaches Score.
type DifficultyStep struct {
	Score      int `yaml:"score"`
	IntervalUS int `yaml:"interval_us"`
}

// KeyConfig binds the two recognised keys. "space" names the space bar.
type KeyConfig struct {
	Jump string `yaml:"jump"`
	Quit string `yaml:"quit"`
}

// KeyMap returns the parsed key bindings. Call it on a validated config.
func (c DinoConfig) KeyMap() (jump, quit rune) {
	jump, _ = ParseKey(c.Keys.Jump)
	quit, _ = ParseKey(c.Keys.Quit)
	return jump, quit
}

// ParseKey converts a key name from the config into the rune a terminal sends.
func ParseKey(name string) (rune, error) {
	switch name {
	case "space":
		return ' ', nil
	case "":
		return 0, fmt.Errorf("%w: empty key", ErrInvalid)
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || size != len(name) {
		return 0, fmt.Errorf("%w: key %q must be a single character or \"space\"", ErrInvalid, name)
	}
	return r, nil
}

// SpriteBounds are the sprite sizes the hitboxes are cut from.
type SpriteBounds struct {
	PlayerHeight   int
	ObstacleWidth  int
	ObstacleHeight int
}

// ValidateHitboxes checks that the hitbox trims leave both hitboxes with a
// positive area for sprites of the given size.
func (c DinoConfig) ValidateHitboxes(b SpriteBounds) error {
	if limit := min(b.ObstacleWidth, b.ObstacleHeight); c.Obstacles.HitboxInset >= limit {
		return fmt.Errorf("%w: obstacles.hitbox_inset must be below %d, got %d", ErrInvalid, limit, c.Obstacles.HitboxInset)
	}
	if c.Player.HitboxTrim >= b.PlayerHeight {
		return fmt.Errorf("%w: player.hitbox_trim must be below %d, got %d", ErrInvalid, b.PlayerHeight, c.Player.HitboxTrim)
	}
	return nil
}

// Validate checks that the configuration can drive a run.
func (c DinoConfig) Validate() error {
	switch {
	case c.World.GroundMargin < 0 || c.World.GroundMargin >= 1:
		return fmt.Errorf("%w: world.ground_margin must be in [0, 1), got %v", ErrInvalid, c.World.GroundMargin)
	case c.World.PoolDivisor <= 0:
		return fmt.Errorf("%w: world.pool_divisor must be positive, got %d", ErrInvalid, c.World.PoolDivisor)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be positive, got %v", ErrInvalid, c.Physics.Gravity)
	case c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("%w: physics.jump_impulse must be negative (upwards), got %v", ErrInvalid, c.Physics.JumpImpulse)
	case c.Physics.ScrollSpeed <= 0:
		return fmt.Errorf("%w: physics.scroll_speed must be positive, got %d", ErrInvalid, c.Physics.ScrollSpeed)
	case c.Obstacles.SpawnChance <= 0:
		return fmt.Errorf("%w: obstacles.spawn_chance must be positive, got %d", ErrInvalid, c.Obstacles.SpawnChance)
	case c.Obstacles.HitboxInset < 0:
		return fmt.Errorf("%w: obstacles.hitbox_inset must not be negative, got %d", ErrInvalid, c.Obstacles.HitboxInset)
	case c.Player.HitboxWidth <= 0:
		return fmt.Errorf("%w: player.hitbox_width must be positive, got %d", ErrInvalid, c.Player.HitboxWidth)
	case c.Player.HitboxTrim < 0:
		return fmt.Errorf("%w: player.hitbox_trim must not be negative, got %d", ErrInvalid, c.Player.HitboxTrim)
	case c.Difficulty.InitialIntervalUS <= 0:
		return fmt.Errorf("%w: difficulty.initial_interval_us must be positive, got %d", ErrInvalid, c.Difficulty.InitialIntervalUS)
	}

	prev := 0
	for i, step := range c.Difficulty.Steps {
		if step.Score <= prev {
			return fmt.Errorf("%w: difficulty.steps[%d].score must be above %d, got %d", ErrInvalid, i, prev, step.Score)
		}
		if step.IntervalUS <= 0 {
			return fmt.Errorf("%w: difficulty.steps[%d].interval_us must be positive, got %d", ErrInvalid, i, step.IntervalUS)
		}
		prev = step.Score
	}

	jump, err := ParseKey(c.Keys.Jump)
	if err != nil {
		return fmt.Errorf("keys.jump: %w", err)
	}
	quit, err := ParseKey(c.Keys.Quit)
	if err != nil {
		return fmt.Errorf("keys.quit: %w", err)
	}
	if jump == quit {
		return fmt.Errorf("%w: keys.jump and keys.quit are both %q", ErrInvalid, c.Keys.Jump)
	}
	return nil
}

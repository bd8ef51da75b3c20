// Package dino implements a Chrome Dino-style endless runner.
// The player jumps over cacti that scroll in from the right; every cactus
// that leaves the screen scores a point and touching one ends the run.
package dino

import (
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// Game runs the simulation side of one tick: input, physics, obstacles and
// the collision sweep. Pacing lives with the caller.
type Game struct {
	world    core.World
	physics  Physics
	player   Player
	pool     *Pool
	score    Score
	gameOver bool
	ticks    int
}

// New creates a run for the given world and tuning. The tuning is validated
// first, including that the hitbox trims leave both sprites a hitbox with
// area; errors wrap config.ErrInvalid.
func New(world core.World, cfg config.DinoConfig, rng RandSource) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.ValidateHitboxes(Bounds()); err != nil {
		return nil, err
	}

	g := &Game{world: world}
	g.physics = Physics{
		Gravity:     cfg.Physics.Gravity,
		JumpImpulse: cfg.Physics.JumpImpulse,
		RestY:       world.GroundRow - DinoSprite.Height(),
	}
	g.player = NewPlayer(cfg.Player.X, g.physics, cfg.Player.HitboxWidth, DinoSprite.Height()-cfg.Player.HitboxTrim)
	g.pool = NewPool(PoolSpec{
		Capacity:    world.PoolSize,
		ScreenW:     world.Cols,
		GroundRow:   world.GroundRow,
		Speed:       cfg.Physics.ScrollSpeed,
		SpawnChance: cfg.Obstacles.SpawnChance,
		MinGap:      cfg.Obstacles.MinGap,
		HitboxInset: cfg.Obstacles.HitboxInset,
		Sprite:      CactusSprite,
	}, rng)
	return g, nil
}

// Step advances the game by one tick.
// Order is fixed: input, physics, obstacles, then the collision sweep, so a
// collision always sees positions after this tick's movement.
func (g *Game) Step(action core.Action) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	switch action {
	case core.ActionQuit:
		return core.StepResult{State: g.State(), Quit: true}
	case core.ActionJump:
		g.player.Jump(g.physics)
	}

	g.ticks++
	g.player.Step(g.physics)
	g.pool.Update(&g.score)

	if g.pool.Collides(g.player.Box) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Count(),
		GameOver: g.gameOver,
	}
}

// World returns the geometry the game was built for.
func (g *Game) World() core.World {
	return g.world
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Pool returns the obstacle pool.
func (g *Game) Pool() *Pool {
	return g.pool
}

// Ticks returns the number of simulated ticks.
func (g *Game) Ticks() int {
	return g.ticks
}

// Render draws the current game state to the surface.
func (g *Game) Render(dst *core.Surface) {
	Compose(dst, g.world, g.player, g.pool.Slots(), g.score)
}

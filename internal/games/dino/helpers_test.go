package dino

import (
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// scriptedRand replays values, then repeats fallback forever.
type scriptedRand struct {
	values   []int
	fallback int
	calls    int
}

func (r *scriptedRand) Int() int {
	r.calls++
	if len(r.values) > 0 {
		v := r.values[0]
		r.values = r.values[1:]
		return v
	}
	return r.fallback
}

// neverSpawn is a random source whose draws never hit the spawn chance.
func neverSpawn() *scriptedRand {
	return &scriptedRand{fallback: 1}
}

func testPoolSpec(screenW int) PoolSpec {
	cfg := config.DefaultDinoConfig()
	return PoolSpec{
		Capacity:    screenW / cfg.World.PoolDivisor,
		ScreenW:     screenW,
		GroundRow:   21,
		Speed:       cfg.Physics.ScrollSpeed,
		SpawnChance: cfg.Obstacles.SpawnChance,
		MinGap:      cfg.Obstacles.MinGap,
		HitboxInset: cfg.Obstacles.HitboxInset,
		Sprite:      CactusSprite,
	}
}

func testGame(rows, cols int, rng RandSource) *Game {
	cfg := config.DefaultDinoConfig()
	world := core.NewWorld(rows, cols, cfg.World.GroundMargin, cfg.World.PoolDivisor)
	g, err := New(world, cfg, rng)
	if err != nil {
		panic(err)
	}
	return g
}

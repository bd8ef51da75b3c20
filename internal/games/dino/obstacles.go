package dino

import (
	"github.com/vovakirdan/tui-dino/internal/core"
)

// RandSource supplies the per-slot spawn draws. *rand.Rand satisfies it.
type RandSource interface {
	Int() int
}

// Obstacle is one slot of the pool. While inactive its position and box are
// stale leftovers of the last run through the screen (or zero before first use).
type Obstacle struct {
	X, Y   int
	Active bool
	Box    core.Box
}

// Score counts obstacles that scrolled off the screen. It never decreases.
type Score struct {
	count int
}

// Count returns the number of obstacles cleared.
func (s Score) Count() int {
	return s.count
}

func (s *Score) increment() {
	s.count++
}

// PoolSpec fixes the geometry and spawning rules of a pool.
type PoolSpec struct {
	Capacity    int         // Number of slots
	ScreenW     int         // Spawn column is ScreenW-1
	GroundRow   int         // Obstacles stand on this row
	Speed       int         // Columns scrolled per tick
	SpawnChance int         // A free slot spawns when draw % SpawnChance == 0
	MinGap      int         // Required distance from the right edge to the rightmost slot
	HitboxInset int         // Hitbox is this much narrower, shorter and lower than the sprite
	Sprite      core.Sprite // Obstacle bitmap
}

// Pool handles spawning, movement, and removal of obstacles in a
// fixed-capacity set of slots allocated once.
type Pool struct {
	slots []Obstacle
	spec  PoolSpec
	rng   RandSource
}

// NewPool creates a pool with every slot inactive.
func NewPool(spec PoolSpec, rng RandSource) *Pool {
	if spec.Capacity < 0 {
		spec.Capacity = 0
	}
	if spec.SpawnChance < 1 {
		spec.SpawnChance = 1
	}
	return &Pool{
		slots: make([]Obstacle, spec.Capacity),
		spec:  spec,
		rng:   rng,
	}
}

// Slots returns the pool's slots, active or not.
func (p *Pool) Slots() []Obstacle {
	return p.slots
}

// ActiveCount returns how many slots are on screen.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// CanSpawn reports whether the rightmost slot is far enough from the right
// edge to spawn another obstacle. The rightmost slot is picked among all
// slots, inactive ones included, so a stale position can delay spawning.
func (p *Pool) CanSpawn() bool {
	if len(p.slots) == 0 {
		return false
	}
	last := 0
	for i := range p.slots {
		if p.slots[last].X < p.slots[i].X {
			last = i
		}
	}
	return p.spec.ScreenW-p.slots[last].X >= p.spec.MinGap
}

// Spawn activates slot i at the right edge of the screen.
// Out-of-range indices are ignored.
func (p *Pool) Spawn(i int) {
	if i < 0 || i >= len(p.slots) {
		return
	}
	sp := p.spec.Sprite
	inset := p.spec.HitboxInset
	x := p.spec.ScreenW - 1
	y := p.spec.GroundRow - sp.Height()
	p.slots[i] = Obstacle{
		X:      x,
		Y:      y,
		Active: true,
		Box:    core.NewBox(x, y+inset, sp.Width()-inset, sp.Height()-inset),
	}
}

// Update advances every slot by one tick. Active slots scroll left and are
// retired, scoring a point, once their right edge leaves the screen. Each
// inactive slot draws for a spawn and spawns if the gap allows it.
// Returns the number of obstacles spawned and cleared this tick.
func (p *Pool) Update(score *Score) (spawned, cleared int) {
	for i := range p.slots {
		obs := &p.slots[i]
		if obs.Active {
			obs.X -= p.spec.Speed
			obs.Box = obs.Box.Translate(-p.spec.Speed, 0)
			if obs.X+p.spec.Sprite.Width() < 0 {
				obs.Active = false
				score.increment()
				cleared++
			}
			continue
		}
		if p.rng.Int()%p.spec.SpawnChance == 0 && p.CanSpawn() {
			p.Spawn(i)
			spawned++
		}
	}
	return spawned, cleared
}

// Collides tests box against every slot's hitbox. Inactive slots are swept
// too; their stale boxes sit off the left edge or have no area.
func (p *Pool) Collides(box core.Box) bool {
	for i := range p.slots {
		if p.slots[i].Box.Overlaps(box) {
			return true
		}
	}
	return false
}

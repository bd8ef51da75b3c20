package dino

import (
	"testing"

	"github.com/vovakirdan/tui-dino/internal/core"
)

func TestPoolSpawnGeometry(t *testing.T) {
	pool := NewPool(testPoolSpec(80), neverSpawn())
	pool.Spawn(2)

	obs := pool.Slots()[2]
	if !obs.Active {
		t.Fatal("spawned slot should be active")
	}
	if obs.X != 79 || obs.Y != 14 {
		t.Errorf("position = (%d, %d), expected (79, 14)", obs.X, obs.Y)
	}
	// Hitbox is one cell narrower and shorter, shifted one row down
	if expected := core.NewBox(79, 15, 10, 6); obs.Box != expected {
		t.Errorf("Box = %+v, expected %+v", obs.Box, expected)
	}

	// Out-of-range indices are ignored
	pool.Spawn(-1)
	pool.Spawn(len(pool.Slots()))
	if pool.ActiveCount() != 1 {
		t.Errorf("ActiveCount() = %d, expected 1", pool.ActiveCount())
	}
}

func TestPoolCanSpawn(t *testing.T) {
	tests := []struct {
		name     string
		slots    []Obstacle
		expected bool
	}{
		{
			name:     "fresh pool",
			slots:    make([]Obstacle, 3),
			expected: true,
		},
		{
			name:     "rightmost active too close",
			slots:    []Obstacle{{X: 10, Active: true}, {X: 51, Active: true}},
			expected: false,
		},
		{
			name:     "rightmost active exactly at gap",
			slots:    []Obstacle{{X: 10, Active: true}, {X: 50, Active: true}},
			expected: true,
		},
		{
			// Inactive slots still count; their stale x can block spawning.
			name:     "stale inactive slot is rightmost",
			slots:    []Obstacle{{X: 75, Active: false}, {X: 0, Active: true}},
			expected: false,
		},
		{
			name:     "everything off the left edge",
			slots:    []Obstacle{{X: -12}, {X: -40}},
			expected: true,
		},
		{
			name:     "empty pool",
			slots:    []Obstacle{},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool := NewPool(testPoolSpec(80), neverSpawn())
			pool.slots = tc.slots
			if got := pool.CanSpawn(); got != tc.expected {
				t.Errorf("CanSpawn() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPoolScrollsActiveSlotsWithHitbox(t *testing.T) {
	pool := NewPool(testPoolSpec(80), neverSpawn())
	pool.Spawn(0)
	var score Score

	for i := 1; i <= 5; i++ {
		pool.Update(&score)
		obs := pool.Slots()[0]
		if obs.X != 79-2*i {
			t.Fatalf("tick %d: X = %d, expected %d", i, obs.X, 79-2*i)
		}
		if obs.Box.X != obs.X {
			t.Fatalf("tick %d: Box.X = %d out of sync with X = %d", i, obs.Box.X, obs.X)
		}
	}
}

// One obstacle spawned at the right edge scrolls all the way out.
func TestPoolObstacleCrossesScreen(t *testing.T) {
	const width = 81
	rng := &scriptedRand{values: []int{0}, fallback: 1}
	pool := NewPool(testPoolSpec(width), rng)
	var score Score

	spawned, _ := pool.Update(&score)
	if spawned != 1 || !pool.Slots()[0].Active || pool.Slots()[0].X != width-1 {
		t.Fatalf("expected slot 0 spawned at x=%d, got %+v", width-1, pool.Slots()[0])
	}

	sw := CactusSprite.Width()
	expectedTicks := (width - 1 + sw + 1) / 2 // ceil((width-1+sw)/2)

	ticks := 0
	for pool.Slots()[0].Active && ticks < 1000 {
		if score.Count() != 0 {
			t.Fatalf("score %d before the obstacle left", score.Count())
		}
		pool.Update(&score)
		ticks++
	}

	if ticks != expectedTicks {
		t.Errorf("obstacle left after %d ticks, expected %d", ticks, expectedTicks)
	}
	if score.Count() != 1 {
		t.Errorf("score = %d, expected 1", score.Count())
	}
}

func TestPoolDespawnIsIdempotent(t *testing.T) {
	pool := NewPool(testPoolSpec(80), neverSpawn())
	pool.Spawn(0)
	var score Score

	for pool.Slots()[0].Active {
		pool.Update(&score)
	}
	retired := pool.Slots()[0]

	for i := 0; i < 50; i++ {
		_, cleared := pool.Update(&score)
		if cleared != 0 {
			t.Fatalf("tick %d cleared %d obstacles from an empty pool", i, cleared)
		}
	}

	if pool.Slots()[0] != retired {
		t.Errorf("inactive slot changed: %+v -> %+v", retired, pool.Slots()[0])
	}
	if score.Count() != 1 {
		t.Errorf("score = %d, expected 1", score.Count())
	}
}

func TestPoolFullDoesNotSpawn(t *testing.T) {
	pool := NewPool(testPoolSpec(80), neverSpawn())
	for i := range pool.Slots() {
		pool.Spawn(i)
		pool.slots[i].X -= 20 * i
		pool.slots[i].Box.X -= 20 * i
	}
	before := make([]Obstacle, len(pool.Slots()))
	copy(before, pool.Slots())

	rng := &scriptedRand{fallback: 0}
	pool.rng = rng
	var score Score

	spawned, cleared := pool.Update(&score)
	if spawned != 0 || cleared != 0 {
		t.Errorf("Update() = (%d, %d), expected (0, 0)", spawned, cleared)
	}
	if rng.calls != 0 {
		t.Errorf("full pool drew %d spawn numbers, expected none", rng.calls)
	}
	if pool.ActiveCount() != len(before) {
		t.Errorf("ActiveCount() = %d, expected %d", pool.ActiveCount(), len(before))
	}
	for i, obs := range pool.Slots() {
		if obs.X != before[i].X-2 {
			t.Errorf("slot %d at x=%d, expected %d", i, obs.X, before[i].X-2)
		}
	}
}

func TestPoolRespectsSpawnGap(t *testing.T) {
	// Every draw hits; only the gap rule limits spawning.
	pool := NewPool(testPoolSpec(80), &scriptedRand{fallback: 0})
	var score Score

	spawned, _ := pool.Update(&score)
	if spawned != 1 {
		t.Fatalf("first tick spawned %d, expected 1", spawned)
	}

	// x = 79 - 2k must reach 50 before the next spawn: k = 15.
	for tick := 1; tick <= 15; tick++ {
		spawned, _ = pool.Update(&score)
		if tick < 15 && spawned != 0 {
			t.Fatalf("tick %d spawned too early", tick)
		}
	}
	if spawned != 1 {
		t.Errorf("tick 15 spawned %d, expected 1", spawned)
	}
	if pool.Slots()[1].X != 79 || pool.Slots()[0].X != 49 {
		t.Errorf("slots at x=%d and x=%d, expected 49 and 79", pool.Slots()[0].X, pool.Slots()[1].X)
	}
}

func TestPoolCollides(t *testing.T) {
	pool := NewPool(testPoolSpec(80), neverSpawn())
	player := core.NewBox(5, 3, 9, 16)

	if pool.Collides(player) {
		t.Error("zeroed slots must not collide")
	}

	pool.Spawn(0)
	if pool.Collides(player) {
		t.Error("obstacle at the right edge must not collide")
	}

	pool.slots[0].Box = core.NewBox(12, 15, 10, 6)
	if !pool.Collides(player) {
		t.Error("overlapping obstacle should collide")
	}

	// The sweep does not skip inactive slots.
	pool.slots[0].Active = false
	if !pool.Collides(player) {
		t.Error("inactive slot with an overlapping stale box should collide")
	}
}

func TestPoolZeroCapacity(t *testing.T) {
	pool := NewPool(testPoolSpec(14), &scriptedRand{fallback: 0})
	var score Score

	if len(pool.Slots()) != 0 {
		t.Fatalf("capacity = %d, expected 0", len(pool.Slots()))
	}
	if spawned, cleared := pool.Update(&score); spawned != 0 || cleared != 0 {
		t.Errorf("Update() on empty pool = (%d, %d)", spawned, cleared)
	}
	if pool.Collides(core.NewBox(0, 0, 100, 100)) {
		t.Error("empty pool collided")
	}
}

package dino

import "github.com/vovakirdan/tui-dino/internal/core"

// Physics holds the vertical motion constants for the player.
type Physics struct {
	Gravity     float64 // Added to velocity every airborne tick
	JumpImpulse float64 // Velocity set by a jump (negative = up)
	RestY       int     // Y the player stands at on the ground
}

// Player is the jumping character. Box always follows Y.
type Player struct {
	X, Y     int
	Velocity float64
	Grounded bool
	Box      core.Box
}

// NewPlayer creates a grounded player at (x, ph.RestY) with a hitbox of the
// given size anchored at its top-left corner.
func NewPlayer(x int, ph Physics, hitboxW, hitboxH int) Player {
	return Player{
		X:        x,
		Y:        ph.RestY,
		Grounded: true,
		Box:      core.NewBox(x, ph.RestY, hitboxW, hitboxH),
	}
}

// Jump starts a jump. It is accepted only on the ground, so impulses
// never stack. Returns whether the jump started.
func (p *Player) Jump(ph Physics) bool {
	if !p.Grounded {
		return false
	}
	p.Velocity = ph.JumpImpulse
	p.Grounded = false
	return true
}

// Step integrates one tick of gravity. Grounded players do not move.
// Landing clamps Y to the rest line and leaves the velocity as is; the next
// jump overwrites it.
func (p *Player) Step(ph Physics) {
	if p.Grounded {
		return
	}
	// Position moves by the old velocity, truncated toward zero.
	p.Y = int(float64(p.Y) + p.Velocity)
	p.Velocity += ph.Gravity
	if p.Y >= ph.RestY {
		p.Y = ph.RestY
		p.Grounded = true
	}
	p.Box.Y = p.Y
}

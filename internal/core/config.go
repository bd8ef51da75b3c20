package core

// World holds the geometry of a run. It is computed once from the terminal
// size at startup and never changes afterwards.
type World struct {
	Rows      int // Screen height in characters
	Cols      int // Screen width in characters
	GroundRow int // Row the ground line is drawn on
	PoolSize  int // Obstacle pool capacity
}

// NewWorld derives the run geometry from the terminal size.
// groundMargin is the fraction of rows kept below the ground line (0.1 puts
// the ground at 90% of the height); poolDivisor sets one obstacle slot per
// that many columns.
func NewWorld(rows, cols int, groundMargin float64, poolDivisor int) World {
	rows = Max(rows, 0)
	cols = Max(cols, 0)
	pool := 0
	if poolDivisor > 0 {
		pool = cols / poolDivisor
	}
	return World{
		Rows:      rows,
		Cols:      cols,
		GroundRow: int(float64(rows) - float64(float64(rows)*groundMargin)),
		PoolSize:  pool,
	}
}

// GameState represents the current state of a run.
type GameState struct {
	Score    int  // Obstacles cleared so far
	GameOver bool // Whether the run has ended in a collision
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // The player asked to leave
}

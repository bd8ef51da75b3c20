package dino

import (
	"fmt"

	"github.com/vovakirdan/tui-dino/internal/core"
)

// Row the score is drawn on, right-aligned.
const scoreRow = 1

// Compose rebuilds the frame from scratch. Later layers win where they
// overlap: clear, score, ground, active obstacles, player.
func Compose(dst *core.Surface, world core.World, player Player, slots []Obstacle, score Score) {
	dst.Clear()

	dst.DrawTextRight(scoreRow, ScoreText(score.Count()), core.ColorYellow)

	dst.DrawHLine(0, world.GroundRow, world.Cols, GroundChar, core.ColorGray)

	for _, obs := range slots {
		if obs.Active {
			dst.Stamp(obs.X, obs.Y, CactusSprite, core.ColorGreen)
		}
	}

	dst.Stamp(player.X, player.Y, DinoSprite, core.ColorBrightWhite)
}

// ScoreText formats the score HUD.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

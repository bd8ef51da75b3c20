package dino

import (
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// Visual characters for rendering
const (
	GroundChar = '-'
)

// DinoSprite is the player bitmap.
var DinoSprite = core.NewSprite(
	"           ######### ",
	"          ### #######",
	"          ###########",
	"          ###########",
	"          ######     ",
	"          #########  ",
	"#       #######      ",
	"##    ############   ",
	"###  ##########  #   ",
	"###############      ",
	"###############      ",
	" #############       ",
	"  ###########        ",
	"    ########         ",
	"     ###  ##         ",
	"     ##    #         ",
	"     #     #         ",
	"     ##    ##        ",
)

// CactusSprite is the obstacle bitmap.
var CactusSprite = core.NewSprite(
	`  _  _     `,
	` | || | _  `,
	` | || || | `,
	`  \_  || | `,
	`    |  _/  `,
	`    | |    `,
	`    |_|    `,
)

// Bounds returns the sprite sizes the configured hitboxes are cut from.
func Bounds() config.SpriteBounds {
	return config.SpriteBounds{
		PlayerHeight:   DinoSprite.Height(),
		ObstacleWidth:  CactusSprite.Width(),
		ObstacleHeight: CactusSprite.Height(),
	}
}

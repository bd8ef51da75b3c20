package core

// Sprite is an immutable character bitmap. Blank cells are transparent when
// stamped onto a Surface.
type Sprite struct {
	rows   [][]rune
	width  int
	height int
}

// NewSprite builds a sprite from text rows. Short rows are padded with
// blanks so every row has the width of the widest one.
func NewSprite(lines ...string) Sprite {
	width := 0
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
		width = Max(width, len(rows[i]))
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, Blank)
		}
		rows[i] = row
	}
	return Sprite{rows: rows, width: width, height: len(rows)}
}

// Width returns the sprite width in characters.
func (sp Sprite) Width() int {
	return sp.width
}

// Height returns the sprite height in characters.
func (sp Sprite) Height() int {
	return sp.height
}

// At returns the glyph at (x, y) within the sprite, or Blank outside it.
func (sp Sprite) At(x, y int) rune {
	if y < 0 || y >= sp.height || x < 0 || x >= sp.width {
		return Blank
	}
	return sp.rows[y][x]
}

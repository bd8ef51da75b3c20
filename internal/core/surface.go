package core

import (
	"strings"
)

// Blank is the glyph used for empty cells, both on a Surface and in Sprites.
const Blank = ' '

// Cell is a single character position on a Surface.
type Cell struct {
	Rune  rune
	Color Color
}

// Surface is a fixed-size character grid holding one frame.
// It owns no game state; games rebuild it from scratch every tick.
// All writes are clipped to the grid, so callers may pass any coordinates.
type Surface struct {
	width  int
	height int
	cells  []Cell
}

// NewSurface creates a cleared surface with the given dimensions.
// Negative dimensions are treated as zero.
func NewSurface(width, height int) *Surface {
	width = Max(width, 0)
	height = Max(height, 0)
	s := &Surface{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	s.Clear()
	return s
}

// Width returns the surface width in characters.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in characters.
func (s *Surface) Height() int {
	return s.height
}

// inBounds reports whether (x, y) addresses a cell of the grid.
func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Clear fills every cell with a blank glyph.
func (s *Surface) Clear() {
	s.Fill(Blank)
}

// Fill fills every cell with the given rune.
func (s *Surface) Fill(r rune) {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: r}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Surface) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Surface) SetColored(x, y int, r rune, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns Blank for out-of-bounds coordinates.
func (s *Surface) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Surface) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return Cell{Rune: Blank}
	}
	return s.cells[y*s.width+x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond surface bounds are clipped.
func (s *Surface) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// DrawTextRight writes text so that its last character lands in the last
// column of row y. Text wider than the surface loses its leading characters.
func (s *Surface) DrawTextRight(y int, text string, c Color) {
	s.DrawText(s.width-len([]rune(text)), y, text, c)
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Surface) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, r, c)
	}
}

// Stamp copies the non-blank cells of a sprite onto the surface with the
// sprite's top-left corner at (x, y). Cells falling outside are dropped.
func (s *Surface) Stamp(x, y int, sp Sprite, c Color) {
	for dy := 0; dy < sp.Height(); dy++ {
		for dx := 0; dx < sp.Width(); dx++ {
			if r := sp.At(dx, dy); r != Blank {
				s.SetColored(x+dx, y+dy, r, c)
			}
		}
	}
}

// String converts the surface to plain text, one line per row.
func (s *Surface) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string.
// Out-of-range rows come back blank.
func (s *Surface) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(string(Blank), s.width)
	}
	row := make([]rune, s.width)
	for x := range row {
		row[x] = s.cells[y*s.width+x].Rune
	}
	return string(row)
}

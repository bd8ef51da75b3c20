package term

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/platform/render"
)

// ANSI sequences used by the display.
const (
	clearScreen = "\x1b[H\x1b[J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	// Raw mode turns off output post-processing, so rows need an explicit CR.
	rowSeparator = "\r\n"
)

// Display writes whole frames to a terminal: clear, then one line per row.
// Column 0 is not written, so a full-width row never wraps onto the next line.
type Display struct {
	w       *bufio.Writer
	palette *render.Palette
}

// NewDisplay creates a display writing to w. Colors are used only if w is a
// color terminal.
func NewDisplay(w io.Writer) *Display {
	return &Display{
		w:       bufio.NewWriter(w),
		palette: render.NewPalette(lipgloss.NewRenderer(w)),
	}
}

// Flush clears the screen and draws the surface.
func (d *Display) Flush(s *core.Surface) error {
	d.w.WriteString(clearScreen)
	d.w.WriteString(d.palette.Screen(s, 1, rowSeparator))
	if err := d.w.Flush(); err != nil {
		return fmt.Errorf("term: write frame: %w", err)
	}
	return nil
}

// write sends a raw control sequence.
func (d *Display) write(seq string) error {
	d.w.WriteString(seq)
	return d.w.Flush()
}

// Package render turns a core.Surface into styled terminal text with lipgloss.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dino/internal/core"
)

// Palette maps core colors to lipgloss styles for one output.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds the styles against a renderer, which decides the color
// profile (plain text when the output is not a terminal).
func NewPalette(r *lipgloss.Renderer) *Palette {
	return &Palette{
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault:     r.NewStyle(),
			core.ColorGreen:       r.NewStyle().Foreground(lipgloss.Color("2")),
			core.ColorYellow:      r.NewStyle().Foreground(lipgloss.Color("3")),
			core.ColorGray:        r.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorBrightWhite: r.NewStyle().Foreground(lipgloss.Color("15")),
		},
	}
}

// DefaultPalette uses lipgloss's default renderer (stdout).
func DefaultPalette() *Palette {
	return NewPalette(lipgloss.DefaultRenderer())
}

// Row renders row y starting at column from.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Palette) Row(s *core.Surface, y, from int) string {
	var sb strings.Builder
	x := core.Max(from, 0)
	for x < s.Width() {
		startColor := s.GetCell(x, y).Color

		// Collect consecutive cells with same color
		var run strings.Builder
		for x < s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != startColor {
				break
			}
			run.WriteRune(cell.Rune)
			x++
		}

		style, ok := p.styles[startColor]
		if !ok {
			style = p.styles[core.ColorDefault]
		}
		sb.WriteString(style.Render(run.String()))
	}
	return sb.String()
}

// Screen renders every row from column from, joined with sep.
func (p *Palette) Screen(s *core.Surface, from int, sep string) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height()*len(sep))

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(p.Row(s, y, from))
	}
	return sb.String()
}

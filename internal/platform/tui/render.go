package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/meteor-dodge/internal/core"
)

// ansiColors maps core.Color to ANSI 256-color codes.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:  lipgloss.Color("16"),
	core.ColorWhite:  lipgloss.Color("231"),
	core.ColorBlue:   lipgloss.Color("21"),
	core.ColorRed:    lipgloss.Color("196"),
	core.ColorYellow: lipgloss.Color("226"),
	core.ColorCyan:   lipgloss.Color("51"),
	core.ColorOrange: lipgloss.Color("208"),
	core.ColorGray:   lipgloss.Color("245"),
}

type cellStyle struct {
	fg, bg core.Color
}

// styleFor builds the lipgloss style for a foreground/background pair.
// ColorDefault leaves the terminal's own color in place.
func styleFor(cs cellStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := ansiColors[cs.fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := ansiColors[cs.bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = styleFor(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

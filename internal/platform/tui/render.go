package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// colorStyles is indexed by core.Color. Built once at load; mutating
// lipgloss styles per frame would dominate render time.
var colorStyles = buildColorStyles()

func buildColorStyles() []lipgloss.Style {
	ansi := map[core.Color]string{
		core.ColorRed:           "1",
		core.ColorGreen:         "2",
		core.ColorYellow:        "3",
		core.ColorBlue:          "4",
		core.ColorMagenta:       "5",
		core.ColorCyan:          "6",
		core.ColorWhite:         "7",
		core.ColorBrightRed:     "9",
		core.ColorBrightGreen:   "10",
		core.ColorBrightYellow:  "11",
		core.ColorBrightBlue:    "12",
		core.ColorBrightMagenta: "13",
		core.ColorBrightCyan:    "14",
		core.ColorBrightWhite:   "15",
		core.ColorOrange:        "208",
		core.ColorGray:          "245",
	}

	styles := make([]lipgloss.Style, int(core.ColorGray)+1)
	for c := range styles {
		if code, ok := ansi[core.Color(c)]; ok { //#nosec G115 -- small palette index
			styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		} else {
			styles[c] = lipgloss.NewStyle()
		}
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(colorStyles) {
		return colorStyles[c]
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped to keep the ANSI
// escape overhead down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
)

// ansi256 is the terminal color code for each cell color.
var ansi256 = map[core.Color]string{
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

// ScreenRenderer turns a core.Screen into styled terminal text.
type ScreenRenderer struct {
	plain  lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

// NewScreenRenderer builds the palette for r. The renderer decides the
// color profile, so output to a non-terminal comes out unstyled.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	sr := &ScreenRenderer{
		plain:  r.NewStyle(),
		styles: make(map[core.Color]lipgloss.Style, len(ansi256)),
	}
	for c, code := range ansi256 {
		sr.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return sr
}

var stdoutRenderer = NewScreenRenderer(lipgloss.NewRenderer(os.Stdout))

// RenderScreen renders s for standard output.
func RenderScreen(s *core.Screen) string {
	return stdoutRenderer.Render(s)
}

// Render styles each row in runs of one color. Blank cells take no
// escape codes whatever their color.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			blankRun := first.Rune == ' '

			run.Reset()
			for ; x < s.Width(); x++ {
				c := s.GetCell(x, y)
				if (c.Rune == ' ') != blankRun || (!blankRun && c.Color != first.Color) {
					break
				}
				run.WriteRune(c.Rune)
			}

			if blankRun {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(first.Color).Render(run.String()))
		}
	}
	return sb.String()
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if st, ok := sr.styles[c]; ok {
		return st
	}
	return sr.plain
}

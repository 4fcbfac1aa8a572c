package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Painter converts Screen buffers into styled strings. Styles are built
// once per distinct core.Style and cached.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[core.Style]lipgloss.Style
}

// NewPainter creates a painter for the given renderer. A nil renderer uses
// the default one bound to stdout.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[core.Style]lipgloss.Style),
	}
}

// Renderer returns the underlying lipgloss renderer.
func (p *Painter) Renderer() *lipgloss.Renderer {
	return p.renderer
}

func (p *Painter) style(st core.Style) lipgloss.Style {
	if s, ok := p.styles[st]; ok {
		return s
	}
	s := p.renderer.NewStyle().Bold(st.Bold).Reverse(st.Reverse)
	if st.Fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(strconv.Itoa(st.Fg.ANSI())))
	}
	if st.Bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(strconv.Itoa(st.Bg.ANSI())))
	}
	p.styles[st] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// The cell at (cursorX, cursorY) is drawn with reverse video toggled; pass
// a position off the screen to hide the cursor.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func (p *Painter) RenderScreen(s *core.Screen, cursorX, cursorY int) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	cellAt := func(x, y int) core.Cell {
		c := s.GetCell(x, y)
		if x == cursorX && y == cursorY {
			c.Style.Reverse = !c.Style.Reverse
		}
		return c
	}

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := cellAt(x, y).Style

			run.Reset()
			for x < s.Width() {
				cell := cellAt(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

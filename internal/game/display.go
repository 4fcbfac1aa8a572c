package game

import (
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/minefield"
)

// Outcome is how a game ended.
type Outcome int

const (
	OutcomeLose Outcome = iota
	OutcomeWin
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	if o == OutcomeWin {
		return "win"
	}
	return "lose"
}

// Display is what a Session draws through. RenderGlyph is called once for
// every cell whose look changed; RenderBanner once when a game ends.
type Display interface {
	RenderGlyph(x, y int, g minefield.Glyph)
	RenderBanner(o Outcome)
}

// Theme decides how glyphs and banners look on a core.Screen.
type Theme struct {
	Glyphs      [minefield.GlyphCount]core.Cell
	BannerStyle core.Style
	LoseMessage string
	WinMessage  string
}

// Message returns the banner text for an outcome.
func (t Theme) Message(o Outcome) string {
	if o == OutcomeWin {
		return t.WinMessage
	}
	return t.LoseMessage
}

// ScreenDisplay draws a session onto a core.Screen. The screen has the
// size of the field; one screen cell per field cell.
type ScreenDisplay struct {
	screen *core.Screen
	theme  Theme
}

// NewScreenDisplay creates a display drawing into screen with theme.
func NewScreenDisplay(screen *core.Screen, theme Theme) *ScreenDisplay {
	return &ScreenDisplay{screen: screen, theme: theme}
}

// Screen returns the buffer being drawn into.
func (d *ScreenDisplay) Screen() *core.Screen {
	return d.screen
}

// RenderGlyph implements Display.
func (d *ScreenDisplay) RenderGlyph(x, y int, g minefield.Glyph) {
	if int(g) >= len(d.theme.Glyphs) {
		return
	}
	d.screen.SetCell(x, y, d.theme.Glyphs[g])
}

// RenderBanner implements Display. The message is boxed and centered over
// the field; the next FillField redraws every cell underneath it.
func (d *ScreenDisplay) RenderBanner(o Outcome) {
	msg := d.theme.Message(o)
	w := len([]rune(msg)) + 4
	r := core.CenteredRect(d.screen.Width(), d.screen.Height(), w, 3)
	d.screen.DrawBox(r, d.theme.BannerStyle)
	d.screen.DrawText(r.X+2, r.Y+1, msg, d.theme.BannerStyle)
}

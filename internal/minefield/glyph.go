package minefield

// Glyph identifies what a cell looks like to the player. The values for
// revealed cells match Content so a revealed cell's glyph is its content.
type Glyph uint8

const (
	GlyphEmpty Glyph = iota
	GlyphOne
	GlyphTwo
	GlyphThree
	GlyphFour
	GlyphFive
	GlyphSix
	GlyphSeven
	GlyphEight
	GlyphBomb
	GlyphClosed
	GlyphFlagged

	GlyphCount = int(GlyphFlagged) + 1
)

// Glyph returns the glyph of a revealed cell with this content.
func (c Content) Glyph() Glyph {
	return Glyph(c)
}

// Glyph returns the marker drawn for a cell that is not opened.
func (s State) Glyph() Glyph {
	if s == StateFlagged {
		return GlyphFlagged
	}
	return GlyphClosed
}

// Revealed reports whether the glyph shows cell content.
func (g Glyph) Revealed() bool {
	return g <= GlyphBomb
}

// String returns a short name, used in logs and test failures.
func (g Glyph) String() string {
	switch {
	case g == GlyphEmpty:
		return "empty"
	case g >= GlyphOne && g <= GlyphEight:
		return string(rune('0' + g))
	case g == GlyphBomb:
		return "bomb"
	case g == GlyphClosed:
		return "closed"
	case g == GlyphFlagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Change records that the cell at (X, Y) must be redrawn as Glyph.
type Change struct {
	X, Y  int
	Glyph Glyph
}

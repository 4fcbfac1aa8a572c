package minefield

// FlagCell toggles the cell at (x, y) between closed and flagged. Opened
// cells are left alone and nothing changes once play has been lost.
// The coordinates must be in bounds.
func (f *Field) FlagCell(x, y int) []Change {
	if f.exploded {
		return nil
	}

	i := f.index(x, y)
	switch f.state[i] {
	case StateClosed:
		f.state[i] = StateFlagged
		f.flags++
	case StateFlagged:
		f.state[i] = StateClosed
		f.flags--
	default:
		return nil
	}
	return []Change{f.change(i, f.state[i].Glyph())}
}

// CheckWinCondition reports whether the game is won: every safe cell is open
// and the number of flags equals the number of bombs. Flags are not checked
// for placement; the counts alone decide.
func (f *Field) CheckWinCondition() bool {
	return f.flags == f.bombs && f.opened == f.width*f.height-f.bombs
}

// DrawAllBombs returns a change revealing every bomb, whatever its state.
// The field itself is not modified.
func (f *Field) DrawAllBombs() []Change {
	changes := make([]Change, 0, f.bombs)
	for i, c := range f.content {
		if c == ContentBomb {
			changes = append(changes, f.change(i, GlyphBomb))
		}
	}
	return changes
}

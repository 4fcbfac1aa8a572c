package minefield

// FillField starts a new game on the same field: every cell becomes empty and
// closed, bombs are placed at distinct random cells and the adjacent counts
// are computed. The returned changes redraw every cell as closed.
func (f *Field) FillField() []Change {
	changes := f.reset()

	// Rejection sampling terminates because New guarantees at least one
	// safe cell.
	for placed := 0; placed < f.bombs; {
		x := f.rng.Intn(f.width)
		y := f.rng.Intn(f.height)
		i := f.index(x, y)
		if f.content[i] == ContentBomb {
			continue
		}
		f.content[i] = ContentBomb
		placed++
	}

	f.countBombs()
	return changes
}

// plant lays bombs on exactly the given cell indices instead of random ones.
func (f *Field) plant(bombs []int) []Change {
	changes := f.reset()
	for _, i := range bombs {
		f.content[i] = ContentBomb
	}
	f.bombs = len(bombs)
	f.countBombs()
	return changes
}

func (f *Field) reset() []Change {
	f.flags = 0
	f.opened = 0
	f.exploded = false
	f.queue.Clear()

	changes := make([]Change, 0, len(f.state))
	for i := range f.state {
		f.content[i] = ContentEmpty
		f.state[i] = StateClosed
		changes = append(changes, f.change(i, GlyphClosed))
	}
	return changes
}

// countBombs stores the Moore-neighbour bomb count in every non-bomb cell.
func (f *Field) countBombs() {
	var buf [8]int
	for i := range f.content {
		if f.content[i] == ContentBomb {
			continue
		}
		x, y := f.coords(i)
		n := 0
		for _, j := range f.neighbours(x, y, buf[:0]) {
			if f.content[j] == ContentBomb {
				n++
			}
		}
		f.content[i] = Content(n)
	}
}

package minefield

// OpenCell opens the cell at (x, y).
//
// A closed cell is revealed; if it is empty the reveal spreads through the
// connected empty region and its numbered border. Opening an already opened
// numbered cell chords: when the number of flagged neighbours equals the
// cell's count, every neighbour is opened. The result is Explosion if any
// bomb was revealed, Unsuccessful if the target is out of bounds, flagged, or
// play has already been lost.
func (f *Field) OpenCell(x, y int) (Result, []Change) {
	if f.exploded {
		return Unsuccessful, nil
	}
	return f.open(x, y, false, nil)
}

// open implements OpenCell. chordProbe marks opens issued by a chord, which
// must not chord again themselves.
func (f *Field) open(x, y int, chordProbe bool, changes []Change) (Result, []Change) {
	if !f.InBounds(x, y) {
		return Unsuccessful, changes
	}

	i := f.index(x, y)
	switch f.state[i] {
	case StateFlagged:
		return Unsuccessful, changes
	case StateClosed:
		return f.reveal(i, changes)
	}

	c := f.content[i]
	if chordProbe || c == ContentEmpty || c == ContentBomb {
		return Success, changes
	}
	return f.chord(x, y, c, changes)
}

// reveal opens the closed cell i and, through a work queue, every cell the
// cascade reaches from it. Each cell is opened at most once.
func (f *Field) reveal(start int, changes []Change) (Result, []Change) {
	result := Success
	var buf [8]int

	f.queue.Clear()
	f.queue.PushBack(start)
	for f.queue.Len() > 0 {
		i := f.queue.PopFront()
		if f.state[i] != StateClosed {
			continue
		}

		f.state[i] = StateOpened
		f.opened++
		changes = append(changes, f.change(i, f.content[i].Glyph()))

		switch f.content[i] {
		case ContentBomb:
			f.exploded = true
			result = Explosion
		case ContentEmpty:
			x, y := f.coords(i)
			for _, n := range f.neighbours(x, y, buf[:0]) {
				if f.state[n] == StateClosed {
					f.queue.PushBack(n)
				}
			}
		}
	}
	return result, changes
}

// chord opens all neighbours of the opened cell (x, y) when its flagged
// neighbours account for all of its bombs.
func (f *Field) chord(x, y int, count Content, changes []Change) (Result, []Change) {
	if f.flagsAround(x, y) != int(count) {
		return Success, changes
	}

	result := Success
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			var r Result
			r, changes = f.open(x+dx, y+dy, true, changes)
			if r == Explosion {
				result = Explosion
			}
		}
	}
	return result, changes
}

func (f *Field) flagsAround(x, y int) int {
	var buf [8]int
	n := 0
	for _, j := range f.neighbours(x, y, buf[:0]) {
		if f.state[j] == StateFlagged {
			n++
		}
	}
	return n
}

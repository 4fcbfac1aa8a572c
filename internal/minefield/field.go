// Package minefield implements the classic Minesweeper board: generation,
// reveal with flood fill, chording, flagging and the win check.
//
// Operations never draw anything. Each mutating call returns the cells whose
// visible glyph changed, in the order they changed, so the caller decides how
// and when to render them.
package minefield

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gammazero/deque"
)

// Content is the fixed classification of a cell after generation.
// Values 1 through 8 are adjacent bomb counts.
type Content uint8

const (
	ContentEmpty Content = 0
	ContentBomb  Content = 9
)

// Count returns the adjacent bomb count, or -1 for a bomb.
func (c Content) Count() int {
	if c == ContentBomb {
		return -1
	}
	return int(c)
}

// State is the mutable visibility of a cell.
type State uint8

const (
	StateClosed State = iota
	StateFlagged
	StateOpened
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateFlagged:
		return "flagged"
	case StateOpened:
		return "opened"
	default:
		return "unknown"
	}
}

// Result is the outcome of OpenCell.
type Result int

const (
	Unsuccessful Result = iota // out of bounds, flagged, or play already lost
	Success
	Explosion
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case Unsuccessful:
		return "unsuccessful"
	case Success:
		return "success"
	case Explosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Errors returned by Validate and New.
var (
	ErrBadSize      = errors.New("minefield: width and height must be positive")
	ErrNoBombs      = errors.New("minefield: bomb count must be positive")
	ErrTooManyBombs = errors.New("minefield: bomb count must be less than the number of cells")
)

// Validate checks that a field of the given dimensions can hold the given
// number of bombs with at least one safe cell.
func Validate(width, height, bombs int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrBadSize, width, height)
	}
	if bombs <= 0 {
		return fmt.Errorf("%w: got %d", ErrNoBombs, bombs)
	}
	if bombs >= width*height {
		return fmt.Errorf("%w: %d bombs for %d cells", ErrTooManyBombs, bombs, width*height)
	}
	return nil
}

// Field is a Minesweeper board. Content and state live in two flat buffers
// indexed by y*width+x, allocated once and reset in place by FillField.
type Field struct {
	width  int
	height int
	bombs  int

	content []Content
	state   []State

	flags    int // cells in StateFlagged
	opened   int // cells in StateOpened
	exploded bool

	rng   *rand.Rand
	queue deque.Deque[int] // pending cell indices for reveal
}

// New allocates a field. The field is empty and fully closed until FillField
// is called. A nil rng is replaced by one seeded from the clock.
func New(width, height, bombs int, rng *rand.Rand) (*Field, error) {
	if err := Validate(width, height, bombs); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cells := width * height
	return &Field{
		width:   width,
		height:  height,
		bombs:   bombs,
		content: make([]Content, cells),
		state:   make([]State, cells),
		rng:     rng,
	}, nil
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// Bombs returns the number of bombs placed by FillField.
func (f *Field) Bombs() int { return f.bombs }

// Flags returns the number of flagged cells.
func (f *Field) Flags() int { return f.flags }

// Opened returns the number of opened cells.
func (f *Field) Opened() int { return f.opened }

// Exploded reports whether a bomb has been opened since the last FillField.
func (f *Field) Exploded() bool { return f.exploded }

// InBounds reports whether (x, y) addresses a cell of the field.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// ContentAt returns the content of the cell at (x, y).
// The coordinates must be in bounds.
func (f *Field) ContentAt(x, y int) Content {
	return f.content[f.index(x, y)]
}

// StateAt returns the state of the cell at (x, y).
// The coordinates must be in bounds.
func (f *Field) StateAt(x, y int) State {
	return f.state[f.index(x, y)]
}

// GlyphAt returns what the player currently sees at (x, y).
func (f *Field) GlyphAt(x, y int) Glyph {
	i := f.index(x, y)
	if f.state[i] == StateOpened {
		return f.content[i].Glyph()
	}
	return f.state[i].Glyph()
}

func (f *Field) index(x, y int) int {
	return y*f.width + x
}

func (f *Field) coords(i int) (int, int) {
	return i % f.width, i / f.width
}

func (f *Field) change(i int, g Glyph) Change {
	x, y := f.coords(i)
	return Change{X: x, Y: y, Glyph: g}
}

// neighbours appends the indices of the in-bounds Moore neighbours of (x, y)
// to dst and returns the extended slice.
func (f *Field) neighbours(x, y int, dst []int) []int {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if f.InBounds(nx, ny) {
				dst = append(dst, f.index(nx, ny))
			}
		}
	}
	return dst
}

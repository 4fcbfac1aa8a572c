package core

import (
	"fmt"
	"strings"
)

// Color represents a terminal color for a screen cell.
// Values map to the 16 basic ANSI colors; ColorDefault leaves the
// terminal's own color in place.
type Color uint8

// Predefined colors, in ANSI order after ColorDefault.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

var colorNames = []string{
	"default",
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// String returns the color name accepted by ParseColor.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", c)
}

// ANSI returns the ANSI color index, or -1 for ColorDefault.
func (c Color) ANSI() int {
	return int(c) - 1
}

// ParseColor converts a color name such as "red" or "bright-blue" to a Color.
// Names are case-insensitive; an empty name is ColorDefault.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ColorDefault, nil
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}

// Style describes how a screen cell is drawn.
type Style struct {
	Fg      Color
	Bg      Color
	Bold    bool
	Reverse bool
}

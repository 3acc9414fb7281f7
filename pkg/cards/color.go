package cards

import (
	"fmt"
	"sync"
)

// Color represents a card color
type Color int

const (
	Red Color = iota
	Green
	Blue
	White
	Yellow
)

// colorNames holds the canonical display name for each color, in declaration
// order. Every name must start with a distinct letter; the letter index build
// enforces this.
var colorNames = []string{"Red", "Green", "Blue", "White", "Yellow"}

// NumberOfColors is the count of defined colors
var NumberOfColors = len(colorNames)

// Colors returns all defined colors in declaration order
func Colors() []Color {
	colors := make([]Color, len(colorNames))
	for i := range colorNames {
		colors[i] = Color(i)
	}
	return colors
}

// valid reports whether c is one of the defined enumeration members
func (c Color) valid() bool {
	return c >= 0 && int(c) < len(colorNames)
}

// String returns the canonical color name, e.g. "Red"
func (c Color) String() string {
	if !c.valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Letter returns the first letter of the canonical color name
func (c Color) Letter() byte {
	return c.String()[0]
}

// letterIndex is the shared first-letter lookup, built once on first use and
// read-only afterwards.
var letterIndex struct {
	once     sync.Once
	byLetter map[byte]Color
	err      error
}

// buildLetterIndex maps the first letter of each name to its color. It fails
// if two names share a first letter, since letter lookups would then be
// ambiguous.
func buildLetterIndex(names []string) (map[byte]Color, error) {
	index := make(map[byte]Color, len(names))
	for i, name := range names {
		letter := name[0]
		if other, ok := index[letter]; ok {
			return nil, NewCardError(ErrColorSetInvalid,
				fmt.Sprintf("colors %s and %s share the first letter %q", names[other], name, letter))
		}
		index[letter] = Color(i)
	}
	return index, nil
}

func ensureLetterIndex() error {
	letterIndex.once.Do(func() {
		letterIndex.byLetter, letterIndex.err = buildLetterIndex(colorNames)
	})
	return letterIndex.err
}

// ParseColorLetter returns the color whose canonical name starts with letter.
// Matching is case-sensitive: the letter must be the canonical uppercase
// initial, so 'R' parses and 'r' does not.
func ParseColorLetter(letter byte) (Color, error) {
	if err := ensureLetterIndex(); err != nil {
		return 0, err
	}
	color, ok := letterIndex.byLetter[letter]
	if !ok {
		return 0, NewCardError(ErrUnknownColorLetter,
			fmt.Sprintf("no color starts with %q", string(rune(letter))))
	}
	return color, nil
}

// ParseColorName returns the color whose canonical name exactly matches name.
// Matching is case-sensitive: "Red" parses and "red" does not.
func ParseColorName(name string) (Color, error) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, NewCardError(ErrUnknownColorName,
		fmt.Sprintf("unknown color name %q", name))
}

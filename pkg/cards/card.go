package cards

import (
	"fmt"
	"strconv"
)

// MaxAbbreviationLength is the longest valid abbreviation: one color letter
// plus as many digits as RankLimit needs.
var MaxAbbreviationLength = len(strconv.Itoa(RankLimit)) + 1

// Card represents a single playing card as an immutable color and rank pair.
// Cards compare by value: two cards are equal iff color and rank both match.
type Card struct {
	color Color
	rank  int
}

// NewCard creates a new card from a color and rank. The color must be a
// defined enumeration member and the rank must fall within [1, RankLimit].
func NewCard(color Color, rank int) (Card, error) {
	if !color.valid() {
		return Card{}, NewCardError(ErrInvalidColor,
			fmt.Sprintf("color value %d is not a defined color", int(color)))
	}
	if rank < 1 || rank > RankLimit {
		return Card{}, NewCardError(ErrRankOutOfRange,
			fmt.Sprintf("rank %d is outside 1..%d", rank, RankLimit))
	}
	return Card{color: color, rank: rank}, nil
}

// ParseCard creates a card from its abbreviation, e.g. "R1" for a red one.
// The first character is the color letter, the rest is the rank.
func ParseCard(abbreviation string) (Card, error) {
	if abbreviation == "" {
		return Card{}, NewCardError(ErrAbbreviationEmpty, "abbreviation expected")
	}
	if len(abbreviation) < 2 {
		return Card{}, NewCardError(ErrAbbreviationTooShort,
			fmt.Sprintf("abbreviation %q needs a color letter and a rank", abbreviation))
	}
	if len(abbreviation) > MaxAbbreviationLength {
		return Card{}, NewCardError(ErrAbbreviationTooLong,
			fmt.Sprintf("abbreviation %q is longer than %d characters", abbreviation, MaxAbbreviationLength))
	}

	color, err := ParseColorLetter(abbreviation[0])
	if err != nil {
		return Card{}, err
	}
	rank, err := ParseRank(abbreviation[1:])
	if err != nil {
		return Card{}, err
	}
	return NewCard(color, rank)
}

// Color returns the card's color
func (c Card) Color() Color {
	return c.color
}

// Rank returns the card's rank
func (c Card) Rank() int {
	return c.rank
}

// Abbreviation returns the color letter followed by the rank, e.g. "R1".
// It round-trips through ParseCard.
func (c Card) Abbreviation() string {
	return fmt.Sprintf("%c%d", c.color.Letter(), c.rank)
}

// Name returns the display form of the card, e.g. "Red 1"
func (c Card) Name() string {
	return fmt.Sprintf("%s %d", c.color, c.rank)
}

// String returns the abbreviation
func (c Card) String() string {
	return c.Abbreviation()
}

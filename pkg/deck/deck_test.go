package deck

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/hanabi/pkg/cards"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestNew() {
	d := New()

	s.NotNil(d, "Deck should not be nil")
	s.NotEmpty(d.ID, "Deck should carry a deal ID")
	s.Len(d.Cards, 50, "Full deck should have 50 cards")

	// Count copies per (color, rank)
	counts := make(map[cards.Card]int)
	for _, card := range d.Cards {
		counts[card]++
	}

	for _, color := range cards.Colors() {
		for rank := 1; rank <= cards.RankLimit; rank++ {
			card, err := cards.NewCard(color, rank)
			s.NoError(err)

			expected := 2
			switch rank {
			case 1:
				expected = 3
			case cards.RankLimit:
				expected = 1
			}
			s.Equal(expected, counts[card], "Deck should have %d copies of %s", expected, card)
		}
	}
}

func (s *DeckTestSuite) TestNewDecksGetDistinctIDs() {
	s.NotEqual(New().ID, New().ID, "Each deal should get its own ID")
}

func (s *DeckTestSuite) TestShuffle() {
	// Setup
	deck1 := New()
	deck2 := New()

	// Verify decks are initially in the same order
	for i := range deck1.Cards {
		s.Equal(deck1.Cards[i], deck2.Cards[i], "Initial decks should be in the same order")
	}

	// Execute
	deck1.Shuffle()

	// Assert
	cardsMatch := true
	for i := range deck1.Cards {
		if deck1.Cards[i] != deck2.Cards[i] {
			cardsMatch = false
			break
		}
	}
	s.False(cardsMatch, "Shuffled deck should be in different order than original")

	// Verify no cards were lost or duplicated
	s.Len(deck1.Cards, 50, "Shuffled deck should still have 50 cards")
	before := make(map[cards.Card]int)
	after := make(map[cards.Card]int)
	for i := range deck2.Cards {
		before[deck2.Cards[i]]++
		after[deck1.Cards[i]]++
	}
	s.Equal(before, after, "Shuffling should preserve the card multiset")
}

func (s *DeckTestSuite) TestDraw() {
	testCases := []struct {
		name           string
		drawCount      int
		expectedDraw   int
		expectedRemain int
	}{
		{
			name:           "draw zero cards",
			drawCount:      0,
			expectedDraw:   0,
			expectedRemain: 50,
		},
		{
			name:           "draw one card",
			drawCount:      1,
			expectedDraw:   1,
			expectedRemain: 49,
		},
		{
			name:           "draw a hand",
			drawCount:      5,
			expectedDraw:   5,
			expectedRemain: 45,
		},
		{
			name:           "draw all cards",
			drawCount:      50,
			expectedDraw:   50,
			expectedRemain: 0,
		},
		{
			name:           "draw more than deck size",
			drawCount:      60,
			expectedDraw:   50,
			expectedRemain: 0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Setup
			d := New()

			// Execute
			drawn := d.Draw(tc.drawCount)

			// Assert
			s.Len(drawn, tc.expectedDraw, "Should draw expected number of cards")
			s.Equal(tc.expectedRemain, d.Remaining(), "Deck should have expected number of remaining cards")
		})
	}
}

func (s *DeckTestSuite) TestDrawOne() {
	// Setup
	d := New()
	top := d.Cards[0]

	// Execute
	drawn, ok := d.DrawOne()

	// Assert
	s.True(ok, "Drawing from a full deck should succeed")
	s.Equal(top, drawn, "DrawOne should return the top card")
	s.Equal(49, d.Remaining(), "Deck should have one less card")

	// Test drawing from empty deck
	empty := &Deck{}
	_, ok = empty.DrawOne()
	s.False(ok, "Drawing from an empty deck should report failure")
}

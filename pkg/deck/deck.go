package deck

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/fadedpez/hanabi/pkg/cards"
)

// Deck represents a full fireworks deck. Each color contributes three 1s, two
// each of the middle ranks, and a single top-rank card.
type Deck struct {
	ID    string
	Cards []cards.Card

	rng *rand.Rand
}

// copiesOf returns how many cards of the given rank each color contributes
func copiesOf(rank int) int {
	switch rank {
	case 1:
		return 3
	case cards.RankLimit:
		return 1
	default:
		return 2
	}
}

// New creates a new unshuffled deck in color then rank order, tagged with a
// unique deal ID.
func New() *Deck {
	var cs []cards.Card
	for _, color := range cards.Colors() {
		for rank := 1; rank <= cards.RankLimit; rank++ {
			card, err := cards.NewCard(color, rank)
			if err != nil {
				// unreachable for the defined color set
				continue
			}
			for i := 0; i < copiesOf(rank); i++ {
				cs = append(cs, card)
			}
		}
	}

	return &Deck{
		ID:    uuid.NewString(),
		Cards: cs,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Shuffle randomizes the deck order
func (d *Deck) Shuffle() {
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d.rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw removes and returns up to n cards from the top of the deck
func (d *Deck) Draw(n int) []cards.Card {
	if n > len(d.Cards) {
		n = len(d.Cards)
	}
	if n < 0 {
		n = 0
	}

	drawn := d.Cards[:n]
	d.Cards = d.Cards[n:]
	return drawn
}

// DrawOne removes and returns the top card from the deck. The second return
// value is false if the deck is empty.
func (d *Deck) DrawOne() (cards.Card, bool) {
	if len(d.Cards) == 0 {
		return cards.Card{}, false
	}
	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card, true
}

// Remaining returns how many cards are left in the deck
func (d *Deck) Remaining() int {
	return len(d.Cards)
}

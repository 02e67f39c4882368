package card

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/rand/v2"

	"euchre/internal/apperrors"
)

// Deck is the shuffle/deal source for one hand. Cards are consumed strictly
// front to back after a shuffle and the deck is never re-shuffled mid-deal.
type Deck struct {
	cards []Card
	next  int
}

// NewDeck builds the 24-card Euchre deck, or 25 cards when the nine-of-hearts
// variant adds its extra card.
func NewDeck(withExtraNine bool) *Deck {
	size := 24
	if withExtraNine {
		size = 25
	}
	cards := make([]Card, 0, size)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	if withExtraNine {
		cards = append(cards, Card{Suit: Hearts, Rank: Nine})
	}
	return &Deck{cards: cards}
}

// Size returns the number of cards the deck holds.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Shuffle produces a uniformly random permutation of all cards and rewinds
// the deal cursor. The generator is seeded from the system's secure source,
// so permutations are not reproducible across runs.
func (d *Deck) Shuffle() {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		// crypto/rand.Read only fails when the OS entropy source is broken.
		panic(fmt.Sprintf("cannot seed shuffle: %v", err))
	}
	rng := rand.New(rand.NewChaCha8(seed))
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.next = 0
}

// GetNextCard returns the next undealt card. It fails with ErrDeckExhausted
// once every card has been dealt since the last shuffle; that indicates a
// sequencing bug in the caller, never a normal condition.
func (d *Deck) GetNextCard() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, apperrors.ErrDeckExhausted
	}
	c := d.cards[d.next]
	d.next++
	return c, nil
}

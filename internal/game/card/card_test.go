package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBowers(t *testing.T) {
	t.Parallel()

	for _, trump := range Suits() {
		right := Card{Suit: trump, Rank: Jack}
		left := Card{Suit: trump.SameColor(), Rank: Jack}

		assert.True(t, right.IsRightBower(trump), "jack of %s with %s trump", trump.Name(), trump.Name())
		assert.False(t, right.IsLeftBower(trump))
		assert.True(t, left.IsLeftBower(trump))
		assert.False(t, left.IsRightBower(trump))

		// The off-color jacks are plain cards.
		for _, s := range Suits() {
			if s == trump || s == trump.SameColor() {
				continue
			}
			j := Card{Suit: s, Rank: Jack}
			assert.False(t, j.IsRightBower(trump))
			assert.False(t, j.IsLeftBower(trump))
		}
	}
}

func TestBowersNoTrump(t *testing.T) {
	t.Parallel()

	j := Card{Suit: Spades, Rank: Jack}
	assert.False(t, j.IsRightBower(NoSuit))
	assert.False(t, j.IsLeftBower(NoSuit))
}

func TestSameColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Spades, Clubs.SameColor())
	assert.Equal(t, Clubs, Spades.SameColor())
	assert.Equal(t, Hearts, Diamonds.SameColor())
	assert.Equal(t, Diamonds, Hearts.SameColor())
}

func TestEffectiveSuit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		card  Card
		trump Suit
		want  Suit
	}{
		{"left bower counts as trump", Card{Suit: Clubs, Rank: Jack}, Spades, Spades},
		{"right bower stays trump", Card{Suit: Spades, Rank: Jack}, Spades, Spades},
		{"plain card keeps its suit", Card{Suit: Hearts, Rank: Ace}, Spades, Hearts},
		{"no trump means natural suit", Card{Suit: Clubs, Rank: Jack}, NoSuit, Clubs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, EffectiveSuit(tt.card, tt.trump))
		})
	}
}

func TestBelongsToLedSuit(t *testing.T) {
	t.Parallel()

	// Hearts trump, diamonds led: the jack of diamonds is trump, not a
	// diamond.
	jd := Card{Suit: Diamonds, Rank: Jack}
	assert.False(t, BelongsToLedSuit(jd, Diamonds, Hearts))
	assert.True(t, BelongsToLedSuit(jd, Hearts, Hearts))

	ad := Card{Suit: Diamonds, Rank: Ace}
	assert.True(t, BelongsToLedSuit(ad, Diamonds, Hearts))
	assert.False(t, BelongsToLedSuit(ad, NoSuit, Hearts))
}

func TestRelativeRankOrdering(t *testing.T) {
	t.Parallel()

	trump, led := Spades, Diamonds

	// Strongest to weakest under spades trump, diamonds led.
	order := []Card{
		{Suit: Spades, Rank: Jack},  // right bower
		{Suit: Clubs, Rank: Jack},   // left bower
		{Suit: Spades, Rank: Ace},   // plain trump
		{Suit: Spades, Rank: Nine},  // lowest trump
		{Suit: Diamonds, Rank: Ace}, // led suit
		{Suit: Diamonds, Rank: Nine},
	}
	for i := 1; i < len(order); i++ {
		prev := RelativeRank(order[i-1], trump, led)
		cur := RelativeRank(order[i], trump, led)
		assert.Greater(t, prev, cur, "%s should outrank %s", order[i-1], order[i])
	}

	// Cards of neither suit share the floor and can never win.
	assert.Equal(t, RelativeRank(Card{Suit: Hearts, Rank: Ace}, trump, led),
		RelativeRank(Card{Suit: Clubs, Rank: Nine}, trump, led))
	assert.Less(t, RelativeRank(Card{Suit: Hearts, Rank: Ace}, trump, led),
		RelativeRank(Card{Suit: Diamonds, Rank: Nine}, trump, led))
}

func TestRelativeRankLedEqualsTrump(t *testing.T) {
	t.Parallel()

	// Trump led: trump cards rank in the trump band, everything else floors.
	assert.Greater(t, RelativeRank(Card{Suit: Spades, Rank: Nine}, Spades, Spades),
		RelativeRank(Card{Suit: Diamonds, Rank: Ace}, Spades, Spades))
}

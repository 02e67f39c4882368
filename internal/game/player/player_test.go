package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euchre/internal/game/card"
)

func handOf(p *Player, cards ...card.Card) {
	p.ClearHand()
	for i, c := range cards {
		p.GiveCard(i, c)
	}
}

func TestSeatGeometry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Partner, LeftOpponent.Next())
	assert.Equal(t, LeftOpponent, Human.Next())
	assert.Equal(t, RightOpponent, LeftOpponent.Opposite())
	assert.Equal(t, Partner, Human.Opposite())

	assert.True(t, Human.SameTeam(Partner))
	assert.True(t, Human.SameTeam(Human))
	assert.False(t, Human.SameTeam(LeftOpponent))

	// Four Next calls come back around.
	s := Human
	for i := 0; i < 4; i++ {
		s = s.Next()
	}
	assert.Equal(t, Human, s)
}

func TestPersonalityFromString(t *testing.T) {
	t.Parallel()

	p, err := PersonalityFromString("crazy")
	require.NoError(t, err)
	assert.Equal(t, Crazy, p)

	_, err = PersonalityFromString("timid")
	assert.Error(t, err)
}

func TestHandSlots(t *testing.T) {
	t.Parallel()

	p := New(Human, "test", Normal)
	handOf(p,
		card.Card{Suit: card.Spades, Rank: card.Ace},
		card.Card{Suit: card.Hearts, Rank: card.Nine},
	)
	assert.Equal(t, 2, p.CardsLeft())

	c := p.TakeCard(0)
	require.NotNil(t, c)
	assert.Equal(t, card.Ace, c.Rank)
	assert.Equal(t, 1, p.CardsLeft())
	assert.Nil(t, p.Hand[0], "played card leaves a hole")
}

func TestSortHandGroupsByEffectiveSuit(t *testing.T) {
	t.Parallel()

	p := New(Human, "test", Normal)
	handOf(p,
		card.Card{Suit: card.Hearts, Rank: card.Nine},
		card.Card{Suit: card.Clubs, Rank: card.Jack}, // left bower under spades
		card.Card{Suit: card.Spades, Rank: card.Ace},
		card.Card{Suit: card.Spades, Rank: card.Jack}, // right bower
		card.Card{Suit: card.Hearts, Rank: card.Ace},
	)
	p.SortHand(card.Spades)

	// Trump group first (spades band), bowers on top.
	assert.Equal(t, card.Card{Suit: card.Spades, Rank: card.Jack}, *p.Hand[0])
	assert.Equal(t, card.Card{Suit: card.Clubs, Rank: card.Jack}, *p.Hand[1])
	assert.Equal(t, card.Card{Suit: card.Spades, Rank: card.Ace}, *p.Hand[2])

	// The hearts stay adjacent, ace first.
	assert.Equal(t, card.Card{Suit: card.Hearts, Rank: card.Ace}, *p.Hand[3])
	assert.Equal(t, card.Card{Suit: card.Hearts, Rank: card.Nine}, *p.Hand[4])
}

func TestLegalSlots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hand  []card.Card
		led   card.Suit
		trump card.Suit
		want  []int
	}{
		{
			name: "must follow the led suit",
			hand: []card.Card{
				{Suit: card.Hearts, Rank: card.Ace},
				{Suit: card.Diamonds, Rank: card.Nine},
				{Suit: card.Hearts, Rank: card.Ten},
			},
			led: card.Hearts, trump: card.Spades,
			want: []int{0, 2},
		},
		{
			name: "void in led suit frees the hand",
			hand: []card.Card{
				{Suit: card.Diamonds, Rank: card.Nine},
				{Suit: card.Clubs, Rank: card.King},
			},
			led: card.Hearts, trump: card.Spades,
			want: []int{0, 1},
		},
		{
			name: "left bower must follow trump",
			hand: []card.Card{
				{Suit: card.Clubs, Rank: card.Jack}, // left bower
				{Suit: card.Hearts, Rank: card.Ace},
			},
			led: card.Spades, trump: card.Spades,
			want: []int{0},
		},
		{
			name: "left bower does not follow its natural suit",
			hand: []card.Card{
				{Suit: card.Clubs, Rank: card.Jack}, // counts as a spade
				{Suit: card.Hearts, Rank: card.Ace},
			},
			led: card.Clubs, trump: card.Spades,
			want: []int{0, 1},
		},
		{
			name: "leading allows anything",
			hand: []card.Card{
				{Suit: card.Diamonds, Rank: card.Nine},
				{Suit: card.Clubs, Rank: card.King},
			},
			led: card.NoSuit, trump: card.Spades,
			want: []int{0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := New(Human, "test", Normal)
			handOf(p, tt.hand...)
			assert.Equal(t, tt.want, p.LegalSlots(tt.led, tt.trump))
		})
	}
}

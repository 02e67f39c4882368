// Package player holds one seat's hand and its decision heuristics.
package player

import (
	"fmt"
	"sort"

	"euchre/internal/game/card"
)

// HandSize is the number of card slots per seat.
const HandSize = 5

// Seat identifies a position at the table, arranged clockwise.
type Seat int

const (
	LeftOpponent Seat = iota
	Partner
	RightOpponent
	Human
	NoSeat
)

func (s Seat) String() string {
	switch s {
	case LeftOpponent:
		return "left opponent"
	case Partner:
		return "partner"
	case RightOpponent:
		return "right opponent"
	case Human:
		return "player"
	default:
		return "nobody"
	}
}

// Next returns the next seat clockwise. It is total and cyclic over the four
// real seats.
func (s Seat) Next() Seat {
	return (s + 1) % 4
}

// Opposite returns the seat across the table (the teammate).
func (s Seat) Opposite() Seat {
	return (s + 2) % 4
}

// SameTeam reports whether two seats are partners.
func (s Seat) SameTeam(o Seat) bool {
	return s == o || s.Opposite() == o
}

// Seats lists the four real seats in clockwise order.
func Seats() []Seat {
	return []Seat{LeftOpponent, Partner, RightOpponent, Human}
}

// Personality is an AI skill tier affecting bid thresholds and card choice.
type Personality int

const (
	Conservative Personality = iota
	Normal
	Crazy
)

func (p Personality) String() string {
	switch p {
	case Conservative:
		return "conservative"
	case Normal:
		return "normal"
	case Crazy:
		return "crazy"
	default:
		return "unknown"
	}
}

// PersonalityFromString parses a personality name as it appears in config.
func PersonalityFromString(s string) (Personality, error) {
	switch s {
	case "conservative":
		return Conservative, nil
	case "normal":
		return Normal, nil
	case "crazy":
		return Crazy, nil
	default:
		return Normal, fmt.Errorf("unknown personality %q", s)
	}
}

// Player is one seat's state for the current hand. Hand slots are
// index-stable: a played card leaves a nil hole so presentation layers can
// keep cards in place.
type Player struct {
	Seat        Seat
	Name        string
	Personality Personality

	Hand       [HandSize]*card.Card
	TricksWon  int
	SittingOut bool

	// Buried is the card secretly swapped away on a pick-up. It is consumed
	// but never revealed as played.
	Buried *card.Card
}

// New creates a player for a seat.
func New(seat Seat, name string, personality Personality) *Player {
	return &Player{Seat: seat, Name: name, Personality: personality}
}

// ClearHand resets all per-hand state.
func (p *Player) ClearHand() {
	for i := range p.Hand {
		p.Hand[i] = nil
	}
	p.TricksWon = 0
	p.SittingOut = false
	p.Buried = nil
}

// GiveCard places a card into a hand slot.
func (p *Player) GiveCard(slot int, c card.Card) {
	cc := c
	p.Hand[slot] = &cc
}

// TakeCard removes and returns the card in a slot.
func (p *Player) TakeCard(slot int) *card.Card {
	c := p.Hand[slot]
	p.Hand[slot] = nil
	return c
}

// CardsLeft counts the live cards in hand.
func (p *Player) CardsLeft() int {
	n := 0
	for _, c := range p.Hand {
		if c != nil {
			n++
		}
	}
	return n
}

// SortHand orders the hand for display: cards grouped by effective suit,
// strongest first within each group. With trump NoSuit this is a plain
// natural-suit sort used before bidding resolves.
func (p *Player) SortHand(trump card.Suit) {
	cards := make([]*card.Card, 0, HandSize)
	for _, c := range p.Hand {
		if c != nil {
			cards = append(cards, c)
		}
	}
	sort.SliceStable(cards, func(i, j int) bool {
		return sortKey(*cards[i], trump) > sortKey(*cards[j], trump)
	})
	for i := range p.Hand {
		if i < len(cards) {
			p.Hand[i] = cards[i]
		} else {
			p.Hand[i] = nil
		}
	}
}

func sortKey(c card.Card, trump card.Suit) int {
	es := card.EffectiveSuit(c, trump)
	return int(es)*100 + card.RelativeRank(c, trump, es)
}

// HasLedSuit reports whether the player holds any card of the led suit.
func (p *Player) HasLedSuit(led, trump card.Suit) bool {
	for _, c := range p.Hand {
		if c != nil && card.BelongsToLedSuit(*c, led, trump) {
			return true
		}
	}
	return false
}

// LegalSlots returns the indices the player may legally play: follow-suit
// cards when any exist, otherwise every live slot. With led NoSuit (leading)
// every live slot is legal.
func (p *Player) LegalSlots(led, trump card.Suit) []int {
	var all, follow []int
	for i, c := range p.Hand {
		if c == nil {
			continue
		}
		all = append(all, i)
		if led != card.NoSuit && card.BelongsToLedSuit(*c, led, trump) {
			follow = append(follow, i)
		}
	}
	if led != card.NoSuit && len(follow) > 0 {
		return follow
	}
	return all
}

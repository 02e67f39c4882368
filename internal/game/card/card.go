// Package card provides the Euchre card model: suits, ranks, the
// trump-relative ordering with bowers, and the deal deck.
package card

// Suit identifies a card suit. NoSuit marks "not yet decided" contexts such
// as the trump suit before bidding resolves.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
	NoSuit
)

// suitSymbols maps suits to their display symbols.
var suitSymbols = map[Suit]string{
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
	NoSuit:   "",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return "?"
}

// Name returns the spelled-out suit name.
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "No suit"
	}
}

// SameColor returns the other suit of the same color.
// Clubs <-> Spades (black), Diamonds <-> Hearts (red).
func (s Suit) SameColor() Suit {
	switch s {
	case Clubs:
		return Spades
	case Spades:
		return Clubs
	case Diamonds:
		return Hearts
	case Hearts:
		return Diamonds
	default:
		return s
	}
}

// Red reports whether the suit is a red suit.
func (s Suit) Red() bool {
	return s == Diamonds || s == Hearts
}

// Suits lists the four real suits in a fixed order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Rank is a card rank. Euchre uses nine through ace.
type Rank int

const (
	Nine Rank = iota + 9
	Ten
	Jack
	Queen
	King
	Ace
)

// rankNames maps ranks to display strings.
var rankNames = map[Rank]string{
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// Ranks lists all ranks from lowest to highest natural order.
func Ranks() []Rank {
	return []Rank{Nine, Ten, Jack, Queen, King, Ace}
}

// Card is an immutable card identity.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsRightBower reports whether the card is the Jack of trump.
func (c Card) IsRightBower(trump Suit) bool {
	return trump != NoSuit && c.Rank == Jack && c.Suit == trump
}

// IsLeftBower reports whether the card is the Jack of the suit sharing
// trump's color.
func (c Card) IsLeftBower(trump Suit) bool {
	return trump != NoSuit && c.Rank == Jack && c.Suit == trump.SameColor()
}

// EffectiveSuit returns the suit the card counts as for play purposes: the
// left bower counts as trump, every other card as its natural suit. With
// trump NoSuit (before bidding resolves) the natural suit is returned; that
// form is used only for initial sort order, never for trick resolution.
func EffectiveSuit(c Card, trump Suit) Suit {
	if c.IsLeftBower(trump) {
		return trump
	}
	return c.Suit
}

// BelongsToLedSuit reports whether the card can follow the led suit, using
// effective suits so the left bower follows trump rather than its natural
// suit.
func BelongsToLedSuit(c Card, led, trump Suit) bool {
	return led != NoSuit && EffectiveSuit(c, trump) == led
}

// Relative rank bands. Off-suit cards share the floor; led-suit cards rank
// 1..6 by natural rank; non-bower trump ranks above any led card; the bowers
// top everything.
const (
	rankOffSuit   = 0
	trumpRankBase = 8 // plus natural rank: 17..22, Jack excluded
	leftBowerRank = 23
	rightBowerRank = 24
)

// RelativeRank returns a total-order value for trick resolution. Cards of
// neither trump nor the led suit all map to the same floor value: they
// cannot win a trick. Ties between distinct winning cards cannot occur
// because each physical card is unique within the deck.
func RelativeRank(c Card, trump, led Suit) int {
	if c.IsRightBower(trump) {
		return rightBowerRank
	}
	if c.IsLeftBower(trump) {
		return leftBowerRank
	}
	if trump != NoSuit && c.Suit == trump {
		return trumpRankBase + int(c.Rank)
	}
	if led != NoSuit && led != trump && c.Suit == led {
		return int(c.Rank) - int(Nine) + 1
	}
	return rankOffSuit
}

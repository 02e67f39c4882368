package player

import "euchre/internal/game/card"

// bidThresholds are the tuned strength cutoffs per personality tier. The
// values are calibration constants, not derivations: they reproduce the
// observed bidding temperament of each tier (a conservative seat needs a
// near-lock before ordering up, a crazy seat bids on a whiff of trump).
type bidThresholds struct {
	pickUp int // round 1: order the up-card to the dealer
	call   int // round 2: name a trump suit
	alone  int // either round: play without the partner
}

var bidTuning = map[Personality]bidThresholds{
	Conservative: {pickUp: 13, call: 12, alone: 21},
	Normal:       {pickUp: 11, call: 10, alone: 19},
	Crazy:        {pickUp: 9, call: 8, alone: 17},
}

// trumpWeight scores one card's contribution if the given suit were trump.
// Bowers dominate; other trump cards score by natural rank.
func trumpWeight(c card.Card, trump card.Suit) int {
	switch {
	case c.IsRightBower(trump):
		return 7
	case c.IsLeftBower(trump):
		return 6
	case c.Suit == trump:
		switch c.Rank {
		case card.Ace:
			return 5
		case card.King:
			return 4
		case card.Queen:
			return 3
		case card.Ten:
			return 2
		default:
			return 1
		}
	default:
		return 0
	}
}

// trumpStrength is the hand's total trump weight under a hypothetical trump.
func (p *Player) trumpStrength(trump card.Suit) int {
	total := 0
	for _, c := range p.Hand {
		if c != nil {
			total += trumpWeight(*c, trump)
		}
	}
	return total
}

// offSuitAces counts aces outside the hypothetical trump suit. They stop
// tricks in the second round, where no up-card strengthens anyone's hand.
func (p *Player) offSuitAces(trump card.Suit) int {
	n := 0
	for _, c := range p.Hand {
		if c != nil && c.Rank == card.Ace && card.EffectiveSuit(*c, trump) != trump {
			n++
		}
	}
	return n
}

// EvaluateBidFirstRound decides whether to order the up-card to the dealer,
// and whether to go alone doing it. The hand is scored as if the up-card's
// suit were trump, adjusted for which team gains the up-card itself.
func (p *Player) EvaluateBidFirstRound(upCard card.Card, dealer Seat) (pickUp, goAlone bool) {
	strength := p.trumpStrength(upCard.Suit)
	switch {
	case dealer == p.Seat:
		// We would take the card up ourselves.
		strength += trumpWeight(upCard, upCard.Suit)
	case dealer == p.Seat.Opposite():
		strength += 2
	default:
		// Ordering up arms an opponent.
		strength -= 2
	}

	t := bidTuning[p.Personality]
	if strength < t.pickUp {
		return false, false
	}
	return true, strength >= t.alone
}

// EvaluateBidSecondRound picks the strongest of the three remaining suits,
// or NoSuit to pass. With forced true (stick the dealer) the best candidate
// is named regardless of threshold.
func (p *Player) EvaluateBidSecondRound(excluded card.Suit, forced bool) (trump card.Suit, goAlone bool) {
	best := card.NoSuit
	bestStrength := -1
	for _, s := range card.Suits() {
		if s == excluded {
			continue
		}
		strength := p.trumpStrength(s) + 2*p.offSuitAces(s)
		if strength > bestStrength {
			best, bestStrength = s, strength
		}
	}

	t := bidTuning[p.Personality]
	if !forced && bestStrength < t.call {
		return card.NoSuit, false
	}
	return best, bestStrength >= t.alone
}

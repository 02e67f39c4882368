package player

import (
	"fmt"

	"euchre/internal/apperrors"
	"euchre/internal/game/card"
)

// TrickView is what a seat sees of the trick in progress when choosing a
// card. Led is NoSuit when the seat is leading.
type TrickView struct {
	Trump       card.Suit
	Led         card.Suit
	HighestRank int
	WinningSeat Seat
}

// Leading reports whether the seat opens the trick.
func (v TrickView) Leading() bool {
	return v.Led == card.NoSuit
}

// ChooseCardToDiscardOnPickup returns the slot of the weakest card under the
// trump-relative ranking, breaking ties by natural rank then suit order.
func (p *Player) ChooseCardToDiscardOnPickup(trump card.Suit) (int, error) {
	worst := -1
	worstKey := 0
	for i, c := range p.Hand {
		if c == nil {
			continue
		}
		key := discardKey(*c, trump)
		if worst < 0 || key < worstKey {
			worst, worstKey = i, key
		}
	}
	if worst < 0 {
		return 0, fmt.Errorf("discard from empty hand: %w", apperrors.ErrInvariantViolation)
	}
	return worst, nil
}

func discardKey(c card.Card, trump card.Suit) int {
	return card.RelativeRank(c, trump, card.NoSuit)*100 + int(c.Rank)*10 + int(c.Suit)
}

// ChooseCardToPlay selects a legal slot for the trick in progress. Leading
// seats open strong trump or a safe off-suit card; following seats win the
// trick as cheaply as possible or sluff their weakest legal card.
// Personality modulates how eagerly high trump is spent.
func (p *Player) ChooseCardToPlay(v TrickView) (int, error) {
	legal := p.LegalSlots(v.Led, v.Trump)
	if len(legal) == 0 {
		return 0, fmt.Errorf("play from empty hand: %w", apperrors.ErrInvariantViolation)
	}

	if v.Leading() {
		return p.chooseLead(v.Trump, legal), nil
	}
	return p.chooseFollow(v, legal), nil
}

func (p *Player) chooseLead(trump card.Suit, legal []int) int {
	var trumps, off []int
	for _, i := range legal {
		if trump != card.NoSuit && card.EffectiveSuit(*p.Hand[i], trump) == trump {
			trumps = append(trumps, i)
		} else {
			off = append(off, i)
		}
	}

	if len(trumps) > 0 {
		strongest := trumps[0]
		for _, i := range trumps[1:] {
			if p.trickRank(i, trump, trump) > p.trickRank(strongest, trump, trump) {
				strongest = i
			}
		}
		// Lead the boss trump when holding depth behind it; a crazy seat
		// leads its best trump regardless.
		holdsBower := p.Hand[strongest].IsRightBower(trump) || p.Hand[strongest].IsLeftBower(trump)
		if p.Personality == Crazy || (len(trumps) >= 2 && holdsBower) {
			return strongest
		}
		if len(off) == 0 {
			// Nothing but trump: lead low and keep the top for later.
			lowest := trumps[0]
			for _, i := range trumps[1:] {
				if p.trickRank(i, trump, trump) < p.trickRank(lowest, trump, trump) {
					lowest = i
				}
			}
			return lowest
		}
	}

	// Safe lead: the highest off-suit card.
	best := off[0]
	for _, i := range off[1:] {
		if p.Hand[i].Rank > p.Hand[best].Rank {
			best = i
		}
	}
	return best
}

func (p *Player) chooseFollow(v TrickView, legal []int) int {
	partnerWinning := v.WinningSeat != NoSeat && v.WinningSeat == p.Seat.Opposite()

	var winning []int
	for _, i := range legal {
		if p.trickRank(i, v.Trump, v.Led) > v.HighestRank {
			winning = append(winning, i)
		}
	}

	// A conservative seat will not climb over its own partner.
	if len(winning) > 0 && !(p.Personality == Conservative && partnerWinning) {
		pick := winning[0]
		for _, i := range winning[1:] {
			r := p.trickRank(i, v.Trump, v.Led)
			best := p.trickRank(pick, v.Trump, v.Led)
			// Win cheaply, unless crazy: then slam the biggest winner down.
			if (p.Personality == Crazy && r > best) || (p.Personality != Crazy && r < best) {
				pick = i
			}
		}
		return pick
	}

	// Cannot (or will not) win: sluff the weakest legal card.
	pick := legal[0]
	for _, i := range legal[1:] {
		if p.sluffKey(i, v.Trump, v.Led) < p.sluffKey(pick, v.Trump, v.Led) {
			pick = i
		}
	}
	return pick
}

func (p *Player) trickRank(slot int, trump, led card.Suit) int {
	return card.RelativeRank(*p.Hand[slot], trump, led)
}

func (p *Player) sluffKey(slot int, trump, led card.Suit) int {
	return p.trickRank(slot, trump, led)*100 + int(p.Hand[slot].Rank)
}

package engine

import (
	"euchre/internal/game/card"
	"euchre/internal/game/player"
)

// BidDecision is a seat's answer in either bidding round.
type BidDecision struct {
	Call  bool
	Suit  card.Suit // round 2 only; the named trump suit
	Alone bool
}

// Agent decides bids and card selections for one seat. Heuristic agents
// answer synchronously; the human agent reports ok=false, suspending the
// engine until the matching submission arrives. The bid and trick loops are
// identical regardless of seat kind.
type Agent interface {
	BidFirstRound(p *player.Player, up card.Card, dealer player.Seat) (dec BidDecision, ok bool)
	BidSecondRound(p *player.Player, excluded card.Suit, forced bool) (dec BidDecision, ok bool)
	Discard(p *player.Player, trump card.Suit) (slot int, ok bool, err error)
	Play(p *player.Player, view player.TrickView) (slot int, ok bool, err error)
}

// HeuristicAgent answers from the player's bidding and play heuristics.
type HeuristicAgent struct{}

func (HeuristicAgent) BidFirstRound(p *player.Player, up card.Card, dealer player.Seat) (BidDecision, bool) {
	pickUp, alone := p.EvaluateBidFirstRound(up, dealer)
	return BidDecision{Call: pickUp, Alone: alone}, true
}

func (HeuristicAgent) BidSecondRound(p *player.Player, excluded card.Suit, forced bool) (BidDecision, bool) {
	suit, alone := p.EvaluateBidSecondRound(excluded, forced)
	return BidDecision{Call: suit != card.NoSuit, Suit: suit, Alone: alone}, true
}

func (HeuristicAgent) Discard(p *player.Player, trump card.Suit) (int, bool, error) {
	slot, err := p.ChooseCardToDiscardOnPickup(trump)
	return slot, true, err
}

func (HeuristicAgent) Play(p *player.Player, view player.TrickView) (int, bool, error) {
	slot, err := p.ChooseCardToPlay(view)
	return slot, true, err
}

// HumanAgent never answers; the Director suspends and waits for a
// submission.
type HumanAgent struct{}

func (HumanAgent) BidFirstRound(*player.Player, card.Card, player.Seat) (BidDecision, bool) {
	return BidDecision{}, false
}

func (HumanAgent) BidSecondRound(*player.Player, card.Suit, bool) (BidDecision, bool) {
	return BidDecision{}, false
}

func (HumanAgent) Discard(*player.Player, card.Suit) (int, bool, error) {
	return 0, false, nil
}

func (HumanAgent) Play(*player.Player, player.TrickView) (int, bool, error) {
	return 0, false, nil
}

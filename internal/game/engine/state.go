// Package engine sequences a Euchre game from dealer selection through
// bidding, trick play and scoring. It is single-threaded and step-driven:
// every call to Advance performs at most one state transition, and the only
// suspension point is an explicit "awaiting human input" condition resolved
// by the Director's submission methods.
package engine

import (
	"github.com/google/uuid"

	"euchre/internal/config"
	"euchre/internal/game/card"
	"euchre/internal/game/player"
)

// Phase is the engine's compact state tag. The per-trick-per-seat states of
// the rule book collapse into (Phase, trickIndex, seat turn) with identical
// externally observable behavior.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDealerSelect  // dealing face-up cards until a Jack picks the dealer
	PhaseDealerSelected
	PhaseNewHand // clear per-hand state, shuffle, deal, expose the up-card
	PhaseBid1
	PhaseDiscard // dealer buries a card after a pick-up
	PhaseTrumpSet
	PhaseBid2
	PhaseNoTrump // both rounds passed out; the hand is abandoned
	PhaseTrickStart
	PhaseTrickSelect
	PhaseTrickPlay
	PhaseTrickDone
	PhaseHandDone
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDealerSelect:
		return "dealer-select"
	case PhaseDealerSelected:
		return "dealer-selected"
	case PhaseNewHand:
		return "new-hand"
	case PhaseBid1:
		return "bid-round-1"
	case PhaseDiscard:
		return "discard"
	case PhaseTrumpSet:
		return "trump-set"
	case PhaseBid2:
		return "bid-round-2"
	case PhaseNoTrump:
		return "no-trump"
	case PhaseTrickStart:
		return "trick-start"
	case PhaseTrickSelect:
		return "trick-select"
	case PhaseTrickPlay:
		return "trick-play"
	case PhaseTrickDone:
		return "trick-done"
	case PhaseHandDone:
		return "hand-done"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Input identifies the kind of external input the engine is suspended on.
type Input int

const (
	InputNone Input = iota
	InputAck
	InputBid1
	InputBid2
	InputCard // a hand-slot selection: trick play or pick-up discard
)

// DealtCard records one face-up card of the dealer selection round.
type DealtCard struct {
	Seat player.Seat
	Card card.Card
}

// GameState is the explicitly owned aggregate of everything that persists
// across transitions. It is mutated only by the Director.
type GameState struct {
	ID    uuid.UUID
	Rules config.Rules

	Players [4]*player.Player
	deck    *card.Deck

	Dealer player.Seat
	Trump  card.Suit
	Maker  player.Seat

	// Kitty holds the undealt remainder; Kitty[0] is the up-card slot, which
	// after a pick-up holds the dealer's face-down discard instead.
	Kitty        []card.Card
	upCard       card.Card
	upCardFaceUp bool

	// cardsPlayed is the per-hand consumption record: every card revealed as
	// played plus the turned-down up-card, but never a buried discard.
	cardsPlayed []card.Card

	OurScore    int // the human's team, unclamped
	TheirScore  int
	OurTricks   int
	TheirTricks int

	// Dealer selection loop.
	candidate player.Seat
	Selection []DealtCard

	// Bidding loop.
	bidder   player.Seat
	bidsMade int

	// Trick loop.
	TrickIndex  int
	trickLeader player.Seat
	turn        player.Seat
	playsMade   int
	LedSuit     card.Suit
	highRank    int
	highSeat    player.Seat
	TrickCards  [4]*card.Card
	selected    int
}

// teamTricks returns the trick count of the given seat's team this hand.
func (s *GameState) teamTricks(seat player.Seat) int {
	return s.Players[seat].TricksWon + s.Players[seat.Opposite()].TricksWon
}

func (s *GameState) advanceDealer() {
	s.Dealer = s.Dealer.Next()
}

package engine

import (
	"euchre/internal/game/card"
	"euchre/internal/game/player"
)

// CardView is one hand slot as presented to the UI. Empty slots have
// Present false; face-down cards carry no card value at all, so a peeking
// renderer cannot leak what the engine did not reveal.
type CardView struct {
	Present  bool
	FaceUp   bool
	Card     card.Card // zero unless FaceUp
	Playable bool
}

// SeatView is one seat's public presentation.
type SeatView struct {
	Name       string
	Hand       [player.HandSize]CardView
	TricksWon  int
	SittingOut bool
	Bidding    bool // this seat's bid is the one in progress
}

// Snapshot is an immutable view of the table for rendering. Scores are
// clamped to the winning total here; the engine keeps the real values.
type Snapshot struct {
	GameID   string
	Phase    Phase
	Awaiting Input

	Dealer player.Seat
	Trump  card.Suit
	Maker  player.Seat
	Turn   player.Seat

	UpCard       card.Card
	UpCardFaceUp bool

	OurScore    int
	TheirScore  int
	OurTricks   int
	TheirTricks int

	Seats      [4]SeatView
	TrickCards [4]*card.Card
	Selection  []DealtCard

	StickTheDealer bool
	ForcedBid      bool // the pending bid-2 prompt cannot pass
	ExcludedSuit   card.Suit
}

func clampScore(n int) int {
	if n > winningScore {
		return winningScore
	}
	return n
}

// Snapshot renders the current table. Only the human's cards are face up
// unless the peek rule is on; the dealer's hand during the discard prompt
// follows the same visibility.
func (d *Director) Snapshot() Snapshot {
	st := d.state
	if st == nil {
		return Snapshot{Phase: d.phase, Awaiting: d.awaiting}
	}

	snap := Snapshot{
		GameID:         st.ID.String(),
		Phase:          d.phase,
		Awaiting:       d.awaiting,
		Dealer:         st.Dealer,
		Trump:          st.Trump,
		Maker:          st.Maker,
		Turn:           st.turn,
		UpCard:         st.upCard,
		UpCardFaceUp:   st.upCardFaceUp,
		OurScore:       clampScore(st.OurScore),
		TheirScore:     clampScore(st.TheirScore),
		OurTricks:      st.OurTricks,
		TheirTricks:    st.TheirTricks,
		TrickCards:     st.TrickCards,
		Selection:      st.Selection,
		StickTheDealer: st.Rules.StickTheDealer,
		ExcludedSuit:   st.upCard.Suit,
	}
	if d.awaiting == InputBid2 {
		snap.ForcedBid = st.Rules.StickTheDealer && st.bidder == st.Dealer && st.bidsMade == 3
	}

	bidding := d.awaiting == InputBid1 || d.awaiting == InputBid2

	for _, seat := range player.Seats() {
		p := st.Players[seat]
		sv := SeatView{
			Name:       p.Name,
			TricksWon:  p.TricksWon,
			SittingOut: p.SittingOut,
			Bidding:    bidding && seat == st.bidder,
		}

		faceUp := seat == player.Human || st.Rules.PeekAtOtherCards
		var legal []int
		if d.awaiting == InputCard && seat == d.promptSeat() {
			legal = d.promptSlots(p)
		}
		for i, c := range p.Hand {
			if c == nil {
				continue
			}
			cv := CardView{Present: true, FaceUp: faceUp, Playable: legalSlot(legal, i)}
			if faceUp {
				cv.Card = *c
			}
			sv.Hand[i] = cv
		}
		snap.Seats[seat] = sv
	}
	return snap
}

// promptSeat is the seat the pending card prompt belongs to.
func (d *Director) promptSeat() player.Seat {
	if d.phase == PhaseDiscard {
		return d.state.Dealer
	}
	return d.state.turn
}

func (d *Director) promptSlots(p *player.Player) []int {
	if d.phase == PhaseDiscard {
		// Any card may be buried.
		var all []int
		for i, c := range p.Hand {
			if c != nil {
				all = append(all, i)
			}
		}
		return all
	}
	return p.LegalSlots(d.state.LedSuit, d.state.Trump)
}

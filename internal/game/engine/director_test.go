package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euchre/internal/apperrors"
	"euchre/internal/config"
	"euchre/internal/game/card"
	"euchre/internal/game/player"
)

// passAgent passes every bid and plays heuristically.
type passAgent struct{ HeuristicAgent }

func (passAgent) BidFirstRound(*player.Player, card.Card, player.Seat) (BidDecision, bool) {
	return BidDecision{}, true
}

func (passAgent) BidSecondRound(*player.Player, card.Suit, bool) (BidDecision, bool) {
	return BidDecision{}, true
}

// dealerPickupAgent orders up only from the dealer's chair.
type dealerPickupAgent struct{ HeuristicAgent }

func (dealerPickupAgent) BidFirstRound(p *player.Player, up card.Card, dealer player.Seat) (BidDecision, bool) {
	return BidDecision{Call: p.Seat == dealer}, true
}

// aloneAgent orders up from the dealer's chair and always goes alone.
type aloneAgent struct{ HeuristicAgent }

func (aloneAgent) BidFirstRound(p *player.Player, up card.Card, dealer player.Seat) (BidDecision, bool) {
	return BidDecision{Call: p.Seat == dealer, Alone: p.Seat == dealer}, true
}

// trickPromptAgent bids like dealerPickupAgent but suspends on card play.
type trickPromptAgent struct{ dealerPickupAgent }

func (trickPromptAgent) Play(*player.Player, player.TrickView) (int, bool, error) {
	return 0, false, nil
}

func newTestDirector(agent Agent) *Director {
	d := New(NopSink{})
	for _, s := range player.Seats() {
		d.SetAgent(s, agent)
	}
	return d
}

// drive steps the engine, acknowledging continuation prompts, until stop
// reports true. Any other input wait is a test failure.
func drive(t *testing.T, d *Director, stop func() bool) {
	t.Helper()
	for i := 0; i < 100000; i++ {
		if stop() {
			return
		}
		switch d.Awaiting() {
		case InputNone:
			require.NoError(t, d.Advance())
		case InputAck:
			require.NoError(t, d.Acknowledge())
		default:
			t.Fatalf("unexpected wait for input %d in phase %s", d.Awaiting(), d.Phase())
		}
	}
	t.Fatal("engine made no progress")
}

func TestFullGameSimulation(t *testing.T) {
	t.Parallel()

	d := newTestDirector(HeuristicAgent{})
	require.NoError(t, d.RequestNewGame(config.Default()))

	drive(t, d, func() bool { return d.Phase() == PhaseGameOver })

	st := d.state
	winner, loser := st.OurScore, st.TheirScore
	if loser > winner {
		winner, loser = loser, winner
	}
	assert.GreaterOrEqual(t, winner, winningScore)
	assert.Less(t, loser, winningScore)

	// A finished game frees the table for a new one without confirmation.
	require.NoError(t, d.RequestNewGame(config.Default()))
}

func TestFullGameSimulationStickTheDealer(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Rules.StickTheDealer = true
	cfg.Rules.NineOfHearts = true
	cfg.Rules.SuperEuchre = true

	d := newTestDirector(HeuristicAgent{})
	require.NoError(t, d.RequestNewGame(cfg))
	drive(t, d, func() bool { return d.Phase() == PhaseGameOver })

	assert.GreaterOrEqual(t, max(d.state.OurScore, d.state.TheirScore), winningScore)
}

func TestNewGameConfirmation(t *testing.T) {
	t.Parallel()

	d := newTestDirector(HeuristicAgent{})
	require.NoError(t, d.RequestNewGame(config.Default()))

	err := d.RequestNewGame(config.Default())
	assert.ErrorIs(t, err, apperrors.ErrConfirmRequired)

	require.NoError(t, d.ConfirmNewGame(config.Default()))
	assert.Equal(t, PhaseDealerSelect, d.Phase())
}

func TestSubmissionsRejectedWhenIdle(t *testing.T) {
	t.Parallel()

	d := New(NopSink{})
	assert.ErrorIs(t, d.Acknowledge(), apperrors.ErrStateMismatch)
	assert.ErrorIs(t, d.SubmitHumanBid(BidDecision{Call: true}), apperrors.ErrStateMismatch)
	assert.ErrorIs(t, d.SubmitHumanCardSelection(0), apperrors.ErrStateMismatch)
	assert.Equal(t, PhaseIdle, d.Phase())
}

func TestDealerSelection(t *testing.T) {
	t.Parallel()

	d := newTestDirector(HeuristicAgent{})
	require.NoError(t, d.RequestNewGame(config.Default()))

	drive(t, d, func() bool { return d.Phase() == PhaseDealerSelected })

	st := d.state
	require.NotEmpty(t, st.Selection)
	last := st.Selection[len(st.Selection)-1]
	assert.Equal(t, card.Jack, last.Card.Rank, "selection stops at the first jack")
	assert.Equal(t, last.Seat, st.Dealer)
	for _, dc := range st.Selection[:len(st.Selection)-1] {
		assert.NotEqual(t, card.Jack, dc.Card.Rank)
	}
	// The deal starts at the human's chair.
	assert.Equal(t, player.Human, st.Selection[0].Seat)
}

func TestAbandonedHandRotatesDealer(t *testing.T) {
	t.Parallel()

	d := newTestDirector(passAgent{})
	require.NoError(t, d.RequestNewGame(config.Default()))

	drive(t, d, func() bool { return d.Phase() == PhaseNoTrump })

	st := d.state
	firstDealer := st.Dealer
	assert.Zero(t, st.OurScore)
	assert.Zero(t, st.TheirScore)
	assert.Contains(t, st.cardsPlayed, st.upCard, "turned-down up-card is public knowledge")

	require.NoError(t, d.Acknowledge())
	assert.Equal(t, PhaseNewHand, d.Phase())
	assert.Equal(t, firstDealer.Next(), st.Dealer, "abandoned hand moves the deal one seat")
}

func TestDealShape(t *testing.T) {
	t.Parallel()

	d := newTestDirector(passAgent{})
	require.NoError(t, d.RequestNewGame(config.Default()))

	drive(t, d, func() bool { return d.Phase() == PhaseBid1 })

	st := d.state
	for _, s := range player.Seats() {
		assert.Equal(t, player.HandSize, st.Players[s].CardsLeft())
	}
	assert.Len(t, st.Kitty, 4)
	assert.Equal(t, st.Kitty[0], st.upCard)
	assert.True(t, st.upCardFaceUp)
	assert.Equal(t, st.Dealer.Next(), st.bidder, "bidding starts left of the dealer")
}

func TestPickupBuriesDiscard(t *testing.T) {
	t.Parallel()

	d := newTestDirector(dealerPickupAgent{})
	require.NoError(t, d.RequestNewGame(config.Default()))

	drive(t, d, func() bool { return d.Phase() == PhaseTrumpSet })

	st := d.state
	dealer := st.Players[st.Dealer]
	assert.Equal(t, st.upCard.Suit, st.Trump)
	assert.Equal(t, st.Dealer, st.Maker)
	require.NotNil(t, dealer.Buried)
	assert.Equal(t, *dealer.Buried, st.Kitty[0], "the discard takes the up-card's slot, face down")
	assert.False(t, st.upCardFaceUp)

	buried := *dealer.Buried
	drive(t, d, func() bool { return d.Phase() == PhaseHandDone })

	assert.Len(t, st.cardsPlayed, 20)
	assert.NotContains(t, st.cardsPlayed, buried, "the buried card is never revealed")
	assert.Equal(t, 5, st.OurTricks+st.TheirTricks)
}

func TestLoneHandSkipsSittingOutPartner(t *testing.T) {
	t.Parallel()

	d := newTestDirector(aloneAgent{})
	require.NoError(t, d.RequestNewGame(config.Default()))

	drive(t, d, func() bool { return d.Phase() == PhaseHandDone })

	st := d.state
	partner := st.Players[st.Maker.Opposite()]
	assert.True(t, partner.SittingOut)
	assert.Equal(t, player.HandSize, partner.CardsLeft(), "sitting-out hand stays untouched")
	assert.Nil(t, st.TrickCards[st.Maker.Opposite()], "no card from the sitting-out seat in the last trick")

	// Three plays per trick, five tricks, and every trick found a winner.
	assert.Len(t, st.cardsPlayed, 15)
	assert.Equal(t, 5, st.OurTricks+st.TheirTricks)
	assert.NotEqual(t, st.Maker.Opposite(), st.trickLeader, "the sitting-out seat cannot win a trick")

	// The partner rejoins once the hand is acknowledged.
	require.NoError(t, d.Acknowledge())
	assert.False(t, partner.SittingOut)
}

func TestHumanBidValidation(t *testing.T) {
	t.Parallel()

	d := New(NopSink{})
	for _, s := range player.Seats() {
		if s != player.Human {
			d.SetAgent(s, passAgent{})
		}
	}
	require.NoError(t, d.RequestNewGame(config.Default()))

	drive(t, d, func() bool { return d.Awaiting() == InputBid1 })
	require.NoError(t, d.SubmitHumanBid(BidDecision{})) // pass round 1

	drive(t, d, func() bool { return d.Awaiting() == InputBid2 })
	turnedDown := d.state.upCard.Suit

	err := d.SubmitHumanBid(BidDecision{Call: true, Suit: turnedDown})
	assert.ErrorIs(t, err, apperrors.ErrIllegalBid)
	assert.Equal(t, InputBid2, d.Awaiting(), "rejected bid keeps the prompt open")

	err = d.SubmitHumanBid(BidDecision{Call: true, Suit: card.NoSuit})
	assert.ErrorIs(t, err, apperrors.ErrIllegalBid)

	named := turnedDown.SameColor()
	require.NoError(t, d.SubmitHumanBid(BidDecision{Call: true, Suit: named, Alone: true}))
	assert.Equal(t, named, d.state.Trump)
	assert.Equal(t, player.Human, d.state.Maker)
	assert.True(t, d.state.Players[player.Partner].SittingOut)
}

func TestHumanCardValidation(t *testing.T) {
	t.Parallel()

	d := New(NopSink{})
	for _, s := range player.Seats() {
		if s != player.Human {
			d.SetAgent(s, passAgent{})
		}
	}
	require.NoError(t, d.RequestNewGame(config.Default()))

	drive(t, d, func() bool { return d.Awaiting() == InputBid1 })
	require.NoError(t, d.SubmitHumanBid(BidDecision{}))
	drive(t, d, func() bool { return d.Awaiting() == InputBid2 })
	require.NoError(t, d.SubmitHumanBid(BidDecision{Call: true, Suit: d.state.upCard.Suit.SameColor()}))

	drive(t, d, func() bool { return d.Awaiting() == InputCard })

	assert.ErrorIs(t, d.SubmitHumanCardSelection(-1), apperrors.ErrIllegalCardSelection)
	assert.ErrorIs(t, d.SubmitHumanCardSelection(player.HandSize), apperrors.ErrIllegalCardSelection)
	assert.Equal(t, InputCard, d.Awaiting())

	// Pick a legal slot from the snapshot's playable mask.
	snap := d.Snapshot()
	seat := snap.Turn
	legal := -1
	for i, cv := range snap.Seats[seat].Hand {
		if cv.Playable {
			legal = i
			break
		}
	}
	require.GreaterOrEqual(t, legal, 0)
	require.NoError(t, d.SubmitHumanCardSelection(legal))
	assert.Equal(t, PhaseTrickPlay, d.Phase())
}

func TestGameOverStopsTheEngine(t *testing.T) {
	t.Parallel()

	d := newTestDirector(HeuristicAgent{})
	require.NoError(t, d.RequestNewGame(config.Default()))
	drive(t, d, func() bool { return d.Phase() == PhaseGameOver })

	// Further stepping and submissions are inert.
	require.NoError(t, d.Advance())
	assert.Equal(t, PhaseGameOver, d.Phase())
	assert.ErrorIs(t, d.Acknowledge(), apperrors.ErrStateMismatch)
}

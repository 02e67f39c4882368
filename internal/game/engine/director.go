package engine

import (
	"fmt"

	"github.com/google/uuid"

	"euchre/internal/apperrors"
	"euchre/internal/config"
	"euchre/internal/game/card"
	"euchre/internal/game/player"
	"euchre/internal/logger"
)

// Sink receives the engine's side effects: state-change notifications, human
// readable notices for the status transcript, and sound cues. Sinks must not
// call back into the Director; pacing and animation are presentation
// concerns layered on top of these notifications.
type Sink interface {
	PhaseChanged(old, new Phase)
	Notice(text string)
	Cue(name string)
}

// NopSink discards all notifications.
type NopSink struct{}

func (NopSink) PhaseChanged(old, new Phase) {}
func (NopSink) Notice(text string)          {}
func (NopSink) Cue(name string)             {}

// Director owns the game state and the current state tag. It guarantees at
// most one pending "awaiting human input" condition and rejects out-of-order
// submissions with a StateMismatch error, leaving state unchanged.
type Director struct {
	state    *GameState
	phase    Phase
	prev     Phase
	started  bool
	awaiting Input
	sink     Sink
	agents   [4]Agent
}

// New creates an idle Director. All decisions default to the heuristic
// agent except the human seat.
func New(sink Sink) *Director {
	if sink == nil {
		sink = NopSink{}
	}
	d := &Director{sink: sink, phase: PhaseIdle}
	for _, s := range player.Seats() {
		d.agents[s] = HeuristicAgent{}
	}
	d.agents[player.Human] = HumanAgent{}
	return d
}

// SetAgent overrides the decision source for a seat. Used by tests and
// simulations to drive all four seats heuristically.
func (d *Director) SetAgent(seat player.Seat, a Agent) {
	d.agents[seat] = a
}

// Phase returns the current state tag.
func (d *Director) Phase() Phase { return d.phase }

// Awaiting returns the kind of input the engine is suspended on, if any.
func (d *Director) Awaiting() Input { return d.awaiting }

// RequestNewGame starts a game with the given configuration. If a game is
// in progress it refuses with ErrConfirmRequired so the caller can confirm
// or abort before in-progress hand state is discarded.
func (d *Director) RequestNewGame(cfg *config.Config) error {
	if d.started {
		return apperrors.ErrConfirmRequired
	}
	return d.startGame(cfg)
}

// ConfirmNewGame starts a game unconditionally, discarding any in-progress
// hand state.
func (d *Director) ConfirmNewGame(cfg *config.Config) error {
	return d.startGame(cfg)
}

func (d *Director) startGame(cfg *config.Config) error {
	players, err := buildPlayers(cfg)
	if err != nil {
		return err
	}

	st := &GameState{
		ID:      uuid.New(),
		Rules:   cfg.Rules,
		Players: players,
		deck:    card.NewDeck(cfg.Rules.NineOfHearts),
		Trump:   card.NoSuit,
		Maker:   player.NoSeat,
	}
	d.state = st
	d.started = true
	d.awaiting = InputNone

	logger.LogInfo("new game %s: rules=%+v", st.ID, st.Rules)
	d.sink.Notice("Starting a new game.")
	d.sink.Notice("Choosing the dealer: first Jack deals.")
	d.sink.Cue("shuffle")

	st.deck.Shuffle()
	st.candidate = player.Human
	st.Selection = nil
	d.setPhase(PhaseDealerSelect)
	return nil
}

func buildPlayers(cfg *config.Config) ([4]*player.Player, error) {
	var players [4]*player.Player
	seats := []struct {
		seat        player.Seat
		name        string
		personality string
	}{
		{player.LeftOpponent, cfg.Table.LeftOpponentName, cfg.Table.LeftOpponentPersonality},
		{player.Partner, cfg.Table.PartnerName, cfg.Table.PartnerPersonality},
		{player.RightOpponent, cfg.Table.RightOpponentName, cfg.Table.RightOpponentPersonality},
		{player.Human, cfg.Table.PlayerName, "normal"},
	}
	for _, s := range seats {
		p, err := player.PersonalityFromString(s.personality)
		if err != nil {
			return players, err
		}
		players[s.seat] = player.New(s.seat, s.name, p)
	}
	return players, nil
}

// Advance performs at most one state transition. It is a no-op while the
// engine is suspended on human input, idle, or at game over.
func (d *Director) Advance() error {
	if d.awaiting != InputNone {
		return nil
	}
	switch d.phase {
	case PhaseIdle, PhaseGameOver:
		return nil
	case PhaseDealerSelect:
		return d.stepDealerSelect()
	case PhaseNewHand:
		return d.stepDeal()
	case PhaseBid1:
		return d.stepBid1()
	case PhaseDiscard:
		return d.stepDiscard()
	case PhaseBid2:
		return d.stepBid2()
	case PhaseTrickStart:
		d.prepTrick()
		d.setPhase(PhaseTrickSelect)
		return nil
	case PhaseTrickSelect:
		return d.stepTrickSelect()
	case PhaseTrickPlay:
		return d.stepTrickPlay()
	default:
		// Await-ack phases only leave through Acknowledge.
		return nil
	}
}

// Acknowledge resumes the engine from an explicit-continuation state.
func (d *Director) Acknowledge() error {
	if d.awaiting != InputAck {
		return apperrors.ErrStateMismatch
	}
	d.awaiting = InputNone

	st := d.state
	switch d.phase {
	case PhaseDealerSelected:
		d.setPhase(PhaseNewHand)
	case PhaseTrumpSet:
		d.setPhase(PhaseTrickStart)
	case PhaseNoTrump:
		st.advanceDealer()
		d.sink.Notice(fmt.Sprintf("%s deals next.", st.Players[st.Dealer].Name))
		d.setPhase(PhaseNewHand)
	case PhaseTrickDone:
		if st.TrickIndex == 4 {
			d.scoreHand()
			d.setPhase(PhaseHandDone)
			d.awaiting = InputAck
		} else {
			st.TrickIndex++
			d.setPhase(PhaseTrickStart)
		}
	case PhaseHandDone:
		d.finishHand()
	default:
		return fmt.Errorf("acknowledge in phase %v: %w", d.phase, apperrors.ErrInvariantViolation)
	}
	return nil
}

// SubmitHumanBid resolves a pending bid prompt. A round-2 call must name
// one of the three suits other than the turned-down up-card's; with stick
// the dealer in force the dealer cannot pass.
func (d *Director) SubmitHumanBid(sub BidDecision) error {
	st := d.state
	switch d.awaiting {
	case InputBid1:
		d.awaiting = InputNone
		d.applyBid1(sub)
		return nil
	case InputBid2:
		forced := st.Rules.StickTheDealer && st.bidder == st.Dealer && st.bidsMade == 3
		if forced && !sub.Call {
			return fmt.Errorf("stick the dealer: %w", apperrors.ErrIllegalBid)
		}
		if sub.Call && (sub.Suit == card.NoSuit || sub.Suit == st.upCard.Suit) {
			return fmt.Errorf("suit cannot be called: %w", apperrors.ErrIllegalBid)
		}
		d.awaiting = InputNone
		d.applyBid2(sub)
		return nil
	default:
		return apperrors.ErrStateMismatch
	}
}

// SubmitHumanCardSelection resolves a pending card prompt: the pick-up
// discard or a trick play. Illegal selections are rejected without mutating
// state so the caller can retry.
func (d *Director) SubmitHumanCardSelection(slot int) error {
	if d.awaiting != InputCard {
		return apperrors.ErrStateMismatch
	}
	st := d.state

	switch d.phase {
	case PhaseDiscard:
		p := st.Players[st.Dealer]
		if slot < 0 || slot >= player.HandSize || p.Hand[slot] == nil {
			return apperrors.ErrIllegalCardSelection
		}
		d.awaiting = InputNone
		d.applyDiscard(slot)
		return nil
	case PhaseTrickSelect:
		p := st.Players[st.turn]
		if slot < 0 || slot >= player.HandSize || p.Hand[slot] == nil {
			return apperrors.ErrIllegalCardSelection
		}
		if !legalSlot(p.LegalSlots(st.LedSuit, st.Trump), slot) {
			return fmt.Errorf("must follow suit: %w", apperrors.ErrIllegalCardSelection)
		}
		d.awaiting = InputNone
		st.selected = slot
		d.setPhase(PhaseTrickPlay)
		return nil
	default:
		return apperrors.ErrStateMismatch
	}
}

func legalSlot(legal []int, slot int) bool {
	for _, i := range legal {
		if i == slot {
			return true
		}
	}
	return false
}

func (d *Director) setPhase(p Phase) {
	d.prev = d.phase
	d.phase = p
	d.sink.PhaseChanged(d.prev, p)
}

// --- dealer selection ---

func (d *Director) stepDealerSelect() error {
	st := d.state
	c, err := st.deck.GetNextCard()
	if err != nil {
		return err
	}
	st.Selection = append(st.Selection, DealtCard{Seat: st.candidate, Card: c})
	d.sink.Notice(fmt.Sprintf("%s was dealt the %s.", st.Players[st.candidate].Name, c))
	d.sink.Cue("deal")

	if c.Rank == card.Jack {
		st.Dealer = st.candidate
		d.sink.Notice(fmt.Sprintf("%s deals first.", st.Players[st.Dealer].Name))
		d.setPhase(PhaseDealerSelected)
		d.awaiting = InputAck
		return nil
	}
	st.candidate = st.candidate.Next()
	d.setPhase(PhaseDealerSelect)
	return nil
}

// --- dealing ---

// dealPattern is the table's traditional 3-2-3-2 / 2-3-2-3 distribution,
// starting left of the dealer.
var dealPattern = [8]int{3, 2, 3, 2, 2, 3, 2, 3}

func (d *Director) stepDeal() error {
	st := d.state
	d.clearHand()

	st.deck.Shuffle()
	d.sink.Notice("Shuffling and dealing.")
	d.sink.Cue("shuffle")

	var nextSlot [4]int
	seat := st.Dealer
	for _, n := range dealPattern {
		seat = seat.Next()
		p := st.Players[seat]
		for range n {
			c, err := st.deck.GetNextCard()
			if err != nil {
				return err
			}
			p.GiveCard(nextSlot[seat], c)
			nextSlot[seat]++
		}
	}

	kittySize := st.deck.Size() - 4*player.HandSize
	st.Kitty = st.Kitty[:0]
	for range kittySize {
		c, err := st.deck.GetNextCard()
		if err != nil {
			return err
		}
		st.Kitty = append(st.Kitty, c)
	}
	st.upCard = st.Kitty[0]
	st.upCardFaceUp = true

	for _, s := range player.Seats() {
		st.Players[s].SortHand(card.NoSuit)
	}

	st.trickLeader = st.Dealer.Next()
	st.bidder = st.Dealer.Next()
	st.bidsMade = 0
	d.sink.Notice(fmt.Sprintf("The up-card is the %s.", st.upCard))
	d.setPhase(PhaseBid1)
	return nil
}

func (d *Director) clearHand() {
	st := d.state
	for _, s := range player.Seats() {
		st.Players[s].ClearHand()
	}
	st.Trump = card.NoSuit
	st.Maker = player.NoSeat
	st.cardsPlayed = st.cardsPlayed[:0]
	st.OurTricks = 0
	st.TheirTricks = 0
	st.TrickIndex = 0
	st.LedSuit = card.NoSuit
	st.TrickCards = [4]*card.Card{}
	st.upCardFaceUp = false
}

// --- bidding ---

func (d *Director) stepBid1() error {
	st := d.state
	p := st.Players[st.bidder]

	dec, ok := d.agents[st.bidder].BidFirstRound(p, st.upCard, st.Dealer)
	if !ok {
		d.awaiting = InputBid1
		d.sink.Notice("Order it up, or pass?")
		return nil
	}
	d.applyBid1(dec)
	return nil
}

func (d *Director) applyBid1(dec BidDecision) {
	st := d.state
	p := st.Players[st.bidder]

	if !dec.Call {
		d.sink.Notice(fmt.Sprintf("%s passes.", p.Name))
		st.bidsMade++
		if st.bidsMade == 4 {
			d.turnDownUpCard()
			return
		}
		st.bidder = st.bidder.Next()
		d.setPhase(PhaseBid1)
		return
	}

	st.Trump = st.upCard.Suit
	st.Maker = st.bidder
	if dec.Alone {
		st.Players[st.bidder.Opposite()].SittingOut = true
		d.sink.Notice(fmt.Sprintf("%s is going alone!", p.Name))
	}
	if st.bidder == st.Dealer {
		d.sink.Notice(fmt.Sprintf("%s picks it up.", p.Name))
	} else {
		d.sink.Notice(fmt.Sprintf("%s orders it up.", p.Name))
	}
	d.setPhase(PhaseDiscard)
}

// turnDownUpCard moves the table into the second round of bidding. The
// turned-down card is recorded in the hand's played-card bookkeeping: every
// seat saw it and may reason from it.
func (d *Director) turnDownUpCard() {
	st := d.state
	st.upCardFaceUp = false
	st.cardsPlayed = append(st.cardsPlayed, st.upCard)
	st.bidder = st.Dealer.Next()
	st.bidsMade = 0
	d.sink.Notice(fmt.Sprintf("Everyone passed; the %s is turned down.", st.upCard))
	d.setPhase(PhaseBid2)
}

func (d *Director) stepBid2() error {
	st := d.state
	p := st.Players[st.bidder]
	forced := st.Rules.StickTheDealer && st.bidder == st.Dealer && st.bidsMade == 3

	dec, ok := d.agents[st.bidder].BidSecondRound(p, st.upCard.Suit, forced)
	if !ok {
		d.awaiting = InputBid2
		if forced {
			d.sink.Notice("Dealer is stuck: name a trump suit.")
		} else {
			d.sink.Notice("Name a trump suit, or pass?")
		}
		return nil
	}
	d.applyBid2(dec)
	return nil
}

func (d *Director) applyBid2(dec BidDecision) {
	st := d.state
	p := st.Players[st.bidder]

	if !dec.Call {
		d.sink.Notice(fmt.Sprintf("%s passes.", p.Name))
		st.bidsMade++
		if st.bidsMade == 4 {
			d.sink.Notice("Everyone passed twice; throwing the hand in.")
			d.setPhase(PhaseNoTrump)
			d.awaiting = InputAck
			return
		}
		st.bidder = st.bidder.Next()
		d.setPhase(PhaseBid2)
		return
	}

	st.Trump = dec.Suit
	st.Maker = st.bidder
	if dec.Alone {
		st.Players[st.bidder.Opposite()].SittingOut = true
		d.sink.Notice(fmt.Sprintf("%s is going alone!", p.Name))
	}
	d.sink.Notice(fmt.Sprintf("%s calls %s.", p.Name, dec.Suit.Name()))
	d.trumpDecided()
}

func (d *Director) trumpDecided() {
	st := d.state
	for _, s := range player.Seats() {
		st.Players[s].SortHand(st.Trump)
	}
	logger.LogInfo("game %s: trump is %s, called by %s", st.ID, st.Trump.Name(), st.Maker)
	d.setPhase(PhaseTrumpSet)
	d.awaiting = InputAck
}

// --- pick-up discard ---

func (d *Director) stepDiscard() error {
	st := d.state
	p := st.Players[st.Dealer]

	slot, ok, err := d.agents[st.Dealer].Discard(p, st.Trump)
	if err != nil {
		return err
	}
	if !ok {
		d.awaiting = InputCard
		d.sink.Notice("Choose a card to bury.")
		return nil
	}
	d.applyDiscard(slot)
	return nil
}

// applyDiscard swaps the chosen hand card with the up-card. The discard
// becomes the hand's buried card: consumed, face down, and excluded from
// the played-card record.
func (d *Director) applyDiscard(slot int) {
	st := d.state
	p := st.Players[st.Dealer]

	buried := p.TakeCard(slot)
	p.GiveCard(slot, st.upCard)
	st.Kitty[0] = *buried
	p.Buried = buried
	st.upCardFaceUp = false

	d.sink.Notice(fmt.Sprintf("%s buries a card.", p.Name))
	d.sink.Cue("play_card")
	d.trumpDecided()
}

// --- hand completion ---

func (d *Director) finishHand() {
	st := d.state

	// A sitting-out partner rejoins the table.
	partner := st.Players[st.Maker.Opposite()]
	if partner.SittingOut {
		partner.SittingOut = false
	}

	if st.OurScore >= winningScore || st.TheirScore >= winningScore {
		if st.TheirScore > st.OurScore {
			d.sink.Notice("They won the game.")
		} else {
			d.sink.Notice("You won the game!")
			d.sink.Cue("applause_wild")
		}
		logger.LogInfo("game %s over: us=%d them=%d", st.ID, st.OurScore, st.TheirScore)
		d.started = false
		d.setPhase(PhaseGameOver)
		return
	}

	st.advanceDealer()
	d.sink.Notice(fmt.Sprintf("%s deals next.", st.Players[st.Dealer].Name))
	d.setPhase(PhaseNewHand)
}

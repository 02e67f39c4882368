package engine

import (
	"fmt"

	"euchre/internal/apperrors"
	"euchre/internal/game/card"
	"euchre/internal/game/player"
)

// prepTrick resets the per-trick fields. The leader is the previous trick's
// winner, or the seat left of the dealer for the first trick.
func (d *Director) prepTrick() {
	st := d.state
	st.turn = st.trickLeader
	st.playsMade = 0
	st.LedSuit = card.NoSuit
	st.highRank = 0
	st.highSeat = player.NoSeat
	st.TrickCards = [4]*card.Card{}
	d.advanceTrickTurn()
}

// advanceTrickTurn skips sitting-out seats. With one seat out at most, the
// loop always terminates.
func (d *Director) advanceTrickTurn() {
	st := d.state
	for st.Players[st.turn].SittingOut {
		st.turn = st.turn.Next()
	}
}

func (d *Director) trickView() player.TrickView {
	st := d.state
	return player.TrickView{
		Trump:       st.Trump,
		Led:         st.LedSuit,
		HighestRank: st.highRank,
		WinningSeat: st.highSeat,
	}
}

func (d *Director) stepTrickSelect() error {
	st := d.state
	p := st.Players[st.turn]

	slot, ok, err := d.agents[st.turn].Play(p, d.trickView())
	if err != nil {
		return err
	}
	if !ok {
		d.awaiting = InputCard
		if st.LedSuit == card.NoSuit {
			d.sink.Notice("Your lead.")
		} else {
			d.sink.Notice(fmt.Sprintf("%s was led; your play.", st.LedSuit.Name()))
		}
		return nil
	}
	if !legalSlot(p.LegalSlots(st.LedSuit, st.Trump), slot) {
		return fmt.Errorf("agent for %s chose slot %d: %w", st.turn, slot, apperrors.ErrInvariantViolation)
	}
	st.selected = slot
	d.setPhase(PhaseTrickPlay)
	return nil
}

// stepTrickPlay commits the selected card to the table and updates the
// running winner. The first play of the trick fixes the led suit.
func (d *Director) stepTrickPlay() error {
	st := d.state
	p := st.Players[st.turn]

	c := p.TakeCard(st.selected)
	st.TrickCards[st.turn] = c
	st.cardsPlayed = append(st.cardsPlayed, *c)
	d.sink.Notice(fmt.Sprintf("%s plays the %s.", p.Name, c))
	d.sink.Cue("play_card")

	if st.playsMade == 0 {
		st.LedSuit = card.EffectiveSuit(*c, st.Trump)
	}
	if r := card.RelativeRank(*c, st.Trump, st.LedSuit); r > st.highRank {
		st.highRank = r
		st.highSeat = st.turn
	}

	st.playsMade++
	active := 4
	for _, s := range player.Seats() {
		if st.Players[s].SittingOut {
			active--
		}
	}
	if st.playsMade == active {
		d.postTrick()
		return nil
	}

	st.turn = st.turn.Next()
	d.advanceTrickTurn()
	d.setPhase(PhaseTrickSelect)
	return nil
}

func (d *Director) postTrick() {
	st := d.state
	winner := st.Players[st.highSeat]
	winner.TricksWon++
	st.trickLeader = st.highSeat
	st.OurTricks = st.teamTricks(player.Human)
	st.TheirTricks = st.teamTricks(player.LeftOpponent)

	d.sink.Notice(fmt.Sprintf("%s takes the trick.", winner.Name))
	if st.highSeat == player.Human || st.highSeat == player.Partner {
		d.sink.Cue("applause_soft")
	}
	d.setPhase(PhaseTrickDone)
	d.awaiting = InputAck
}

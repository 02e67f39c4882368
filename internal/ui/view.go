package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"euchre/internal/game/card"
	"euchre/internal/game/engine"
	"euchre/internal/game/player"
)

func (m *Model) View() string {
	snap := m.director.Snapshot()

	var sb strings.Builder

	top := lipgloss.JoinHorizontal(lipgloss.Top, m.renderScore(snap), " ", m.renderTrumpBox(snap))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, top))
	sb.WriteString("\n")

	if snap.Phase == engine.PhaseDealerSelect || snap.Phase == engine.PhaseDealerSelected {
		sel := m.renderSelection(snap)
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, sel))
		sb.WriteString("\n")
	} else {
		table := m.renderTable(snap)
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, table))
		sb.WriteString("\n")

		hand := m.renderHumanHand(snap)
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hand))
		sb.WriteString("\n")
	}

	transcript := m.renderTranscript()
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, transcript))

	prompt := m.renderPrompt(snap)
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, promptStyle.Render(prompt)))

	if m.errText != "" {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, errorStyle.Render(m.errText)))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, docStyle.Render(sb.String()))
}

func (m *Model) renderScore(snap engine.Snapshot) string {
	content := fmt.Sprintf("Us: %d  Them: %d\nTricks: %d-%d",
		snap.OurScore, snap.TheirScore, snap.OurTricks, snap.TheirTricks)
	return boxStyle.Render(content)
}

func (m *Model) renderTrumpBox(snap engine.Snapshot) string {
	var lines []string
	if snap.Trump != card.NoSuit {
		maker := snap.Seats[snap.Maker].Name
		lines = append(lines, fmt.Sprintf("Trump: %s (%s)", styledSuit(snap.Trump), maker))
	} else if snap.UpCardFaceUp {
		lines = append(lines, "Up-card: "+styledCard(snap.UpCard))
	} else {
		lines = append(lines, "Trump: undecided")
	}
	if snap.Phase != engine.PhaseIdle && snap.Phase != engine.PhaseDealerSelect {
		lines = append(lines, "Dealer: "+snap.Seats[snap.Dealer].Name)
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// renderSelection shows the face-up cards of the deal-for-dealer round.
func (m *Model) renderSelection(snap engine.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(titleStyle("Dealing for dealer: first Jack deals"))
	sb.WriteString("\n\n")
	for _, dc := range snap.Selection {
		fmt.Fprintf(&sb, "%-12s %s\n", snap.Seats[dc.Seat].Name, styledCard(dc.Card))
	}
	return boxStyle.Render(sb.String())
}

// renderTable lays out the three AI seats and the trick in progress:
// partner across the top, opponents on the sides.
func (m *Model) renderTable(snap engine.Snapshot) string {
	partner := m.renderSeat(snap, player.Partner)
	left := m.renderSeat(snap, player.LeftOpponent)
	right := m.renderSeat(snap, player.RightOpponent)
	trick := m.renderTrick(snap)

	middle := lipgloss.JoinHorizontal(lipgloss.Center, left, " ", trick, " ", right)
	return lipgloss.JoinVertical(lipgloss.Center, partner, middle)
}

func (m *Model) renderSeat(snap engine.Snapshot, seat player.Seat) string {
	sv := snap.Seats[seat]

	name := sv.Name
	if snap.Dealer == seat {
		name += " " + DealerIcon
	}
	if sv.SittingOut {
		name += " " + AloneIcon
	}
	inTrick := snap.Phase == engine.PhaseTrickSelect || snap.Phase == engine.PhaseTrickPlay
	if inTrick && snap.Turn == seat {
		name = turnStyle.Render(name)
	} else if sv.Bidding {
		name = turnStyle.Render(name + " (bidding)")
	}

	var cards []string
	for _, cv := range sv.Hand {
		switch {
		case !cv.Present:
		case cv.FaceUp:
			cards = append(cards, styledCard(cv.Card))
		default:
			cards = append(cards, grayStyle.Render(CardBack))
		}
	}
	row := strings.Join(cards, " ")
	if sv.SittingOut {
		row = dimStyle.Render("(sitting out)")
	}

	content := lipgloss.JoinVertical(lipgloss.Center, name, row, fmt.Sprintf("tricks: %d", sv.TricksWon))
	return boxStyle.Width(22).Align(lipgloss.Center).Render(content)
}

func (m *Model) renderTrick(snap engine.Snapshot) string {
	slot := func(seat player.Seat) string {
		if c := snap.TrickCards[seat]; c != nil {
			return styledCard(*c)
		}
		return dimStyle.Render("··")
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		slot(player.Partner),
		lipgloss.JoinHorizontal(lipgloss.Center, slot(player.LeftOpponent), "   ", slot(player.RightOpponent)),
		slot(player.Human),
	)
	return boxStyle.Width(14).Align(lipgloss.Center).Render(content)
}

// renderHumanHand draws the hand in two styled rows, rank over suit, with
// slot numbers above. Unplayable cards gray out while a selection is
// pending.
func (m *Model) renderHumanHand(snap engine.Snapshot) string {
	sv := snap.Seats[player.Human]
	selecting := snap.Awaiting == engine.InputCard

	var numStr, rankStr, suitStr strings.Builder
	for i, cv := range sv.Hand {
		if !cv.Present {
			continue
		}
		style := blackStyle
		if cv.Card.Suit.Red() {
			style = redStyle
		}
		if selecting && !cv.Playable {
			style = grayStyle
		}
		style = style.Align(lipgloss.Center).Margin(0, 1)
		numStr.WriteString(dimStyle.Margin(0, 1).Render(fmt.Sprintf("%-2d", i+1)))
		rankStr.WriteString(style.Render(fmt.Sprintf("%-2s", cv.Card.Rank)))
		suitStr.WriteString(style.Render(fmt.Sprintf("%-2s", cv.Card.Suit)))
	}

	name := sv.Name
	if snap.Dealer == player.Human {
		name += " " + DealerIcon
	}
	if snap.Turn == player.Human && selecting {
		name = turnStyle.Render(name)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, name, numStr.String(), rankStr.String(), suitStr.String())
	return boxStyle.Render(content)
}

func (m *Model) renderTranscript() string {
	const keep = 6
	lines := m.transcript
	if len(lines) > keep {
		lines = lines[len(lines)-keep:]
	}
	if len(lines) == 0 {
		return ""
	}
	return boxStyle.Width(54).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderPrompt(snap engine.Snapshot) string {
	if m.confirming {
		return "Abandon the current game? y to confirm, any other key to cancel"
	}

	switch snap.Awaiting {
	case engine.InputAck:
		if snap.Phase == engine.PhaseGameOver {
			return "n for a new game, q to quit"
		}
		return "enter to continue"
	case engine.InputBid1:
		return m.bidHint(fmt.Sprintf("o to order up the %s, p to pass", styledCard(snap.UpCard)))
	case engine.InputBid2:
		hint := fmt.Sprintf("call trump: c/d/h/s (not %s)", styledSuit(snap.ExcludedSuit))
		if snap.ForcedBid {
			return m.bidHint(hint + "; dealer is stuck")
		}
		return m.bidHint(hint + ", p to pass")
	case engine.InputCard:
		if snap.Phase == engine.PhaseDiscard {
			return "1-5 to bury a card"
		}
		return "1-5 to play a card"
	}

	if snap.Phase == engine.PhaseGameOver {
		return "n for a new game, q to quit"
	}
	return dimStyle.Render("n new game, q quit")
}

func (m *Model) bidHint(hint string) string {
	alone := "a to go alone: off"
	if m.aloneArmed {
		alone = turnStyle.Render("a to go alone: ON")
	}
	return hint + "\n" + alone
}

func styledCard(c card.Card) string {
	s := fmt.Sprintf("%s%s", c.Rank, c.Suit)
	if c.Suit.Red() {
		return redStyle.Render(s)
	}
	return blackStyle.Render(s)
}

func styledSuit(s card.Suit) string {
	if s.Red() {
		return redStyle.Render(s.String())
	}
	return blackStyle.Render(s.String())
}

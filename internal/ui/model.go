// Package ui renders the Euchre table in the terminal and translates
// keystrokes into engine submissions. The engine is stepped one transition
// at a time on a short tick so AI turns unfold at a readable pace.
package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"euchre/internal/apperrors"
	"euchre/internal/config"
	"euchre/internal/game/card"
	"euchre/internal/game/engine"
	"euchre/internal/logger"
	"euchre/internal/sound"
)

const stepDelay = 350 * time.Millisecond

type advanceMsg struct{}

type keyMap struct {
	Quit     key.Binding
	NewGame  key.Binding
	Confirm  key.Binding
	Continue key.Binding
	OrderUp  key.Binding
	Pass     key.Binding
	Alone    key.Binding
	Clubs    key.Binding
	Diamonds key.Binding
	Hearts   key.Binding
	Spades   key.Binding
	Slots    key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	NewGame:  key.NewBinding(key.WithKeys("n")),
	Confirm:  key.NewBinding(key.WithKeys("y")),
	Continue: key.NewBinding(key.WithKeys("enter", " ")),
	OrderUp:  key.NewBinding(key.WithKeys("o")),
	Pass:     key.NewBinding(key.WithKeys("p")),
	Alone:    key.NewBinding(key.WithKeys("a")),
	Clubs:    key.NewBinding(key.WithKeys("c")),
	Diamonds: key.NewBinding(key.WithKeys("d")),
	Hearts:   key.NewBinding(key.WithKeys("h")),
	Spades:   key.NewBinding(key.WithKeys("s")),
	Slots:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5")),
}

// Model is the bubbletea model for a table. It doubles as the engine's
// Sink: both run on the bubbletea update goroutine, so no locking is
// needed.
type Model struct {
	director *engine.Director
	cfg      *config.Config
	sounds   *sound.Manager

	width  int
	height int

	transcript []string
	errText    string

	confirming bool // new-game requested while a game is in progress
	aloneArmed bool // the next bid call plays alone
}

// New creates the table model. The sound manager may be nil.
func New(cfg *config.Config, sounds *sound.Manager) *Model {
	m := &Model{cfg: cfg, sounds: sounds}
	m.director = engine.New(m)
	return m
}

// PhaseChanged implements engine.Sink.
func (m *Model) PhaseChanged(old, new engine.Phase) {
	logger.LogInfo("phase %s -> %s", old, new)
}

// Notice implements engine.Sink, feeding the table transcript.
func (m *Model) Notice(text string) {
	m.transcript = append(m.transcript, text)
	if len(m.transcript) > 200 {
		m.transcript = m.transcript[len(m.transcript)-200:]
	}
}

// Cue implements engine.Sink. The quiet-dealer setting keeps the table
// free of applause; the sound toggle silences everything.
func (m *Model) Cue(name string) {
	if m.sounds == nil || !m.cfg.Rules.SoundOn {
		return
	}
	if m.cfg.Rules.QuietDealer && (name == "applause_soft" || name == "applause_loud" || name == "applause_wild") {
		return
	}
	m.sounds.Play(name)
}

func (m *Model) Init() tea.Cmd {
	if err := m.director.RequestNewGame(m.cfg); err != nil {
		logger.LogError("start game: %v", err)
		m.errText = err.Error()
		return nil
	}
	return m.schedule()
}

// schedule arms the next engine step unless the engine is waiting on us.
func (m *Model) schedule() tea.Cmd {
	if m.director.Awaiting() != engine.InputNone {
		return nil
	}
	switch m.director.Phase() {
	case engine.PhaseIdle, engine.PhaseGameOver:
		return nil
	}
	return tea.Tick(stepDelay, func(time.Time) tea.Msg { return advanceMsg{} })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case advanceMsg:
		if err := m.director.Advance(); err != nil {
			logger.LogError("advance: %v", err)
			m.errText = err.Error()
			return m, nil
		}
		return m, m.schedule()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}

	if m.confirming {
		m.confirming = false
		if key.Matches(msg, keys.Confirm) {
			m.reset()
			if err := m.director.ConfirmNewGame(m.cfg); err != nil {
				m.errText = err.Error()
				return m, nil
			}
			return m, m.schedule()
		}
		return m, nil
	}

	if key.Matches(msg, keys.NewGame) {
		err := m.director.RequestNewGame(m.cfg)
		switch {
		case errors.Is(err, apperrors.ErrConfirmRequired):
			m.confirming = true
			return m, nil
		case err != nil:
			m.errText = err.Error()
			return m, nil
		}
		m.reset()
		return m, m.schedule()
	}

	switch m.director.Awaiting() {
	case engine.InputAck:
		if key.Matches(msg, keys.Continue) {
			m.errText = ""
			if err := m.director.Acknowledge(); err != nil {
				m.errText = err.Error()
				return m, nil
			}
			return m, m.schedule()
		}
	case engine.InputBid1:
		return m.handleBid1Key(msg)
	case engine.InputBid2:
		return m.handleBid2Key(msg)
	case engine.InputCard:
		return m.handleCardKey(msg)
	}
	return m, nil
}

func (m *Model) handleBid1Key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Alone):
		m.aloneArmed = !m.aloneArmed
		return m, nil
	case key.Matches(msg, keys.OrderUp):
		return m.submitBid(engine.BidDecision{Call: true, Alone: m.aloneArmed})
	case key.Matches(msg, keys.Pass):
		return m.submitBid(engine.BidDecision{})
	}
	return m, nil
}

func (m *Model) handleBid2Key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Alone):
		m.aloneArmed = !m.aloneArmed
		return m, nil
	case key.Matches(msg, keys.Pass):
		return m.submitBid(engine.BidDecision{})
	case key.Matches(msg, keys.Clubs):
		return m.submitCall(card.Clubs)
	case key.Matches(msg, keys.Diamonds):
		return m.submitCall(card.Diamonds)
	case key.Matches(msg, keys.Hearts):
		return m.submitCall(card.Hearts)
	case key.Matches(msg, keys.Spades):
		return m.submitCall(card.Spades)
	}
	return m, nil
}

func (m *Model) submitCall(suit card.Suit) (tea.Model, tea.Cmd) {
	return m.submitBid(engine.BidDecision{Call: true, Suit: suit, Alone: m.aloneArmed})
}

func (m *Model) submitBid(dec engine.BidDecision) (tea.Model, tea.Cmd) {
	m.errText = ""
	if err := m.director.SubmitHumanBid(dec); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	m.aloneArmed = false
	return m, m.schedule()
}

func (m *Model) handleCardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, keys.Slots) {
		return m, nil
	}
	slot := int(msg.String()[0] - '1')
	m.errText = ""
	if err := m.director.SubmitHumanCardSelection(slot); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	return m, m.schedule()
}

func (m *Model) reset() {
	m.transcript = nil
	m.errText = ""
	m.confirming = false
	m.aloneArmed = false
}

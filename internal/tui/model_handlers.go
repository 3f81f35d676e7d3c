package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/acrodrill/internal/core/card"
	"github.com/hay-kot/acrodrill/internal/core/drill"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case stateLookupInput:
		return m.handleLookupKey(msg)
	case stateDebug:
		return m.handleDebugKey(msg)
	case stateHelp:
		if key.Matches(msg, m.keys.Escape, m.keys.Help, m.keys.Quit, m.keys.Debug) {
			m.state = stateDrill
		}
		return m, nil
	default:
		return m.handleDrillKey(msg)
	}
}

// handleDrillKey applies a drill key. Review mode switches itself off once
// the last Incorrect grade is cleared, which is reported as a toast.
func (m Model) handleDrillKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	reviewing := m.session.ReviewMode()

	next, cmd := m.drillKey(msg)
	nm := next.(Model)
	if reviewing && !nm.session.ReviewMode() && !key.Matches(msg, m.keys.Review) {
		return nm, tea.Batch(cmd, nm.notify(LevelInfo, "review complete"))
	}
	return nm, cmd
}

func (m Model) drillKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	lookingUp := s.Mode() == drill.LookingUp

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		if lookingUp {
			s.ExitLookup()
			return m, nil
		}
		s.Advance(drill.Forward)

	case key.Matches(msg, m.keys.Prev):
		if lookingUp {
			s.ExitLookup()
			return m, nil
		}
		s.Advance(drill.Backward)

	case key.Matches(msg, m.keys.Reveal):
		s.ToggleReveal()

	case key.Matches(msg, m.keys.Escape):
		if lookingUp {
			s.ExitLookup()
			return m, nil
		}
		s.ToggleMarkedCorrect()

	case key.Matches(msg, m.keys.Flip):
		s.ToggleMarkedCorrect()

	case key.Matches(msg, m.keys.Review):
		if lookingUp {
			return m, nil
		}
		if s.ReviewMode() {
			s.ToggleReviewMode(false)
			return m, nil
		}
		if !s.ToggleReviewMode(true) {
			return m, m.notify(LevelInfo, "nothing to review")
		}

	case key.Matches(msg, m.keys.Filter):
		m.cycleFilter(1)

	case key.Matches(msg, m.keys.FilterB):
		m.cycleFilter(-1)

	case key.Matches(msg, m.keys.Lookup):
		m.state = stateLookupInput
		m.lookupInput.SetValue("")
		m.lookupInput.SetSuggestions(lookupSuggestions(s.Active()))
		m.lookupInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Open):
		c, ok := s.Displayed()
		if !ok {
			return m, nil
		}
		if len(c.URLs()) == 0 {
			return m, m.notify(LevelInfo, "no references for "+c.Key)
		}
		return m, m.openCmd(c)

	case key.Matches(msg, m.keys.Copy):
		c, ok := s.Displayed()
		if !ok {
			return m, nil
		}
		if err := m.copy(c.Key + ": " + c.Definition("; ")); err != nil {
			m.log.Warn().Ctx(m.ctx).Err(err).Msg("copy to clipboard")
			return m, m.notify(LevelError, "copy failed: "+err.Error())
		}
		return m, m.notify(LevelInfo, "copied "+c.Key)

	case key.Matches(msg, m.keys.Reload):
		if m.loading || m.app.Cards.Loading() {
			return m, m.notify(LevelWarning, "reload already running")
		}
		m.loading = true
		return m, m.reloadCmd()

	case key.Matches(msg, m.keys.Debug):
		m.debug.Refresh(m.app.Debug)
		m.state = stateDebug

	case key.Matches(msg, m.keys.Help):
		m.state = stateHelp
	}

	return m, nil
}

func (m Model) handleLookupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.lookupInput.Blur()
		m.session.ExitLookup()
		m.state = stateDrill
		return m, nil
	case tea.KeyEnter:
		m.lookupInput.Blur()
		if strings.TrimSpace(m.lookupInput.Value()) == "" {
			m.session.ExitLookup()
		}
		m.state = stateDrill
		return m, nil
	}

	var cmd tea.Cmd
	m.lookupInput, cmd = m.lookupInput.Update(msg)
	m.session.Lookup(strings.TrimSpace(m.lookupInput.Value()))
	return m, cmd
}

func (m Model) handleDebugKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.debugKeys.Close):
		m.state = stateDrill
	case key.Matches(msg, m.debugKeys.Up):
		m.debug.MoveUp()
	case key.Matches(msg, m.debugKeys.Down):
		m.debug.MoveDown()
	case key.Matches(msg, m.debugKeys.Strict):
		m.app.Debug.SetStrict(!m.app.Debug.Strict())
		m.debug.Refresh(m.app.Debug)
	case key.Matches(msg, m.debugKeys.Toggle):
		src, ok := m.debug.Selected()
		if !ok {
			return m, nil
		}
		if m.loading || m.app.Cards.Loading() {
			return m, m.notify(LevelWarning, "reload already running")
		}
		m.loading = true
		return m, m.toggleSourceCmd(src.Name)
	}
	return m, nil
}

// cycleFilter steps through the key lengths present, wrapping around.
func (m *Model) cycleFilter(step int) {
	lengths := m.session.Lengths()
	i := slices.Index(lengths, m.session.Filter())
	if i < 0 {
		i = 0
	}
	n := len(lengths)
	m.session.SetFilter(lengths[((i+step)%n+n)%n])
}

func (m Model) handleCardsLoaded(msg cardsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		return m, m.notify(LevelError, "reload failed: "+msg.err.Error())
	}

	m.session.SetCards(msg.cards)
	m.debug.Refresh(m.app.Debug)
	return m, m.loadedNotice(len(msg.cards))
}

func (m Model) handleSourceToggled(msg sourceToggledMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.debug.Refresh(m.app.Debug)
	if msg.err != nil {
		return m, m.notify(LevelError, fmt.Sprintf("toggle %s: %v", msg.name, msg.err))
	}

	m.session.SetCards(msg.cards)
	m.debug.Refresh(m.app.Debug)
	return m, m.loadedNotice(len(msg.cards))
}

// handleSourcesChanged reloads after a source file is edited on disk. An
// event that arrives while a load is running is dropped since that load may
// already see the edit; the next write triggers another event.
func (m Model) handleSourcesChanged(msg sourcesChangedMsg) (tea.Model, tea.Cmd) {
	m.log.Debug().Ctx(m.ctx).Str("path", msg.event.Path).Msg("source changed on disk")
	if m.loading || m.app.Cards.Loading() {
		return m, m.waitForChange()
	}

	m.loading = true
	return m, tea.Batch(m.reloadCmd(), m.waitForChange())
}

// loadedNotice reports a successful load. In strict mode any diagnostics
// finding is raised as a warning.
func (m *Model) loadedNotice(n int) tea.Cmd {
	if m.app.Debug.Strict() {
		if r := m.app.Debug.Report(); !r.Clean() {
			return m.notify(LevelWarning, fmt.Sprintf("loaded %d cards: %d duplicate keys, %d whitespace issues",
				n, len(r.Duplicates), len(r.Whitespace)))
		}
	}
	return m.notify(LevelInfo, fmt.Sprintf("loaded %d cards", n))
}

// lookupSuggestions offers the active keys for tab completion in the lookup
// input.
func lookupSuggestions(cards []card.Card) []string {
	keys := make([]string, 0, len(cards))
	for _, c := range cards {
		keys = append(keys, c.Key)
	}
	slices.Sort(keys)
	return keys
}

// Package tui implements the Bubble Tea drill screen for acrodrill.
package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hay-kot/acrodrill/internal/app"
	"github.com/hay-kot/acrodrill/internal/core/card"
	"github.com/hay-kot/acrodrill/internal/core/drill"
	"github.com/hay-kot/acrodrill/internal/core/logging"
	"github.com/hay-kot/acrodrill/internal/core/watch"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateDrill UIState = iota
	stateLookupInput
	stateDebug
	stateHelp
)

// Options configures the TUI behavior.
type Options struct {
	DrillID string             // log correlation id; generated when empty
	Copy    func(string) error // clipboard writer; defaults to the system clipboard

	// Changes, when set, triggers a reload for every source change event.
	Changes <-chan watch.Event
}

// Messages produced by background commands.
type (
	cardsLoadedMsg struct {
		cards []card.Card
		err   error
	}
	sourceToggledMsg struct {
		name  string
		cards []card.Card
		err   error
	}
	referencesOpenedMsg struct {
		key string
		err error
	}
	sourcesChangedMsg struct {
		event watch.Event
	}
)

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	app     *app.App
	session *drill.Session
	ctx     context.Context
	log     zerolog.Logger

	state       UIState
	keys        keyMap
	debugKeys   debugKeyMap
	help        help.Model
	lookupInput textinput.Model
	debug       *DebugPanel
	helpView    *HelpView
	toasts      *ToastController
	toastView   *ToastView
	copy        func(string) error
	changes     <-chan watch.Event

	loading  bool
	width    int
	height   int
	quitting bool
}

// New creates a drill over the cards currently loaded in a.
func New(ctx context.Context, a *app.App, opts Options) Model {
	drillID := opts.DrillID
	if drillID == "" {
		drillID = uuid.NewString()
	}
	ctx = logging.WithDrillID(ctx, drillID)

	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	input := textinput.New()
	input.Prompt = "lookup: "
	input.Placeholder = "key"
	input.CharLimit = 32
	input.ShowSuggestions = true

	keys := defaultKeyMap()
	toasts := NewToastController()

	m := Model{
		app:         a,
		session:     drill.New(a.Cards.Cards()),
		ctx:         ctx,
		log:         logging.Component("tui"),
		state:       stateDrill,
		keys:        keys,
		debugKeys:   defaultDebugKeyMap(),
		help:        help.New(),
		lookupInput: input,
		debug:       NewDebugPanel(a.Debug),
		helpView:    NewHelpView(keys),
		toasts:      toasts,
		toastView:   NewToastView(toasts),
		copy:        copyFn,
		changes:     opts.Changes,
	}

	m.log.Info().Ctx(ctx).Int("cards", m.session.Len()).Msg("drill started")
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForChange()}
	if m.session.Len() == 0 {
		cmds = append(cmds, m.notify(LevelWarning, "no cards loaded: press ? to pick sources or R to reload"))
	}
	return tea.Batch(cmds...)
}

// Session exposes the drill state, mainly for tests.
func (m Model) Session() *drill.Session {
	return m.session
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.lookupInput.Width = max(msg.Width-12, 10)
		return m, nil

	case cardsLoadedMsg:
		return m.handleCardsLoaded(msg)

	case sourceToggledMsg:
		return m.handleSourceToggled(msg)

	case sourcesChangedMsg:
		return m.handleSourcesChanged(msg)

	case referencesOpenedMsg:
		if msg.err != nil {
			return m, m.notify(LevelError, "open "+msg.key+": "+msg.err.Error())
		}
		return m, nil

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toasts.SetTicking(false)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.state == stateLookupInput {
		var cmd tea.Cmd
		m.lookupInput, cmd = m.lookupInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// notify pushes a toast and starts the expiry timer if it is not running.
func (m *Model) notify(level Level, message string) tea.Cmd {
	m.toasts.Push(level, message)
	if m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

func (m Model) reloadCmd() tea.Cmd {
	ctx, cards := m.ctx, m.app.Cards
	return func() tea.Msg {
		loaded, err := cards.Reload(ctx)
		return cardsLoadedMsg{cards: loaded, err: err}
	}
}

// waitForChange blocks on the next source change event. It returns nil when
// watching is off.
func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return sourcesChangedMsg{event: ev}
	}
}

func (m Model) toggleSourceCmd(name string) tea.Cmd {
	ctx, debug := m.ctx, m.app.Debug
	return func() tea.Msg {
		loaded, err := debug.ToggleSource(ctx, name)
		return sourceToggledMsg{name: name, cards: loaded, err: err}
	}
}

func (m Model) openCmd(c card.Card) tea.Cmd {
	ctx, a := m.ctx, m.app
	return func() tea.Msg {
		return referencesOpenedMsg{key: c.Key, err: a.OpenReferences(ctx, c)}
	}
}

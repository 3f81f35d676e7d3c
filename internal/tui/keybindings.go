package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the drill screen bindings.
type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Reveal  key.Binding
	Escape  key.Binding
	Flip    key.Binding
	Review  key.Binding
	Filter  key.Binding
	FilterB key.Binding
	Lookup  key.Binding
	Open    key.Binding
	Copy    key.Binding
	Reload  key.Binding
	Debug   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("right", "down", "n"), key.WithHelp("→/n", "next")),
		Prev:    key.NewBinding(key.WithKeys("left", "up", "p"), key.WithHelp("←/p", "prev")),
		Reveal:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "reveal")),
		Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back/flip")),
		Flip:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "correct?")),
		Review:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "review")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f/F", "length")),
		FilterB: key.NewBinding(key.WithKeys("F")),
		Lookup:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "lookup")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Reload:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload")),
		Debug:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "debug")),
		Help:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is the footer line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Reveal, k.Flip, k.Review, k.Filter, k.Lookup, k.Debug, k.Help, k.Quit}
}

// FullHelp groups every binding for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Reveal, k.Escape, k.Flip},
		{k.Review, k.Filter, k.Lookup},
		{k.Open, k.Copy, k.Reload, k.Debug, k.Help, k.Quit},
	}
}

// debugKeyMap holds the debug panel bindings.
type debugKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Strict key.Binding
	Close  key.Binding
}

func defaultDebugKeyMap() debugKeyMap {
	return debugKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle source")),
		Strict: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "strict")),
		Close:  key.NewBinding(key.WithKeys("esc", "?", "q"), key.WithHelp("esc", "close")),
	}
}

func (k debugKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Strict, k.Close}
}

func (k debugKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

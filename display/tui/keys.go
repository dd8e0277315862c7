package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the TUI.
// It implements the help.KeyMap interface for bubbles/help integration.
type keyMap struct {
	Quit      key.Binding
	Page      key.Binding
	Older     key.Binding
	Newer     key.Binding
	View      key.Binding
	Timeframe key.Binding
	Refresh   key.Binding
	Help      key.Binding
}

// ShortHelp returns the compact set of keybindings shown by default in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Page, k.View, k.Timeframe, k.Quit}
}

// FullHelp returns the expanded keybinding groups shown when help is toggled.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Page, k.Older, k.Newer},
		{k.View, k.Timeframe, k.Refresh},
		{k.Help, k.Quit},
	}
}

// keys holds the default key bindings used by the application.
var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Page:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch page")),
	Older:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "older day")),
	Newer:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "newer day")),
	View:      key.NewBinding(key.WithKeys("v", " "), key.WithHelp("v", "cycle stat view")),
	Timeframe: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle 12h/12d")),
	Refresh:   key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

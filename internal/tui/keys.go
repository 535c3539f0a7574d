package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the key bindings for browsing and editing.
// Action bindings use ctrl chords so they work while a form field has focus.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Add      key.Binding
	Update   key.Binding
	Delete   key.Binding
	Search   key.Binding
	Clear    key.Binding
	ShowAll  key.Binding
	Reset    key.Binding
	Quit     key.Binding
	QuitList key.Binding
}

// ShortHelp returns the bindings shown in the help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Add, k.Update, k.Delete, k.Search, k.Clear, k.ShowAll, k.Quit}
}

// FullHelp returns the bindings grouped for expanded help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Next, k.Prev},
		{k.Add, k.Update, k.Delete, k.Search},
		{k.Clear, k.ShowAll, k.Reset, k.Quit},
	}
}

// DefaultKeyMap returns the key bindings for the contact manager.
func DefaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit selected"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Add: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("^n", "add"),
		),
		Update: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("^u", "update"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("^d", "delete"),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("^f", "search"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("^l", "clear list"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("^r", "show all"),
		),
		Reset: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear form"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "quit"),
		),
		QuitList: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

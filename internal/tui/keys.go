package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Generate key.Binding
	Next     key.Binding
	Prev     key.Binding
	// CellNext and CellPrev only apply while a letter cell has focus so the
	// arrows keep moving the cursor inside the text inputs.
	CellNext key.Binding
	CellPrev key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	NextList key.Binding
	PrevList key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "make fields"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next input"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev input"),
		),
		CellNext: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next cell"),
		),
		CellPrev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev cell"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+n"),
			key.WithHelp("pgdn", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("pgup", "ctrl+p"),
			key.WithHelp("pgup", "prev page"),
		),
		NextList: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "next list"),
		),
		PrevList: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "prev list"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Next, k.NextPage, k.NextList, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Next, k.Prev},
		{k.CellNext, k.CellPrev},
		{k.NextPage, k.PrevPage},
		{k.NextList, k.PrevList},
		{k.Help, k.Quit},
	}
}

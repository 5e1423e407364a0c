package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle key.Binding
	Offset key.Binding
	Tap    key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "show/hide")),
		Offset: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "snack offset")),
		Tap:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "tap")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Offset, k.Tap, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pen     key.Binding
	Eraser  key.Binding
	Color   key.Binding
	Wider   key.Binding
	Thinner key.Binding
	Clear   key.Binding
	Save    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pen:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pen")),
		Eraser:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "eraser")),
		Color:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"), key.WithHelp("1-0", "colour")),
		Wider:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "wider")),
		Thinner: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "thinner")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save png")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pen, k.Eraser, k.Color, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pen, k.Eraser, k.Color},
		{k.Wider, k.Thinner, k.Clear},
		{k.Save, k.Help, k.Quit},
	}
}

// paletteIndex maps the digit keys to palette slots: 1..9 then 0.
func paletteIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	if s[0] == '0' {
		return 9, true
	}
	return int(s[0] - '1'), true
}

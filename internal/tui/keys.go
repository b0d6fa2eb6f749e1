package tui

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap defines the global key bindings.
type KeyMap struct {
	Slot       key.Binding // 1..9 jump straight to a slot
	NextSlot   key.Binding
	PrevSlot   key.Binding
	ChooseSlot key.Binding
	EditSlot   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Slot: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "activate slot"),
		),
		NextSlot: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab/→", "next slot"),
		),
		PrevSlot: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab/←", "previous slot"),
		),
		ChooseSlot: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "activate slot under cursor"),
		),
		EditSlot: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "pick a city"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

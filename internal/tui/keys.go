package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	OpenSearch  key.Binding
	OpenDrawer  key.Binding
	Close       key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	PrevSlide   key.Binding
	NextSlide   key.Binding
	Enter       key.Binding
	HistoryUp   key.Binding
	HistoryDown key.Binding
	DeleteEntry key.Binding
	ClearAll    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
		OpenSearch:  key.NewBinding(key.WithKeys("/", "s")),
		OpenDrawer:  key.NewBinding(key.WithKeys("m")),
		Close:       key.NewBinding(key.WithKeys("esc")),
		Up:          key.NewBinding(key.WithKeys("up", "k")),
		Down:        key.NewBinding(key.WithKeys("down", "j")),
		PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+b")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+f")),
		PrevSlide:   key.NewBinding(key.WithKeys("left", "h")),
		NextSlide:   key.NewBinding(key.WithKeys("right", "l")),
		Enter:       key.NewBinding(key.WithKeys("enter")),
		HistoryUp:   key.NewBinding(key.WithKeys("up")),
		HistoryDown: key.NewBinding(key.WithKeys("down")),
		DeleteEntry: key.NewBinding(key.WithKeys("ctrl+d")),
		ClearAll:    key.NewBinding(key.WithKeys("ctrl+l")),
	}
}

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the global key bindings.
type KeyMap struct {
	Quit       key.Binding
	Pause      key.Binding
	NextSystem key.Binding
	PrevSystem key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	SliderUp   key.Binding
	SliderDown key.Binding
	Labels     key.Binding
	Reset      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		NextSystem: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("tab", "next system"),
		),
		PrevSystem: key.NewBinding(
			key.WithKeys("shift+tab", "N"),
			key.WithHelp("shift+tab", "prev system"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "zoom out"),
		),
		SliderUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "grow bodies"),
		),
		SliderDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "shrink bodies"),
		),
		Labels: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "labels"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset view"),
		),
	}
}

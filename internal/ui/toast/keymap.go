package toast

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings a toast responds to.
type KeyMap struct {
	Toggle  key.Binding
	Dismiss key.Binding
}

// DefaultKeyMap returns the default toast key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view more/less"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
	}
}

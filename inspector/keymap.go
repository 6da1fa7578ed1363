package inspector

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the inspector key bindings.
type KeyMap struct {
	Backspace key.Binding
	Clear     key.Binding
	Double    key.Binding

	// Stash moves the text aside, leaving the inspector empty; Restore
	// copies the stash back.
	Stash, Restore key.Binding
}

// DefaultKeyMap returns the default inspector bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete last char")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Double:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "concat with itself")),
		Stash:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "stash")),
		Restore:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restore stash")),
	}
}

func (k KeyMap) isZero() bool {
	return len(k.Backspace.Keys()) == 0 &&
		len(k.Clear.Keys()) == 0 &&
		len(k.Double.Keys()) == 0 &&
		len(k.Stash.Keys()) == 0 &&
		len(k.Restore.Keys()) == 0
}

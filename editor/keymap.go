package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the bindings the component handles itself. Everything else
// is forwarded to the engine's modal interpreter.
//
// Bindings must not shadow keys the engine uses (ctrl+r, ctrl+d, ctrl+u).
type KeyMap struct {
	ToggleLineNumbers key.Binding
	// Paste inserts the clipboard as a bracketed paste (Insert and Search
	// modes only).
	Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleLineNumbers: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "line numbers")),
		Paste:             key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleLineNumbers, k.Paste}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/vimkit/input"
)

var specialKeys = map[tea.KeyType]input.Key{
	tea.KeyEnter:      input.Special(input.KeyEnter),
	tea.KeyEsc:        input.Special(input.KeyEsc),
	tea.KeyBackspace:  input.Special(input.KeyBackspace),
	tea.KeyCtrlH:      input.Special(input.KeyBackspace),
	tea.KeyDelete:     input.Special(input.KeyDelete),
	tea.KeyTab:        input.Special(input.KeyTab),
	tea.KeyLeft:       input.Special(input.KeyLeft),
	tea.KeyRight:      input.Special(input.KeyRight),
	tea.KeyUp:         input.Special(input.KeyUp),
	tea.KeyDown:       input.Special(input.KeyDown),
	tea.KeyHome:       input.Special(input.KeyHome),
	tea.KeyEnd:        input.Special(input.KeyEnd),
	tea.KeyPgUp:       input.Special(input.KeyPgUp),
	tea.KeyPgDown:     input.Special(input.KeyPgDown),
	tea.KeyShiftLeft:  {Code: input.KeyLeft, Mods: input.ModShift},
	tea.KeyShiftRight: {Code: input.KeyRight, Mods: input.ModShift},
	tea.KeyShiftUp:    {Code: input.KeyUp, Mods: input.ModShift},
	tea.KeyShiftDown:  {Code: input.KeyDown, Mods: input.ModShift},
	tea.KeySpace:      input.Rune(' '),
}

// translateKey converts a Bubble Tea key message into engine input. Paste
// events and multi-rune messages (IME commits) become bracketed pastes so
// they never trigger bindings.
func translateKey(msg tea.KeyMsg) (input.Key, bool) {
	var k input.Key
	switch {
	case msg.Type == tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return input.Key{}, false
		}
		if msg.Paste || len(msg.Runes) > 1 {
			return input.Paste(string(msg.Runes)), true
		}
		k = input.Rune(msg.Runes[0])
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		if sk, ok := specialKeys[msg.Type]; ok {
			k = sk
			break
		}
		k = input.Ctrl(rune('a' + int(msg.Type-tea.KeyCtrlA)))
	default:
		sk, ok := specialKeys[msg.Type]
		if !ok {
			return input.Key{}, false
		}
		k = sk
	}
	if msg.Alt {
		k.Mods |= input.ModAlt
	}
	return k, true
}

package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/vimkit/input"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want input.Key
		ok   bool
	}{
		{"rune", runeKey('a'), input.Rune('a'), true},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true}, input.Key{Code: input.KeyRune, Rune: 'a', Mods: input.ModAlt}, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, input.Rune(' '), true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, input.Special(input.KeyEnter), true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, input.Special(input.KeyEsc), true},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, input.Special(input.KeyBackspace), true},
		{"ctrl+h", tea.KeyMsg{Type: tea.KeyCtrlH}, input.Special(input.KeyBackspace), true},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, input.Special(input.KeyTab), true},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, input.Ctrl('r'), true},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, input.Ctrl('d'), true},
		{"shift+left", tea.KeyMsg{Type: tea.KeyShiftLeft}, input.Key{Code: input.KeyLeft, Mods: input.ModShift}, true},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, input.Special(input.KeyPgDown), true},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab"), Paste: true}, input.Paste("ab"), true},
		{"multi-rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("日本")}, input.Paste("日本"), true},
		{"empty runes", tea.KeyMsg{Type: tea.KeyRunes}, input.Key{}, false},
		{"f1", tea.KeyMsg{Type: tea.KeyF1}, input.Key{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateKey(tt.msg)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("translateKey: got (%+v,%v), want (%+v,%v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

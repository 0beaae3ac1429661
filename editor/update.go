package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/vimkit/input"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.ToggleLineNumbers):
		m.showLineNums = !m.showLineNums
		m.rebuildContent()
		return m, nil
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()
	default:
		k, ok := translateKey(msg)
		if !ok {
			return m, nil
		}
		m.ed.HandleKey(k)
	}
	m.sync()
	return m, nil
}

func (m Model) pasteClipboard() {
	clip := m.cfg.Engine.Clipboard
	if clip == nil {
		return
	}
	s, err := clip.ReadText()
	if err != nil {
		m.logger.Debug("clipboard read failed", "err", err)
		return
	}
	// Normalize newlines from external sources.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if s == "" {
		return
	}
	m.ed.HandleKey(input.Paste(s))
}

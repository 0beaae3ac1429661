package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/vimkit/input"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if isWheelMouse(msg) {
		// Manual scrolling; the next cursor change snaps back to the engine's
		// scroll hint.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if !m.focused {
		return m, nil
	}

	var kind input.PointerKind
	x, y := msg.X, msg.Y
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(x, y) {
			return m, nil
		}
		kind = input.PointerPress
		m.dragging = true
	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		kind = input.PointerDrag
		x, y = m.clampMouseToBounds(x, y)
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		kind = input.PointerRelease
	default:
		return m, nil
	}

	m.ed.HandlePointer(m.pointerAt(kind, x, y))
	m.sync()
	return m, nil
}

// pointerAt converts viewport-local coordinates into a pointer event relative
// to the engine's text area: the gutter is stripped and manual scrolling is
// accounted for.
func (m Model) pointerAt(kind input.PointerKind, x, y int) input.Pointer {
	return input.Pointer{
		Kind: kind,
		X:    max(x-m.gutterWidth(), 0),
		Y:    y + m.viewport.YOffset - m.ed.ScrollOffset(),
	}
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = min(max(x, 0), m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = min(max(y, 0), m.viewport.Height-1)
	}
	return x, y
}

package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/engine"
	"github.com/iw2rmb/vimkit/vim"
)

func mouse(m Model, action tea.MouseAction, button tea.MouseButton, x, y int) Model {
	m, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: action, Button: button})
	return m
}

func TestMouse_PressAndDragSelect(t *testing.T) {
	m := New(Config{Engine: engine.Config{Text: "abc\ndef"}, ShowLineNums: true})
	m = m.SetSize(20, 5)

	m = mouse(m, tea.MouseActionPress, tea.MouseButtonLeft, 4, 1)
	if got := m.Engine().Cursor(); got != (buffer.Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor after press: got %v, want %v", got, buffer.Pos{Row: 1, Col: 2})
	}

	m = mouse(m, tea.MouseActionMotion, tea.MouseButtonLeft, 2, 0)
	if got := m.Engine().Mode(); got != vim.Visual {
		t.Fatalf("mode after drag: got %v, want %v", got, vim.Visual)
	}
	want := engine.Selection{
		Kind:  engine.SelectChar,
		Range: buffer.Range{Start: buffer.Pos{Row: 0, Col: 0}, End: buffer.Pos{Row: 1, Col: 3}},
	}
	if got := m.Engine().Selection(); got != want {
		t.Fatalf("selection after drag: got %+v, want %+v", got, want)
	}

	m = mouse(m, tea.MouseActionRelease, tea.MouseButtonLeft, 2, 0)
	m = mouse(m, tea.MouseActionMotion, tea.MouseButtonNone, 4, 1)
	if got := m.Engine().Cursor(); got != (buffer.Pos{Row: 0, Col: 0}) {
		t.Fatalf("motion after release moved the cursor to %v", got)
	}

	m = mouse(m, tea.MouseActionPress, tea.MouseButtonLeft, 3, 0)
	if got := m.Engine().Mode(); got != vim.Normal {
		t.Fatalf("mode after press: got %v, want %v", got, vim.Normal)
	}
}

func TestMouse_IgnoresOtherButtonsAndOutOfBounds(t *testing.T) {
	m := New(Config{Engine: engine.Config{Text: "abc\ndef"}})
	m = m.SetSize(20, 5)

	m = mouse(m, tea.MouseActionPress, tea.MouseButtonRight, 1, 1)
	m = mouse(m, tea.MouseActionPress, tea.MouseButtonLeft, 30, 1)
	if got := m.Engine().Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor after ignored presses: got %v, want %v", got, buffer.Pos{})
	}
}

func TestMouse_WheelDoesNotMoveCursor(t *testing.T) {
	m := New(Config{Engine: engine.Config{Text: "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"}})
	m = m.SetSize(10, 3)

	m = mouse(m, tea.MouseActionPress, tea.MouseButtonWheelDown, 0, 0)
	if got := m.Engine().Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor after wheel: got %v", got)
	}
	top := m.ViewportState().TopRow
	if top == 0 {
		t.Fatalf("wheel did not scroll the viewport")
	}

	// Clicks account for the manual scroll.
	m = mouse(m, tea.MouseActionPress, tea.MouseButtonLeft, 0, 0)
	if got := m.Engine().Cursor().Row; got != top {
		t.Fatalf("cursor row after click: got %d, want %d", got, top)
	}
}

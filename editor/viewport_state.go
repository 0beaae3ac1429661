package editor

import (
	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/input"
)

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the document row rendered at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// GutterWidth is the number of cells left of the text.
	GutterWidth int
}

func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopRow:      max(m.viewport.YOffset, 0),
		VisibleRows: m.visibleRowCount(),
		GutterWidth: m.gutterWidth(),
	}
}

// ScreenToDoc maps viewport-local screen coordinates to a document position.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	p := m.pointerAt(input.PointerPress, x, y)
	return m.ed.PosAt(p.X, p.Y)
}

// DocToScreen maps a document position to viewport-local screen coordinates.
//
// ok is false when the position is outside the visible rows.
func (m Model) DocToScreen(pos buffer.Pos) (x int, y int, ok bool) {
	b := m.ed.Buffer()
	pos = b.ClampPos(pos)
	y = pos.Row - m.viewport.YOffset
	if y < 0 || y >= m.visibleRowCount() {
		return 0, 0, false
	}
	x = m.gutterWidth()
	for _, c := range b.Row(pos.Row)[:pos.Col] {
		x += max(c.Width, 1)
	}
	return x, y, true
}

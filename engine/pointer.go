package engine

import (
	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/input"
	"github.com/iw2rmb/vimkit/vim"
)

// HandlePointer applies a pointer event. Press places the cursor and drops
// any selection; drag starts or extends a character selection from the
// cursor. It reports whether the state changed.
func (e *Editor) HandlePointer(p input.Pointer) bool {
	if e.mode == vim.Search || p.Kind == input.PointerRelease {
		return false
	}
	pos := e.PosAt(p.X, p.Y)
	e.interp.Reset(e.mode)

	switch p.Kind {
	case input.PointerPress:
		if e.mode.IsVisual() {
			e.mode = vim.Normal
		}
		e.cursor = pos
	case input.PointerDrag:
		if !e.mode.IsVisual() {
			anchor := e.cursor
			if e.mode == vim.Insert {
				e.hist.EndGroup(e.cursor)
			}
			e.mode = vim.Visual
			e.anchor = anchor
		}
		e.cursor = pos
	default:
		return false
	}
	e.sticky = -1
	e.normalize()
	e.ensureVisible()
	return true
}

// PosAt maps a cell of the text area (x columns from the left, y rows from
// the top of the visible window) to a document position.
func (e *Editor) PosAt(x, y int) buffer.Pos {
	row := min(max(e.scroll+y, 0), e.buf.RowCount()-1)
	if x <= 0 {
		return buffer.Pos{Row: row}
	}
	cells := e.buf.Row(row)
	acc := 0
	for i, c := range cells {
		w := max(c.Width, 1)
		if x < acc+w {
			return buffer.Pos{Row: row, Col: i}
		}
		acc += w
	}
	return buffer.Pos{Row: row, Col: len(cells)}
}

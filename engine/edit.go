package engine

import (
	"strings"

	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/internal/grapheme"
	"github.com/iw2rmb/vimkit/motion"
	"github.com/iw2rmb/vimkit/register"
	"github.com/iw2rmb/vimkit/vim"
)

// paste inserts the register count times. Linewise content always becomes
// new rows above (before) or below the cursor row; it is never spliced into
// an existing row.
func (e *Editor) paste(count int, before bool) {
	c, ok := e.reg.Read()
	if !ok {
		e.logger.Debug("paste with empty register")
		return
	}

	if c.Kind == register.Linewise {
		lines := repeatLines(c.Lines(), count)
		row := e.cursor.Row
		if !before {
			row++
		}
		e.change(row, row, func() {
			e.buf.InsertRows(row, lines)
			e.cursor = buffer.Pos{Row: row, Col: motion.FirstNonBlankCol(e.buf, row)}
		})
		return
	}

	text := strings.Repeat(c.Text, count)
	at := e.cursor
	if !before && e.buf.RowLen(at.Row) > 0 {
		at.Col++
	}
	e.change(at.Row, at.Row+1, func() {
		end := e.buf.InsertText(at, text)
		if strings.Contains(text, "\n") {
			e.cursor = at
			return
		}
		e.cursor = buffer.Pos{Row: end.Row, Col: end.Col - 1}
	})
}

func repeatLines(lines []string, n int) []string {
	out := make([]string, 0, len(lines)*n)
	for i := 0; i < n; i++ {
		out = append(out, lines...)
	}
	return out
}

// join merges count rows (at least two) starting at the cursor row.
func (e *Editor) join(count int) {
	row := e.cursor.Row
	if row >= e.buf.RowCount()-1 {
		e.logger.Debug("join without next row", "row", row)
		return
	}
	joins := max(count-1, 1)
	e.change(row, row+joins+1, func() {
		for i := 0; i < joins; i++ {
			at, ok := e.buf.JoinRow(row)
			if !ok {
				break
			}
			e.cursor = at
		}
	})
}

func (e *Editor) undo(count int) {
	for i := 0; i < count; i++ {
		p, ok := e.hist.Undo(e.buf)
		if !ok {
			e.logger.Debug("nothing to undo")
			return
		}
		e.cursor = p
	}
}

func (e *Editor) redo(count int) {
	for i := 0; i < count; i++ {
		p, ok := e.hist.Redo(e.buf)
		if !ok {
			e.logger.Debug("nothing to redo")
			return
		}
		e.cursor = p
	}
}

// enterInsert starts an insert session. Everything typed until the session
// ends undoes as one step, including the row opened by o/O.
func (e *Editor) enterInsert(where vim.InsertAt) {
	e.hist.BeginGroup(e.cursor)
	row := e.cursor.Row
	switch where {
	case vim.InsertAfter:
		e.cursor.Col = min(e.cursor.Col+1, e.buf.RowLen(row))
	case vim.InsertLineEnd:
		e.cursor.Col = e.buf.RowLen(row)
	case vim.InsertLineStart:
		e.cursor.Col = firstNonBlankOrEnd(e.buf, row)
	case vim.OpenBelow, vim.OpenAbove:
		if where == vim.OpenBelow {
			row++
		}
		e.change(row, row, func() {
			e.buf.InsertRow(row, "")
			e.cursor = buffer.Pos{Row: row}
		})
	}
	e.mode = vim.Insert
}

func firstNonBlankOrEnd(b *buffer.Buffer, row int) int {
	n := b.RowLen(row)
	for c := 0; c < n; c++ {
		cell, _ := b.CellAt(buffer.Pos{Row: row, Col: c})
		if !grapheme.IsSpace(cell.Text) {
			return c
		}
	}
	return n
}

// setMode handles the explicit mode switches: leaving Insert mode, and
// entering, switching or leaving the visual modes.
func (e *Editor) setMode(m vim.Mode) {
	switch {
	case e.mode == vim.Insert:
		e.endInsert()
	case m.IsVisual() && !e.mode.IsVisual():
		e.anchor = e.cursor
	}
	e.interp.Reset(e.mode)
	e.mode = m
}

// endInsert closes the insert session and steps back onto the last typed
// cell.
func (e *Editor) endInsert() {
	if e.cursor.Col > 0 {
		e.cursor.Col--
	}
	e.hist.EndGroup(e.cursor)
}

func (e *Editor) insertText(text string) {
	if e.mode != vim.Insert || text == "" {
		return
	}
	e.change(e.cursor.Row, e.cursor.Row+1, func() {
		e.cursor = e.buf.InsertText(e.cursor, text)
	})
}

// backspace deletes the cell before the cursor; at column 0 it joins the row
// with the previous one without touching whitespace.
func (e *Editor) backspace() {
	if e.mode != vim.Insert {
		return
	}
	p := e.cursor
	switch {
	case p.Col > 0:
		e.change(p.Row, p.Row+1, func() {
			e.buf.DeleteRange(buffer.Range{Start: buffer.Pos{Row: p.Row, Col: p.Col - 1}, End: p})
			e.cursor.Col--
		})
	case p.Row > 0:
		prev := buffer.Pos{Row: p.Row - 1, Col: e.buf.RowLen(p.Row - 1)}
		e.change(p.Row-1, p.Row+1, func() {
			e.buf.DeleteRange(buffer.Range{Start: prev, End: p})
			e.cursor = prev
		})
	}
}

// deleteForward deletes the cell under the cursor; at the row end it pulls
// the next row up.
func (e *Editor) deleteForward() {
	if e.mode != vim.Insert {
		return
	}
	p := e.cursor
	n := e.buf.RowLen(p.Row)
	switch {
	case p.Col < n:
		e.change(p.Row, p.Row+1, func() {
			e.buf.DeleteRange(buffer.Range{Start: p, End: buffer.Pos{Row: p.Row, Col: p.Col + 1}})
		})
	case p.Row < e.buf.RowCount()-1:
		e.change(p.Row, p.Row+2, func() {
			e.buf.DeleteRange(buffer.Range{Start: p, End: buffer.Pos{Row: p.Row + 1}})
		})
	}
}

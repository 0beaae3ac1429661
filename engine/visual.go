package engine

import (
	"strings"

	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/motion"
	"github.com/iw2rmb/vimkit/register"
	"github.com/iw2rmb/vimkit/vim"
)

// selectionSpan is the operator target of the active selection. Character
// selections include the cell under the cursor.
func (e *Editor) selectionSpan() motion.Span {
	if e.mode == vim.VisualLine {
		first, last := min(e.anchor.Row, e.cursor.Row), max(e.anchor.Row, e.cursor.Row)
		return motion.LineSpan(e.buf, first, last-first+1)
	}
	r := buffer.NormalizeRange(buffer.Range{Start: e.anchor, End: e.cursor})
	r.End.Col = min(r.End.Col+1, e.buf.RowLen(r.End.Row))
	return motion.Span{Range: r}
}

func (e *Editor) visualOperate(op vim.Operator) {
	if !e.mode.IsVisual() {
		return
	}
	span := e.selectionSpan()
	e.interp.Reset(e.mode)
	e.mode = vim.Normal
	switch op {
	case vim.OpYank:
		e.yank(span)
		if span.Linewise {
			first, _ := span.Rows()
			e.cursor = buffer.Pos{Row: first, Col: min(e.anchor.Col, e.cursor.Col)}
		}
	case vim.OpDelete:
		e.deleteSpan(span, true)
	case vim.OpChange:
		e.changeSpan(span)
	}
}

// visualPaste replaces the selection with the register content. The replaced
// text is not written to the register, and linewise content replacing a
// character selection goes below the cursor row as new rows.
func (e *Editor) visualPaste() {
	if !e.mode.IsVisual() {
		return
	}
	c, ok := e.reg.Read()
	span := e.selectionSpan()
	e.interp.Reset(e.mode)
	e.mode = vim.Normal
	if !ok {
		e.logger.Debug("paste with empty register")
		return
	}

	e.hist.BeginGroup(e.cursor)
	defer func() { e.hist.EndGroup(e.cursor) }()

	if span.Linewise {
		first, last := span.Rows()
		lines := c.Lines()
		if c.Kind == register.Charwise {
			lines = strings.Split(c.Text, "\n")
		}
		rows := make([]buffer.Row, 0, len(lines))
		for _, l := range lines {
			rows = append(rows, e.buf.NewRow(l))
		}
		e.change(first, last+1, func() {
			e.buf.ReplaceRows(first, last+1, rows)
			e.cursor = buffer.Pos{Row: first, Col: motion.FirstNonBlankCol(e.buf, first)}
		})
		return
	}

	e.deleteSpan(span, false)
	start := span.Range.Start
	if c.Kind == register.Linewise {
		row := start.Row + 1
		e.change(row, row, func() {
			e.buf.InsertRows(row, c.Lines())
			e.cursor = buffer.Pos{Row: row, Col: motion.FirstNonBlankCol(e.buf, row)}
		})
		return
	}
	e.change(start.Row, start.Row+1, func() {
		end := e.buf.InsertText(start, c.Text)
		e.cursor = buffer.Pos{Row: end.Row, Col: max(end.Col-1, 0)}
	})
}

// visualObject selects a text object, switching line selection to character
// selection.
func (e *Editor) visualObject(obj motion.Object) {
	if !e.mode.IsVisual() {
		return
	}
	r, ok := motion.ResolveObject(e.buf, e.cursor, obj)
	if !ok {
		e.logger.Debug("text object not found", "object", obj.Delim)
		return
	}
	e.mode = vim.Visual
	e.anchor = r.Start
	end := r.End
	switch {
	case r.IsEmpty():
		end = r.Start
	case end.Col == 0:
		end = buffer.Pos{Row: end.Row - 1, Col: e.buf.RowLen(end.Row - 1)}
	default:
		end.Col--
	}
	e.cursor = end
}

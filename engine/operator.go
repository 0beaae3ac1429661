package engine

import (
	"strings"

	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/motion"
	"github.com/iw2rmb/vimkit/register"
	"github.com/iw2rmb/vimkit/vim"
)

// operate resolves the target of an operator command and applies it.
func (e *Editor) operate(a vim.Action) {
	span, ok := e.resolveSpan(a)
	if !ok {
		e.logger.Debug("operator target not found",
			"operator", a.Operator.String(),
			"motion", a.Motion.Kind.String(),
			"object", a.Object.Delim)
		return
	}
	e.applyOperator(a.Operator, span)
}

func (e *Editor) resolveSpan(a vim.Action) (motion.Span, bool) {
	switch {
	case a.Linewise:
		return motion.LineSpan(e.buf, e.cursor.Row, a.Count), true
	case a.Object.Delim != "":
		r, ok := motion.ResolveObject(e.buf, e.cursor, a.Object)
		return motion.Span{Range: r}, ok
	case a.Operator == vim.OpChange && a.Motion.Kind == motion.WordForward:
		return motion.ChangeWordSpan(e.buf, e.cursor, a.Motion.Count), true
	}
	ctx := motion.Context{Sticky: e.sticky, PageHeight: e.height}
	return motion.OperatorSpan(e.buf, e.cursor, a.Motion, ctx)
}

func (e *Editor) applyOperator(op vim.Operator, span motion.Span) {
	switch op {
	case vim.OpYank:
		e.yank(span)
	case vim.OpDelete:
		e.deleteSpan(span, true)
	case vim.OpChange:
		e.changeSpan(span)
	}
}

// spanContent returns the register payload for span.
func (e *Editor) spanContent(span motion.Span) register.Content {
	if span.Linewise {
		first, last := span.Rows()
		lines := make([]string, 0, last-first+1)
		for r := first; r <= last; r++ {
			lines = append(lines, e.buf.RowText(r))
		}
		return register.Content{Text: strings.Join(lines, "\n"), Kind: register.Linewise}
	}
	return register.Content{Text: e.buf.Slice(span.Range), Kind: register.Charwise}
}

func (e *Editor) yank(span motion.Span) {
	if !span.Linewise && span.Range.IsEmpty() {
		return
	}
	e.reg.Write(e.spanContent(span))
	if span.Linewise {
		if first, _ := span.Rows(); first < e.cursor.Row {
			e.cursor.Row = first
		}
		return
	}
	e.cursor = span.Range.Start
}

// deleteSpan removes span. Linewise deletes land on the first non-blank of
// the row that followed the block, or of the new last row.
func (e *Editor) deleteSpan(span motion.Span, toRegister bool) bool {
	if span.Linewise {
		first, last := span.Rows()
		if e.emptyDocument() {
			e.logger.Debug("line delete on empty buffer")
			return false
		}
		if toRegister {
			e.reg.Write(e.spanContent(span))
		}
		return e.change(first, last+1, func() {
			e.buf.DeleteRows(first, last+1)
			row := min(first, e.buf.RowCount()-1)
			e.cursor = buffer.Pos{Row: row, Col: motion.FirstNonBlankCol(e.buf, row)}
		})
	}

	r := e.buf.ClampRange(span.Range)
	if r.IsEmpty() {
		return false
	}
	if toRegister {
		e.reg.Write(e.spanContent(motion.Span{Range: r}))
	}
	return e.change(r.Start.Row, r.End.Row+1, func() {
		e.buf.DeleteRange(r)
		e.cursor = r.Start
	})
}

// emptyDocument reports whether the buffer is a single empty row.
func (e *Editor) emptyDocument() bool {
	return e.buf.RowCount() == 1 && e.buf.RowLen(0) == 0
}

// changeSpan deletes span and starts an insert session at its start. The
// delete and the typed text undo together.
func (e *Editor) changeSpan(span motion.Span) {
	e.hist.BeginGroup(e.cursor)
	if span.Linewise {
		first, last := span.Rows()
		if first == last && e.buf.RowLen(first) == 0 {
			e.cursor = buffer.Pos{Row: first}
			e.mode = vim.Insert
			return
		}
		e.reg.Write(e.spanContent(span))
		e.change(first, last+1, func() {
			e.buf.ReplaceRows(first, last+1, []buffer.Row{{}})
			e.cursor = buffer.Pos{Row: first}
		})
	} else {
		r := e.buf.ClampRange(span.Range)
		e.deleteSpan(motion.Span{Range: r}, true)
		e.cursor = r.Start
	}
	e.mode = vim.Insert
}

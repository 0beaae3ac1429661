// Package engine holds the editor state and executes interpreted commands.
//
// Editor is the only component that mutates the buffer. It is single-threaded:
// the host delivers one event at a time and each call runs to completion.
package engine

import (
	"log/slog"

	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/history"
	"github.com/iw2rmb/vimkit/input"
	"github.com/iw2rmb/vimkit/motion"
	"github.com/iw2rmb/vimkit/register"
	"github.com/iw2rmb/vimkit/search"
	"github.com/iw2rmb/vimkit/vim"
)

// Editor is one editing session: buffer, cursor, mode, selection, history,
// register and search state, all owned exclusively.
type Editor struct {
	buf    *buffer.Buffer
	cursor buffer.Pos
	// sticky is the column kept across vertical motion; -1 when unset.
	sticky int
	mode   vim.Mode
	anchor buffer.Pos

	interp *vim.Interpreter
	hist   *history.History
	reg    *register.Register

	search       search.State
	searchInput  string
	searchOrigin buffer.Pos

	height int
	scroll int

	logger *slog.Logger
}

func New(cfg Config) *Editor {
	cfg = cfg.withDefaults()
	return &Editor{
		buf:    buffer.New(cfg.Text, buffer.Options{TabWidth: cfg.TabWidth}),
		sticky: -1,
		mode:   vim.Normal,
		interp: vim.NewInterpreter(),
		hist:   history.New(cfg.HistoryLimit),
		reg:    register.New(cfg.Clipboard, cfg.Logger),
		height: cfg.ViewportHeight,
		logger: cfg.Logger,
	}
}

func (e *Editor) Text() string { return e.buf.Text() }

func (e *Editor) Revision() uint64 { return e.buf.Revision() }

func (e *Editor) Cursor() buffer.Pos { return e.cursor }

func (e *Editor) Mode() vim.Mode { return e.mode }

func (e *Editor) CanUndo() bool { return e.hist.CanUndo() }

func (e *Editor) CanRedo() bool { return e.hist.CanRedo() }

// ScrollOffset is the first row the host should show.
func (e *Editor) ScrollOffset() int { return e.scroll }

// Buffer exposes the document for reading. Callers must not mutate it.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

// SetViewportHeight updates the number of visible rows.
func (e *Editor) SetViewportHeight(h int) {
	if h <= 0 {
		h = 1
	}
	e.height = h
	e.ensureVisible()
}

// SetText replaces the document and resets cursor, mode, selection, search
// and history.
func (e *Editor) SetText(text string) {
	e.buf = buffer.New(text, buffer.Options{TabWidth: e.buf.TabWidth()})
	e.cursor = buffer.Pos{}
	e.sticky = -1
	e.mode = vim.Normal
	e.interp = vim.NewInterpreter()
	e.hist.Clear()
	e.search.Clear()
	e.searchInput = ""
	e.scroll = 0
}

// SetCursor moves the cursor, clamped for the current mode.
func (e *Editor) SetCursor(p buffer.Pos) {
	e.cursor = p
	e.sticky = -1
	e.normalize()
}

// HandleKey interprets k and executes the resulting command, if any. It
// reports whether a command ran.
func (e *Editor) HandleKey(k input.Key) bool {
	res := e.interp.Feed(e.mode, k)
	if res.Cancelled {
		e.logger.Debug("pending command cancelled", "mode", e.mode.String(), "key", k.String())
	}
	if !res.Emitted {
		return false
	}
	e.Execute(res.Action)
	return true
}

// Execute applies a to the editor state. Commands that cannot apply leave
// the state unchanged.
func (e *Editor) Execute(a vim.Action) {
	if a.Count <= 0 {
		a.Count = 1
	}
	switch a.Kind {
	case vim.ActMove:
		e.move(a.Motion)
	case vim.ActOperate:
		e.operate(a)
	case vim.ActPaste:
		e.paste(a.Count, a.Before)
	case vim.ActJoin:
		e.join(a.Count)
	case vim.ActUndo:
		e.undo(a.Count)
	case vim.ActRedo:
		e.redo(a.Count)
	case vim.ActInsert:
		e.enterInsert(a.Where)
	case vim.ActSetMode:
		e.setMode(a.Mode)
	case vim.ActVisualOperate:
		e.visualOperate(a.Operator)
	case vim.ActVisualPaste:
		e.visualPaste()
	case vim.ActVisualObject:
		e.visualObject(a.Object)
	case vim.ActInsertText:
		e.insertText(a.Text)
	case vim.ActBackspace:
		e.backspace()
	case vim.ActDeleteForward:
		e.deleteForward()
	case vim.ActSearchStart:
		e.searchStart()
	case vim.ActSearchInput:
		e.searchType(a.Text)
	case vim.ActSearchBackspace:
		e.searchBackspace()
	case vim.ActSearchCommit:
		e.searchCommit()
	case vim.ActSearchCancel:
		e.searchCancel()
	case vim.ActSearchNext:
		e.searchJump(a.Count, true)
	case vim.ActSearchPrev:
		e.searchJump(a.Count, false)
	}
	if a.Kind != vim.ActMove {
		e.sticky = -1
	}
	e.normalize()
	e.search.Refresh(e.buf)
	e.ensureVisible()
}

func (e *Editor) move(m motion.Motion) {
	ctx := motion.Context{
		Sticky:     e.sticky,
		PageHeight: e.height,
		PastEnd:    e.mode == vim.Insert,
	}
	res, ok := motion.Apply(e.buf, e.cursor, m, ctx)
	if !ok {
		e.logger.Debug("motion has no target", "motion", m.Kind.String())
		return
	}
	if m.Kind == motion.HalfPageDown || m.Kind == motion.HalfPageUp {
		e.scroll += res.Pos.Row - e.cursor.Row
	}
	e.cursor = res.Pos
	e.sticky = res.Sticky
}

// change records fn as one undoable edit confined to rows [start, end) at
// the time of the call. fn updates e.cursor.
func (e *Editor) change(start, end int, fn func()) bool {
	e.hist.Begin(e.buf, start, end, e.cursor)
	fn()
	return e.hist.Commit(e.buf, e.cursor)
}

// normalize enforces the cursor invariants of the current mode: Insert mode
// may rest after the last cell, other modes stay on a cell.
func (e *Editor) normalize() {
	e.cursor = e.buf.ClampPos(e.cursor)
	if e.mode != vim.Insert {
		if n := e.buf.RowLen(e.cursor.Row); e.cursor.Col >= n {
			e.cursor.Col = max(n-1, 0)
		}
	}
	if e.mode.IsVisual() {
		e.anchor = e.buf.ClampPos(e.anchor)
	}
}

func (e *Editor) ensureVisible() {
	h := max(e.height, 1)
	if e.cursor.Row < e.scroll {
		e.scroll = e.cursor.Row
	}
	if e.cursor.Row >= e.scroll+h {
		e.scroll = e.cursor.Row - h + 1
	}
	e.scroll = min(max(e.scroll, 0), max(e.buf.RowCount()-1, 0))
}

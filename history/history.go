// Package history keeps undo/redo stacks of row-range deltas.
//
// A delta stores only the rows an edit touched, before and after, so memory
// scales with edit size rather than document size. Row slices are shared with
// the buffer, which never edits a row in place.
package history

import "github.com/iw2rmb/vimkit/buffer"

// DefaultLimit is the undo depth used when a caller passes 0.
const DefaultLimit = 1000

// Rows is the part of the buffer history reads and restores.
type Rows interface {
	Revision() uint64
	RowCount() int
	Rows(start, end int) []buffer.Row
	ReplaceRows(start, end int, rows []buffer.Row)
}

// Delta replaces Before with After starting at Row.
type Delta struct {
	Row    int
	Before []buffer.Row
	After  []buffer.Row
}

// Entry is one undo step. Group entries hold several deltas in the order they
// were applied.
type Entry struct {
	Deltas       []Delta
	CursorBefore buffer.Pos
	CursorAfter  buffer.Pos
}

type pendingChange struct {
	row       int
	end       int
	before    []buffer.Row
	rowCount  int
	revision  uint64
	cursor    buffer.Pos
	recording bool
}

type History struct {
	undo  []Entry
	redo  []Entry
	limit int

	pending pendingChange
	group   *Entry
}

// New returns a history keeping at most limit undo steps. limit 0 selects
// DefaultLimit; a negative limit disables recording.
func New(limit int) *History {
	if limit == 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }

func (h *History) CanRedo() bool { return len(h.redo) > 0 }

func (h *History) UndoLen() int { return len(h.undo) }

func (h *History) RedoLen() int { return len(h.redo) }

// Grouping reports whether a group is open.
func (h *History) Grouping() bool { return h.group != nil }

// Begin snapshots rows [start, end) before a mutation confined to them. The
// mutation may grow or shrink the range; Commit measures the change through
// the row count.
func (h *History) Begin(b Rows, start, end int, cursor buffer.Pos) {
	n := b.RowCount()
	start = min(max(start, 0), n)
	end = min(max(end, start), n)
	h.pending = pendingChange{
		row:       start,
		end:       end,
		before:    b.Rows(start, end),
		rowCount:  n,
		revision:  b.Revision(),
		cursor:    cursor,
		recording: true,
	}
}

// Commit records the change started by Begin. It returns false when the
// buffer revision did not move, in which case nothing is recorded.
func (h *History) Commit(b Rows, cursor buffer.Pos) bool {
	p := h.pending
	h.pending = pendingChange{}
	if !p.recording || b.Revision() == p.revision || h.limit < 0 {
		return false
	}

	afterEnd := p.end + (b.RowCount() - p.rowCount)
	d := Delta{Row: p.row, Before: p.before, After: b.Rows(p.row, afterEnd)}

	if h.group != nil {
		h.group.Deltas = append(h.group.Deltas, d)
		h.group.CursorAfter = cursor
		h.redo = nil
		return true
	}

	h.push(Entry{Deltas: []Delta{d}, CursorBefore: p.cursor, CursorAfter: cursor})
	return true
}

// Cancel drops a change started by Begin without recording it.
func (h *History) Cancel() {
	h.pending = pendingChange{}
}

// BeginGroup opens a group: every Commit until EndGroup joins one entry.
// An already open group stays open.
func (h *History) BeginGroup(cursor buffer.Pos) {
	if h.group != nil {
		return
	}
	h.group = &Entry{CursorBefore: cursor, CursorAfter: cursor}
}

// EndGroup closes the open group and pushes it when it recorded anything.
func (h *History) EndGroup(cursor buffer.Pos) bool {
	g := h.group
	h.group = nil
	if g == nil || len(g.Deltas) == 0 {
		return false
	}
	g.CursorAfter = cursor
	h.push(*g)
	return true
}

// Undo reverts the latest entry and returns the cursor to restore.
func (h *History) Undo(b Rows) (buffer.Pos, bool) {
	if h.group != nil {
		h.EndGroup(h.group.CursorAfter)
	}
	if len(h.undo) == 0 {
		return buffer.Pos{}, false
	}

	i := len(h.undo) - 1
	e := h.undo[i]
	h.undo = h.undo[:i]

	for j := len(e.Deltas) - 1; j >= 0; j-- {
		d := e.Deltas[j]
		b.ReplaceRows(d.Row, d.Row+len(d.After), d.Before)
	}
	h.redo = append(h.redo, e)
	return e.CursorBefore, true
}

// Redo re-applies the latest undone entry and returns the cursor to restore.
func (h *History) Redo(b Rows) (buffer.Pos, bool) {
	if len(h.redo) == 0 {
		return buffer.Pos{}, false
	}

	i := len(h.redo) - 1
	e := h.redo[i]
	h.redo = h.redo[:i]

	for _, d := range e.Deltas {
		b.ReplaceRows(d.Row, d.Row+len(d.Before), d.After)
	}
	h.undo = append(h.undo, e)
	return e.CursorAfter, true
}

// Clear drops both stacks and any open group.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
	h.group = nil
	h.pending = pendingChange{}
}

func (h *History) push(e Entry) {
	h.undo = append(h.undo, e)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = nil
}

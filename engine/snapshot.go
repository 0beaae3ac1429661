package engine

import (
	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/vim"
)

type SelectionKind int

const (
	SelectNone SelectionKind = iota
	SelectChar
	SelectLine
)

// Selection is the active visual selection. For SelectChar, Range is the
// half-open character span. For SelectLine, Range covers rows Start.Row
// through End.Row inclusive.
type Selection struct {
	Kind  SelectionKind
	Range buffer.Range
}

// Snapshot is the read-only state a renderer draws from.
type Snapshot struct {
	// Rows share storage with the buffer and must not be modified.
	Rows      []buffer.Row
	Cursor    buffer.Pos
	Mode      vim.Mode
	Selection Selection
	// Highlights are the search matches, separate from the selection.
	Highlights   []buffer.Range
	CurrentMatch buffer.Range
	HasMatch     bool
	Revision     uint64
	// ScrollOffset is the first row the host should show.
	ScrollOffset int
	// PendingKeys is the partially typed command, e.g. "2d".
	PendingKeys string
	// SearchPattern is the pattern being typed in Search mode, or the active
	// pattern otherwise.
	SearchPattern string
}

func (e *Editor) Selection() Selection {
	if !e.mode.IsVisual() {
		return Selection{}
	}
	span := e.selectionSpan()
	if span.Linewise {
		return Selection{Kind: SelectLine, Range: span.Range}
	}
	return Selection{Kind: SelectChar, Range: span.Range}
}

func (e *Editor) Snapshot() Snapshot {
	s := Snapshot{
		Rows:          e.buf.Rows(0, e.buf.RowCount()),
		Cursor:        e.cursor,
		Mode:          e.mode,
		Selection:     e.Selection(),
		Highlights:    e.search.Matches(),
		Revision:      e.buf.Revision(),
		ScrollOffset:  e.scroll,
		PendingKeys:   e.interp.Pending(e.mode).Keys,
		SearchPattern: e.search.Pattern(),
	}
	if e.mode == vim.Search {
		s.SearchPattern = e.searchInput
	}
	s.CurrentMatch, s.HasMatch = e.search.Current()
	return s
}

// Package motion computes cursor targets and operator ranges over a read-only
// view of a buffer. Nothing here mutates state.
package motion

import (
	"math"

	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/internal/grapheme"
)

// Text is the read-only document view motions operate on. *buffer.Buffer
// satisfies it.
type Text interface {
	RowCount() int
	RowLen(r int) int
	CellAt(p buffer.Pos) (buffer.Cell, bool)
}

type Kind int

const (
	None Kind = iota
	Left
	Right
	Up
	Down
	WordForward
	WordEnd
	WordBackward
	LineStart
	FirstNonBlank
	LineEnd
	DocStart // gg, or row Count when a count was typed
	DocEnd   // G, or row Count when a count was typed
	MatchBracket
	HalfPageDown
	HalfPageUp
)

var kindNames = map[Kind]string{
	None:          "none",
	Left:          "left",
	Right:         "right",
	Up:            "up",
	Down:          "down",
	WordForward:   "word-forward",
	WordEnd:       "word-end",
	WordBackward:  "word-backward",
	LineStart:     "line-start",
	FirstNonBlank: "first-non-blank",
	LineEnd:       "line-end",
	DocStart:      "doc-start",
	DocEnd:        "doc-end",
	MatchBracket:  "match-bracket",
	HalfPageDown:  "half-page-down",
	HalfPageUp:    "half-page-up",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Linewise reports whether an operator applied with this motion acts on
// whole rows.
func (k Kind) Linewise() bool {
	switch k {
	case Up, Down, DocStart, DocEnd, HalfPageDown, HalfPageUp:
		return true
	default:
		return false
	}
}

// Inclusive reports whether the target cell belongs to an operator range.
func (k Kind) Inclusive() bool {
	switch k {
	case WordEnd, LineEnd, MatchBracket:
		return true
	default:
		return false
	}
}

// Vertical motions keep the remembered column instead of resetting it.
func (k Kind) Vertical() bool {
	switch k {
	case Up, Down, HalfPageDown, HalfPageUp:
		return true
	default:
		return false
	}
}

// Motion is one motion key with its count. Count <= 0 means no count was
// typed; repeatable motions then run once and DocStart/DocEnd use their
// default row.
type Motion struct {
	Kind  Kind
	Count int
}

func (m Motion) times() int {
	if m.Count <= 0 {
		return 1
	}
	return m.Count
}

// StickyEnd is the remembered column after `$`: vertical motion then sticks
// to the end of every row.
const StickyEnd = math.MaxInt

type Context struct {
	// Sticky is the remembered column for vertical motion. Negative means
	// "use the current column".
	Sticky int
	// PageHeight is the viewport height used by half-page motions.
	PageHeight int
	// PastEnd allows the cursor to rest at row_length (Insert mode).
	PastEnd bool
}

type Result struct {
	Pos    buffer.Pos
	Sticky int
}

// Apply computes the target of m from p. ok is false when the motion has no
// target (an unmatched bracket); the caller must then leave the cursor alone.
func Apply(t Text, p buffer.Pos, m Motion, ctx Context) (Result, bool) {
	p = clampPos(t, p, true)
	sticky := ctx.Sticky
	if sticky < 0 {
		sticky = p.Col
	}
	n := m.times()

	var q buffer.Pos
	switch m.Kind {
	case Left:
		q = buffer.Pos{Row: p.Row, Col: max(p.Col-n, 0)}
	case Right:
		q = buffer.Pos{Row: p.Row, Col: min(p.Col+n, maxCol(t, p.Row, ctx.PastEnd))}
	case Up:
		return vertical(t, p.Row-n, sticky, ctx), true
	case Down:
		return vertical(t, p.Row+n, sticky, ctx), true
	case HalfPageDown:
		return vertical(t, p.Row+n*halfPage(ctx), sticky, ctx), true
	case HalfPageUp:
		return vertical(t, p.Row-n*halfPage(ctx), sticky, ctx), true
	case WordForward:
		q = p
		for i := 0; i < n; i++ {
			q, _ = wordForward(t, q)
		}
	case WordEnd:
		q = p
		for i := 0; i < n; i++ {
			q = wordEnd(t, q)
		}
	case WordBackward:
		q = p
		for i := 0; i < n; i++ {
			q = wordBackward(t, q)
		}
	case LineStart:
		q = buffer.Pos{Row: p.Row}
	case FirstNonBlank:
		q = buffer.Pos{Row: p.Row, Col: FirstNonBlankCol(t, p.Row)}
	case LineEnd:
		row := min(p.Row+n-1, t.RowCount()-1)
		q = buffer.Pos{Row: row, Col: maxCol(t, row, ctx.PastEnd)}
		return Result{Pos: q, Sticky: StickyEnd}, true
	case DocStart:
		row := 0
		if m.Count > 0 {
			row = m.Count - 1
		}
		row = clampRow(t, row)
		q = buffer.Pos{Row: row, Col: FirstNonBlankCol(t, row)}
	case DocEnd:
		row := t.RowCount() - 1
		if m.Count > 0 {
			row = m.Count - 1
		}
		row = clampRow(t, row)
		q = buffer.Pos{Row: row, Col: FirstNonBlankCol(t, row)}
	case MatchBracket:
		var ok bool
		q, ok = matchBracket(t, p)
		if !ok {
			return Result{Pos: p, Sticky: sticky}, false
		}
	default:
		return Result{Pos: p, Sticky: sticky}, true
	}

	q = clampPos(t, q, ctx.PastEnd)
	return Result{Pos: q, Sticky: q.Col}, true
}

// FirstNonBlankCol returns the column of the first non-blank cell of row.
// Blank rows yield their last column.
func FirstNonBlankCol(t Text, row int) int {
	n := t.RowLen(row)
	for c := 0; c < n; c++ {
		cell, _ := t.CellAt(buffer.Pos{Row: row, Col: c})
		if !grapheme.IsSpace(cell.Text) {
			return c
		}
	}
	return max(n-1, 0)
}

func vertical(t Text, row, sticky int, ctx Context) Result {
	row = clampRow(t, row)
	col := min(sticky, maxCol(t, row, ctx.PastEnd))
	return Result{Pos: buffer.Pos{Row: row, Col: col}, Sticky: sticky}
}

func halfPage(ctx Context) int {
	return max(ctx.PageHeight/2, 1)
}

func clampRow(t Text, row int) int {
	return min(max(row, 0), max(t.RowCount()-1, 0))
}

// maxCol is the last column the cursor may rest on: row_length when pastEnd,
// otherwise the last cell.
func maxCol(t Text, row int, pastEnd bool) int {
	n := t.RowLen(row)
	if pastEnd {
		return n
	}
	return max(n-1, 0)
}

func clampPos(t Text, p buffer.Pos, pastEnd bool) buffer.Pos {
	row := clampRow(t, p.Row)
	return buffer.Pos{Row: row, Col: min(max(p.Col, 0), maxCol(t, row, pastEnd))}
}

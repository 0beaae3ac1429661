package motion

import (
	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/internal/grapheme"
)

// Word motions walk the document as one stream of cells in which the end of
// every row except the last contributes a virtual line break (column
// row_length) that classifies as whitespace. Empty rows are word stops.

func next(t Text, p buffer.Pos) (buffer.Pos, bool) {
	n := t.RowLen(p.Row)
	last := p.Row >= t.RowCount()-1
	if p.Col < n {
		if last && p.Col+1 >= n {
			return p, false
		}
		return buffer.Pos{Row: p.Row, Col: p.Col + 1}, true
	}
	if last {
		return p, false
	}
	return buffer.Pos{Row: p.Row + 1}, true
}

func prev(t Text, p buffer.Pos) (buffer.Pos, bool) {
	if p.Col > 0 {
		return buffer.Pos{Row: p.Row, Col: p.Col - 1}, true
	}
	if p.Row == 0 {
		return p, false
	}
	return buffer.Pos{Row: p.Row - 1, Col: t.RowLen(p.Row - 1)}, true
}

func classAt(t Text, p buffer.Pos) grapheme.Class {
	cell, ok := t.CellAt(p)
	if !ok {
		return grapheme.ClassSpace
	}
	return grapheme.ClassOf(cell.Text)
}

func emptyRow(t Text, p buffer.Pos) bool {
	return p.Col == 0 && t.RowLen(p.Row) == 0
}

// wordForward returns the start of the next word. found is false when the
// stream ended first; the result is then the last position of the document.
func wordForward(t Text, p buffer.Pos) (q buffer.Pos, found bool) {
	q = p
	if c := classAt(t, q); c != grapheme.ClassSpace {
		for classAt(t, q) == c {
			n, ok := next(t, q)
			if !ok {
				return q, false
			}
			q = n
		}
	}
	for classAt(t, q) == grapheme.ClassSpace {
		if q != p && emptyRow(t, q) {
			return q, true
		}
		n, ok := next(t, q)
		if !ok {
			return q, false
		}
		q = n
	}
	return q, true
}

// wordEnd returns the last cell of the current or next word, always moving
// at least one position when the stream allows.
func wordEnd(t Text, p buffer.Pos) buffer.Pos {
	q, ok := next(t, p)
	if !ok {
		return p
	}
	for classAt(t, q) == grapheme.ClassSpace {
		n, ok := next(t, q)
		if !ok {
			return q
		}
		q = n
	}
	return runEnd(t, q)
}

// runEnd returns the last position of the same-class run starting at p.
func runEnd(t Text, p buffer.Pos) buffer.Pos {
	c := classAt(t, p)
	for {
		n, ok := next(t, p)
		if !ok || classAt(t, n) != c {
			return p
		}
		p = n
	}
}

func wordBackward(t Text, p buffer.Pos) buffer.Pos {
	q, ok := prev(t, p)
	if !ok {
		return p
	}
	for classAt(t, q) == grapheme.ClassSpace {
		if emptyRow(t, q) {
			return q
		}
		n, ok := prev(t, q)
		if !ok {
			return q
		}
		q = n
	}
	c := classAt(t, q)
	for {
		n, ok := prev(t, q)
		if !ok || classAt(t, n) != c {
			return q
		}
		q = n
	}
}

package buffer

import (
	"strings"

	"github.com/iw2rmb/vimkit/internal/grapheme"
)

// InsertText inserts text at p (clamped) and returns the position right
// after the inserted text. Line breaks in text split the row.
func (b *Buffer) InsertText(p Pos, text string) Pos {
	p = b.ClampPos(p)
	if text == "" {
		return p
	}
	next, _ := b.replaceRange(Range{Start: p, End: p}, normalizeNewlines(text))
	return next
}

// InsertChar inserts a single character at p. A line break splits the row.
func (b *Buffer) InsertChar(p Pos, ch string) Pos {
	if ch == "\n" {
		return b.SplitRow(p)
	}
	return b.InsertText(p, ch)
}

// DeleteRange removes the text in r (clamped) and returns it.
func (b *Buffer) DeleteRange(r Range) string {
	r = b.ClampRange(r)
	if r.IsEmpty() {
		return ""
	}
	deleted := b.Slice(r)
	b.replaceRange(r, "")
	return deleted
}

// SplitRow breaks the row at p; the tail moves to a new row below.
// It returns the start of the new row.
func (b *Buffer) SplitRow(p Pos) Pos {
	p = b.ClampPos(p)
	next, _ := b.replaceRange(Range{Start: p, End: p}, "\n")
	return next
}

// JoinRow appends row r+1 to row r. The next row's leading whitespace is
// trimmed and a single space separates the two parts unless either side is
// empty. It returns the join point; ok is false when there is no next row.
func (b *Buffer) JoinRow(r int) (Pos, bool) {
	if r < 0 || r >= len(b.rows)-1 {
		return Pos{}, false
	}

	cur := b.rows[r]
	next := b.rows[r+1]
	lead := 0
	for lead < len(next) && grapheme.IsSpace(next[lead].Text) {
		lead++
	}
	tail := next[lead:]

	joined := make(Row, 0, len(cur)+1+len(tail))
	joined = append(joined, cur...)
	at := Pos{Row: r, Col: len(cur)}
	if len(cur) > 0 && len(tail) > 0 {
		joined = append(joined, Cell{Text: " ", Width: 1})
	} else if len(cur) > 0 {
		at.Col = len(cur) - 1
	}
	joined = append(joined, tail...)

	rows := make([]Row, 0, len(b.rows)-1)
	rows = append(rows, b.rows[:r]...)
	rows = append(rows, joined)
	rows = append(rows, b.rows[r+2:]...)
	b.rows = rows
	b.revision++
	return at, true
}

// InsertRow inserts a new row holding content before row r. r is clamped to
// [0, RowCount], so r == RowCount appends.
func (b *Buffer) InsertRow(r int, content string) {
	b.InsertRows(r, []string{content})
}

// InsertRows inserts whole rows before row r (clamped to [0, RowCount]).
func (b *Buffer) InsertRows(r int, lines []string) {
	if len(lines) == 0 {
		return
	}
	r = clampInt(r, 0, len(b.rows))
	ins := make([]Row, 0, len(lines))
	for _, l := range lines {
		ins = append(ins, b.NewRow(l))
	}
	b.ReplaceRows(r, r, ins)
}

// DeleteRows removes rows [start, end) and returns their text. When every
// row is removed a single empty row is left behind.
func (b *Buffer) DeleteRows(start, end int) []string {
	start = clampInt(start, 0, len(b.rows))
	end = clampInt(end, start, len(b.rows))
	if start == end {
		return nil
	}
	out := make([]string, 0, end-start)
	for _, row := range b.rows[start:end] {
		out = append(out, rowText(row))
	}
	b.ReplaceRows(start, end, nil)
	return out
}

// ReplaceRows swaps rows [start, end) for rows. The buffer keeps ownership of
// the given slices; callers must not modify them afterwards.
func (b *Buffer) ReplaceRows(start, end int, rows []Row) {
	start = clampInt(start, 0, len(b.rows))
	end = clampInt(end, start, len(b.rows))

	out := make([]Row, 0, len(b.rows)-(end-start)+len(rows))
	out = append(out, b.rows[:start]...)
	out = append(out, rows...)
	out = append(out, b.rows[end:]...)
	if len(out) == 0 {
		out = []Row{{}}
	}
	b.rows = out
	b.revision++
}

// Slice returns the text in r (clamped), with '\n' between rows.
func (b *Buffer) Slice(r Range) string {
	r = b.ClampRange(r)
	if r.IsEmpty() {
		return ""
	}

	if r.Start.Row == r.End.Row {
		return rowText(b.rows[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(b.rows[row])
		if row == r.Start.Row {
			partStart = r.Start.Col
		}
		if row == r.End.Row {
			partEnd = r.End.Col
		}
		writeRow(&sb, b.rows[row][partStart:partEnd])
	}
	return sb.String()
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, changed bool) {
	r = b.ClampRange(r)
	if r.IsEmpty() && text == "" {
		return r.Start, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := b.rows[startRow][:startCol]
	suffix := b.rows[endRow][endCol:]

	parts := strings.Split(text, "\n")
	ins := make([]Row, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, b.NewRow(p))
	}

	repl := make([]Row, 0, len(ins))
	if len(ins) == 1 {
		line := make(Row, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		nextCursor = Pos{Row: startRow, Col: len(prefix) + len(ins[0])}
	} else {
		first := make(Row, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		repl = append(repl, ins[1:len(ins)-1]...)

		lastPart := ins[len(ins)-1]
		last := make(Row, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		nextCursor = Pos{Row: startRow + len(ins) - 1, Col: len(lastPart)}
	}

	b.ReplaceRows(startRow, endRow+1, repl)
	return nextCursor, true
}

package buffer

import (
	"strings"

	"github.com/iw2rmb/vimkit/internal/grapheme"
)

type Options struct {
	TabWidth int // default: 4
}

// Buffer owns the document text as rows of cells. It always holds at least
// one row and rows never contain a line break. Every effective mutation
// increments the revision counter.
//
// Rows are replaced, never edited in place, so slices handed out by Rows may
// be retained by callers (the history keeps them as undo payloads).
type Buffer struct {
	rows     []Row
	revision uint64
	tabWidth int
}

func New(text string, opt Options) *Buffer {
	if opt.TabWidth <= 0 {
		opt.TabWidth = 4
	}
	b := &Buffer{tabWidth: opt.TabWidth}
	b.rows = b.splitRows(normalizeNewlines(text))
	return b
}

// Text returns the document with rows joined by '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeRow(&sb, row)
	}
	return sb.String()
}

// Lines returns the text of every row.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.rows))
	for i, row := range b.rows {
		out[i] = rowText(row)
	}
	return out
}

func (b *Buffer) Revision() uint64 { return b.revision }

func (b *Buffer) TabWidth() int { return b.tabWidth }

func (b *Buffer) RowCount() int { return len(b.rows) }

// RowLen returns the number of cells in row r, or 0 when r is out of range.
func (b *Buffer) RowLen(r int) int {
	if r < 0 || r >= len(b.rows) {
		return 0
	}
	return len(b.rows[r])
}

// RowText returns the text of row r after clamping r.
func (b *Buffer) RowText(r int) string {
	return rowText(b.rows[b.clampRow(r)])
}

// Row returns row r after clamping r. The result must not be modified.
func (b *Buffer) Row(r int) Row {
	return b.rows[b.clampRow(r)]
}

// CellAt returns the cell at p. ok is false when p is at or past the row end.
func (b *Buffer) CellAt(p Pos) (Cell, bool) {
	if p.Row < 0 || p.Row >= len(b.rows) {
		return Cell{}, false
	}
	row := b.rows[p.Row]
	if p.Col < 0 || p.Col >= len(row) {
		return Cell{}, false
	}
	return row[p.Col], true
}

// Rows returns rows [start, end) after clamping. The slices are shared with
// the buffer and must not be modified.
func (b *Buffer) Rows(start, end int) []Row {
	start = clampInt(start, 0, len(b.rows))
	end = clampInt(end, start, len(b.rows))
	return append([]Row(nil), b.rows[start:end]...)
}

func (b *Buffer) ClampPos(p Pos) Pos {
	return ClampPos(p, len(b.rows), b.RowLen)
}

func (b *Buffer) ClampRange(r Range) Range {
	return NormalizeRange(ClampRange(r, len(b.rows), b.RowLen))
}

// End returns the position after the last cell of the last row.
func (b *Buffer) End() Pos {
	last := len(b.rows) - 1
	return Pos{Row: last, Col: len(b.rows[last])}
}

// NewRow builds a row from text, computing cell widths. Line breaks in text
// are dropped.
func (b *Buffer) NewRow(text string) Row {
	text = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, text)
	clusters := grapheme.Split(text)
	row := make(Row, len(clusters))
	for i, c := range clusters {
		row[i] = Cell{Text: c, Width: grapheme.Width(c, b.tabWidth)}
	}
	return row
}

func (b *Buffer) clampRow(r int) int {
	return clampInt(r, 0, len(b.rows)-1)
}

func (b *Buffer) splitRows(text string) []Row {
	parts := strings.Split(text, "\n")
	rows := make([]Row, 0, len(parts))
	for _, s := range parts {
		rows = append(rows, b.NewRow(s))
	}
	if len(rows) == 0 {
		rows = append(rows, Row{})
	}
	return rows
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func rowText(row Row) string {
	var sb strings.Builder
	writeRow(&sb, row)
	return sb.String()
}

func writeRow(sb *strings.Builder, row Row) {
	for _, c := range row {
		sb.WriteString(c.Text)
	}
}

package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/engine"
	"github.com/iw2rmb/vimkit/highlight"
	"github.com/iw2rmb/vimkit/vim"
)

func (m *Model) renderContent(s engine.Snapshot) string {
	var syntax [][]highlight.Span
	if m.hl != nil {
		spans := m.hl.Spans(s.Revision, m.cfg.Language, m.ed.Text)
		syntax = highlight.ByRow(spans, len(s.Rows))
	}
	matches := make([][]buffer.Range, len(s.Rows))
	for _, r := range s.Highlights {
		if r.Start.Row >= 0 && r.Start.Row < len(matches) {
			matches[r.Start.Row] = append(matches[r.Start.Row], r)
		}
	}

	digits := gutterDigits(len(s.Rows))
	out := make([]string, 0, len(s.Rows))
	for row, cells := range s.Rows {
		var sb strings.Builder
		if m.showLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == s.Cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		var spans []highlight.Span
		if syntax != nil {
			spans = syntax[row]
		}
		sb.WriteString(m.renderRow(s, row, cells, spans, matches[row]))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderRow styles each cell by priority: cursor, selection, current match,
// match, syntax, plain text.
func (m *Model) renderRow(s engine.Snapshot, row int, cells buffer.Row, spans []highlight.Span, matches []buffer.Range) string {
	st := m.cfg.Style
	cursorStyle := st.Cursor
	if s.Mode == vim.Insert {
		cursorStyle = st.InsertCursor
	}
	hasCursor := m.focused && s.Cursor.Row == row

	var sb strings.Builder
	for col, cell := range cells {
		p := buffer.Pos{Row: row, Col: col}
		style := st.Text
		switch {
		case hasCursor && s.Cursor.Col == col:
			style = cursorStyle
		case selected(s.Selection, p):
			style = st.Selection
		case s.HasMatch && s.CurrentMatch.Contains(p):
			style = st.CurrentMatch.Inherit(st.Text)
		case inRanges(matches, p):
			style = st.Match.Inherit(st.Text)
		default:
			if sp, ok := spanAt(spans, col); ok && m.cfg.Theme != nil {
				style = m.cfg.Theme.Style(sp.Token).Inherit(st.Text)
			}
		}
		sb.WriteString(style.Render(cellText(cell)))
	}

	// The cursor past the last cell (Insert mode, empty rows) is drawn as a
	// placeholder space.
	if hasCursor && s.Cursor.Col >= len(cells) {
		sb.WriteString(cursorStyle.Render(" "))
	} else if len(cells) == 0 && selected(s.Selection, buffer.Pos{Row: row}) {
		sb.WriteString(st.Selection.Render(" "))
	}
	return sb.String()
}

func cellText(c buffer.Cell) string {
	if c.Text == "\t" {
		return strings.Repeat(" ", max(c.Width, 1))
	}
	return c.Text
}

func selected(sel engine.Selection, p buffer.Pos) bool {
	switch sel.Kind {
	case engine.SelectLine:
		return p.Row >= sel.Range.Start.Row && p.Row <= sel.Range.End.Row
	case engine.SelectChar:
		return sel.Range.Contains(p)
	}
	return false
}

func inRanges(rs []buffer.Range, p buffer.Pos) bool {
	for _, r := range rs {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

func spanAt(spans []highlight.Span, col int) (highlight.Span, bool) {
	for _, sp := range spans {
		if col >= sp.Range.Start.Col && col < sp.Range.End.Col {
			return sp, true
		}
	}
	return highlight.Span{}, false
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

func (m Model) gutterWidth() int {
	if !m.showLineNums {
		return 0
	}
	return gutterDigits(m.ed.Buffer().RowCount()) + 1
}

// Status renders a one-line mode indicator with the pending command or the
// search prompt.
func (m Model) Status() string {
	s := m.ed.Snapshot()
	var parts []string
	switch s.Mode {
	case vim.Normal:
		parts = append(parts, s.Mode.String())
	case vim.Search:
		parts = append(parts, "/"+s.SearchPattern)
	default:
		parts = append(parts, "-- "+s.Mode.String()+" --")
	}
	if s.PendingKeys != "" {
		parts = append(parts, s.PendingKeys)
	}
	if s.Mode != vim.Search && s.SearchPattern != "" {
		parts = append(parts, fmt.Sprintf("[%s %d]", s.SearchPattern, len(s.Highlights)))
	}
	parts = append(parts, fmt.Sprintf("%d:%d", s.Cursor.Row+1, s.Cursor.Col+1))
	return m.cfg.Style.Status.Render(strings.Join(parts, "  "))
}

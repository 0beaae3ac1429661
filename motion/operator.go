package motion

import (
	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/internal/grapheme"
)

// Span is the text an operator acts on. When Linewise is set the span covers
// rows Range.Start.Row through Range.End.Row inclusive and the columns are
// irrelevant.
type Span struct {
	Range    buffer.Range
	Linewise bool
}

// Rows returns the inclusive row bounds of a linewise span.
func (s Span) Rows() (first, last int) {
	return s.Range.Start.Row, s.Range.End.Row
}

// LineSpan covers count rows starting at row, clamped to the document.
func LineSpan(t Text, row, count int) Span {
	if count <= 0 {
		count = 1
	}
	row = clampRow(t, row)
	last := clampRow(t, row+count-1)
	return Span{
		Range: buffer.Range{
			Start: buffer.Pos{Row: row},
			End:   buffer.Pos{Row: last, Col: t.RowLen(last)},
		},
		Linewise: true,
	}
}

// OperatorSpan resolves the span an operator covers when combined with m from
// p. ok is false when the motion has no target.
//
// Exclusive motions end before their target, inclusive motions include it and
// vertical or document motions cover whole rows. A `w` whose last step crosses
// a line break stops at the end of the row it left.
func OperatorSpan(t Text, p buffer.Pos, m Motion, ctx Context) (Span, bool) {
	p = clampPos(t, p, false)
	ctx.PastEnd = false
	n := m.times()

	switch m.Kind {
	case Left:
		start := buffer.Pos{Row: p.Row, Col: max(p.Col-n, 0)}
		return Span{Range: buffer.Range{Start: start, End: p}}, true
	case Right:
		end := buffer.Pos{Row: p.Row, Col: min(p.Col+n, t.RowLen(p.Row))}
		return Span{Range: buffer.Range{Start: p, End: end}}, true
	case WordForward:
		return wordSpan(t, p, n), true
	}

	res, ok := Apply(t, p, m, ctx)
	if !ok {
		return Span{}, false
	}
	q := res.Pos

	if m.Kind.Linewise() {
		first, last := min(p.Row, q.Row), max(p.Row, q.Row)
		return LineSpan(t, first, last-first+1), true
	}

	r := buffer.NormalizeRange(buffer.Range{Start: p, End: q})
	if m.Kind.Inclusive() {
		r.End.Col = min(r.End.Col+1, t.RowLen(r.End.Row))
	}
	return Span{Range: r}, true
}

func wordSpan(t Text, p buffer.Pos, n int) Span {
	q := p
	for i := 0; i < n; i++ {
		from := q
		next, found := wordForward(t, q)
		if !found {
			q = buffer.Pos{Row: next.Row, Col: t.RowLen(next.Row)}
			break
		}
		if next.Row > from.Row && i == n-1 {
			q = buffer.Pos{Row: from.Row, Col: t.RowLen(from.Row)}
			break
		}
		q = next
	}
	return Span{Range: buffer.Range{Start: p, End: q}}
}

// ChangeWordSpan is the span of `cw`: on a non-blank it stops at the end of
// the word instead of the start of the next one.
func ChangeWordSpan(t Text, p buffer.Pos, count int) Span {
	p = clampPos(t, p, false)
	if count <= 0 {
		count = 1
	}
	if classAt(t, p) == grapheme.ClassSpace {
		return wordSpan(t, p, count)
	}
	q := runEnd(t, p)
	for i := 1; i < count; i++ {
		q = wordEnd(t, q)
	}
	end := buffer.Pos{Row: q.Row, Col: min(q.Col+1, t.RowLen(q.Row))}
	return Span{Range: buffer.Range{Start: p, End: end}}
}

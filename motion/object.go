package motion

import (
	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/internal/grapheme"
)

// Object names a text object: a delimiter (`"`, `'`, `(`, `[`, `{`, or their
// closing forms) or "w" for a word.
type Object struct {
	Delim  string
	Around bool
}

// IsObjectKey reports whether s can follow `i`/`a` as a text-object scope.
func IsObjectKey(s string) bool {
	switch s {
	case "w", `"`, "'", "`":
		return true
	}
	_, ok := pairOf(s)
	return ok
}

// ResolveObject returns the range of the text object around p. ok is false
// when no matching delimiters exist.
func ResolveObject(t Text, p buffer.Pos, obj Object) (buffer.Range, bool) {
	p = clampPos(t, p, true)
	switch obj.Delim {
	case "w":
		return wordObject(t, p, obj.Around)
	case `"`, "'", "`":
		return quoteObject(t, p, obj.Delim, obj.Around)
	}
	br, ok := pairOf(obj.Delim)
	if !ok {
		return buffer.Range{}, false
	}
	return bracketObject(t, p, br, obj.Around)
}

func bracketObject(t Text, p buffer.Pos, br pair, around bool) (buffer.Range, bool) {
	open, ok := enclosingOpen(t, p, br)
	var closePos buffer.Pos
	if ok {
		closePos, ok = scanForward(t, open, br)
	}
	if !ok {
		// Not inside a pair: use the next pair that starts on this row.
		open, ok = nextOnRow(t, p, br.open)
		if !ok {
			return buffer.Range{}, false
		}
		closePos, ok = scanForward(t, open, br)
		if !ok {
			return buffer.Range{}, false
		}
	}

	if around {
		return buffer.Range{Start: open, End: buffer.Pos{Row: closePos.Row, Col: closePos.Col + 1}}, true
	}

	start := buffer.Pos{Row: open.Row, Col: open.Col + 1}
	if start.Col >= t.RowLen(open.Row) && closePos.Row > open.Row {
		start = buffer.Pos{Row: open.Row + 1}
	}
	end := closePos
	if closePos.Row > start.Row && blankBefore(t, closePos) {
		end = buffer.Pos{Row: closePos.Row}
	}
	if buffer.ComparePos(end, start) < 0 {
		end = start
	}
	return buffer.Range{Start: start, End: end}, true
}

func blankBefore(t Text, p buffer.Pos) bool {
	for c := 0; c < p.Col; c++ {
		if !grapheme.IsSpace(cellText(t, buffer.Pos{Row: p.Row, Col: c})) {
			return false
		}
	}
	return true
}

func nextOnRow(t Text, p buffer.Pos, s string) (buffer.Pos, bool) {
	n := t.RowLen(p.Row)
	for c := p.Col; c < n; c++ {
		q := buffer.Pos{Row: p.Row, Col: c}
		if cellText(t, q) == s {
			return q, true
		}
	}
	return p, false
}

// quoteObject pairs quotes on the cursor row left to right and picks the pair
// containing the cursor, or the first pair after it.
func quoteObject(t Text, p buffer.Pos, q string, around bool) (buffer.Range, bool) {
	var cols []int
	for c := 0; c < t.RowLen(p.Row); c++ {
		if cellText(t, buffer.Pos{Row: p.Row, Col: c}) == q {
			cols = append(cols, c)
		}
	}
	for i := 0; i+1 < len(cols); i += 2 {
		open, closeCol := cols[i], cols[i+1]
		if p.Col > closeCol {
			continue
		}
		if around {
			return buffer.Range{
				Start: buffer.Pos{Row: p.Row, Col: open},
				End:   buffer.Pos{Row: p.Row, Col: closeCol + 1},
			}, true
		}
		return buffer.Range{
			Start: buffer.Pos{Row: p.Row, Col: open + 1},
			End:   buffer.Pos{Row: p.Row, Col: closeCol},
		}, true
	}
	return buffer.Range{}, false
}

// wordObject selects the same-class run under the cursor. The around form adds
// trailing whitespace, or leading whitespace when there is none after it.
func wordObject(t Text, p buffer.Pos, around bool) (buffer.Range, bool) {
	n := t.RowLen(p.Row)
	if n == 0 {
		return buffer.Range{}, false
	}
	col := min(p.Col, n-1)
	class := func(c int) grapheme.Class {
		return classAt(t, buffer.Pos{Row: p.Row, Col: c})
	}

	c := class(col)
	start, end := col, col+1
	for start > 0 && class(start-1) == c {
		start--
	}
	for end < n && class(end) == c {
		end++
	}

	if around {
		if c == grapheme.ClassSpace {
			if end < n {
				wc := class(end)
				for end < n && class(end) == wc {
					end++
				}
			}
		} else {
			trail := end
			for trail < n && class(trail) == grapheme.ClassSpace {
				trail++
			}
			if trail > end {
				end = trail
			} else {
				for start > 0 && class(start-1) == grapheme.ClassSpace {
					start--
				}
			}
		}
	}

	return buffer.Range{
		Start: buffer.Pos{Row: p.Row, Col: start},
		End:   buffer.Pos{Row: p.Row, Col: end},
	}, true
}

package motion

import "github.com/iw2rmb/vimkit/buffer"

type pair struct {
	open, close string
}

var pairs = []pair{
	{open: "(", close: ")"},
	{open: "[", close: "]"},
	{open: "{", close: "}"},
}

func pairOf(s string) (pair, bool) {
	for _, p := range pairs {
		if s == p.open || s == p.close {
			return p, true
		}
	}
	return pair{}, false
}

func cellText(t Text, p buffer.Pos) string {
	cell, _ := t.CellAt(p)
	return cell.Text
}

// matchBracket implements `%`: the bracket under p, or else the next bracket
// on the row, is matched against its partner counting only brackets of the
// same type.
func matchBracket(t Text, p buffer.Pos) (buffer.Pos, bool) {
	start := p
	for {
		if _, ok := pairOf(cellText(t, start)); ok {
			break
		}
		start.Col++
		if start.Col >= t.RowLen(p.Row) {
			return p, false
		}
	}

	br, _ := pairOf(cellText(t, start))
	if cellText(t, start) == br.open {
		return scanForward(t, start, br)
	}
	return scanBackward(t, start, br)
}

// scanForward finds the close bracket matching the open bracket at p.
func scanForward(t Text, p buffer.Pos, br pair) (buffer.Pos, bool) {
	depth := 0
	q := p
	for {
		switch cellText(t, q) {
		case br.open:
			depth++
		case br.close:
			depth--
			if depth == 0 {
				return q, true
			}
		}
		n, ok := next(t, q)
		if !ok {
			return p, false
		}
		q = n
	}
}

// scanBackward finds the open bracket matching the close bracket at p.
func scanBackward(t Text, p buffer.Pos, br pair) (buffer.Pos, bool) {
	depth := 0
	q := p
	for {
		switch cellText(t, q) {
		case br.close:
			depth++
		case br.open:
			depth--
			if depth == 0 {
				return q, true
			}
		}
		n, ok := prev(t, q)
		if !ok {
			return p, false
		}
		q = n
	}
}

// enclosingOpen finds the nearest unmatched open bracket at or before p.
func enclosingOpen(t Text, p buffer.Pos, br pair) (buffer.Pos, bool) {
	switch cellText(t, p) {
	case br.open:
		return p, true
	case br.close:
		return scanBackward(t, p, br)
	}
	depth := 0
	q := p
	for {
		n, ok := prev(t, q)
		if !ok {
			return p, false
		}
		q = n
		switch cellText(t, q) {
		case br.close:
			depth++
		case br.open:
			if depth == 0 {
				return q, true
			}
			depth--
		}
	}
}

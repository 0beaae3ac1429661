// Package search finds literal, case-sensitive matches in a buffer and keeps
// a current-match index that cycles with wraparound.
package search

import (
	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/internal/grapheme"
)

// Text is the read-only view searched. *buffer.Buffer satisfies it.
type Text interface {
	Revision() uint64
	RowCount() int
	Row(r int) buffer.Row
}

// State is the search pattern, its matches in row-major order and the
// current match. The zero value is an inactive search.
type State struct {
	pattern  string
	clusters []string
	matches  []buffer.Range
	current  int
	revision uint64
}

func (s *State) Pattern() string { return s.pattern }

// Active reports whether a pattern is set.
func (s *State) Active() bool { return s.pattern != "" }

// Matches returns the match ranges. The slice must not be modified.
func (s *State) Matches() []buffer.Range { return s.matches }

// Current returns the current match, if any.
func (s *State) Current() (buffer.Range, bool) {
	if s.current < 0 || s.current >= len(s.matches) {
		return buffer.Range{}, false
	}
	return s.matches[s.current], true
}

// Set replaces the pattern and recomputes matches. The current match is
// reset.
func (s *State) Set(t Text, pattern string) {
	s.pattern = pattern
	s.clusters = grapheme.Split(pattern)
	s.current = -1
	s.scan(t)
}

func (s *State) Clear() {
	*s = State{current: -1}
}

// Refresh recomputes matches when the buffer changed since the last scan.
func (s *State) Refresh(t Text) {
	if s.pattern == "" || t.Revision() == s.revision {
		return
	}
	s.scan(t)
	if s.current >= len(s.matches) {
		s.current = -1
	}
}

// First selects the first match starting at or after p, wrapping to the top.
func (s *State) First(p buffer.Pos) (buffer.Range, bool) {
	return s.pick(p, true)
}

// Next selects the first match starting after p, wrapping to the top.
func (s *State) Next(p buffer.Pos) (buffer.Range, bool) {
	return s.pick(p, false)
}

// Prev selects the last match starting before p, wrapping to the bottom.
func (s *State) Prev(p buffer.Pos) (buffer.Range, bool) {
	if len(s.matches) == 0 {
		return buffer.Range{}, false
	}
	s.current = len(s.matches) - 1
	for i := len(s.matches) - 1; i >= 0; i-- {
		if buffer.ComparePos(s.matches[i].Start, p) < 0 {
			s.current = i
			break
		}
	}
	return s.matches[s.current], true
}

func (s *State) pick(p buffer.Pos, inclusive bool) (buffer.Range, bool) {
	if len(s.matches) == 0 {
		return buffer.Range{}, false
	}
	s.current = 0
	for i, m := range s.matches {
		c := buffer.ComparePos(m.Start, p)
		if c > 0 || (inclusive && c == 0) {
			s.current = i
			break
		}
	}
	return s.matches[s.current], true
}

func (s *State) scan(t Text) {
	s.revision = t.Revision()
	s.matches = nil
	if len(s.clusters) == 0 {
		return
	}
	for r := 0; r < t.RowCount(); r++ {
		for _, col := range Find(t.Row(r), s.clusters) {
			s.matches = append(s.matches, buffer.Range{
				Start: buffer.Pos{Row: r, Col: col},
				End:   buffer.Pos{Row: r, Col: col + len(s.clusters)},
			})
		}
	}
}

// Find returns the start columns of non-overlapping literal matches of
// pattern in row, left to right.
func Find(row buffer.Row, pattern []string) []int {
	if len(pattern) == 0 {
		return nil
	}
	var out []int
	for c := 0; c+len(pattern) <= len(row); {
		if hasPrefix(row[c:], pattern) {
			out = append(out, c)
			c += len(pattern)
			continue
		}
		c++
	}
	return out
}

func hasPrefix(row buffer.Row, pattern []string) bool {
	for i, p := range pattern {
		if row[i].Text != p {
			return false
		}
	}
	return true
}

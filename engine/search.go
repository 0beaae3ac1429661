package engine

import (
	"github.com/iw2rmb/vimkit/internal/grapheme"
	"github.com/iw2rmb/vimkit/vim"
)

func (e *Editor) searchStart() {
	e.searchOrigin = e.cursor
	e.searchInput = ""
	e.search.Clear()
	e.mode = vim.Search
}

// searchType extends the pattern; matches refresh while typing.
func (e *Editor) searchType(text string) {
	if e.mode != vim.Search {
		return
	}
	e.searchInput += text
	e.search.Set(e.buf, e.searchInput)
}

func (e *Editor) searchBackspace() {
	if e.mode != vim.Search {
		return
	}
	if e.searchInput == "" {
		e.searchCancel()
		return
	}
	clusters := grapheme.Split(e.searchInput)
	e.searchInput = grapheme.Join(clusters[:len(clusters)-1])
	e.search.Set(e.buf, e.searchInput)
}

// searchCommit jumps to the first match at or after the origin, wrapping.
func (e *Editor) searchCommit() {
	if e.mode != vim.Search {
		return
	}
	e.mode = vim.Normal
	if e.searchInput == "" {
		e.search.Clear()
		return
	}
	m, ok := e.search.First(e.searchOrigin)
	if !ok {
		e.logger.Debug("pattern not found", "pattern", e.searchInput)
		return
	}
	e.cursor = m.Start
}

func (e *Editor) searchCancel() {
	e.search.Clear()
	e.searchInput = ""
	e.cursor = e.searchOrigin
	e.mode = vim.Normal
}

// searchJump moves to the next or previous match count times, wrapping at
// the document ends.
func (e *Editor) searchJump(count int, forward bool) {
	if !e.search.Active() {
		e.logger.Debug("no active search")
		return
	}
	e.search.Refresh(e.buf)
	for i := 0; i < count; i++ {
		next := e.search.Next
		if !forward {
			next = e.search.Prev
		}
		m, ok := next(e.cursor)
		if !ok {
			e.logger.Debug("pattern not found", "pattern", e.search.Pattern())
			return
		}
		e.cursor = m.Start
	}
}

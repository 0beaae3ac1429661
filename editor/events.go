package editor

import (
	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/engine"
	"github.com/iw2rmb/vimkit/vim"
)

type ChangeEvent struct {
	Revision  uint64
	Cursor    buffer.Pos
	Mode      vim.Mode
	Selection engine.Selection

	// Text is the whole document; hosts diff it if they need to.
	Text string
}

func buildChangeEvent(e *engine.Editor) ChangeEvent {
	return ChangeEvent{
		Revision:  e.Revision(),
		Cursor:    e.Cursor(),
		Mode:      e.Mode(),
		Selection: e.Selection(),
		Text:      e.Text(),
	}
}

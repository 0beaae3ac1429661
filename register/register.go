// Package register stores the last yanked or deleted text with its
// granularity, optionally mirrored to an external clipboard.
package register

import (
	"log/slog"
	"strings"
)

// Kind is the granularity of register content.
type Kind int

const (
	Charwise Kind = iota
	Linewise
)

func (k Kind) String() string {
	if k == Linewise {
		return "linewise"
	}
	return "charwise"
}

// Content is a register payload. Linewise text holds whole rows joined by
// '\n' without a trailing break.
type Content struct {
	Text string
	Kind Kind
}

// IsEmpty reports whether pasting c would insert nothing.
func (c Content) IsEmpty() bool {
	return c.Text == "" && c.Kind == Charwise
}

// Lines returns linewise content as rows.
func (c Content) Lines() []string {
	return strings.Split(c.Text, "\n")
}

// Clipboard is the external clipboard collaborator.
//
// Errors never reach the editor; the register falls back to its internal
// slot.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Register holds one slot (last write wins). With a Clipboard configured,
// writes are mirrored to it and reads prefer it.
type Register struct {
	slot   Content
	mirror string
	clip   Clipboard
	logger *slog.Logger
}

// New returns a register. clip may be nil for an internal-only register.
func New(clip Clipboard, logger *slog.Logger) *Register {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Register{clip: clip, logger: logger}
}

// External reports whether a clipboard backend is configured.
func (r *Register) External() bool { return r.clip != nil }

func (r *Register) Write(c Content) {
	r.slot = c
	r.mirror = clipboardText(c)
	if r.clip == nil {
		return
	}
	if err := r.clip.WriteText(r.mirror); err != nil {
		r.logger.Debug("clipboard write failed, keeping internal register", "err", err)
	}
}

// Read returns the current content. ok is false when the register is empty.
//
// Clipboard text that differs from the last write came from outside the
// editor and carries no granularity; see fromClipboard.
func (r *Register) Read() (Content, bool) {
	if r.clip != nil {
		text, err := r.clip.ReadText()
		switch {
		case err != nil:
			r.logger.Debug("clipboard read failed, using internal register", "err", err)
		case text != "" && text != r.mirror:
			return fromClipboard(text), true
		}
	}
	if r.slot.IsEmpty() {
		return Content{}, false
	}
	return r.slot, true
}

func clipboardText(c Content) string {
	if c.Kind == Linewise {
		return c.Text + "\n"
	}
	return c.Text
}

// fromClipboard tags external text. Text that starts or ends with a line
// break is linewise, with those breaks stripped; anything else is charwise.
func fromClipboard(text string) Content {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if !strings.HasPrefix(text, "\n") && !strings.HasSuffix(text, "\n") {
		return Content{Text: text, Kind: Charwise}
	}
	text = strings.TrimPrefix(text, "\n")
	return Content{Text: strings.TrimSuffix(text, "\n"), Kind: Linewise}
}

package editor

import (
	"log/slog"

	"github.com/iw2rmb/vimkit/engine"
	"github.com/iw2rmb/vimkit/highlight"
)

// Config configures the editor Model.
type Config struct {
	// Engine configures the hosted engine. ViewportHeight is overridden by
	// SetSize.
	Engine engine.Config

	// Rendering options. The zero Style renders undecorated text; use
	// DefaultStyle for a visible cursor and selection.
	ShowLineNums bool
	Style        Style

	// Host-level bindings handled before keys reach the engine. Zero value:
	// DefaultKeyMap.
	KeyMap KeyMap

	// Optional syntax highlighting. Language is passed to Highlighter as is;
	// Theme defaults to chroma's fallback style.
	Highlighter highlight.Func
	Language    string
	Theme       *highlight.Theme

	// OnChange is called after an event changed the revision, cursor or mode.
	OnChange func(ChangeEvent)

	// Logger is also handed to the engine when Engine.Logger is nil.
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Engine.Logger == nil {
		c.Engine.Logger = c.Logger
	}
	if len(c.KeyMap.ToggleLineNumbers.Keys()) == 0 && len(c.KeyMap.Paste.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Highlighter != nil && c.Theme == nil {
		c.Theme = highlight.NewTheme("", nil)
	}
	return c
}

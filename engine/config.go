package engine

import (
	"log/slog"

	"github.com/iw2rmb/vimkit/history"
	"github.com/iw2rmb/vimkit/register"
)

// Config configures an Editor. The zero value is usable.
type Config struct {
	// Initial document text.
	Text string

	// Forwarded to buffer.Options. Default: 4.
	TabWidth int

	// Maximum undo depth. 0 selects history.DefaultLimit; negative disables
	// undo.
	HistoryLimit int

	// Optional external clipboard. Nil keeps yanks in the internal register.
	Clipboard register.Clipboard

	// Number of text rows the host shows. It sizes half-page motions and the
	// scroll hint. Default: 24.
	ViewportHeight int

	// Logger receives Debug records for commands that end as no-ops. Nil
	// discards them.
	Logger *slog.Logger
}

const defaultViewportHeight = 24

func (c Config) withDefaults() Config {
	if c.ViewportHeight <= 0 {
		c.ViewportHeight = defaultViewportHeight
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = history.DefaultLimit
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}

package highlight

import "log/slog"

// Cache memoizes a Func per (revision, language). It is not safe for
// concurrent use.
type Cache struct {
	fn     Func
	logger *slog.Logger

	valid    bool
	revision uint64
	lang     string
	spans    []Span
}

// NewCache wraps fn. A nil logger discards records.
func NewCache(fn Func, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cache{fn: fn, logger: logger}
}

// Spans returns the spans for revision, calling text and the wrapped Func
// only when revision or lang changed. A failing Func yields no spans until
// the next revision.
func (c *Cache) Spans(revision uint64, lang string, text func() string) []Span {
	if c == nil || c.fn == nil {
		return nil
	}
	if c.valid && c.revision == revision && c.lang == lang {
		return c.spans
	}
	spans, err := c.fn(text(), lang)
	if err != nil {
		c.logger.Debug("highlighting failed", "lang", lang, "revision", revision, "err", err)
		spans = nil
	}
	c.valid, c.revision, c.lang, c.spans = true, revision, lang, spans
	return spans
}

// Invalidate forces the next Spans call to recompute.
func (c *Cache) Invalidate() { c.valid = false }

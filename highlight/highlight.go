// Package highlight tokenizes document text into styled spans. It sits
// outside the engine: the engine only supplies text and its revision counter.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/internal/grapheme"
)

// Span is a styled single-row range. Columns are grapheme indices.
type Span struct {
	Range buffer.Range
	Token chroma.TokenType
}

// Tag is the style tag of s, e.g. "Keyword" or "LiteralString".
func (s Span) Tag() string { return s.Token.String() }

// Func maps document text and a language id to spans ordered by position.
type Func func(text, lang string) ([]Span, error)

// Chroma is a Func backed by chroma lexers. lang is a lexer name, alias or
// file name; when it matches nothing the lexer is guessed from the text, and
// plain text is used as a last resort.
func Chroma(text, lang string) ([]Span, error) {
	lexer := lexerFor(text, lang)
	it, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return nil, fmt.Errorf("tokenise %q: %w", lang, err)
	}

	var spans []Span
	for row, line := range chroma.SplitTokensIntoLines(it.Tokens()) {
		col := 0
		for _, tok := range line {
			n := grapheme.Count(strings.TrimSuffix(tok.Value, "\n"))
			if n > 0 && !plain(tok.Type) {
				spans = append(spans, Span{
					Range: buffer.Range{
						Start: buffer.Pos{Row: row, Col: col},
						End:   buffer.Pos{Row: row, Col: col + n},
					},
					Token: tok.Type,
				})
			}
			col += n
		}
	}
	return spans, nil
}

func lexerFor(text, lang string) chroma.Lexer {
	if lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
		if l := lexers.Match(lang); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

func plain(t chroma.TokenType) bool {
	return t == chroma.Text || t == chroma.TextWhitespace || t == chroma.Background
}

// ByRow groups spans by row. Spans outside [0, rows) are dropped.
func ByRow(spans []Span, rows int) [][]Span {
	out := make([][]Span, rows)
	for _, sp := range spans {
		r := sp.Range.Start.Row
		if r < 0 || r >= rows {
			continue
		}
		out[r] = append(out[r], sp)
	}
	return out
}

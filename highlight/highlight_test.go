package highlight

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/vimkit/buffer"
)

func spanAt(spans []Span, start, end buffer.Pos) (Span, bool) {
	for _, sp := range spans {
		if sp.Range.Start == start && sp.Range.End == end {
			return sp, true
		}
	}
	return Span{}, false
}

func TestChroma_GoKeywords(t *testing.T) {
	spans, err := Chroma("package main\n\nfunc f() {}", "go")
	require.NoError(t, err)

	sp, ok := spanAt(spans, buffer.Pos{Row: 0, Col: 0}, buffer.Pos{Row: 0, Col: 7})
	require.True(t, ok, "package keyword span")
	require.True(t, strings.HasPrefix(sp.Tag(), "Keyword"), sp.Tag())

	sp, ok = spanAt(spans, buffer.Pos{Row: 2, Col: 0}, buffer.Pos{Row: 2, Col: 4})
	require.True(t, ok, "func keyword span")
	require.True(t, strings.HasPrefix(sp.Tag(), "Keyword"), sp.Tag())
}

func TestChroma_ColumnsCountGraphemes(t *testing.T) {
	spans, err := Chroma(`s := "日本"`, "go")
	require.NoError(t, err)

	sp, ok := spanAt(spans, buffer.Pos{Row: 0, Col: 5}, buffer.Pos{Row: 0, Col: 9})
	require.True(t, ok, "string span in grapheme columns: %v", spans)
	require.Equal(t, chroma.LiteralString, sp.Token)
}

func TestChroma_PlainTextHasNoSpans(t *testing.T) {
	spans, err := Chroma("just words\nand more", "plaintext")
	require.NoError(t, err)
	require.Empty(t, spans)
}

func TestChroma_SpansAreOrdered(t *testing.T) {
	spans, err := Chroma("func a() {}\nfunc b() { return }", "go")
	require.NoError(t, err)
	for i := 1; i < len(spans); i++ {
		require.LessOrEqual(t, buffer.ComparePos(spans[i-1].Range.End, spans[i].Range.Start), 0)
	}
}

func TestByRow(t *testing.T) {
	spans := []Span{
		{Range: buffer.Range{Start: buffer.Pos{Row: 0}, End: buffer.Pos{Row: 0, Col: 1}}},
		{Range: buffer.Range{Start: buffer.Pos{Row: 2}, End: buffer.Pos{Row: 2, Col: 1}}},
		{Range: buffer.Range{Start: buffer.Pos{Row: 5}, End: buffer.Pos{Row: 5, Col: 1}}},
	}
	rows := ByRow(spans, 3)
	require.Len(t, rows, 3)
	require.Len(t, rows[0], 1)
	require.Empty(t, rows[1])
	require.Len(t, rows[2], 1)
}

func TestCache_RecomputesOnlyOnRevisionOrLanguageChange(t *testing.T) {
	calls := 0
	texts := 0
	c := NewCache(func(text, lang string) ([]Span, error) {
		calls++
		return []Span{{Token: chroma.Keyword}}, nil
	}, nil)
	text := func() string {
		texts++
		return "x"
	}

	require.Len(t, c.Spans(1, "go", text), 1)
	require.Len(t, c.Spans(1, "go", text), 1)
	require.Equal(t, 1, calls)
	require.Equal(t, 1, texts)

	c.Spans(2, "go", text)
	require.Equal(t, 2, calls)
	c.Spans(2, "rust", text)
	require.Equal(t, 3, calls)

	c.Invalidate()
	c.Spans(2, "rust", text)
	require.Equal(t, 4, calls)
}

func TestCache_ErrorYieldsNoSpans(t *testing.T) {
	calls := 0
	c := NewCache(func(text, lang string) ([]Span, error) {
		calls++
		return []Span{{Token: chroma.Keyword}}, errors.New("boom")
	}, nil)
	text := func() string { return "" }

	require.Nil(t, c.Spans(1, "go", text))
	require.Nil(t, c.Spans(1, "go", text))
	require.Equal(t, 1, calls)

	var nilCache *Cache
	require.Nil(t, nilCache.Spans(1, "go", text))
}

func TestTheme_StyleFromChromaStyle(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	th := NewTheme("monokai", r)
	require.Equal(t, "monokai", th.Name())

	want := styles.Get("monokai").Get(chroma.Keyword).Colour.String()
	require.Equal(t, lipgloss.Color(want), th.Style(chroma.Keyword).GetForeground())
	require.Equal(t, th.Style(chroma.Keyword).GetForeground(), th.Style(chroma.Keyword).GetForeground())
}

func TestTheme_UnknownNameFallsBack(t *testing.T) {
	th := NewTheme("no-such-theme", nil)
	require.Equal(t, styles.Fallback.Name, th.Name())
}

package motion

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/vimkit/buffer"
)

func span(t *testing.T, text string, p buffer.Pos, m Motion) (Span, string) {
	t.Helper()
	b := buffer.New(text, buffer.Options{})
	s, ok := OperatorSpan(b, p, m, Context{Sticky: -1, PageHeight: 4})
	require.True(t, ok)
	return s, b.Slice(s.Range)
}

func TestOperatorSpan_Exclusive(t *testing.T) {
	_, got := span(t, "foo bar", pos(0, 0), Motion{Kind: WordForward})
	require.Equal(t, "foo ", got)

	_, got = span(t, "foo bar", pos(0, 4), Motion{Kind: WordBackward})
	require.Equal(t, "foo ", got)

	_, got = span(t, "abc", pos(0, 1), Motion{Kind: Right, Count: 9})
	require.Equal(t, "bc", got)

	_, got = span(t, "abc", pos(0, 2), Motion{Kind: Left})
	require.Equal(t, "b", got)
}

func TestOperatorSpan_WordStopsAtEndOfRow(t *testing.T) {
	_, got := span(t, "foo\nbar", pos(0, 0), Motion{Kind: WordForward})
	require.Equal(t, "foo", got)

	_, got = span(t, "foo", pos(0, 1), Motion{Kind: WordForward})
	require.Equal(t, "oo", got)

	_, got = span(t, "a b\nc d", pos(0, 0), Motion{Kind: WordForward, Count: 3})
	require.Equal(t, "a b\nc ", got)
}

func TestOperatorSpan_Inclusive(t *testing.T) {
	_, got := span(t, "foo bar", pos(0, 1), Motion{Kind: WordEnd})
	require.Equal(t, "oo", got)

	_, got = span(t, "foo bar", pos(0, 2), Motion{Kind: LineEnd})
	require.Equal(t, "o bar", got)

	_, got = span(t, "f(a)b", pos(0, 1), Motion{Kind: MatchBracket})
	require.Equal(t, "(a)", got)
}

func TestOperatorSpan_Linewise(t *testing.T) {
	s, _ := span(t, "a\nb\nc", pos(1, 0), Motion{Kind: Down})
	require.True(t, s.Linewise)
	first, last := s.Rows()
	require.Equal(t, 1, first)
	require.Equal(t, 2, last)

	s, _ = span(t, "a\nb\nc", pos(1, 0), Motion{Kind: DocStart})
	first, last = s.Rows()
	require.Equal(t, 0, first)
	require.Equal(t, 1, last)
}

func TestOperatorSpan_UnmatchedBracket(t *testing.T) {
	b := buffer.New("(a", buffer.Options{})
	_, ok := OperatorSpan(b, pos(0, 0), Motion{Kind: MatchBracket}, Context{Sticky: -1})
	require.False(t, ok)
}

func TestLineSpan_Clamps(t *testing.T) {
	b := buffer.New("a\nb", buffer.Options{})
	s := LineSpan(b, 1, 5)
	first, last := s.Rows()
	require.Equal(t, 1, first)
	require.Equal(t, 1, last)
}

func TestChangeWordSpan(t *testing.T) {
	b := buffer.New("foo bar", buffer.Options{})
	require.Equal(t, "foo", b.Slice(ChangeWordSpan(b, pos(0, 0), 1).Range))
	require.Equal(t, "o", b.Slice(ChangeWordSpan(b, pos(0, 2), 1).Range))
	require.Equal(t, "foo bar", b.Slice(ChangeWordSpan(b, pos(0, 0), 2).Range))
	require.Equal(t, " ", b.Slice(ChangeWordSpan(b, pos(0, 3), 1).Range))
}

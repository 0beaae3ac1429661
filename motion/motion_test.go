package motion

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/vimkit/buffer"
)

func pos(row, col int) buffer.Pos { return buffer.Pos{Row: row, Col: col} }

func apply(t *testing.T, text string, p buffer.Pos, m Motion) buffer.Pos {
	t.Helper()
	b := buffer.New(text, buffer.Options{})
	res, ok := Apply(b, p, m, Context{Sticky: -1, PageHeight: 10})
	require.True(t, ok)
	return res.Pos
}

func TestApply_HorizontalClampsWithinRow(t *testing.T) {
	require.Equal(t, pos(0, 0), apply(t, "abc\ndef", pos(0, 0), Motion{Kind: Left}))
	require.Equal(t, pos(0, 2), apply(t, "abc\ndef", pos(0, 1), Motion{Kind: Right, Count: 5}))
	require.Equal(t, pos(1, 0), apply(t, "abc\ndef", pos(1, 2), Motion{Kind: Left, Count: 9}))
}

func TestApply_VerticalKeepsStickyColumn(t *testing.T) {
	b := buffer.New("hello\nw\nworld", buffer.Options{})

	res, ok := Apply(b, pos(0, 4), Motion{Kind: Down}, Context{Sticky: -1})
	require.True(t, ok)
	require.Equal(t, pos(1, 0), res.Pos)
	require.Equal(t, 4, res.Sticky)

	res, ok = Apply(b, res.Pos, Motion{Kind: Down}, Context{Sticky: res.Sticky})
	require.True(t, ok)
	require.Equal(t, pos(2, 4), res.Pos)
}

func TestApply_VerticalClampsAtBufferEdges(t *testing.T) {
	require.Equal(t, pos(0, 1), apply(t, "ab\ncd", pos(0, 1), Motion{Kind: Up}))
	require.Equal(t, pos(1, 1), apply(t, "ab\ncd", pos(0, 1), Motion{Kind: Down, Count: 10}))
}

func TestApply_LineEndSticksToEndOfRows(t *testing.T) {
	b := buffer.New("abc\nabcdef", buffer.Options{})
	res, ok := Apply(b, pos(0, 0), Motion{Kind: LineEnd}, Context{Sticky: -1})
	require.True(t, ok)
	require.Equal(t, pos(0, 2), res.Pos)
	require.Equal(t, StickyEnd, res.Sticky)

	res, ok = Apply(b, res.Pos, Motion{Kind: Down}, Context{Sticky: res.Sticky})
	require.True(t, ok)
	require.Equal(t, pos(1, 5), res.Pos)
}

func TestApply_LineStartAndFirstNonBlank(t *testing.T) {
	require.Equal(t, pos(0, 0), apply(t, "  abc", pos(0, 4), Motion{Kind: LineStart}))
	require.Equal(t, pos(0, 2), apply(t, "  abc", pos(0, 4), Motion{Kind: FirstNonBlank}))
	require.Equal(t, pos(0, 2), apply(t, "   ", pos(0, 0), Motion{Kind: FirstNonBlank}))
}

func TestApply_DocMotions(t *testing.T) {
	text := "a\n  b\n\tc"
	require.Equal(t, pos(0, 0), apply(t, text, pos(2, 1), Motion{Kind: DocStart}))
	require.Equal(t, pos(2, 1), apply(t, text, pos(0, 0), Motion{Kind: DocEnd}))
	require.Equal(t, pos(1, 2), apply(t, text, pos(0, 0), Motion{Kind: DocEnd, Count: 2}))
	require.Equal(t, pos(2, 1), apply(t, text, pos(0, 0), Motion{Kind: DocEnd, Count: 99}))
}

func TestApply_HalfPage(t *testing.T) {
	text := "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"
	require.Equal(t, pos(5, 0), apply(t, text, pos(0, 0), Motion{Kind: HalfPageDown}))
	require.Equal(t, pos(9, 0), apply(t, text, pos(7, 0), Motion{Kind: HalfPageDown}))
	require.Equal(t, pos(0, 0), apply(t, text, pos(3, 0), Motion{Kind: HalfPageUp}))
}

func TestApply_WordMotions(t *testing.T) {
	text := "foo.bar  baz\n\nqux"

	cases := []struct {
		name string
		from buffer.Pos
		m    Motion
		want buffer.Pos
	}{
		{name: "w stops at punctuation", from: pos(0, 0), m: Motion{Kind: WordForward}, want: pos(0, 3)},
		{name: "w skips whitespace", from: pos(0, 4), m: Motion{Kind: WordForward}, want: pos(0, 9)},
		{name: "w stops at empty row", from: pos(0, 9), m: Motion{Kind: WordForward}, want: pos(1, 0)},
		{name: "w leaves empty row", from: pos(1, 0), m: Motion{Kind: WordForward}, want: pos(2, 0)},
		{name: "w count", from: pos(0, 0), m: Motion{Kind: WordForward, Count: 3}, want: pos(0, 9)},
		{name: "w at end goes to last cell", from: pos(2, 0), m: Motion{Kind: WordForward}, want: pos(2, 2)},
		{name: "e", from: pos(0, 0), m: Motion{Kind: WordEnd}, want: pos(0, 2)},
		{name: "e from end of word", from: pos(0, 2), m: Motion{Kind: WordEnd}, want: pos(0, 3)},
		{name: "e across rows", from: pos(0, 11), m: Motion{Kind: WordEnd}, want: pos(2, 2)},
		{name: "b", from: pos(0, 9), m: Motion{Kind: WordBackward}, want: pos(0, 4)},
		{name: "b into empty row", from: pos(2, 0), m: Motion{Kind: WordBackward}, want: pos(1, 0)},
		{name: "b at start", from: pos(0, 0), m: Motion{Kind: WordBackward}, want: pos(0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, apply(t, text, tc.from, tc.m))
		})
	}
}

func TestApply_BoundaryMotionsAreIdempotent(t *testing.T) {
	text := "one two\nthree"
	for _, k := range []Kind{DocEnd, LineEnd, WordForward, WordEnd} {
		once := apply(t, text, pos(1, 4), Motion{Kind: k})
		twice := apply(t, text, once, Motion{Kind: k})
		require.Equal(t, once, twice, k.String())
	}
}

func TestApply_MatchBracket(t *testing.T) {
	require.Equal(t, pos(0, 6), apply(t, "(a(b)c)", pos(0, 0), Motion{Kind: MatchBracket}))
	require.Equal(t, pos(0, 0), apply(t, "(a(b)c)", pos(0, 6), Motion{Kind: MatchBracket}))
	require.Equal(t, pos(0, 4), apply(t, "(a(b)c)", pos(0, 2), Motion{Kind: MatchBracket}))
	require.Equal(t, pos(0, 7), apply(t, "x = (a[)]", pos(0, 0), Motion{Kind: MatchBracket}))
	require.Equal(t, pos(2, 0), apply(t, "{\n  x\n}", pos(0, 0), Motion{Kind: MatchBracket}))
}

func TestApply_MatchBracket_NoMatchIsNoop(t *testing.T) {
	b := buffer.New("(a", buffer.Options{})
	res, ok := Apply(b, pos(0, 0), Motion{Kind: MatchBracket}, Context{Sticky: -1})
	require.False(t, ok)
	require.Equal(t, pos(0, 0), res.Pos)

	b = buffer.New("abc", buffer.Options{})
	_, ok = Apply(b, pos(0, 0), Motion{Kind: MatchBracket}, Context{Sticky: -1})
	require.False(t, ok)
}

func TestApply_EmptyBuffer(t *testing.T) {
	b := buffer.New("", buffer.Options{})
	for k := Left; k <= HalfPageUp; k++ {
		res, _ := Apply(b, pos(3, 3), Motion{Kind: k}, Context{Sticky: -1, PageHeight: 4})
		require.Equal(t, pos(0, 0), res.Pos, k.String())
	}
}

func TestApply_PastEndAllowsAppendColumn(t *testing.T) {
	b := buffer.New("abc", buffer.Options{})
	res, ok := Apply(b, pos(0, 0), Motion{Kind: LineEnd}, Context{Sticky: -1, PastEnd: true})
	require.True(t, ok)
	require.Equal(t, pos(0, 3), res.Pos)
}

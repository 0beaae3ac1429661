package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey_String(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{key: Rune('a'), want: "a"},
		{key: Rune('G'), want: "G"},
		{key: Ctrl('r'), want: "ctrl+r"},
		{key: Special(KeyEsc), want: "esc"},
		{key: Key{Code: KeyLeft, Mods: ModShift}, want: "shift+left"},
		{key: Paste("x"), want: "paste"},
		{key: Key{}, want: "none"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.key.String())
	}
}

func TestKey_CharAndDigit(t *testing.T) {
	r, ok := Rune('x').Char()
	require.True(t, ok)
	require.Equal(t, 'x', r)

	_, ok = Ctrl('x').Char()
	require.False(t, ok)

	_, ok = Special(KeyEnter).Char()
	require.False(t, ok)

	d, ok := Rune('7').Digit()
	require.True(t, ok)
	require.Equal(t, 7, d)

	_, ok = Rune('x').Digit()
	require.False(t, ok)
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys("ci(<Esc><C-r><lt>")
	require.NoError(t, err)
	require.Equal(t, []Key{
		Rune('c'), Rune('i'), Rune('('),
		Special(KeyEsc), Ctrl('r'), Rune('<'),
	}, keys)
}

func TestParseKeys_Errors(t *testing.T) {
	_, err := ParseKeys("")
	require.ErrorIs(t, err, ErrEmptySpec)

	_, err = ParseKeys("d<Esc")
	require.ErrorIs(t, err, ErrUnmatchedBracket)

	_, err = ParseKeys("<X-a>")
	require.ErrorIs(t, err, ErrInvalidSpec)

	_, err = ParseKeys("<nope>")
	require.ErrorIs(t, err, ErrInvalidSpec)
}

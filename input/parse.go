package input

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// ParseKeys parses a key sequence written in vim notation: plain characters
// stand for themselves and bracketed names stand for special keys, for
// example "ciw<Esc>", "<C-r>", "3dd", "<lt>".
func ParseKeys(spec string) ([]Key, error) {
	if spec == "" {
		return nil, ErrEmptySpec
	}
	var out []Key
	rs := []rune(spec)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '<' {
			out = append(out, Rune(rs[i]))
			continue
		}
		j := i + 1
		for j < len(rs) && rs[j] != '>' {
			j++
		}
		if j >= len(rs) {
			return nil, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
		}
		k, err := parseNamed(string(rs[i+1 : j]))
		if err != nil {
			return nil, err
		}
		out = append(out, k)
		i = j
	}
	return out, nil
}

// MustParseKeys is ParseKeys for literals known to be valid.
func MustParseKeys(spec string) []Key {
	keys, err := ParseKeys(spec)
	if err != nil {
		panic(err)
	}
	return keys
}

func parseNamed(inner string) (Key, error) {
	parts := strings.Split(inner, "-")
	name := parts[len(parts)-1]
	var mods Mod
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "c":
			mods |= ModCtrl
		case "a", "m":
			mods |= ModAlt
		case "s":
			mods |= ModShift
		default:
			return Key{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	var k Key
	switch strings.ToLower(name) {
	case "cr", "enter", "return":
		k = Special(KeyEnter)
	case "esc", "escape":
		k = Special(KeyEsc)
	case "bs", "backspace":
		k = Special(KeyBackspace)
	case "del", "delete":
		k = Special(KeyDelete)
	case "tab":
		k = Special(KeyTab)
	case "left":
		k = Special(KeyLeft)
	case "right":
		k = Special(KeyRight)
	case "up":
		k = Special(KeyUp)
	case "down":
		k = Special(KeyDown)
	case "home":
		k = Special(KeyHome)
	case "end":
		k = Special(KeyEnd)
	case "pageup", "pgup":
		k = Special(KeyPgUp)
	case "pagedown", "pgdown":
		k = Special(KeyPgDown)
	case "space":
		k = Rune(' ')
	case "lt":
		k = Rune('<')
	case "gt":
		k = Rune('>')
	default:
		rs := []rune(name)
		if len(rs) != 1 {
			return Key{}, fmt.Errorf("%w: %q", ErrInvalidSpec, inner)
		}
		k = Rune(rs[0])
	}
	k.Mods = mods
	return k, nil
}

// Package input defines the abstract events the engine consumes: key presses
// (a symbol plus a modifier set) and pointer events on resolved terminal
// cells.
package input

import "strings"

// Code identifies a key. KeyRune events carry their character in Key.Rune.
type Code int

const (
	KeyNone Code = iota
	KeyRune
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
)

var codeNames = map[Code]string{
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyTab:       "tab",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
}

// Mod is a set of modifier keys.
type Mod uint8

const (
	ModCtrl Mod = 1 << iota
	ModAlt
	ModShift
)

func (m Mod) Has(o Mod) bool { return m&o != 0 }

// Key is one key press. Paste is set for a bracketed paste from the host; such
// keys insert their text literally and never trigger bindings.
type Key struct {
	Code  Code
	Rune  rune
	Mods  Mod
	Paste string
}

func Rune(r rune) Key { return Key{Code: KeyRune, Rune: r} }

func Ctrl(r rune) Key { return Key{Code: KeyRune, Rune: r, Mods: ModCtrl} }

func Special(c Code) Key { return Key{Code: c} }

func Paste(text string) Key { return Key{Paste: text} }

// IsPaste reports whether k is a bracketed paste.
func (k Key) IsPaste() bool { return k.Paste != "" }

// Char returns the printable character of k, if it has one. Shift does not
// count as a modifier for characters.
func (k Key) Char() (rune, bool) {
	if k.Code != KeyRune || k.Rune == 0 || k.Mods.Has(ModCtrl|ModAlt) {
		return 0, false
	}
	return k.Rune, true
}

// Digit returns the value of a plain digit key.
func (k Key) Digit() (int, bool) {
	r, ok := k.Char()
	if !ok || r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// String returns the canonical binding name: "a", "G", "ctrl+r", "esc",
// "shift+left".
func (k Key) String() string {
	if k.IsPaste() {
		return "paste"
	}
	var sb strings.Builder
	if k.Mods.Has(ModCtrl) {
		sb.WriteString("ctrl+")
	}
	if k.Mods.Has(ModAlt) {
		sb.WriteString("alt+")
	}
	if k.Code == KeyRune {
		sb.WriteRune(k.Rune)
		return sb.String()
	}
	if k.Mods.Has(ModShift) {
		sb.WriteString("shift+")
	}
	if name, ok := codeNames[k.Code]; ok {
		sb.WriteString(name)
	} else {
		sb.WriteString("none")
	}
	return sb.String()
}

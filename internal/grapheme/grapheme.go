package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Class is the lexical class used by word motions and word text objects.
type Class uint8

const (
	ClassSpace Class = iota
	ClassPunct
	ClassWord
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ClassOf classifies a cluster by its first rune. Letters, digits, marks and
// underscore are word characters; other non-space clusters are punctuation.
func ClassOf(cluster string) Class {
	if cluster == "" || IsSpace(cluster) {
		return ClassSpace
	}
	for _, r := range cluster {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
			return ClassWord
		}
		// Wide glyphs (CJK, emoji) behave like word characters in vim.
		if r >= 0x100 && !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return ClassWord
		}
		return ClassPunct
	}
	return ClassPunct
}

// Width returns the terminal cell width of a cluster. Tabs occupy tabWidth
// cells regardless of their position.
func Width(cluster string, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			return 1
		}
		return tabWidth
	}

	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Theme turns token types into lipgloss styles using a chroma style.
type Theme struct {
	style    *chroma.Style
	renderer *lipgloss.Renderer
	cache    map[chroma.TokenType]lipgloss.Style
}

// NewTheme returns the chroma style called name, or chroma's fallback style.
// r may be nil to use the default renderer.
func NewTheme(name string, r *lipgloss.Renderer) *Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Theme{
		style:    styles.Get(name),
		renderer: r,
		cache:    make(map[chroma.TokenType]lipgloss.Style),
	}
}

func (t *Theme) Name() string { return t.style.Name }

// Style returns the foreground and font attributes for tt. Backgrounds are
// left to the host.
func (t *Theme) Style(tt chroma.TokenType) lipgloss.Style {
	if st, ok := t.cache[tt]; ok {
		return st
	}
	e := t.style.Get(tt)
	st := t.renderer.NewStyle()
	if e.Colour.IsSet() {
		st = st.Foreground(lipgloss.Color(e.Colour.String()))
	}
	if e.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if e.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if e.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	t.cache[tt] = st
	return st
}

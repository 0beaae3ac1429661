package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/engine"
	"github.com/iw2rmb/vimkit/vim"
)

func TestUpdate_ModalEditing(t *testing.T) {
	m := New(Config{Engine: engine.Config{Text: "ab"}})

	m = typeKeys(t, m, "iX")
	if got := m.Engine().Mode(); got != vim.Insert {
		t.Fatalf("mode after i: got %v, want %v", got, vim.Insert)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.Engine().Text(); got != "Xab" {
		t.Fatalf("text after insert: got %q, want %q", got, "Xab")
	}
	if got := m.Engine().Cursor(); got != (buffer.Pos{Row: 0, Col: 0}) {
		t.Fatalf("cursor after esc: got %v, want %v", got, buffer.Pos{})
	}

	m = typeKeys(t, m, "u")
	if got := m.Engine().Text(); got != "ab" {
		t.Fatalf("text after undo: got %q, want %q", got, "ab")
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if got := m.Engine().Text(); got != "Xab" {
		t.Fatalf("text after redo: got %q, want %q", got, "Xab")
	}
}

func TestUpdate_LineDelete(t *testing.T) {
	m := New(Config{Engine: engine.Config{Text: "a\nb"}})
	m = typeKeys(t, m, "dd")
	if got := m.Engine().Text(); got != "b" {
		t.Fatalf("text after dd: got %q, want %q", got, "b")
	}
}

func TestUpdate_PasteInsertsLiterally(t *testing.T) {
	m := New(Config{Engine: engine.Config{Text: "ab"}})

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("dd"), Paste: true})
	if got := m.Engine().Text(); got != "ab" {
		t.Fatalf("paste in normal mode: got %q, want %q", got, "ab")
	}

	m = typeKeys(t, m, "i")
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("dd"), Paste: true})
	if got := m.Engine().Text(); got != "ddab" {
		t.Fatalf("paste in insert mode: got %q, want %q", got, "ddab")
	}
}

func TestUpdate_ClipboardPasteBinding(t *testing.T) {
	clip := &memClipboard{s: "x\r\ny"}
	m := New(Config{Engine: engine.Config{Text: "ab", Clipboard: clip}})

	m = typeKeys(t, m, "i")
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.Engine().Text(); got != "x\nyab" {
		t.Fatalf("text after clipboard paste: got %q, want %q", got, "x\nyab")
	}
}

func TestUpdate_YankReachesClipboard(t *testing.T) {
	clip := &memClipboard{}
	m := New(Config{Engine: engine.Config{Text: "one\ntwo", Clipboard: clip}})

	m = typeKeys(t, m, "yy")
	if clip.s != "one\n" {
		t.Fatalf("clipboard after yy: got %q, want %q", clip.s, "one\n")
	}
	m = typeKeys(t, m, "jp")
	if got := m.Engine().Text(); got != "one\ntwo\none" {
		t.Fatalf("text after p: got %q, want %q", got, "one\ntwo\none")
	}
}

func TestUpdate_ToggleLineNumbers(t *testing.T) {
	m := New(Config{Engine: engine.Config{Text: "ab"}})
	m = m.SetSize(10, 1)

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if !m.LineNumbers() {
		t.Fatalf("line numbers after toggle: got false, want true")
	}
	if got := stripANSI(m.View()); got[:4] != "1 ab" {
		t.Fatalf("view after toggle: got %q, want prefix %q", got, "1 ab")
	}
	if got := m.Engine().Text(); got != "ab" {
		t.Fatalf("toggle reached the engine: text %q", got)
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Engine: engine.Config{Text: "ab"}})
	m = m.Blur()
	m = typeKeys(t, m, "x")
	if got := m.Engine().Text(); got != "ab" {
		t.Fatalf("text after key while blurred: got %q, want %q", got, "ab")
	}
	m = m.Focus()
	m = typeKeys(t, m, "x")
	if got := m.Engine().Text(); got != "b" {
		t.Fatalf("text after key while focused: got %q, want %q", got, "b")
	}
}

func TestUpdate_FollowsEngineScroll(t *testing.T) {
	m := New(Config{Engine: engine.Config{Text: "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"}})
	m = m.SetSize(10, 3)

	m = typeKeys(t, m, "G")
	if got := m.ViewportState().TopRow; got != 7 {
		t.Fatalf("top row after G: got %d, want %d", got, 7)
	}
	m = typeKeys(t, m, "gg")
	if got := m.ViewportState().TopRow; got != 0 {
		t.Fatalf("top row after gg: got %d, want %d", got, 0)
	}
}

func TestUpdate_HostDrivenChangesAreRendered(t *testing.T) {
	m := New(Config{Engine: engine.Config{Text: "ab"}})
	m = m.SetSize(10, 1)
	m = m.Blur()

	m.Engine().SetText("zz")
	m, _ = m.Update(struct{}{})
	if got := stripANSI(m.View()); got[:2] != "zz" {
		t.Fatalf("view after host change: got %q", got)
	}
}

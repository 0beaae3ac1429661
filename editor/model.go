package editor

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/vimkit/buffer"
	"github.com/iw2rmb/vimkit/engine"
	"github.com/iw2rmb/vimkit/highlight"
	"github.com/iw2rmb/vimkit/vim"
)

// Model is a Bubble Tea component hosting one engine.Editor.
//
// Model is a value type but shares its engine between copies, as Bubble Tea
// models are replaced on every Update.
type Model struct {
	cfg Config
	ed  *engine.Editor
	hl  *highlight.Cache

	focused      bool
	showLineNums bool
	dragging     bool

	viewport viewport.Model
	logger   *slog.Logger

	lastRevision uint64
	lastCursor   buffer.Pos
	lastMode     vim.Mode
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	ed := engine.New(cfg.Engine)
	m := Model{
		cfg:          cfg,
		ed:           ed,
		focused:      true,
		showLineNums: cfg.ShowLineNums,
		viewport:     viewport.New(0, 0),
		logger:       cfg.Logger,
		lastRevision: ed.Revision(),
		lastCursor:   ed.Cursor(),
		lastMode:     ed.Mode(),
	}
	if cfg.Highlighter != nil {
		m.hl = highlight.NewCache(cfg.Highlighter, cfg.Logger)
	}
	m.rebuildContent()
	return m
}

// Engine returns the hosted editor. Hosts may drive it directly; the next
// Update picks up the changes.
func (m Model) Engine() *engine.Editor { return m.ed }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.ed.SetViewportHeight(m.visibleRowCount())

	m.rebuildContent()
	m.viewport.SetYOffset(m.ed.ScrollOffset())
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.dragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) LineNumbers() bool { return m.showLineNums }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		// The host may have driven the engine directly.
		m.sync()
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// sync re-renders after an event and follows the engine's scroll hint when
// the document, cursor or mode changed.
func (m *Model) sync() {
	m.rebuildContent()

	rev, cur, mode := m.ed.Revision(), m.ed.Cursor(), m.ed.Mode()
	if rev == m.lastRevision && cur == m.lastCursor && mode == m.lastMode {
		return
	}
	m.lastRevision, m.lastCursor, m.lastMode = rev, cur, mode
	m.viewport.SetYOffset(m.ed.ScrollOffset())
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.ed))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent(m.ed.Snapshot()))
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}

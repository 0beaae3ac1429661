package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/vimkit"
	"github.com/iw2rmb/vimkit/editor"
	"github.com/iw2rmb/vimkit/engine"
	"github.com/iw2rmb/vimkit/highlight"
	"github.com/iw2rmb/vimkit/register"
)

const sampleText = `package main

import "fmt"

// Normal mode: h j k l w b e 0 ^ $ gg G % ctrl+d ctrl+u
// Operators: d c y with motions, counts and text objects (ciw, di(, ya")
// Also: x D C J p P u ctrl+r i a A I o O v V / n N
func main() {
	greeting := "hello, world"
	for i := 0; i < 3; i++ {
		fmt.Println(i, greeting)
	}
}`

type quitKeys struct {
	Quit key.Binding
}

type model struct {
	editor editor.Model
	help   help.Model
	quit   quitKeys
}

func newModel(s settings, clip register.Clipboard, logger *slog.Logger) model {
	theme := highlight.NewTheme(s.Theme, nil)
	cfg := editor.Config{
		Engine: engine.Config{
			Text:         sampleText,
			TabWidth:     s.TabWidth,
			HistoryLimit: s.HistoryLimit,
			Clipboard:    clip,
		},
		ShowLineNums: s.LineNumbers,
		Style:        editor.DefaultStyle(),
		Highlighter:  highlight.Chroma,
		Language:     s.Language,
		Theme:        theme,
		Logger:       logger,
	}
	return model{
		editor: editor.New(cfg),
		help:   help.New(),
		quit: quitKeys{
			Quit: key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		},
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// One row is reserved for the status line.
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.quit.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	bindings := append([]key.Binding{m.quit.Quit}, editor.DefaultKeyMap().ShortHelp()...)
	status := strings.Join([]string{m.editor.Status(), m.help.ShortHelpView(bindings)}, "   ")
	return m.editor.View() + "\n" + status
}

func run(args []string) error {
	s, err := parseArgs(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if s.ShowVersion {
		_, err := os.Stdout.WriteString("vimkit-demo " + vimkit.Version().Tag() + "\n")
		return err
	}
	logger, closeLog, err := openLog(s.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	var clip register.Clipboard
	if s.SystemClipboard {
		clip = register.System()
	}
	m := newModel(s, clip, logger)
	logger.Info("starting", "language", s.Language, "theme", s.Theme, "system_clipboard", s.SystemClipboard)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

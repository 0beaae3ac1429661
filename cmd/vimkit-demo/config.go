package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
)

// settings is the demo configuration after merging the TOML file and flags.
type settings struct {
	TabWidth        int    `toml:"tab_width"`
	HistoryLimit    int    `toml:"history_limit"`
	LineNumbers     bool   `toml:"line_numbers"`
	SystemClipboard bool   `toml:"system_clipboard"`
	Language        string `toml:"language"`
	Theme           string `toml:"theme"`

	LogPath     string `toml:"-"`
	ShowVersion bool   `toml:"-"`
}

func defaultSettings() settings {
	return settings{
		TabWidth:    4,
		LineNumbers: true,
		Language:    "go",
		Theme:       "monokai",
	}
}

// loadSettings reads the optional TOML file named by path over the defaults.
// Unknown keys are rejected.
func loadSettings(path string) (settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return s, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	return s, nil
}

// parseArgs loads the config file named by -config and applies the flags the
// user set on top of it.
func parseArgs(args []string, stderr io.Writer) (settings, error) {
	fs := flag.NewFlagSet("vimkit-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML config file")
	logPath := fs.String("log", "", "write JSON debug logs to `file`")
	tabWidth := fs.Int("tab-width", 0, "display width of a tab")
	historyLimit := fs.Int("history-limit", 0, "maximum undo depth (negative disables undo)")
	lineNumbers := fs.Bool("line-numbers", false, "show line numbers")
	systemClipboard := fs.Bool("system-clipboard", false, "mirror yanks to the system clipboard")
	language := fs.String("language", "", "chroma lexer for highlighting")
	theme := fs.String("theme", "", "chroma style for highlighting")
	showVersion := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return settings{}, err
	}

	s, err := loadSettings(*configPath)
	if err != nil {
		return settings{}, err
	}
	s.LogPath = *logPath
	s.ShowVersion = *showVersion
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tab-width":
			s.TabWidth = *tabWidth
		case "history-limit":
			s.HistoryLimit = *historyLimit
		case "line-numbers":
			s.LineNumbers = *lineNumbers
		case "system-clipboard":
			s.SystemClipboard = *systemClipboard
		case "language":
			s.Language = *language
		case "theme":
			s.Theme = *theme
		}
	})
	return s, nil
}

// openLog returns a JSON logger writing to path, or a discarding logger when
// path is empty. The terminal belongs to the TUI, so logs never go there.
func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

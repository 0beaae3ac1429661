package register

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned by the system clipboard when the
// platform has no clipboard utility.
var ErrClipboardUnavailable = errors.New("system clipboard unavailable")

type systemClipboard struct{}

// System returns a Clipboard backed by the operating system clipboard.
func System() Clipboard { return systemClipboard{} }

func (systemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnavailable
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read system clipboard: %w", err)
	}
	return s, nil
}

func (systemClipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

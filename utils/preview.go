package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
)

// RenderSwiftFile prints a staged Swift file to w with terminal syntax
// highlighting using the configured theme.
func RenderSwiftFile(w io.Writer, path string, theme string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := quick.Highlight(w, string(content), "swift", "terminal256", theme); err != nil {
		return fmt.Errorf("failed to highlight %s: %w", path, err)
	}

	return nil
}

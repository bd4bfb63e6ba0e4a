// Package writer persists Markdown text to disk.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write saves text to {outputDir}/{filename}.md, creating parent
// directories as needed and overwriting any existing file. It returns the
// path of the written file.
func Write(text, filename, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outputDir, filename+".md")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// Package output writes conversion results: either streamed to an io.Writer
// (normally stdout) or written to a file via a temporary file and atomic
// rename, so a watch-mode rewrite never leaves a half-written file behind.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Render joins output lines into file content, one line each, with a
// trailing newline when there is anything to write.
func Render(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// WriteLines writes the rendered lines to w.
func WriteLines(w io.Writer, lines []string) error {
	if _, err := w.Write(Render(lines)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// WriteFile atomically replaces the file at path with the rendered lines.
func WriteFile(path string, lines []string) error {
	return WriteRaw(path, Render(lines), 0o644)
}

// WriteRaw atomically replaces the file at path with data. A temp file is
// created in the target directory, written, synced, and renamed over path;
// on failure the temp file is removed.
func WriteRaw(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := f.Name()
	var success bool
	defer func() {
		if !success {
			os.Remove(tmpName)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	success = true
	return nil
}

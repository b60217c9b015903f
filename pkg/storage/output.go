// Package storage writes generated documentation artifacts to disk.
// All writes overwrite existing files, which keeps repeated runs
// idempotent; stale files from renamed or removed items are not pruned.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CollectionFileName is the name under which the raw collection document
// is persisted inside the output directory.
const CollectionFileName = "collection.json"

// EnsureDir creates a directory (and any parents) if it does not exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// WriteDoc writes one generated document, creating its parent directory
// first. An existing file of the same name is overwritten.
func WriteDoc(path string, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// SaveCollection persists the raw collection document verbatim as
// indented JSON at <dir>/collection.json.
func SaveCollection(dir string, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format collection document: %w", err)
	}
	buf.WriteByte('\n')
	return WriteDoc(filepath.Join(dir, CollectionFileName), buf.String())
}

// ListDocs lists all generated Markdown files under baseDir, as paths
// relative to it.
func ListDocs(baseDir string) ([]string, error) {
	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	var files []string
	err := filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".md") {
			relPath, _ := filepath.Rel(baseDir, path)
			files = append(files, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list docs: %w", err)
	}

	return files, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source resolves the paths written in placeholders to file content.
package source

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileResolver reads sources from disk relative to Root. An empty Root
// means the current directory.
type FileResolver struct {
	Root string
}

// Read joins path with the root and returns the file's content. Each call
// opens and closes the file; nothing is cached.
func (r FileResolver) Read(path string) (string, error) {
	full := r.Path(path)
	data, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", full, err)
	}
	return string(data), nil
}

// Path returns the on-disk location of a placeholder path.
func (r FileResolver) Path(path string) string {
	return filepath.Join(r.Root, path)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest loads the YAML file listing documents for batch baking.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/md-bakery/pkg/types"
)

// DefaultFile is the manifest name looked up when none is given.
const DefaultFile = "md-bakery.yaml"

// Load reads the manifest at path, validates it and resolves every relative
// path against the manifest's directory. A document without a root inherits
// the manifest root; with neither, sources resolve from the manifest
// directory itself.
func Load(path string) (*types.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	Resolve(m, filepath.Dir(path))
	if err := checkOverwrites(m); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates manifest YAML without touching paths.
func Parse(data []byte) (*types.Manifest, error) {
	var m types.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if len(m.Documents) == 0 {
		return nil, fmt.Errorf("no documents listed")
	}
	for i, d := range m.Documents {
		if d.Input == "" {
			return nil, fmt.Errorf("document %d: input is required", i+1)
		}
		if d.Output == "" {
			return nil, fmt.Errorf("document %d (%s): output is required", i+1, d.Input)
		}
	}
	if err := checkOverwrites(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// checkOverwrites rejects documents whose output would replace their own
// template. Paths are compared cleaned, so run it again after Resolve.
func checkOverwrites(m *types.Manifest) error {
	for i, d := range m.Documents {
		if filepath.Clean(d.Input) == filepath.Clean(d.Output) {
			return fmt.Errorf("document %d (%s): output must differ from input", i+1, d.Input)
		}
	}
	return nil
}

// Resolve rewrites the manifest's relative paths to be relative to base.
func Resolve(m *types.Manifest, base string) {
	m.Root = ResolvePath(base, m.Root)
	for i := range m.Documents {
		d := &m.Documents[i]
		d.Input = ResolvePath(base, d.Input)
		d.Output = ResolvePath(base, d.Output)
		if d.Root == "" {
			d.Root = m.Root
		} else {
			d.Root = ResolvePath(base, d.Root)
		}
	}
}

// ResolvePath returns p unchanged when absolute, else joined onto base.
func ResolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

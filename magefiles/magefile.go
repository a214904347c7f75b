//go:build mage

// Package main contains Mage build targets for md-bakery developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/md-bakery/internal/document"
	"github.com/pdiddy/md-bakery/internal/manifest"
)

const (
	binDir  = "bin"
	binName = "md-bakery"
	cmdPkg  = "./cmd/md-bakery"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Docs bakes every document listed in md-bakery.yaml.
func Docs() error {
	m, err := manifest.Load(manifest.DefaultFile)
	if err != nil {
		return err
	}
	result := document.BakeBatch(m, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed baking", result.Failed)
	}
	return nil
}

// CheckDocs fails when a baked document is out of date.
func CheckDocs() error {
	m, err := manifest.Load(manifest.DefaultFile)
	if err != nil {
		return err
	}
	result := document.CheckBatch(m, os.Stdout)
	if result.HasFailures() || result.Stale > 0 {
		return fmt.Errorf("%d stale, %d failed", result.Stale, result.Failed)
	}
	return nil
}

// All runs the tests, checks the docs and builds the binary.
func All() {
	mg.SerialDeps(Test, CheckDocs, Build)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document reads Markdown templates, bakes them and writes the
// result. Output is written to a temporary file next to the destination and
// renamed into place only after the whole bake succeeded.
package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/pdiddy/md-bakery/internal/bakery"
	"github.com/pdiddy/md-bakery/internal/source"
	"github.com/pdiddy/md-bakery/pkg/types"
)

var (
	bakedLabel  = color.New(color.FgGreen).SprintFunc()
	staleLabel  = color.New(color.FgYellow).SprintFunc()
	failedLabel = color.New(color.FgRed, color.Bold).SprintFunc()
)

// ReadInput returns the content of the template at path.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", bakery.ErrInputRead, path, err)
	}
	return string(data), nil
}

// WriteOutput replaces the file at path with text. The content goes to a
// temporary file in the same directory first, so a failed write never
// leaves a truncated document behind.
func WriteOutput(path, text string) error {
	if err := writeAtomic(path, text); err != nil {
		return fmt.Errorf("%w: %s: %w", bakery.ErrOutputWrite, path, err)
	}
	return nil
}

// writeAtomic writes text through a temporary file renamed over path. An
// existing output keeps its permissions, and a symlinked output is updated
// at its target so the link survives. New files get 0o644.
func writeAtomic(path, text string) error {
	target, mode := path, os.FileMode(0o644)
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
		if info, err := os.Stat(target); err == nil {
			mode = info.Mode().Perm()
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.WriteString(tmp, text); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

// Render reads the template named by cfg and bakes it without writing
// anything. Notices from the engine go to notices (nil discards them).
func Render(cfg types.BakeConfig, notices io.Writer) (bakery.Result, error) {
	engine, err := bakery.New(source.FileResolver{Root: cfg.Root}, notices)
	if err != nil {
		return bakery.Result{}, err
	}
	doc, err := ReadInput(cfg.Input)
	if err != nil {
		return bakery.Result{}, err
	}
	return engine.Bake(doc)
}

// Bake renders the template named by cfg and writes the output. Nothing is
// written unless every placeholder resolved.
func Bake(cfg types.BakeConfig, notices io.Writer) (bakery.Result, error) {
	res, err := Render(cfg, notices)
	if err != nil {
		return bakery.Result{}, err
	}
	if err := WriteOutput(cfg.Output, res.Text); err != nil {
		return bakery.Result{}, err
	}
	return res, nil
}

// Check renders the template named by cfg and compares it with the existing
// output. A missing output is stale; any other read failure is an error.
func Check(cfg types.BakeConfig, notices io.Writer) (types.DocumentStatus, error) {
	res, err := Render(cfg, notices)
	if err != nil {
		return types.StatusFailed, err
	}
	current, err := os.ReadFile(cfg.Output)
	if err != nil {
		if os.IsNotExist(err) {
			return types.StatusStale, nil
		}
		return types.StatusFailed, fmt.Errorf("reading %s: %w", cfg.Output, err)
	}
	if string(current) != res.Text {
		return types.StatusStale, nil
	}
	return types.StatusCurrent, nil
}

// BakeBatch bakes every document in m, printing one status line per
// document to w followed by a summary. A failing document does not stop the
// others; its output is left untouched.
func BakeBatch(m *types.Manifest, w io.Writer) types.BatchResult {
	var result types.BatchResult
	for _, doc := range m.Documents {
		res, err := Bake(doc, w)
		if err != nil {
			fmt.Fprintf(w, "%s  %s (%v)\n", failedLabel("failed:"), doc.Input, err)
			result.Add(types.StatusFailed)
			continue
		}
		fmt.Fprintf(w, "%s   %s -> %s (%s)\n", bakedLabel("baked:"), doc.Input, doc.Output, Summary(res))
		result.Add(types.StatusBaked)
	}
	fmt.Fprintf(w, "\nBatch summary: %d baked, %d failed (total: %d)\n",
		result.Baked, result.Failed, result.Total())
	return result
}

// CheckBatch checks every document in m, printing one status line per
// document to w followed by a summary.
func CheckBatch(m *types.Manifest, w io.Writer) types.BatchResult {
	var result types.BatchResult
	for _, doc := range m.Documents {
		status, err := Check(doc, w)
		switch {
		case err != nil:
			fmt.Fprintf(w, "%s  %s (%v)\n", failedLabel("failed:"), doc.Input, err)
		case status == types.StatusStale:
			fmt.Fprintf(w, "%s   %s (run bake to update %s)\n", staleLabel("stale:"), doc.Input, doc.Output)
		default:
			fmt.Fprintf(w, "current: %s\n", doc.Output)
		}
		result.Add(status)
	}
	fmt.Fprintf(w, "\nCheck summary: %d current, %d stale, %d failed (total: %d)\n",
		result.Current, result.Stale, result.Failed, result.Total())
	return result
}

// Summary describes a bake result for status lines.
func Summary(res bakery.Result) string {
	s := fmt.Sprintf("%d placeholder%s", len(res.Placeholders), plural(len(res.Placeholders)))
	if res.Escapes > 0 {
		s += fmt.Sprintf(", %d escape%s", res.Escapes, plural(res.Escapes))
	}
	return s
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/md-bakery/internal/bakery"
	"github.com/pdiddy/md-bakery/pkg/types"
)

// writeFile is a test helper that creates a file (and its directory) with
// the given content.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const greetSource = "# [md-bakery: begin @greet]\nprint(\"hi\")\n# [md-bakery: end]\n"

func TestBake(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/greet.py", greetSource)
	input := writeFile(t, dir, "README.tpl.md", "# Demo\n\n```python:source@greet greet.py    ```\n\nEscaped: ```python:!source@greet greet.py ```\n")
	output := filepath.Join(dir, "README.md")

	res, err := Bake(types.BakeConfig{Input: input, Output: output, Root: filepath.Join(dir, "src")}, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	want := "# Demo\n\n```python\nprint(\"hi\")\n```\n\nEscaped: ```python:source@greet greet.py ```\n"
	assert.Equal(t, want, string(data))
	assert.Equal(t, want, res.Text)
	assert.Len(t, res.Placeholders, 1)
	assert.Equal(t, 1, res.Escapes)

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestBake_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string) types.BakeConfig
		wantErr error
		wantMsg string
	}{
		{
			name: "missing input",
			setup: func(t *testing.T, dir string) types.BakeConfig {
				return types.BakeConfig{Input: filepath.Join(dir, "nope.md"), Output: filepath.Join(dir, "out.md")}
			},
			wantErr: bakery.ErrInputRead,
			wantMsg: "nope.md",
		},
		{
			name: "missing source",
			setup: func(t *testing.T, dir string) types.BakeConfig {
				in := writeFile(t, dir, "in.md", "```go:source gone.go ```\n")
				return types.BakeConfig{Input: in, Output: filepath.Join(dir, "out.md"), Root: dir}
			},
			wantErr: bakery.ErrSourceRead,
			wantMsg: "gone.go",
		},
		{
			name: "unwritable output",
			setup: func(t *testing.T, dir string) types.BakeConfig {
				in := writeFile(t, dir, "in.md", "plain\n")
				return types.BakeConfig{Input: in, Output: filepath.Join(dir, "missing-dir", "out.md")}
			},
			wantErr: bakery.ErrOutputWrite,
			wantMsg: "out.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := tt.setup(t, dir)

			_, err := Bake(cfg, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "error %v should wrap %v", err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestBake_FailureKeepsExistingOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.md", "```go:source ok.go ```\n```go:source gone.go ```\n")
	writeFile(t, dir, "ok.go", "package ok\n")
	output := writeFile(t, dir, "out.md", "previous\n")

	_, err := Bake(types.BakeConfig{Input: input, Output: output, Root: dir}, nil)
	require.Error(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temporary file %s left behind", e.Name())
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "greet.py", greetSource)
	input := writeFile(t, dir, "in.md", "```python:source@greet greet.py ```\n")
	output := filepath.Join(dir, "out.md")
	cfg := types.BakeConfig{Input: input, Output: output, Root: dir}

	status, err := Check(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, types.StatusStale, status, "missing output is stale")

	_, err = Bake(cfg, nil)
	require.NoError(t, err)
	status, err = Check(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCurrent, status)

	writeFile(t, dir, "greet.py", "# [md-bakery: begin @greet]\nprint(\"bye\")\n# [md-bakery: end]\n")
	status, err = Check(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, types.StatusStale, status, "changed source makes output stale")
}

func TestBakeBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "greet.py", greetSource)
	good := writeFile(t, dir, "a.md", "```python:source@greet greet.py ```\n")
	bad := writeFile(t, dir, "b.md", "```python:source missing.py ```\n")

	m := &types.Manifest{Documents: []types.BakeConfig{
		{Input: good, Output: filepath.Join(dir, "a.out.md"), Root: dir},
		{Input: bad, Output: filepath.Join(dir, "b.out.md"), Root: dir},
	}}

	var log bytes.Buffer
	result := BakeBatch(m, &log)

	assert.Equal(t, 1, result.Baked)
	assert.Equal(t, 1, result.Failed)
	assert.True(t, result.HasFailures())
	assert.Equal(t, 2, result.Total())

	out := log.String()
	assert.Contains(t, out, "baked:")
	assert.Contains(t, out, "1 placeholder)")
	assert.Contains(t, out, "failed:")
	assert.Contains(t, out, "Batch summary: 1 baked, 1 failed (total: 2)")

	_, err := os.Stat(filepath.Join(dir, "b.out.md"))
	assert.True(t, os.IsNotExist(err), "failed document must not be written")
}

func TestCheckBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "greet.py", greetSource)
	input := writeFile(t, dir, "a.md", "```python:source@greet greet.py ```\n")
	fresh := types.BakeConfig{Input: input, Output: filepath.Join(dir, "fresh.md"), Root: dir}
	_, err := Bake(fresh, nil)
	require.NoError(t, err)

	m := &types.Manifest{Documents: []types.BakeConfig{
		fresh,
		{Input: input, Output: filepath.Join(dir, "never-baked.md"), Root: dir},
		{Input: filepath.Join(dir, "none.md"), Output: filepath.Join(dir, "x.md"), Root: dir},
	}}

	var log bytes.Buffer
	result := CheckBatch(m, &log)

	assert.Equal(t, types.BatchResult{Current: 1, Stale: 1, Failed: 1}, result)
	assert.Contains(t, log.String(), "Check summary: 1 current, 1 stale, 1 failed (total: 3)")
}

func TestSummary(t *testing.T) {
	tests := []struct {
		res  bakery.Result
		want string
	}{
		{bakery.Result{}, "0 placeholders"},
		{bakery.Result{Placeholders: make([]bakery.Placeholder, 1)}, "1 placeholder"},
		{bakery.Result{Placeholders: make([]bakery.Placeholder, 2), Escapes: 1}, "2 placeholders, 1 escape"},
		{bakery.Result{Escapes: 3}, "0 placeholders, 3 escapes"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Summary(tt.res))
	}
}

func TestWriteOutput(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, dir string) (output, target string)
		wantMode os.FileMode
		wantLink bool
	}{
		{
			name: "new file",
			setup: func(t *testing.T, dir string) (string, string) {
				p := filepath.Join(dir, "out.md")
				return p, p
			},
			wantMode: 0o644,
		},
		{
			name: "existing file keeps its mode",
			setup: func(t *testing.T, dir string) (string, string) {
				p := writeFile(t, dir, "out.md", "old\n")
				require.NoError(t, os.Chmod(p, 0o600))
				return p, p
			},
			wantMode: 0o600,
		},
		{
			name: "symlinked output updates the target",
			setup: func(t *testing.T, dir string) (string, string) {
				target := writeFile(t, dir, "real/out.md", "old\n")
				require.NoError(t, os.Chmod(target, 0o640))
				link := filepath.Join(dir, "out.md")
				require.NoError(t, os.Symlink(target, link))
				return link, target
			},
			wantMode: 0o640,
			wantLink: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			output, target := tt.setup(t, dir)

			require.NoError(t, WriteOutput(output, "new\n"))

			data, err := os.ReadFile(target)
			require.NoError(t, err)
			assert.Equal(t, "new\n", string(data))

			info, err := os.Stat(target)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, info.Mode().Perm())

			linfo, err := os.Lstat(output)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLink, linfo.Mode()&os.ModeSymlink != 0)
		})
	}
}

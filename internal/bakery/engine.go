// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bakery inlines source-code fragments into Markdown documents.
//
// A placeholder fence names a source file and optionally a region inside it:
//
//	```rust:source@snippet-a path/to/file.rs    ```
//
// Bake replaces each placeholder with a literal code block holding the
// extracted, reindented lines, then strips the "!" from escaped placeholders
// (```rust:!source ...) so the syntax itself can be documented. Substitution
// is a single pass: inserted content is never rescanned.
package bakery

import (
	"fmt"
	"io"
	"strings"
)

// Resolver returns the text of a source file addressed by the path written
// in a placeholder. Implementations resolve the path against their root.
type Resolver interface {
	Read(path string) (string, error)
}

// Placeholder is one matched source fence.
type Placeholder struct {
	Indent string
	Lang   string
	Region string // "" when the fence names no region
	Path   string
}

// Result is the outcome of baking one document.
type Result struct {
	Text         string
	Placeholders []Placeholder
	Escapes      int
}

// Engine runs the substitution and escape passes over document text.
// It holds no state between calls.
type Engine struct {
	resolver Resolver
	patterns *patterns
	notices  io.Writer
}

// New compiles the built-in patterns and returns an Engine reading sources
// through r. Notices (such as a requested region falling back to the whole
// file) are written to notices; nil discards them.
func New(r Resolver, notices io.Writer) (*Engine, error) {
	p, err := compilePatterns()
	if err != nil {
		return nil, err
	}
	if notices == nil {
		notices = io.Discard
	}
	return &Engine{resolver: r, patterns: p, notices: notices}, nil
}

// Bake substitutes every placeholder in doc and then resolves escapes.
// Any source read failure aborts the whole bake.
func (e *Engine) Bake(doc string) (Result, error) {
	text, placeholders, err := e.Substitute(doc)
	if err != nil {
		return Result{}, err
	}
	text, escapes := e.ResolveEscapes(text)
	return Result{Text: text, Placeholders: placeholders, Escapes: escapes}, nil
}

// Substitute replaces every placeholder fence in doc, in order of
// appearance, with a literal code block. It returns the rewritten text and
// the placeholders it expanded.
func (e *Engine) Substitute(doc string) (string, []Placeholder, error) {
	matches := e.patterns.placeholder.FindAllStringSubmatchIndex(doc, -1)
	if len(matches) == 0 {
		return doc, nil, nil
	}

	var (
		b     strings.Builder
		last  int
		found = make([]Placeholder, 0, len(matches))
	)
	b.Grow(len(doc))
	for _, m := range matches {
		ph := placeholderAt(doc, m)
		block, err := e.Expand(ph)
		if err != nil {
			return "", nil, err
		}
		b.WriteString(doc[last:m[0]])
		b.WriteString(block)
		last = m[1]
		found = append(found, ph)
	}
	b.WriteString(doc[last:])
	return b.String(), found, nil
}

// placeholderAt builds a Placeholder from submatch indices m over doc.
func placeholderAt(doc string, m []int) Placeholder {
	group := func(i int) string {
		if m[2*i] < 0 {
			return ""
		}
		return doc[m[2*i]:m[2*i+1]]
	}
	return Placeholder{
		Indent: group(1),
		Lang:   group(2),
		Region: group(3),
		Path:   strings.TrimSpace(group(4)),
	}
}

// Expand reads the source behind ph and renders the replacement fence.
func (e *Engine) Expand(ph Placeholder) (string, error) {
	content, err := e.resolver.Read(ph.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrSourceRead, ph.Path, err)
	}

	lines, found := e.ExtractRegion(SplitLines(content), ph.Region)
	if !found && ph.Region != "" {
		fmt.Fprintf(e.notices, "notice: region %q not found in %s, using whole file\n", ph.Region, ph.Path)
	}
	body := strings.Join(Reindent(lines, ph.Indent, !found), "\n")

	var b strings.Builder
	b.WriteString(ph.Indent)
	b.WriteString("```")
	b.WriteString(ph.Lang)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(ph.Indent)
	b.WriteString("```")
	return b.String(), nil
}

// ResolveEscapes removes the "!" from every escaped placeholder opener and
// reports how many were rewritten. Running it again changes nothing.
func (e *Engine) ResolveEscapes(text string) (string, int) {
	n := len(e.patterns.escape.FindAllStringIndex(text, -1))
	if n == 0 {
		return text, 0
	}
	return e.patterns.escape.ReplaceAllString(text, "${1}${2}"), n
}

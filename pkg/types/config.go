// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BakeConfig holds the settings for baking one document.
type BakeConfig struct {
	// Input is the Markdown template containing placeholders.
	Input string `json:"input" yaml:"input"`

	// Output is the path the baked document is written to.
	Output string `json:"output" yaml:"output"`

	// Root is the directory placeholder paths are resolved against.
	// Empty means the current directory.
	Root string `json:"root,omitempty" yaml:"root,omitempty"`
}

// Manifest lists documents baked together by the batch and check commands.
// It is read from a YAML file such as:
//
//	root: examples
//	documents:
//	  - input: README.tpl.md
//	    output: README.md
//	  - input: docs/guide.tpl.md
//	    output: docs/guide.md
//	    root: src
type Manifest struct {
	// Root is the default source root for documents that set none.
	Root string `json:"root,omitempty" yaml:"root,omitempty"`

	// Documents are baked in the listed order.
	Documents []BakeConfig `json:"documents" yaml:"documents"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bakery

import "strings"

// Reindent strips the whitespace prefix common to all non-empty lines and
// prepends indent to every line, so relative indentation survives.
//
// When wholeFile is set the lines came from the no-region fallback and indent
// is prepended once before the common prefix is computed, then again after
// stripping. A line that does not start with the common prefix (only empty
// lines can) is kept as is.
func Reindent(lines []string, indent string, wholeFile bool) []string {
	if wholeFile {
		shifted := make([]string, len(lines))
		for i, line := range lines {
			shifted[i] = indent + line
		}
		lines = shifted
	}

	common := CommonPrefix(lines)
	out := make([]string, len(lines))
	for i, line := range lines {
		if stripped, ok := strings.CutPrefix(line, common); ok {
			line = stripped
		}
		out[i] = indent + line
	}
	return out
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bakery

import (
	"strings"
	"unicode"
)

// PrefixOf returns the leading run of whitespace characters in line.
func PrefixOf(line string) string {
	end := strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) })
	if end < 0 {
		return line
	}
	return line[:end]
}

// CommonPrefix returns the longest whitespace prefix shared by every
// non-empty line. Prefixes are intersected rune by rune, so "  " and "\t "
// share nothing. Empty lines do not take part.
func CommonPrefix(lines []string) string {
	var (
		common string
		seen   bool
	)
	for _, line := range lines {
		if line == "" {
			continue
		}
		prefix := PrefixOf(line)
		if !seen {
			common, seen = prefix, true
			continue
		}
		common = sharedPrefix(common, prefix)
	}
	return common
}

// sharedPrefix returns the longest rune-wise common prefix of a and b.
func sharedPrefix(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[n] == rb[n] {
		n++
	}
	return string(ra[:n])
}

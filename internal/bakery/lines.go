// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bakery

import "strings"

// SplitLines splits text into lines. A trailing "\r" is removed from each
// line and a final newline does not produce an empty trailing line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bakery

import (
	"fmt"
	"regexp"
)

const (
	// placeholderExpr matches a source placeholder fence up to and including
	// its closing fence: indent, language, optional @region and the path.
	placeholderExpr = "([\\t ]*)```\\s*(\\w+)\\s*:\\s*source(?:\\s*@\\s*(\\S+))?\\s+(\\S+)\\s+```"

	// escapeExpr matches an escaped placeholder opener. Group 1 is everything
	// before the "!" and group 2 the rest of the opener up to the line end.
	escapeExpr = "(```\\s*\\w+\\s*:\\s*)!(\\s*source(?:\\s*@\\s*\\S+)?[\\t ]*)"

	// beginExpr matches a region begin marker such as "// [md-bakery: begin @name]".
	// The comment leader is not part of the match.
	beginExpr = `\[\s*md-bakery\s*:\s*begin(?:\s*@\s*([^\s\]]+))?\s*\]`

	// endExpr matches a region end marker such as "# [md-bakery: end]".
	endExpr = `\[\s*md-bakery\s*:\s*end\s*\]`
)

// patterns holds the compiled built-in expressions.
type patterns struct {
	placeholder *regexp.Regexp
	escape      *regexp.Regexp
	begin       *regexp.Regexp
	end         *regexp.Regexp
}

// compilePatterns compiles every built-in expression. A failure wraps
// ErrPattern and names the offending expression.
func compilePatterns() (*patterns, error) {
	var p patterns
	for _, c := range []struct {
		name string
		expr string
		dst  **regexp.Regexp
	}{
		{"placeholder", placeholderExpr, &p.placeholder},
		{"escape", escapeExpr, &p.escape},
		{"begin", beginExpr, &p.begin},
		{"end", endExpr, &p.end},
	} {
		re, err := regexp.Compile(c.expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s pattern %q: %w", ErrPattern, c.name, c.expr, err)
		}
		*c.dst = re
	}
	return &p, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bakery

import "errors"

// Error classes. Every failure returned by this module wraps exactly one of
// them, so callers can classify with errors.Is while the message still names
// the failing path and the underlying cause. All of them abort the run.
var (
	// ErrPattern reports that a built-in pattern failed to compile.
	ErrPattern = errors.New("pattern compilation")

	// ErrInputRead reports that the input document could not be read.
	ErrInputRead = errors.New("input read")

	// ErrSourceRead reports that a source file referenced by a placeholder
	// could not be read.
	ErrSourceRead = errors.New("source read")

	// ErrOutputWrite reports that the output document could not be written.
	ErrOutputWrite = errors.New("output write")
)

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocumentStatus is the outcome of processing one document.
type DocumentStatus string

const (
	// StatusBaked means the output was written.
	StatusBaked DocumentStatus = "baked"
	// StatusCurrent means the existing output matches a fresh bake.
	StatusCurrent DocumentStatus = "current"
	// StatusStale means the existing output is missing or differs from a fresh bake.
	StatusStale DocumentStatus = "stale"
	// StatusFailed means the document could not be processed.
	StatusFailed DocumentStatus = "failed"
)

// BatchResult holds the outcome of a manifest run.
type BatchResult struct {
	Baked   int
	Current int
	Stale   int
	Failed  int
}

// Total returns the number of documents processed.
func (r BatchResult) Total() int {
	return r.Baked + r.Current + r.Stale + r.Failed
}

// HasFailures reports whether any document failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Add counts one document with the given status.
func (r *BatchResult) Add(s DocumentStatus) {
	switch s {
	case StatusBaked:
		r.Baked++
	case StatusCurrent:
		r.Current++
	case StatusStale:
		r.Stale++
	case StatusFailed:
		r.Failed++
	}
}

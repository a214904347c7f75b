// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bakery

// scanState is the position of the region scanner relative to the
// requested region.
type scanState int

const (
	searching scanState = iota
	recording
)

// beginName reports whether line carries a begin marker and, if so, the
// region name it declares ("" for an unnamed marker).
func (p *patterns) beginName(line string) (string, bool) {
	m := p.begin.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// hasRegion reports whether any begin marker in lines declares name.
func (p *patterns) hasRegion(lines []string, name string) bool {
	for _, line := range lines {
		if n, ok := p.beginName(line); ok && n == name {
			return true
		}
	}
	return false
}

// ExtractRegion returns the lines strictly between the first begin marker
// declaring name and the next end marker. Names compare exactly, so an
// unnamed marker pair only serves an unnamed request. When no begin marker
// declares name, the whole of lines is returned and found is false.
//
// Marker lines never appear in the result. Other begin markers met while
// recording are kept as content. Only the first matching region is honored.
func (e *Engine) ExtractRegion(lines []string, name string) (region []string, found bool) {
	if !e.patterns.hasRegion(lines, name) {
		return lines, false
	}

	region = []string{}
	state := searching
	for _, line := range lines {
		switch state {
		case searching:
			if n, ok := e.patterns.beginName(line); ok && n == name {
				state = recording
			}
		case recording:
			if e.patterns.end.MatchString(line) {
				return region, true
			}
			region = append(region, line)
		}
	}
	return region, true
}

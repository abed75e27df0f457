// Package tracker owns the concatenation of all source text loaded for a
// parse and resolves byte offsets in that pool back to (file, line, column)
// locations. It plays the role of the "source_tracker" collaborator the
// language core is built against: the lexer and parser never hold their own
// line/column counters, they borrow spans from here and ask the tracker to
// resolve them lazily, only when an error needs to be reported.
package tracker

import "sort"

// Span is a half-open byte range into the tracker's pool. Spans do not own
// text; they borrow from the Tracker and are only meaningful while it lives.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool { return s.Start == s.End }

// Location is a resolved, human-facing source position.
type Location struct {
	File   string
	Line   int // 1-based
	Column int // 1-based, 0 if unknown
}

// region describes one contiguous piece of the pool: either real source
// text read from a file/string, or a buffer built by a StringBuilder out of
// decoded escape sequences, which carries attributions back to the spans
// of source text each decoded byte range came from.
type region struct {
	name         string
	start, end   int // absolute offsets into pool
	lineStarts   []int
	attributions []attribution // empty for plain source regions
}

type attribution struct {
	localStart, localEnd int // relative to region.start
	from                  Span
}

// Tracker owns the pool of all loaded source text.
type Tracker struct {
	pool    []byte
	regions []region // sorted by start, non-overlapping
}

// New creates an empty Tracker.
func New() *Tracker {
	return &Tracker{}
}

// AddString appends in-memory content to the pool under the given name and
// returns a span over it. Used for inline expressions (the CLI's -e flag,
// and tests) where there is no file to read.
func (t *Tracker) AddString(name, content string) Span {
	return t.addRegion(name, content, nil)
}

func (t *Tracker) addRegion(name, content string, attributions []attribution) Span {
	start := len(t.pool)
	t.pool = append(t.pool, content...)
	end := len(t.pool)

	lineStarts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	t.regions = append(t.regions, region{
		name:         name,
		start:        start,
		end:          end,
		lineStarts:   lineStarts,
		attributions: attributions,
	})
	return Span{Start: start, End: end}
}

// Slice returns the bytes the span covers, borrowed from the pool.
func (t *Tracker) Slice(s Span) string {
	return string(t.pool[s.Start:s.End])
}

// findRegion returns the region containing the absolute offset p, or nil.
// p == a region's end is valid (it is how an end-of-file caret, an
// unterminated string, or a dangling trailing operator gets reported) and
// resolves to that region rather than falling off the end of the pool,
// unless a plain source region starts at p, in which case p resolves to
// that later region.
func (t *Tracker) findRegion(p int) *region {
	i := sort.Search(len(t.regions), func(i int) bool {
		return t.regions[i].end >= p
	})
	if i >= len(t.regions) {
		return nil
	}
	if t.regions[i].end == p && i+1 < len(t.regions) &&
		t.regions[i+1].start == p && len(t.regions[i+1].attributions) == 0 {
		i++
	}
	r := &t.regions[i]
	if p < r.start || p > r.end {
		return nil
	}
	return r
}

// Locate maps an absolute byte offset in the pool back to a source
// Location. If the offset falls inside a builder-produced region (decoded
// escape sequence bytes), it resolves via that region's attribution back to
// the original escape-sequence span instead.
func (t *Tracker) Locate(p int) Location {
	r := t.findRegion(p)
	if r == nil {
		return Location{}
	}
	if len(r.attributions) > 0 {
		local := p - r.start
		for _, a := range r.attributions {
			if local >= a.localStart && local < a.localEnd {
				return t.Locate(a.from.Start)
			}
		}
		// Fall through to the last attribution if we're exactly at the end.
		if n := len(r.attributions); n > 0 {
			return t.Locate(r.attributions[n-1].from.Start)
		}
	}
	return locateInRegion(r, p)
}

func locateInRegion(r *region, p int) Location {
	offset := p - r.start
	line := sort.Search(len(r.lineStarts), func(i int) bool {
		return r.lineStarts[i] > offset
	}) // first line start strictly after offset
	column := offset - r.lineStarts[line-1] + 1
	return Location{File: r.name, Line: line, Column: column}
}

// LocateSpan resolves the start of a span. It is a convenience wrapper
// around Locate used by diagnostics, which only ever need to point at one
// caret position per span.
func (t *Tracker) LocateSpan(s Span) Location {
	return t.Locate(s.Start)
}

// SourceLine returns the full line of real source text (not a decoded
// buffer) containing the given location, for caret rendering.
func (t *Tracker) SourceLine(loc Location) string {
	for i := range t.regions {
		r := &t.regions[i]
		if r.name != loc.File {
			continue
		}
		if loc.Line < 1 || loc.Line > len(r.lineStarts) {
			continue
		}
		lineStart := r.start + r.lineStarts[loc.Line-1]
		lineEnd := r.end
		if loc.Line < len(r.lineStarts) {
			lineEnd = r.start + r.lineStarts[loc.Line]
		}
		line := string(t.pool[lineStart:lineEnd])
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		return line
	}
	return ""
}

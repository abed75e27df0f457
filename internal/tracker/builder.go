package tracker

// StringBuilder accumulates decoded string-literal bytes (the output of
// escape-sequence decoding) into a fresh pool region, while recording which
// span of original source each appended byte range was decoded from. This
// lets an error inside a decoded string (an invalid codepoint deep inside an
// escape sequence, say) still point a caret at the escape sequence in the
// real source file rather than at an offset into a buffer nobody can see.
//
// A builder is only materialized into the pool once, on Build(); until then
// it accumulates into a local buffer so that escape-free string literals
// never have to pay for an allocation (see parser.Parser.scanStringLiteral).
type StringBuilder struct {
	tracker *Tracker
	name    string
	data    []byte
	attrs   []attribution
}

// Builder returns a fresh StringBuilder bound to this tracker's pool.
func (t *Tracker) Builder() *StringBuilder {
	return &StringBuilder{tracker: t, name: "<decoded string>"}
}

// Empty reports whether anything has been appended yet.
func (b *StringBuilder) Empty() bool { return len(b.data) == 0 }

// Append adds bytes to the buffer, attributing them to the given span of
// original source (e.g. the escape sequence that produced them, or the
// literal run of unescaped bytes copied verbatim).
func (b *StringBuilder) Append(bytes string, from Span) {
	start := len(b.data)
	b.data = append(b.data, bytes...)
	end := len(b.data)
	if start == end {
		return
	}
	b.attrs = append(b.attrs, attribution{localStart: start, localEnd: end, from: from})
}

// Build materializes the accumulated bytes into the tracker's pool and
// returns a span over them, still attributable back to their source spans.
func (b *StringBuilder) Build() Span {
	return b.tracker.addRegion(b.name, string(b.data), b.attrs)
}

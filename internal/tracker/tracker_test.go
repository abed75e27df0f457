package tracker

import "testing"

func TestLocateBasic(t *testing.T) {
	tr := New()
	span := tr.AddString("main.ctl", "abc\ndef\nghi")

	loc := tr.Locate(span.Start)
	if loc.Line != 1 || loc.Column != 1 {
		t.Errorf("Locate(start) = %+v, want line 1 column 1", loc)
	}

	loc = tr.Locate(span.Start + 4) // first byte of second line ("d")
	if loc.Line != 2 || loc.Column != 1 {
		t.Errorf("Locate(start+4) = %+v, want line 2 column 1", loc)
	}

	loc = tr.Locate(span.Start + 9) // second byte of third line ("h")
	if loc.Line != 3 || loc.Column != 2 {
		t.Errorf("Locate(start+9) = %+v, want line 3 column 2", loc)
	}
}

func TestLocateAtEndOfFile(t *testing.T) {
	tr := New()
	span := tr.AddString("main.ctl", "1 +")

	loc := tr.Locate(span.End)
	if loc.File != "main.ctl" {
		t.Errorf("Locate(end) = %+v, want a resolved File (EOF diagnostics must not fall off the pool)", loc)
	}
	if loc.Line != 1 || loc.Column != 4 {
		t.Errorf("Locate(end) = %+v, want line 1 column 4 (just past the last byte)", loc)
	}
}

func TestSliceReturnsExactBytes(t *testing.T) {
	tr := New()
	span := tr.AddString("<test>", "hello world")
	if got := tr.Slice(Span{Start: span.Start + 6, End: span.Start + 11}); got != "world" {
		t.Errorf("Slice = %q, want %q", got, "world")
	}
}

func TestSourceLine(t *testing.T) {
	tr := New()
	span := tr.AddString("main.ctl", "first\nsecond\nthird")
	loc := tr.Locate(span.Start + 6) // start of "second"
	if got := tr.SourceLine(loc); got != "second" {
		t.Errorf("SourceLine = %q, want %q", got, "second")
	}
}

func TestMultipleRegionsDoNotOverlap(t *testing.T) {
	tr := New()
	first := tr.AddString("a.ctl", "hello")
	second := tr.AddString("b.ctl", "world")

	if got := tr.Slice(first); got != "hello" {
		t.Errorf("first region = %q, want %q", got, "hello")
	}
	if got := tr.Slice(second); got != "world" {
		t.Errorf("second region = %q, want %q", got, "world")
	}

	locFirst := tr.Locate(first.Start)
	if locFirst.File != "a.ctl" {
		t.Errorf("first region file = %q, want a.ctl", locFirst.File)
	}
	locSecond := tr.Locate(second.Start)
	if locSecond.File != "b.ctl" {
		t.Errorf("second region file = %q, want b.ctl", locSecond.File)
	}
}

func TestStringBuilderAttributesDecodedBytesBackToSource(t *testing.T) {
	tr := New()
	// Pretend "\x41" is the escape sequence that decoded to "A", located at
	// bytes [10, 14) of some source region.
	escapeSpan := Span{Start: 10, End: 14}

	b := tr.Builder()
	if !b.Empty() {
		t.Fatalf("fresh builder should be empty")
	}
	b.Append("A", escapeSpan)
	decoded := b.Build()

	if tr.Slice(decoded) != "A" {
		t.Errorf("decoded content = %q, want %q", tr.Slice(decoded), "A")
	}

	loc := tr.Locate(decoded.Start)
	// The attribution should resolve back to the escape sequence's own
	// span rather than reporting a position inside the decoded buffer.
	if loc != (Location{}) {
		// escapeSpan.Start (10) doesn't belong to any region in this
		// tracker, so Locate on it returns the zero Location; confirming
		// that's what we get back demonstrates the attribution really
		// redirected there instead of resolving within the builder's own
		// region.
		t.Errorf("Locate(decoded.Start) = %+v, want the zero Location (attribution redirected to an out-of-range source span)", loc)
	}
}

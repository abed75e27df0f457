package ctlerrors

import (
	"testing"

	"github.com/m-ou-se/configtaal/internal/tracker"
)

func TestNewParseErrorImplementsError(t *testing.T) {
	span := tracker.Span{Start: 1, End: 2}
	err := NewParseError("expected expression", span)
	var _ error = err
	if err.Error() != "expected expression" {
		t.Errorf("Error() = %q, want %q", err.Error(), "expected expression")
	}
	if err.Span != span {
		t.Errorf("Span = %+v, want %+v", err.Span, span)
	}
	if len(err.Notes) != 0 {
		t.Errorf("Notes = %v, want empty", err.Notes)
	}
}

func TestNewParseErrorWithNotes(t *testing.T) {
	primary := tracker.Span{Start: 0, End: 1}
	noteSpan := tracker.Span{Start: 5, End: 6}
	err := NewParseError("operator `<' is non-associative", primary, Note{
		Message: "conflicts with this use of `<'",
		Span:    noteSpan,
	})
	if len(err.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(err.Notes))
	}
	if err.Notes[0].Span != noteSpan {
		t.Errorf("note span = %+v, want %+v", err.Notes[0].Span, noteSpan)
	}
}

func TestNewEvaluateError(t *testing.T) {
	err := NewEvaluateError("could not resolve identifier: foo", tracker.Span{})
	if err.Error() != "could not resolve identifier: foo" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestParseAndEvaluateErrorAreDistinctTypes(t *testing.T) {
	var parseErr error = NewParseError("x", tracker.Span{})
	var evalErr error = NewEvaluateError("x", tracker.Span{})
	if _, ok := parseErr.(*EvaluateError); ok {
		t.Errorf("a ParseError should not also assert as *EvaluateError")
	}
	if _, ok := evalErr.(*ParseError); ok {
		t.Errorf("an EvaluateError should not also assert as *ParseError")
	}
}

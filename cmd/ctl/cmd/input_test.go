package cmd

import "testing"

func TestLoadSourceInlineEval(t *testing.T) {
	tr, span, err := loadSource(nil, "1 + 2")
	if err != nil {
		t.Fatalf("loadSource error = %v", err)
	}
	if got := tr.Slice(span); got != "1 + 2" {
		t.Errorf("Slice(span) = %q, want %q", got, "1 + 2")
	}
}

func TestLoadSourcePrefersInlineEvalOverFileArg(t *testing.T) {
	tr, span, err := loadSource([]string{"/does/not/exist.ctl"}, "42")
	if err != nil {
		t.Fatalf("loadSource error = %v", err)
	}
	if got := tr.Slice(span); got != "42" {
		t.Errorf("Slice(span) = %q, want %q", got, "42")
	}
}

func TestLoadSourceMissingFileIsError(t *testing.T) {
	_, _, err := loadSource([]string{"/does/not/exist.ctl"}, "")
	if err == nil {
		t.Errorf("expected an error for a nonexistent file")
	}
}

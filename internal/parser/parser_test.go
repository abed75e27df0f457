package parser

import (
	"strings"
	"testing"

	"github.com/m-ou-se/configtaal/internal/ast"
	"github.com/m-ou-se/configtaal/internal/ctlerrors"
	"github.com/m-ou-se/configtaal/internal/tracker"
)

func mustParse(t *testing.T, source string) ast.Expression {
	t.Helper()
	tr := tracker.New()
	span := tr.AddString("<test>", source)
	expr, err := Parse(tr, span)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", source, err)
	}
	return expr
}

func parseErr(t *testing.T, source string) error {
	t.Helper()
	tr := tracker.New()
	span := tr.AddString("<test>", source)
	_, err := Parse(tr, span)
	if err == nil {
		t.Fatalf("Parse(%q) expected an error, got none", source)
	}
	return err
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"1 + 2 * 3", "(plus 1 (times 2 3))"},
		{"1 * 2 + 3", "(plus (times 1 2) 3)"},
		{"1 + 2 + 3", "(plus (plus 1 2) 3)"},
		{"2 ** 3 ** 4", "(power 2 (power 3 4))"},
		{"-1 + 2", "(plus (unary_minus 1) 2)"},
		{"1 + -2", "(plus 1 (unary_minus 2))"},
		{"a.b", "(dot a b)"},
		{"a && b || c", "(logical_or (logical_and a b) c)"},
		{"a || b && c", "(logical_or a (logical_and b c))"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			expr := mustParse(t, tt.source)
			if got := expr.String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestParseParenthesizedPreservesGrouping(t *testing.T) {
	expr := mustParse(t, "(1 + 2) * 3")
	op, ok := expr.(*ast.OperatorExpr)
	if !ok {
		t.Fatalf("expected *ast.OperatorExpr, got %T", expr)
	}
	lhs, ok := op.LHS.(*ast.OperatorExpr)
	if !ok {
		t.Fatalf("expected LHS to be *ast.OperatorExpr, got %T", op.LHS)
	}
	if !lhs.Parenthesized {
		t.Errorf("expected left-hand side to be marked Parenthesized")
	}
	if got, want := expr.String(), "(times (plus 1 2) 3)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseNonAssociativeComparisonIsError(t *testing.T) {
	err := parseErr(t, "1 < 2 < 3")
	perr, ok := err.(*ctlerrors.ParseError)
	if !ok {
		t.Fatalf("expected *ctlerrors.ParseError, got %T", err)
	}
	if !strings.Contains(perr.Message, "non-associative") {
		t.Errorf("message = %q, want it to mention non-associative", perr.Message)
	}
	if len(perr.Notes) != 1 {
		t.Fatalf("expected exactly one note, got %d", len(perr.Notes))
	}
	// The primary span covers the first `<` at byte offset 2; the note
	// covers the second `<` at byte offset 6.
	if perr.Span.Start != 2 {
		t.Errorf("primary span starts at %d, want 2 (the first `<')", perr.Span.Start)
	}
	if perr.Notes[0].Span.Start != 6 {
		t.Errorf("note span starts at %d, want 6 (the second `<')", perr.Notes[0].Span.Start)
	}
}

func TestParseNonAssociativeEqualityIsError(t *testing.T) {
	parseErr(t, "1 == 2 == 3")
}

func TestParseMixedComparisonOrdersFine(t *testing.T) {
	// less (class 8) binds tighter than equal (class 9): no conflict.
	expr := mustParse(t, "1 < 2 == true")
	if got, want := expr.String(), "(equal (less 1 2) true)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseObjectLiteral(t *testing.T) {
	expr := mustParse(t, "{ a = 1, b = a + 1 }")
	obj, ok := expr.(*ast.ObjectExpr)
	if !ok {
		t.Fatalf("expected *ast.ObjectExpr, got %T", expr)
	}
	if len(obj.Keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(obj.Keys))
	}
	if obj.Keys[0].Value != "a" || obj.Keys[1].Value != "b" {
		t.Errorf("keys = %q, %q, want a, b", obj.Keys[0].Value, obj.Keys[1].Value)
	}
}

func TestParseListLiteral(t *testing.T) {
	expr := mustParse(t, "[1, 2, 3]")
	list, ok := expr.(*ast.ListExpr)
	if !ok {
		t.Fatalf("expected *ast.ListExpr, got %T", expr)
	}
	if len(list.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(list.Elements))
	}
}

func TestParseUnmatchedBracketCitesOpener(t *testing.T) {
	err := parseErr(t, "(1 + 2")
	pe, ok := err.(*ctlerrors.ParseError)
	if !ok {
		t.Fatalf("expected *ctlerrors.ParseError, got %T", err)
	}
	if len(pe.Notes) != 1 {
		t.Fatalf("expected a note citing the opening bracket, got %d notes", len(pe.Notes))
	}
}

func TestParseStringConcat(t *testing.T) {
	expr := mustParse(t, `"hi\n" + "there"`)
	op, ok := expr.(*ast.OperatorExpr)
	if !ok {
		t.Fatalf("expected *ast.OperatorExpr, got %T", expr)
	}
	lhs, ok := op.LHS.(*ast.StringLiteral)
	if !ok {
		t.Fatalf("expected LHS to be *ast.StringLiteral, got %T", op.LHS)
	}
	if lhs.Value != "hi\n" {
		t.Errorf("decoded string = %q, want %q", lhs.Value, "hi\n")
	}
}

func TestParseAssignmentIsRejected(t *testing.T) {
	err := parseErr(t, "a = 1")
	if !strings.Contains(err.Error(), "assignment") {
		t.Errorf("error = %q, want it to mention assignment", err.Error())
	}
}

func TestParseLoneBangIsRejected(t *testing.T) {
	err := parseErr(t, "a ! b")
	if !strings.Contains(err.Error(), "unary") {
		t.Errorf("error = %q, want it to mention unary use", err.Error())
	}
}

func TestParseLambdaNotImplemented(t *testing.T) {
	parseErr(t, `\x -> x`)
}

func TestParseIndexAndCall(t *testing.T) {
	expr := mustParse(t, "a[0]")
	op, ok := expr.(*ast.OperatorExpr)
	if !ok {
		t.Fatalf("expected *ast.OperatorExpr, got %T", expr)
	}
	if op.Op.String() != "index" {
		t.Errorf("op = %s, want index", op.Op)
	}
	if _, ok := op.RHS.(*ast.ListExpr); !ok {
		t.Errorf("expected RHS to be a *ast.ListExpr holding the bracketed arguments, got %T", op.RHS)
	}
}

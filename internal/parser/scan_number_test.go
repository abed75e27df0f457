package parser

import (
	"testing"

	"github.com/m-ou-se/configtaal/internal/ast"
	"github.com/m-ou-se/configtaal/internal/tracker"
)

func scanNum(t *testing.T, source string) ast.Expression {
	t.Helper()
	tr := tracker.New()
	span := tr.AddString("<test>", source)
	p := New(tr, span)
	expr, err := p.scanNumber()
	if err != nil {
		t.Fatalf("scanNumber(%q) error = %v", source, err)
	}
	return expr
}

func TestScanIntegerLiterals(t *testing.T) {
	tests := []struct {
		source string
		want   int64
	}{
		{"0", 0},
		{"42", 42},
		{"0x2A", 42},
		{"0X2a", 42},
		{"0o52", 42},
		{"0O52", 42},
		{"9223372036854775807", 9223372036854775807}, // math.MaxInt64
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			expr := scanNum(t, tt.source)
			lit, ok := expr.(*ast.IntegerLiteral)
			if !ok {
				t.Fatalf("scanNumber(%q) = %T, want *ast.IntegerLiteral", tt.source, expr)
			}
			if lit.Value != tt.want {
				t.Errorf("scanNumber(%q) = %d, want %d", tt.source, lit.Value, tt.want)
			}
		})
	}
}

func TestScanIntegerOverflowIsError(t *testing.T) {
	tr := tracker.New()
	span := tr.AddString("<test>", "9223372036854775808") // MaxInt64 + 1
	p := New(tr, span)
	if _, err := p.scanNumber(); err == nil {
		t.Errorf("scanNumber(MaxInt64+1) should be an error")
	}
}

func TestScanDoubleLiterals(t *testing.T) {
	tests := []struct {
		source string
		want   float64
	}{
		{"1.5", 1.5},
		{"0.25", 0.25},
		{"1e10", 1e10},
		{"1.5e-3", 1.5e-3},
		{"2E+2", 2e2},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			expr := scanNum(t, tt.source)
			lit, ok := expr.(*ast.DoubleLiteral)
			if !ok {
				t.Fatalf("scanNumber(%q) = %T, want *ast.DoubleLiteral", tt.source, expr)
			}
			if lit.Value != tt.want {
				t.Errorf("scanNumber(%q) = %g, want %g", tt.source, lit.Value, tt.want)
			}
		})
	}
}

func TestScanOctalWithFractionIsError(t *testing.T) {
	tr := tracker.New()
	span := tr.AddString("<test>", "0o1.5")
	p := New(tr, span)
	if _, err := p.scanNumber(); err == nil {
		t.Errorf("an octal literal with a fractional part should be an error")
	}
}

func TestScanMissingExponentDigitIsError(t *testing.T) {
	tr := tracker.New()
	span := tr.AddString("<test>", "1e")
	p := New(tr, span)
	if _, err := p.scanNumber(); err == nil {
		t.Errorf("a dangling exponent marker should be an error")
	}
}

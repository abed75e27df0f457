package printer

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/m-ou-se/configtaal/internal/evaluator"
	"github.com/m-ou-se/configtaal/internal/parser"
	"github.com/m-ou-se/configtaal/internal/tracker"
)

// TestEndToEndSnapshots runs a handful of representative CTL expressions
// through the full parse-evaluate-print pipeline and snapshots both the
// printed AST and the printed result, the same way the CLI would render
// them.
func TestEndToEndSnapshots(t *testing.T) {
	sources := []string{
		"1 + 2 * 3",
		"(1 + 2) * 3",
		"10 / 3",
		`"hi\n" + "there"`,
		"{ a = 1, b = a + 1 }",
		"[1, 2, 3]",
		"1 < 2 && 2 < 3",
	}

	engine := evaluator.New()
	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			tr := tracker.New()
			span := tr.AddString("<test>", source)
			expr, err := parser.Parse(tr, span)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", source, err)
			}
			result, err := engine.Evaluate(expr)
			if err != nil {
				t.Fatalf("Evaluate(%q) error = %v", source, err)
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("ast: %s", Print(expr)))
			snaps.MatchSnapshot(t, fmt.Sprintf("value: %s", PrintValue(result)))
		})
	}
}

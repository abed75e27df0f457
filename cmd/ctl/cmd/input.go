package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/m-ou-se/configtaal/pkg/ctl"
)

// loadSource resolves a subcommand's input: the -e/--eval flag's inline
// text if set, otherwise the named file argument, otherwise stdin. It
// returns a tracker already holding the source and the span over it.
func loadSource(args []string, evalExpr string) (*ctl.Tracker, ctl.Span, error) {
	tr := ctl.NewTracker()

	if evalExpr != "" {
		return tr, tr.AddString("<eval>", evalExpr), nil
	}
	if len(args) > 0 {
		span, err := tr.AddFile(args[0])
		if err != nil {
			return tr, ctl.Span{}, fmt.Errorf("error reading file: %w", err)
		}
		return tr, span, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return tr, ctl.Span{}, fmt.Errorf("error reading stdin: %w", err)
	}
	return tr, tr.AddString("<stdin>", string(data)), nil
}

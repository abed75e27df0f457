// Package diag renders a structured ctlerrors.ParseError/EvaluateError as
// human-readable text: the offending source line, a caret under the
// primary span, and a "note: ..." line with its own caret for each
// attached note. It is grounded in the teacher's
// internal/errors.CompilerError.Format/FormatWithContext (same ANSI escape
// codes, same "file:line:column" header shape), generalized from a single
// lexer.Position to tracker.Span-resolved locations and from a flat
// message to a primary message plus notes.
package diag

import (
	"fmt"
	"strings"

	"github.com/m-ou-se/configtaal/internal/ctlerrors"
	"github.com/m-ou-se/configtaal/internal/tracker"
)

const (
	ansiBold   = "\033[1m"
	ansiRed    = "\033[1;31m"
	ansiDim    = "\033[2m"
	ansiReset  = "\033[0m"
	caretGlyph = "^"
)

// Render formats err (a *ctlerrors.ParseError or *ctlerrors.EvaluateError)
// against tr, with ANSI color if colorEnabled is true. Any other error is
// rendered as its plain Error() text, uncolored.
func Render(tr *tracker.Tracker, err error, colorEnabled bool) string {
	switch e := err.(type) {
	case *ctlerrors.ParseError:
		return format(tr, "parse error", e.Message, e.Span, e.Notes, colorEnabled)
	case *ctlerrors.EvaluateError:
		return format(tr, "evaluate error", e.Message, e.Span, e.Notes, colorEnabled)
	default:
		return err.Error()
	}
}

func format(tr *tracker.Tracker, kind, message string, span tracker.Span, notes []ctlerrors.Note, colorEnabled bool) string {
	var sb strings.Builder
	writeEntry(&sb, tr, kind+": "+message, span, colorEnabled, false)
	for _, n := range notes {
		sb.WriteByte('\n')
		writeEntry(&sb, tr, "note: "+n.Message, n.Span, colorEnabled, true)
	}
	return sb.String()
}

func writeEntry(sb *strings.Builder, tr *tracker.Tracker, message string, span tracker.Span, colorEnabled, isNote bool) {
	loc := tr.LocateSpan(span)

	if loc.File != "" {
		fmt.Fprintf(sb, "%s:%d:%d\n", loc.File, loc.Line, loc.Column)
	}

	line := tr.SourceLine(loc)
	if line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", loc.Line)
		if isNote && colorEnabled {
			sb.WriteString(ansiDim)
		}
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		if isNote && colorEnabled {
			sb.WriteString(ansiReset)
		}
		sb.WriteByte('\n')

		caretCol := loc.Column
		if caretCol < 1 {
			caretCol = 1
		}
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+caretCol-1))
		if colorEnabled {
			sb.WriteString(ansiRed)
		}
		width := span.Len()
		if width < 1 {
			width = 1
		}
		sb.WriteString(strings.Repeat(caretGlyph, width))
		if colorEnabled {
			sb.WriteString(ansiReset)
		}
		sb.WriteByte('\n')
	}

	if colorEnabled {
		sb.WriteString(ansiBold)
	}
	sb.WriteString(message)
	if colorEnabled {
		sb.WriteString(ansiReset)
	}
}

package parser

import (
	"strings"

	"github.com/m-ou-se/configtaal/internal/ctlerrors"
	"github.com/m-ou-se/configtaal/internal/tracker"
)

// matchMode selects what a matcher is willing to recognize as the
// terminator of the current sub-production.
type matchMode int

const (
	modeEndOfFile matchMode = iota
	modeSpecific
	modeMatchingBracket
	modeObjectElement
)

// matcher describes what terminates the current parsing subtask: end of
// file, a specific literal string (optionally a closing bracket that cites
// its opener in error notes), or an object-element separator (`,`, `;`, or
// newline). A matcher may be composed with orBefore to also succeed
// (without consuming) if an alternate matcher would match next.
type matcher struct {
	mode     matchMode
	expected string
	openSpan tracker.Span // only meaningful for modeMatchingBracket
	orBefore *matcher
}

func endOfFile() matcher { return matcher{mode: modeEndOfFile} }

func specific(s string) matcher { return matcher{mode: modeSpecific, expected: s} }

func matchingBracket(s string, openSpan tracker.Span) matcher {
	return matcher{mode: modeMatchingBracket, expected: s, openSpan: openSpan}
}

func objectElement() matcher { return matcher{mode: modeObjectElement} }

// orBeforeM returns a copy of m that also matches wherever alt would,
// without consuming input in that case.
func (m matcher) orBeforeM(alt matcher) matcher {
	m.orBefore = &alt
	return m
}

// description renders a human string for error messages, e.g. "`)'" or
// "newline or `,' or `;'".
func (m matcher) description() string {
	var desc string
	switch m.mode {
	case modeEndOfFile:
		desc = "end of file"
	case modeSpecific, modeMatchingBracket:
		desc = "`" + m.expected + "'"
	case modeObjectElement:
		desc = "newline or `,' or `;'"
	}
	if m.orBefore != nil {
		desc += " or " + m.orBefore.description()
	}
	return desc
}

// tryMatch attempts to recognize the matcher at the parser's current
// position. If eatWhitespace is true, whitespace/comments are skipped
// first (newlines included, unless this is an object-element matcher,
// which is newline-sensitive). If consume is true and the matcher
// succeeds, the parser's cursor advances past the match.
func (p *Parser) tryMatch(m matcher, consume, eatWhitespace bool) (string, bool) {
	if eatWhitespace {
		p.skipWhitespace(m.mode != modeObjectElement)
	}

	switch m.mode {
	case modeEndOfFile:
		if p.atEOF() {
			return "", true
		}

	case modeSpecific, modeMatchingBracket:
		if strings.HasPrefix(p.remaining(), m.expected) {
			if consume {
				p.advance(len(m.expected))
			}
			return m.expected, true
		}

	case modeObjectElement:
		if !p.atEOF() {
			switch p.peekByte() {
			case ',', ';', '\n':
				b := string(p.peekByte())
				if consume {
					p.advance(1)
				}
				return b, true
			}
		}
	}

	if m.orBefore != nil {
		if _, ok := p.tryMatch(*m.orBefore, false, false); ok {
			return "", true
		}
	}
	return "", false
}

// errorAt builds the structured parse error raised when this matcher fails
// to match. Unmatched brackets cite their opener as a note.
func (m matcher) errorAt(p *Parser) error {
	var notes []ctlerrors.Note
	for mm := &m; mm != nil; mm = mm.orBefore {
		if mm.mode == modeMatchingBracket {
			notes = append(notes, ctlerrors.Note{
				Message: "... to match this `" + mm.expected + "'",
				Span:    mm.openSpan,
			})
		}
	}
	return ctlerrors.NewParseError("expected "+m.description(), p.herePoint(), notes...)
}

// parseEnd checks whether the current position satisfies the matcher,
// consuming it if so and if consume is true. If the matcher fails to match
// and the source is exhausted, it raises the matcher's own error (so an
// unterminated bracket reports at EOF with its opener cited).
func (p *Parser) parseEnd(m matcher, consume bool) (bool, error) {
	if _, ok := p.tryMatch(m, consume, true); ok {
		return true, nil
	}
	if p.atEOF() {
		return false, m.errorAt(p)
	}
	return false, nil
}

// mustMatch matches m or raises its error immediately (used for required
// tokens like the `=` in an object entry).
func (p *Parser) mustMatch(m matcher) (tracker.Span, error) {
	p.skipWhitespace(m.mode != modeObjectElement)
	start := p.pos
	if _, ok := p.tryMatch(m, true, false); ok {
		return p.spanAt(start, p.pos), nil
	}
	return tracker.Span{}, m.errorAt(p)
}

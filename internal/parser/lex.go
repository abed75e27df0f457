package parser

import "github.com/m-ou-se/configtaal/internal/tracker"

// Token is a debugging-only view of one atom the parser recognized while
// scanning: an identifier, a number, a string, or a single- or double-byte
// operator/punctuation run. It exists for the `ctl lex` CLI subcommand;
// the parser itself never materializes a token stream.
type Token struct {
	Kind string
	Span tracker.Span
}

// Lex re-scans span for debugging purposes, producing the sequence of
// atoms the parser would see, without building an AST. Scanning errors
// (an invalid escape, an overflowing integer literal, and so on) abort the
// scan and are returned alongside whatever tokens were recognized so far.
func Lex(tr *tracker.Tracker, span tracker.Span) ([]Token, error) {
	p := New(tr, span)
	var toks []Token

	for {
		p.skipWhitespace(true)
		if p.atEOF() {
			return toks, nil
		}

		start := p.pos
		ch := p.peekByte()

		switch {
		case isIdentifierStart(ch):
			ident, _ := p.tryScanIdentifier()
			toks = append(toks, Token{Kind: "identifier", Span: ident.NameSpan})

		case isDigit(ch) || (ch == '.' && isDigit(p.peekByteAt(1))):
			expr, err := p.scanNumber()
			if err != nil {
				return toks, err
			}
			toks = append(toks, Token{Kind: "number", Span: expr.Span()})

		case ch == '"' || ch == '\'':
			lit, err := p.scanStringLiteral()
			if err != nil {
				return toks, err
			}
			toks = append(toks, Token{Kind: "string", Span: lit.LitSpan})

		default:
			opLen := 1
			if isBinaryOpStartChar(ch) && isDoubleCharOperator(ch, p.peekByteAt(1)) {
				opLen = 2
			}
			p.advance(opLen)
			toks = append(toks, Token{Kind: "operator", Span: p.spanAt(start, p.pos)})
		}
	}
}

func isDoubleCharOperator(first, second byte) bool {
	switch first {
	case '!', '=':
		return second == '='
	case '*':
		return second == '*'
	case '&':
		return second == '&'
	case '|':
		return second == '|'
	case '>':
		return second == '>' || second == '='
	case '<':
		return second == '<' || second == '='
	default:
		return false
	}
}

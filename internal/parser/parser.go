// Package parser implements the Pratt-style precedence-climbing parser
// that turns CTL source text into an AST. It has no separate tokenizer:
// the parser scans characters directly off a tracker.Span, consulting the
// operator package's precedence table to splice operator nodes into the
// tree as it goes.
package parser

import (
	"fmt"

	"github.com/m-ou-se/configtaal/internal/ast"
	"github.com/m-ou-se/configtaal/internal/ctlerrors"
	"github.com/m-ou-se/configtaal/internal/operator"
	"github.com/m-ou-se/configtaal/internal/tracker"
)

// Parser scans a single contiguous span of source text borrowed from a
// tracker and reduces it to an AST.
type Parser struct {
	tr   *tracker.Tracker
	src  string // the span's text
	base int    // absolute pool offset of src[0]
	pos  int    // current byte offset into src
}

// New creates a Parser over the given span of a tracker's pool.
func New(tr *tracker.Tracker, span tracker.Span) *Parser {
	return &Parser{tr: tr, src: tr.Slice(span), base: span.Start}
}

// Parse parses a single expression from the given span and requires that
// it consumes the span entirely (aside from trailing whitespace/comments).
// This is the entry point the CLI harness and pkg/ctl use.
func Parse(tr *tracker.Tracker, span tracker.Span) (ast.Expression, error) {
	p := New(tr, span)
	expr, err := p.parseExpression(endOfFile())
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, ctlerrors.NewParseError("expected expression", p.herePoint())
	}
	if _, err := p.parseEnd(endOfFile(), true); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) atEOF() bool { return p.pos >= len(p.src) }

func (p *Parser) remaining() string { return p.src[p.pos:] }

func (p *Parser) peekByte() byte {
	if p.atEOF() {
		return 0
	}
	return p.src[p.pos]
}

func (p *Parser) peekByteAt(n int) byte {
	i := p.pos + n
	if i < 0 || i >= len(p.src) {
		return 0
	}
	return p.src[i]
}

func (p *Parser) byteAt(i int) byte {
	if i < 0 || i >= len(p.src) {
		return 0
	}
	return p.src[i]
}

func (p *Parser) advance(n int) { p.pos += n }

func (p *Parser) spanAt(start, end int) tracker.Span {
	return tracker.Span{Start: p.base + start, End: p.base + end}
}

func (p *Parser) herePoint() tracker.Span { return p.spanAt(p.pos, p.pos) }

// skipWhitespace consumes runs of whitespace and `#`-to-end-of-line
// comments. If skipNewlines is false, a newline stops the scan rather than
// being consumed (used by object-element-sensitive contexts).
func (p *Parser) skipWhitespace(skipNewlines bool) {
	for {
		for !p.atEOF() && isSpace(p.peekByte()) {
			if !skipNewlines && p.peekByte() == '\n' {
				return
			}
			p.advance(1)
		}
		if !p.atEOF() && p.peekByte() == '#' {
			for !p.atEOF() && p.peekByte() != '\n' {
				p.advance(1)
			}
		} else {
			return
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentifierStart(b byte) bool { return isAlpha(b) || b == '_' }

func isIdentifierPart(b byte) bool { return isAlpha(b) || isDigit(b) || b == '_' }

// tryScanIdentifier scans an identifier at the current position without
// skipping leading whitespace first; callers that want whitespace skipped
// must do so explicitly (this mirrors the source parser, which does not
// skip whitespace between `.` and the member name that follows it).
func (p *Parser) tryScanIdentifier() (*ast.Identifier, bool) {
	if p.atEOF() || !isIdentifierStart(p.peekByte()) {
		return nil, false
	}
	start := p.pos
	p.advance(1)
	for !p.atEOF() && isIdentifierPart(p.peekByte()) {
		p.advance(1)
	}
	return &ast.Identifier{Name: p.src[start:p.pos], NameSpan: p.spanAt(start, p.pos)}, true
}

// parseExpressionAtom parses a single atom: a literal, identifier, grouped
// expression, unary operator application, or aggregate literal. It returns
// (nil, nil) if end matches before any atom is found.
func (p *Parser) parseExpressionAtom(end matcher) (ast.Expression, error) {
	matched, err := p.parseEnd(end, false)
	if err != nil {
		return nil, err
	}
	if matched {
		return nil, nil
	}

	if p.atEOF() {
		return nil, ctlerrors.NewParseError("expected expression", p.herePoint())
	}

	switch ch := p.peekByte(); {
	case ch == '(':
		openStart := p.pos
		p.advance(1)
		openSpan := p.spanAt(openStart, p.pos)
		expr, err := p.parseExpression(matchingBracket(")", openSpan))
		if err != nil {
			return nil, err
		}
		if expr == nil {
			return nil, ctlerrors.NewParseError("missing expression between `(' and `)'", p.spanAt(openStart, p.pos))
		}
		if op, ok := expr.(*ast.OperatorExpr); ok {
			op.Parenthesized = true
		}
		return expr, nil

	case ch == '!' || ch == '~' || ch == '-' || ch == '+':
		opStart := p.pos
		var op operator.Operator
		switch ch {
		case '!':
			op = operator.LogicalNot
		case '~':
			op = operator.Complement
		case '-':
			op = operator.UnaryMinus
		case '+':
			op = operator.UnaryPlus
		}
		p.advance(1)
		opSpan := p.spanAt(opStart, p.pos)
		sub, err := p.parseExpressionAtom(end)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, ctlerrors.NewParseError(
				fmt.Sprintf("missing expression after unary `%c' operator", ch),
				p.spanAt(opStart, p.pos),
			)
		}
		return &ast.OperatorExpr{Op: op, OpSpan: opSpan, RHS: sub}, nil

	case isIdentifierStart(ch):
		ident, _ := p.tryScanIdentifier()
		return ident, nil

	case ch == '{':
		openStart := p.pos
		p.advance(1)
		openSpan := p.spanAt(openStart, p.pos)
		return p.parseObject(matchingBracket("}", openSpan), openSpan)

	case ch == '[':
		openStart := p.pos
		p.advance(1)
		openSpan := p.spanAt(openStart, p.pos)
		return p.parseList(matchingBracket("]", openSpan), openSpan)

	case ch == '"' || ch == '\'':
		return p.scanStringLiteral()

	case isDigit(ch) || (ch == '.' && isDigit(p.peekByteAt(1))):
		return p.scanNumber()

	case ch == '\\':
		return nil, ctlerrors.NewParseError("lambdas are not yet implemented", p.spanAt(p.pos, p.pos+1))

	default:
		return nil, ctlerrors.NewParseError("expected expression", p.herePoint())
	}
}

// isBinaryOpStartChar reports whether b can begin a binary operator token.
func isBinaryOpStartChar(b byte) bool {
	switch b {
	case ':', '+', '-', '*', '/', '%', '=', '!', '>', '<', '^', '&', '|', '[', '(', '.', '~':
		return true
	default:
		return false
	}
}

// operatorSymbol renders the operator's source-level spelling, for error
// messages that quote the offending operator the way the user wrote it.
func operatorSymbol(op operator.Operator) string {
	switch op {
	case operator.Dot:
		return "."
	case operator.Index:
		return "["
	case operator.Call:
		return "("
	case operator.Colon:
		return ":"
	case operator.Equal:
		return "=="
	case operator.Inequal:
		return "!="
	case operator.Greater:
		return ">"
	case operator.Less:
		return "<"
	case operator.GreaterOrEqual:
		return ">="
	case operator.LessOrEqual:
		return "<="
	case operator.UnaryPlus, operator.Plus:
		return "+"
	case operator.UnaryMinus, operator.Minus:
		return "-"
	case operator.Complement:
		return "~"
	case operator.LogicalNot:
		return "!"
	case operator.Times:
		return "*"
	case operator.Divide:
		return "/"
	case operator.Modulo:
		return "%"
	case operator.Power:
		return "**"
	case operator.LeftShift:
		return "<<"
	case operator.RightShift:
		return ">>"
	case operator.BitAnd:
		return "&"
	case operator.BitOr:
		return "|"
	case operator.BitXor:
		return "^"
	case operator.LogicalAnd:
		return "&&"
	case operator.LogicalOr:
		return "||"
	default:
		return "?"
	}
}

// parseMoreExpression consumes one binary/index/call/member operator
// application, rewriting expr in place to respect precedence, and reports
// whether another one may follow.
func (p *Parser) parseMoreExpression(exprSlot *ast.Expression, end matcher) (bool, error) {
	matched, err := p.parseEnd(end, true)
	if err != nil {
		return false, err
	}
	if matched {
		return false, nil
	}

	if p.atEOF() || !isBinaryOpStartChar(p.peekByte()) {
		return false, ctlerrors.NewParseError("expected binary operator or "+end.description(), p.herePoint())
	}

	ch := p.peekByte()
	opStart := p.pos
	opLen := 1
	var op operator.Operator

	switch ch {
	case '!':
		if p.peekByteAt(1) == '=' {
			opLen, op = 2, operator.Inequal
		} else {
			return false, ctlerrors.NewParseError("`!' can only be used as unary operator", p.spanAt(opStart, opStart+1))
		}
	case '=':
		if p.peekByteAt(1) == '=' {
			opLen, op = 2, operator.Equal
		} else {
			return false, ctlerrors.NewParseError("assignment (`=') cannot be used in expressions (did you mean `=='?)", p.spanAt(opStart, opStart+1))
		}
	case '*':
		if p.peekByteAt(1) == '*' {
			opLen, op = 2, operator.Power
		} else {
			op = operator.Times
		}
	case '&':
		if p.peekByteAt(1) == '&' {
			opLen, op = 2, operator.LogicalAnd
		} else {
			op = operator.BitAnd
		}
	case '|':
		if p.peekByteAt(1) == '|' {
			opLen, op = 2, operator.LogicalOr
		} else {
			op = operator.BitOr
		}
	case '>':
		if p.peekByteAt(1) == '>' {
			opLen, op = 2, operator.RightShift
		} else if p.peekByteAt(1) == '=' {
			opLen, op = 2, operator.GreaterOrEqual
		} else {
			op = operator.Greater
		}
	case '<':
		if p.peekByteAt(1) == '<' {
			opLen, op = 2, operator.LeftShift
		} else if p.peekByteAt(1) == '=' {
			opLen, op = 2, operator.LessOrEqual
		} else {
			op = operator.Less
		}
	case '~':
		return false, ctlerrors.NewParseError("`~' can only be used as unary operator", p.spanAt(opStart, opStart+1))
	case '+':
		op = operator.Plus
	case '-':
		op = operator.Minus
	case '/':
		op = operator.Divide
	case '%':
		op = operator.Modulo
	case '^':
		op = operator.BitXor
	case ':':
		op = operator.Colon
	case '[':
		op = operator.Index
	case '(':
		op = operator.Call
	case '.':
		op = operator.Dot
	}

	p.advance(opLen)
	opSpan := p.spanAt(opStart, p.pos)

	var rhs ast.Expression
	switch {
	case ch == '[' || ch == '(':
		closeStr := "]"
		if ch == '(' {
			closeStr = ")"
		}
		list, err := p.parseList(matchingBracket(closeStr, opSpan), opSpan)
		if err != nil {
			return false, err
		}
		rhs = list

	case ch == '.':
		ident, ok := p.tryScanIdentifier()
		if !ok {
			return false, ctlerrors.NewParseError("expected identifier after `.'", p.spanAt(opStart, p.pos))
		}
		rhs = ident

	default:
		atom, err := p.parseExpressionAtom(end)
		if err != nil {
			return false, err
		}
		if atom == nil {
			return false, ctlerrors.NewParseError(
				fmt.Sprintf("missing expression after `%s' operator", operatorSymbol(op)),
				p.spanAt(opStart, p.pos),
			)
		}
		rhs = atom
	}

	// Splice the new operator into the tree, walking down the right
	// spine of the existing expression while the new operator binds
	// tighter than what it would displace.
	lhsSlot := exprSlot
	for {
		existing, ok := (*lhsSlot).(*ast.OperatorExpr)
		if !ok || existing.Parenthesized {
			break
		}
		cmp := operator.HigherPrecedence(existing.Op, existing.IsUnary(), op)
		if cmp == operator.Unordered {
			return false, ctlerrors.NewParseError(
				fmt.Sprintf("operator `%s' is non-associative", operatorSymbol(existing.Op)),
				existing.OpSpan,
				ctlerrors.Note{
					Message: fmt.Sprintf("conflicts with this use of `%s'", operatorSymbol(op)),
					Span:    opSpan,
				},
			)
		}
		if cmp != operator.Right {
			break
		}
		lhsSlot = &existing.RHS
	}
	*lhsSlot = &ast.OperatorExpr{Op: op, OpSpan: opSpan, LHS: *lhsSlot, RHS: rhs}
	return true, nil
}

// parseExpression parses atom, more, atom, more, ... until end matches.
func (p *Parser) parseExpression(end matcher) (ast.Expression, error) {
	expr, err := p.parseExpressionAtom(end)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, nil
	}
	for {
		cont, err := p.parseMoreExpression(&expr, end)
		if err != nil {
			return nil, err
		}
		if !cont {
			break
		}
	}
	return expr, nil
}

// parseList parses a `[...]`-or-bracket-free comma-separated sequence of
// expressions, used both for `[...]` list literals and for the argument
// lists of `(...)` call and `[...]` index operators.
func (p *Parser) parseList(end matcher, openSpan tracker.Span) (*ast.ListExpr, error) {
	var elements []ast.Expression
	for {
		elemStart := p.pos
		matched, err := p.parseEnd(end, true)
		if err != nil {
			return nil, err
		}
		if matched {
			break
		}
		value, err := p.parseExpression(specific(",").orBeforeM(end))
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, ctlerrors.NewParseError("missing expression", p.spanAt(elemStart, p.pos))
		}
		elements = append(elements, value)
	}
	return &ast.ListExpr{Elements: elements, ListSpan: p.spanAt(openSpan.Start, p.pos)}, nil
}

// parseObject parses a `{ident = expr, ...}` aggregate. Keys are always
// bare identifiers in source syntax; the AST still stores them as
// *ast.StringLiteral nodes per the object-literal data model.
func (p *Parser) parseObject(end matcher, openSpan tracker.Span) (*ast.ObjectExpr, error) {
	var keys []*ast.StringLiteral
	var values []ast.Expression
	for {
		matched, err := p.parseEnd(end, true)
		if err != nil {
			return nil, err
		}
		if matched {
			break
		}
		ident, ok := p.tryScanIdentifier()
		if !ok {
			return nil, ctlerrors.NewParseError("expected identifier or "+end.description(), p.herePoint())
		}
		eqSpan, err := p.mustMatch(specific("="))
		if err != nil {
			return nil, err
		}
		value, err := p.parseExpression(objectElement().orBeforeM(end))
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, ctlerrors.NewParseError("missing expression after `='", p.spanAt(eqSpan.Start, p.pos))
		}
		keys = append(keys, &ast.StringLiteral{Value: ident.Name, LitSpan: ident.NameSpan})
		values = append(values, value)
	}
	return &ast.ObjectExpr{Keys: keys, Values: values, ObjectSpan: p.spanAt(openSpan.Start, p.pos)}, nil
}

package parser

import (
	"math"
	"strconv"

	"github.com/m-ou-se/configtaal/internal/ast"
	"github.com/m-ou-se/configtaal/internal/ctlerrors"
)

func isHexDigit(b byte) bool {
	return isDigit(b) || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func isDigitInBase(b byte, base int) bool {
	switch base {
	case 16:
		return isHexDigit(b)
	case 8:
		return b >= '0' && b <= '7'
	default:
		return isDigit(b)
	}
}

// scanNumber scans an integer or floating-point literal starting at the
// current position. Integers support `0x`/`0X` hex and `0o`/`0O` octal
// prefixes besides plain decimal; floats always use decimal or hex (`p`/`P`
// exponent) digits and are handed to strconv for the actual conversion,
// since that is host-library decimal-/hex-float conversion either way.
// Octal literals must be plain integers: a fractional part or exponent on
// one is a parse error.
func (p *Parser) scanNumber() (ast.Expression, error) {
	start := p.pos
	base := 10
	basePrefixLen := 0

	if p.peekByte() == '0' && (p.peekByteAt(1) == 'x' || p.peekByteAt(1) == 'X') {
		base, basePrefixLen = 16, 2
	} else if p.peekByte() == '0' && (p.peekByteAt(1) == 'o' || p.peekByteAt(1) == 'O') {
		base, basePrefixLen = 8, 2
	}
	p.advance(basePrefixLen)

	for !p.atEOF() && isDigitInBase(p.peekByte(), base) {
		p.advance(1)
	}

	isFloat := false
	if !p.atEOF() && p.peekByte() == '.' && isDigitInBase(p.peekByteAt(1), base) {
		isFloat = true
		p.advance(1)
		for !p.atEOF() && isDigitInBase(p.peekByte(), base) {
			p.advance(1)
		}
	}

	expLo, expHi := byte('e'), byte('E')
	if base == 16 {
		expLo, expHi = 'p', 'P'
	}
	if !p.atEOF() && (p.peekByte() == expLo || p.peekByte() == expHi) {
		isFloat = true
		expMarkStart := p.pos
		p.advance(1)
		if !p.atEOF() && (p.peekByte() == '+' || p.peekByte() == '-') {
			p.advance(1)
		}
		digitsStart := p.pos
		for !p.atEOF() && isDigit(p.peekByte()) {
			p.advance(1)
		}
		if p.pos == digitsStart {
			return nil, ctlerrors.NewParseError("missing exponent digit", p.spanAt(expMarkStart, p.pos))
		}
	}

	text := p.src[start:p.pos]
	sp := p.spanAt(start, p.pos)

	if base == 8 && isFloat {
		return nil, ctlerrors.NewParseError("octal literal must be an integer", sp)
	}

	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, ctlerrors.NewParseError("invalid floating point literal", sp)
		}
		return &ast.DoubleLiteral{Value: f, LitSpan: sp}, nil
	}

	digits := text[basePrefixLen:]
	if digits == "" {
		return nil, ctlerrors.NewParseError("expected digits after numeric base prefix", sp)
	}
	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return nil, ctlerrors.NewParseError("integer literal overflow", sp)
	}
	if u > math.MaxInt64 {
		return nil, ctlerrors.NewParseError("integer literal overflow", sp)
	}
	return &ast.IntegerLiteral{Value: int64(u), LitSpan: sp}, nil
}

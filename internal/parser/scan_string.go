package parser

import (
	"github.com/m-ou-se/configtaal/internal/ast"
	"github.com/m-ou-se/configtaal/internal/ctlerrors"
	"github.com/m-ou-se/configtaal/internal/tracker"
)

// scanStringLiteral scans a `"..."` or `'...'` literal, decoding escape
// sequences as it goes. A literal with no escapes never touches the
// tracker's StringBuilder: its Value is a zero-copy substring of the
// source. One with escapes is assembled byte range by byte range, each
// range attributed back to the source text (plain run or escape sequence)
// it came from, so a later error pointing into the decoded string can still
// resolve to a real source location.
func (p *Parser) scanStringLiteral() (*ast.StringLiteral, error) {
	originalStart := p.pos
	quote := p.peekByte()
	p.advance(1)

	b := p.tr.Builder()
	contentStart := p.pos
	escaped := false

	for {
		segStart := p.pos
		for !p.atEOF() && p.peekByte() != quote && p.peekByte() != '\\' {
			p.advance(1)
		}
		segEnd := p.pos

		if p.atEOF() {
			return nil, ctlerrors.NewParseError("unterminated string literal", p.spanAt(originalStart, p.pos))
		}

		if p.peekByte() == quote {
			finalSegEnd := segEnd
			p.advance(1)
			if !escaped {
				return &ast.StringLiteral{
					Value:   p.src[contentStart:finalSegEnd],
					LitSpan: p.spanAt(originalStart, p.pos),
				}, nil
			}
			if finalSegEnd > segStart {
				b.Append(p.src[segStart:finalSegEnd], p.spanAt(segStart, finalSegEnd))
			}
			sp := b.Build()
			return &ast.StringLiteral{
				Value:   p.tr.Slice(sp),
				LitSpan: p.spanAt(originalStart, p.pos),
			}, nil
		}

		if segEnd > segStart {
			b.Append(p.src[segStart:segEnd], p.spanAt(segStart, segEnd))
		}
		escaped = true
		if err := p.scanEscape(b); err != nil {
			return nil, err
		}
	}
}

// scanEscape decodes one `\...` escape sequence starting at the current
// position (which must be a backslash) and appends its decoded bytes to b.
func (p *Parser) scanEscape(b *tracker.StringBuilder) error {
	escStart := p.pos
	if p.pos+1 >= len(p.src) {
		return ctlerrors.NewParseError("incomplete escape sequence", p.spanAt(escStart, len(p.src)))
	}
	c := p.byteAt(p.pos + 1)

	switch c {
	case '\\', '"':
		p.advance(2)
		b.Append(string(c), p.spanAt(escStart, p.pos))
		return nil
	case 't':
		p.advance(2)
		b.Append("\t", p.spanAt(escStart, p.pos))
	case 'n':
		p.advance(2)
		b.Append("\n", p.spanAt(escStart, p.pos))
	case 'r':
		p.advance(2)
		b.Append("\r", p.spanAt(escStart, p.pos))
	case 'b':
		p.advance(2)
		b.Append("\b", p.spanAt(escStart, p.pos))
	case 'a':
		p.advance(2)
		b.Append("\a", p.spanAt(escStart, p.pos))
	case 'e':
		p.advance(2)
		b.Append("\x1b", p.spanAt(escStart, p.pos))
	case 'f':
		p.advance(2)
		b.Append("\f", p.spanAt(escStart, p.pos))
	case 'v':
		p.advance(2)
		b.Append("\v", p.spanAt(escStart, p.pos))
	case '\n':
		p.advance(2) // line continuation: produces no bytes
	case 'x':
		p.advance(2)
		hi, err := p.scanHexDigit()
		if err != nil {
			return err
		}
		lo, err := p.scanHexDigit()
		if err != nil {
			return err
		}
		b.Append(string([]byte{byte(hi<<4 | lo)}), p.spanAt(escStart, p.pos))
	case 'u', 'U':
		return p.scanUnicodeEscape(b, escStart, c == 'U')
	default:
		return p.scanUnrecognizedOrOctalEscape(b, escStart, c)
	}
	return nil
}

func (p *Parser) scanUnrecognizedOrOctalEscape(b *tracker.StringBuilder, escStart int, c byte) error {
	if c >= '0' && c <= '7' {
		p.advance(1) // skip backslash
		val := int(p.peekByte() - '0')
		p.advance(1)
		digits := 1
		for digits < 3 && !p.atEOF() && p.peekByte() >= '0' && p.peekByte() <= '7' {
			val = val<<3 | int(p.peekByte()-'0')
			p.advance(1)
			digits++
		}
		if val > 255 {
			return ctlerrors.NewParseError("octal escape sequence out of range", p.spanAt(escStart, p.pos))
		}
		b.Append(string([]byte{byte(val)}), p.spanAt(escStart, p.pos))
		return nil
	}
	return ctlerrors.NewParseError("invalid escape sequence", p.spanAt(escStart, escStart+2))
}

// scanHexDigit reads one hex digit and returns its numeric value.
func (p *Parser) scanHexDigit() (int, error) {
	if p.atEOF() || !isHexDigit(p.peekByte()) {
		return 0, ctlerrors.NewParseError("expected hexadecimal digit (0-9, a-f, A-F)", p.herePoint())
	}
	c := p.peekByte()
	p.advance(1)
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, nil
	default:
		return int(c-'A') + 10, nil
	}
}

// scanUnicodeEscape decodes `\uHHHH` or `\UHHHHHHHH`, rejects surrogate
// codepoints and codepoints at or above 0x200000, and appends the UTF-8
// encoding of the result.
func (p *Parser) scanUnicodeEscape(b *tracker.StringBuilder, escStart int, long bool) error {
	p.advance(2) // skip \u or \U
	digits := 4
	if long {
		digits = 8
	}
	var cp rune
	for i := 0; i < digits; i++ {
		d, err := p.scanHexDigit()
		if err != nil {
			return err
		}
		cp = cp<<4 | rune(d)
	}
	encoded, ok := encodeUTF8(cp)
	if !ok {
		return ctlerrors.NewParseError("invalid unicode codepoint", p.spanAt(escStart, p.pos))
	}
	b.Append(encoded, p.spanAt(escStart, p.pos))
	return nil
}

// encodeUTF8 encodes cp using the canonical 1/2/3/4-byte UTF-8 forms,
// rejecting surrogate codepoints and anything at or beyond 0x200000 (CTL's
// codepoint ceiling, wider than standard Unicode's 0x10FFFF).
func encodeUTF8(cp rune) (string, bool) {
	if cp >= 0xD800 && cp <= 0xDFFF {
		return "", false
	}
	switch {
	case cp < 0x80:
		return string([]byte{byte(cp)}), true
	case cp < 0x800:
		return string([]byte{
			byte(0xC0 | cp>>6),
			byte(0x80 | cp&0x3F),
		}), true
	case cp < 0x10000:
		return string([]byte{
			byte(0xE0 | cp>>12),
			byte(0x80 | (cp>>6)&0x3F),
			byte(0x80 | cp&0x3F),
		}), true
	case cp < 0x200000:
		return string([]byte{
			byte(0xF0 | cp>>18),
			byte(0x80 | (cp>>12)&0x3F),
			byte(0x80 | (cp>>6)&0x3F),
			byte(0x80 | cp&0x3F),
		}), true
	default:
		return "", false
	}
}

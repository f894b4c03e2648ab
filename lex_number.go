package vktor

// resumeNumber implements the number lexer described by the component
// design: a local submask, seeded with Dot, Sign, and Exp all available,
// is progressively narrowed as the literal is consumed. A digit is always
// accepted and is not itself tracked in the submask. The token's Kind
// starts as Integer and is promoted to Float the first time a '.' or
// exponent marker is accepted.
func (p *Parser) resumeNumber() (Status, error) {
	for {
		b, ok := p.peekByte()
		if !ok {
			p.tokenResume = true
			return StatusMoreData, nil
		}
		switch {
		case b >= '0' && b <= '9':
			p.advanceByte()
			p.appendValueByte(b)
			p.numMask &^= maskSign
			p.hasDigit = true
			p.lastWasDigit = true
		case b == '.':
			if p.numMask&maskDot == 0 || !p.hasDigit {
				return p.fail(UnexpectedInput, "unexpected '.' in number")
			}
			p.advanceByte()
			p.appendValueByte(b)
			p.numMask &^= maskDot
			p.tok = Float
			p.lastWasDigit = false
		case b == 'e' || b == 'E':
			if p.numMask&maskExp == 0 || !p.hasDigit || !p.lastWasDigit {
				return p.fail(UnexpectedInput, "unexpected exponent marker in number")
			}
			p.advanceByte()
			p.appendValueByte('e')
			p.numMask &^= maskExp | maskDot
			p.numMask |= maskSign
			p.tok = Float
			p.lastWasDigit = false
		case b == '+' || b == '-':
			if p.numMask&maskSign == 0 {
				return p.fail(UnexpectedInput, "unexpected sign in number")
			}
			p.advanceByte()
			p.appendValueByte(b)
			p.numMask &^= maskSign
			p.lastWasDigit = false
		default:
			if !p.lastWasDigit {
				return p.fail(UnexpectedInput, "incomplete number literal")
			}
			p.tokenResume = false
			p.expect = p.afterValueExpect()
			return StatusOK, nil
		}
	}
}

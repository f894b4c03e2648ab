package vktor

// literalText is the exact byte sequence expected for each of the three
// JSON keyword tokens.
func literalText(k Kind) string {
	switch k {
	case Null:
		return "null"
	case True:
		return "true"
	case False:
		return "false"
	default:
		panic("vktor: internal error: not a literal kind")
	}
}

// startLiteral begins recognizing one of null/true/false. The caller has
// already verified the leading byte is legal at this point in the grammar
// but has not consumed it; the literal recognizer consumes the whole word
// itself so that a mismatch anywhere in it is reported uniformly.
func (p *Parser) startLiteral(k Kind) (Status, error) {
	p.tok = k
	p.litIdx = 0
	return p.resumeLiteral()
}

func (p *Parser) resumeLiteral() (Status, error) {
	want := literalText(p.tok)
	for p.litIdx < len(want) {
		b, ok := p.peekByte()
		if !ok {
			p.tokenResume = true
			return StatusMoreData, nil
		}
		if b != want[p.litIdx] {
			return p.fail(UnexpectedInput, "invalid literal, expected %q", want)
		}
		p.advanceByte()
		p.litIdx++
	}
	p.tokenResume = false
	p.litIdx = 0
	p.expect = p.afterValueExpect()
	return StatusOK, nil
}

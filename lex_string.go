package vktor

import "unicode/utf8"

// String/ObjectKey escape-resume stages. 0 is plain scanning; 1 is "just
// saw a backslash, waiting for the escape letter"; 2-5 are the four hex
// digits of a \uXXXX unit (2+n reads digit n); 8 and 9 wait for the
// backslash and 'u' that must introduce the low half of a surrogate pair.
const (
	strStagePlain = iota
	strStageEscape
	strStageHex0
	strStageHex1
	strStageHex2
	strStageHex3
	_
	_
	strStageLowBackslash
	strStageLowU
)

func hexNibble(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// resumeString decodes a quoted string or object key byte by byte,
// starting immediately after the opening quote. It resolves the standard
// JSON escapes and combines UTF-16 surrogate pairs produced by \uXXXX
// units into a single UTF-8 encoded scalar. Unescaped control characters
// (0x00-0x1F) are rejected rather than passed through.
func (p *Parser) resumeString() (Status, error) {
	for {
		switch p.strEscStage {
		case strStagePlain:
			b, ok := p.peekByte()
			if !ok {
				p.tokenResume = true
				return StatusMoreData, nil
			}
			switch {
			case b == '"':
				p.advanceByte()
				p.tokenResume = false
				if p.isKey {
					p.expect = maskColon
				} else {
					p.expect = p.afterValueExpect()
				}
				return StatusOK, nil
			case b == '\\':
				p.advanceByte()
				p.strEscStage = strStageEscape
			case b < 0x20:
				return p.fail(UnexpectedInput, "unescaped control character %#02x in string", b)
			default:
				p.advanceByte()
				p.appendValueByte(b)
			}
		case strStageEscape:
			b, ok := p.peekByte()
			if !ok {
				p.tokenResume = true
				return StatusMoreData, nil
			}
			p.advanceByte()
			switch b {
			case '"':
				p.appendValueByte('"')
				p.strEscStage = strStagePlain
			case '\\':
				p.appendValueByte('\\')
				p.strEscStage = strStagePlain
			case '/':
				p.appendValueByte('/')
				p.strEscStage = strStagePlain
			case 'b':
				p.appendValueByte('\b')
				p.strEscStage = strStagePlain
			case 'f':
				p.appendValueByte('\f')
				p.strEscStage = strStagePlain
			case 'n':
				p.appendValueByte('\n')
				p.strEscStage = strStagePlain
			case 'r':
				p.appendValueByte('\r')
				p.strEscStage = strStagePlain
			case 't':
				p.appendValueByte('\t')
				p.strEscStage = strStagePlain
			case 'u':
				p.strEscStage = strStageHex0
				p.strHex = 0
			default:
				return p.fail(UnexpectedInput, "invalid escape sequence '\\%c'", b)
			}
		case strStageHex0, strStageHex1, strStageHex2, strStageHex3:
			b, ok := p.peekByte()
			if !ok {
				p.tokenResume = true
				return StatusMoreData, nil
			}
			nib, ok := hexNibble(b)
			if !ok {
				return p.fail(UnexpectedInput, "invalid hex digit %q in \\u escape", b)
			}
			p.advanceByte()
			p.strHex = p.strHex<<4 | uint32(nib)
			p.strEscStage++
			if p.strEscStage > strStageHex3 {
				if err := p.finishHexUnit(); err != nil {
					return p.failErr(err)
				}
			}
		case strStageLowBackslash:
			b, ok := p.peekByte()
			if !ok {
				p.tokenResume = true
				return StatusMoreData, nil
			}
			if b != '\\' {
				return p.fail(UnexpectedInput, "unpaired high surrogate in string")
			}
			p.advanceByte()
			p.strEscStage = strStageLowU
		case strStageLowU:
			b, ok := p.peekByte()
			if !ok {
				p.tokenResume = true
				return StatusMoreData, nil
			}
			if b != 'u' {
				return p.fail(UnexpectedInput, "unpaired high surrogate in string")
			}
			p.advanceByte()
			p.strEscStage = strStageHex0
			p.strHex = 0
		default:
			return p.fail(Internal, "invalid string escape resume stage")
		}
	}
}

// finishHexUnit is called immediately after the fourth hex digit of a
// \uXXXX unit has been read. It never blocks on input, so it is safe to
// run eagerly rather than as a persisted resume stage.
func (p *Parser) finishHexUnit() *ParseError {
	const (
		surrHighLo = 0xD800
		surrHighHi = 0xDBFF
		surrLowLo  = 0xDC00
		surrLowHi  = 0xDFFF
	)
	if p.strHigh < 0 {
		switch {
		case p.strHex >= surrHighLo && p.strHex <= surrHighHi:
			p.strHigh = int32(p.strHex)
			p.strEscStage = strStageLowBackslash
		case p.strHex >= surrLowLo && p.strHex <= surrLowHi:
			return p.newError(UnexpectedInput, "unexpected low surrogate \\u%04x in string", p.strHex)
		default:
			p.growValue(utf8.UTFMax)
			p.value = utf8.AppendRune(p.value, rune(p.strHex))
			p.strEscStage = strStagePlain
		}
		return nil
	}
	if p.strHex < surrLowLo || p.strHex > surrLowHi {
		return p.newError(UnexpectedInput, "unpaired high surrogate in string")
	}
	scalar := 0x10000 + (rune(p.strHigh)-surrHighLo)*0x400 + (rune(p.strHex) - surrLowLo)
	p.growValue(utf8.UTFMax)
	p.value = utf8.AppendRune(p.value, scalar)
	p.strHigh = -1
	p.strEscStage = strStagePlain
	return nil
}

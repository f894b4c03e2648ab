package vktor

import (
	"errors"
	"strconv"
)

// Int parses the current token's text as a signed 64-bit integer. It is
// only valid when Token() == Integer.
func (p *Parser) Int() (int64, error) {
	if p.tok != Integer {
		return 0, p.noValueError()
	}
	v, err := strconv.ParseInt(string(p.value), 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, p.newError(OutOfRange, "integer %q out of range for int64", p.value)
		}
		return 0, p.newError(Internal, "malformed integer text %q: %v", p.value, err)
	}
	return v, nil
}

// Float parses the current token's text as a 64-bit float. It is valid for
// either Token() == Float or Token() == Integer (an integer's text is
// always a syntactically valid float).
func (p *Parser) Float() (float64, error) {
	if p.tok != Float && p.tok != Integer {
		return 0, p.noValueError()
	}
	v, err := strconv.ParseFloat(string(p.value), 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, p.newError(OutOfRange, "float %q out of range for float64", p.value)
		}
		return 0, p.newError(Internal, "malformed float text %q: %v", p.value, err)
	}
	return v, nil
}

// String returns the text of the current token. For Token() == String or
// ObjectKey this is the decoded value; for Token() == Integer or Float it is
// the literal number text, letting a caller fall back to it when Int or
// Float reports OutOfRange. The returned string is a fresh copy (Go string
// values are always immutable snapshots of the bytes they were built from),
// so unlike the original library's borrowed pointer it remains valid after
// the next call to Next; see DESIGN.md for why StringCopy is kept as a
// distinct, identically-behaved method rather than special-cased.
func (p *Parser) String() (string, error) {
	switch p.tok {
	case String, ObjectKey, Integer, Float:
		return string(p.value), nil
	default:
		return "", p.noValueError()
	}
}

// StringCopy is equivalent to String. It exists to preserve the "borrowed
// vs. owned copy" surface named in the external-interface mapping, even
// though Go's string conversion already copies.
func (p *Parser) StringCopy() (string, error) {
	return p.String()
}

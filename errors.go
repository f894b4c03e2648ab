package vktor

import "fmt"

// ErrorKind is the closed set of error categories a Parser can report. The
// numeric value of a Kind is stable and is used verbatim as a process exit
// code by the cmd/vktor drivers.
type ErrorKind int

const (
	// OutOfMemory is reported when an Allocator fails to satisfy a request.
	OutOfMemory ErrorKind = iota + 1
	// UnexpectedInput is reported when a byte is seen that is not legal at
	// the current point in the grammar (malformed literal, mismatched
	// closer, invalid escape sequence, invalid number syntax, unescaped
	// control character in a string, and so on).
	UnexpectedInput
	// IncompleteData is reported when the chunk chain is exhausted and the
	// caller has indicated no further data is coming (reserved for driver
	// use; the core parser itself only ever reports StatusMoreData and
	// leaves the decision of "no more data is coming" to the caller).
	IncompleteData
	// NoValue is reported by a value accessor (Int, Float, String,
	// StringCopy) called when the current token carries no such value.
	NoValue
	// OutOfRange is reported by Int or Float when the token's text is
	// syntactically a valid number but does not fit the requested Go type.
	OutOfRange
	// MaxDepth is reported when opening a container would bring the depth
	// to the maxDepth the Parser was configured with (the deepest reachable
	// depth is maxDepth-1).
	MaxDepth
	// Internal indicates a bug in the parser itself.
	Internal
)

func (k ErrorKind) String() string {
	switch k {
	case OutOfMemory:
		return "out-of-memory"
	case UnexpectedInput:
		return "unexpected-input"
	case IncompleteData:
		return "incomplete-data"
	case NoValue:
		return "no-value"
	case OutOfRange:
		return "out-of-range"
	case MaxDepth:
		return "max-depth"
	case Internal:
		return "internal"
	default:
		return "invalid"
	}
}

// ParseError is the concrete error type returned by Parser.Next and the
// value accessors. Offset is the byte offset within the overall fed input
// at which the error was detected; it has no meaning beyond diagnostics.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Offset  int64
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vktor: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
}

func (p *Parser) newError(kind ErrorKind, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...), Offset: p.consumedOffset}
}

// fail records err as the Parser's terminal error and returns the
// (Status, error) pair Next should return. Once a Parser has failed, all
// further state is unspecified; any subsequent call to Next returns the
// same error.
func (p *Parser) fail(kind ErrorKind, format string, args ...interface{}) (Status, error) {
	err := p.newError(kind, format, args...)
	p.err = err
	return StatusOK, err
}

func (p *Parser) failErr(err *ParseError) (Status, error) {
	p.err = err
	return StatusOK, err
}

func (p *Parser) noValueError() *ParseError {
	return p.newError(NoValue, "token kind %s carries no such value", p.tok)
}

/*
Package vktor implements a streaming, pull-based JSON parser.

Unlike encoding/json's Decoder, a vktor Parser never reads from an
io.Reader itself and never blocks: the caller pushes bytes in with Feed and
pulls tokens out with Next, one at a time, in a loop. This makes it
suitable for event loops, network protocol handlers, or any setting where
input arrives in arbitrarily sized, arbitrarily timed chunks and a full
buffered read is undesirable.

Token-at-a-time parsing

A parsed document is exposed as a flat sequence of tokens rather than a
tree: array/object start and end markers, object keys, and scalar values.
The caller reconstructs whatever shape it needs (a DOM, a direct
unmarshal into Go values, a streaming transform) by tracking Parser.Depth
and Parser.Container itself.

	p := vktor.New(32)
	p.Feed([]byte(`{"a":[1,2,3]}`), true)
	for {
		status, err := p.Next()
		if err != nil {
			// err is a *vktor.ParseError
			break
		}
		if status == vktor.StatusComplete {
			break
		}
		if status == vktor.StatusMoreData {
			// Feed more input and call Next again.
			continue
		}
		switch p.Token() {
		case vktor.ObjectKey:
			key, _ := p.String()
			_ = key
		case vktor.Integer:
			n, _ := p.Int()
			_ = n
		}
	}

Resumable recognition

Next never partially consumes a token and leaves the rest for later in an
unobservable way: whenever input runs out mid-token (mid-string,
mid-number, mid-literal), Next returns StatusMoreData and all the state
needed to continue decoding that exact token is kept in the Parser's
fields rather than on the Go call stack. A later call to Next, once more
input has been Fed, resumes exactly where it left off. This holds even if
a chunk boundary falls in the middle of a \uXXXX escape or between the
digits of an exponent.

Errors

Once Next returns a non-nil error, the Parser has failed: the error is a
*ParseError carrying a closed set of ErrorKind values, and every further
call to Next returns the same error. A failed Parser should be discarded.
*/
package vktor

package vktor

// Allocator abstracts the byte-slice allocation used internally by a Parser
// to hold incoming chunk copies and accumulated token values. It replaces
// the original library's process-wide memory-handler installer with a value
// supplied per Parser, so that concurrent parsers never share global state.
//
// A Realloc implementation only needs to guarantee that the returned slice
// has length n and a capacity the caller may use for subsequent growth; it
// is free to grow in larger steps than requested.
type Allocator interface {
	Alloc(n int) []byte
	Realloc(b []byte, n int) []byte
	Free(b []byte)
}

// growthChunk is the minimum capacity increment the default Allocator grows
// a buffer by on each overflow, matching the original library's "grow by a
// fixed chunk" policy for accumulated token values.
const growthChunk = 128

type defaultAllocator struct{}

func (defaultAllocator) Alloc(n int) []byte { return make([]byte, n) }

func (defaultAllocator) Realloc(b []byte, n int) []byte {
	if cap(b) >= n {
		return b[:n]
	}
	newCap := cap(b) + growthChunk
	for newCap < n {
		newCap += growthChunk
	}
	nb := make([]byte, n, newCap)
	copy(nb, b)
	return nb
}

func (defaultAllocator) Free([]byte) {}

// DefaultAllocator returns the plain GC-backed Allocator a Parser uses when
// no WithAllocator option is given. It is exported so that a caller
// wrapping allocation behavior (for instance, the benchmark harness's
// counting allocator) can delegate to it instead of reimplementing growth.
func DefaultAllocator() Allocator { return defaultAllocator{} }

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithAllocator overrides the default Allocator used by a Parser. Absent
// this option, a Parser uses a plain GC-backed Allocator.
func WithAllocator(a Allocator) Option {
	return func(p *Parser) { p.alloc = a }
}

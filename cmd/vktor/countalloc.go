package main

import "github.com/shevron/vktor"

// countingAllocator wraps a plain Allocator and tallies calls, replacing
// the original benchmark driver's global my_malloc/my_realloc/my_free
// counters (installed there via vktor_set_memory_handlers) with a value
// scoped to a single Parser.
type countingAllocator struct {
	inner        vktor.Allocator
	allocs       int
	reallocs     int
	frees        int
	bytesAlloced int64
}

func newCountingAllocator(inner vktor.Allocator) *countingAllocator {
	return &countingAllocator{inner: inner}
}

func (c *countingAllocator) Alloc(n int) []byte {
	c.allocs++
	c.bytesAlloced += int64(n)
	return c.inner.Alloc(n)
}

func (c *countingAllocator) Realloc(b []byte, n int) []byte {
	c.reallocs++
	if n > cap(b) {
		c.bytesAlloced += int64(n - cap(b))
	}
	return c.inner.Realloc(b, n)
}

func (c *countingAllocator) Free(b []byte) {
	c.frees++
	c.inner.Free(b)
}

package vktor_test

import (
	"testing"

	"github.com/shevron/vktor"
)

type recordingAllocator struct {
	allocs, reallocs, frees int
}

func (r *recordingAllocator) Alloc(n int) []byte {
	r.allocs++
	return make([]byte, n)
}

func (r *recordingAllocator) Realloc(b []byte, n int) []byte {
	r.reallocs++
	if cap(b) >= n {
		return b[:n]
	}
	nb := make([]byte, n)
	copy(nb, b)
	return nb
}

func (r *recordingAllocator) Free(b []byte) { r.frees++ }

func TestWithAllocator_UsedForFeedAndClose(t *testing.T) {
	alloc := &recordingAllocator{}
	p := vktor.New(4, vktor.WithAllocator(alloc))
	if err := p.Feed([]byte(`"hello world, this is a long enough string to matter"`), false); err != nil {
		t.Fatal(err)
	}
	if alloc.allocs == 0 {
		t.Error("expected at least one Alloc call from a non-owned Feed")
	}
	if _, err := p.Next(); err != nil {
		t.Fatal(err)
	}
	p.Close()
	if alloc.frees == 0 {
		t.Error("expected at least one Free call from Close")
	}
}

func TestDefaultAllocator_GrowsCapacity(t *testing.T) {
	a := vktor.DefaultAllocator()
	b := a.Alloc(4)
	b2 := a.Realloc(b, 200)
	if len(b2) != 200 {
		t.Fatalf("got len %d, want 200", len(b2))
	}
	if cap(b2) < 200 {
		t.Fatalf("got cap %d, want >= 200", cap(b2))
	}
}

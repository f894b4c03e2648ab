package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shevron/vktor"
)

// directCounts drives a Parser over doc the same way benchFile does, without
// going through the CLI plumbing, as the independent reference the harness's
// own counters are checked against.
func directCounts(t *testing.T, doc []byte) tokenCounts {
	t.Helper()
	p := vktor.New(32)
	defer p.Close()
	if err := p.Feed(doc, true); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	var counts tokenCounts
	for {
		status, err := p.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if status == vktor.StatusComplete {
			break
		}
		if status == vktor.StatusOK {
			counts.add(p.Token())
		}
	}
	return counts
}

func TestBenchFile_CountsMatchDirectParserLoop(t *testing.T) {
	const doc = `{"id": 1, "name": "x", "tags": ["a", "b", null], "active": true, "score": 3.5, "parent": null}`

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	want := directCounts(t, []byte(doc))

	res, err := benchFile(path, 4096, 32, false)
	if err != nil {
		t.Fatalf("benchFile: %v", err)
	}

	if res.Counts != want {
		t.Fatalf("benchFile counts = %+v, want %+v", res.Counts, want)
	}
}

func TestBenchFile_MemtestTallysAllocatorCalls(t *testing.T) {
	const doc = `{"a": "a string long enough to force at least one reallocation of the value buffer"}`

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	res, err := benchFile(path, 4096, 32, true)
	if err != nil {
		t.Fatalf("benchFile: %v", err)
	}
	if res.Allocs == 0 && res.Reallocs == 0 {
		t.Error("expected memtest to observe at least one Alloc or Realloc call")
	}
}

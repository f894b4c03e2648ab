package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/shevron/vktor"
)

// tokenCounts mirrors the counters the original vktor-benchmark.c driver
// collected (c_nulls, c_falses, c_trues, c_ints, c_floats, c_strings,
// c_arrays, c_objects, c_obj_keys).
type tokenCounts struct {
	Nulls   int64 `cbor:"nulls"`
	Falses  int64 `cbor:"falses"`
	Trues   int64 `cbor:"trues"`
	Ints    int64 `cbor:"ints"`
	Floats  int64 `cbor:"floats"`
	Strings int64 `cbor:"strings"`
	Arrays  int64 `cbor:"arrays"`
	Objects int64 `cbor:"objects"`
	ObjKeys int64 `cbor:"obj_keys"`
}

func (c *tokenCounts) add(k vktor.Kind) {
	switch k {
	case vktor.Null:
		c.Nulls++
	case vktor.False:
		c.Falses++
	case vktor.True:
		c.Trues++
	case vktor.Integer:
		c.Ints++
	case vktor.Float:
		c.Floats++
	case vktor.String:
		c.Strings++
	case vktor.ArrayStart:
		c.Arrays++
	case vktor.ObjectStart:
		c.Objects++
	case vktor.ObjectKey:
		c.ObjKeys++
	}
}

func (c *tokenCounts) total() int64 {
	return c.Nulls + c.Falses + c.Trues + c.Ints + c.Floats + c.Strings + c.Arrays + c.Objects + c.ObjKeys
}

type benchResult struct {
	RunID    string        `cbor:"run_id"`
	File     string        `cbor:"file"`
	Counts   tokenCounts   `cbor:"counts"`
	Duration time.Duration `cbor:"duration_ns"`
	Allocs   int           `cbor:"allocs,omitempty"`
	Reallocs int           `cbor:"reallocs,omitempty"`
	Frees    int           `cbor:"frees,omitempty"`
}

func newBenchCmd() *cobra.Command {
	var bufSize, maxDepth int
	var memtest bool
	var reportPath string

	cmd := &cobra.Command{
		Use:   "bench [files...]",
		Short: "Parse one or more JSON files and report token counts and timing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if bufSize <= 0 {
				bufSize = defaultBufSizeFromEnv()
			}
			if maxDepth <= 0 {
				maxDepth = defaultMaxDepthFromEnv()
			}
			return runBench(cmd, args, bufSize, maxDepth, memtest, reportPath)
		},
	}
	cmd.Flags().IntVar(&bufSize, "bufsize", 0, "read buffer size in bytes (default: $BUFFSIZE or 4096)")
	cmd.Flags().IntVar(&maxDepth, "maxdepth", 0, "maximum nesting depth (default: $MAXDEPTH or 32)")
	cmd.Flags().BoolVar(&memtest, "memtest", false, "install a counting allocator and report alloc/realloc/free counts")
	cmd.Flags().StringVar(&reportPath, "report", "", "write all results as CBOR to this file")
	return cmd
}

func runBench(cmd *cobra.Command, files []string, bufSize, maxDepth int, memtest bool, reportPath string) error {
	runID := uuid.New().String()
	if len(files) == 0 {
		files = []string{"-"}
	}

	results := make([]benchResult, 0, len(files))
	for _, f := range files {
		res, err := benchFile(f, bufSize, maxDepth, memtest)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "vktor-bench: %s: %v\n", f, err)
			return &validateExitError{255}
		}
		res.RunID = runID
		results = append(results, res)
	}

	slices.SortFunc(results, func(a, b benchResult) bool {
		return a.Counts.total() > b.Counts.total()
	})

	fmt.Fprintf(cmd.OutOrStdout(), "run %s\n", runID)
	fmt.Fprintf(cmd.OutOrStdout(), "%-30s %8s %8s %8s %8s %8s %8s %8s %8s %10s %12s\n",
		"file", "nulls", "falses", "trues", "ints", "floats", "strings", "arrays", "objects", "obj_keys", "duration")
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%-30s %8d %8d %8d %8d %8d %8d %8d %8d %10d %12s\n",
			r.File, r.Counts.Nulls, r.Counts.Falses, r.Counts.Trues, r.Counts.Ints,
			r.Counts.Floats, r.Counts.Strings, r.Counts.Arrays, r.Counts.Objects, r.Counts.ObjKeys, r.Duration)
		if memtest {
			fmt.Fprintf(cmd.OutOrStdout(), "  allocs=%d reallocs=%d frees=%d\n", r.Allocs, r.Reallocs, r.Frees)
		}
	}

	if reportPath != "" {
		data, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return &validateExitError{255}
		}
		enc, err := data.Marshal(results)
		if err != nil {
			return &validateExitError{255}
		}
		if err := os.WriteFile(reportPath, enc, 0o644); err != nil {
			return &validateExitError{255}
		}
	}
	return nil
}

func benchFile(name string, bufSize, maxDepth int, memtest bool) (benchResult, error) {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return benchResult{}, err
		}
		defer f.Close()
		r = bufio.NewReader(f)
	}
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return benchResult{}, err
		}
		defer gz.Close()
		r = gz
	}

	var counter *countingAllocator
	var opts []vktor.Option
	if memtest {
		counter = newCountingAllocator(vktor.DefaultAllocator())
		opts = append(opts, vktor.WithAllocator(counter))
	}
	p := vktor.New(maxDepth, opts...)
	defer p.Close()

	var counts tokenCounts
	buf := make([]byte, bufSize)
	start := time.Now()

	for {
		status, err := p.Next()
		if err != nil {
			return benchResult{}, err
		}
		if status == vktor.StatusComplete {
			break
		}
		if status == vktor.StatusOK {
			counts.add(p.Token())
			continue
		}
		n, rerr := r.Read(buf)
		if n > 0 {
			if ferr := p.Feed(buf[:n], false); ferr != nil {
				return benchResult{}, ferr
			}
		}
		if rerr == io.EOF && n == 0 {
			break
		}
		if rerr != nil && rerr != io.EOF {
			return benchResult{}, rerr
		}
	}

	res := benchResult{File: name, Counts: counts, Duration: time.Since(start)}
	if counter != nil {
		res.Allocs, res.Reallocs, res.Frees = counter.allocs, counter.reallocs, counter.frees
	}
	return res, nil
}

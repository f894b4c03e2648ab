package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shevron/vktor"
)

// newJSON2YAMLCmd is a behavioral port of the original vktor-json2yaml.c
// demo: it streams deliberately-not-valid-YAML-ish indented text as tokens
// arrive, with no DOM ever built. The tiny default buffer size (64, the
// original's default) is kept so that running the demo by hand against a
// real document exercises chunk-boundary resumption.
func newJSON2YAMLCmd() *cobra.Command {
	var bufSize, maxDepth int

	cmd := &cobra.Command{
		Use:   "json2yaml [file]",
		Short: "Stream JSON as indented, deliberately-not-valid YAML-ish text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if bufSize <= 0 {
				bufSize = envInt("BUFFSIZE", 64)
			}
			if maxDepth <= 0 {
				maxDepth = defaultMaxDepthFromEnv()
			}
			r := io.Reader(os.Stdin)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return &validateExitError{255}
				}
				defer f.Close()
				r = f
			}
			return runJSON2YAML(cmd.OutOrStdout(), r, bufSize, maxDepth)
		},
	}
	cmd.Flags().IntVar(&bufSize, "bufsize", 0, "read buffer size in bytes (default: $BUFFSIZE or 64)")
	cmd.Flags().IntVar(&maxDepth, "maxdepth", 0, "maximum nesting depth (default: $MAXDEPTH or 32)")
	return cmd
}

func runJSON2YAML(w io.Writer, r io.Reader, bufSize, maxDepth int) error {
	p := vktor.New(maxDepth)
	defer p.Close()

	buf := make([]byte, bufSize)
	lastWasKey := false

	for {
		status, err := p.Next()
		if err != nil {
			pe, _ := err.(*vktor.ParseError)
			code := 255
			if pe != nil {
				code = int(pe.Kind)
				fmt.Fprintf(os.Stderr, "vktor-json2yaml: %s at offset %d: %s\n", pe.Kind, pe.Offset, pe.Message)
			}
			return &validateExitError{code}
		}
		if status == vktor.StatusComplete {
			return nil
		}
		if status == vktor.StatusMoreData {
			n, rerr := r.Read(buf)
			if n > 0 {
				if ferr := p.Feed(buf[:n], false); ferr != nil {
					return &validateExitError{255}
				}
			}
			if rerr == io.EOF && n == 0 {
				fmt.Fprintln(os.Stderr, "vktor-json2yaml: premature end of input")
				return &validateExitError{255}
			}
			if rerr != nil && rerr != io.EOF {
				return &validateExitError{255}
			}
			continue
		}

		indent := strings.Repeat("  ", p.Depth())
		inArray := p.Container() == vktor.ContainerArray

		switch p.Token() {
		case vktor.ObjectStart:
			lastWasKey = handleContainerStart(w, indent, inArray, lastWasKey, "{object}")
		case vktor.ArrayStart:
			lastWasKey = handleContainerStart(w, indent, inArray, lastWasKey, "{array}")
		case vktor.ObjectEnd, vktor.ArrayEnd:
			// closing is implicit in indentation; nothing to print.
		case vktor.ObjectKey:
			key, _ := p.String()
			fmt.Fprintf(w, "%s%s:", indent, key)
			lastWasKey = true
		default:
			var serr error
			if lastWasKey, serr = emitScalar(w, indent, inArray, lastWasKey, p); serr != nil {
				return &validateExitError{255}
			}
		}
	}
}

func handleContainerStart(w io.Writer, indent string, inArray, lastWasKey bool, label string) bool {
	switch {
	case lastWasKey:
		fmt.Fprintf(w, " %s\n", label)
	case inArray:
		fmt.Fprintf(w, "%s- %s\n", indent, label)
	default:
		fmt.Fprintf(w, "%s%s\n", indent, label)
	}
	return false
}

// emitScalar renders the current scalar token's value. Per the original
// driver's handling of VKTOR_ERR_OUT_OF_RANGE, a numeric literal that
// overflows int64/float64 falls back to its raw text via String, suffixed
// "## AS STRING ##", rather than silently printing the zero value.
func emitScalar(w io.Writer, indent string, inArray, lastWasKey bool, p *vktor.Parser) (bool, error) {
	var value string
	switch p.Token() {
	case vktor.Null:
		value = "null"
	case vktor.True:
		value = "true"
	case vktor.False:
		value = "false"
	case vktor.Integer:
		n, err := p.Int()
		if err != nil {
			if value, err = asStringFallback(p, err); err != nil {
				return false, err
			}
		} else {
			value = strconv.FormatInt(n, 10)
		}
	case vktor.Float:
		f, err := p.Float()
		if err != nil {
			if value, err = asStringFallback(p, err); err != nil {
				return false, err
			}
		} else {
			value = strconv.FormatFloat(f, 'g', -1, 64)
		}
	case vktor.String:
		s, _ := p.String()
		value = s
	}
	switch {
	case lastWasKey:
		fmt.Fprintf(w, " %s\n", value)
	case inArray:
		fmt.Fprintf(w, "%s- %s\n", indent, value)
	default:
		fmt.Fprintf(w, "%s%s\n", indent, value)
	}
	return false, nil
}

// asStringFallback handles an OutOfRange error from Int/Float by falling
// back to the token's raw literal text; any other error kind is returned
// unchanged for the caller to propagate.
func asStringFallback(p *vktor.Parser, err error) (string, error) {
	pe, ok := err.(*vktor.ParseError)
	if !ok || pe.Kind != vktor.OutOfRange {
		return "", err
	}
	s, serr := p.String()
	if serr != nil {
		return "", serr
	}
	return s + " ## AS STRING ##", nil
}

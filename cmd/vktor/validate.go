package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/cobra"

	"github.com/shevron/vktor"
)

type validateExitError struct {
	code int
}

func (e *validateExitError) Error() string { return fmt.Sprintf("exit %d", e.code) }
func (e *validateExitError) ExitCode() int { return e.code }

func newValidateCmd() *cobra.Command {
	var bufSize, maxDepth int
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate that input is well-formed JSON, streaming it through the parser",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if bufSize <= 0 {
				bufSize = defaultBufSizeFromEnv()
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
			return runValidate(cmd, r, bufSize, maxDepth, schemaPath)
		},
	}
	cmd.Flags().IntVar(&bufSize, "bufsize", 0, "read buffer size in bytes (default: $BUFFSIZE or 4096)")
	cmd.Flags().IntVar(&maxDepth, "maxdepth", 0, "maximum nesting depth (default: $MAXDEPTH or 32)")
	cmd.Flags().StringVar(&schemaPath, "schema", "", "optional JSON Schema file to validate against after a successful parse")
	return cmd
}

func runValidate(cmd *cobra.Command, r io.Reader, bufSize, maxDepth int, schemaPath string) error {
	p := vktor.New(maxDepth)
	defer p.Close()

	var seen bytes.Buffer
	buf := make([]byte, bufSize)

	for {
		status, err := p.Next()
		if err != nil {
			pe, _ := err.(*vktor.ParseError)
			reportParseError(cmd, &seen, pe)
			code := 255
			if pe != nil {
				code = int(pe.Kind)
			}
			return &validateExitError{code}
		}
		if status == vktor.StatusComplete {
			break
		}
		if status == vktor.StatusOK {
			continue
		}
		n, rerr := r.Read(buf)
		if n > 0 {
			seen.Write(buf[:n])
			if ferr := p.Feed(buf[:n], false); ferr != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), ferr)
				return &validateExitError{255}
			}
		}
		if rerr == io.EOF && n == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "vktor-validate: premature end of input")
			return &validateExitError{255}
		}
		if rerr != nil && rerr != io.EOF {
			fmt.Fprintln(cmd.ErrOrStderr(), rerr)
			return &validateExitError{255}
		}
	}

	if schemaPath != "" {
		if err := validateSchema(seen.Bytes(), schemaPath); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return &validateExitError{int(vktor.UnexpectedInput)}
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

func reportParseError(cmd *cobra.Command, seen *bytes.Buffer, pe *vktor.ParseError) {
	if pe == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "vktor-validate: i/o error reading input")
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "vktor-validate: %s at offset %d: %s\n", pe.Kind, pe.Offset, pe.Message)
	line, col := lineAt(seen.Bytes(), pe.Offset)
	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n%s\n", line, caretLine(line, col))
}

func validateSchema(doc []byte, schemaPath string) error {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(schemaPath)
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(doc))
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decoding document for schema validation: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

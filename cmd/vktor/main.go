// Command vktor bundles the validate, json2yaml, and bench drivers for the
// github.com/shevron/vktor streaming JSON parser as subcommands of a single
// Cobra root command.
package main

import (
	"fmt"
	"os"
)

// exitCoder is implemented by errors that carry the process exit code a
// driver wants on failure, matching the original C drivers' "exit(err ?
// err->code : 255)" contract.
type exitCoder interface {
	ExitCode() int
}

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}
	if ec, ok := err.(exitCoder); ok {
		os.Exit(ec.ExitCode())
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(255)
}

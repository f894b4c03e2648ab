package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vktor",
		Short:         "Drivers for the vktor streaming JSON parser",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd())
	root.AddCommand(newJSON2YAMLCmd())
	root.AddCommand(newBenchCmd())
	return root
}

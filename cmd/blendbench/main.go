// Command blendbench benchmarks the alphablend backends against each other
// and checks that they agree with the float reference.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Registers the device-offload backend.
	_ "github.com/gogpu/alphablend/gpu"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blendbench",
		Short:         "Benchmark and cross-validate src-over compositing backends",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newCapsCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

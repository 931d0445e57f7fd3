package main

import (
	"fmt"

	"github.com/gogpu/alphablend"
	"github.com/spf13/cobra"
)

func newCapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "caps",
		Short: "Show the vector extensions and backends available on this host",
		Args:  cobra.NoArgs,
		RunE:  runCaps,
	}
}

func runCaps(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, ext := range []string{alphablend.ExtSSE2, alphablend.ExtSSSE3, alphablend.ExtAVX, alphablend.ExtAVX2, alphablend.ExtASIMD} {
		fmt.Fprintf(out, "%-6s %v\n", ext, alphablend.IsExtensionAvailable(ext))
	}
	fmt.Fprintln(out)
	for _, kind := range alphablend.Kinds() {
		b, err := alphablend.New(kind)
		if err != nil {
			fmt.Fprintf(out, "%-8s unavailable: %v\n", kind, err)
			continue
		}
		if c, ok := b.(alphablend.Closer); ok {
			c.Close()
		}
		fmt.Fprintf(out, "%-8s available\n", kind)
	}
	return nil
}

// Inspect command: report snapshot metadata without decoding values.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/bufdict/codec"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot-file>",
	Short: "Show a snapshot's header, keys, and shapes",
	Long: `Inspect parses a snapshot's header, key table, and field entries and
prints them. The payload is never decompressed, so this works for
decomposed (opaque element) snapshots without a decomposer.

Example:
  bufdict inspect fit-params.bd`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	summary, err := codec.Inspect(data)
	if err != nil {
		return fmt.Errorf("inspect snapshot: %w", err)
	}

	order := "little-endian"
	if summary.BigEndian {
		order = "big-endian"
	}

	fmt.Printf("payload:     %s\n", summary.Payload)
	fmt.Printf("compression: %s\n", summary.Compression)
	fmt.Printf("byte order:  %s\n", order)
	fmt.Printf("elements:    %d (%d payload bytes, digest 0x%016x)\n",
		summary.ElementCount, summary.PayloadBytes, summary.Digest)
	fmt.Printf("fields:      %d\n", len(summary.Fields))

	for _, field := range summary.Fields {
		if field.Scalar {
			fmt.Printf("  %-24s scalar        @ %d\n", field.Key, field.Start)
			continue
		}
		fmt.Printf("  %-24s shape %-8v @ %d (%d elements)\n", field.Key, field.Shape, field.Start, field.Size)
	}

	return nil
}

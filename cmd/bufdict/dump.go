// Dump command: print the values of a plain snapshot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/bufdict/codec"
)

var dumpFlat bool

var dumpCmd = &cobra.Command{
	Use:   "dump <snapshot-file>",
	Short: "Print the values of a plain (float64) snapshot",
	Long: `Dump decodes a plain snapshot and prints each key with its values.
Decomposed snapshots cannot be dumped: rebuilding their elements needs
the companion decomposer, use 'bufdict inspect' for those instead.

Example:
  bufdict dump fit-params.bd
  bufdict dump --flat fit-params.bd`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpFlat, "flat", false, "print the whole buffer as one flat vector")
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	d, err := codec.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	if dumpFlat {
		fmt.Println(d.Flat())
		return nil
	}

	for key, value := range d.All() {
		if value.IsScalar() {
			// Scalar spans hold exactly one element.
			fmt.Printf("%-24s %v\n", key, value.Flat()[0])
			continue
		}
		fmt.Printf("%-24s %v %v\n", key, value.Shape(), value.Flat())
	}

	return nil
}

// Package main provides the bufdict CLI for inspecting snapshot files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bufdict",
	Short: "bufdict inspects buffer dictionary snapshot files",
	Long: `bufdict inspects binary snapshots produced by the bufdict codec.

It reports the snapshot's payload kind, compression, keys, and shapes
without reconstructing any element, and can dump values for plain
(float64) snapshots.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(dumpCmd)
}

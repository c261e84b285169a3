// Command unidiff inspects and rewrites unified-format diffs. It reads a diff from a file argument (or stdin when the argument is omitted or "-") and never
// computes diffs itself.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "unidiff [command]",
		Short:        "Inspect and rewrite unified-format diffs",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(statCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(fmtCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

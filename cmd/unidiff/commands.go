package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ChrisTimperley/sourcelocation/diff"
	"github.com/ChrisTimperley/sourcelocation/internal/config"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

// readDiff parses the diff named by args: a single filename, "-" for stdin, or no argument (also stdin).
func readDiff(args []string) (diff.Diff, error) {
	var data []byte
	var err error
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return diff.Diff{}, fmt.Errorf("reading diff: %w", err)
	}
	return diff.ParseUnifiedDiff(string(data))
}

var filesCmd = &cobra.Command{
	Use:   "files [diff]",
	Short: "List the files changed by a diff",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := readDiff(args)
		if err != nil {
			return err
		}
		for _, f := range d.Files() {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}

var statCmd = &cobra.Command{
	Use:   "stat [diff]",
	Short: "Show per-file insertion and deletion counts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		d, err := readDiff(args)
		if err != nil {
			return err
		}
		printStat(cmd.OutOrStdout(), d, cfg.StatNameWidth)
		return nil
	},
}

var (
	stripCount int
	configPath string
)

var stripCmd = &cobra.Command{
	Use:   "strip [diff]",
	Short: "Remove leading path components from every filename",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := stripCount
		if !cmd.Flags().Changed("strip") {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			n = cfg.Strip
		}
		if n < 0 {
			return fmt.Errorf("strip count must be >= 0 (got %d)", n)
		}
		d, err := readDiff(args)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), d.Strip(n).String())
		return nil
	},
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [diff]",
	Short: "Re-render a diff in canonical form (preamble dropped, hunk counts recomputed)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := readDiff(args)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), d.String())
		return nil
	},
}

func init() {
	stripCmd.Flags().IntVarP(&stripCount, "strip", "p", 0, "number of leading path components to remove")
	stripCmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	statCmd.Flags().StringVar(&configPath, "config", "", "path to config file")
}

// displayName picks the filename shown for a file diff: the new name for added files, the old name otherwise.
func displayName(fd diff.FileDiff) string {
	if fd.OldFilename == "/dev/null" {
		return fd.NewFilename
	}
	return fd.OldFilename
}

func printStat(w io.Writer, d diff.Diff, maxNameWidth int) {
	nameWidth := 0
	for _, fd := range d.FileDiffs {
		width := runewidth.StringWidth(displayName(fd))
		if width > nameWidth {
			nameWidth = width
		}
	}
	if nameWidth > maxNameWidth {
		nameWidth = maxNameWidth
	}

	var totalInserted, totalDeleted int
	for _, fd := range d.FileDiffs {
		var inserted, deleted int
		for _, h := range fd.Hunks {
			for _, line := range h.Lines {
				switch line.(type) {
				case diff.InsertedLine:
					inserted++
				case diff.DeletedLine:
					deleted++
				}
			}
		}
		totalInserted += inserted
		totalDeleted += deleted
		fmt.Fprintf(w, " %s | +%d -%d\n", runewidth.FillRight(displayName(fd), nameWidth), inserted, deleted)
	}
	fmt.Fprintf(w, " %d file(s), +%d -%d\n", len(d.FileDiffs), totalInserted, totalDeleted)
}

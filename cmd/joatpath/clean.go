package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rcook/joatpath"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path...]",
	Short: "Normalize paths",
	Long: `Print each path in canonical form, one per line. With no
arguments and piped input, paths are read from stdin.`,
	RunE: runClean,
}

var (
	cleanUnix    bool
	cleanWindows bool
)

func init() {
	cleanCmd.Flags().BoolVar(&cleanUnix, "unix", false, "Use Unix path rules regardless of host")
	cleanCmd.Flags().BoolVar(&cleanWindows, "windows", false, "Use Windows path rules regardless of host")
	cleanCmd.MarkFlagsMutuallyExclusive("unix", "windows")
}

func runClean(cmd *cobra.Command, args []string) error {
	clean := joatpath.Clean
	switch {
	case cleanUnix:
		clean = joatpath.CleanUnix
	case cleanWindows:
		clean = joatpath.CleanWindows
	}

	if len(args) > 0 {
		for _, p := range args {
			fmt.Fprintln(cmd.OutOrStdout(), clean(p))
		}
		return nil
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("no paths given and stdin is a terminal")
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		fmt.Fprintln(cmd.OutOrStdout(), clean(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}

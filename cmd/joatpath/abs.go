package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcook/joatpath"
)

var absCmd = &cobra.Command{
	Use:   "abs [path...]",
	Short: "Resolve paths against a base directory",
	Long: `Resolve each path to an absolute path relative to the base
directory, lexically. An already-absolute path overrides the base.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAbs,
}

var absBase string

func init() {
	absCmd.Flags().StringVarP(&absBase, "base", "b", "", "Base directory (default: working directory)")
}

func runAbs(cmd *cobra.Command, args []string) error {
	base := absBase
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
		base = wd
	}

	for _, p := range args {
		resolved, err := joatpath.AbsolutePath(base, p)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), resolved)
	}
	return nil
}

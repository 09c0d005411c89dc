package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "joatpath",
	Short: "Lexical path normalization",
	Long: `joatpath normalizes file-system paths by string manipulation
alone. It collapses repeated separators, eliminates "." and ".."
elements, and can resolve relative paths against a base directory,
all without touching the file system.`,
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(absCmd)
}

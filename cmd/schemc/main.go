package main

import (
	"fmt"
	"os"
)

var (
	flagLayout string
	flagOutDir string
	flagBase   string
)

func main() {
	rootCmd.AddCommand(buildCmd, inspectCmd, replCmd)

	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "",
		"layout config YAML path (default: built-in spacing)")
	buildCmd.Flags().StringVarP(&flagOutDir, "out", "o", "",
		"output directory for artifacts (default: directory of the script)")
	buildCmd.Flags().StringVar(&flagBase, "base", "",
		"artifact base name (default: script name without extension)")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}

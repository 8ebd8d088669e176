package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <script>",
	Short: "Compile a script and print the laid-out circuit without writing files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		circ, g, err := compileArranged(args[0])
		if err != nil {
			return err
		}
		fmt.Print(renderReport(circ, g, nil))
		return nil
	},
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"goschem/pkg/circuit"
	"goschem/pkg/compiler"
	"goschem/pkg/layout"
)

var rootCmd = &cobra.Command{
	Use:   "schemc <command>",
	Short: "Compile boolean scripts into gate-network schematics",
	Long: "schemc compiles boolean scripts into laid-out logic-gate schematics.\n\n" +
		"A script is a sequence of let declarations, reassignments, and bare\n" +
		"expressions; every bare expression becomes an observed output of the\n" +
		"compiled circuit. A let without an initializer declares an input\n" +
		"lever.",
}

// loadLayout resolves the layout config: the --layout file when given,
// the stock spacing otherwise.
func loadLayout() (layout.Config, error) {
	if flagLayout == "" {
		return layout.DefaultConfig(), nil
	}
	return layout.LoadConfig(flagLayout)
}

// compileArranged runs the front half of the pipeline over a script
// file and lays the result out, the shared prelude of build and
// inspect.
func compileArranged(path string) (*circuit.Circuit, *layout.Grid, error) {
	cfg, err := loadLayout()
	if err != nil {
		return nil, nil, err
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	circ, err := compiler.Compile(string(source))
	if err != nil {
		return nil, nil, err
	}
	g, err := layout.Arrange(circ, cfg)
	if err != nil {
		return nil, nil, err
	}
	return circ, g, nil
}

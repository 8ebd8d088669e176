package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"goschem/pkg/schematic"
	"goschem/pkg/utils"
)

var buildCmd = &cobra.Command{
	Use:   "build <script>",
	Short: "Compile a script and write both schematic artifacts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		full, dir, err := utils.ResolveScript(args[0])
		if err != nil {
			return err
		}

		circ, g, err := compileArranged(full)
		if err != nil {
			return err
		}
		graph, schem, err := schematic.Emit(circ)
		if err != nil {
			return err
		}

		dest := flagOutDir
		if dest == "" {
			dest = dir
		}
		base := flagBase
		if base == "" {
			base = utils.BaseName(full)
		}

		if err := os.MkdirAll(dest, 0o755); err != nil {
			return err
		}
		if err := schematic.Write(dest, base, graph, schem); err != nil {
			return err
		}

		fmt.Printf("placed %d blocks across %d layers -> %s\n",
			len(circ.Nodes), g.LayerCount(), filepath.Join(dest, base+".schem.json"))
		return nil
	},
}

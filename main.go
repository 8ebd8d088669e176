package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"goschem/pkg/circuit"
	"goschem/pkg/compiler"
	"goschem/pkg/layout"
	"goschem/pkg/schematic"
	"goschem/pkg/utils"
)

func main() {
	inPath := flag.String("in", "", "input boolean script path")
	outDir := flag.String("out", "", "output directory for artifacts (default: directory of -in)")
	baseName := flag.String("base", "", "artifact base name (default: input file name without extension)")
	layoutPath := flag.String("layout", "", "layout config YAML path (default: built-in spacing)")
	runCircuit := flag.Bool("run", false, "also evaluate the circuit with all levers off and print the observed outputs")
	verbose := flag.Bool("v", false, "log pipeline stages")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: provide -in <script> to compile")
		flag.Usage()
		os.Exit(2)
	}

	inFull, inDir, err := utils.ResolveScript(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve input path %q: %v\n", *inPath, err)
		os.Exit(1)
	}

	source, err := os.ReadFile(inFull)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input file %q: %v\n", *inPath, err)
		os.Exit(1)
	}

	cfg := layout.DefaultConfig()
	if *layoutPath != "" {
		cfg, err = layout.LoadConfig(*layoutPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	if *verbose {
		log.Printf("compiling %s", inFull)
	}
	circ, err := compiler.Compile(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "compilation failed: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		log.Printf("arranging %d nodes", len(circ.Nodes))
	}
	g, err := layout.Arrange(circ, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	graph, schem, err := schematic.Emit(circ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	dest := *outDir
	if dest == "" {
		dest = inDir
	}
	base := *baseName
	if base == "" {
		base = utils.BaseName(inFull)
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory %q: %v\n", dest, err)
		os.Exit(1)
	}
	if *verbose {
		log.Printf("writing %s artifacts to %s", base, dest)
	}
	if err := schematic.Write(dest, base, graph, schem); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write artifacts: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("placed %d blocks across %d layers -> %s\n",
		len(circ.Nodes), g.LayerCount(), filepath.Join(dest, base+".schem.json"))

	if *runCircuit {
		_, outs := circuit.Evaluate(circ, nil)
		for i, out := range circ.Outputs {
			fmt.Printf("output %d (%s) = %t\n", i, out, outs[i])
		}
	}
}

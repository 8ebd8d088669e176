package main

import (
	"fmt"
	"strconv"
	"strings"

	"goschem/pkg/circuit"
	"goschem/pkg/layout"
)

// renderReport formats a compiled, arranged circuit for the terminal:
// the node table, the observed outputs with their levels under the
// given lever settings, and a layer histogram.
func renderReport(circ *circuit.Circuit, g *layout.Grid, levers map[int]bool) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(fmt.Sprintf("circuit: %d nodes, %d layers", len(circ.Nodes), g.LayerCount())))
	b.WriteByte('\n')

	b.WriteString(styleHeader.Render(fmt.Sprintf("%-4s %-6s %-14s %5s %5s  %-14s %s",
		"id", "kind", "label", "depth", "layer", "position", "operands")))
	b.WriteByte('\n')
	for _, n := range circ.Nodes {
		operands := make([]string, len(n.Operands))
		for i, op := range n.Operands {
			operands[i] = strconv.Itoa(op.ID)
		}
		fmt.Fprintf(&b, "%-4d %-6s %-14s %5d %5d  %-14s %s\n",
			n.ID, n.Kind, n.Label, n.Depth, n.Layer, n.Pos, strings.Join(operands, " "))
	}

	_, outs := circuit.Evaluate(circ, levers)
	b.WriteString(styleHeader.Render("outputs"))
	b.WriteByte('\n')
	if len(circ.Outputs) == 0 {
		b.WriteString(styleDim.Render("(none)"))
		b.WriteByte('\n')
	}
	for i, out := range circ.Outputs {
		level := styleOff.Render("false")
		if outs[i] {
			level = styleOn.Render("true")
		}
		fmt.Fprintf(&b, "%-4d %s = %s\n", out.ID, out, level)
	}

	b.WriteString(styleHeader.Render("layers"))
	b.WriteByte('\n')
	for i, nodes := range g.Layers {
		fmt.Fprintf(&b, "%-4d %s %d\n", i, styleBar.Render(strings.Repeat("#", len(nodes))), len(nodes))
	}

	return b.String()
}

package layout

import (
	"goschem/pkg/circuit"
)

// place stamps a position onto every node in the grid. X separates
// layers, Z separates ranks within a layer, and Y stays on the baseline
// except for nodes whose fan-out exceeds the configured threshold,
// which get lifted to ease wiring congestion around them. No two nodes
// in a layer share a position because ranks are distinct.
func place(g *Grid, fanOut []int, cfg Config) {
	for _, layer := range g.Layers {
		for rank, n := range layer {
			n.Pos = circuit.Position{
				X: n.Layer * cfg.LayerSpacing,
				Y: cfg.BaselineY,
				Z: rank * cfg.RankSpacing,
			}
			if fanOut[n.ID] > cfg.FanOutThreshold {
				n.Pos.Y += cfg.FanOutLift
			}
		}
	}
}

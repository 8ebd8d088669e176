package layout

import (
	"goschem/pkg/circuit"
)

// Grid groups a circuit's nodes by layer. Layers[d] holds every node of
// depth d in creation order; a node's index within its layer is its
// rank.
type Grid struct {
	Layers [][]*circuit.SignalNode
}

// LayerCount returns how many layers the grid spans.
func (g *Grid) LayerCount() int {
	return len(g.Layers)
}

// layerize computes each node's depth (longest operand chain back to a
// source) and groups nodes into layers, one layer per depth.
//
// Creation order is already a topological order, because gates can only
// reference nodes that existed when they were built. The indegree
// bookkeeping does not discover the order; it verifies it. Any node
// reached while it still has unresolved operands means the node list
// was tampered with or a cycle was introduced by hand, and layering
// stops with an Error rather than placing garbage.
func layerize(c *circuit.Circuit) (*Grid, error) {
	indegree := make([]int, len(c.Nodes))
	consumers := make([][]int, len(c.Nodes))
	for i, n := range c.Nodes {
		if n.ID != i {
			return nil, errorf("node at index %d carries id %d", i, n.ID)
		}
		indegree[i] = len(n.Operands)
		for _, op := range n.Operands {
			if op.ID < 0 || op.ID >= len(c.Nodes) || c.Nodes[op.ID] != op {
				return nil, errorf("node %s reads %s, which is not in the circuit", n, op)
			}
			consumers[op.ID] = append(consumers[op.ID], i)
		}
	}

	g := &Grid{}
	for _, n := range c.Nodes {
		if indegree[n.ID] != 0 {
			return nil, errorf("node %s has %d unresolved operands; the circuit is not acyclic", n, indegree[n.ID])
		}

		depth := 0
		for _, op := range n.Operands {
			if op.Depth+1 > depth {
				depth = op.Depth + 1
			}
		}
		n.Depth = depth
		n.Layer = depth

		for len(g.Layers) <= depth {
			g.Layers = append(g.Layers, nil)
		}
		g.Layers[depth] = append(g.Layers[depth], n)

		for _, id := range consumers[n.ID] {
			indegree[id]--
		}
	}
	return g, nil
}

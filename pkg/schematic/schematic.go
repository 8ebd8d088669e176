package schematic

import (
	"fmt"

	"goschem/pkg/circuit"
)

// Version is stamped into every schematic artifact so later readers can
// tell what they are looking at.
const Version = 1

// Graph is the coordinate-free view of a circuit: pure connectivity,
// meant for inspection and debugging.
type Graph struct {
	Nodes   []GraphNode `json:"nodes"`
	Outputs []int       `json:"outputs"`
}

// GraphNode is one node of the intermediate graph.
type GraphNode struct {
	ID         int    `json:"id"`
	Kind       string `json:"kind"`
	OperandIDs []int  `json:"operandIds"`
}

// Schematic is the placed artifact: every block with its position and
// wired input ports, plus which blocks are observed outputs.
type Schematic struct {
	Version int     `json:"version"`
	Blocks  []Block `json:"blocks"`
	Outputs []int   `json:"outputs"`
}

// Block is one placed gate.
type Block struct {
	ID         int      `json:"id"`
	Kind       string   `json:"kind"`
	Position   Position `json:"position"`
	Inputs     []Port   `json:"inputs"`
	OutputPort int      `json:"outputPort"`
}

// Position is a block's 3D placement.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Port wires a block input to the output port of another block. Every
// gate has a single output today, so SourcePort is always 0; the field
// exists so the format survives multi-output blocks.
type Port struct {
	SourceID   int `json:"sourceId"`
	SourcePort int `json:"sourcePort"`
}

// Error reports a circuit the emitter cannot express, which means an
// upstream stage misbuilt it.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return "schematic: " + e.Msg
}

func errorf(format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

// Emit converts an arranged circuit into both artifacts: the
// intermediate graph and the full schematic. Block ids are the node ids,
// so the two artifacts cross-reference directly. Positions are read off
// the nodes; arrange the circuit first. Every port reference is checked
// against the node list and an unresolvable one is an Error.
func Emit(c *circuit.Circuit) (*Graph, *Schematic, error) {
	g := &Graph{
		Nodes:   make([]GraphNode, 0, len(c.Nodes)),
		Outputs: make([]int, 0, len(c.Outputs)),
	}
	s := &Schematic{
		Version: Version,
		Blocks:  make([]Block, 0, len(c.Nodes)),
		Outputs: make([]int, 0, len(c.Outputs)),
	}

	for _, n := range c.Nodes {
		operands := make([]int, 0, len(n.Operands))
		inputs := make([]Port, 0, len(n.Operands))
		for _, op := range n.Operands {
			if op.ID < 0 || op.ID >= len(c.Nodes) || c.Nodes[op.ID] != op {
				return nil, nil, errorf("block %d reads %s, which resolves to no block", n.ID, op)
			}
			operands = append(operands, op.ID)
			inputs = append(inputs, Port{SourceID: op.ID, SourcePort: 0})
		}
		g.Nodes = append(g.Nodes, GraphNode{
			ID:         n.ID,
			Kind:       n.Kind.String(),
			OperandIDs: operands,
		})
		s.Blocks = append(s.Blocks, Block{
			ID:         n.ID,
			Kind:       n.Kind.String(),
			Position:   Position{X: n.Pos.X, Y: n.Pos.Y, Z: n.Pos.Z},
			Inputs:     inputs,
			OutputPort: 0,
		})
	}

	for _, out := range c.Outputs {
		if out.ID < 0 || out.ID >= len(c.Nodes) || c.Nodes[out.ID] != out {
			return nil, nil, errorf("observed output %s resolves to no block", out)
		}
		g.Outputs = append(g.Outputs, out.ID)
		s.Outputs = append(s.Outputs, out.ID)
	}

	return g, s, nil
}

package circuit

import "fmt"

// Circuit is the full gate network of one compilation run: every node in
// creation order plus the signals exposed as observable outputs. A Circuit
// is transient; each run builds a fresh one and nothing is shared between
// runs.
type Circuit struct {
	Nodes   []*SignalNode
	Outputs []*SignalNode
}

func New() *Circuit {
	return &Circuit{}
}

// add appends a node and stamps its creation-order id.
func (c *Circuit) add(n *SignalNode) *SignalNode {
	n.ID = len(c.Nodes)
	c.Nodes = append(c.Nodes, n)
	return n
}

// NewInput creates an external lever named name.
func (c *Circuit) NewInput(name string) *SignalNode {
	return c.add(&SignalNode{Kind: INPUT, Label: name})
}

// NewConst creates a constant source. Callers that want the canonical
// TRUE/FALSE sharing discipline cache the result; the circuit itself does
// not deduplicate.
func (c *Circuit) NewConst(value bool) *SignalNode {
	label := "false"
	if value {
		label = "true"
	}
	return c.add(&SignalNode{Kind: CONST, Label: label, Value: value})
}

// NewGate creates a gate node over operands that already belong to the
// circuit. Referencing only existing nodes is what keeps the operand
// relation acyclic, so the arity check is the only guard needed here.
func (c *Circuit) NewGate(kind Kind, operands ...*SignalNode) *SignalNode {
	if kind.Source() {
		panic(fmt.Sprintf("%s is a source kind, not a gate", kind))
	}
	if len(operands) != kind.Arity() {
		panic(fmt.Sprintf("%s gate built with %d operands, want %d", kind, len(operands), kind.Arity()))
	}
	return c.add(&SignalNode{Kind: kind, Operands: operands})
}

// AddOutput marks n as externally observable. Order of calls is the order
// outputs appear in the emitted artifacts.
func (c *Circuit) AddOutput(n *SignalNode) {
	c.Outputs = append(c.Outputs, n)
}

// FanOut returns, indexed by node id, how many distinct nodes consume each
// node's output. A gate using the same operand twice counts once.
func (c *Circuit) FanOut() []int {
	counts := make([]int, len(c.Nodes))
	for _, n := range c.Nodes {
		for i, op := range n.Operands {
			repeat := false
			for _, earlier := range n.Operands[:i] {
				if earlier == op {
					repeat = true
					break
				}
			}
			if !repeat {
				counts[op.ID]++
			}
		}
	}
	return counts
}

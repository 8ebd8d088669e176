package circuit

import "fmt"

// Kind identifies what a SignalNode computes.
type Kind int

const (
	INPUT Kind = iota // external lever, toggled by the outside world

	CONST // canonical true/false source

	// Gates
	NOT  // 1 operand
	AND  // 2 operands
	OR   // 2 operands
	XOR  // 2 operands, true iff they differ
	XNOR // 2 operands, true iff they are equal
	MUX  // 3 operands: selector, true branch, false branch
)

// kindNames is indexed by Kind.
var kindNames = [...]string{
	INPUT: "INPUT",
	CONST: "CONST",
	NOT:   "NOT",
	AND:   "AND",
	OR:    "OR",
	XOR:   "XOR",
	XNOR:  "XNOR",
	MUX:   "MUX",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Arity returns the operand count k requires. The kind set is closed;
// an unknown kind is a programming error, not an input condition.
func (k Kind) Arity() int {
	switch k {
	case INPUT, CONST:
		return 0
	case NOT:
		return 1
	case AND, OR, XOR, XNOR:
		return 2
	case MUX:
		return 3
	}
	panic(fmt.Sprintf("unknown kind %d", int(k)))
}

// Source reports whether k produces a signal without consuming any.
func (k Kind) Source() bool {
	return k == INPUT || k == CONST
}

// Position is a point in schematic space. X separates dependency layers,
// Z separates ranks within a layer, Y is up.
type Position struct {
	X int
	Y int
	Z int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// SignalNode is a single boolean-valued point in the dataflow graph.
// Nodes are created exactly once by the graph builder, in program order,
// and the identity/operand fields are never touched afterwards. Depth,
// Layer and Pos are filled in exactly once by the layout pass.
type SignalNode struct {
	ID       int  // creation-order index; doubles as the block id
	Kind     Kind
	Operands []*SignalNode // ordered; length always matches Kind.Arity()

	Label string // variable name for INPUT, "true"/"false" for CONST
	Value bool   // CONST only

	Depth int
	Layer int
	Pos   Position
}

func (n *SignalNode) String() string {
	if n.Label != "" {
		return fmt.Sprintf("%s#%d(%s)", n.Kind, n.ID, n.Label)
	}
	return fmt.Sprintf("%s#%d", n.Kind, n.ID)
}

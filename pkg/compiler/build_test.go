package compiler

import (
	"errors"
	"testing"

	"goschem/pkg/circuit"
)

func buildSource(t *testing.T, src string) *circuit.Circuit {
	t.Helper()
	circ, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", src, err)
	}
	return circ
}

func TestBuildCanonicalConstants(t *testing.T) {
	circ := buildSource(t, "let a = true; let b = true; let c = false; a && b;")

	consts := 0
	for _, n := range circ.Nodes {
		if n.Kind == circuit.CONST {
			consts++
		}
	}
	if consts != 2 {
		t.Fatalf("got %d const nodes, want 2 (one per value)", consts)
	}

	// Both `true` literals resolve to the same node, so the AND reads the
	// same operand twice.
	and := circ.Nodes[len(circ.Nodes)-1]
	if and.Kind != circuit.AND {
		t.Fatalf("last node is %s, want AND", and.Kind)
	}
	if and.Operands[0] != and.Operands[1] {
		t.Errorf("two true literals built distinct nodes %v and %v", and.Operands[0], and.Operands[1])
	}
}

func TestBuildInputLever(t *testing.T) {
	circ := buildSource(t, "let lever; lever;")

	if len(circ.Nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(circ.Nodes))
	}
	n := circ.Nodes[0]
	if n.Kind != circuit.INPUT || n.Label != "lever" {
		t.Errorf("node = %s label %q; want INPUT labelled lever", n.Kind, n.Label)
	}
	if len(circ.Outputs) != 1 || circ.Outputs[0] != n {
		t.Errorf("lever is not the observed output")
	}
}

func TestBuildOperatorKinds(t *testing.T) {
	tests := []struct {
		src  string
		want circuit.Kind
	}{
		{"let a = true; !a;", circuit.NOT},
		{"let a = true; a && a;", circuit.AND},
		{"let a = true; a || a;", circuit.OR},
		{"let a = true; a == a;", circuit.XNOR},
		{"let a = true; a != a;", circuit.XOR},
		{"let a = true; a ? a : a;", circuit.MUX},
	}

	for _, tc := range tests {
		circ := buildSource(t, tc.src)
		out := circ.Outputs[0]
		if out.Kind != tc.want {
			t.Errorf("output of %q is %s; want %s", tc.src, out.Kind, tc.want)
		}
	}
}

func TestBuildMuxOperandOrder(t *testing.T) {
	circ := buildSource(t, "let s; let x; let y; s ? x : y;")

	mux := circ.Outputs[0]
	if mux.Kind != circuit.MUX {
		t.Fatalf("output is %s, want MUX", mux.Kind)
	}
	labels := []string{mux.Operands[0].Label, mux.Operands[1].Label, mux.Operands[2].Label}
	if labels[0] != "s" || labels[1] != "x" || labels[2] != "y" {
		t.Errorf("mux operands = %v; want selector, consequent, alternate", labels)
	}
}

func TestBuildRebinding(t *testing.T) {
	// Rebinding a name must not disturb nodes already built from the old
	// binding.
	circ := buildSource(t, "let a = true; let b = a; a = false; let c = a; b != c;")

	xor := circ.Outputs[0]
	bNode, cNode := xor.Operands[0], xor.Operands[1]
	if bNode == cNode {
		t.Fatalf("b and c resolve to the same node %v despite rebinding", bNode)
	}
	if !bNode.Value || cNode.Value {
		t.Errorf("b = %v, c = %v; want true-const and false-const", bNode, cNode)
	}
}

func TestBuildSelfReassignment(t *testing.T) {
	// `a = !a` reads the binding from before the statement.
	circ := buildSource(t, "let a = true; a = !a; a;")

	out := circ.Outputs[0]
	if out.Kind != circuit.NOT {
		t.Fatalf("output is %s, want NOT", out.Kind)
	}
	if op := out.Operands[0]; op.Kind != circuit.CONST || !op.Value {
		t.Errorf("NOT reads %v; want the original true const", op)
	}
}

func TestBuildSharedSubexpression(t *testing.T) {
	// The same variable feeding two gates shares one node, making the
	// structure a DAG rather than a tree.
	circ := buildSource(t, "let a = true; let x = !a; let y = x && a; let z = x || a; y == z;")

	var notNode *circuit.SignalNode
	for _, n := range circ.Nodes {
		if n.Kind == circuit.NOT {
			notNode = n
		}
	}
	if notNode == nil {
		t.Fatalf("no NOT node built")
	}

	consumers := 0
	for _, n := range circ.Nodes {
		for _, op := range n.Operands {
			if op == notNode {
				consumers++
			}
		}
	}
	if consumers != 2 {
		t.Errorf("NOT node has %d consuming edges; want 2 (shared, not copied)", consumers)
	}
}

func TestBuildNodeIDsAreCreationOrder(t *testing.T) {
	circ := buildSource(t, "let a = true; let b = false; let c = a && !b; c;")

	for i, n := range circ.Nodes {
		if n.ID != i {
			t.Fatalf("node %d carries id %d", i, n.ID)
		}
		for _, op := range n.Operands {
			if op.ID >= n.ID {
				t.Errorf("node %d references operand %d; operands must be created first", n.ID, op.ID)
			}
		}
	}
}

func TestBuildUnboundIdentifierIsInternal(t *testing.T) {
	// Reaching the builder without validation is the only way to trip the
	// internal unbound-name fault.
	_, err := Build([]Stmt{&ExprStmt{Expr: &Identifier{Name: "ghost", Line: 3}, Line: 3}})
	var ue *UnboundIdentifierError
	if !errors.As(err, &ue) {
		t.Fatalf("Build error is %T (%v); want *UnboundIdentifierError", err, err)
	}
	if ue.Name != "ghost" || ue.Line != 3 {
		t.Errorf("fault = %v; want ghost at line 3", ue)
	}

	_, err = Build([]Stmt{&Assignment{Name: "ghost", Value: &BooleanLiteral{Value: true}, Line: 4}})
	if !errors.As(err, &ue) {
		t.Fatalf("assignment fault is %T (%v); want *UnboundIdentifierError", err, err)
	}
}

func TestBuildOutputsInProgramOrder(t *testing.T) {
	circ := buildSource(t, "let a = true; let b = false; b; a; a && b;")

	if len(circ.Outputs) != 3 {
		t.Fatalf("got %d outputs, want 3", len(circ.Outputs))
	}
	if circ.Outputs[0].Value || !circ.Outputs[1].Value {
		t.Errorf("first two outputs = %v, %v; want false-const then true-const", circ.Outputs[0], circ.Outputs[1])
	}
	if circ.Outputs[2].Kind != circuit.AND {
		t.Errorf("third output is %s; want AND", circ.Outputs[2].Kind)
	}
}

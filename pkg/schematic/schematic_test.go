package schematic

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"goschem/pkg/circuit"
	"goschem/pkg/layout"
)

// arranged builds a && !b with both inputs shared by a || b, then lays
// it out with the stock spacing.
func arranged(t *testing.T) *circuit.Circuit {
	t.Helper()
	c := circuit.New()
	a := c.NewInput("a")
	b := c.NewInput("b")
	notB := c.NewGate(circuit.NOT, b)
	c.AddOutput(c.NewGate(circuit.AND, a, notB))
	c.AddOutput(c.NewGate(circuit.OR, a, b))
	if _, err := layout.Arrange(c, layout.DefaultConfig()); err != nil {
		t.Fatalf("Arrange failed: %v", err)
	}
	return c
}

func TestEmitGraph(t *testing.T) {
	c := arranged(t)
	g, _, err := Emit(c)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	if len(g.Nodes) != 5 {
		t.Fatalf("graph has %d nodes, want 5", len(g.Nodes))
	}
	wantKinds := []string{"INPUT", "INPUT", "NOT", "AND", "OR"}
	for i, n := range g.Nodes {
		if n.ID != i {
			t.Errorf("graph node %d carries id %d", i, n.ID)
		}
		if n.Kind != wantKinds[i] {
			t.Errorf("graph node %d kind = %q, want %q", i, n.Kind, wantKinds[i])
		}
	}

	and := g.Nodes[3]
	if len(and.OperandIDs) != 2 || and.OperandIDs[0] != 0 || and.OperandIDs[1] != 2 {
		t.Errorf("AND operandIds = %v, want [0 2]", and.OperandIDs)
	}
	if len(g.Outputs) != 2 || g.Outputs[0] != 3 || g.Outputs[1] != 4 {
		t.Errorf("graph outputs = %v, want [3 4]", g.Outputs)
	}
}

func TestEmitSchematic(t *testing.T) {
	c := arranged(t)
	_, s, err := Emit(c)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	if s.Version != Version {
		t.Errorf("version = %d, want %d", s.Version, Version)
	}
	if len(s.Blocks) != len(c.Nodes) {
		t.Fatalf("schematic has %d blocks, want %d", len(s.Blocks), len(c.Nodes))
	}

	for i, b := range s.Blocks {
		n := c.Nodes[i]
		if b.ID != n.ID {
			t.Errorf("block %d carries id %d", i, b.ID)
		}
		want := Position{X: n.Pos.X, Y: n.Pos.Y, Z: n.Pos.Z}
		if b.Position != want {
			t.Errorf("block %d placed at %+v, want %+v", i, b.Position, want)
		}
		if b.OutputPort != 0 {
			t.Errorf("block %d outputPort = %d, want 0", i, b.OutputPort)
		}
		for _, p := range b.Inputs {
			if p.SourcePort != 0 {
				t.Errorf("block %d reads sourcePort %d, want 0", i, p.SourcePort)
			}
		}
	}

	and := s.Blocks[3]
	if len(and.Inputs) != 2 || and.Inputs[0].SourceID != 0 || and.Inputs[1].SourceID != 2 {
		t.Errorf("AND inputs = %v, want sources 0 and 2", and.Inputs)
	}
	if len(s.Outputs) != 2 || s.Outputs[0] != 3 || s.Outputs[1] != 4 {
		t.Errorf("schematic outputs = %v, want [3 4]", s.Outputs)
	}
}

func TestEmitEmptyListsAreNotNull(t *testing.T) {
	c := circuit.New()
	c.NewInput("a")
	if _, err := layout.Arrange(c, layout.DefaultConfig()); err != nil {
		t.Fatalf("Arrange failed: %v", err)
	}

	g, s, err := Emit(c)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	gJSON, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal graph: %v", err)
	}
	sJSON, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal schematic: %v", err)
	}
	for _, encoded := range []string{string(gJSON), string(sJSON)} {
		if strings.Contains(encoded, "null") {
			t.Errorf("artifact encodes null instead of []: %s", encoded)
		}
	}
	if !strings.Contains(string(gJSON), `"operandIds":[]`) {
		t.Errorf("source node operandIds missing or not []: %s", gJSON)
	}
	if !strings.Contains(string(sJSON), `"inputs":[]`) {
		t.Errorf("source block inputs missing or not []: %s", sJSON)
	}
}

func TestEmitEmptyCircuit(t *testing.T) {
	g, s, err := Emit(circuit.New())
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	gJSON, _ := json.Marshal(g)
	sJSON, _ := json.Marshal(s)
	if string(gJSON) != `{"nodes":[],"outputs":[]}` {
		t.Errorf("empty graph encodes as %s", gJSON)
	}
	if string(sJSON) != `{"version":1,"blocks":[],"outputs":[]}` {
		t.Errorf("empty schematic encodes as %s", sJSON)
	}
}

func TestEmitRejectsUnresolvedPort(t *testing.T) {
	ghost := &circuit.SignalNode{ID: 9, Kind: circuit.INPUT, Label: "ghost"}
	n := &circuit.SignalNode{ID: 0, Kind: circuit.NOT, Operands: []*circuit.SignalNode{ghost}}
	c := &circuit.Circuit{Nodes: []*circuit.SignalNode{n}}

	g, s, err := Emit(c)
	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("unresolved port produced %T (%v); want *Error", err, err)
	}
	if g != nil || s != nil {
		t.Errorf("got partial artifacts alongside the error")
	}
}

func TestEmitRejectsUnresolvedOutput(t *testing.T) {
	c := circuit.New()
	c.NewInput("a")
	c.Outputs = append(c.Outputs, &circuit.SignalNode{ID: 4, Kind: circuit.INPUT})

	_, _, err := Emit(c)
	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("unresolved output produced %T (%v); want *Error", err, err)
	}
}

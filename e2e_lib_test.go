package main

import (
	"errors"
	"testing"

	"goschem/pkg/circuit"
	"goschem/pkg/compiler"
	"goschem/pkg/layout"
	"goschem/pkg/schematic"
)

func TestScriptToSchematic(t *testing.T) {
	// 1. Define the boolean script
	source := `
let a = true;
let b = false;
let c = a && !b;
let d = a || b;
let e = (a && b) ? false : true;
let same = (a == d);
let different = (a != b);
let intermediate = (c || d) && !different;
intermediate = intermediate ? e : b;
intermediate;
`

	// 2. Compile to a gate network
	circ, err := compiler.Compile(source)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if len(circ.Nodes) != 13 {
		t.Fatalf("built %d nodes, want 13", len(circ.Nodes))
	}
	if len(circ.Outputs) != 1 {
		t.Fatalf("observed %d outputs, want 1", len(circ.Outputs))
	}

	// 3. Arrange in 3D
	g, err := layout.Arrange(circ, layout.DefaultConfig())
	if err != nil {
		t.Fatalf("Arrange failed: %v", err)
	}
	if g.LayerCount() != 6 {
		t.Errorf("arranged %d layers, want 6", g.LayerCount())
	}

	// 4. Emit both artifacts
	graph, schem, err := schematic.Emit(circ)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if len(graph.Nodes) != 13 || len(schem.Blocks) != 13 {
		t.Errorf("artifacts carry %d graph nodes and %d blocks, want 13 each", len(graph.Nodes), len(schem.Blocks))
	}

	// 5. Evaluate: the script is all constants, so the output is fixed
	_, outs := circuit.Evaluate(circ, nil)
	if len(outs) != 1 || outs[0] != false {
		t.Errorf("observed outputs = %v, want [false]", outs)
	}
}

func TestRebindingKeepsEarlierUses(t *testing.T) {
	source := `
let a = true;
let b = a;
a = false;
let c = a;
b;
c;
`
	circ, err := compiler.Compile(source)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	_, outs := circuit.Evaluate(circ, nil)
	if len(outs) != 2 || outs[0] != true || outs[1] != false {
		t.Errorf("outputs = %v, want [true false]: b must keep the old binding", outs)
	}
}

func TestHalfAdderWithLevers(t *testing.T) {
	source := `
let x;
let y;
let carry = x && y;
let sum = x != y;
sum;
carry;
`
	circ, err := compiler.Compile(source)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if _, err := layout.Arrange(circ, layout.DefaultConfig()); err != nil {
		t.Fatalf("Arrange failed: %v", err)
	}

	tests := []struct {
		x, y       bool
		sum, carry bool
	}{
		{false, false, false, false},
		{true, false, true, false},
		{false, true, true, false},
		{true, true, false, true},
	}
	for _, tc := range tests {
		levers, err := circuit.LeversByName(circ, map[string]bool{"x": tc.x, "y": tc.y})
		if err != nil {
			t.Fatalf("LeversByName failed: %v", err)
		}
		_, outs := circuit.Evaluate(circ, levers)
		if outs[0] != tc.sum || outs[1] != tc.carry {
			t.Errorf("x=%t y=%t: sum=%t carry=%t, want sum=%t carry=%t",
				tc.x, tc.y, outs[0], outs[1], tc.sum, tc.carry)
		}
	}
}

func TestRejectedScripts(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing semicolon", "let a = true"},
		{"undeclared variable", "a && a;"},
		{"redeclaration", "let a = true; let a = false;"},
		{"assignment before declaration", "a = true;"},
		{"numeric literal", "let a = 1;"},
		{"self-referential init", "let a = a;"},
	}

	for _, tc := range tests {
		circ, err := compiler.Compile(tc.src)
		if err == nil {
			t.Errorf("%s: Compile accepted %q", tc.name, tc.src)
			continue
		}
		if circ != nil {
			t.Errorf("%s: got a circuit alongside the error", tc.name)
		}
	}
}

func TestErrorTypesSurviveThePipeline(t *testing.T) {
	var pe *compiler.ParseError
	if _, err := compiler.Compile("let a = ;"); !errors.As(err, &pe) {
		t.Errorf("syntax failure is %T, want *compiler.ParseError", err)
	}

	var se *compiler.SemanticError
	if _, err := compiler.Compile("ghost;"); !errors.As(err, &se) {
		t.Errorf("validation failure is %T, want *compiler.SemanticError", err)
	}

	circ, err := compiler.Compile("let a; a;")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	cfg := layout.DefaultConfig()
	cfg.LayerSpacing = 0
	var le *layout.Error
	if _, err := layout.Arrange(circ, cfg); !errors.As(err, &le) {
		t.Errorf("config failure is %T, want *layout.Error", err)
	}
}

package compiler

import (
	"fmt"

	"goschem/pkg/circuit"
)

// Builder walks a validated program in order and emits the gate network.
//
// env maps each variable name to the node currently bound to it. Rebinding
// replaces the map entry and never touches nodes already built; a node that
// lost its name stays in the circuit as long as other nodes reference it,
// which is what makes the result a DAG of shared sub-results rather than a
// tree.
type Builder struct {
	circuit    *circuit.Circuit
	env        map[string]*circuit.SignalNode
	constTrue  *circuit.SignalNode
	constFalse *circuit.SignalNode
}

func NewBuilder() *Builder {
	return &Builder{
		circuit: circuit.New(),
		env:     make(map[string]*circuit.SignalNode),
	}
}

// Build compiles a validated statement list into a Circuit. Statements are
// processed in program order; nodes are created exactly once and in a
// deterministic order, so identical programs always produce identical
// node ids.
func Build(stmts []Stmt) (*circuit.Circuit, error) {
	b := NewBuilder()
	for _, stmt := range stmts {
		if err := b.buildStmt(stmt); err != nil {
			return nil, err
		}
	}
	return b.circuit, nil
}

func (b *Builder) buildStmt(stmt Stmt) error {
	switch s := stmt.(type) {
	case *VariableDecl:
		if s.Init == nil {
			// A declaration without an initializer is an external lever.
			b.env[s.Name] = b.circuit.NewInput(s.Name)
			return nil
		}
		node, err := b.buildExpr(s.Init)
		if err != nil {
			return err
		}
		b.env[s.Name] = node
		return nil
	case *Assignment:
		// The value is compiled against the environment as it stands, so a
		// self-referential `a = !a` reads the binding from before this
		// statement.
		if _, ok := b.env[s.Name]; !ok {
			return &UnboundIdentifierError{Name: s.Name, Line: s.Line}
		}
		node, err := b.buildExpr(s.Value)
		if err != nil {
			return err
		}
		b.env[s.Name] = node
		return nil
	case *ExprStmt:
		node, err := b.buildExpr(s.Expr)
		if err != nil {
			return err
		}
		b.circuit.AddOutput(node)
		return nil
	default:
		panic(fmt.Sprintf("unknown statement %T", stmt))
	}
}

// buildExpr compiles one expression to its node. Operands are compiled left
// to right (test, consequent, alternate for a conditional), so node ids are
// a pure function of the program text.
func (b *Builder) buildExpr(expr Expr) (*circuit.SignalNode, error) {
	switch e := expr.(type) {
	case *BooleanLiteral:
		return b.constNode(e.Value), nil
	case *NumberLiteral:
		return nil, fmt.Errorf("line %d: numeric literal %s reached the graph builder", e.Line, e.Text)
	case *Identifier:
		node, ok := b.env[e.Name]
		if !ok {
			return nil, &UnboundIdentifierError{Name: e.Name, Line: e.Line}
		}
		return node, nil
	case *UnaryNot:
		operand, err := b.buildExpr(e.Operand)
		if err != nil {
			return nil, err
		}
		return b.circuit.NewGate(circuit.NOT, operand), nil
	case *LogicalAnd:
		return b.binaryGate(circuit.AND, e.Left, e.Right)
	case *LogicalOr:
		return b.binaryGate(circuit.OR, e.Left, e.Right)
	case *Equals:
		return b.binaryGate(circuit.XNOR, e.Left, e.Right)
	case *NotEquals:
		return b.binaryGate(circuit.XOR, e.Left, e.Right)
	case *Conditional:
		test, err := b.buildExpr(e.Test)
		if err != nil {
			return nil, err
		}
		consequent, err := b.buildExpr(e.Consequent)
		if err != nil {
			return nil, err
		}
		alternate, err := b.buildExpr(e.Alternate)
		if err != nil {
			return nil, err
		}
		return b.circuit.NewGate(circuit.MUX, test, consequent, alternate), nil
	default:
		panic(fmt.Sprintf("unknown expression %T", expr))
	}
}

func (b *Builder) binaryGate(kind circuit.Kind, left, right Expr) (*circuit.SignalNode, error) {
	l, err := b.buildExpr(left)
	if err != nil {
		return nil, err
	}
	r, err := b.buildExpr(right)
	if err != nil {
		return nil, err
	}
	return b.circuit.NewGate(kind, l, r), nil
}

// constNode returns the canonical node for a boolean literal, creating it on
// first use. All literals of the same value share one node.
func (b *Builder) constNode(value bool) *circuit.SignalNode {
	if value {
		if b.constTrue == nil {
			b.constTrue = b.circuit.NewConst(true)
		}
		return b.constTrue
	}
	if b.constFalse == nil {
		b.constFalse = b.circuit.NewConst(false)
	}
	return b.constFalse
}

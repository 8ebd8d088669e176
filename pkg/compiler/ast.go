package compiler

import "fmt"

//  Expression nodes

// Expr is implemented by every node that produces a boolean signal.
type Expr interface {
	exprNode()
	String() string
}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Value bool
	Line  int
}

func (*BooleanLiteral) exprNode()        {}
func (b *BooleanLiteral) String() string { return fmt.Sprintf("%t", b.Value) }

// NumberLiteral is a numeric constant. The parser accepts it so the
// validator can reject it with a location; it never reaches the builder.
type NumberLiteral struct {
	Text string
	Line int
}

func (*NumberLiteral) exprNode()        {}
func (n *NumberLiteral) String() string { return n.Text }

// Identifier is a read of a named signal.
//
//	let c = a && b;
//	        ^    ^  Identifier{Name: "a"}, Identifier{Name: "b"}
type Identifier struct {
	Name string
	Line int
}

func (*Identifier) exprNode()        {}
func (i *Identifier) String() string { return i.Name }

// UnaryNot represents !Operand.
type UnaryNot struct {
	Operand Expr
	Line    int
}

func (*UnaryNot) exprNode()        {}
func (u *UnaryNot) String() string { return fmt.Sprintf("(!%s)", u.Operand) }

// LogicalAnd represents Left && Right.
type LogicalAnd struct {
	Left  Expr
	Right Expr
	Line  int
}

func (*LogicalAnd) exprNode()        {}
func (a *LogicalAnd) String() string { return fmt.Sprintf("(%s && %s)", a.Left, a.Right) }

// LogicalOr represents Left || Right.
type LogicalOr struct {
	Left  Expr
	Right Expr
	Line  int
}

func (*LogicalOr) exprNode()        {}
func (o *LogicalOr) String() string { return fmt.Sprintf("(%s || %s)", o.Left, o.Right) }

// Equals represents Left == Right.
type Equals struct {
	Left  Expr
	Right Expr
	Line  int
}

func (*Equals) exprNode()        {}
func (e *Equals) String() string { return fmt.Sprintf("(%s == %s)", e.Left, e.Right) }

// NotEquals represents Left != Right.
type NotEquals struct {
	Left  Expr
	Right Expr
	Line  int
}

func (*NotEquals) exprNode()        {}
func (e *NotEquals) String() string { return fmt.Sprintf("(%s != %s)", e.Left, e.Right) }

// Conditional represents Test ? Consequent : Alternate.
type Conditional struct {
	Test       Expr
	Consequent Expr
	Alternate  Expr
	Line       int
}

func (*Conditional) exprNode() {}
func (c *Conditional) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", c.Test, c.Consequent, c.Alternate)
}

//  Statement nodes

// Stmt is implemented by every top-level program statement.
type Stmt interface {
	stmtNode()
	String() string
}

// VariableDecl represents  let name = expr;  or, with Init nil,
// let name;  which declares an external input lever.
type VariableDecl struct {
	Name string
	Init Expr // nil when the declaration has no initializer
	Line int
}

func (*VariableDecl) stmtNode() {}
func (d *VariableDecl) String() string {
	if d.Init == nil {
		return fmt.Sprintf("VariableDecl(let %s)", d.Name)
	}
	return fmt.Sprintf("VariableDecl(let %s = %s)", d.Name, d.Init)
}

// Assignment represents  name = expr;  rebinding an already declared name.
type Assignment struct {
	Name  string
	Value Expr
	Line  int
}

func (*Assignment) stmtNode() {}
func (a *Assignment) String() string {
	return fmt.Sprintf("Assignment(%s = %s)", a.Name, a.Value)
}

// ExprStmt represents a bare expression statement. Its value is exposed as
// an observed output of the circuit.
type ExprStmt struct {
	Expr Expr
	Line int
}

func (*ExprStmt) stmtNode() {}
func (e *ExprStmt) String() string {
	return fmt.Sprintf("ExprStmt(%s)", e.Expr)
}

package compiler

import "fmt"

// Validator enforces the scope and type discipline of a parsed program
// before any graph construction happens. The program is a single scope:
// a name is declared with `let` at most once, must be declared before any
// use or reassignment, and every value in the language is a boolean.
type Validator struct {
	declared map[string]bool
}

func NewValidator() *Validator {
	return &Validator{declared: make(map[string]bool)}
}

// Validate checks stmts in program order and returns the first violation
// as a SemanticError. It has no side effects beyond its own bookkeeping;
// the tree is not modified and no nodes are built.
func Validate(stmts []Stmt) error {
	v := NewValidator()
	for _, stmt := range stmts {
		if err := v.checkStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) checkStmt(stmt Stmt) error {
	switch s := stmt.(type) {
	case *VariableDecl:
		// The initializer is checked against the scope as it stands, so
		// `let a = a;` is a use before declaration.
		if s.Init != nil {
			if err := v.checkExpr(s.Init); err != nil {
				return err
			}
		}
		if v.declared[s.Name] {
			return &SemanticError{Line: s.Line, Msg: fmt.Sprintf("variable %q is already declared", s.Name)}
		}
		v.declared[s.Name] = true
		return nil
	case *Assignment:
		if !v.declared[s.Name] {
			return &SemanticError{Line: s.Line, Msg: fmt.Sprintf("assignment to undeclared variable %q", s.Name)}
		}
		return v.checkExpr(s.Value)
	case *ExprStmt:
		return v.checkExpr(s.Expr)
	default:
		panic(fmt.Sprintf("unknown statement %T", stmt))
	}
}

func (v *Validator) checkExpr(expr Expr) error {
	switch e := expr.(type) {
	case *BooleanLiteral:
		return nil
	case *NumberLiteral:
		return &SemanticError{Line: e.Line, Msg: fmt.Sprintf("numeric literal %s is not a boolean; only true and false exist here", e.Text)}
	case *Identifier:
		if !v.declared[e.Name] {
			return &SemanticError{Line: e.Line, Msg: fmt.Sprintf("use of undeclared variable %q", e.Name)}
		}
		return nil
	case *UnaryNot:
		return v.checkExpr(e.Operand)
	case *LogicalAnd:
		return v.checkBoth(e.Left, e.Right)
	case *LogicalOr:
		return v.checkBoth(e.Left, e.Right)
	case *Equals:
		return v.checkBoth(e.Left, e.Right)
	case *NotEquals:
		return v.checkBoth(e.Left, e.Right)
	case *Conditional:
		if err := v.checkExpr(e.Test); err != nil {
			return err
		}
		return v.checkBoth(e.Consequent, e.Alternate)
	default:
		panic(fmt.Sprintf("unknown expression %T", expr))
	}
}

func (v *Validator) checkBoth(left, right Expr) error {
	if err := v.checkExpr(left); err != nil {
		return err
	}
	return v.checkExpr(right)
}

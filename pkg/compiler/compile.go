package compiler

import (
	"goschem/pkg/circuit"
)

// Compile runs the whole front half over a source program: lex, parse,
// validate, build. It returns the gate network ready for layout, or the
// first failure as a typed error (ParseError, SemanticError, or an internal
// builder fault). Each call is independent; no state survives between runs.
func Compile(src string) (*circuit.Circuit, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}

	stmts, err := Parse(tokens, src)
	if err != nil {
		return nil, err
	}

	if err := Validate(stmts); err != nil {
		return nil, err
	}

	return Build(stmts)
}

package compiler

import "fmt"

// ParseError is a malformed-syntax failure from the lexer or parser.
// It is fatal to the run; nothing downstream sees a partial program.
type ParseError struct {
	Line    int
	Msg     string
	Snippet string // trimmed source line, when the parser has it
	AtEOF   bool   // the error happened at end of input
}

func (e *ParseError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("line %d: %s\n  |> %s", e.Line, e.Msg, e.Snippet)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// IsIncomplete reports whether err is a ParseError caused by running out of
// input, which interactive callers treat as "keep typing" rather than a
// hard failure.
func IsIncomplete(err error) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.AtEOF
}

// SemanticError is a scope or type violation found by the validator:
// use before declaration, redeclaration, assignment to an undeclared name,
// or a non-boolean literal. Fatal; graph construction never starts.
type SemanticError struct {
	Line int
	Msg  string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// UnboundIdentifierError means the graph builder could not resolve a name
// the validator had accepted. It signals an internal inconsistency between
// the two passes, not a user mistake; it should be unreachable.
type UnboundIdentifierError struct {
	Name string
	Line int
}

func (e *UnboundIdentifierError) Error() string {
	return fmt.Sprintf("line %d: unbound identifier %q; validator and builder disagree", e.Line, e.Name)
}

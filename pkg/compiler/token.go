package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals
	IDENTIFIER // variable name
	TRUE       // "true"
	FALSE      // "false"
	NUMBER     // numeric literal; lexed so the validator can reject it with a location

	// Keywords
	LET // "let"

	// Paired delimiters
	LPAREN // (
	RPAREN // )

	// Punctuation
	SEMICOLON // ;
	QUESTION  // ?
	COLON     // :

	// Operators  (order matters: ASSIGN before EQUALS)
	ASSIGN      // =
	EQUALS      // ==
	NOT_EQ      // !=
	NOT         // !
	AND_LOGICAL // &&
	OR_LOGICAL  // ||

	// Stray single-character forms of the logical operators. Never valid;
	// kept as their own tokens so the parser can name them in diagnostics.
	AMP  // &
	PIPE // |
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:         "EOF",
	IDENTIFIER:  "IDENTIFIER",
	TRUE:        "TRUE",
	FALSE:       "FALSE",
	NUMBER:      "NUMBER",
	LET:         "LET",
	LPAREN:      "LPAREN",
	RPAREN:      "RPAREN",
	SEMICOLON:   "SEMICOLON",
	QUESTION:    "QUESTION",
	COLON:       "COLON",
	ASSIGN:      "ASSIGN",
	EQUALS:      "EQUALS",
	NOT_EQ:      "NOT_EQ",
	NOT:         "NOT",
	AND_LOGICAL: "AND_LOGICAL",
	OR_LOGICAL:  "OR_LOGICAL",
	AMP:         "AMP",
	PIPE:        "PIPE",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-11s %-10q  line %d", t.Type, t.Lexeme, t.Line)
}

package compiler

import (
	"fmt"
	"strings"
)

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar:
//
//	program     = statement* EOF
//	statement   = "let" IDENTIFIER ("=" expression)? ";"
//	            | IDENTIFIER "=" expression ";"
//	            | expression ";"
//	expression  = ternary
//	ternary     = logical_or ("?" expression ":" expression)?
//	logical_or  = logical_and ("||" logical_and)*
//	logical_and = equality ("&&" equality)*
//	equality    = unary (("==" | "!=") unary)*
//	unary       = "!" unary | primary
//	primary     = "true" | "false" | NUMBER | IDENTIFIER | "(" expression ")"
type Parser struct {
	tokens      []Token
	pos         int
	sourceLines []string
}

func NewParser(tokens []Token, rawSource string) *Parser {
	return &Parser{tokens: tokens, sourceLines: strings.Split(rawSource, "\n")}
}

// fmtError wraps an error message with the source line where the token appears.
func (p *Parser) fmtError(tok Token, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	lineIdx := tok.Line - 1 // Lines are 1-based

	snippet := ""
	if lineIdx >= 0 && lineIdx < len(p.sourceLines) {
		snippet = strings.TrimSpace(p.sourceLines[lineIdx])
	}

	return &ParseError{Line: tok.Line, Msg: msg, Snippet: snippet, AtEOF: tok.Type == EOF}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

// peekNext returns the token immediately after the current one.
func (p *Parser) peekNext() Token {
	if p.pos+1 >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos+1]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches tt, otherwise returns an error.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.advance()
	if tok.Type != tt {
		return tok, p.fmtError(tok, "expected %s, got %s (%q)", tt, tok.Type, tok.Lexeme)
	}
	return tok, nil
}

// parseStatement dispatches on the first token of a statement.
func (p *Parser) parseStatement() (Stmt, error) {
	switch {
	case p.peek().Type == LET:
		return p.parseVariableDecl()
	case p.peek().Type == IDENTIFIER && p.peekNext().Type == ASSIGN:
		return p.parseAssignment()
	default:
		return p.parseExprStatement()
	}
}

// parseVariableDecl handles  let name = expr;  and  let name;
func (p *Parser) parseVariableDecl() (Stmt, error) {
	letTok := p.advance() // consume "let"
	nameTok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}

	var init Expr
	if p.peek().Type == ASSIGN {
		p.advance()
		init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &VariableDecl{Name: nameTok.Lexeme, Init: init, Line: letTok.Line}, nil
}

// parseAssignment handles  name = expr;
func (p *Parser) parseAssignment() (Stmt, error) {
	nameTok := p.advance() // consume the identifier
	p.advance()            // consume "="

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &Assignment{Name: nameTok.Lexeme, Value: value, Line: nameTok.Line}, nil
}

// parseExprStatement handles a bare expression statement, which exposes the
// expression's value as an observed output.
func (p *Parser) parseExprStatement() (Stmt, error) {
	first := p.peek()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr, Line: first.Line}, nil
}

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() (Expr, error) {
	return p.parseTernary()
}

// parseTernary handles cond ? consequent : alternate. Both arms are full
// expressions, so the operator is right-associative.
func (p *Parser) parseTernary() (Expr, error) {
	test, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != QUESTION {
		return test, nil
	}
	qTok := p.advance()

	consequent, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(COLON); err != nil {
		return nil, err
	}
	alternate, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Conditional{Test: test, Consequent: consequent, Alternate: alternate, Line: qTok.Line}, nil
}

// parseLogicalOr handles ||
func (p *Parser) parseLogicalOr() (Expr, error) {
	expr, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == OR_LOGICAL {
		opTok := p.advance()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		expr = &LogicalOr{Left: expr, Right: right, Line: opTok.Line}
	}
	return expr, nil
}

// parseLogicalAnd handles &&
func (p *Parser) parseLogicalAnd() (Expr, error) {
	expr, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == AND_LOGICAL {
		opTok := p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		expr = &LogicalAnd{Left: expr, Right: right, Line: opTok.Line}
	}
	return expr, nil
}

// parseEquality handles == and !=
func (p *Parser) parseEquality() (Expr, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == EQUALS || p.peek().Type == NOT_EQ {
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if opTok.Type == EQUALS {
			expr = &Equals{Left: expr, Right: right, Line: opTok.Line}
		} else {
			expr = &NotEquals{Left: expr, Right: right, Line: opTok.Line}
		}
	}

	return expr, nil
}

// parseUnary handles !
func (p *Parser) parseUnary() (Expr, error) {
	if p.peek().Type == NOT {
		opTok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryNot{Operand: operand, Line: opTok.Line}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles literals, identifiers and parenthesised expressions.
func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.advance()
	switch tok.Type {
	case TRUE:
		return &BooleanLiteral{Value: true, Line: tok.Line}, nil
	case FALSE:
		return &BooleanLiteral{Value: false, Line: tok.Line}, nil
	case NUMBER:
		return &NumberLiteral{Text: tok.Lexeme, Line: tok.Line}, nil
	case IDENTIFIER:
		return &Identifier{Name: tok.Lexeme, Line: tok.Line}, nil
	case LPAREN:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case AMP:
		return nil, p.fmtError(tok, "single '&' is not an operator; use '&&'")
	case PIPE:
		return nil, p.fmtError(tok, "single '|' is not an operator; use '||'")
	default:
		return nil, p.fmtError(tok, "expected an expression, got %s (%q)", tok.Type, tok.Lexeme)
	}
}

// Parse builds the statement list for a whole program. rawSource is the text
// the tokens came from; it is only used to attach source snippets to errors.
func Parse(tokens []Token, rawSource string) ([]Stmt, error) {
	p := NewParser(tokens, rawSource)
	var stmts []Stmt
	for p.peek().Type != EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

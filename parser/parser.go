/*
File    : plox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser for plox. It
// converts a flat token list from package lexer into the AST defined in
// package ast.
//
// Parsing never raises to the caller: a syntax error is recorded on the
// Parser and parsing carries on from the token where it was found, so a
// single Parse call surfaces every syntax error it reaches rather than
// stopping at the first one. The parser does not skip ahead to a
// statement boundary after an error, so one mistake can be followed by
// further errors caused by it.
package parser

import (
	"fmt"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/lexer"
)

// maxArgs is the limit on arguments per call and parameters per function
// declaration. Over the limit is reported as an error but does not stop
// the parse.
const maxArgs = 255

// Error is one syntax-error finding: the line it occurred on and a
// human-readable message.
type Error struct {
	Line    int
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Parser holds the token stream and parse state. Tokens is the full
// token list (as produced by lexer.Lexer.ConsumeTokens); Current indexes
// the token under examination.
type Parser struct {
	Tokens  []lexer.Token
	Current int
	Errors  []Error

	loopDepth int // incremented entering while/for, used to validate break
}

// New creates a Parser over tokens, ready to Parse.
func New(tokens []lexer.Token) *Parser {
	return &Parser{Tokens: tokens}
}

// HasErrors reports whether any syntax errors were collected.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// Parse consumes the entire token stream, returning the parsed Program
// and any syntax errors collected along the way. The returned Program is
// always non-nil, even when errors occurred, so callers that want a
// best-effort AST (e.g. astdump) can still walk it.
func (p *Parser) Parse() (*ast.Program, []Error) {
	prog := &ast.Program{}
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog, p.Errors
}

// ---- token-stream primitives ----

func (p *Parser) peek() lexer.Token { return p.Tokens[p.Current] }

func (p *Parser) previous() lexer.Token { return p.Tokens[p.Current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF_TYPE }

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

// advance consumes and returns the current token.
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.Current++
	}
	return p.previous()
}

// match advances and returns true if the current token is any of types.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has type t, otherwise
// records a parse error (without advancing) and returns the zero Token.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	p.errorAt(p.peek(), message)
	return lexer.Token{}
}

func (p *Parser) errorAt(tok lexer.Token, message string) {
	where := "end"
	if tok.Type != lexer.EOF_TYPE {
		where = fmt.Sprintf("'%s'", lexer.QuoteIfSpecial(tok.Literal))
	}
	p.Errors = append(p.Errors, Error{Line: tok.Line, Message: fmt.Sprintf("%s (at %s)", message, where)})
}

// synchronize discards tokens until it finds a likely statement
// boundary: just past a semicolon, or just before a keyword that starts
// a declaration or statement. declaration calls it only when a
// declaration that recorded an error yields no node; every declaration
// path returns a node, so a parse error does not lead to a call.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON_DELIM {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY:
			return
		}
		p.advance()
	}
}

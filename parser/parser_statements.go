/*
File    : plox/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/lexer"
)

// declaration parses a classDecl, funDecl, varDecl, or falls through to
// statement. The node is returned even when a parse error was recorded
// while parsing it; the deferred synchronize runs only for a nil result,
// which none of the paths below produce.
func (p *Parser) declaration() (result ast.Stmt) {
	before := len(p.Errors)
	defer func() {
		if len(p.Errors) > before && result == nil {
			p.synchronize()
		}
	}()

	switch {
	case p.check(lexer.CLASS_KEY):
		p.advance()
		return p.classDeclaration()
	case p.check(lexer.FUN_KEY) && p.checkNext(lexer.IDENTIFIER_ID):
		p.advance()
		return p.function("function")
	case p.match(lexer.VAR_KEY):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// checkNext reports whether the token after Current has type t, without
// consuming anything. Used at the one grammar site that needs two-token
// lookahead: telling a named `fun NAME(...)` declaration apart from an
// anonymous `fun(...)` expression.
func (p *Parser) checkNext(t lexer.TokenType) bool {
	if p.Current+1 >= len(p.Tokens) {
		return false
	}
	return p.Tokens[p.Current+1].Type == t
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER_ID, "Expect class name.")
	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.FunDecl
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if fn, ok := p.function("method").(*ast.FunDecl); ok {
			methods = append(methods, fn)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")
	return &ast.ClassDecl{Name: name, Methods: methods}
}

// function parses `IDENT "(" parameters? ")" block`, used for both
// top-level function declarations and class methods (kind is only used
// in error messages: "function" or "method").
func (p *Parser) function(kind string) ast.Stmt {
	name := p.consume(lexer.IDENTIFIER_ID, "Expect "+kind+" name.")
	p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER_ID, "Expect parameter name."))
			if !p.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunDecl{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER_ID, "Expect variable name.")

	var initializer ast.Expr
	if p.match(lexer.ASSIGN_OP) {
		initializer = p.expression()
	}
	p.consume(lexer.SEMICOLON_DELIM, "Expect ';' after variable declaration.")
	return &ast.VarDecl{Name: name, Initializer: initializer}
}

// statement parses any non-declaration statement.
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.PRINT_KEY):
		return p.printStatement()
	case p.match(lexer.LEFT_BRACE):
		return &ast.Block{Statements: p.block()}
	case p.match(lexer.IF_KEY):
		return p.ifStatement()
	case p.match(lexer.WHILE_KEY):
		return p.whileStatement()
	case p.match(lexer.FOR_KEY):
		return p.forStatement()
	case p.match(lexer.BREAK_KEY):
		return p.breakStatement()
	case p.match(lexer.RETURN_KEY):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON_DELIM, "Expect ';' after value.")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON_DELIM, "Expect ';' after expression.")
	return &ast.ExprStmt{Expression: expr}
}

// block parses `declaration* "}"`, assuming the opening '{' was already
// consumed by the caller.
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE_KEY) {
		elseBranch = p.statement()
	}
	return &ast.If{Condition: cond, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--
	return &ast.While{Condition: cond, Body: body}
}

// forStatement parses the classic three-clause for loop and desugars it
// into a Block wrapping an (optional) initializer and a While loop whose
// body re-appends the update clause: `for (I; C; U) S` becomes
// `{ I; while (C ?: true) { S; U; } }`, with I and U dropped when absent.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON_DELIM):
		// no initializer
	case p.check(lexer.VAR_KEY):
		p.advance()
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON_DELIM) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON_DELIM, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.ExprStmt{Expression: increment}}}
	} else {
		body = &ast.Block{Statements: []ast.Stmt{body}}
	}

	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	loop := ast.Stmt(&ast.While{Condition: condition, Body: body})

	if initializer != nil {
		loop = &ast.Block{Statements: []ast.Stmt{initializer, loop}}
	}
	return loop
}

func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.errorAt(keyword, "Can't use 'break' outside of a loop.")
	}
	p.consume(lexer.SEMICOLON_DELIM, "Expect ';' after 'break'.")
	return &ast.Break{Keyword: keyword}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMICOLON_DELIM) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON_DELIM, "Expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: value}
}

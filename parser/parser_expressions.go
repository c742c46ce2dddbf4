/*
File    : plox/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/lexer"
)

// expression is the grammar's entry point for expression parsing.
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment handles both plain variable assignment and property
// assignment (`object.name = value`), right-associatively: `a = b = c`
// parses as `a = (b = c)`. The left side is parsed as an ordinary
// expression first; only afterward do we check whether it's a shape
// assignment is legal against (Variable or Get). An illegal target is
// reported but the already-parsed left expression is still returned, so
// parsing can continue.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.ASSIGN_OP) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assignment{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR_KEY) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND_KEY) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.EQ_OP, lexer.NE_OP) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GT_OP, lexer.GE_OP, lexer.LT_OP, lexer.LE_OP) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.PLUS_OP, lexer.MINUS_OP) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.MUL_OP, lexer.DIV_OP) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.NOT_OP, lexer.MINUS_OP) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

// call parses a primary expression followed by any number of call and
// property-access suffixes: `primary ("(" arguments? ")" | "." IDENT)*`.
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT_OP):
			name := p.consume(lexer.IDENTIFIER_ID, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

// primary parses the grammar's terminal productions: literals, a bare
// identifier, a parenthesized expression, or an anonymous function
// expression.
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE_KEY):
		return &ast.Literal{Value: false}
	case p.match(lexer.TRUE_KEY):
		return &ast.Literal{Value: true}
	case p.match(lexer.NIL_KEY):
		return &ast.Literal{Value: nil}
	case p.match(lexer.NUMBER_LIT, lexer.STRING_LIT):
		return &ast.Literal{Value: p.previous().Value}
	case p.match(lexer.THIS_KEY):
		return &ast.This{Keyword: p.previous()}
	case p.match(lexer.IDENTIFIER_ID):
		return &ast.Variable{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Expression: expr}
	case p.match(lexer.FUN_KEY):
		return p.functionExpression()
	default:
		p.errorAt(p.peek(), "Expect expression.")
		p.advance()
		return &ast.Literal{Value: nil}
	}
}

// functionExpression parses `"(" parameters? ")" block`, the tail of an
// anonymous `fun(...)` expression (the leading `fun` was already
// consumed by the caller).
func (p *Parser) functionExpression() ast.Expr {
	keyword := p.previous()
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'fun'.")

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
	p.consume(lexer.LEFT_BRACE, "Expect '{' before function body.")
	body := p.block()
	return &ast.AnonymousFn{Keyword: keyword, Params: params, Body: body}
}

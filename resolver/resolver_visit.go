/*
File    : plox/resolver/resolver_visit.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/lexer"
)

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(n.Statements)
		r.endScope()

	case *ast.VarDecl:
		r.declare(n.Name.Literal, n.Name.Line)
		if n.Initializer != nil {
			r.resolveExpr(n.Initializer)
		}
		r.define(n.Name.Literal)

	case *ast.FunDecl:
		r.declare(n.Name.Literal, n.Name.Line)
		r.define(n.Name.Literal)
		r.resolveFunction(n.Params, n.Body, inFunction)

	case *ast.ClassDecl:
		enclosingClass := r.currentClass
		r.currentClass = inClass
		r.declare(n.Name.Literal, n.Name.Line)
		r.define(n.Name.Literal)

		r.beginScope()
		r.peekScope()["this"] = true
		for _, method := range n.Methods {
			kind := inMethod
			if method.Name.Literal == "init" {
				kind = inInitializer
			}
			r.resolveFunction(method.Params, method.Body, kind)
		}
		r.endScope()

		r.currentClass = enclosingClass

	case *ast.ExprStmt:
		r.resolveExpr(n.Expression)

	case *ast.PrintStmt:
		r.resolveExpr(n.Expression)

	case *ast.If:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}

	case *ast.While:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Body)

	case *ast.Break:
		// nothing to resolve; loop-boundary validity is the parser's job

	case *ast.Return:
		if r.currentFunction == notInFunction {
			r.error(n.Keyword.Line, "Can't return from top-level code.")
		}
		if n.Value != nil {
			if r.currentFunction == inInitializer {
				r.error(n.Keyword.Line, "Can't return a value from an initializer.")
			}
			r.resolveExpr(n.Value)
		}
	}
}

// resolveFunction pushes a new scope, declares and defines every
// parameter in it, resolves the body, then pops the scope — all under a
// saved/restored function-context flag so a nested function's top-level
// return check doesn't leak into the enclosing one.
func (r *Resolver) resolveFunction(params []lexer.Token, body []ast.Stmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range params {
		r.declare(param.Literal, param.Line)
		r.define(param.Literal)
	}
	r.resolveStmts(body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

// resolveAnonymousFn resolves a `fun(...) {...}` expression the same way
// as a named declaration's body, minus the name binding (an anonymous
// function has no name to declare).
func (r *Resolver) resolveAnonymousFn(n *ast.AnonymousFn) {
	r.resolveFunction(n.Params, n.Body, inFunction)
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch n := expr.(type) {
	case *ast.Literal:
		// nothing to resolve

	case *ast.Variable:
		if scope := r.peekScope(); scope != nil {
			if defined, declared := scope[n.Name.Literal]; declared && !defined {
				r.error(n.Name.Line, "Cannot read local variable in its own initializer.")
			}
		}
		r.resolveLocal(n, n.Name.Literal)

	case *ast.Assignment:
		r.resolveExpr(n.Value)
		r.resolveLocal(n, n.Name.Literal)

	case *ast.Unary:
		r.resolveExpr(n.Right)

	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Grouping:
		r.resolveExpr(n.Expression)

	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, arg := range n.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(n.Object)

	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)

	case *ast.This:
		if r.currentClass == notInClass {
			r.error(n.Keyword.Line, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(n, "this")

	case *ast.AnonymousFn:
		r.resolveAnonymousFn(n)
	}
}

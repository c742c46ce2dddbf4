/*
File    : plox/astdump/astdump.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package astdump pretty-prints a parsed program for debugging. It is
// an external collaborator, not a core language component: no package
// under lexer/parser/resolver/interpreter imports it, and it is reached
// only from the command-line driver's --print-ast flag.
package astdump

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/lexer"
)

const indentSize = 2

// Printer walks a Program's statement tree and renders one indented
// line per node, in the teacher's PrintingVisitor style but dispatching
// by type switch instead of double-dispatch Accept/Visit methods.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// Dump renders program as a newline-terminated, indented tree.
func Dump(program *ast.Program) string {
	p := &Printer{}
	p.writeLine("Program")
	p.indent += indentSize
	for _, stmt := range program.Statements {
		p.stmt(stmt)
	}
	p.indent -= indentSize
	return p.buf.String()
}

func (p *Printer) writeLine(format string, args ...any) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteString("\n")
}

func (p *Printer) block(label string, body func()) {
	p.writeLine("%s", label)
	p.indent += indentSize
	body()
	p.indent -= indentSize
}

func (p *Printer) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.ExprStmt:
		p.block("ExprStmt", func() { p.expr(n.Expression) })
	case *ast.PrintStmt:
		p.block("PrintStmt", func() { p.expr(n.Expression) })
	case *ast.VarDecl:
		p.block(fmt.Sprintf("VarDecl %s", n.Name.Literal), func() {
			if n.Initializer != nil {
				p.expr(n.Initializer)
			}
		})
	case *ast.Block:
		p.block("Block", func() {
			for _, stmt := range n.Statements {
				p.stmt(stmt)
			}
		})
	case *ast.If:
		p.block("If", func() {
			p.block("Condition", func() { p.expr(n.Condition) })
			p.block("Then", func() { p.stmt(n.Then) })
			if n.Else != nil {
				p.block("Else", func() { p.stmt(n.Else) })
			}
		})
	case *ast.While:
		p.block("While", func() {
			p.block("Condition", func() { p.expr(n.Condition) })
			p.block("Body", func() { p.stmt(n.Body) })
		})
	case *ast.Break:
		p.writeLine("Break")
	case *ast.FunDecl:
		p.block(fmt.Sprintf("FunDecl %s(%s)", n.Name.Literal, paramList(n.Params)), func() {
			for _, stmt := range n.Body {
				p.stmt(stmt)
			}
		})
	case *ast.Return:
		p.block("Return", func() {
			if n.Value != nil {
				p.expr(n.Value)
			}
		})
	case *ast.ClassDecl:
		p.block(fmt.Sprintf("ClassDecl %s", n.Name.Literal), func() {
			for _, m := range n.Methods {
				p.stmt(m)
			}
		})
	default:
		p.writeLine("<unknown stmt %T>", s)
	}
}

func (p *Printer) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Literal:
		p.writeLine("Literal %v", n.Value)
	case *ast.Variable:
		p.writeLine("Variable %s", n.Name.Literal)
	case *ast.Assignment:
		p.block(fmt.Sprintf("Assignment %s", n.Name.Literal), func() { p.expr(n.Value) })
	case *ast.Unary:
		p.block(fmt.Sprintf("Unary %s", n.Operator.Literal), func() { p.expr(n.Right) })
	case *ast.Binary:
		p.block(fmt.Sprintf("Binary %s", n.Operator.Literal), func() {
			p.expr(n.Left)
			p.expr(n.Right)
		})
	case *ast.Logical:
		p.block(fmt.Sprintf("Logical %s", n.Operator.Literal), func() {
			p.expr(n.Left)
			p.expr(n.Right)
		})
	case *ast.Grouping:
		p.block("Grouping", func() { p.expr(n.Expression) })
	case *ast.Call:
		p.block(fmt.Sprintf("Call (%d args)", len(n.Args)), func() {
			p.expr(n.Callee)
			for _, a := range n.Args {
				p.expr(a)
			}
		})
	case *ast.Get:
		p.block(fmt.Sprintf("Get .%s", n.Name.Literal), func() { p.expr(n.Object) })
	case *ast.Set:
		p.block(fmt.Sprintf("Set .%s", n.Name.Literal), func() {
			p.expr(n.Object)
			p.expr(n.Value)
		})
	case *ast.This:
		p.writeLine("This")
	case *ast.AnonymousFn:
		p.block(fmt.Sprintf("AnonymousFn(%s)", paramList(n.Params)), func() {
			for _, stmt := range n.Body {
				p.stmt(stmt)
			}
		})
	default:
		p.writeLine("<unknown expr %T>", e)
	}
}

func paramList(params []lexer.Token) string {
	var buf bytes.Buffer
	for i, p := range params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.Literal)
	}
	return buf.String()
}

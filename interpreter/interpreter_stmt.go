/*
File    : plox/interpreter/interpreter_stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/control"
	"github.com/akashmaji946/plox/environment"
	"github.com/akashmaji946/plox/function"
	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/objects"
)

// execute runs a single statement, returning the control signal it
// produced: Normal to keep going, Break/Return to unwind, or Err on a
// runtime fault.
func (interp *Interpreter) execute(stmt ast.Stmt) control.Signal {
	switch n := stmt.(type) {
	case *ast.ExprStmt:
		if _, err := interp.eval(n.Expression); err != nil {
			return control.Failing(err)
		}
		return control.Ok

	case *ast.PrintStmt:
		value, err := interp.eval(n.Expression)
		if err != nil {
			return control.Failing(err)
		}
		fmt.Fprintln(interp.Writer, value.ToString())
		return control.Ok

	case *ast.VarDecl:
		var value objects.Value = objects.NilValue
		if n.Initializer != nil {
			v, err := interp.eval(n.Initializer)
			if err != nil {
				return control.Failing(err)
			}
			value = v
		}
		interp.env.Define(n.Name.Literal, value)
		return control.Ok

	case *ast.Block:
		return interp.ExecuteBlock(n.Statements, environment.New(interp.env))

	case *ast.If:
		cond, err := interp.eval(n.Condition)
		if err != nil {
			return control.Failing(err)
		}
		if objects.Truthy(cond) {
			return interp.execute(n.Then)
		}
		if n.Else != nil {
			return interp.execute(n.Else)
		}
		return control.Ok

	case *ast.While:
		for {
			cond, err := interp.eval(n.Condition)
			if err != nil {
				return control.Failing(err)
			}
			if !objects.Truthy(cond) {
				return control.Ok
			}
			sig := interp.execute(n.Body)
			switch sig.Kind {
			case control.Break:
				return control.Ok
			case control.Return, control.Err:
				return sig
			}
		}

	case *ast.Break:
		return control.Breaking

	case *ast.Return:
		var value objects.Value = objects.NilValue
		if n.Value != nil {
			v, err := interp.eval(n.Value)
			if err != nil {
				return control.Failing(err)
			}
			value = v
		}
		return control.Returning(value)

	case *ast.FunDecl:
		fn := &function.Function{Name: n.Name.Literal, Params: tokenLiterals(n.Params), Body: n.Body, Closure: interp.env}
		interp.env.Define(n.Name.Literal, fn)
		return control.Ok

	case *ast.ClassDecl:
		interp.env.Define(n.Name.Literal, objects.NilValue)
		methods := make(map[string]*function.Function, len(n.Methods))
		for _, m := range n.Methods {
			methods[m.Name.Literal] = &function.Function{
				Name:          m.Name.Literal,
				Params:        tokenLiterals(m.Params),
				Body:          m.Body,
				Closure:       interp.env,
				IsInitializer: m.Name.Literal == "init",
			}
		}
		class := &function.Class{ClassName: n.Name.Literal, Methods: methods}
		interp.env.Assign(n.Name.Literal, class)
		return control.Ok
	}

	return control.Ok
}

func tokenLiterals(tokens []lexer.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Literal
	}
	return out
}

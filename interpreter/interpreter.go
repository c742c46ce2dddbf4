/*
File    : plox/interpreter/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interpreter tree-walks a resolved plox AST, producing output
// and side effects directly rather than compiling to any intermediate
// form. It consumes the resolver's node-identity-keyed scope-depth table
// to resolve variable reads and writes without a dynamic scope search,
// falling back to the global environment for anything the resolver left
// unrecorded.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/control"
	"github.com/akashmaji946/plox/environment"
	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/native"
	"github.com/akashmaji946/plox/objects"
)

// RuntimeError is a failure discovered during evaluation: the token
// whose evaluation failed (for line/lexeme reporting) and a
// human-readable message.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s [line %d]", e.Message, e.Token.Line)
}

// Interpreter holds the state needed to execute a resolved program: the
// global environment, the environment currently in scope, the resolver's
// scope-depth table, and the writer `print` sends output to.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	Locals  map[ast.Expr]int
	Writer  io.Writer
}

// New creates an Interpreter with a fresh global environment. locals is
// the resolver's output; pass nil (or an empty map) to evaluate
// unresolved code, which falls every lookup back to the global
// environment.
func New(locals map[ast.Expr]int) *Interpreter {
	globals := environment.New(nil)
	native.Register(globals)
	if locals == nil {
		locals = make(map[ast.Expr]int)
	}
	return &Interpreter{
		Globals: globals,
		env:     globals,
		Locals:  locals,
		Writer:  os.Stdout,
	}
}

// SetWriter redirects `print` output, primarily for tests.
func (interp *Interpreter) SetWriter(w io.Writer) {
	interp.Writer = w
}

// Interpret executes every top-level statement in order, stopping at the
// first runtime error (matching plox's fail-fast execution model: unlike
// the lexer and parser, the interpreter does not keep going after a
// fault, since plox has no use for it after one).
func (interp *Interpreter) Interpret(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if sig := interp.execute(stmt); sig.Kind == control.Err {
			return sig.Error
		}
	}
	return nil
}

// ExecuteBlock runs stmts under env, restoring the interpreter's
// previous environment before returning (even when a signal unwinds
// early). This implements function.Interpreter, letting package function
// invoke user-defined function bodies without importing this package.
func (interp *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) control.Signal {
	previous := interp.env
	interp.env = env
	defer func() { interp.env = previous }()

	for _, stmt := range stmts {
		if sig := interp.execute(stmt); !sig.IsNormal() {
			return sig
		}
	}
	return control.Ok
}

// lookUpVariable resolves a read of name at the given use site: if the
// resolver recorded a depth for this node, it's a local read at exactly
// that depth; otherwise it's a global lookup. An unresolved global miss
// is a RuntimeError, never a silent nil.
func (interp *Interpreter) lookUpVariable(name lexer.Token, node ast.Expr) (objects.Value, error) {
	if distance, ok := interp.Locals[node]; ok {
		if v, ok := interp.env.GetAt(distance, name.Literal); ok {
			return v, nil
		}
	} else if v, ok := interp.Globals.Get(name.Literal); ok {
		return v, nil
	}
	return nil, &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Literal)}
}

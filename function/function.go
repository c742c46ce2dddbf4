/*
File    : plox/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function holds plox's callable and class-shaped runtime
// values: user-defined functions (with closures), the native clock
// builtin, classes, and their instances. All four implement
// objects.Value, the split mirroring the one the teacher draws between
// its objects and function packages.
package function

import (
	"fmt"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/control"
	"github.com/akashmaji946/plox/environment"
	"github.com/akashmaji946/plox/objects"
)

// Kind constants extend objects.GoMixType with the callable/class-shaped
// values this package contributes; objects itself only knows about the
// four primitive kinds.
const (
	FunctionType objects.GoMixType = "function"
	NativeType   objects.GoMixType = "native"
	ClassType    objects.GoMixType = "class"
	InstanceType objects.GoMixType = "instance"
)

// Interpreter is the slice of the interpreter a callable needs to
// execute its body. Declaring it here, rather than importing package
// interpreter, is what lets a Function be invoked without function
// importing back into interpreter (which imports function to build
// Function/Class values in the first place).
type Interpreter interface {
	ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) control.Signal
}

// Callable is any plox value that can appear on the left of a call
// expression: a user function, the native clock, or a class (calling a
// class constructs an instance).
type Callable interface {
	objects.Value
	Arity() int
	Call(interp Interpreter, args []objects.Value) (objects.Value, error)
}

// Function is a user-defined function or method: its parameter names,
// body, and the environment it closed over at the point it was
// declared.
type Function struct {
	Name          string
	Params        []string
	Body          []ast.Stmt
	Closure       *environment.Environment
	IsInitializer bool
}

func (f *Function) GetType() objects.GoMixType { return FunctionType }

// ToString renders a function for `print`: "<NAME fn>", or "<anonymous
// fn>" for a function literal with no declared name.
func (f *Function) ToString() string {
	if f.Name == "" {
		return "<anonymous fn>"
	}
	return fmt.Sprintf("<%s fn>", f.Name)
}

func (f *Function) Arity() int { return len(f.Params) }

// Call binds args to Params in a fresh environment nested inside the
// function's captured Closure, then executes Body. A Return signal
// unwinds into the call's return value; falling off the end of the body
// with no return yields nil. A Break signal reaches Call only from a
// break inside a function declared within a loop body (the parser's
// loop-depth check accepts it); Call treats it like falling off the end.
func (f *Function) Call(interp Interpreter, args []objects.Value) (objects.Value, error) {
	callEnv := environment.New(f.Closure)
	for i, param := range f.Params {
		callEnv.Define(param, args[i])
	}

	switch result := interp.ExecuteBlock(f.Body, callEnv); result.Kind {
	case control.Return:
		return result.Value, nil
	case control.Err:
		return nil, result.Error
	default:
		return objects.NilValue, nil
	}
}

// Bind returns a copy of f whose closure has "this" defined as instance,
// for method dispatch: `instance.method` must see its own receiver
// without the method's declaration-time closure knowing about instances
// at all.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return &Function{
		Name:          f.Name,
		Params:        f.Params,
		Body:          f.Body,
		Closure:       env,
		IsInitializer: f.IsInitializer,
	}
}

// Native is a builtin function implemented in Go rather than plox: the
// sole instance is clock().
type Native struct {
	NativeName string
	NativeFn   func(args []objects.Value) objects.Value
	NativeArgc int
}

func (n *Native) GetType() objects.GoMixType { return NativeType }
func (n *Native) ToString() string           { return fmt.Sprintf("<native fn %s>", n.NativeName) }
func (n *Native) Arity() int                 { return n.NativeArgc }
func (n *Native) Call(_ Interpreter, args []objects.Value) (objects.Value, error) {
	return n.NativeFn(args), nil
}

// Class is a plox class: a name and its method table. plox classes have
// no field declarations (instances grow fields dynamically via Set) and
// no inheritance.
type Class struct {
	ClassName string
	Methods   map[string]*Function
}

func (c *Class) GetType() objects.GoMixType { return ClassType }
func (c *Class) ToString() string           { return fmt.Sprintf("<class %s>", c.ClassName) }

// FindMethod looks up name in the class's method table. There's no
// superclass chain to fall back to.
func (c *Class) FindMethod(name string) (*Function, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

// Arity is the arity of the class's init method, or 0 if it declares
// none.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance of the class. If the class declares an
// init method, it runs against the new instance before the instance is
// returned.
func (c *Class) Call(interp Interpreter, args []objects.Value) (objects.Value, error) {
	instance := &Instance{Class: c, Fields: make(map[string]objects.Value)}
	if init, ok := c.FindMethod("init"); ok {
		bound := init.Bind(instance)
		if _, err := bound.Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object produced by calling a Class: the class it
// was constructed from, plus a mutable bag of fields assigned to it.
type Instance struct {
	Class  *Class
	Fields map[string]objects.Value
}

func (i *Instance) GetType() objects.GoMixType { return InstanceType }
func (i *Instance) ToString() string           { return fmt.Sprintf("<%s instance>", i.Class.ClassName) }

// Get reads a property: first the instance's own fields, then the
// class's methods (bound to this instance). It reports false if neither
// has the name, so the caller can raise the appropriate runtime error.
func (i *Instance) Get(name string) (objects.Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set assigns a field on the instance, creating it if it doesn't already
// exist. plox instances have no declared field list, so any name can be
// set.
func (i *Instance) Set(name string, value objects.Value) {
	i.Fields[name] = value
}

/*
File    : plox/function/function_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"testing"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/control"
	"github.com/akashmaji946/plox/environment"
	"github.com/akashmaji946/plox/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInterpreter is a minimal function.Interpreter that just returns a
// fixed signal, standing in for the real interpreter (which can't be
// imported here without an import cycle).
type stubInterpreter struct {
	signal control.Signal
}

func (s *stubInterpreter) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) control.Signal {
	return s.signal
}

func TestFunction_CallReturnsReturnSignalValue(t *testing.T) {
	fn := &Function{Name: "f", Params: []string{"a"}, Closure: environment.New(nil)}
	interp := &stubInterpreter{signal: control.Returning(&objects.Number{Value: 42})}

	v, err := fn.Call(interp, []objects.Value{&objects.Number{Value: 1}})
	require.NoError(t, err)
	assert.Equal(t, "42", v.ToString())
}

func TestFunction_CallFallsOffEndToNil(t *testing.T) {
	fn := &Function{Name: "f", Closure: environment.New(nil)}
	interp := &stubInterpreter{signal: control.Ok}

	v, err := fn.Call(interp, nil)
	require.NoError(t, err)
	assert.Equal(t, objects.NilValue, v)
}

func TestFunction_CallPropagatesError(t *testing.T) {
	fn := &Function{Name: "f", Closure: environment.New(nil)}
	interp := &stubInterpreter{signal: control.Failing(assert.AnError)}

	_, err := fn.Call(interp, nil)
	assert.Equal(t, assert.AnError, err)
}

func TestFunction_BindExposesThisOneLevelOut(t *testing.T) {
	fn := &Function{Name: "m", Closure: environment.New(nil)}
	instance := &Instance{Class: &Class{ClassName: "C"}, Fields: map[string]objects.Value{}}

	bound := fn.Bind(instance)
	v, ok := bound.Closure.GetAt(0, "this")
	require.True(t, ok)
	assert.Same(t, instance, v)
}

func TestNative_CallInvokesFn(t *testing.T) {
	n := &Native{NativeName: "double", NativeArgc: 1, NativeFn: func(args []objects.Value) objects.Value {
		return &objects.Number{Value: args[0].(*objects.Number).Value * 2}
	}}
	v, err := n.Call(nil, []objects.Value{&objects.Number{Value: 3}})
	require.NoError(t, err)
	assert.Equal(t, "6", v.ToString())
}

func TestClass_CallRunsInitAndReturnsInstance(t *testing.T) {
	init := &Function{Name: "init", Params: []string{"v"}, Closure: environment.New(nil), IsInitializer: true}
	class := &Class{ClassName: "Box", Methods: map[string]*Function{"init": init}}
	interp := &stubInterpreter{signal: control.Ok}

	v, err := class.Call(interp, []objects.Value{&objects.Number{Value: 1}})
	require.NoError(t, err)
	instance, ok := v.(*Instance)
	require.True(t, ok)
	assert.Equal(t, "Box", instance.Class.ClassName)
}

func TestClass_ArityMatchesInitOrZero(t *testing.T) {
	withInit := &Class{ClassName: "A", Methods: map[string]*Function{"init": {Params: []string{"a", "b"}}}}
	assert.Equal(t, 2, withInit.Arity())

	without := &Class{ClassName: "B", Methods: map[string]*Function{}}
	assert.Equal(t, 0, without.Arity())
}

func TestInstance_GetFieldThenMethod(t *testing.T) {
	method := &Function{Name: "greet", Closure: environment.New(nil)}
	class := &Class{ClassName: "Greeter", Methods: map[string]*Function{"greet": method}}
	instance := &Instance{Class: class, Fields: map[string]objects.Value{"name": &objects.String{Value: "a"}}}

	v, ok := instance.Get("name")
	require.True(t, ok)
	assert.Equal(t, "a", v.ToString())

	m, ok := instance.Get("greet")
	require.True(t, ok)
	bound, ok := m.(*Function)
	require.True(t, ok)
	this, ok := bound.Closure.GetAt(0, "this")
	require.True(t, ok)
	assert.Same(t, instance, this)
}

func TestInstance_GetMissingNameNotFound(t *testing.T) {
	instance := &Instance{Class: &Class{ClassName: "Empty"}, Fields: map[string]objects.Value{}}
	_, ok := instance.Get("nope")
	assert.False(t, ok)
}

func TestInstance_SetCreatesOrOverwritesField(t *testing.T) {
	instance := &Instance{Class: &Class{ClassName: "C"}, Fields: map[string]objects.Value{}}
	instance.Set("x", &objects.Number{Value: 1})
	instance.Set("x", &objects.Number{Value: 2})

	v, ok := instance.Get("x")
	require.True(t, ok)
	assert.Equal(t, "2", v.ToString())
}

/*
File    : plox/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements plox's lexical scope chain: the runtime
// counterpart to the resolver's static scope-depth analysis. An
// Environment holds one block's variable bindings and a pointer to its
// enclosing Environment, forming the chain a closure captures and the
// interpreter walks.
package environment

import "github.com/akashmaji946/plox/objects"

// Environment is one lexical scope's variable bindings, linked to its
// enclosing scope. The global environment has a nil Enclosing.
type Environment struct {
	Values    map[string]objects.Value
	Enclosing *Environment
}

// New creates an Environment nested inside enclosing. Pass nil to create
// the global environment.
func New(enclosing *Environment) *Environment {
	return &Environment{
		Values:    make(map[string]objects.Value),
		Enclosing: enclosing,
	}
}

// Define binds name to value in this environment, overwriting any
// existing binding of the same name in this environment only. Unlike
// Assign, Define never looks at enclosing scopes: it's how a var
// declaration introduces a fresh binding, including ones that
// deliberately shadow an outer variable of the same name.
func (e *Environment) Define(name string, value objects.Value) {
	e.Values[name] = value
}

// Get looks up name starting in this environment and walking outward
// through Enclosing until it's found or the chain is exhausted.
func (e *Environment) Get(name string) (objects.Value, bool) {
	if v, ok := e.Values[name]; ok {
		return v, true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, false
}

// GetAt looks up name exactly `distance` scopes out from this
// environment (0 meaning this environment itself), as computed ahead of
// time by the resolver. It never falls further than that: a resolver
// bug that hands back the wrong distance should surface as a missing
// key, not a silent wrong-scope read.
func (e *Environment) GetAt(distance int, name string) (objects.Value, bool) {
	env := e.ancestor(distance)
	v, ok := env.Values[name]
	return v, ok
}

// Assign updates an existing binding of name, searching outward through
// Enclosing the same way Get does. It reports false (and changes
// nothing) if name isn't bound anywhere in the chain, since plox has no
// implicit global declaration on assignment.
func (e *Environment) Assign(name string, value objects.Value) bool {
	if _, ok := e.Values[name]; ok {
		e.Values[name] = value
		return true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return false
}

// AssignAt updates name exactly `distance` scopes out, as computed by the
// resolver.
func (e *Environment) AssignAt(distance int, name string, value objects.Value) {
	env := e.ancestor(distance)
	env.Values[name] = value
}

// ancestor walks Enclosing distance times.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

/*
File    : plox/control/control.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package control defines the non-local control-flow signal the
// interpreter and the callables it invokes pass back up through
// statement execution. Rather than threading return/break through Go
// panics or sentinel errors, every statement-executing method returns a
// Signal: the caller inspects its Kind and either keeps going (Normal),
// unwinds to the nearest loop (Break), unwinds to the nearest function
// call (Return), or unwinds all the way out (Err).
package control

import "github.com/akashmaji946/plox/objects"

// Kind is the discriminant of a Signal.
type Kind int

const (
	Normal Kind = iota // fell off the end of a statement; keep executing
	Return             // a return statement fired; unwind to the calling function
	Break              // a break statement fired; unwind to the nearest loop
	Err                // a runtime error occurred; unwind everything
)

// Signal is the result of executing a statement. Value is populated only
// for Return (the returned value, objects.NilValue for a bare `return;`).
// Error is populated only for Err.
type Signal struct {
	Kind  Kind
	Value objects.Value
	Error error
}

// Ok is the signal for normal, uninterrupted statement completion.
var Ok = Signal{Kind: Normal}

// Returning builds a Return signal carrying the given value.
func Returning(v objects.Value) Signal {
	return Signal{Kind: Return, Value: v}
}

// Breaking is the signal a break statement produces.
var Breaking = Signal{Kind: Break}

// Failing builds an Err signal wrapping err.
func Failing(err error) Signal {
	return Signal{Kind: Err, Error: err}
}

// IsNormal reports whether execution should simply continue.
func (s Signal) IsNormal() bool { return s.Kind == Normal }

/*
File    : plox/native/native.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package native registers plox's native functions — builtins
// implemented in Go rather than plox itself — into an interpreter's
// global environment. plox's Non-goals exclude a standard library
// beyond a single injected clock, so this package, unlike the teacher's
// sprawling std.Builtins registry, has exactly one entry.
package native

import (
	"time"

	"github.com/akashmaji946/plox/environment"
	"github.com/akashmaji946/plox/function"
	"github.com/akashmaji946/plox/objects"
)

// Register defines every native function in globals.
func Register(globals *environment.Environment) {
	globals.Define("clock", &function.Native{
		NativeName: "clock",
		NativeArgc: 0,
		NativeFn: func(args []objects.Value) objects.Value {
			return &objects.Number{Value: float64(time.Now().UnixNano()) / float64(time.Second)}
		},
	})
}

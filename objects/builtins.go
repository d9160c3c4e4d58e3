/*
File    : lox-v1/objects/builtins.go
Author  : aQaTL
*/
package objects

import (
	"fmt"
	"time"
)

// Builtin represents a native function implemented in Go. Builtins are
// ordinary values defined in the global scope before user code runs, so
// programs call (and may shadow) them like any other global.
type Builtin struct {
	Name       string                           // Name bound in the global scope
	ArityCount int                              // Number of arguments required
	Callback   func(args ...LoxObject) LoxObject // The native implementation
}

// Arity returns the number of arguments this native requires.
func (b *Builtin) Arity() int {
	return b.ArityCount
}

// GetName returns the name the native is bound under.
func (b *Builtin) GetName() string {
	return b.Name
}

// GetType returns the type of the builtin object
func (b *Builtin) GetType() LoxType {
	return BuiltinType
}

// ToString returns the display form of a native function.
func (b *Builtin) ToString() string {
	return "<native fn>"
}

// ToObject returns a detailed representation including the name.
func (b *Builtin) ToObject() string {
	return fmt.Sprintf("<builtin(%s/%d)>", b.Name, b.ArityCount)
}

// Builtins lists every native the evaluator installs into the global scope
// at startup. The language surface is deliberately tiny: clock is the only
// native.
var Builtins = []*Builtin{
	{
		// clock returns the number of seconds since the Unix epoch as a
		// double, with sub-second precision. Useful for benchmarking
		// scripts.
		Name:       "clock",
		ArityCount: 0,
		Callback: func(args ...LoxObject) LoxObject {
			return &Number{Value: float64(time.Now().UnixNano()) / 1e9}
		},
	},
}

/*
File    : lox-v1/function/function.go
Author  : aQaTL
*/
package function

import (
	"fmt"

	"github.com/aQaTL/lox-v1/objects"
	"github.com/aQaTL/lox-v1/parser"
	"github.com/aQaTL/lox-v1/scope"
)

// Function represents a user-defined function or method value. It pairs the
// function's declaration AST node with the scope captured at its point of
// definition, which is what makes closures work: the body always evaluates
// under the defining scope chain, not the caller's.
//
// Fields:
//   - Decl: The declaration node carrying the name, parameter tokens, and
//     body statements. The node is shared, never copied.
//   - Scp: The scope captured at definition time. For a method this is the
//     class declaration's scope (including the frame that binds super when
//     the class has a superclass); Bind layers one more frame with this on
//     top of it.
//   - IsInitializer: Marks init methods. An initializer always produces the
//     bound instance, both on normal completion and on a bare return.
type Function struct {
	Decl          *parser.FunctionStatementNode // Declaration: name, params, body
	Scp           *scope.Scope                  // Captured scope for closures
	IsInitializer bool                          // True for init methods
}

// GetName returns the function's declared name.
func (f *Function) GetName() string {
	return f.Decl.FuncName.Literal
}

// Arity returns the number of parameters the function declares.
func (f *Function) Arity() int {
	return len(f.Decl.FuncParams)
}

// Bind produces the bound-method view of this function for the given
// instance: a new Function sharing the declaration, whose captured scope is
// extended by one frame binding this to the instance. Every property lookup
// that resolves to a method goes through here, so each bound method is a
// fresh value.
func (f *Function) Bind(instance objects.LoxObject) *Function {
	bound := scope.NewScope(f.Scp)
	bound.Define("this", instance)
	return &Function{
		Decl:          f.Decl,
		Scp:           bound,
		IsInitializer: f.IsInitializer,
	}
}

// GetType returns the type identifier for this Function object.
// This implements the objects.LoxObject interface.
func (f *Function) GetType() objects.LoxType {
	return objects.FunctionType
}

// ToString returns the function's display form: "<fn name>".
func (f *Function) ToString() string {
	return fmt.Sprintf("<fn %s>", f.GetName())
}

// ToObject returns a detailed string representation of the function,
// including its name and parameter names.
//
// Example:
//
//	For name "add" and params ["a", "b"] this returns: "<fn[add(a, b)]>"
func (f *Function) ToObject() string {
	args := ""
	for i, param := range f.Decl.FuncParams {
		if i > 0 {
			args += ", "
		}
		args += param.Literal
	}
	return fmt.Sprintf("<fn[%s(%s)]>", f.GetName(), args)
}

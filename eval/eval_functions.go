/*
File    : lox-v1/eval/eval_functions.go
Author  : aQaTL
*/
package eval

import (
	"github.com/aQaTL/lox-v1/function"
	"github.com/aQaTL/lox-v1/objects"
	"github.com/aQaTL/lox-v1/parser"
	"github.com/aQaTL/lox-v1/scope"
)

// evalCallExpression evaluates a call: the callee first, then the
// arguments left to right, then dispatch on what the callee turned out to
// be. Only functions, natives, and classes are callable; each checks its
// arity before running. Runtime errors from a call site point at the line
// of the call's closing parenthesis.
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) objects.LoxObject {
	callee := e.evalExpression(n.Callee)
	if IsError(callee) {
		return callee
	}

	args := make([]objects.LoxObject, 0, len(n.Arguments))
	for _, argExpr := range n.Arguments {
		arg := e.evalExpression(argExpr)
		if IsError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	switch fn := callee.(type) {

	case *function.Function:
		if len(args) != fn.Arity() {
			return e.CreateError(n.Paren.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return e.callFunction(fn, args)

	case *objects.Builtin:
		if len(args) != fn.Arity() {
			return e.CreateError(n.Paren.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return fn.Callback(args...)

	case *objects.LoxClass:
		if len(args) != fn.Arity() {
			return e.CreateError(n.Paren.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return e.instantiate(fn, args)

	default:
		return e.CreateError(n.Paren.Line, "Can only call functions and classes")
	}
}

// callFunction executes a user-defined function or bound method.
//
// A fresh scope is created whose parent is the function's captured scope
// (never the caller's scope), parameters are bound positionally, and the
// body statements are evaluated in that scope. A ReturnValue signal coming
// out of the body is unwrapped here, at the call boundary; a body that
// completes without returning yields nil. Initializers are special: they
// always yield the bound instance, whether they complete normally or hit
// a bare return.
func (e *Evaluator) callFunction(fn *function.Function, args []objects.LoxObject) objects.LoxObject {
	callScope := scope.NewScope(fn.Scp)
	for i, param := range fn.Decl.FuncParams {
		callScope.Define(param.Literal, args[i])
	}

	enclosing := e.Scp
	e.Scp = callScope
	result := e.evalStatements(fn.Decl.FuncBody)
	e.Scp = enclosing

	if IsError(result) {
		return result
	}
	if fn.IsInitializer {
		// The bound instance lives one frame up, in the scope Bind made.
		this, _ := fn.Scp.GetAt(0, "this")
		return this
	}
	if returned, ok := result.(*objects.ReturnValue); ok {
		return returned.Value
	}
	return &objects.Nil{}
}

// instantiate constructs an instance of a class: a fresh empty instance,
// then the init method (if the class or an ancestor declares one) bound to
// it and called with the arguments. The arity was already checked against
// the class by the caller.
func (e *Evaluator) instantiate(class *objects.LoxClass, args []objects.LoxObject) objects.LoxObject {
	instance := objects.NewInstance(class)

	if initializer, found := class.GetConstructor(); found {
		initFn, ok := initializer.(*function.Function)
		if !ok {
			return e.CreateError(0, "class '%s' has a malformed initializer", class.Name)
		}
		result := e.callFunction(initFn.Bind(instance), args)
		if IsError(result) {
			return result
		}
	}

	return instance
}

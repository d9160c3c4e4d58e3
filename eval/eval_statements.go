/*
File    : lox-v1/eval/eval_statements.go
Author  : aQaTL
*/
package eval

import (
	"fmt"

	"github.com/aQaTL/lox-v1/function"
	"github.com/aQaTL/lox-v1/objects"
	"github.com/aQaTL/lox-v1/parser"
	"github.com/aQaTL/lox-v1/scope"
)

// evalStatements evaluates a sequence of statements in order, with early
// termination for the two non-sequential outcomes:
//  1. Error propagation: a runtime error stops evaluation immediately and
//     travels outward unchanged.
//  2. Return unwinding: a ReturnValue signal stops the sequence and travels
//     out to the enclosing call, which unwraps it.
//
// Returns the last statement's result (Nil for an empty sequence).
func (e *Evaluator) evalStatements(stmts []parser.StatementNode) objects.LoxObject {
	var result objects.LoxObject = &objects.Nil{}
	for _, stmt := range stmts {
		result = e.evalStatement(stmt)
		switch result.GetType() {
		case objects.ErrorType, objects.ReturnType:
			return result
		}
	}
	return result
}

// evalStatement dispatches a single statement on its concrete type. Bare
// expression statements fall through to evalExpression; in REPL mode their
// top-level results are echoed.
func (e *Evaluator) evalStatement(stmt parser.StatementNode) objects.LoxObject {
	switch n := stmt.(type) {

	case *parser.DeclarativeStatementNode:
		return e.evalDeclarativeStatement(n)

	case *parser.PrintStatementNode:
		return e.evalPrintStatement(n)

	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n)

	case *parser.IfStatementNode:
		return e.evalIfStatement(n)

	case *parser.WhileLoopStatementNode:
		return e.evalWhileLoop(n)

	case *parser.FunctionStatementNode:
		return e.evalFunctionStatement(n)

	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n)

	case *parser.ClassDeclarationNode:
		return e.evalClassDeclaration(n)

	default:
		expr, ok := stmt.(parser.ExpressionNode)
		if !ok {
			// Unreachable for trees produced by the parser.
			return &objects.Nil{}
		}
		val := e.evalExpression(expr)
		if e.IsREPL && e.Scp == e.Globals && !IsError(val) {
			fmt.Fprintf(e.Writer, "%s\n", val.ToString())
		}
		return val
	}
}

// evalDeclarativeStatement handles a variable declaration: the initializer
// (or nil when absent) is evaluated first, then the name is defined in the
// current scope. Defining rather than assigning means an inner declaration
// shadows an outer binding of the same name.
func (e *Evaluator) evalDeclarativeStatement(n *parser.DeclarativeStatementNode) objects.LoxObject {
	var val objects.LoxObject = &objects.Nil{}
	if n.Expr != nil {
		val = e.evalExpression(n.Expr)
		if IsError(val) {
			return val
		}
	}
	e.Scp.Define(n.Identifier.Literal, val)
	return &objects.Nil{}
}

// evalPrintStatement evaluates the expression and emits its display form
// followed by a newline to the configured writer.
func (e *Evaluator) evalPrintStatement(n *parser.PrintStatementNode) objects.LoxObject {
	val := e.evalExpression(n.Expr)
	if IsError(val) {
		return val
	}
	fmt.Fprintf(e.Writer, "%s\n", val.ToString())
	return &objects.Nil{}
}

// evalBlockStatement evaluates a block under a fresh scope whose parent is
// the current scope. The scope is popped on every exit path, including
// error propagation and return unwinding; it stays alive afterwards only
// if a closure created inside the block captured it.
func (e *Evaluator) evalBlockStatement(n *parser.BlockStatementNode) objects.LoxObject {
	enclosing := e.Scp
	e.Scp = scope.NewScope(enclosing)
	result := e.evalStatements(n.Statements)
	e.Scp = enclosing
	return result
}

// evalIfStatement branches on the truthiness of the condition.
func (e *Evaluator) evalIfStatement(n *parser.IfStatementNode) objects.LoxObject {
	condition := e.evalExpression(n.Condition)
	if IsError(condition) {
		return condition
	}
	if IsTruthy(condition) {
		return e.evalStatement(n.ThenBranch)
	}
	if n.ElseBranch != nil {
		return e.evalStatement(n.ElseBranch)
	}
	return &objects.Nil{}
}

// evalWhileLoop re-evaluates the condition before every iteration and runs
// the body while it stays truthy. Errors and return signals from either
// the condition or the body terminate the loop and propagate.
func (e *Evaluator) evalWhileLoop(n *parser.WhileLoopStatementNode) objects.LoxObject {
	for {
		condition := e.evalExpression(n.Condition)
		if IsError(condition) {
			return condition
		}
		if !IsTruthy(condition) {
			return &objects.Nil{}
		}
		result := e.evalStatement(n.Body)
		switch result.GetType() {
		case objects.ErrorType, objects.ReturnType:
			return result
		}
	}
}

// evalFunctionStatement creates a Function value capturing the current
// scope and defines it under the declared name. Capturing the scope here,
// at the point of declaration, is what gives closures their semantics:
// the body will later observe the captured bindings' latest values, not
// snapshots.
func (e *Evaluator) evalFunctionStatement(n *parser.FunctionStatementNode) objects.LoxObject {
	fn := &function.Function{
		Decl: n,
		Scp:  e.Scp,
	}
	e.Scp.Define(n.FuncName.Literal, fn)
	return &objects.Nil{}
}

// evalReturnStatement evaluates the returned expression and wraps it in the
// ReturnValue unwind signal. The signal is consumed at the call boundary;
// the resolver has already rejected returns outside any function.
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatementNode) objects.LoxObject {
	val := e.evalExpression(n.Value)
	if IsError(val) {
		return val
	}
	return &objects.ReturnValue{Value: val}
}

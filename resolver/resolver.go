/*
File    : lox-v1/resolver/resolver.go
Author  : aQaTL
*/

// Package resolver implements the static scope-resolution pass that runs
// between parsing and evaluation.
//
// The resolver walks the AST once, maintaining a stack of lexical scope
// frames, and records for every local variable reference how many scopes
// separate the reference from its declaration. The evaluator uses those
// depths for exact environment access, so local lookups never depend on
// runtime state. References that escape every local scope are left out of
// the table and fall through to the global environment at run time; that
// asymmetry is deliberate, since globals are late-bound to allow forward
// references across REPL lines.
//
// The pass also reports the language's static-semantics errors: reading a
// local in its own initializer, duplicate locals, return outside a
// function, returning a value from an initializer, this/super outside
// their legal contexts, and a class inheriting from itself.
package resolver

import (
	"fmt"

	"github.com/aQaTL/lox-v1/lexer"
	"github.com/aQaTL/lox-v1/parser"
)

// functionType tracks what kind of function body the resolver is currently
// inside, for validating return statements.
type functionType int

const (
	funcTypeNone        functionType = iota // Not inside any function
	funcTypeFunction                        // Inside a plain function
	funcTypeMethod                          // Inside a class method
	funcTypeInitializer                     // Inside an init method
)

// classType tracks what kind of class body the resolver is currently
// inside, for validating this and super.
type classType int

const (
	classTypeNone     classType = iota // Not inside any class
	classTypeClass                     // Inside a class without a superclass
	classTypeSubclass                  // Inside a class with a superclass
)

// Resolver holds the state of one resolution pass.
//
// Scopes is the stack of lexical frames; each frame maps a name to whether
// its initializer has finished resolving (declared=false, defined=true).
// The global scope is deliberately not represented: names that resolve in
// no frame are globals.
//
// Locals is the output side table, keyed by the universal index of the
// referencing token. Keying by token identity keeps the AST free of
// mutable annotations and makes the pass a pure function from tree to
// table.
type Resolver struct {
	Scopes []map[string]bool // Stack of scope frames, innermost last
	Locals map[int]int       // Token id -> scope depth
	Errors []string          // Collected resolution errors

	currentFunction functionType
	currentClass    classType
}

// NewResolver creates a resolver with an empty scope stack and output
// table, ready to resolve one program.
func NewResolver() *Resolver {
	return &Resolver{
		Scopes: make([]map[string]bool, 0),
		Locals: make(map[int]int),
		Errors: make([]string, 0),
	}
}

// Resolve walks the program and returns the depth side table consumed by
// the evaluator. Errors are collected in r.Errors; a program with
// resolution errors must not be evaluated.
//
// Parameters:
//   - root: The parsed program
//
// Returns:
//   - map[int]int: Token id to scope depth for every resolved local
//     reference
func (r *Resolver) Resolve(root *parser.RootNode) map[int]int {
	r.resolveStatements(root.Statements)
	return r.Locals
}

// HasErrors reports whether the pass found any static-semantics errors.
func (r *Resolver) HasErrors() bool {
	return len(r.Errors) > 0
}

// GetErrors returns all resolution errors collected during the pass.
func (r *Resolver) GetErrors() []string {
	return r.Errors
}

// addError records a formatted resolution error message.
func (r *Resolver) addError(format string, a ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, a...))
}

// resolveStatements resolves a statement list in order.
func (r *Resolver) resolveStatements(stmts []parser.StatementNode) {
	for _, stmt := range stmts {
		r.resolveStatement(stmt)
	}
}

// resolveStatement dispatches on the statement's concrete type. Bare
// expression statements fall through to resolveExpression.
func (r *Resolver) resolveStatement(stmt parser.StatementNode) {
	switch n := stmt.(type) {

	case *parser.BlockStatementNode:
		r.beginScope()
		r.resolveStatements(n.Statements)
		r.endScope()

	case *parser.DeclarativeStatementNode:
		// Declare before resolving the initializer, so a reference to the
		// name inside its own initializer is visible as declared-but-
		// undefined and can be reported.
		r.declare(n.Identifier)
		if n.Expr != nil {
			r.resolveExpression(n.Expr)
		}
		r.define(n.Identifier)

	case *parser.FunctionStatementNode:
		// Define eagerly so the function can recurse into itself.
		r.declare(n.FuncName)
		r.define(n.FuncName)
		r.resolveFunction(n, funcTypeFunction)

	case *parser.ClassDeclarationNode:
		r.resolveClass(n)

	case *parser.PrintStatementNode:
		r.resolveExpression(n.Expr)

	case *parser.IfStatementNode:
		r.resolveExpression(n.Condition)
		r.resolveStatement(n.ThenBranch)
		if n.ElseBranch != nil {
			r.resolveStatement(n.ElseBranch)
		}

	case *parser.WhileLoopStatementNode:
		r.resolveExpression(n.Condition)
		r.resolveStatement(n.Body)

	case *parser.ReturnStatementNode:
		if r.currentFunction == funcTypeNone {
			r.addError("[line %d] RESOLVER ERROR: can't return from top-level code", n.Keyword.Line)
			return
		}
		if r.currentFunction == funcTypeInitializer {
			// A bare "return;" carries a synthesized nil and is allowed;
			// returning any written value from init is not.
			if lit, bare := n.Value.(*parser.NilLiteralExpressionNode); !bare || !lit.Synthesized {
				r.addError("[line %d] RESOLVER ERROR: can't return a value from an initializer", n.Keyword.Line)
				return
			}
		}
		r.resolveExpression(n.Value)

	default:
		if expr, ok := stmt.(parser.ExpressionNode); ok {
			r.resolveExpression(expr)
		}
	}
}

// resolveExpression dispatches on the expression's concrete type.
func (r *Resolver) resolveExpression(expr parser.ExpressionNode) {
	switch n := expr.(type) {

	case *parser.IdentifierExpressionNode:
		if len(r.Scopes) > 0 {
			if defined, declared := r.Scopes[len(r.Scopes)-1][n.Name]; declared && !defined {
				r.addError("[line %d] RESOLVER ERROR: can't read local variable '%s' in its own initializer",
					n.Token.Line, n.Name)
			}
		}
		r.resolveLocal(n.Token)

	case *parser.AssignmentExpressionNode:
		r.resolveExpression(n.Value)
		r.resolveLocal(n.Name)

	case *parser.UnaryExpressionNode:
		r.resolveExpression(n.Right)

	case *parser.BinaryExpressionNode:
		r.resolveExpression(n.Left)
		r.resolveExpression(n.Right)

	case *parser.LogicalExpressionNode:
		r.resolveExpression(n.Left)
		r.resolveExpression(n.Right)

	case *parser.ParenthesizedExpressionNode:
		r.resolveExpression(n.Expr)

	case *parser.CallExpressionNode:
		r.resolveExpression(n.Callee)
		for _, arg := range n.Arguments {
			r.resolveExpression(arg)
		}

	case *parser.GetExpressionNode:
		// Only the object expression resolves statically; the property
		// name is looked up on the instance at run time.
		r.resolveExpression(n.Object)

	case *parser.SetExpressionNode:
		r.resolveExpression(n.Value)
		r.resolveExpression(n.Object)

	case *parser.ThisExpressionNode:
		if r.currentClass == classTypeNone {
			r.addError("[line %d] RESOLVER ERROR: can't use 'this' outside of a class", n.Keyword.Line)
			return
		}
		r.resolveLocal(n.Keyword)

	case *parser.SuperExpressionNode:
		if r.currentClass == classTypeNone {
			r.addError("[line %d] RESOLVER ERROR: can't use 'super' outside of a class", n.Keyword.Line)
			return
		}
		if r.currentClass != classTypeSubclass {
			r.addError("[line %d] RESOLVER ERROR: can't use 'super' in a class with no superclass", n.Keyword.Line)
			return
		}
		r.resolveLocal(n.Keyword)

		// Literals carry no names to resolve.
	}
}

// resolveFunction resolves a function or method body under a fresh scope
// containing its parameters. The body statements resolve directly in the
// parameter scope, mirroring the evaluator's single call scope.
func (r *Resolver) resolveFunction(fn *parser.FunctionStatementNode, fnType functionType) {
	enclosing := r.currentFunction
	r.currentFunction = fnType

	r.beginScope()
	for _, param := range fn.FuncParams {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.FuncBody)
	r.endScope()

	r.currentFunction = enclosing
}

// resolveClass resolves a class declaration: the class name, the optional
// superclass reference, and every method under the scopes the evaluator
// will build at run time (an outer frame binding super when a superclass
// exists, then a frame binding this, then each method's parameter frame).
func (r *Resolver) resolveClass(class *parser.ClassDeclarationNode) {
	enclosing := r.currentClass
	r.currentClass = classTypeClass

	r.declare(class.ClassName)
	r.define(class.ClassName)

	if class.SuperName != nil {
		if class.SuperName.Literal == class.ClassName.Literal {
			r.addError("[line %d] RESOLVER ERROR: a class can't inherit from itself", class.SuperName.Line)
		} else {
			r.currentClass = classTypeSubclass
			// The superclass name is an ordinary variable reference.
			r.resolveLocal(*class.SuperName)
		}
	}

	if class.SuperName != nil {
		r.beginScope()
		r.Scopes[len(r.Scopes)-1]["super"] = true
	}

	r.beginScope()
	r.Scopes[len(r.Scopes)-1]["this"] = true

	for _, method := range class.Methods {
		fnType := funcTypeMethod
		if method.FuncName.Literal == "init" {
			fnType = funcTypeInitializer
		}
		r.resolveFunction(method, fnType)
	}

	r.endScope()
	if class.SuperName != nil {
		r.endScope()
	}

	r.currentClass = enclosing
}

// beginScope pushes a fresh scope frame.
func (r *Resolver) beginScope() {
	r.Scopes = append(r.Scopes, make(map[string]bool))
}

// endScope pops the innermost scope frame.
func (r *Resolver) endScope() {
	r.Scopes = r.Scopes[:len(r.Scopes)-1]
}

// declare records a name in the innermost scope as declared but not yet
// defined. Declaring the same name twice in one local scope is an error.
// At global level (empty stack) declarations are not tracked: globals are
// late-bound and may be redefined freely.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.Scopes) == 0 {
		return
	}
	top := r.Scopes[len(r.Scopes)-1]
	if _, exists := top[name.Literal]; exists {
		r.addError("[line %d] RESOLVER ERROR: already a variable named '%s' in this scope",
			name.Line, name.Literal)
	}
	top[name.Literal] = false
}

// define marks a declared name as fully initialized and readable.
func (r *Resolver) define(name lexer.Token) {
	if len(r.Scopes) == 0 {
		return
	}
	r.Scopes[len(r.Scopes)-1][name.Literal] = true
}

// resolveLocal searches the scope stack from innermost outward for the
// token's name and, when found, records the distance in the side table
// keyed by the token's universal index. Names found in no frame are left
// unresolved and become global lookups at run time.
func (r *Resolver) resolveLocal(name lexer.Token) {
	for i := len(r.Scopes) - 1; i >= 0; i-- {
		if _, ok := r.Scopes[i][name.Literal]; ok {
			r.Locals[name.Id] = len(r.Scopes) - 1 - i
			return
		}
	}
}

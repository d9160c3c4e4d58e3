/*
File    : lox-v1/eval/eval_classes.go
Author  : aQaTL
*/
package eval

import (
	"github.com/aQaTL/lox-v1/function"
	"github.com/aQaTL/lox-v1/objects"
	"github.com/aQaTL/lox-v1/parser"
	"github.com/aQaTL/lox-v1/scope"
)

// evalClassDeclaration evaluates a class declaration.
//
// The steps, in order:
//  1. Evaluate the superclass name (when present) and verify it is a class.
//  2. Define the class name in the current scope bound to nil. This
//     two-step define/assign lets method bodies reference the class by
//     name before the class value exists.
//  3. When a superclass is present, push a one-frame scope binding super
//     to it. That frame becomes part of every method's captured scope, so
//     super dispatch inside a method always starts from the declaring
//     class's superclass, regardless of the receiver's runtime class.
//  4. Build the method table; the init method is flagged as initializer.
//  5. Rebind the declared name to the finished class value.
func (e *Evaluator) evalClassDeclaration(n *parser.ClassDeclarationNode) objects.LoxObject {
	var superclass *objects.LoxClass
	if n.SuperName != nil {
		superVal := e.lookupVariable(*n.SuperName)
		if IsError(superVal) {
			return superVal
		}
		class, ok := superVal.(*objects.LoxClass)
		if !ok {
			return e.CreateError(n.SuperName.Line, "Superclass must be a class.")
		}
		superclass = class
	}

	e.Scp.Define(n.ClassName.Literal, &objects.Nil{})

	methodScope := e.Scp
	if superclass != nil {
		methodScope = scope.NewScope(e.Scp)
		methodScope.Define("super", superclass)
	}

	methods := make(map[string]objects.FunctionInterface, len(n.Methods))
	for _, methodDecl := range n.Methods {
		methods[methodDecl.FuncName.Literal] = &function.Function{
			Decl:          methodDecl,
			Scp:           methodScope,
			IsInitializer: methodDecl.FuncName.Literal == "init",
		}
	}

	class := &objects.LoxClass{
		Name:    n.ClassName.Literal,
		Super:   superclass,
		Methods: methods,
	}
	e.Scp.Define(n.ClassName.Literal, class)
	return &objects.Nil{}
}

// evalGetExpression evaluates a property read. Only instances have
// properties. Fields shadow methods; a method hit produces a fresh bound
// method whose captured scope has this bound to the instance.
func (e *Evaluator) evalGetExpression(n *parser.GetExpressionNode) objects.LoxObject {
	object := e.evalExpression(n.Object)
	if IsError(object) {
		return object
	}

	instance, ok := object.(*objects.LoxInstance)
	if !ok {
		return e.CreateError(n.Name.Line, "Only instances have properties")
	}

	if field, found := instance.GetField(n.Name.Literal); found {
		return field
	}

	if method, found := instance.Class.FindMethod(n.Name.Literal); found {
		fn, ok := method.(*function.Function)
		if !ok {
			return e.CreateError(n.Name.Line, "property '%s' is not a callable method", n.Name.Literal)
		}
		return fn.Bind(instance)
	}

	return e.CreateError(n.Name.Line, "Undefined property '%s'", n.Name.Literal)
}

// evalSetExpression evaluates a field write. Only instances have fields;
// the field springs into existence on first assignment. The assigned value
// is the expression's result.
func (e *Evaluator) evalSetExpression(n *parser.SetExpressionNode) objects.LoxObject {
	object := e.evalExpression(n.Object)
	if IsError(object) {
		return object
	}

	instance, ok := object.(*objects.LoxInstance)
	if !ok {
		return e.CreateError(n.Name.Line, "Only instances have fields")
	}

	val := e.evalExpression(n.Value)
	if IsError(val) {
		return val
	}
	instance.SetField(n.Name.Literal, val)
	return val
}

// evalSuperExpression evaluates a superclass method access. The resolver
// recorded the depth of the frame binding super; this lives exactly one
// frame below it (the frame Bind created at method lookup time). The
// method search starts at the declaring class's superclass and walks up,
// and the hit is bound to the current instance.
func (e *Evaluator) evalSuperExpression(n *parser.SuperExpressionNode) objects.LoxObject {
	depth, resolved := e.Locals[n.Keyword.Id]
	if !resolved {
		return e.CreateError(n.Keyword.Line, "Undefined variable 'super'")
	}

	superVal, _ := e.Scp.GetAt(depth, "super")
	superclass, ok := superVal.(*objects.LoxClass)
	if !ok {
		return e.CreateError(n.Keyword.Line, "Superclass must be a class.")
	}

	instance, _ := e.Scp.GetAt(depth-1, "this")

	method, found := superclass.FindMethod(n.Method.Literal)
	if !found {
		return e.CreateError(n.Method.Line, "Undefined property '%s'", n.Method.Literal)
	}
	fn, ok := method.(*function.Function)
	if !ok {
		return e.CreateError(n.Method.Line, "property '%s' is not a callable method", n.Method.Literal)
	}
	return fn.Bind(instance)
}

/*
File    : lox-v1/eval/eval_expressions.go
Author  : aQaTL
*/
package eval

import (
	"github.com/aQaTL/lox-v1/lexer"
	"github.com/aQaTL/lox-v1/objects"
	"github.com/aQaTL/lox-v1/parser"
)

// evalExpression dispatches a single expression on its concrete type.
// Every case first evaluates its sub-expressions and forwards any Error
// result unchanged, so the first runtime failure propagates to the top.
func (e *Evaluator) evalExpression(expr parser.ExpressionNode) objects.LoxObject {
	switch n := expr.(type) {

	case *parser.NumberLiteralExpressionNode:
		return &objects.Number{Value: n.Value}

	case *parser.StringLiteralExpressionNode:
		return &objects.String{Value: n.Value}

	case *parser.BooleanLiteralExpressionNode:
		return &objects.Boolean{Value: n.Value}

	case *parser.NilLiteralExpressionNode:
		return &objects.Nil{}

	case *parser.IdentifierExpressionNode:
		return e.lookupVariable(n.Token)

	case *parser.AssignmentExpressionNode:
		return e.evalAssignment(n)

	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)

	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)

	case *parser.LogicalExpressionNode:
		return e.evalLogicalExpression(n)

	case *parser.ParenthesizedExpressionNode:
		return e.evalExpression(n.Expr)

	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)

	case *parser.GetExpressionNode:
		return e.evalGetExpression(n)

	case *parser.SetExpressionNode:
		return e.evalSetExpression(n)

	case *parser.ThisExpressionNode:
		return e.lookupVariable(n.Keyword)

	case *parser.SuperExpressionNode:
		return e.evalSuperExpression(n)

	default:
		// Unreachable for trees produced by the parser.
		return e.CreateError(0, "unknown expression node %T", expr)
	}
}

// lookupVariable reads the value a name token refers to. Resolved locals
// (including this) use the exact depth from the resolver's side table;
// everything else is a late-bound global lookup.
func (e *Evaluator) lookupVariable(name lexer.Token) objects.LoxObject {
	if depth, resolved := e.Locals[name.Id]; resolved {
		val, ok := e.Scp.GetAt(depth, name.Literal)
		if !ok {
			return e.CreateError(name.Line, "Undefined variable '%s'", name.Literal)
		}
		return val
	}
	val, ok := e.Globals.Get(name.Literal)
	if !ok {
		return e.CreateError(name.Line, "Undefined variable '%s'", name.Literal)
	}
	return val
}

// evalAssignment writes a new value to an existing binding, local or
// global, and produces the assigned value so assignments compose as
// expressions ("a = b = 5").
func (e *Evaluator) evalAssignment(n *parser.AssignmentExpressionNode) objects.LoxObject {
	val := e.evalExpression(n.Value)
	if IsError(val) {
		return val
	}

	if depth, resolved := e.Locals[n.Name.Id]; resolved {
		e.Scp.AssignAt(depth, n.Name.Literal, val)
		return val
	}
	if !e.Globals.Assign(n.Name.Literal, val) {
		return e.CreateError(n.Name.Line, "Undefined variable '%s'", n.Name.Literal)
	}
	return val
}

// evalUnaryExpression handles the prefix operators: numeric negation,
// which requires a number operand, and logical not, which applies
// truthiness to any value.
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) objects.LoxObject {
	right := e.evalExpression(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operation.Type {
	case lexer.MINUS_OP:
		num, ok := right.(*objects.Number)
		if !ok {
			return e.CreateError(n.Operation.Line, "Operand must be a number")
		}
		return &objects.Number{Value: -num.Value}
	case lexer.NOT_OP:
		return &objects.Boolean{Value: !IsTruthy(right)}
	default:
		return e.CreateError(n.Operation.Line, "unknown unary operator '%s'", n.Operation.Literal)
	}
}

// evalBinaryExpression handles arithmetic, equality, and comparison
// operators. Both operands are always evaluated, left first.
//
// The + operator is overloaded: two numbers add, two strings concatenate,
// and any other combination is a runtime error attached to the operator's
// line. Division by zero is not an error; it produces the IEEE-754 result
// (infinity or NaN). Equality follows value semantics for primitives and
// identity for functions, classes, and instances.
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) objects.LoxObject {
	left := e.evalExpression(n.Left)
	if IsError(left) {
		return left
	}
	right := e.evalExpression(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operation.Type {

	case lexer.PLUS_OP:
		if leftNum, ok := left.(*objects.Number); ok {
			if rightNum, ok := right.(*objects.Number); ok {
				return &objects.Number{Value: leftNum.Value + rightNum.Value}
			}
		}
		if leftStr, ok := left.(*objects.String); ok {
			if rightStr, ok := right.(*objects.String); ok {
				return &objects.String{Value: leftStr.Value + rightStr.Value}
			}
		}
		return e.CreateError(n.Operation.Line, "Operands must be two numbers or two strings")

	case lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP:
		leftNum, rightNum, err := e.numberOperands(n.Operation, left, right)
		if err != nil {
			return err
		}
		switch n.Operation.Type {
		case lexer.MINUS_OP:
			return &objects.Number{Value: leftNum - rightNum}
		case lexer.MUL_OP:
			return &objects.Number{Value: leftNum * rightNum}
		default:
			// IEEE-754 division: x/0 is +-Inf, 0/0 is NaN, never an error.
			return &objects.Number{Value: leftNum / rightNum}
		}

	case lexer.EQ_OP:
		return &objects.Boolean{Value: valuesEqual(left, right)}
	case lexer.NE_OP:
		return &objects.Boolean{Value: !valuesEqual(left, right)}

	case lexer.GT_OP, lexer.GE_OP, lexer.LT_OP, lexer.LE_OP:
		leftNum, rightNum, err := e.numberOperands(n.Operation, left, right)
		if err != nil {
			return err
		}
		switch n.Operation.Type {
		case lexer.GT_OP:
			return &objects.Boolean{Value: leftNum > rightNum}
		case lexer.GE_OP:
			return &objects.Boolean{Value: leftNum >= rightNum}
		case lexer.LT_OP:
			return &objects.Boolean{Value: leftNum < rightNum}
		default:
			return &objects.Boolean{Value: leftNum <= rightNum}
		}

	default:
		return e.CreateError(n.Operation.Line, "unknown binary operator '%s'", n.Operation.Literal)
	}
}

// numberOperands extracts two number operands for an arithmetic or
// comparison operator, or produces the runtime error attached to the
// operator's line.
func (e *Evaluator) numberOperands(op lexer.Token, left, right objects.LoxObject) (float64, float64, *objects.Error) {
	leftNum, leftOk := left.(*objects.Number)
	rightNum, rightOk := right.(*objects.Number)
	if !leftOk || !rightOk {
		return 0, 0, e.CreateError(op.Line, "Operands must be numbers")
	}
	return leftNum.Value, rightNum.Value, nil
}

// evalLogicalExpression implements short-circuiting and/or. The left
// operand decides: or yields it when truthy, and yields it when falsy;
// otherwise the right operand is evaluated and yielded as-is. The result
// is one of the operand values, not a coerced boolean.
func (e *Evaluator) evalLogicalExpression(n *parser.LogicalExpressionNode) objects.LoxObject {
	left := e.evalExpression(n.Left)
	if IsError(left) {
		return left
	}

	if n.Operation.Type == lexer.OR_KEY {
		if IsTruthy(left) {
			return left
		}
	} else {
		if !IsTruthy(left) {
			return left
		}
	}

	return e.evalExpression(n.Right)
}

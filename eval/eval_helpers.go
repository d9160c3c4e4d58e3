/*
File    : lox-v1/eval/eval_helpers.go
Author  : aQaTL
*/
package eval

import (
	"github.com/aQaTL/lox-v1/objects"
)

// IsError reports whether an evaluation result is a runtime error. Every
// evaluation step checks its sub-results with this before continuing, so
// the first error propagates to the top untouched.
func IsError(obj objects.LoxObject) bool {
	return obj.GetType() == objects.ErrorType
}

// IsTruthy implements the language's truthiness rule: nil and false are
// falsy, every other value is truthy. Zero, the empty string, and empty
// instances are all truthy.
func IsTruthy(obj objects.LoxObject) bool {
	switch v := obj.(type) {
	case *objects.Nil:
		return false
	case *objects.Boolean:
		return v.Value
	default:
		return true
	}
}

// UnwrapReturnValue strips the ReturnValue signal wrapper, yielding the
// value being returned. Any other object passes through unchanged.
func UnwrapReturnValue(obj objects.LoxObject) objects.LoxObject {
	if returned, ok := obj.(*objects.ReturnValue); ok {
		return returned.Value
	}
	return obj
}

// valuesEqual implements the == operator's equality table:
//   - nil equals only nil
//   - booleans compare by value
//   - numbers use IEEE-754 equality, so NaN is not equal to NaN
//   - strings compare by content
//   - functions, natives, classes, and instances compare by identity
//
// Values of different types are never equal.
func valuesEqual(left, right objects.LoxObject) bool {
	switch l := left.(type) {
	case *objects.Nil:
		_, ok := right.(*objects.Nil)
		return ok
	case *objects.Boolean:
		r, ok := right.(*objects.Boolean)
		return ok && l.Value == r.Value
	case *objects.Number:
		r, ok := right.(*objects.Number)
		return ok && l.Value == r.Value
	case *objects.String:
		r, ok := right.(*objects.String)
		return ok && l.Value == r.Value
	default:
		// Reference types: identity. Interface comparison of two pointers
		// is pointer equality.
		return left == right
	}
}

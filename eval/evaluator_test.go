/*
File    : lox-v1/eval/evaluator_test.go
Author  : aQaTL
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aQaTL/lox-v1/objects"
	"github.com/aQaTL/lox-v1/parser"
	"github.com/aQaTL/lox-v1/resolver"
)

// runProgram pushes a source program through the full parse/resolve/eval
// pipeline against fresh interpreter state, failing the test on static
// errors. It returns the captured print output and the final result (the
// Error object when the program failed at run time).
func runProgram(t *testing.T, src string) (string, objects.LoxObject) {
	t.Helper()

	par := parser.NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors(), "parse errors for %q: %v", src, par.GetErrors())

	res := resolver.NewResolver()
	locals := res.Resolve(root)
	assert.False(t, res.HasErrors(), "resolve errors for %q: %v", src, res.GetErrors())

	evaluator := NewEvaluator()
	var buf bytes.Buffer
	evaluator.SetWriter(&buf)
	evaluator.SetLocals(locals)

	result := evaluator.Run(root)
	return buf.String(), result
}

// assertOutput runs a program and checks its print output.
func assertOutput(t *testing.T, src string, expected string) {
	t.Helper()
	output, result := runProgram(t, src)
	if err, isErr := result.(*objects.Error); isErr {
		t.Errorf("unexpected runtime error for %q: %s [line %d]", src, err.Message, err.Line)
		return
	}
	assert.Equal(t, expected, output, "input: %s", src)
}

// assertRuntimeError runs a program and checks it fails with a message
// containing the given fragment.
func assertRuntimeError(t *testing.T, src string, fragment string) {
	t.Helper()
	_, result := runProgram(t, src)
	err, isErr := result.(*objects.Error)
	assert.True(t, isErr, "expected runtime error for %q, got %s", src, result.ToObject())
	if isErr {
		assert.Contains(t, err.Message, fragment, "input: %s", src)
	}
}

// TestEvaluator_Arithmetic verifies number evaluation, precedence, and the
// display format for integral and fractional results.
func TestEvaluator_Arithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print 1 + 2 * 3;`, "7\n"},
		{`print (1 + 2) * 3;`, "9\n"},
		{`print 10 - 4 - 3;`, "3\n"},
		{`print 15 / 3;`, "5\n"},
		{`print 2.5 + 0.5;`, "3\n"},
		{`print 1 / 4;`, "0.25\n"},
		{`print -3 * -4;`, "12\n"},
		{`print 0.1 + 0.2;`, "0.30000000000000004\n"},
	}
	for _, tt := range tests {
		assertOutput(t, tt.input, tt.expected)
	}
}

// TestEvaluator_DivisionByZero verifies IEEE-754 semantics: dividing by
// zero yields infinity or NaN, never a runtime error.
func TestEvaluator_DivisionByZero(t *testing.T) {
	assertOutput(t, `print 1 / 0;`, "+Inf\n")
	assertOutput(t, `print -1 / 0;`, "-Inf\n")
	assertOutput(t, `print 0 / 0;`, "NaN\n")
}

// TestEvaluator_Strings verifies concatenation and display without quotes.
func TestEvaluator_Strings(t *testing.T) {
	assertOutput(t, `print "hello" + " " + "world";`, "hello world\n")
	assertOutput(t, `print "";`, "\n")
	assertOutput(t, `var s = "multi" + "part"; print s == "multipart";`, "true\n")
}

// TestEvaluator_Truthiness verifies the falsiness of nil and false only:
// zero, the empty string, and everything else are truthy, and !! is the
// canonical truthiness probe.
func TestEvaluator_Truthiness(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print !!nil;`, "false\n"},
		{`print !!false;`, "false\n"},
		{`print !!true;`, "true\n"},
		{`print !!0;`, "true\n"},
		{`print !!"";`, "true\n"},
		{`print !!"text";`, "true\n"},
		{`if (0) print "zero is truthy";`, "zero is truthy\n"},
		{`if (nil) print "no"; else print "nil is falsy";`, "nil is falsy\n"},
	}
	for _, tt := range tests {
		assertOutput(t, tt.input, tt.expected)
	}
}

// TestEvaluator_Equality verifies the equality table, including NaN
// inequality and cross-type comparisons.
func TestEvaluator_Equality(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print nil == nil;`, "true\n"},
		{`print nil == false;`, "false\n"},
		{`print true == true;`, "true\n"},
		{`print 1 == 1;`, "true\n"},
		{`print 1 == 2;`, "false\n"},
		{`print 1 != 2;`, "true\n"},
		{`print "a" == "a";`, "true\n"},
		{`print "a" == "b";`, "false\n"},
		{`print 1 == "1";`, "false\n"},
		{`print (0 / 0) == (0 / 0);`, "false\n"}, // NaN != NaN
		{`fun f() { } print f == f;`, "true\n"},  // identity
		{`fun f() { } fun g() { } print f == g;`, "false\n"},
	}
	for _, tt := range tests {
		assertOutput(t, tt.input, tt.expected)
	}
}

// TestEvaluator_Comparisons verifies the ordering operators on numbers.
func TestEvaluator_Comparisons(t *testing.T) {
	assertOutput(t, `print 1 < 2; print 2 <= 2; print 3 > 4; print 4 >= 4;`, "true\ntrue\nfalse\ntrue\n")
}

// TestEvaluator_Logical verifies short-circuit evaluation and the law that
// and/or yield operand values, not coerced booleans.
func TestEvaluator_Logical(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print nil and 2;`, "nil\n"},    // falsy left decides and
		{`print 1 and 2;`, "2\n"},        // truthy left defers to right
		{`print 1 or 2;`, "1\n"},         // truthy left decides or
		{`print nil or "ok";`, "ok\n"},   // falsy left defers to right
		{`print false or nil;`, "nil\n"}, // both falsy: the right value
	}
	for _, tt := range tests {
		assertOutput(t, tt.input, tt.expected)
	}

	// The right operand must not run when the left decides
	assertOutput(t, `fun boom() { print "evaluated"; return true; } print false and boom();`, "false\n")
	assertOutput(t, `fun boom() { print "evaluated"; return true; } print true or boom();`, "true\n")
}

// TestEvaluator_Shadowing verifies lexical shadowing across block scopes.
func TestEvaluator_Shadowing(t *testing.T) {
	src := `
var a = 1;
{ var a = 2; print a; }
print a;`
	assertOutput(t, src, "2\n1\n")
}

// TestEvaluator_Assignment verifies assignment as an expression and
// writes through block boundaries to the declaring scope.
func TestEvaluator_Assignment(t *testing.T) {
	assertOutput(t, `var a = 1; print a = 2; print a;`, "2\n2\n")
	assertOutput(t, `var a = 1; { a = 2; } print a;`, "2\n")
	assertOutput(t, `var a; print a;`, "nil\n")
	assertOutput(t, `var a = 1; var b = 2; a = b = 3; print a; print b;`, "3\n3\n")
}

// TestEvaluator_ControlFlow verifies if/else branching and while loops.
func TestEvaluator_ControlFlow(t *testing.T) {
	assertOutput(t, `if (1 < 2) print "then"; else print "else";`, "then\n")
	assertOutput(t, `if (1 > 2) print "then"; else print "else";`, "else\n")
	assertOutput(t, `var i = 0; while (i < 3) { print i; i = i + 1; }`, "0\n1\n2\n")
	assertOutput(t, `while (false) print "never";`, "")
}

// TestEvaluator_ForLoop verifies the desugared for loop end to end.
func TestEvaluator_ForLoop(t *testing.T) {
	assertOutput(t, `for (var i = 0; i < 3; i = i + 1) print i;`, "0\n1\n2\n")
	assertOutput(t, `var i = 5; for (i = 0; i < 2; i = i + 1) print i; print i;`, "0\n1\n2\n")
	// The loop variable is scoped to the loop
	assertOutput(t, `var i = 9; for (var i = 0; i < 1; i = i + 1) print i; print i;`, "0\n9\n")
}

// TestEvaluator_Clock verifies the single native: arity 0, returns a
// number of seconds that only moves forward.
func TestEvaluator_Clock(t *testing.T) {
	assertOutput(t, `print clock() > 0;`, "true\n")
	assertOutput(t, `var a = clock(); var b = clock(); print b >= a;`, "true\n")
	assertRuntimeError(t, `clock(1);`, "Expected 0 arguments but got 1.")
}

// TestEvaluator_RuntimeErrors verifies the error surface: message
// fragments and the line the error is attached to.
func TestEvaluator_RuntimeErrors(t *testing.T) {
	tests := []struct {
		input    string
		fragment string
	}{
		{`print undefined_name;`, "Undefined variable 'undefined_name'"},
		{`missing = 1;`, "Undefined variable 'missing'"},
		{`print 1 + "a";`, "Operands must be two numbers or two strings"},
		{`print "a" + 1;`, "Operands must be two numbers or two strings"},
		{`print 1 - "a";`, "Operands must be numbers"},
		{`print "a" < "b";`, "Operands must be numbers"},
		{`print -"a";`, "Operand must be a number"},
		{`"not callable"();`, "Can only call functions and classes"},
		{`fun f(a, b) { } f(1);`, "Expected 2 arguments but got 1."},
		{`fun f() { } f(1, 2);`, "Expected 0 arguments but got 2."},
	}
	for _, tt := range tests {
		assertRuntimeError(t, tt.input, tt.fragment)
	}
}

// TestEvaluator_ErrorLine verifies that a runtime error carries the line
// of the operator token that failed.
func TestEvaluator_ErrorLine(t *testing.T) {
	src := "var a = 1;\nvar b = \"x\";\nprint a\n  +\n  b;"
	_, result := runProgram(t, src)
	err, isErr := result.(*objects.Error)
	assert.True(t, isErr)
	assert.Equal(t, 4, err.Line)
}

// TestEvaluator_ErrorHaltsExecution verifies that nothing after the
// failing statement runs.
func TestEvaluator_ErrorHaltsExecution(t *testing.T) {
	output, result := runProgram(t, `print "before"; print missing; print "after";`)
	assert.Equal(t, "before\n", output)
	assert.True(t, IsError(result))
}

// TestEvaluator_REPLEcho verifies that REPL mode echoes top-level bare
// expression results and nothing else.
func TestEvaluator_REPLEcho(t *testing.T) {
	par := parser.NewParser(`1 + 2; var x = 10; x * 2;`)
	root := par.Parse()
	assert.False(t, par.HasErrors())
	res := resolver.NewResolver()
	locals := res.Resolve(root)
	assert.False(t, res.HasErrors())

	evaluator := NewEvaluator()
	var buf bytes.Buffer
	evaluator.SetWriter(&buf)
	evaluator.SetLocals(locals)
	evaluator.SetREPLMode(true)

	evaluator.Run(root)
	assert.Equal(t, "3\n20\n", buf.String())
}

// TestEvaluator_DisplayFormats verifies the display format of every value
// kind as emitted by print.
func TestEvaluator_DisplayFormats(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print 7;`, "7\n"},
		{`print 2.5;`, "2.5\n"},
		{`print true; print false; print nil;`, "true\nfalse\nnil\n"},
		{`print "raw text";`, "raw text\n"},
		{`fun add(a, b) { return a + b; } print add;`, "<fn add>\n"},
		{`print clock;`, "<native fn>\n"},
		{`class Cake { } print Cake;`, "Cake\n"},
		{`class Cake { } print Cake();`, "Cake instance\n"},
	}
	for _, tt := range tests {
		assertOutput(t, tt.input, tt.expected)
	}
}

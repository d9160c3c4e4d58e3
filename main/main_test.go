/*
File    : lox-v1/main/main_test.go
Author  : aQaTL
*/
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aQaTL/lox-v1/parser"
)

// run executes a program through the same pipeline as file mode, capturing
// stdout and stderr separately, and returns the exit code.
func run(src string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := runSource(src, &out, &errOut)
	return code, out.String(), errOut.String()
}

// TestRunSource_Scenarios exercises the interpreter end to end on the
// canonical language scenarios.
func TestRunSource_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "precedence",
			input:    `print 1 + 2 * 3;`,
			expected: "7\n",
		},
		{
			name: "lexical shadowing",
			input: `
var a = 1;
{ var a = 2; print a; }
print a;`,
			expected: "2\n1\n",
		},
		{
			name: "closure over mutable binding",
			input: `
fun makeCounter(){ var i = 0; fun c(){ i = i + 1; return i; } return c; }
var c = makeCounter(); print c(); print c(); print c();`,
			expected: "1\n2\n3\n",
		},
		{
			name: "super dispatch",
			input: `
class A { m() { print "A"; } }
class B < A { m() { super.m(); print "B"; } }
B().m();`,
			expected: "A\nB\n",
		},
		{
			name:     "for desugar",
			input:    `for (var i = 0; i < 3; i = i + 1) print i;`,
			expected: "0\n1\n2\n",
		},
		{
			name: "init, field, method binding",
			input: `
class Cake { init(f){ this.f = f; } taste(){ return this.f; } }
print Cake("choc").taste();`,
			expected: "choc\n",
		},
	}

	for _, tt := range tests {
		code, out, errOut := run(tt.input)
		assert.Equal(t, exitOk, code, "%s: stderr %s", tt.name, errOut)
		assert.Equal(t, tt.expected, out, tt.name)
	}
}

// TestRunSource_ExitCodes verifies the file-mode exit code contract:
// 65 for static errors, 70 for runtime errors.
func TestRunSource_ExitCodes(t *testing.T) {
	// Clean program
	code, _, _ := run(`print "ok";`)
	assert.Equal(t, exitOk, code)

	// Lexical error
	code, _, errOut := run(`var a = @;`)
	assert.Equal(t, exitStatic, code)
	assert.Contains(t, errOut, "LEXER ERROR")

	// Parse error
	code, _, errOut = run(`print 1 +;`)
	assert.Equal(t, exitStatic, code)
	assert.Contains(t, errOut, "PARSER ERROR")

	// Resolve error
	code, _, errOut = run(`return 1;`)
	assert.Equal(t, exitStatic, code)
	assert.Contains(t, errOut, "RESOLVER ERROR")

	// Runtime error: message plus [line N] context on stderr
	code, out, errOut := run("print \"before\";\nprint missing;")
	assert.Equal(t, exitRuntime, code)
	assert.Equal(t, "before\n", out)
	assert.Contains(t, errOut, "Undefined variable 'missing'")
	assert.Contains(t, errOut, "[line 2]")
}

// TestRunSource_StaticErrorsPreventEvaluation verifies that a program
// with parse or resolve errors produces no output at all.
func TestRunSource_StaticErrorsPreventEvaluation(t *testing.T) {
	code, out, _ := run(`print "first"; print 1 +;`)
	assert.Equal(t, exitStatic, code)
	assert.Empty(t, out)

	code, out, _ = run(`print "first"; class A < A { }`)
	assert.Equal(t, exitStatic, code)
	assert.Empty(t, out)
}

// TestRunSource_FreshStatePerRun verifies the interpreter is stateless
// across runs: globals do not leak between invocations.
func TestRunSource_FreshStatePerRun(t *testing.T) {
	code, _, _ := run(`var leaky = 1; print leaky;`)
	assert.Equal(t, exitOk, code)

	code, _, errOut := run(`print leaky;`)
	assert.Equal(t, exitRuntime, code)
	assert.Contains(t, errOut, "Undefined variable 'leaky'")
}

// TestPrintingVisitor verifies the --ast dump rendering on a small
// program.
func TestPrintingVisitor(t *testing.T) {
	par := parser.NewParser(`fun add(a, b) { return a + b; } print add(1, 2);`)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	visitor := &PrintingVisitor{}
	root.Accept(visitor)
	dump := visitor.String()

	assert.Contains(t, dump, "Program (2 statements)")
	assert.Contains(t, dump, "Function [add(a, b)]")
	assert.Contains(t, dump, "Return")
	assert.Contains(t, dump, "Binary [+]")
	assert.Contains(t, dump, "Call (2 args)")

	// Children indent one level below their parent
	lines := strings.Split(dump, "\n")
	var fnIndent, retIndent int
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		switch {
		case strings.HasPrefix(trimmed, "Function"):
			fnIndent = len(line) - len(trimmed)
		case strings.HasPrefix(trimmed, "Return"):
			retIndent = len(line) - len(trimmed)
		}
	}
	assert.Equal(t, fnIndent+INDENT_SIZE, retIndent)
}

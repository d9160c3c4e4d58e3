/*
File    : lox-v1/eval/evaluator.go
Author  : aQaTL
*/
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/aQaTL/lox-v1/objects"
	"github.com/aQaTL/lox-v1/parser"
	"github.com/aQaTL/lox-v1/scope"
)

// Evaluator holds the state for evaluating Lox AST nodes: the global and
// current scopes, the resolver's depth table, and the output writer. It is
// the execution engine of the interpreter, walking statements sequentially
// and threading the current environment through every construct.
//
// The evaluator is strictly single-threaded; all scopes, instances, and
// classes it creates are mutated only from the thread that owns it.
type Evaluator struct {
	Globals *scope.Scope // Root scope holding globals and natives
	Scp     *scope.Scope // Current scope, changes as blocks and calls nest
	Locals  map[int]int  // Resolver output: token id -> scope depth
	Writer  io.Writer    // Output destination for print statements (default: os.Stdout)
	IsREPL  bool         // Echo top-level expression statement results
}

// NewEvaluator creates and initializes a new Evaluator instance with
// default configuration.
//
// This constructor performs the following initialization:
// - Creates the root (global) scope
// - Installs every native function into the global scope
// - Sets the output writer to os.Stdout for default console output
//
// Returns:
//   - *Evaluator: A fully initialized evaluator ready to execute code
//
// Example usage:
//
//	ev := NewEvaluator()
//	ev.SetLocals(resolver.NewResolver().Resolve(root))
//	result := ev.Run(root)
func NewEvaluator() *Evaluator {
	globals := scope.NewScope(nil)
	for _, builtin := range objects.Builtins {
		globals.Define(builtin.Name, builtin)
	}
	return &Evaluator{
		Globals: globals,
		Scp:     globals,
		Locals:  make(map[int]int),
		Writer:  os.Stdout,
	}
}

// SetWriter configures the output destination for print statements.
//
// This method allows redirecting program output to any io.Writer
// implementation. This is particularly useful for:
// - Testing: capturing output to verify program behavior
// - Custom output handling: sending output to buffers or streams
//
// Parameters:
//   - w: An io.Writer implementation that will receive program output
//
// Example usage:
//
//	var buf bytes.Buffer
//	ev.SetWriter(&buf)  // Redirect output to buffer for testing
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetLocals installs the resolver's depth side table. Must be called with
// the table resolved from the same AST that will be evaluated; in REPL
// mode the entries from successive lines accumulate, since token ids never
// repeat across lines.
func (e *Evaluator) SetLocals(locals map[int]int) {
	for id, depth := range locals {
		e.Locals[id] = depth
	}
}

// SetREPLMode switches echoing of top-level expression statement results,
// used by the interactive loop so a bare "1 + 2;" prints 3.
func (e *Evaluator) SetREPLMode(isREPL bool) {
	e.IsREPL = isREPL
}

// Run evaluates a whole program under the current global scope.
//
// Returns:
//   - objects.LoxObject: The last statement's result, or the Error object
//     that halted execution
func (e *Evaluator) Run(root *parser.RootNode) objects.LoxObject {
	return e.evalStatements(root.Statements)
}

// CreateError creates a runtime Error value carrying a formatted message
// and the source line it is attached to. Errors propagate outward through
// evaluation and halt the program.
//
// Parameters:
//   - line: The 1-based source line of the token the error points at
//   - format: A format string following fmt.Sprintf conventions
//   - a: Arguments to be formatted into the error message
//
// Returns:
//   - *objects.Error: The runtime error value
func (e *Evaluator) CreateError(line int, format string, a ...interface{}) *objects.Error {
	return &objects.Error{
		Message: fmt.Sprintf(format, a...),
		Line:    line,
	}
}

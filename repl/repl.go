/*
File    : lox-v1/repl/repl.go
Author  : aQaTL

Package repl implements the Read-Eval-Print Loop (REPL) for the Lox
interpreter. The REPL provides an interactive environment where users can:
- Enter Lox statements line by line
- See immediate results of bare expression statements
- Navigate command history using arrow keys
- Receive colored feedback for different kinds of output

Globals persist across lines in one session, and because globals are
late-bound a function entered on one line may reference a variable defined
on a later line, as long as it is not called before that. The REPL uses
the readline library for line editing and integrates the parser, resolver,
and evaluator pipeline for each submitted line.
*/
package repl

import (
	"io"
	"strings"

	"github.com/aQaTL/lox-v1/eval"
	"github.com/aQaTL/lox-v1/objects"
	"github.com/aQaTL/lox-v1/parser"
	"github.com/aQaTL/lox-v1/resolver"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output
// These colors provide visual feedback:
// - blueColor: Decorative lines and separators
// - yellowColor: Version info
// - redColor: Error messages
// - greenColor: Banner
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "lox >>> ")
}

// NewRepl creates and initializes a new REPL instance.
//
// Parameters:
//
//	banner  - ASCII art logo to display at startup
//	version - Version string of the interpreter
//	author  - Author information
//	line    - Separator line for formatting
//	license - Software license information
//	prompt  - Command prompt string
//
// Returns:
//
//	A pointer to a newly created Repl instance
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
// Called once when the REPL starts.
//
// Parameters:
//
//	writer - The io.Writer to output the banner to (typically os.Stdout)
func (r *Repl) PrintBannerInfo(writer io.Writer) {

	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type a statement and press enter; bare expressions echo their value")
	cyanColor.Fprintf(writer, "%s\n", "Type '/exit' or press Ctrl+D to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop.
// This is the core function that handles the interactive session:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates one evaluator instance shared by all lines
// 4. Reads, resolves, and evaluates lines until exit
//
// The loop continues until the user types '/exit' or EOF is encountered
// (Ctrl+D). Unlike file mode, errors never terminate the session.
//
// Parameters:
//
//	reader - Input source (unused directly; readline owns the terminal)
//	writer - Output destination (typically os.Stdout)
func (r *Repl) Start(reader io.Reader, writer io.Writer) {

	// Print the welcome banner and usage instructions
	r.PrintBannerInfo(writer)

	// Create a new readline instance for enhanced line editing
	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close() // Ensure readline is properly closed on exit

	// One evaluator for the whole session: globals, classes, and functions
	// persist across lines. REPL mode echoes expression statement results.
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)
	evaluator.SetREPLMode(true)

	// Main REPL loop - continues until user exits or EOF
	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g., Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")

		// Skip empty lines
		if line == "" {
			continue
		}

		// Check for exit command
		if line == "/exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Save the command to history for up/down arrow navigation
		rl.SaveHistory(line)

		ExecuteLine(writer, line, evaluator)
	}
}

// ExecuteLine runs one line of input through the parse/resolve/evaluate
// pipeline against a persistent evaluator.
//
// Unlike file execution mode, the REPL continues running after errors,
// allowing users to correct mistakes and try again:
//   - Parse errors: displayed in red, nothing is evaluated
//   - Resolve errors: displayed in red, nothing is evaluated
//   - Runtime errors: displayed in red with their line, session state up
//     to the failing statement is kept
//
// Parameters:
//
//	writer    - Output destination for results and errors
//	line      - The user's input line to execute
//	evaluator - The evaluator instance carrying the session's globals
func ExecuteLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	// Parse the input line into an AST
	par := parser.NewParser(line)
	root := par.Parse()

	// The parser collects errors instead of stopping at the first one
	if par.HasErrors() {
		for _, parseErr := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", parseErr)
		}
		return
	}

	// Resolve local depths for the new line; entries accumulate in the
	// evaluator since token ids never repeat
	res := resolver.NewResolver()
	locals := res.Resolve(root)
	if res.HasErrors() {
		for _, resolveErr := range res.GetErrors() {
			redColor.Fprintf(writer, "%s\n", resolveErr)
		}
		return
	}
	evaluator.SetLocals(locals)

	result := evaluator.Run(root)
	if runtimeErr, isErr := result.(*objects.Error); isErr {
		redColor.Fprintf(writer, "[RUNTIME ERROR] %s\n[line %d]\n", runtimeErr.Message, runtimeErr.Line)
	}
}

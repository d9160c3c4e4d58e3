/*
File    : lox-v1/main/main.go
Author  : aQaTL

Package main is the entry point for the Lox interpreter.
It provides two modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute Lox source files from the command line

The interpreter runs a lexer-parser-resolver-evaluator pipeline. File mode
follows the conventional exit codes: 0 on success, 65 when the program has
lexical, parse, or resolve errors, 70 when it fails at run time.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aQaTL/lox-v1/eval"
	"github.com/aQaTL/lox-v1/file"
	"github.com/aQaTL/lox-v1/objects"
	"github.com/aQaTL/lox-v1/parser"
	"github.com/aQaTL/lox-v1/repl"
	"github.com/aQaTL/lox-v1/resolver"
	"github.com/fatih/color"
)

// VERSION represents the current version of the interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the author information shown in the REPL banner
var AUTHOR = "aQaTL"

// LICENSE specifies the software license
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "lox >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
 ██▓     ▒█████  ▒██   ██▒
▓██▒    ▒██▒  ██▒▒▒ █ █ ▒░
▒██░    ▒██░  ██▒░░  █   ░
▒██░    ▒██   ██░ ░ █ █ ▒
░██████▒░ ████▓▒░▒██▒ ▒██▒
░ ▒░▓  ░░ ▒░▒░▒░ ▒▒ ░ ░▓ ░
░ ░ ▒  ░  ░ ▒ ▒░ ░░   ░▒ ░
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Exit codes for file mode, following the sysexits convention the test
// suites of this language family expect.
const (
	exitOk      = 0  // Ran to completion
	exitUsage   = 64 // Bad command line
	exitStatic  = 65 // Lexical, parse, or resolve errors
	exitNoInput = 66 // Source file could not be read
	exitRuntime = 70 // Runtime error
)

// Color definitions for file execution output
// - redColor: Error messages
// - cyanColor: Informational messages
// - yellowColor: Usage text
var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

// main is the entry point of the Lox interpreter.
// It determines the operating mode based on command-line arguments:
//
// Usage:
//
//	lox               - Start in REPL (interactive) mode
//	lox <filename>    - Execute the specified Lox source file
//	lox --ast <file>  - Parse a file and dump its AST
//	lox --help        - Display help information
//	lox --version     - Display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		// Handle --help flag
		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(exitOk)
		}

		// Handle --version flag
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(exitOk)
		}

		// AST dump mode: parse only, print the tree, no evaluation
		if arg == "--ast" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing file for --ast. Usage: lox --ast <path>\n")
				os.Exit(exitUsage)
			}
			os.Exit(dumpAST(os.Args[2]))
		}

		// File mode: read and run a file
		os.Exit(runFile(arg))
	}

	// REPL mode: Start interactive interpreter
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

// runFile loads and executes a source file, returning the process exit
// code for the outcome.
func runFile(path string) int {
	src, err := file.ReadSourceFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
		return exitNoInput
	}
	return runSource(src, os.Stdout, os.Stderr)
}

// runSource runs a program through the full pipeline against fresh
// interpreter state, writing program output to w and diagnostics to errW.
//
// Returns the exit code: 0 on success, 65 when lexing, parsing, or
// resolution fails (nothing is evaluated), 70 when evaluation hits a
// runtime error (execution halts at the failing statement).
func runSource(src string, w io.Writer, errW io.Writer) int {
	par := parser.NewParser(src)
	root := par.Parse()
	if par.HasErrors() {
		for _, parseErr := range par.GetErrors() {
			redColor.Fprintf(errW, "%s\n", parseErr)
		}
		return exitStatic
	}

	res := resolver.NewResolver()
	locals := res.Resolve(root)
	if res.HasErrors() {
		for _, resolveErr := range res.GetErrors() {
			redColor.Fprintf(errW, "%s\n", resolveErr)
		}
		return exitStatic
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(w)
	evaluator.SetLocals(locals)

	result := evaluator.Run(root)
	if runtimeErr, isErr := result.(*objects.Error); isErr {
		redColor.Fprintf(errW, "[RUNTIME ERROR] %s\n[line %d]\n", runtimeErr.Message, runtimeErr.Line)
		return exitRuntime
	}
	return exitOk
}

// dumpAST parses a file and prints its indented AST without evaluating.
// Parse errors are reported the same way file mode reports them.
func dumpAST(path string) int {
	src, err := file.ReadSourceFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
		return exitNoInput
	}

	par := parser.NewParser(src)
	root := par.Parse()
	if par.HasErrors() {
		for _, parseErr := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", parseErr)
		}
		return exitStatic
	}

	visitor := &PrintingVisitor{}
	root.Accept(visitor)
	fmt.Print(visitor.String())
	return exitOk
}

// showHelp displays the help information for the interpreter
func showHelp() {
	cyanColor.Println("Lox - A Tree-Walking Interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lox                       Start interactive REPL mode")
	yellowColor.Println("  lox <path-to-file>        Execute a Lox file (.lox)")
	yellowColor.Println("  lox --ast <path-to-file>  Parse a file and dump its AST")
	yellowColor.Println("  lox --help                Display this help message")
	yellowColor.Println("  lox --version             Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  /exit                     Exit the REPL")
	cyanColor.Println("")
	cyanColor.Println("EXIT CODES (file mode):")
	yellowColor.Println("  0   success")
	yellowColor.Println("  65  parse or resolve error")
	yellowColor.Println("  70  runtime error")
}

// showVersion displays the version information for the interpreter
func showVersion() {
	cyanColor.Println("Lox - A Tree-Walking Interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

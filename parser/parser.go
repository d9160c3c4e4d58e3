/*
File    : lox-v1/parser/parser.go
Author  : aQaTL
*/

/*
Package parser implements a Pratt parser (also known as top-down operator
precedence parser) for the Lox programming language.

The parser converts a stream of tokens from the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (literals, identifiers, unary, binary, logical, calls, property access)
- Statements (declarations, assignments, control flow, print, return)
- Functions and classes (declarations, methods, single inheritance)
- Operator precedence and associativity per the language grammar

Key Features:
- Pratt parsing algorithm for efficient expression parsing
- Assignment-target validation (identifier -> assign, property -> set)
- For-loop desugaring into an equivalent while form
- Error collection with synchronize-based recovery (doesn't stop on
  the first error)

Parsing is a pure syntactic pass: no evaluation happens here. The resolver
and evaluator consume the produced tree afterwards.
*/
package parser

import (
	"fmt"

	"github.com/aQaTL/lox-v1/lexer"
)

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse Lox source code into an
// Abstract Syntax Tree (AST).
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix operators and literals
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix and postfix operators

	// Collect parsing errors instead of panicking
	// This allows reporting multiple errors in a single parse
	Errors []string
}

// NewParser creates and initializes a new Parser instance.
// This is the main entry point for creating a parser.
//
// Parameters:
//
//	src - The Lox source code to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the source code.
func NewParser(src string) *Parser {
	// Create a lexer for the source code
	lex := lexer.NewLexer(src)

	// Create the parser with the lexer
	par := &Parser{
		Lex: lex,
	}

	// Initialize all parser state (maps, tokens, etc.)
	par.init()

	return par
}

// init initializes the parser's internal state.
// This function sets up:
// 1. Function maps for Pratt parsing
// 2. Error collection
// 3. Initial token lookahead
//
// The function registers parsing functions for all supported token types,
// establishing the expression grammar of the language.
func (par *Parser) init() {
	// Initialize all maps
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	// Register unary/prefix parsing functions
	// These handle tokens that can start an expression

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.LEFT_PAREN)

	// Number literals: 42, 3.14
	par.registerUnaryFuncs(par.parseNumberLiteral, lexer.NUMBER_LIT)

	// String literals: "hello"
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)

	// Boolean literals: true, false
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)

	// Nil literal: nil
	par.registerUnaryFuncs(par.parseNilLiteral, lexer.NIL_LIT)

	// Identifiers: variable, function, and class names
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)

	// Unary operators: !, -
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.NOT_OP, lexer.MINUS_OP)

	// this and super.method
	par.registerUnaryFuncs(par.parseThisExpression, lexer.THIS_KEY)
	par.registerUnaryFuncs(par.parseSuperExpression, lexer.SUPER_KEY)

	// Register binary/infix parsing functions
	// These handle operators that appear between two expressions

	// Arithmetic operators: +, -, *, /
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP)

	// Equality and comparison operators: ==, !=, <, >, <=, >=
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.EQ_OP, lexer.NE_OP, lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP)

	// Short-circuit logical operators: and, or
	par.registerBinaryFuncs(par.parseLogicalExpression, lexer.AND_KEY, lexer.OR_KEY)

	// Assignment: identifier = expr, object.name = expr
	par.registerBinaryFuncs(par.parseAssignmentExpression, lexer.ASSIGN_OP)

	// Calls: callee(args)
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)

	// Property access: object.name
	par.registerBinaryFuncs(par.parseMemberAccess, lexer.DOT_OP)

	// Prime the token lookahead by advancing twice
	// After this, CurrToken and NextToken are both valid
	par.advance()
	par.advance()
}

// advance moves the parser forward by one token.
// This implements the token lookahead mechanism:
// - CurrToken becomes NextToken
// - NextToken is fetched from the lexer
//
// This two-token lookahead allows the parser to make decisions
// based on the current token and peek at what's coming next.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectAdvance checks if the next token matches the expected type,
// and if so, advances the parser.
//
// Parameters:
//
//	expected - The token type we expect to see next
//
// Returns:
//
//	true if the next token matches and we advanced, false otherwise
//
// This is a common pattern in parsing: "I expect a semicolon next,
// and if it's there, move past it."
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// expectNext checks if the next token matches the expected type.
// If not, it adds an error message to the error list.
//
// Parameters:
//
//	expected - The token type we expect to see next
//
// Returns:
//
//	true if the next token matches, false otherwise
//
// This function doesn't advance the parser, it only checks.
// Use expectAdvance() if you want to check and advance in one step.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		par.addError("[line %d] PARSER ERROR: expected '%s', got '%s'",
			par.NextToken.Line, expected, describeToken(par.NextToken))
		return false
	}
	return true
}

// addError adds a formatted error message to the parser's error list.
// The parser collects errors instead of panicking, allowing it to
// report multiple errors in a single parse.
func (par *Parser) addError(format string, a ...interface{}) {
	par.Errors = append(par.Errors, fmt.Sprintf(format, a...))
}

// HasErrors returns true if there are parsing or lexical errors.
// This should be checked after parsing to determine if the parse was
// successful; a program with errors must not be evaluated.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0 || par.Lex.HasErrors()
}

// GetErrors returns all lexical and parsing errors collected during
// parsing, lexical errors first. This allows the caller to display all
// errors to the user in one pass.
func (par *Parser) GetErrors() []string {
	errors := make([]string, 0, len(par.Lex.Errors)+len(par.Errors))
	errors = append(errors, par.Lex.Errors...)
	errors = append(errors, par.Errors...)
	return errors
}

// describeToken renders a token for error messages: its lexeme, or a
// readable name for tokens without useful text.
func describeToken(tok lexer.Token) string {
	switch tok.Type {
	case lexer.EOF_TYPE:
		return "end of input"
	case lexer.STRING_LIT:
		return "\"" + tok.Literal + "\""
	default:
		return tok.Literal
	}
}

// Parse is the main parsing function that converts source code into an AST.
// It repeatedly parses statements until reaching the end of the input,
// building up a RootNode that contains all the parsed statements.
//
// When a statement fails to parse, the parser synchronizes: it discards
// tokens up to the next statement boundary and resumes, so one run reports
// every independent error.
//
// Returns:
//
//	A pointer to a RootNode containing all parsed statements
//
// Example:
//
//	root := NewParser("print 1 + 2;").Parse()
func (par *Parser) Parse() *RootNode {

	// Create the root node that will hold all statements
	root := &RootNode{}
	root.Statements = make([]StatementNode, 0)

	// Parse statements until we reach the end of input
	for par.CurrToken.Type != lexer.EOF_TYPE {
		errsBefore := len(par.Errors)
		stmt := par.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		} else if len(par.Errors) > errsBefore {
			// Discard tokens to the next statement boundary and resume
			par.synchronize()
			continue
		}
		par.advance()
	}

	return root
}

// synchronize discards tokens until a likely statement boundary: just past
// the next semicolon, or right before the next statement-starting keyword.
// This bounds the blast radius of a parse error so subsequent statements
// still get checked.
func (par *Parser) synchronize() {
	for par.CurrToken.Type != lexer.EOF_TYPE {
		if par.CurrToken.Type == lexer.SEMICOLON_DELIM {
			par.advance()
			return
		}
		switch par.NextToken.Type {
		case lexer.CLASS_KEY, lexer.FOR_KEY, lexer.FUN_KEY, lexer.IF_KEY,
			lexer.PRINT_KEY, lexer.RETURN_KEY, lexer.VAR_KEY, lexer.WHILE_KEY:
			par.advance()
			return
		}
		par.advance()
	}
}

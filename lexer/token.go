/*
File    : lox-v1/lexer/token.go
Author  : aQaTL
*/
package lexer

import "fmt"

// TokenType represents the type of a lexical token in the Lox language.
// It is defined as a string to allow for easy comparison and debugging.
// Each token type corresponds to a specific syntactic element in the language,
// such as operators, keywords, literals, or structural symbols.
type TokenType string

// TokenType Constants:
// These constants define all possible token types in the Lox language.
// They are organized into logical groups for clarity and maintainability.
const (
	// Special Types
	// EOF_TYPE marks the end of the input stream
	EOF_TYPE TokenType = "EOF"
	// INVALID_TYPE represents an unrecognized or malformed token
	INVALID_TYPE TokenType = "INVALID"

	// Arithmetic Operators
	PLUS_OP  TokenType = "+" // Addition / string concatenation
	MINUS_OP TokenType = "-" // Subtraction / unary negation
	MUL_OP   TokenType = "*" // Multiplication
	DIV_OP   TokenType = "/" // Division

	// Comparison Operators
	GT_OP     TokenType = ">"  // Greater than
	LT_OP     TokenType = "<"  // Less than
	GE_OP     TokenType = ">=" // Greater than or equal to
	LE_OP     TokenType = "<=" // Less than or equal to
	EQ_OP     TokenType = "==" // Equality comparison
	NE_OP     TokenType = "!=" // Not equal comparison
	ASSIGN_OP TokenType = "="  // Assignment operator
	NOT_OP    TokenType = "!"  // Logical NOT operator

	// Keywords
	// Language keywords for control flow and declarations
	AND_KEY    TokenType = "and"    // Logical and (short-circuiting)
	CLASS_KEY  TokenType = "class"  // Class declaration keyword
	ELSE_KEY   TokenType = "else"   // Conditional else keyword
	FALSE_KEY  TokenType = "false"  // Boolean false literal
	FUN_KEY    TokenType = "fun"    // Function declaration keyword
	FOR_KEY    TokenType = "for"    // For loop keyword
	IF_KEY     TokenType = "if"     // Conditional if keyword
	OR_KEY     TokenType = "or"     // Logical or (short-circuiting)
	PRINT_KEY  TokenType = "print"  // Print statement keyword
	RETURN_KEY TokenType = "return" // Return statement keyword
	SUPER_KEY  TokenType = "super"  // Superclass method access keyword
	THIS_KEY   TokenType = "this"   // Current instance keyword
	TRUE_KEY   TokenType = "true"   // Boolean true literal
	VAR_KEY    TokenType = "var"    // Variable declaration keyword
	WHILE_KEY  TokenType = "while"  // While loop keyword

	// Identifiers and Literals
	IDENTIFIER_ID TokenType = "Identifier"    // User-defined identifier (variable/function name)
	NUMBER_LIT    TokenType = "NumberLiteral" // Number literal (IEEE-754 double, e.g. 42, 3.14)
	STRING_LIT    TokenType = "StringLiteral" // String literal (e.g. "hello")
	NIL_LIT       TokenType = "nil"           // Nil literal

	// Structural Tokens
	LEFT_PAREN  TokenType = "(" // Left parenthesis - function calls, grouping
	RIGHT_PAREN TokenType = ")" // Right parenthesis
	LEFT_BRACE  TokenType = "{" // Left brace - code blocks, scopes
	RIGHT_BRACE TokenType = "}" // Right brace

	// Delimiters
	COMMA_DELIM     TokenType = "," // Comma - separates parameters and arguments
	SEMICOLON_DELIM TokenType = ";" // Semicolon - statement terminator
	DOT_OP          TokenType = "." // Dot operator - property access
)

// KEYWORDS_MAP is a lookup table that maps keyword strings to their token types.
// This map is used during lexical analysis to distinguish between keywords
// (reserved words with special meaning) and regular identifiers (user-defined
// names).
//
// Usage:
//
//	When the lexer encounters an identifier-like token, it checks this map
//	to determine if it's a keyword or a user-defined identifier.
var KEYWORDS_MAP = map[string]TokenType{
	"and":    AND_KEY,    // Logical and
	"class":  CLASS_KEY,  // Class declaration
	"else":   ELSE_KEY,   // Conditional else
	"false":  FALSE_KEY,  // Boolean false
	"fun":    FUN_KEY,    // Function declaration
	"for":    FOR_KEY,    // For loop
	"if":     IF_KEY,     // Conditional if
	"nil":    NIL_LIT,    // Nil value
	"or":     OR_KEY,     // Logical or
	"print":  PRINT_KEY,  // Print statement
	"return": RETURN_KEY, // Return from function
	"super":  SUPER_KEY,  // Superclass access
	"this":   THIS_KEY,   // Current instance
	"true":   TRUE_KEY,   // Boolean true
	"var":    VAR_KEY,    // Variable declaration
	"while":  WHILE_KEY,  // While loop
}

// tokenCounter is the process-wide universal index source. Every token minted
// by either constructor takes the next value, so two occurrences of the same
// lexeme are always distinguishable by Id. The interpreter is single-threaded,
// so a plain counter is sufficient.
var tokenCounter int

// nextTokenId returns a fresh universal index for a new token.
func nextTokenId() int {
	tokenCounter++
	return tokenCounter
}

// Token represents a single lexical token in the Lox source code.
// It contains the token's type, its literal string representation from the
// source, metadata about its position in the source file, and a universal
// index that uniquely identifies this occurrence.
//
// Fields:
//   - Type: The category of the token (e.g., operator, keyword, literal)
//   - Literal: The actual string from the source code that this token represents
//   - Line: The line number where this token appears in the source (1-indexed)
//   - Column: The column number where this token starts in the source (1-indexed)
//   - Id: Process-wide unique index assigned at construction; the resolver
//     keys its depth side table on this value
//
// Example:
//
//	For the source code "var x = 123" at line 5, column 10:
//	Token{Type: VAR_KEY, Literal: "var", Line: 5, Column: 10, Id: 17}
type Token struct {
	Type    TokenType // The type/category of this token
	Literal string    // The actual text from source code
	Line    int       // Line number in source file (1-indexed)
	Column  int       // Column number in source file (1-indexed)
	Id      int       // Universal index, unique per occurrence
}

// NewToken creates a new Token with the specified type and literal value.
// This is a basic constructor that does not set line/column metadata.
// Use NewTokenWithMetadata if position information is needed.
// A fresh universal index is assigned either way.
//
// Parameters:
//   - tokenType: The type of token to create
//   - literal: The string representation of the token from source code
//
// Returns:
//   - Token: A new token with the specified type and literal, but no position info
//
// Example:
//
//	token := NewToken(PLUS_OP, "+")
func NewToken(tokenType TokenType, literal string) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Id:      nextTokenId(),
	}
}

// NewTokenWithMetadata creates a new Token with full metadata including position.
// This constructor should be used during lexical analysis to preserve source
// location information, which is essential for error reporting and debugging.
//
// Parameters:
//   - tokenType: The type of token to create
//   - literal: The string representation of the token from source code
//   - line: The line number where the token appears (1-indexed)
//   - column: The column number where the token starts (1-indexed)
//
// Returns:
//   - Token: A new token with complete type, literal, and position information
//
// Example:
//
//	token := NewTokenWithMetadata(NUMBER_LIT, "42", 10, 5)
func NewTokenWithMetadata(tokenType TokenType, literal string, line int, column int) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Line:    line,
		Column:  column,
		Id:      nextTokenId(),
	}
}

// Print outputs a human-readable representation of the token to standard
// output. The format is "literal:type", which shows both the actual text and
// its classification. This is primarily used for debugging and development.
func (tok *Token) Print() {
	fmt.Printf("%s:%v\n", tok.Literal, tok.Type)
}

// lookupIdent determines the token type for an identifier string.
// It checks if the identifier is a reserved keyword by looking it up in
// KEYWORDS_MAP. If found, it returns the corresponding keyword token type;
// otherwise, it returns IDENTIFIER_ID to indicate a user-defined identifier.
func lookupIdent(ident string) TokenType {
	if keyword, ok := KEYWORDS_MAP[ident]; ok {
		return keyword
	}
	return IDENTIFIER_ID
}

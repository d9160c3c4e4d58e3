/*
File    : lox-v1/parser/parser_precedence.go
Author  : aQaTL
*/
package parser

import "github.com/aQaTL/lox-v1/lexer"

// Operator precedence constants
// Higher number = higher precedence (binds tighter)
//
// Precedence Hierarchy (lowest to highest):
//  1. Assignment (right-to-left associativity)
//  2. Logical or
//  3. Logical and
//  4. Equality operators
//  5. Comparison operators
//  6. Additive operators
//  7. Multiplicative operators
//  8. Unary/prefix operators
//  9. Call and property access (postfix)
//
// Example: In "a + b * c", multiplication has higher precedence than
// addition, so it's parsed as "a + (b * c)" rather than "(a + b) * c".
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Assignment: = (right-to-left associativity)
	// Example: a = b = 5 is parsed as a = (b = 5)
	ASSIGN_PRIORITY = 10

	// Logical or (short-circuiting)
	OR_PRIORITY = 20

	// Logical and (short-circuiting, binds tighter than or)
	AND_PRIORITY = 30

	// Equality operators: == !=
	EQUALITY_PRIORITY = 40

	// Comparison operators: < > <= >=
	RELATIONAL_PRIORITY = 50

	// Additive operators: + -
	PLUS_PRIORITY = 60

	// Multiplicative operators: * /
	MUL_PRIORITY = 70

	// Unary/prefix operators: ! -
	PREFIX_PRIORITY = 80

	// Call and property access (postfix): callee(args), object.name
	CALL_PRIORITY = 90
)

// getPrecedence returns the precedence level for a given token.
// This function is central to the Pratt parsing algorithm, determining
// how tightly operators bind to their operands.
//
// Parameters:
//
//	token - The token to get precedence for
//
// Returns:
//
//	An integer representing the precedence level (higher = tighter binding)
//	Returns -1 for tokens that are not operators
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	// Call and property access - highest precedence
	case lexer.LEFT_PAREN, lexer.DOT_OP:
		return CALL_PRIORITY

	// Multiplicative: * /
	case lexer.MUL_OP, lexer.DIV_OP:
		return MUL_PRIORITY

	// Additive: + -
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	// Comparison: < > <= >=
	case lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP:
		return RELATIONAL_PRIORITY

	// Equality: == !=
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	// Logical and
	case lexer.AND_KEY:
		return AND_PRIORITY

	// Logical or
	case lexer.OR_KEY:
		return OR_PRIORITY

	// Assignment (lowest operator precedence)
	case lexer.ASSIGN_OP:
		return ASSIGN_PRIORITY

	default:
		return -1 // Not an operator token
	}
}

// binaryParseFunction is a function type for parsing binary (and postfix)
// expressions. The already-parsed left operand is passed in; the function
// consumes the operator and whatever follows it, and returns the complete
// expression node.
//
// Example: For "a + b", when parsing "+", the left operand "a" is passed
// in, the function parses "b" and returns the complete "a + b" expression.
type binaryParseFunction func(ExpressionNode) ExpressionNode

// unaryParseFunction is a function type for parsing prefix expressions and
// literals: anything that can begin an expression.
//
// Example: For "-5", the function parses the entire expression and returns
// a unary expression node representing the negation of 5.
type unaryParseFunction func() ExpressionNode

// registerUnaryFuncs is a helper to register a unary parsing function
// for multiple token types.
//
// This allows one parsing function to handle multiple related token types.
// For example, parseUnaryExpression handles both ! and -.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs is a helper to register a binary parsing function
// for multiple token types.
//
// This allows one parsing function to handle multiple related token types.
// For example, parseBinaryExpression handles +, -, *, /, and the equality
// and comparison operators.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = f
	}
}

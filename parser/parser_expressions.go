/*
File    : lox-v1/parser/parser_expressions.go
Author  : aQaTL
*/
package parser

import (
	"strconv"

	"github.com/aQaTL/lox-v1/lexer"
)

// parseStatement parses a single statement.
// This is the main dispatcher that determines what type of statement to
// parse based on the current token.
//
// Returns:
//
//	A StatementNode representing the parsed statement, or nil for empty
//	statements and on parse errors (the error is recorded in par.Errors)
//
// Supported statement types:
//   - Variable declarations (var)
//   - Function and class declarations (fun, class)
//   - Block statements ({ ... })
//   - If statements
//   - While and for loops (for is desugared into while)
//   - Print statements
//   - Return statements
//   - Expression statements (any expression followed by a semicolon)
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {

	// stray semicolons are empty statements
	case lexer.SEMICOLON_DELIM:
		return nil

	case lexer.VAR_KEY:
		return par.parseDeclarativeStatement()

	case lexer.FUN_KEY:
		return par.parseFunctionStatement()

	case lexer.CLASS_KEY:
		return par.parseClassDeclaration()

	case lexer.LEFT_BRACE:
		return par.parseBlockStatement()

	case lexer.IF_KEY:
		return par.parseIfStatement()

	case lexer.WHILE_KEY:
		return par.parseWhileLoop()

	case lexer.FOR_KEY:
		return par.parseForLoop()

	case lexer.PRINT_KEY:
		return par.parsePrintStatement()

	case lexer.RETURN_KEY:
		return par.parseReturnStatement()

	default:
		return par.parseExpressionStatement()
	}
}

// parseExpressionStatement parses a bare expression followed by its
// terminating semicolon. The expression node itself stands as the
// statement (expressions implement StatementNode).
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return expr
}

// parseExpression is the entry point for parsing expressions.
// It delegates to parseInternal with minimum precedence, allowing
// any operator to participate.
func (par *Parser) parseExpression() ExpressionNode {
	return par.parseInternal(MINIMUM_PRIORITY)
}

// parseInternal implements the core Pratt parsing loop.
//
// It first parses a prefix expression (literal, identifier, unary operator,
// grouping, this, super), then repeatedly extends it to the left with any
// following infix or postfix operator whose precedence exceeds the given
// floor. Operator associativity falls out of the floor each binary parse
// function passes back in: left-associative operators pass their own
// precedence, the right-associative assignment passes one less.
//
// Parameters:
//
//	precedence - The precedence floor; operators at or below it stop the loop
//
// Returns:
//
//	The parsed expression, or nil on error (recorded in par.Errors)
func (par *Parser) parseInternal(precedence int) ExpressionNode {
	unaryFunc, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		par.addError("[line %d] PARSER ERROR: expected expression, got '%s'",
			par.CurrToken.Line, describeToken(par.CurrToken))
		return nil
	}
	left := unaryFunc()
	if left == nil {
		return nil
	}

	for precedence < getPrecedence(&par.NextToken) {
		binaryFunc, ok := par.BinaryFuncs[par.NextToken.Type]
		if !ok {
			return left
		}
		par.advance()
		left = binaryFunc(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// parseNumberLiteral parses a number literal from the current token.
// All numbers are IEEE-754 doubles.
func (par *Parser) parseNumberLiteral() ExpressionNode {
	value, err := strconv.ParseFloat(par.CurrToken.Literal, 64)
	if err != nil {
		par.addError("[line %d] PARSER ERROR: malformed number literal '%s'",
			par.CurrToken.Line, par.CurrToken.Literal)
		return nil
	}
	return &NumberLiteralExpressionNode{Token: par.CurrToken, Value: value}
}

// parseStringLiteral parses a string literal from the current token.
// The token already carries the content without the quotes.
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

// parseBooleanLiteral parses a true or false literal from the current token.
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &BooleanLiteralExpressionNode{
		Token: par.CurrToken,
		Value: par.CurrToken.Type == lexer.TRUE_KEY,
	}
}

// parseNilLiteral parses the nil literal from the current token.
func (par *Parser) parseNilLiteral() ExpressionNode {
	return &NilLiteralExpressionNode{Token: par.CurrToken}
}

// parseIdentifierExpression parses a variable reference from the current
// token. Whether it is local or global is decided later by the resolver.
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	return &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}
}

// parseUnaryExpression parses a prefix operation: ! or - followed by an
// operand at prefix precedence (so "!!x" and "--x" nest as expected).
func (par *Parser) parseUnaryExpression() ExpressionNode {
	operation := par.CurrToken
	par.advance()
	right := par.parseInternal(PREFIX_PRIORITY)
	if right == nil {
		return nil
	}
	return &UnaryExpressionNode{Operation: operation, Right: right}
}

// parseBinaryExpression parses an infix arithmetic, equality, or comparison
// operation. The left operand has already been parsed; the current token is
// the operator. Passing the operator's own precedence as the floor for the
// right operand makes these operators left-associative.
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	operation := par.CurrToken
	precedence := getPrecedence(&operation)
	par.advance()
	right := par.parseInternal(precedence)
	if right == nil {
		return nil
	}
	return &BinaryExpressionNode{Left: left, Operation: operation, Right: right}
}

// parseLogicalExpression parses a short-circuiting and/or operation.
// Structurally identical to parseBinaryExpression, but produces a distinct
// node so the evaluator can skip the right operand.
func (par *Parser) parseLogicalExpression(left ExpressionNode) ExpressionNode {
	operation := par.CurrToken
	precedence := getPrecedence(&operation)
	par.advance()
	right := par.parseInternal(precedence)
	if right == nil {
		return nil
	}
	return &LogicalExpressionNode{Left: left, Operation: operation, Right: right}
}

// parseParenthesizedExpression parses a grouped expression: ( expr ).
func (par *Parser) parseParenthesizedExpression() ExpressionNode {
	par.advance()
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return &ParenthesizedExpressionNode{Expr: expr}
}

// parseAssignmentExpression parses the right-hand side of an assignment and
// validates the already-parsed left-hand side. An identifier becomes an
// assignment to that name; a property read becomes a field write; any other
// shape is an invalid assignment target.
//
// Assignment is right-associative: "a = b = 5" parses as "a = (b = 5)",
// achieved by parsing the value with a floor one below the assignment
// precedence.
func (par *Parser) parseAssignmentExpression(left ExpressionNode) ExpressionNode {
	equals := par.CurrToken
	par.advance()
	value := par.parseInternal(ASSIGN_PRIORITY - 1)
	if value == nil {
		return nil
	}

	switch target := left.(type) {
	case *IdentifierExpressionNode:
		return &AssignmentExpressionNode{Name: target.Token, Value: value}
	case *GetExpressionNode:
		return &SetExpressionNode{Object: target.Object, Name: target.Name, Value: value}
	default:
		par.addError("[line %d] PARSER ERROR: invalid assignment target", equals.Line)
		return nil
	}
}

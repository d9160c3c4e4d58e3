/*
File    : lox-v1/parser/parser_loops.go
Author  : aQaTL
*/
package parser

import (
	"github.com/aQaTL/lox-v1/lexer"
)

// parseWhileLoop parses a while loop statement.
//
// Syntax:
//
//	while (condition) statement
//
// Returns:
//
//	A WhileLoopStatementNode, or nil on error
//
// Example:
//
//	while (i < 10) i = i + 1;
func (par *Parser) parseWhileLoop() StatementNode {
	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	par.advance()
	body := par.parseStatement()
	if body == nil {
		return nil
	}

	return &WhileLoopStatementNode{Condition: condition, Body: body}
}

// parseForLoop parses a C-style for loop and desugars it into blocks and a
// while loop, so no for node exists in the AST:
//
//	for (init; cond; incr) body
//
// becomes
//
//	{ init; while (cond) { body; incr; } }
//
// All three clauses are optional. A missing condition is replaced with a
// synthesized true literal token (fresh universal index, line 1). A missing
// initializer omits the outer block. A missing increment leaves the body
// unwrapped.
//
// Returns:
//
//	The desugared statement, or nil on error
//
// Example:
//
//	for (var i = 0; i < 3; i = i + 1) print i;
func (par *Parser) parseForLoop() StatementNode {
	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	// Initializer clause: empty, a var declaration, or an expression
	// statement. Each form consumes through its semicolon.
	var initializer StatementNode
	switch par.NextToken.Type {
	case lexer.SEMICOLON_DELIM:
		par.advance() // onto ';'
	case lexer.VAR_KEY:
		par.advance()
		initializer = par.parseDeclarativeStatement()
		if initializer == nil {
			return nil
		}
	default:
		par.advance()
		initializer = par.parseExpressionStatement()
		if initializer == nil {
			return nil
		}
	}

	// Condition clause: empty means loop forever (synthesized true).
	var condition ExpressionNode
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance() // onto ';'
	} else {
		par.advance()
		condition = par.parseExpression()
		if condition == nil {
			return nil
		}
		if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
			return nil
		}
	}
	if condition == nil {
		trueToken := lexer.NewTokenWithMetadata(lexer.TRUE_KEY, "true", 1, 1)
		condition = &BooleanLiteralExpressionNode{Token: trueToken, Value: true}
	}

	// Increment clause: empty or an expression.
	var increment ExpressionNode
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		par.advance()
		increment = par.parseExpression()
		if increment == nil {
			return nil
		}
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	par.advance()
	body := par.parseStatement()
	if body == nil {
		return nil
	}

	// Desugar: append the increment after the body inside a block,
	// wrap in while, and prepend the initializer inside an outer block.
	if increment != nil {
		body = &BlockStatementNode{Statements: []StatementNode{body, increment}}
	}

	var loop StatementNode = &WhileLoopStatementNode{Condition: condition, Body: body}

	if initializer != nil {
		loop = &BlockStatementNode{Statements: []StatementNode{initializer, loop}}
	}

	return loop
}

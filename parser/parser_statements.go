/*
File    : lox-v1/parser/parser_statements.go
Author  : aQaTL
*/
package parser

import (
	"github.com/aQaTL/lox-v1/lexer"
)

// parseDeclarativeStatement parses a variable declaration statement.
//
// Syntax:
//
//	var identifier = expression;
//	var identifier;
//
// Returns:
//
//	A DeclarativeStatementNode, or nil on error
//
// The initializer is optional; a declaration without one binds the name to
// nil at runtime. The statement consumes through its terminating semicolon.
//
// Examples:
//
//	var x = 10;
//	var name;
func (par *Parser) parseDeclarativeStatement() StatementNode {
	varToken := par.CurrToken
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	identifier := par.CurrToken

	var expr ExpressionNode
	if par.NextToken.Type == lexer.ASSIGN_OP {
		par.advance() // onto '='
		par.advance() // onto the initializer
		expr = par.parseExpression()
		if expr == nil {
			return nil
		}
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}

	return &DeclarativeStatementNode{
		VarToken:   varToken,
		Identifier: identifier,
		Expr:       expr,
	}
}

// parseBlockStatement parses a block statement (code block).
// A block is a sequence of statements enclosed in curly braces; at runtime
// it opens a fresh lexical scope.
//
// Syntax:
//
//	{ statement1 statement2 ... }
//
// Returns:
//
//	A BlockStatementNode containing all statements in the block
//
// Examples:
//
//	{ var x = 5; print x; }
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	block := &BlockStatementNode{}
	block.Statements = make([]StatementNode, 0)
	par.advance()
	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}
	if par.CurrToken.Type != lexer.RIGHT_BRACE {
		par.addError("[line %d] PARSER ERROR: expected '}' after block, got '%s'",
			par.CurrToken.Line, describeToken(par.CurrToken))
	}
	return block
}

// parsePrintStatement parses a print statement.
//
// Syntax:
//
//	print expression;
//
// Returns:
//
//	A PrintStatementNode, or nil on error
func (par *Parser) parsePrintStatement() StatementNode {
	printToken := par.CurrToken
	par.advance()
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &PrintStatementNode{PrintToken: printToken, Expr: expr}
}

// parseReturnStatement parses a return statement.
//
// Syntax:
//
//	return expression;
//	return;
//
// A bare "return;" is rewritten into returning a synthesized nil literal
// whose token shares the keyword's line, so the evaluator only ever sees
// returns with a value expression.
//
// Returns:
//
//	A ReturnStatementNode, or nil on error
func (par *Parser) parseReturnStatement() StatementNode {
	keyword := par.CurrToken

	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance() // onto ';'
		nilToken := lexer.NewTokenWithMetadata(lexer.NIL_LIT, "nil", keyword.Line, keyword.Column)
		return &ReturnStatementNode{
			Keyword: keyword,
			Value:   &NilLiteralExpressionNode{Token: nilToken, Synthesized: true},
		}
	}

	par.advance()
	value := par.parseExpression()
	if value == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &ReturnStatementNode{Keyword: keyword, Value: value}
}

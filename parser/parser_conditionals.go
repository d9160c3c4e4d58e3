/*
File    : lox-v1/parser/parser_conditionals.go
Author  : aQaTL
*/
package parser

import (
	"github.com/aQaTL/lox-v1/lexer"
)

// parseIfStatement parses a conditional statement with an optional else.
// Branches are arbitrary statements; a block is just the common case.
// The else binds to the nearest if.
//
// Syntax:
//
//	if (condition) statement
//	if (condition) statement else statement
//
// Returns:
//
//	An IfStatementNode, or nil on error
//
// Examples:
//
//	if (a < b) print a;
//	if (done) { report(); } else { retry(); }
func (par *Parser) parseIfStatement() StatementNode {
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
	thenBranch := par.parseStatement()
	if thenBranch == nil {
		return nil
	}

	var elseBranch StatementNode
	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance() // onto 'else'
		par.advance() // onto the else statement
		elseBranch = par.parseStatement()
		if elseBranch == nil {
			return nil
		}
	}

	return &IfStatementNode{
		Condition:  condition,
		ThenBranch: thenBranch,
		ElseBranch: elseBranch,
	}
}

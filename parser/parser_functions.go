/*
File    : lox-v1/parser/parser_functions.go
Author  : aQaTL
*/
package parser

import (
	"github.com/aQaTL/lox-v1/lexer"
)

// maxArity bounds the number of parameters a function may declare and the
// number of arguments a call may pass. Exactly maxArity is allowed.
const maxArity = 255

// parseFunctionStatement parses a function declaration.
//
// Syntax:
//
//	fun name(param1, param2) { body }
//
// Returns:
//
//	A FunctionStatementNode, or nil on error
//
// Example:
//
//	fun add(a, b) { return a + b; }
func (par *Parser) parseFunctionStatement() StatementNode {
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	fn := par.parseFunctionRest(par.CurrToken, false)
	if fn == nil {
		return nil
	}
	return fn
}

// parseFunctionRest parses the parameter list and body shared by function
// declarations and class methods. The name token has already been consumed
// and is the current token; methods differ only in lacking the fun keyword,
// which the caller has already handled.
//
// Parameters:
//
//	name     - The function or method name token
//	isMethod - Whether this production came from a class body
//
// Returns:
//
//	A FunctionStatementNode, or nil on error
func (par *Parser) parseFunctionRest(name lexer.Token, isMethod bool) *FunctionStatementNode {
	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	params := make([]lexer.Token, 0)
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		for {
			if !par.expectAdvance(lexer.IDENTIFIER_ID) {
				return nil
			}
			params = append(params, par.CurrToken)
			if par.NextToken.Type != lexer.COMMA_DELIM {
				break
			}
			par.advance() // onto ','
		}
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if len(params) > maxArity {
		par.addError("[line %d] PARSER ERROR: can't have more than %d parameters",
			name.Line, maxArity)
		return nil
	}

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	body := par.parseBlockStatement()

	return &FunctionStatementNode{
		FuncName:   name,
		FuncParams: params,
		FuncBody:   body.Statements,
		IsMethod:   isMethod,
	}
}

// parseCallExpression parses a call's argument list. The callee has already
// been parsed and the current token is the opening parenthesis. The node
// records the closing parenthesis token so runtime errors can point at the
// call site.
//
// Syntax:
//
//	callee(arg1, arg2, ...)
//
// Returns:
//
//	A CallExpressionNode, or nil on error
func (par *Parser) parseCallExpression(callee ExpressionNode) ExpressionNode {
	firstLine := par.CurrToken.Line

	args := make([]ExpressionNode, 0)
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		for {
			par.advance()
			arg := par.parseInternal(MINIMUM_PRIORITY)
			if arg == nil {
				return nil
			}
			args = append(args, arg)
			if par.NextToken.Type != lexer.COMMA_DELIM {
				break
			}
			par.advance() // onto ','
		}
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if len(args) > maxArity {
		par.addError("[line %d] PARSER ERROR: can't have more than %d arguments",
			firstLine, maxArity)
		return nil
	}

	return &CallExpressionNode{
		Callee:    callee,
		Paren:     par.CurrToken,
		Arguments: args,
	}
}

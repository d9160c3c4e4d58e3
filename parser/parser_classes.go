/*
File    : lox-v1/parser/parser_classes.go
Author  : aQaTL
*/
package parser

import (
	"github.com/aQaTL/lox-v1/lexer"
)

// parseClassDeclaration parses a class declaration with an optional single
// superclass and zero or more methods. Methods use the function grammar
// without the fun keyword.
//
// Syntax:
//
//	class Name { method1() { ... } method2(a) { ... } }
//	class Name < Super { ... }
//
// Returns:
//
//	A ClassDeclarationNode, or nil on error
//
// Example:
//
//	class Cake { init(f) { this.f = f; } taste() { return this.f; } }
func (par *Parser) parseClassDeclaration() StatementNode {
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	className := par.CurrToken

	var superName *lexer.Token
	if par.NextToken.Type == lexer.LT_OP {
		par.advance() // onto '<'
		if !par.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		super := par.CurrToken
		superName = &super
	}

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}

	methods := make([]*FunctionStatementNode, 0)
	for par.NextToken.Type != lexer.RIGHT_BRACE && par.NextToken.Type != lexer.EOF_TYPE {
		if !par.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		method := par.parseFunctionRest(par.CurrToken, true)
		if method == nil {
			return nil
		}
		methods = append(methods, method)
	}
	if !par.expectAdvance(lexer.RIGHT_BRACE) {
		return nil
	}

	return &ClassDeclarationNode{
		ClassName: className,
		SuperName: superName,
		Methods:   methods,
	}
}

// parseMemberAccess parses a property access. The object expression has
// already been parsed and the current token is the dot. A property access
// on the left of '=' is rewritten into a field write by
// parseAssignmentExpression.
//
// Syntax:
//
//	object.name
//
// Returns:
//
//	A GetExpressionNode, or nil on error
func (par *Parser) parseMemberAccess(object ExpressionNode) ExpressionNode {
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	return &GetExpressionNode{Object: object, Name: par.CurrToken}
}

// parseThisExpression parses the this keyword. The resolver treats it like
// a variable declared by the enclosing class body.
func (par *Parser) parseThisExpression() ExpressionNode {
	return &ThisExpressionNode{Keyword: par.CurrToken}
}

// parseSuperExpression parses a superclass method access: the super
// keyword must be followed by a dot and a method name.
//
// Syntax:
//
//	super.method
//
// Returns:
//
//	A SuperExpressionNode, or nil on error
func (par *Parser) parseSuperExpression() ExpressionNode {
	keyword := par.CurrToken
	if !par.expectAdvance(lexer.DOT_OP) {
		return nil
	}
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	return &SuperExpressionNode{Keyword: keyword, Method: par.CurrToken}
}

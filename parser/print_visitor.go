/*
File    : lox-v1/parser/print_visitor.go
Author  : aQaTL
*/
package parser

import (
	"bytes"
)

// PrintVisitor renders an AST in a compact parenthesized form, one
// parenthesized group per node with the operator or node kind first:
//
//	print 1 + 2 * 3;   =>   (print (+ 1 (* 2 3)))
//
// The output is a stable, structure-revealing encoding of the tree: two
// trees render identically exactly when they are structurally identical,
// which the round-trip tests rely on. It is not meant to be re-parsed as
// source; Node.Literal() serves that purpose.
type PrintVisitor struct {
	Buf bytes.Buffer
}

// PrintAST renders a parsed program through a fresh PrintVisitor.
func PrintAST(root *RootNode) string {
	visitor := &PrintVisitor{}
	root.Accept(visitor)
	return visitor.String()
}

// String returns the accumulated rendering.
func (p *PrintVisitor) String() string {
	return p.Buf.String()
}

// parenthesize writes "(name child child ...)" recursing through Accept.
func (p *PrintVisitor) parenthesize(name string, nodes ...Node) {
	p.Buf.WriteString("(")
	p.Buf.WriteString(name)
	for _, node := range nodes {
		p.Buf.WriteString(" ")
		node.Accept(p)
	}
	p.Buf.WriteString(")")
}

// VisitRootNode renders every top-level statement separated by spaces.
func (p *PrintVisitor) VisitRootNode(node RootNode) {
	for i, stmt := range node.Statements {
		if i > 0 {
			p.Buf.WriteString(" ")
		}
		stmt.Accept(p)
	}
}

func (p *PrintVisitor) VisitNumberLiteralExpressionNode(node NumberLiteralExpressionNode) {
	p.Buf.WriteString(node.Token.Literal)
}

func (p *PrintVisitor) VisitStringLiteralExpressionNode(node StringLiteralExpressionNode) {
	p.Buf.WriteString("\"")
	p.Buf.WriteString(node.Value)
	p.Buf.WriteString("\"")
}

func (p *PrintVisitor) VisitBooleanLiteralExpressionNode(node BooleanLiteralExpressionNode) {
	if node.Value {
		p.Buf.WriteString("true")
	} else {
		p.Buf.WriteString("false")
	}
}

func (p *PrintVisitor) VisitNilLiteralExpressionNode(node NilLiteralExpressionNode) {
	p.Buf.WriteString("nil")
}

func (p *PrintVisitor) VisitIdentifierExpressionNode(node IdentifierExpressionNode) {
	p.Buf.WriteString(node.Name)
}

func (p *PrintVisitor) VisitAssignmentExpressionNode(node AssignmentExpressionNode) {
	p.parenthesize("assign "+node.Name.Literal, node.Value)
}

func (p *PrintVisitor) VisitUnaryExpressionNode(node UnaryExpressionNode) {
	p.parenthesize(node.Operation.Literal, node.Right)
}

func (p *PrintVisitor) VisitBinaryExpressionNode(node BinaryExpressionNode) {
	p.parenthesize(node.Operation.Literal, node.Left, node.Right)
}

func (p *PrintVisitor) VisitLogicalExpressionNode(node LogicalExpressionNode) {
	p.parenthesize(node.Operation.Literal, node.Left, node.Right)
}

func (p *PrintVisitor) VisitParenthesizedExpressionNode(node ParenthesizedExpressionNode) {
	p.parenthesize("group", node.Expr)
}

func (p *PrintVisitor) VisitCallExpressionNode(node CallExpressionNode) {
	nodes := make([]Node, 0, len(node.Arguments)+1)
	nodes = append(nodes, node.Callee)
	for _, arg := range node.Arguments {
		nodes = append(nodes, arg)
	}
	p.parenthesize("call", nodes...)
}

func (p *PrintVisitor) VisitGetExpressionNode(node GetExpressionNode) {
	p.parenthesize("get "+node.Name.Literal, node.Object)
}

func (p *PrintVisitor) VisitSetExpressionNode(node SetExpressionNode) {
	p.parenthesize("set "+node.Name.Literal, node.Object, node.Value)
}

func (p *PrintVisitor) VisitThisExpressionNode(node ThisExpressionNode) {
	p.Buf.WriteString("this")
}

func (p *PrintVisitor) VisitSuperExpressionNode(node SuperExpressionNode) {
	p.Buf.WriteString("(super ")
	p.Buf.WriteString(node.Method.Literal)
	p.Buf.WriteString(")")
}

func (p *PrintVisitor) VisitDeclarativeStatementNode(node DeclarativeStatementNode) {
	if node.Expr == nil {
		p.Buf.WriteString("(var ")
		p.Buf.WriteString(node.Identifier.Literal)
		p.Buf.WriteString(")")
		return
	}
	p.parenthesize("var "+node.Identifier.Literal, node.Expr)
}

func (p *PrintVisitor) VisitPrintStatementNode(node PrintStatementNode) {
	p.parenthesize("print", node.Expr)
}

func (p *PrintVisitor) VisitBlockStatementNode(node BlockStatementNode) {
	nodes := make([]Node, len(node.Statements))
	for i, stmt := range node.Statements {
		nodes[i] = stmt
	}
	p.parenthesize("block", nodes...)
}

func (p *PrintVisitor) VisitIfStatementNode(node IfStatementNode) {
	if node.ElseBranch == nil {
		p.parenthesize("if", node.Condition, node.ThenBranch)
		return
	}
	p.parenthesize("if", node.Condition, node.ThenBranch, node.ElseBranch)
}

func (p *PrintVisitor) VisitWhileLoopStatementNode(node WhileLoopStatementNode) {
	p.parenthesize("while", node.Condition, node.Body)
}

func (p *PrintVisitor) VisitFunctionStatementNode(node FunctionStatementNode) {
	p.Buf.WriteString("(fun ")
	p.Buf.WriteString(node.FuncName.Literal)
	p.Buf.WriteString(" (")
	for i, param := range node.FuncParams {
		if i > 0 {
			p.Buf.WriteString(" ")
		}
		p.Buf.WriteString(param.Literal)
	}
	p.Buf.WriteString(")")
	for _, stmt := range node.FuncBody {
		p.Buf.WriteString(" ")
		stmt.Accept(p)
	}
	p.Buf.WriteString(")")
}

func (p *PrintVisitor) VisitReturnStatementNode(node ReturnStatementNode) {
	p.parenthesize("return", node.Value)
}

func (p *PrintVisitor) VisitClassDeclarationNode(node ClassDeclarationNode) {
	p.Buf.WriteString("(class ")
	p.Buf.WriteString(node.ClassName.Literal)
	if node.SuperName != nil {
		p.Buf.WriteString(" < ")
		p.Buf.WriteString(node.SuperName.Literal)
	}
	for _, method := range node.Methods {
		p.Buf.WriteString(" ")
		method.Accept(p)
	}
	p.Buf.WriteString(")")
}

/*
File    : lox-v1/main/print_visitor.go
Author  : aQaTL
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/aQaTL/lox-v1/parser"
)

// INDENT_SIZE is the number of spaces each tree level indents by.
const INDENT_SIZE = 4

// PrintingVisitor renders an AST as an indented tree, one node per line,
// for the --ast mode. Children are indented one level below their parent.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// indent writes the current indentation prefix.
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// line writes one indented line describing a node.
func (p *PrintingVisitor) line(format string, a ...interface{}) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, a...))
	p.Buf.WriteString("\n")
}

// nested visits children one indent level deeper.
func (p *PrintingVisitor) nested(nodes ...parser.Node) {
	p.Indent += INDENT_SIZE
	for _, node := range nodes {
		node.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// String returns the accumulated dump.
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}

// VisitRootNode prints the program node and all top-level statements.
func (p *PrintingVisitor) VisitRootNode(node parser.RootNode) {
	p.line("Program (%d statements)", len(node.Statements))
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

func (p *PrintingVisitor) VisitNumberLiteralExpressionNode(node parser.NumberLiteralExpressionNode) {
	p.line("Number [%s]", node.Token.Literal)
}

func (p *PrintingVisitor) VisitStringLiteralExpressionNode(node parser.StringLiteralExpressionNode) {
	p.line("String [%q]", node.Value)
}

func (p *PrintingVisitor) VisitBooleanLiteralExpressionNode(node parser.BooleanLiteralExpressionNode) {
	p.line("Boolean [%t]", node.Value)
}

func (p *PrintingVisitor) VisitNilLiteralExpressionNode(node parser.NilLiteralExpressionNode) {
	p.line("Nil")
}

func (p *PrintingVisitor) VisitIdentifierExpressionNode(node parser.IdentifierExpressionNode) {
	p.line("Identifier [%s]", node.Name)
}

func (p *PrintingVisitor) VisitAssignmentExpressionNode(node parser.AssignmentExpressionNode) {
	p.line("Assign [%s]", node.Name.Literal)
	p.nested(node.Value)
}

func (p *PrintingVisitor) VisitUnaryExpressionNode(node parser.UnaryExpressionNode) {
	p.line("Unary [%s]", node.Operation.Literal)
	p.nested(node.Right)
}

func (p *PrintingVisitor) VisitBinaryExpressionNode(node parser.BinaryExpressionNode) {
	p.line("Binary [%s]", node.Operation.Literal)
	p.nested(node.Left, node.Right)
}

func (p *PrintingVisitor) VisitLogicalExpressionNode(node parser.LogicalExpressionNode) {
	p.line("Logical [%s]", node.Operation.Literal)
	p.nested(node.Left, node.Right)
}

func (p *PrintingVisitor) VisitParenthesizedExpressionNode(node parser.ParenthesizedExpressionNode) {
	p.line("Grouping")
	p.nested(node.Expr)
}

func (p *PrintingVisitor) VisitCallExpressionNode(node parser.CallExpressionNode) {
	p.line("Call (%d args)", len(node.Arguments))
	nodes := make([]parser.Node, 0, len(node.Arguments)+1)
	nodes = append(nodes, node.Callee)
	for _, arg := range node.Arguments {
		nodes = append(nodes, arg)
	}
	p.nested(nodes...)
}

func (p *PrintingVisitor) VisitGetExpressionNode(node parser.GetExpressionNode) {
	p.line("Get [%s]", node.Name.Literal)
	p.nested(node.Object)
}

func (p *PrintingVisitor) VisitSetExpressionNode(node parser.SetExpressionNode) {
	p.line("Set [%s]", node.Name.Literal)
	p.nested(node.Object, node.Value)
}

func (p *PrintingVisitor) VisitThisExpressionNode(node parser.ThisExpressionNode) {
	p.line("This")
}

func (p *PrintingVisitor) VisitSuperExpressionNode(node parser.SuperExpressionNode) {
	p.line("Super [%s]", node.Method.Literal)
}

func (p *PrintingVisitor) VisitDeclarativeStatementNode(node parser.DeclarativeStatementNode) {
	if node.Expr == nil {
		p.line("VarDecl [%s] (no initializer)", node.Identifier.Literal)
		return
	}
	p.line("VarDecl [%s]", node.Identifier.Literal)
	p.nested(node.Expr)
}

func (p *PrintingVisitor) VisitPrintStatementNode(node parser.PrintStatementNode) {
	p.line("Print")
	p.nested(node.Expr)
}

func (p *PrintingVisitor) VisitBlockStatementNode(node parser.BlockStatementNode) {
	p.line("Block (%d statements)", len(node.Statements))
	nodes := make([]parser.Node, len(node.Statements))
	for i, stmt := range node.Statements {
		nodes[i] = stmt
	}
	p.nested(nodes...)
}

func (p *PrintingVisitor) VisitIfStatementNode(node parser.IfStatementNode) {
	if node.ElseBranch == nil {
		p.line("If")
		p.nested(node.Condition, node.ThenBranch)
		return
	}
	p.line("If/Else")
	p.nested(node.Condition, node.ThenBranch, node.ElseBranch)
}

func (p *PrintingVisitor) VisitWhileLoopStatementNode(node parser.WhileLoopStatementNode) {
	p.line("While")
	p.nested(node.Condition, node.Body)
}

func (p *PrintingVisitor) VisitFunctionStatementNode(node parser.FunctionStatementNode) {
	params := ""
	for i, param := range node.FuncParams {
		if i > 0 {
			params += ", "
		}
		params += param.Literal
	}
	kind := "Function"
	if node.IsMethod {
		kind = "Method"
	}
	p.line("%s [%s(%s)]", kind, node.FuncName.Literal, params)
	nodes := make([]parser.Node, len(node.FuncBody))
	for i, stmt := range node.FuncBody {
		nodes[i] = stmt
	}
	p.nested(nodes...)
}

func (p *PrintingVisitor) VisitReturnStatementNode(node parser.ReturnStatementNode) {
	p.line("Return")
	p.nested(node.Value)
}

func (p *PrintingVisitor) VisitClassDeclarationNode(node parser.ClassDeclarationNode) {
	if node.SuperName != nil {
		p.line("Class [%s < %s]", node.ClassName.Literal, node.SuperName.Literal)
	} else {
		p.line("Class [%s]", node.ClassName.Literal)
	}
	nodes := make([]parser.Node, len(node.Methods))
	for i, method := range node.Methods {
		nodes[i] = method
	}
	p.nested(nodes...)
}

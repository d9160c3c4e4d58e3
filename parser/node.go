/*
File    : lox-v1/parser/node.go
Author  : aQaTL
*/
package parser

import (
	"strings"

	"github.com/aQaTL/lox-v1/lexer"
)

// NodeVisitor: implements the Visitor design pattern for traversing the
// Abstract Syntax Tree (AST). Each Visit method processes a specific node
// type, enabling operations like printing, dumping, or transformation.
// Evaluation and resolution walk the tree with type switches instead, so
// they can thread results and environments; the visitor stays for the
// read-only passes.
type NodeVisitor interface {
	VisitRootNode(node RootNode) // Entry point for visiting the entire program

	// Literal value visitors - handle primitive data types
	VisitNumberLiteralExpressionNode(node NumberLiteralExpressionNode)   // Number literals: 42, 3.14
	VisitStringLiteralExpressionNode(node StringLiteralExpressionNode)   // String literals: "hello"
	VisitBooleanLiteralExpressionNode(node BooleanLiteralExpressionNode) // Boolean literals: true, false
	VisitNilLiteralExpressionNode(node NilLiteralExpressionNode)         // Nil literal

	// Expression visitors - handle operations and computations
	VisitIdentifierExpressionNode(node IdentifierExpressionNode)       // Variable references: x, myVar
	VisitAssignmentExpressionNode(node AssignmentExpressionNode)       // Assignments: x = 10
	VisitUnaryExpressionNode(node UnaryExpressionNode)                 // Unary operations: -, !
	VisitBinaryExpressionNode(node BinaryExpressionNode)               // Binary operations: + - * / == != < <= > >=
	VisitLogicalExpressionNode(node LogicalExpressionNode)             // Short-circuit operations: and, or
	VisitParenthesizedExpressionNode(node ParenthesizedExpressionNode) // Parenthesized expressions: (expr)
	VisitCallExpressionNode(node CallExpressionNode)                   // Calls: callee(arg1, arg2)
	VisitGetExpressionNode(node GetExpressionNode)                     // Property reads: obj.name
	VisitSetExpressionNode(node SetExpressionNode)                     // Property writes: obj.name = value
	VisitThisExpressionNode(node ThisExpressionNode)                   // this
	VisitSuperExpressionNode(node SuperExpressionNode)                 // super.method

	// Statement visitors
	VisitDeclarativeStatementNode(node DeclarativeStatementNode) // Variable declarations: var x = 10;
	VisitPrintStatementNode(node PrintStatementNode)             // Print statements: print expr;
	VisitBlockStatementNode(node BlockStatementNode)             // Code blocks: { stmt1 stmt2 }
	VisitIfStatementNode(node IfStatementNode)                   // Conditionals: if (cond) ... else ...
	VisitWhileLoopStatementNode(node WhileLoopStatementNode)     // While loops: while (cond) body
	VisitFunctionStatementNode(node FunctionStatementNode)       // Function declarations: fun name(params) { body }
	VisitReturnStatementNode(node ReturnStatementNode)           // Return statements: return expr;
	VisitClassDeclarationNode(node ClassDeclarationNode)         // Class declarations: class Name < Super { methods }
}

// Node: base interface for all nodes of the AST
// Literal(): returns the source-text representation of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
// Node: every statement node is a node
// Statement(): marker distinguishing statements from bare nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Node: every expression node is a node
// StatementNode: every expression can stand as an expression statement
// Expression(): marker distinguishing expressions from other statements
type ExpressionNode interface {
	Node
	StatementNode
	Expression()
}

// stmtSource renders a statement as source text, appending the terminating
// semicolon for bare expression statements (their Literal carries none).
func stmtSource(stmt StatementNode) string {
	if _, isExpr := stmt.(ExpressionNode); isExpr {
		return stmt.Literal() + ";"
	}
	return stmt.Literal()
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of top-level statements in the program
type RootNode struct {
	Statements []StatementNode
}

// RootNode.Literal(): source representation of the whole program
func (root *RootNode) Literal() string {
	var sb strings.Builder
	for i, stmt := range root.Statements {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(stmtSource(stmt))
	}
	return sb.String()
}

// RootNode.Accept(): accepts a visitor (eg PrintVisitor)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(*root)
}

// NumberLiteralExpressionNode: represents a number literal.
// All numbers are IEEE-754 doubles.
// Example: 42, 3.14, 0.5
type NumberLiteralExpressionNode struct {
	Token lexer.Token // The number token with its source text
	Value float64     // The parsed double value
}

func (n *NumberLiteralExpressionNode) Literal() string            { return n.Token.Literal }
func (n *NumberLiteralExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitNumberLiteralExpressionNode(*n) }
func (n *NumberLiteralExpressionNode) Statement()                 {}
func (n *NumberLiteralExpressionNode) Expression()                {}

// StringLiteralExpressionNode: represents a string literal.
// Example: "hello"
type StringLiteralExpressionNode struct {
	Token lexer.Token // The string token; Literal holds the content without quotes
	Value string      // The string content
}

func (n *StringLiteralExpressionNode) Literal() string            { return "\"" + n.Value + "\"" }
func (n *StringLiteralExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitStringLiteralExpressionNode(*n) }
func (n *StringLiteralExpressionNode) Statement()                 {}
func (n *StringLiteralExpressionNode) Expression()                {}

// BooleanLiteralExpressionNode: represents a boolean literal.
// Example: true, false
type BooleanLiteralExpressionNode struct {
	Token lexer.Token // The true/false keyword token
	Value bool        // The boolean value
}

func (n *BooleanLiteralExpressionNode) Literal() string            { return n.Token.Literal }
func (n *BooleanLiteralExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitBooleanLiteralExpressionNode(*n) }
func (n *BooleanLiteralExpressionNode) Statement()                 {}
func (n *BooleanLiteralExpressionNode) Expression()                {}

// NilLiteralExpressionNode: represents the nil literal.
// Synthesized marks nil literals the parser manufactured (the value of a
// bare "return;"); the resolver uses it to tell a bare return apart from
// an explicit "return nil;".
type NilLiteralExpressionNode struct {
	Token       lexer.Token // The nil keyword token
	Synthesized bool        // Manufactured by the parser, not written in source
}

func (n *NilLiteralExpressionNode) Literal() string            { return "nil" }
func (n *NilLiteralExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitNilLiteralExpressionNode(*n) }
func (n *NilLiteralExpressionNode) Statement()                 {}
func (n *NilLiteralExpressionNode) Expression()                {}

// IdentifierExpressionNode: represents a variable reference.
// The token's universal index keys the resolver's depth table.
// Example: x, counter
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The identifier text
}

func (n *IdentifierExpressionNode) Literal() string            { return n.Name }
func (n *IdentifierExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitIdentifierExpressionNode(*n) }
func (n *IdentifierExpressionNode) Statement()                 {}
func (n *IdentifierExpressionNode) Expression()                {}

// AssignmentExpressionNode: represents assignment to a named variable.
// Produced by rewriting an identifier on the left of '='.
// Example: x = 10
type AssignmentExpressionNode struct {
	Name  lexer.Token    // The identifier token being assigned
	Value ExpressionNode // The right-hand side expression
}

func (n *AssignmentExpressionNode) Literal() string            { return n.Name.Literal + " = " + n.Value.Literal() }
func (n *AssignmentExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitAssignmentExpressionNode(*n) }
func (n *AssignmentExpressionNode) Statement()                 {}
func (n *AssignmentExpressionNode) Expression()                {}

// UnaryExpressionNode: represents a prefix operation.
// Example: -x, !done
type UnaryExpressionNode struct {
	Operation lexer.Token    // The operator token (! or -)
	Right     ExpressionNode // The operand
}

func (n *UnaryExpressionNode) Literal() string            { return n.Operation.Literal + n.Right.Literal() }
func (n *UnaryExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitUnaryExpressionNode(*n) }
func (n *UnaryExpressionNode) Statement()                 {}
func (n *UnaryExpressionNode) Expression()                {}

// BinaryExpressionNode: represents an infix arithmetic, equality, or
// comparison operation.
// Example: a + b, a <= b, a != b
type BinaryExpressionNode struct {
	Left      ExpressionNode // Left operand
	Operation lexer.Token    // The operator token
	Right     ExpressionNode // Right operand
}

func (n *BinaryExpressionNode) Literal() string {
	return n.Left.Literal() + " " + n.Operation.Literal + " " + n.Right.Literal()
}
func (n *BinaryExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitBinaryExpressionNode(*n) }
func (n *BinaryExpressionNode) Statement()                 {}
func (n *BinaryExpressionNode) Expression()                {}

// LogicalExpressionNode: represents a short-circuiting and/or operation.
// The right operand is only evaluated when the left does not decide the
// result.
// Example: a and b, a or b
type LogicalExpressionNode struct {
	Left      ExpressionNode // Left operand
	Operation lexer.Token    // The and/or keyword token
	Right     ExpressionNode // Right operand
}

func (n *LogicalExpressionNode) Literal() string {
	return n.Left.Literal() + " " + n.Operation.Literal + " " + n.Right.Literal()
}
func (n *LogicalExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitLogicalExpressionNode(*n) }
func (n *LogicalExpressionNode) Statement()                 {}
func (n *LogicalExpressionNode) Expression()                {}

// ParenthesizedExpressionNode: represents an explicitly grouped expression.
// Example: (a + b)
type ParenthesizedExpressionNode struct {
	Expr ExpressionNode // The inner expression
}

func (n *ParenthesizedExpressionNode) Literal() string            { return "(" + n.Expr.Literal() + ")" }
func (n *ParenthesizedExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitParenthesizedExpressionNode(*n) }
func (n *ParenthesizedExpressionNode) Statement()                 {}
func (n *ParenthesizedExpressionNode) Expression()                {}

// CallExpressionNode: represents a call of a function, native, or class.
// Paren is the closing ')' token; its line anchors call-site runtime errors.
// Example: makeCounter(), Cake("choc")
type CallExpressionNode struct {
	Callee    ExpressionNode
	Paren     lexer.Token      // The closing ')' token
	Arguments []ExpressionNode // Argument expressions, in source order
}

func (n *CallExpressionNode) Literal() string {
	args := make([]string, len(n.Arguments))
	for i, arg := range n.Arguments {
		args[i] = arg.Literal()
	}
	return n.Callee.Literal() + "(" + strings.Join(args, ", ") + ")"
}
func (n *CallExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitCallExpressionNode(*n) }
func (n *CallExpressionNode) Statement()                 {}
func (n *CallExpressionNode) Expression()                {}

// GetExpressionNode: represents reading a property off an instance.
// Example: cake.flavor
type GetExpressionNode struct {
	Object ExpressionNode // The expression producing the instance
	Name   lexer.Token    // The property name token
}

func (n *GetExpressionNode) Literal() string            { return n.Object.Literal() + "." + n.Name.Literal }
func (n *GetExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitGetExpressionNode(*n) }
func (n *GetExpressionNode) Statement()                 {}
func (n *GetExpressionNode) Expression()                {}

// SetExpressionNode: represents writing a field on an instance.
// Produced by rewriting a property read on the left of '='.
// Example: cake.flavor = "choc"
type SetExpressionNode struct {
	Object ExpressionNode // The expression producing the instance
	Name   lexer.Token    // The field name token
	Value  ExpressionNode // The value being assigned
}

func (n *SetExpressionNode) Literal() string {
	return n.Object.Literal() + "." + n.Name.Literal + " = " + n.Value.Literal()
}
func (n *SetExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitSetExpressionNode(*n) }
func (n *SetExpressionNode) Statement()                 {}
func (n *SetExpressionNode) Expression()                {}

// ThisExpressionNode: represents the current instance inside a method.
type ThisExpressionNode struct {
	Keyword lexer.Token // The this keyword token; its Id keys the depth table
}

func (n *ThisExpressionNode) Literal() string            { return "this" }
func (n *ThisExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitThisExpressionNode(*n) }
func (n *ThisExpressionNode) Statement()                 {}
func (n *ThisExpressionNode) Expression()                {}

// SuperExpressionNode: represents a superclass method access.
// Example: super.init, super.m
type SuperExpressionNode struct {
	Keyword lexer.Token // The super keyword token; its Id keys the depth table
	Method  lexer.Token // The method name token after the dot
}

func (n *SuperExpressionNode) Literal() string            { return "super." + n.Method.Literal }
func (n *SuperExpressionNode) Accept(visitor NodeVisitor) { visitor.VisitSuperExpressionNode(*n) }
func (n *SuperExpressionNode) Statement()                 {}
func (n *SuperExpressionNode) Expression()                {}

// DeclarativeStatementNode: represents a variable declaration.
// The initializer is optional; a missing one yields nil at runtime.
// Example: var x = 10;  var y;
type DeclarativeStatementNode struct {
	VarToken   lexer.Token    // The var keyword token
	Identifier lexer.Token    // The declared name
	Expr       ExpressionNode // Optional initializer (nil when absent)
}

func (n *DeclarativeStatementNode) Literal() string {
	if n.Expr == nil {
		return "var " + n.Identifier.Literal + ";"
	}
	return "var " + n.Identifier.Literal + " = " + n.Expr.Literal() + ";"
}
func (n *DeclarativeStatementNode) Accept(visitor NodeVisitor) { visitor.VisitDeclarativeStatementNode(*n) }
func (n *DeclarativeStatementNode) Statement()                 {}

// PrintStatementNode: represents a print statement.
// Example: print 1 + 2;
type PrintStatementNode struct {
	PrintToken lexer.Token    // The print keyword token
	Expr       ExpressionNode // The expression to print
}

func (n *PrintStatementNode) Literal() string            { return "print " + n.Expr.Literal() + ";" }
func (n *PrintStatementNode) Accept(visitor NodeVisitor) { visitor.VisitPrintStatementNode(*n) }
func (n *PrintStatementNode) Statement()                 {}

// BlockStatementNode: represents a braced sequence of statements.
// Blocks open a fresh lexical scope at runtime.
// Example: { var x = 5; print x; }
type BlockStatementNode struct {
	Statements []StatementNode
}

func (n *BlockStatementNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, stmt := range n.Statements {
		sb.WriteString(stmtSource(stmt))
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}
func (n *BlockStatementNode) Accept(visitor NodeVisitor) { visitor.VisitBlockStatementNode(*n) }
func (n *BlockStatementNode) Statement()                 {}

// IfStatementNode: represents a conditional with an optional else branch.
// Branches are arbitrary statements, not necessarily blocks.
// Example: if (a < b) print a; else print b;
type IfStatementNode struct {
	Condition  ExpressionNode // The branch condition
	ThenBranch StatementNode  // Executed when the condition is truthy
	ElseBranch StatementNode  // Optional (nil when absent)
}

func (n *IfStatementNode) Literal() string {
	out := "if (" + n.Condition.Literal() + ") " + stmtSource(n.ThenBranch)
	if n.ElseBranch != nil {
		out += " else " + stmtSource(n.ElseBranch)
	}
	return out
}
func (n *IfStatementNode) Accept(visitor NodeVisitor) { visitor.VisitIfStatementNode(*n) }
func (n *IfStatementNode) Statement()                 {}

// WhileLoopStatementNode: represents a while loop. For loops are desugared
// into this form by the parser.
// Example: while (i < 3) i = i + 1;
type WhileLoopStatementNode struct {
	Condition ExpressionNode // Loop condition
	Body      StatementNode  // Loop body
}

func (n *WhileLoopStatementNode) Literal() string {
	return "while (" + n.Condition.Literal() + ") " + stmtSource(n.Body)
}
func (n *WhileLoopStatementNode) Accept(visitor NodeVisitor) { visitor.VisitWhileLoopStatementNode(*n) }
func (n *WhileLoopStatementNode) Statement()                 {}

// FunctionStatementNode: represents a function declaration or a class
// method. Methods are written without the fun keyword; IsMethod records
// which form produced the node so Literal() can reconstruct the source.
// Example: fun add(a, b) { return a + b; }
type FunctionStatementNode struct {
	FuncName   lexer.Token     // The function name token
	FuncParams []lexer.Token   // Parameter name tokens, in source order
	FuncBody   []StatementNode // Body statements (evaluated in the call scope)
	IsMethod   bool            // Declared inside a class body
}

func (n *FunctionStatementNode) Literal() string {
	params := make([]string, len(n.FuncParams))
	for i, param := range n.FuncParams {
		params[i] = param.Literal
	}
	var sb strings.Builder
	if !n.IsMethod {
		sb.WriteString("fun ")
	}
	sb.WriteString(n.FuncName.Literal)
	sb.WriteString("(")
	sb.WriteString(strings.Join(params, ", "))
	sb.WriteString(") { ")
	for _, stmt := range n.FuncBody {
		sb.WriteString(stmtSource(stmt))
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}
func (n *FunctionStatementNode) Accept(visitor NodeVisitor) { visitor.VisitFunctionStatementNode(*n) }
func (n *FunctionStatementNode) Statement()                 {}

// ReturnStatementNode: represents a return statement. A bare "return;" is
// rewritten by the parser into returning a synthesized nil literal that
// shares the keyword's line.
// Example: return x + 1;
type ReturnStatementNode struct {
	Keyword lexer.Token    // The return keyword token
	Value   ExpressionNode // The returned expression (never nil after parsing)
}

func (n *ReturnStatementNode) Literal() string            { return "return " + n.Value.Literal() + ";" }
func (n *ReturnStatementNode) Accept(visitor NodeVisitor) { visitor.VisitReturnStatementNode(*n) }
func (n *ReturnStatementNode) Statement()                 {}

// ClassDeclarationNode: represents a class declaration with an optional
// single superclass and zero or more methods.
// Example: class B < A { m() { print "B"; } }
type ClassDeclarationNode struct {
	ClassName lexer.Token              // The class name token
	SuperName *lexer.Token             // Optional superclass name token (nil when absent)
	Methods   []*FunctionStatementNode // Method declarations, in source order
}

func (n *ClassDeclarationNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("class ")
	sb.WriteString(n.ClassName.Literal)
	if n.SuperName != nil {
		sb.WriteString(" < ")
		sb.WriteString(n.SuperName.Literal)
	}
	sb.WriteString(" { ")
	for _, method := range n.Methods {
		sb.WriteString(method.Literal())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}
func (n *ClassDeclarationNode) Accept(visitor NodeVisitor) { visitor.VisitClassDeclarationNode(*n) }
func (n *ClassDeclarationNode) Statement()                 {}

/*
File    : go-pico/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/go-pico/lexer"
)

// NodeVisitor: implements the Visitor design pattern for traversing the Abstract Syntax Tree (AST)
// Each Visit method processes a specific node type, enabling operations like printing or transformation
type NodeVisitor interface {
	VisitRootNode(node RootNode) // Entry point for visiting the entire program

	// Statement visitors
	VisitLetStatementNode(node LetStatementNode)       // Bindings: let x = 5
	VisitReturnStatementNode(node ReturnStatementNode) // Return statements: return expr
	VisitBlockStatementNode(node BlockStatementNode)   // Code blocks: { stmt1; stmt2; }

	// Literal value visitors - handle primitive data types
	VisitIntegerLiteralExpressionNode(node IntegerLiteralExpressionNode) // Integer literals: 42, 0
	VisitStringLiteralExpressionNode(node StringLiteralExpressionNode)   // String literals: "hello"
	VisitBooleanLiteralExpressionNode(node BooleanLiteralExpressionNode) // Boolean literals: true, false

	// Expression visitors - handle operations and computations
	VisitIdentifierExpressionNode(node IdentifierExpressionNode)         // Identifiers: x, myVar
	VisitUnaryExpressionNode(node UnaryExpressionNode)                   // Prefix operations: -x, !flag
	VisitBinaryExpressionNode(node BinaryExpressionNode)                 // Infix operations: +, -, *, /, <, >, ==, !=
	VisitIfExpressionNode(node IfExpressionNode)                         // Conditionals: if (cond) { ... } else { ... }
	VisitFunctionLiteralExpressionNode(node FunctionLiteralExpressionNode) // Function literals: fn(params) { body }
	VisitCallExpressionNode(node CallExpressionNode)                     // Function calls: callee(arg1, arg2)
}

// Node: base interface for all nodes of the AST
// Literal(): returns the source token text the node was built from
// ToString(): returns the canonical string rendering of the node, with
// every prefix and infix operation fully parenthesised
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	ToString() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
// Node: every statement node is a node
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Node: every expression node is a node
// StatementNode: every expression is also a statement, which is how
// bare expression-statements enter a program's statement list
type ExpressionNode interface {
	Node
	StatementNode
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of statements in the program
type RootNode struct {
	Statements []StatementNode // every line of code is a statement
}

// RootNode.Literal(): token text of the first statement, if any
func (root *RootNode) Literal() string {
	if len(root.Statements) > 0 {
		return root.Statements[0].Literal()
	}
	return ""
}

// RootNode.ToString(): concatenation of the canonical forms of all statements
func (root *RootNode) ToString() string {
	var out strings.Builder
	for _, stmt := range root.Statements {
		out.WriteString(stmt.ToString())
	}
	return out.String()
}

// RootNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(*root)
}

// LetStatementNode: represents a variable binding statement
// Example: let x = 10
type LetStatementNode struct {
	LetToken   lexer.Token              // The 'let' keyword token
	Identifier IdentifierExpressionNode // The identifier being bound
	Expr       ExpressionNode           // The bound expression
}

// LetStatementNode.Literal(): the 'let' keyword text
func (node *LetStatementNode) Literal() string {
	return node.LetToken.Literal
}

// LetStatementNode.ToString(): canonical "let <name> = <expr>;" form
func (node *LetStatementNode) ToString() string {
	var out strings.Builder
	out.WriteString("let ")
	out.WriteString(node.Identifier.Name)
	out.WriteString(" = ")
	if node.Expr != nil {
		out.WriteString(node.Expr.ToString())
	}
	out.WriteString(";")
	return out.String()
}

// LetStatementNode.Accept(): accepts a visitor
func (node *LetStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitLetStatementNode(*node)
}

// LetStatementNode.Statement(): marker
func (node *LetStatementNode) Statement() {

}

// ReturnStatementNode: represents a return statement
// Example: return x + 1
type ReturnStatementNode struct {
	ReturnToken lexer.Token    // The 'return' keyword token
	Expr        ExpressionNode // The returned expression
}

// ReturnStatementNode.Literal(): the 'return' keyword text
func (node *ReturnStatementNode) Literal() string {
	return node.ReturnToken.Literal
}

// ReturnStatementNode.ToString(): canonical "return <expr>;" form
func (node *ReturnStatementNode) ToString() string {
	var out strings.Builder
	out.WriteString("return ")
	if node.Expr != nil {
		out.WriteString(node.Expr.ToString())
	}
	out.WriteString(";")
	return out.String()
}

// ReturnStatementNode.Accept(): accepts a visitor
func (node *ReturnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitReturnStatementNode(*node)
}

// ReturnStatementNode.Statement(): marker
func (node *ReturnStatementNode) Statement() {

}

// BlockStatementNode: represents a brace-delimited sequence of statements
// Example: { let x = 1; x + 2; }
type BlockStatementNode struct {
	BraceToken lexer.Token     // The '{' token that opened the block
	Statements []StatementNode // The statements inside the block
}

// BlockStatementNode.Literal(): the '{' token text
func (node *BlockStatementNode) Literal() string {
	return node.BraceToken.Literal
}

// BlockStatementNode.ToString(): braces around the canonical forms of the inner statements
func (node *BlockStatementNode) ToString() string {
	var out strings.Builder
	out.WriteString("{ ")
	for _, stmt := range node.Statements {
		out.WriteString(stmt.ToString())
	}
	out.WriteString(" }")
	return out.String()
}

// BlockStatementNode.InnerToString(): the inner statements without braces,
// used by the function value's inspect form
func (node *BlockStatementNode) InnerToString() string {
	var out strings.Builder
	for _, stmt := range node.Statements {
		out.WriteString(stmt.ToString())
	}
	return out.String()
}

// BlockStatementNode.Accept(): accepts a visitor
func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(*node)
}

// BlockStatementNode.Statement(): marker
func (node *BlockStatementNode) Statement() {

}

// IdentifierExpressionNode: represents a variable or function identifier
// Example: x, myVar, add
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The identifier name
}

// IdentifierExpressionNode.Literal(): the identifier text
func (node *IdentifierExpressionNode) Literal() string {
	return node.Token.Literal
}

// IdentifierExpressionNode.ToString(): the identifier name
func (node *IdentifierExpressionNode) ToString() string {
	return node.Name
}

// IdentifierExpressionNode.Accept(): accepts a visitor
func (node *IdentifierExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIdentifierExpressionNode(*node)
}

// IdentifierExpressionNode.Statement(): every expression is also a statement
func (node *IdentifierExpressionNode) Statement() {

}

// IdentifierExpressionNode.Expression(): marker
func (node *IdentifierExpressionNode) Expression() {

}

// IntegerLiteralExpressionNode: represents an integer literal
// Example: 42, 0
type IntegerLiteralExpressionNode struct {
	Token lexer.Token // The integer token with its literal text
	Value int64       // The parsed 64-bit integer value
}

// IntegerLiteralExpressionNode.Literal(): the digit text
func (node *IntegerLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// IntegerLiteralExpressionNode.ToString(): the digit text
func (node *IntegerLiteralExpressionNode) ToString() string {
	return node.Token.Literal
}

// IntegerLiteralExpressionNode.Accept(): accepts a visitor
func (node *IntegerLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIntegerLiteralExpressionNode(*node)
}

// IntegerLiteralExpressionNode.Statement(): every expression is also a statement
func (node *IntegerLiteralExpressionNode) Statement() {

}

// IntegerLiteralExpressionNode.Expression(): marker
func (node *IntegerLiteralExpressionNode) Expression() {

}

// StringLiteralExpressionNode: represents a string literal
// Example: "hello world"
type StringLiteralExpressionNode struct {
	Token lexer.Token // The string token
	Value string      // The string contents (without quotes)
}

// StringLiteralExpressionNode.Literal(): the string contents
func (node *StringLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// StringLiteralExpressionNode.ToString(): the string contents
func (node *StringLiteralExpressionNode) ToString() string {
	return node.Token.Literal
}

// StringLiteralExpressionNode.Accept(): accepts a visitor
func (node *StringLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitStringLiteralExpressionNode(*node)
}

// StringLiteralExpressionNode.Statement(): every expression is also a statement
func (node *StringLiteralExpressionNode) Statement() {

}

// StringLiteralExpressionNode.Expression(): marker
func (node *StringLiteralExpressionNode) Expression() {

}

// BooleanLiteralExpressionNode: represents a boolean literal value
// Example: true or false
type BooleanLiteralExpressionNode struct {
	Token lexer.Token // The boolean token (true/false)
	Value bool        // The boolean value
}

// BooleanLiteralExpressionNode.Literal(): the keyword text
func (node *BooleanLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// BooleanLiteralExpressionNode.ToString(): the keyword text
func (node *BooleanLiteralExpressionNode) ToString() string {
	return node.Token.Literal
}

// BooleanLiteralExpressionNode.Accept(): accepts a visitor
func (node *BooleanLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBooleanLiteralExpressionNode(*node)
}

// BooleanLiteralExpressionNode.Statement(): every expression is also a statement
func (node *BooleanLiteralExpressionNode) Statement() {

}

// BooleanLiteralExpressionNode.Expression(): marker
func (node *BooleanLiteralExpressionNode) Expression() {

}

// UnaryExpressionNode: represents a prefix operation with one operand
// Example: -x, !flag
type UnaryExpressionNode struct {
	Operation lexer.Token    // The prefix operator token (-, !)
	Right     ExpressionNode // The operand expression
}

// UnaryExpressionNode.Literal(): the operator text
func (node *UnaryExpressionNode) Literal() string {
	return node.Operation.Literal
}

// UnaryExpressionNode.ToString(): canonical "(<op><right>)" form
func (node *UnaryExpressionNode) ToString() string {
	var out strings.Builder
	out.WriteString("(")
	out.WriteString(node.Operation.Literal)
	if node.Right != nil {
		out.WriteString(node.Right.ToString())
	}
	out.WriteString(")")
	return out.String()
}

// UnaryExpressionNode.Accept(): accepts a visitor
func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(*node)
}

// UnaryExpressionNode.Statement(): every expression is also a statement
func (node *UnaryExpressionNode) Statement() {

}

// UnaryExpressionNode.Expression(): marker
func (node *UnaryExpressionNode) Expression() {

}

// BinaryExpressionNode: represents an infix operation with two operands
// Example: 2 + 3, x * y, a == b
type BinaryExpressionNode struct {
	Operation lexer.Token    // The infix operator token (+, -, *, /, <, >, ==, !=)
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

// BinaryExpressionNode.Literal(): the operator text
func (node *BinaryExpressionNode) Literal() string {
	return node.Operation.Literal
}

// BinaryExpressionNode.ToString(): canonical "(<left> <op> <right>)" form
func (node *BinaryExpressionNode) ToString() string {
	var out strings.Builder
	out.WriteString("(")
	if node.Left != nil {
		out.WriteString(node.Left.ToString())
	}
	out.WriteString(" ")
	out.WriteString(node.Operation.Literal)
	out.WriteString(" ")
	if node.Right != nil {
		out.WriteString(node.Right.ToString())
	}
	out.WriteString(")")
	return out.String()
}

// BinaryExpressionNode.Accept(): accepts a visitor
func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(*node)
}

// BinaryExpressionNode.Statement(): every expression is also a statement
func (node *BinaryExpressionNode) Statement() {

}

// BinaryExpressionNode.Expression(): marker
func (node *BinaryExpressionNode) Expression() {

}

// IfExpressionNode: represents a conditional expression
// The alternative block is optional; without it a false condition
// produces null.
// Example: if (x < y) { x } else { y }
type IfExpressionNode struct {
	IfToken     lexer.Token         // The 'if' keyword token
	Condition   ExpressionNode      // The condition expression
	Consequence *BlockStatementNode // Block evaluated when the condition is truthy
	Alternative *BlockStatementNode // Optional block evaluated otherwise
}

// IfExpressionNode.Literal(): the 'if' keyword text
func (node *IfExpressionNode) Literal() string {
	return node.IfToken.Literal
}

// IfExpressionNode.ToString(): canonical "if <cond> <cons> else <alt>" form
func (node *IfExpressionNode) ToString() string {
	var out strings.Builder
	out.WriteString("if ")
	if node.Condition != nil {
		out.WriteString(node.Condition.ToString())
	}
	out.WriteString(" ")
	out.WriteString(node.Consequence.ToString())
	if node.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(node.Alternative.ToString())
	}
	return out.String()
}

// IfExpressionNode.Accept(): accepts a visitor
func (node *IfExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfExpressionNode(*node)
}

// IfExpressionNode.Statement(): every expression is also a statement
func (node *IfExpressionNode) Statement() {

}

// IfExpressionNode.Expression(): marker
func (node *IfExpressionNode) Expression() {

}

// FunctionLiteralExpressionNode: represents an anonymous function literal
// Example: fn(x, y) { x + y; }
type FunctionLiteralExpressionNode struct {
	FnToken lexer.Token                 // The 'fn' keyword token
	Params  []*IdentifierExpressionNode // Function parameter names
	Body    *BlockStatementNode         // Function body
}

// FunctionLiteralExpressionNode.Literal(): the 'fn' keyword text
func (node *FunctionLiteralExpressionNode) Literal() string {
	return node.FnToken.Literal
}

// FunctionLiteralExpressionNode.ToString(): canonical "fn(<params>) <body>" form
func (node *FunctionLiteralExpressionNode) ToString() string {
	params := make([]string, 0, len(node.Params))
	for _, param := range node.Params {
		params = append(params, param.ToString())
	}

	var out strings.Builder
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(node.Body.ToString())
	return out.String()
}

// FunctionLiteralExpressionNode.Accept(): accepts a visitor
func (node *FunctionLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionLiteralExpressionNode(*node)
}

// FunctionLiteralExpressionNode.Statement(): every expression is also a statement
func (node *FunctionLiteralExpressionNode) Statement() {

}

// FunctionLiteralExpressionNode.Expression(): marker
func (node *FunctionLiteralExpressionNode) Expression() {

}

// CallExpressionNode: represents a function call
// The callee can be any expression that evaluates to a function:
// an identifier, or a function literal invoked in place.
// Example: add(1, 2 * 3)
type CallExpressionNode struct {
	ParenToken lexer.Token      // The '(' token that started the argument list
	Callee     ExpressionNode   // The expression being called
	Arguments  []ExpressionNode // The argument expressions, in order
}

// CallExpressionNode.Literal(): the '(' token text
func (node *CallExpressionNode) Literal() string {
	return node.ParenToken.Literal
}

// CallExpressionNode.ToString(): canonical "<callee>(<args>)" form
func (node *CallExpressionNode) ToString() string {
	args := make([]string, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.ToString())
	}

	var out strings.Builder
	if node.Callee != nil {
		out.WriteString(node.Callee.ToString())
	}
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// CallExpressionNode.Accept(): accepts a visitor
func (node *CallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitCallExpressionNode(*node)
}

// CallExpressionNode.Statement(): every expression is also a statement
func (node *CallExpressionNode) Statement() {

}

// CallExpressionNode.Expression(): marker
func (node *CallExpressionNode) Expression() {

}

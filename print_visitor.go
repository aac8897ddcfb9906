package main

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/go-pico/parser"
)

const INDENT_SIZE = 4

// indent indents the buffer by the indent size
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// PrintingVisitor is a visitor that prints the nodes
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// VisitRootNode visits the root node
func (p *PrintingVisitor) VisitRootNode(node parser.RootNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Root Node (%s)\n", node.ToString()))
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitLetStatementNode visits the let statement node
func (p *PrintingVisitor) VisitLetStatementNode(node parser.LetStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Let Node [%s] (%s)\n", node.Identifier.Name, node.ToString()))
	p.Indent += INDENT_SIZE
	if node.Expr != nil {
		node.Expr.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitReturnStatementNode visits the return statement node
func (p *PrintingVisitor) VisitReturnStatementNode(node parser.ReturnStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Return Node (%s)\n", node.ToString()))
	p.Indent += INDENT_SIZE
	if node.Expr != nil {
		node.Expr.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitBlockStatementNode visits the block statement node
func (p *PrintingVisitor) VisitBlockStatementNode(node parser.BlockStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Block Node (%s)\n", node.ToString()))
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitIdentifierExpressionNode visits the identifier expression node
func (p *PrintingVisitor) VisitIdentifierExpressionNode(node parser.IdentifierExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Identifier Node (%s)\n", node.Name))
}

// VisitIntegerLiteralExpressionNode visits the integer literal expression node
func (p *PrintingVisitor) VisitIntegerLiteralExpressionNode(node parser.IntegerLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Integer Node [%s] (%s => %d)\n", node.Literal(), node.Literal(), node.Value))
}

// VisitStringLiteralExpressionNode visits the string literal expression node
func (p *PrintingVisitor) VisitStringLiteralExpressionNode(node parser.StringLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting String Node (%s)\n", node.Value))
}

// VisitBooleanLiteralExpressionNode visits the boolean literal expression node
func (p *PrintingVisitor) VisitBooleanLiteralExpressionNode(node parser.BooleanLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Boolean Node [%s] (%s => %t)\n", node.Literal(), node.Literal(), node.Value))
}

// VisitUnaryExpressionNode visits the unary expression node
func (p *PrintingVisitor) VisitUnaryExpressionNode(node parser.UnaryExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Unary Node [%s] (%s)\n", node.Operation.Literal, node.ToString()))
	p.Indent += INDENT_SIZE
	if node.Right != nil {
		node.Right.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitBinaryExpressionNode visits the binary expression node
func (p *PrintingVisitor) VisitBinaryExpressionNode(node parser.BinaryExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Binary Node [%s] (%s)\n", node.Operation.Literal, node.ToString()))
	p.Indent += INDENT_SIZE
	if node.Left != nil {
		node.Left.Accept(p)
	}
	if node.Right != nil {
		node.Right.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitIfExpressionNode visits the if expression node
func (p *PrintingVisitor) VisitIfExpressionNode(node parser.IfExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting If Node (%s)\n", node.ToString()))
	p.Indent += INDENT_SIZE
	if node.Condition != nil {
		node.Condition.Accept(p)
	}
	if node.Consequence != nil {
		node.Consequence.Accept(p)
	}
	if node.Alternative != nil {
		node.Alternative.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitFunctionLiteralExpressionNode visits the function literal expression node
func (p *PrintingVisitor) VisitFunctionLiteralExpressionNode(node parser.FunctionLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Function Node (%s)\n", node.ToString()))
	p.Indent += INDENT_SIZE
	for _, param := range node.Params {
		param.Accept(p)
	}
	if node.Body != nil {
		node.Body.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitCallExpressionNode visits the call expression node
func (p *PrintingVisitor) VisitCallExpressionNode(node parser.CallExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Call Node (%s)\n", node.ToString()))
	p.Indent += INDENT_SIZE
	if node.Callee != nil {
		node.Callee.Accept(p)
	}
	for _, arg := range node.Arguments {
		arg.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// String returns the string representation of the visitor
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}

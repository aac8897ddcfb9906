/*
File    : go-pico/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/go-pico/lexer"
)

// parseExpression is the heart of the Pratt parsing algorithm.
//
// It looks up a prefix handler for the current token and uses it to parse
// the left-hand side. Then, as long as the upcoming token is an infix
// operator that binds tighter than the precedence we entered with (and is
// not a semicolon), it hands the left-hand side to that operator's infix
// handler and keeps going. Comparing with strict less-than makes all
// infix operators left-associative.
//
// Parameters:
//
//	precedence - the binding power of the context we are parsing in
//
// Returns:
//
//	ExpressionNode - the parsed expression, or nil if no prefix handler
//	exists for the current token (an error is recorded and parsing
//	continues at the statement level for error recovery)
func (par *Parser) parseExpression(precedence int) ExpressionNode {
	unary := par.UnaryFuncs[par.CurrToken.Type]
	if unary == nil {
		par.addError(fmt.Sprintf("no prefix parse function for %s found", par.CurrToken.Type))
		return nil
	}
	left := unary()

	for par.NextToken.Type != lexer.SEMICOLON_DELIM && precedence < getPrecedence(&par.NextToken) {
		binary := par.BinaryFuncs[par.NextToken.Type]
		if binary == nil {
			return left
		}
		par.advance()
		left = binary(left)
	}

	return left
}

// parseIdentifierExpression emits an identifier node for the current token.
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	return &IdentifierExpressionNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
	}
}

// parseIntegerLiteral emits an integer literal node for the current token.
// The digit string is converted here rather than in the lexer, so the
// lexer stays failure-free; a literal that does not fit in 64 bits is
// recorded as a parse error.
func (par *Parser) parseIntegerLiteral() ExpressionNode {
	value, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
	if err != nil {
		par.addError(fmt.Sprintf("could not parse %q as integer", par.CurrToken.Literal))
		return nil
	}

	return &IntegerLiteralExpressionNode{
		Token: par.CurrToken,
		Value: value,
	}
}

// parseStringLiteral emits a string literal node for the current token.
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralExpressionNode{
		Token: par.CurrToken,
		Value: par.CurrToken.Literal,
	}
}

// parseBooleanLiteral emits a boolean literal node for the current token.
// The value is true exactly when the token is the 'true' keyword.
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &BooleanLiteralExpressionNode{
		Token: par.CurrToken,
		Value: par.CurrToken.Type == lexer.TRUE_KEY,
	}
}

// parseUnaryExpression parses a prefix operation (!x or -x).
// It captures the operator, advances, and recurses with prefix
// precedence so that "-a * b" parses as "((-a) * b)".
func (par *Parser) parseUnaryExpression() ExpressionNode {
	operation := par.CurrToken

	par.advance()
	right := par.parseExpression(PREFIX_PRIORITY)

	return &UnaryExpressionNode{
		Operation: operation,
		Right:     right,
	}
}

// parseBinaryExpression parses an infix operation, given the already
// parsed left operand. It captures the operator and its precedence,
// advances, and recurses with that precedence for the right operand.
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	operation := par.CurrToken
	precedence := getPrecedence(&operation)

	par.advance()
	right := par.parseExpression(precedence)

	return &BinaryExpressionNode{
		Operation: operation,
		Left:      left,
		Right:     right,
	}
}

// parseParenthesizedExpression parses a grouped expression: (expr).
// Grouping exists only to steer precedence, so the inner expression is
// returned directly; no wrapper node enters the tree.
func (par *Parser) parseParenthesizedExpression() ExpressionNode {
	par.advance()

	expr := par.parseExpression(MINIMUM_PRIORITY)

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	return expr
}

// parseIfExpression parses a conditional of the form:
//
//	if (<condition>) { <consequence> }
//	if (<condition>) { <consequence> } else { <alternative> }
func (par *Parser) parseIfExpression() ExpressionNode {
	ifToken := par.CurrToken

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	par.advance()
	condition := par.parseExpression(MINIMUM_PRIORITY)

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}

	consequence := par.parseBlockStatement()

	node := &IfExpressionNode{
		IfToken:     ifToken,
		Condition:   condition,
		Consequence: consequence,
	}

	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance()

		if !par.expectAdvance(lexer.LEFT_BRACE) {
			return nil
		}

		node.Alternative = par.parseBlockStatement()
	}

	return node
}

// parseFunctionLiteral parses a function literal of the form:
//
//	fn(<param1>, <param2>, ...) { <body> }
func (par *Parser) parseFunctionLiteral() ExpressionNode {
	fnToken := par.CurrToken

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	params := par.parseFunctionParams()
	if params == nil {
		return nil
	}

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}

	body := par.parseBlockStatement()

	return &FunctionLiteralExpressionNode{
		FnToken: fnToken,
		Params:  params,
		Body:    body,
	}
}

// parseFunctionParams parses a comma-separated parameter list, with the
// current token on the opening '('. On exit the current token is the
// closing ')'. Returns nil when the list is malformed.
func (par *Parser) parseFunctionParams() []*IdentifierExpressionNode {
	params := make([]*IdentifierExpressionNode, 0)

	// Empty parameter list: fn()
	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return params
	}

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	params = append(params, &IdentifierExpressionNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
	})

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		if !par.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		params = append(params, &IdentifierExpressionNode{
			Token: par.CurrToken,
			Name:  par.CurrToken.Literal,
		})
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	return params
}

// parseCallExpression parses a function call, given the already parsed
// callee. The current token is the '(' that introduced the argument list.
func (par *Parser) parseCallExpression(callee ExpressionNode) ExpressionNode {
	parenToken := par.CurrToken

	arguments := par.parseCallArguments()
	if arguments == nil {
		return nil
	}

	return &CallExpressionNode{
		ParenToken: parenToken,
		Callee:     callee,
		Arguments:  arguments,
	}
}

// parseCallArguments parses a comma-separated argument list terminated
// by ')'. Each argument is a full expression parsed at the minimum
// priority. Returns nil when the list is malformed.
func (par *Parser) parseCallArguments() []ExpressionNode {
	arguments := make([]ExpressionNode, 0)

	// Empty argument list: callee()
	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return arguments
	}

	par.advance()
	arguments = append(arguments, par.parseExpression(MINIMUM_PRIORITY))

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		par.advance()
		arguments = append(arguments, par.parseExpression(MINIMUM_PRIORITY))
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	return arguments
}

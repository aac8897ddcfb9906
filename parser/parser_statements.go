/*
File    : go-pico/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-pico/lexer"

// parseStatement dispatches on the current token to the matching
// statement handler. Anything that is not a let or return statement
// is an expression statement.
//
// Returns:
//
//	StatementNode - the parsed statement, or nil if the handler failed
//	(in which case an error has been recorded)
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.LET_KEY:
		return par.parseLetStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseLetStatement parses a variable binding of the form:
//
//	let <identifier> = <expression>;
//
// The trailing semicolon is optional. On a failed expectation the
// handler aborts and returns nil, leaving the recorded error in place.
func (par *Parser) parseLetStatement() StatementNode {
	letToken := par.CurrToken

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}

	identifier := IdentifierExpressionNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
	}

	if !par.expectAdvance(lexer.ASSIGN_OP) {
		return nil
	}

	// Move past '=' onto the first token of the value expression
	par.advance()
	expr := par.parseExpression(MINIMUM_PRIORITY)

	// Consume the optional statement terminator
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}

	return &LetStatementNode{
		LetToken:   letToken,
		Identifier: identifier,
		Expr:       expr,
	}
}

// parseReturnStatement parses a return statement of the form:
//
//	return <expression>;
//
// The trailing semicolon is optional.
func (par *Parser) parseReturnStatement() StatementNode {
	returnToken := par.CurrToken

	// Move past 'return' onto the first token of the value expression
	par.advance()
	expr := par.parseExpression(MINIMUM_PRIORITY)

	// Consume the optional statement terminator
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}

	return &ReturnStatementNode{
		ReturnToken: returnToken,
		Expr:        expr,
	}
}

// parseExpressionStatement parses a bare expression used in statement
// position. Expressions implement StatementNode directly, so the parsed
// expression enters the statement list as-is.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression(MINIMUM_PRIORITY)

	// Consume the optional statement terminator
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}

	if expr == nil {
		return nil
	}
	return expr
}

// parseBlockStatement parses a brace-delimited statement sequence.
// On entry the current token is '{'; on exit it is the matching '}'
// (or EOF for an unterminated block). Errors inside the block are
// recorded but do not terminate it.
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	block := &BlockStatementNode{
		BraceToken: par.CurrToken,
		Statements: make([]StatementNode, 0),
	}

	par.advance()

	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}

	return block
}

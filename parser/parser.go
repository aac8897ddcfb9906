/*
File    : go-pico/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a Pratt parser (also known as top-down operator
precedence parser) for the Pico programming language.

The parser converts a stream of tokens from the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (infix, prefix, literals, identifiers, grouping)
- Statements (let bindings, return statements, expression statements, blocks)
- Conditionals (if/else expressions)
- Function literals and calls
- Operator precedence and left associativity

Key Features:
- Pratt parsing algorithm for efficient expression parsing
- Error collection (doesn't panic on first error)
- Error recovery: a failed expectation aborts the handler, never the parse,
  so a single pass surfaces as many errors as possible

The caller decides whether accumulated errors are fatal: Parse always
returns the program it managed to build, alongside HasErrors/GetErrors.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-pico/lexer"
)

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse Pico source code
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Lex       *lexer.Lexer // Lexer instance, consumed on demand to EOF
	CurrToken lexer.Token  // Current token being processed
	NextToken lexer.Token  // Next token (one token of lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions.
	// Keying happens on the token's type (its tag), never its payload.
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Tokens that can start an expression
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix operator tokens

	// Collect parsing errors instead of panicking
	// This allows reporting multiple errors in a single parse
	Errors []string
}

// NewParser creates and initializes a new Parser instance over the given
// lexer. This is the main entry point for creating a parser.
//
// Parameters:
//
//	lex - The lexer producing the token stream to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the source code.
func NewParser(lex *lexer.Lexer) *Parser {
	par := &Parser{
		Lex: lex,
	}

	// Initialize all parser state (maps, tokens, etc.)
	par.init()

	return par
}

// init initializes the parser's internal state.
// This function sets up:
// 1. Function maps for Pratt parsing
// 2. Error collection
// 3. Initial token lookahead
//
// The function registers parsing functions for all supported token types,
// establishing the grammar of the Pico language.
func (par *Parser) init() {
	// Initialize all maps
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	// Register prefix parsing functions
	// These handle tokens that can start an expression

	// Identifiers: variable names, function names
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)

	// Integer literals: 42, 0
	par.registerUnaryFuncs(par.parseIntegerLiteral, lexer.INT_LIT)

	// String literals: "hello"
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)

	// Boolean literals: true, false
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)

	// Prefix operators: !, -
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.NOT_OP, lexer.MINUS_OP)

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.LEFT_PAREN)

	// Conditionals: if (cond) { ... } else { ... }
	par.registerUnaryFuncs(par.parseIfExpression, lexer.IF_KEY)

	// Function literals: fn(params) { body }
	par.registerUnaryFuncs(par.parseFunctionLiteral, lexer.FUNC_KEY)

	// Register infix parsing functions
	// These handle operators that appear between two expressions

	// Arithmetic operators: +, -, *, /
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP)

	// Comparison operators: <, >, ==, !=
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.GT_OP, lexer.LT_OP, lexer.EQ_OP, lexer.NE_OP)

	// Call expressions: callee(args)
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)

	// Prime the token lookahead by advancing twice
	// After this, CurrToken and NextToken are both valid
	par.advance()
	par.advance()
}

// advance moves the parser forward by one token.
// This implements the token lookahead mechanism:
// - CurrToken becomes NextToken
// - NextToken is fetched from the lexer
//
// This two-token lookahead allows the parser to make decisions
// based on the current token and peek at what's coming next.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectAdvance checks if the next token matches the expected type,
// and if so, advances the parser.
//
// Parameters:
//
//	expected - The token type we expect to see next
//
// Returns:
//
//	true if the next token matches and we advanced, false otherwise
//
// On mismatch an error is recorded and the parser does not advance;
// the calling handler aborts, the statement loop moves past the problem.
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// expectNext checks if the next token matches the expected type.
// If not, it adds an error message to the error list.
//
// Parameters:
//
//	expected - The token type we expect to see next
//
// Returns:
//
//	true if the next token matches, false otherwise
//
// This function doesn't advance the parser, it only checks.
// Use expectAdvance() if you want to check and advance in one step.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		msg := fmt.Sprintf("expected next token to be %s, got %s instead",
			expected, par.NextToken.Type)
		par.addError(msg)
		return false
	}
	return true
}

// addError adds an error message to the parser's error list.
// The parser collects errors instead of panicking, allowing it to
// report multiple errors in a single parse.
//
// Parameters:
//
//	msg - The error message to add
func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors returns true if there are parsing errors.
// This should be checked after parsing to determine if the parse was successful.
//
// Returns:
//
//	true if there are any errors, false if parsing was successful
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parsing errors collected during parsing.
// This allows the caller to display all errors to the user.
//
// Returns:
//
//	A slice of error message strings
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// Parse is the main parsing function that converts the token stream into an AST.
// It repeatedly parses statements until reaching the end of the input (EOF),
// building up a RootNode that contains all the parsed statements.
//
// Returns:
//
//	A pointer to a RootNode containing all parsed statements
//
// The RootNode is returned even when errors were recorded; callers check
// HasErrors to decide whether the program is usable.
func (par *Parser) Parse() *RootNode {

	// Create the root node that will hold all statements
	root := &RootNode{}
	root.Statements = make([]StatementNode, 0)

	// Parse statements until we reach the end of input
	for par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
		par.advance()
	}

	return root
}

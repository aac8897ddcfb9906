/*
File    : go-pico/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-pico/lexer"

// Operator precedence constants
// Higher number = higher precedence (binds tighter)
//
// Precedence Hierarchy (lowest to highest):
// 1. Equality operators
// 2. Relational operators
// 3. Additive operators
// 4. Multiplicative operators
// 5. Unary/Prefix operators
// 6. Call operator (postfix)
//
// Example: In "a + b * c", multiplication has higher precedence than addition,
// so it's parsed as "a + (b * c)" rather than "(a + b) * c"
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Equality operators: == !=
	// Example: a == b, a != b
	EQUALITY_PRIORITY = 10

	// Relational operators: < >
	// Example: a < b, a > b
	RELATIONAL_PRIORITY = 20

	// Additive operators: + -
	// Example: a + b, a - b
	PLUS_PRIORITY = 30

	// Multiplicative operators: * /
	// Example: a * b, a / b
	MUL_PRIORITY = 40

	// Unary/Prefix operators: ! -
	// Example: !a, -b
	PREFIX_PRIORITY = 50

	// Call operator: callee(args)
	// Example: add(1, 2)
	CALL_PRIORITY = 60
)

// getPrecedence returns the precedence level for a given token.
// This function is central to the Pratt parsing algorithm, determining
// how tightly operators bind to their operands. Tokens that are not
// infix operators sit at the minimum priority, which stops the
// expression loop.
//
// Parameters:
//
//	token - The token to get precedence for
//
// Returns:
//
//	An integer representing the precedence level (higher = tighter binding)
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	// Call operator: a '(' following an expression starts an argument list
	case lexer.LEFT_PAREN:
		return CALL_PRIORITY

	// Multiplicative: * /
	case lexer.MUL_OP, lexer.DIV_OP:
		return MUL_PRIORITY

	// Additive: + -
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	// Relational: < >
	case lexer.GT_OP, lexer.LT_OP:
		return RELATIONAL_PRIORITY

	// Equality: == !=
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	default:
		return MINIMUM_PRIORITY // Not an infix operator token
	}
}

// binaryParseFunction is a function type for parsing infix expressions.
// Infix expressions have a left operand, an operator, and a right operand.
//
// Parameters:
//
//	ExpressionNode - The already-parsed left operand
//
// Returns:
//
//	ExpressionNode - The complete infix expression node
//
// Example: For "a + b", when parsing "+", the left operand "a" is passed in,
// and the function parses "b" and returns the complete "a + b" expression.
type binaryParseFunction func(ExpressionNode) ExpressionNode

// unaryParseFunction is a function type for parsing prefix expressions
// and the tokens that can begin an expression (literals, identifiers,
// grouped expressions, if, fn).
//
// Returns:
//
//	ExpressionNode - The parsed expression node
type unaryParseFunction func() ExpressionNode

// registerUnaryFuncs is a helper to register a prefix parsing function
// for multiple token types.
//
// Parameters:
//
//	f          - The parsing function to register
//	tokenTypes - Variable number of token types to associate with the function
//
// This allows one parsing function to handle multiple related token types.
// For example, parseUnaryExpression handles both ! and -.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs is a helper to register an infix parsing function
// for multiple token types.
//
// Parameters:
//
//	f          - The parsing function to register
//	tokenTypes - Variable number of token types to associate with the function
//
// This allows one parsing function to handle multiple related token types.
// For example, parseBinaryExpression handles +, -, *, and /.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = f
	}
}

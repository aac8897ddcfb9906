/*
File    : go-pico/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: `let five = 5;`,
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "five"),
				NewToken(ASSIGN_OP, "="),
				NewToken(INT_LIT, "5"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `10 == 10; 10 != 9;`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "10"),
				NewToken(EQ_OP, "=="),
				NewToken(INT_LIT, "10"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(INT_LIT, "10"),
				NewToken(NE_OP, "!="),
				NewToken(INT_LIT, "9"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `"foo bar"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "foo bar"),
			},
		},
		{
			Input: ` { } + ( )  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				// digits are not identifier characters, so a12 splits
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(INT_LIT, "12"),
			},
		},
		{
			Input: `! - / * < > = , ; __a_bcd_aa`,
			ExpectedTokens: []Token{
				NewToken(NOT_OP, "!"),
				NewToken(MINUS_OP, "-"),
				NewToken(DIV_OP, "/"),
				NewToken(MUL_OP, "*"),
				NewToken(LT_OP, "<"),
				NewToken(GT_OP, ">"),
				NewToken(ASSIGN_OP, "="),
				NewToken(COMMA_DELIM, ","),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER_ID, "__a_bcd_aa"),
			},
		},
		{
			Input: `fn let true false if else return then`,
			ExpectedTokens: []Token{
				NewToken(FUNC_KEY, "fn"),
				NewToken(LET_KEY, "let"),
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
				NewToken(IF_KEY, "if"),
				NewToken(ELSE_KEY, "else"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "then"),
			},
		},
		{
			Input: `
			let add = fn(x, y) {
				x + y;
			};
			let result = add(5, 10);
			`,
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "add"),
				NewToken(ASSIGN_OP, "="),
				NewToken(FUNC_KEY, "fn"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(COMMA_DELIM, ","),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(PLUS_OP, "+"),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "result"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENTIFIER_ID, "add"),
				NewToken(LEFT_PAREN, "("),
				NewToken(INT_LIT, "5"),
				NewToken(COMMA_DELIM, ","),
				NewToken(INT_LIT, "10"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `if (5 < 10) { return true; } else { return false; }`,
			ExpectedTokens: []Token{
				NewToken(IF_KEY, "if"),
				NewToken(LEFT_PAREN, "("),
				NewToken(INT_LIT, "5"),
				NewToken(LT_OP, "<"),
				NewToken(INT_LIT, "10"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(TRUE_KEY, "true"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(ELSE_KEY, "else"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(FALSE_KEY, "false"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
		// No escape sequences: the characters between quotes are the value
		{
			Input: `"hello\nworld"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, `hello\nworld`),
			},
		},
		// Non-ASCII characters survive inside string literals
		{
			Input: `"héllo wörld"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "héllo wörld"),
			},
		},
		// An unterminated string silently terminates at end of input
		{
			Input: `"no closing quote`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "no closing quote"),
			},
		},
		// Unrecognized characters become ILLEGAL tokens
		{
			Input: `5 @ 10 # x`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "5"),
				NewToken(ILLEGAL_TYPE, "@"),
				NewToken(INT_LIT, "10"),
				NewToken(ILLEGAL_TYPE, "#"),
				NewToken(IDENTIFIER_ID, "x"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)

		gotTokens := lex.ConsumeTokens()

		// must: length match
		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens))
		// must: token to token match
		for i, token := range test.ExpectedTokens {
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
	}

}

// TestNewLexer_EOFIdempotent verifies that once the input is exhausted,
// every further NextToken call keeps returning EOF
func TestNewLexer_EOFIdempotent(t *testing.T) {
	lex := NewLexer(`1`)

	first := lex.NextToken()
	assert.Equal(t, INT_LIT, first.Type)

	for i := 0; i < 3; i++ {
		token := lex.NextToken()
		assert.Equal(t, EOF_TYPE, token.Type)
	}
}

// TestNewLexer_Peek verifies the one-character lookahead
func TestNewLexer_Peek(t *testing.T) {
	lex := NewLexer(`ab`)

	assert.Equal(t, 'a', lex.Current)
	assert.Equal(t, 'b', lex.Peek())
	assert.Equal(t, 'b', lex.PeekChar())

	lex.Advance()
	assert.Equal(t, 'b', lex.Current)
	// NUL at end of input
	assert.Equal(t, rune(0), lex.Peek())
}

// TestNewLexer_TwoCharOperators verifies that == and != are single tokens,
// not two consecutive one-character tokens
func TestNewLexer_TwoCharOperators(t *testing.T) {
	lex := NewLexer(`= == != ! =`)
	gotTokens := lex.ConsumeTokens()

	expected := []TokenType{ASSIGN_OP, EQ_OP, NE_OP, NOT_OP, ASSIGN_OP}
	assert.Equal(t, len(expected), len(gotTokens))
	for i, tokenType := range expected {
		assert.Equal(t, tokenType, gotTokens[i].Type)
	}
}

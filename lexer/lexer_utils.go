/*
File    : go-pico/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "strings"

// isNumeric checks if the given rune is an ASCII decimal digit ('0'..'9').
// This is used in the hot path for number scanning.
func isNumeric(curr rune) bool {
	return curr >= '0' && curr <= '9'
}

// isLetter checks if the given rune may appear in an identifier.
// Identifiers are restricted to ASCII letters and underscore; digits are
// not permitted anywhere in an identifier.
func isLetter(curr rune) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z') || curr == '_'
}

// isWhitespace checks if the given rune is a whitespace character.
// The recognized set is space, tab, newline, and carriage return.
func isWhitespace(curr rune) bool {
	return curr == ' ' || curr == '\t' || curr == '\n' || curr == '\r'
}

// readStringLiteral reads and tokenizes a string literal from the source.
// String literals are enclosed in double quotes ("). No escape sequences
// are recognized: the characters between the quotes form the string value
// verbatim. An unterminated string silently terminates at end of input.
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: A STRING_LIT token with the string content
//
// Example:
//
//	Source: "foo bar"
//	Returns: Token{Type: STRING_LIT, Literal: "foo bar"}
func readStringLiteral(lex *Lexer) Token {
	column := lex.Column
	lex.Advance() // Consume opening quote

	var builder strings.Builder

	// Read characters until the closing quote or end of input
	for lex.Current != '"' && lex.Current != 0 {
		builder.WriteRune(lex.Current)
		lex.Advance()
	}

	// Consume the closing quote if present (absent at EOF)
	if lex.Current == '"' {
		lex.Advance()
	}
	return NewTokenWithMetadata(STRING_LIT, builder.String(), lex.Line, column)
}

// readNumber reads and tokenizes an integer literal from the source.
// It accumulates consecutive ASCII digits and leaves the cursor on the
// first non-digit character (the caller must not advance again).
// Conversion to a 64-bit integer happens later, in the parser.
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: An INT_LIT token carrying the digit string
//
// Example:
//
//	Source: "12345"
//	Returns: Token{Type: INT_LIT, Literal: "12345"}
func readNumber(lex *Lexer) Token {
	position := lex.Position
	column := lex.Column

	for isNumeric(lex.Current) {
		lex.Advance()
	}

	return NewTokenWithMetadata(INT_LIT, string(lex.Src[position:lex.Position]), lex.Line, column)
}

// readIdentifier reads and tokenizes an identifier or keyword from the source.
// Identifiers can be variable names, function names, or language keywords.
// The cursor is left on the first non-matching character.
//
// Rules:
//   - Identifiers consist of ASCII letters and underscores only
//   - Keywords are identified using the lookupIdent function
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: An IDENTIFIER_ID token or a keyword token type
//
// Example:
//
//	Source: "myVar"
//	Returns: Token{Type: IDENTIFIER_ID, Literal: "myVar"}
//
//	Source: "if"
//	Returns: Token{Type: IF_KEY, Literal: "if"}
func readIdentifier(lex *Lexer) Token {
	position := lex.Position
	column := lex.Column

	for isLetter(lex.Current) {
		lex.Advance()
	}

	literal := string(lex.Src[position:lex.Position])

	// Check if this identifier is actually a keyword
	return NewTokenWithMetadata(lookupIdent(literal), literal, lex.Line, column)
}

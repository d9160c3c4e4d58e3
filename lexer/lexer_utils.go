/*
File    : lox-v1/lexer/lexer_utils.go
Author  : aQaTL
*/
package lexer

import (
	"fmt"
	"strings"
)

// sprintf is a local alias so lexer.go stays free of a direct fmt import.
func sprintf(format string, a ...interface{}) string {
	return fmt.Sprintf(format, a...)
}

// isDigit reports whether c is an ASCII decimal digit ('0'..'9').
// This is used in the hot path for number scanning.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c can start an identifier: an ASCII letter or
// underscore. Identifiers are ASCII-only.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isAlphanumeric reports whether c can continue an identifier: an ASCII
// letter, underscore, or digit.
func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// readStringLiteral reads and tokenizes a string literal from the source.
// String literals are enclosed in double quotes, carry no escape sequences,
// and may span multiple lines; each embedded newline advances the line
// counter. The token's Literal holds the string content without the quotes.
//
// An unterminated string at end of input is a lexical error; it is recorded
// and an INVALID token is returned so scanning can continue.
//
// Parameters:
//   - lex: Pointer to the lexer instance, positioned on the opening quote
//
// Returns:
//   - Token: A STRING_LIT token with the string content, or INVALID_TYPE
//     when the string never closes
//
// Example:
//
//	Source: "hello"
//	Returns: Token{Type: STRING_LIT, Literal: "hello"}
func readStringLiteral(lex *Lexer) Token {
	startLine := lex.Line
	startColumn := lex.Column
	lex.Advance() // Consume opening quote

	var builder strings.Builder

	// Read characters until closing quote
	for lex.Current != '"' {
		// Unterminated string at EOF
		if lex.Current == 0 {
			lex.addError("[line %d] LEXER ERROR: unterminated string", startLine)
			return NewTokenWithMetadata(INVALID_TYPE, builder.String(), startLine, startColumn)
		}
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0
		}
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	lex.Advance() // Consume closing quote
	return NewTokenWithMetadata(STRING_LIT, builder.String(), startLine, startColumn)
}

// readNumber reads and tokenizes a numeric literal from the source.
// A number is one or more digits with an optional fractional part: a dot
// followed by one or more digits. A dot without a following digit is not
// part of the number (so "12." lexes as the number 12 and a dot token,
// and ".5" is a dot token and the number 5). All numbers are IEEE-754
// doubles; the literal text is converted by the parser.
//
// Parameters:
//   - lex: Pointer to the lexer instance, positioned on the first digit
//
// Returns:
//   - Token: A NUMBER_LIT token with the number's source text
//
// Example:
//
//	Source: "123.45"
//	Returns: Token{Type: NUMBER_LIT, Literal: "123.45"}
func readNumber(lex *Lexer) Token {
	start := lex.Position
	startColumn := lex.Column

	for isDigit(lex.Current) {
		lex.Advance()
	}

	// Fractional part: only consume the dot when a digit follows it
	if lex.Current == '.' && isDigit(lex.Peek()) {
		lex.Advance() // Consume the dot
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}

	return NewTokenWithMetadata(NUMBER_LIT, lex.Src[start:lex.Position], lex.Line, startColumn)
}

// readIdentifier reads an identifier or keyword from the source.
// Identifiers start with an ASCII letter or underscore and continue with
// letters, underscores, or digits. The result is classified through the
// keyword table.
//
// Parameters:
//   - lex: Pointer to the lexer instance, positioned on the first character
//
// Returns:
//   - Token: A keyword token or an IDENTIFIER_ID token
func readIdentifier(lex *Lexer) Token {
	start := lex.Position
	startColumn := lex.Column

	for isAlphanumeric(lex.Current) {
		lex.Advance()
	}

	text := lex.Src[start:lex.Position]
	return NewTokenWithMetadata(lookupIdent(text), text, lex.Line, startColumn)
}

/*
File    : lox-v1/lexer/lexer_test.go
Author  : aQaTL
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tokenExpect is one expected (type, literal) pair for ConsumeTokens tests.
// Ids and positions are checked separately since every run mints fresh ids.
type tokenExpect struct {
	Type    TokenType
	Literal string
}

// consume tokenizes src and strips the trailing EOF token.
func consume(t *testing.T, src string) []Token {
	lex := NewLexer(src)
	tokens := lex.ConsumeTokens()
	assert.NotEmpty(t, tokens)
	last := tokens[len(tokens)-1]
	assert.Equal(t, EOF_TYPE, last.Type)
	return tokens[:len(tokens)-1]
}

// assertTokens checks the (type, literal) sequence of the tokens.
func assertTokens(t *testing.T, tokens []Token, expected []tokenExpect) {
	assert.Equal(t, len(expected), len(tokens), "token count")
	for i, exp := range expected {
		if i >= len(tokens) {
			return
		}
		assert.Equal(t, exp.Type, tokens[i].Type, "token %d type", i)
		assert.Equal(t, exp.Literal, tokens[i].Literal, "token %d literal", i)
	}
}

// TestLexer_ConsumeTokens covers the operator, delimiter, and literal
// token kinds.
func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []tokenExpect
	}{
		{
			input: ` ( ) { } , . ; + - * / `,
			expected: []tokenExpect{
				{LEFT_PAREN, "("}, {RIGHT_PAREN, ")"},
				{LEFT_BRACE, "{"}, {RIGHT_BRACE, "}"},
				{COMMA_DELIM, ","}, {DOT_OP, "."}, {SEMICOLON_DELIM, ";"},
				{PLUS_OP, "+"}, {MINUS_OP, "-"}, {MUL_OP, "*"}, {DIV_OP, "/"},
			},
		},
		{
			input: `! != = == < <= > >=`,
			expected: []tokenExpect{
				{NOT_OP, "!"}, {NE_OP, "!="},
				{ASSIGN_OP, "="}, {EQ_OP, "=="},
				{LT_OP, "<"}, {LE_OP, "<="},
				{GT_OP, ">"}, {GE_OP, ">="},
			},
		},
		{
			input: `123 0 12.5 0.25`,
			expected: []tokenExpect{
				{NUMBER_LIT, "123"}, {NUMBER_LIT, "0"},
				{NUMBER_LIT, "12.5"}, {NUMBER_LIT, "0.25"},
			},
		},
		{
			// A trailing dot is not part of the number, and a leading dot
			// does not start one.
			input: `12. .5`,
			expected: []tokenExpect{
				{NUMBER_LIT, "12"}, {DOT_OP, "."},
				{DOT_OP, "."}, {NUMBER_LIT, "5"},
			},
		},
		{
			input: `"hello" "with spaces" ""`,
			expected: []tokenExpect{
				{STRING_LIT, "hello"}, {STRING_LIT, "with spaces"}, {STRING_LIT, ""},
			},
		},
		{
			input: `abc _under a12 __a19bcd_aa90`,
			expected: []tokenExpect{
				{IDENTIFIER_ID, "abc"}, {IDENTIFIER_ID, "_under"},
				{IDENTIFIER_ID, "a12"}, {IDENTIFIER_ID, "__a19bcd_aa90"},
			},
		},
	}

	for _, tt := range tests {
		tokens := consume(t, tt.input)
		assertTokens(t, tokens, tt.expected)
	}
}

// TestLexer_Keywords verifies that every reserved word lexes to its
// keyword token and that near-misses stay identifiers.
func TestLexer_Keywords(t *testing.T) {
	tokens := consume(t, `and class else false fun for if nil or print return super this true var while`)
	expected := []tokenExpect{
		{AND_KEY, "and"}, {CLASS_KEY, "class"}, {ELSE_KEY, "else"},
		{FALSE_KEY, "false"}, {FUN_KEY, "fun"}, {FOR_KEY, "for"},
		{IF_KEY, "if"}, {NIL_LIT, "nil"}, {OR_KEY, "or"},
		{PRINT_KEY, "print"}, {RETURN_KEY, "return"}, {SUPER_KEY, "super"},
		{THIS_KEY, "this"}, {TRUE_KEY, "true"}, {VAR_KEY, "var"},
		{WHILE_KEY, "while"},
	}
	assertTokens(t, tokens, expected)

	// Prefixes and extensions of keywords are plain identifiers
	tokens = consume(t, `classy fund supers orchid`)
	for _, tok := range tokens {
		assert.Equal(t, IDENTIFIER_ID, tok.Type, "%s should be an identifier", tok.Literal)
	}
}

// TestLexer_CommentsAndWhitespace verifies that // comments and whitespace
// vanish from the token stream.
func TestLexer_CommentsAndWhitespace(t *testing.T) {
	src := `var a = 1; // trailing comment
// full-line comment
var b = 2;`
	tokens := consume(t, src)
	expected := []tokenExpect{
		{VAR_KEY, "var"}, {IDENTIFIER_ID, "a"}, {ASSIGN_OP, "="}, {NUMBER_LIT, "1"}, {SEMICOLON_DELIM, ";"},
		{VAR_KEY, "var"}, {IDENTIFIER_ID, "b"}, {ASSIGN_OP, "="}, {NUMBER_LIT, "2"}, {SEMICOLON_DELIM, ";"},
	}
	assertTokens(t, tokens, expected)
	// A comment never hides a division operator
	tokens = consume(t, `1 / 2`)
	assertTokens(t, tokens, []tokenExpect{
		{NUMBER_LIT, "1"}, {DIV_OP, "/"}, {NUMBER_LIT, "2"},
	})
}

// TestLexer_LineTracking verifies 1-based line numbers, including the
// multi-line string rule: each embedded newline advances the counter.
func TestLexer_LineTracking(t *testing.T) {
	src := "var a = 1;\nvar b = \"two\nlines\";\nprint b;"
	tokens := consume(t, src)

	// Keep the first occurrence of each lexeme
	byLiteral := make(map[string]Token)
	for _, tok := range tokens {
		if _, seen := byLiteral[tok.Literal]; !seen {
			byLiteral[tok.Literal] = tok
		}
	}

	assert.Equal(t, 1, byLiteral["a"].Line)
	assert.Equal(t, 2, byLiteral["b"].Line)
	assert.Equal(t, 2, byLiteral["two\nlines"].Line)
	// The string spans a newline, so print lands two lines down
	assert.Equal(t, 4, byLiteral["print"].Line)
}

// TestLexer_UnterminatedString verifies the lexical error for a string
// that never closes.
func TestLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`print "oops`)
	lex.ConsumeTokens()
	assert.True(t, lex.HasErrors())
	assert.Contains(t, lex.Errors[0], "unterminated string")
}

// TestLexer_UnexpectedCharacter verifies batch error reporting: bad
// characters are recorded and scanning continues.
func TestLexer_UnexpectedCharacter(t *testing.T) {
	lex := NewLexer("var a = 1; @ # var b = 2;")
	tokens := lex.ConsumeTokens()

	assert.True(t, lex.HasErrors())
	assert.Len(t, lex.Errors, 2)
	assert.Contains(t, lex.Errors[0], "unexpected character '@'")
	assert.Contains(t, lex.Errors[1], "unexpected character '#'")

	// Both statements around the junk still tokenize
	literals := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		literals = append(literals, tok.Literal)
	}
	assert.Contains(t, literals, "a")
	assert.Contains(t, literals, "b")
}

// TestLexer_TokenIdsUnique verifies the universal index invariant: every
// token occurrence gets a distinct, strictly increasing id, even when the
// lexemes repeat.
func TestLexer_TokenIdsUnique(t *testing.T) {
	lex := NewLexer(`var a = a + a; var a = a;`)
	tokens := lex.ConsumeTokens()

	seen := make(map[int]bool)
	prev := 0
	for _, tok := range tokens {
		assert.False(t, seen[tok.Id], "duplicate token id %d", tok.Id)
		assert.Greater(t, tok.Id, prev, "ids must increase monotonically")
		seen[tok.Id] = true
		prev = tok.Id
	}
}

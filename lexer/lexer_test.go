package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenTypeLit struct {
	Type    TokenType
	Literal string
}

func TestNewLexer_ConsumeTokens(t *testing.T) {
	tests := []struct {
		Input    string
		Expected []tokenTypeLit
	}{
		{
			Input: `1 2 3 + 10`,
			Expected: []tokenTypeLit{
				{NUMBER_LIT, "1"}, {NUMBER_LIT, "2"}, {NUMBER_LIT, "3"},
				{PLUS_OP, "+"}, {NUMBER_LIT, "10"},
			},
		},
		{
			Input: `+/!5`,
			Expected: []tokenTypeLit{
				{PLUS_OP, "+"}, {SLASH_OP, "/"}, {BANG_OP, "!"}, {NUMBER_LIT, "5"},
			},
		},
		{
			Input: `f:{x+y}`,
			Expected: []tokenTypeLit{
				{IDENTIFIER_ID, "f"}, {COLON_OP, ":"}, {LEFT_BRACE, "{"},
				{IDENTIFIER_ID, "x"}, {PLUS_OP, "+"}, {IDENTIFIER_ID, "y"}, {RIGHT_BRACE, "}"},
			},
		},
		{
			Input: `"abc" ` + "`sym",
			Expected: []tokenTypeLit{
				{STRING_LIT, "abc"}, {SYMBOL_LIT, "sym"},
			},
		},
		{
			Input: `sin cos abs`,
			Expected: []tokenTypeLit{
				{SIN_OP, "sin"}, {COS_OP, "cos"}, {ABS_OP, "abs"},
			},
		},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.Input)
		toks := lex.ConsumeTokens()
		if assert.Len(t, toks, len(tt.Expected), "input %q", tt.Input) {
			for i, exp := range tt.Expected {
				assert.Equal(t, exp.Type, toks[i].Type, "token %d of %q", i, tt.Input)
				assert.Equal(t, exp.Literal, toks[i].Literal, "token %d of %q", i, tt.Input)
			}
		}
	}
}

// A comment only starts a token when whitespace precedes the `/`; glued to
// the token before it, `/` is the over adverb and the words after it lex as
// ordinary identifiers.
func TestLexer_SlashIsCommentOnlyAfterWhitespace(t *testing.T) {
	lex := NewLexer("1/ this is a comment\n2")
	toks := lex.ConsumeTokens()
	assert.Len(t, toks, 7)
	assert.Equal(t, SLASH_OP, toks[1].Type)

	lex2 := NewLexer(" / whole line comment\n3")
	toks2 := lex2.ConsumeTokens()
	assert.Len(t, toks2, 1)
	assert.Equal(t, NUMBER_LIT, toks2[0].Type)
	assert.Equal(t, "3", toks2[0].Literal)
}

func TestLexer_WhitespaceBeforeFlag(t *testing.T) {
	lex := NewLexer(`f/x f % x`)
	toks := lex.ConsumeTokens()
	assert.False(t, toks[1].WSBefore) // '/' in f/x
	assert.True(t, toks[4].WSBefore)  // '%' in f % x
}

func TestLexer_InfinityLiteral(t *testing.T) {
	lex := NewLexer(`0w -0w`)
	toks := lex.ConsumeTokens()
	assert.Equal(t, "0w", toks[0].Literal)
	assert.Equal(t, MINUS_OP, toks[1].Type)
	assert.Equal(t, "0w", toks[2].Literal)
}
